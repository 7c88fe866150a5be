package main

import (
	"errors"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	css "github.com/oxidlabs/cssparser"
	"github.com/oxidlabs/cssparser/ast"
	"github.com/oxidlabs/cssparser/parser"
)

func main() {
	log := logrus.New()

	var dump bool

	cmd := &cobra.Command{
		Use:   "cssparse <file>",
		Short: "Parse a CSS file and report timing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			sheet, err := css.Parse(string(buf))
			elapsed := time.Since(start)

			if err != nil {
				var perr *parser.Error
				if errors.As(err, &perr) {
					log.WithFields(logrus.Fields{
						"kind":  perr.Kind,
						"start": perr.Start,
						"end":   perr.End,
					}).Error(perr.Msg)
				}
				return err
			}

			log.WithFields(logrus.Fields{
				"bytes":   len(buf),
				"rules":   len(sheet.Rules),
				"elapsed": elapsed,
			}).Info("parsed stylesheet")

			if dump {
				ast.Fprint(os.Stdout, sheet)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVarP(&dump, "dump", "d", false, "print the parsed AST")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
