package css_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	css "github.com/oxidlabs/cssparser"
	"github.com/oxidlabs/cssparser/ast"
	"github.com/oxidlabs/cssparser/lexer"
	"github.com/oxidlabs/cssparser/parser"
)

func TestParse(t *testing.T) {
	sheet, err := css.Parse(`
	:root {
		--blue: #007bff;
	}

	body {
		font-family: Arial, sans-serif;
		color: rgb(33, 37, 41);
	}

	@media screen and (max-width: 600px) {
		body {
			color: #000;
		}
	}`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 3)

	root := sheet.Rules[0].(*ast.RuleSet)
	assert.Equal(t, []ast.Selector{&ast.SimpleSelector{Tag: ":root"}}, root.Selectors)
	assert.Equal(t, "--blue", root.Declarations[0].Property)
	assert.Equal(t, []ast.Value{ast.Hex("007bff")}, root.Declarations[0].Value)

	body := sheet.Rules[1].(*ast.RuleSet)
	require.Len(t, body.Declarations, 2)
	assert.Equal(t, []ast.Value{ast.RGB{R: 33, G: 37, B: 41}}, body.Declarations[1].Value)

	media := sheet.Rules[2].(*ast.AtRule)
	assert.Equal(t, "media", media.Name)
	assert.Equal(t, []string{"screen", "and", "(max-width: 600px)"}, media.Prelude)
}

func TestParseError(t *testing.T) {
	_, err := css.Parse("body { color #fff; }")
	require.Error(t, err)

	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.KindUnexpectedToken, perr.Kind)
}

func TestTokenize(t *testing.T) {
	tokens, err := css.Tokenize("body { color: #fff; }")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, lexer.TokenIdent, tokens[0].Type())
	assert.Equal(t, lexer.TokenCurlyBlock, tokens[1].Type())
}

func TestRGBChannelExactness(t *testing.T) {
	// Channel values survive parsing byte-for-byte across the whole range.
	for _, c := range []uint8{0, 1, 127, 128, 254, 255} {
		source := fmt.Sprintf("a { color: rgb(%d, %d, %d); }", c, 255-c, c)

		sheet, err := css.Parse(source)
		require.NoError(t, err, source)

		rule := sheet.Rules[0].(*ast.RuleSet)
		assert.Equal(t, []ast.Value{ast.RGB{R: c, G: 255 - c, B: c}}, rule.Declarations[0].Value, source)
	}
}

var benchmarkSource = strings.Repeat(`
:root {
	--blue: #007bff;
	--font-family-sans-serif: -apple-system, "Segoe UI", Roboto, sans-serif;
}

*,
*::before,
*::after {
	box-sizing: border-box;
}

body {
	margin: 0;
	font-family: Arial, sans-serif;
	font-size: 1rem;
	line-height: 1.5;
	color: rgb(33, 37, 41);
	background-color: #fff;
}

.container {
	width: 100%;
	padding-right: 15px;
	padding-left: 15px;
	margin-right: auto;
	margin-left: auto;
}

.custom-switch .custom-control-label::before {
	left: -2.25rem;
	pointer-events: all;
	border-radius: 0.5rem;
}

@media screen and (max-width: 600px) {
	body {
		color: #000;
	}
}
`, 50)

func BenchmarkParse(b *testing.B) {
	b.SetBytes(int64(len(benchmarkSource)))
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := css.Parse(benchmarkSource); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTokenize(b *testing.B) {
	b.SetBytes(int64(len(benchmarkSource)))
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := css.Tokenize(benchmarkSource); err != nil {
			b.Fatal(err)
		}
	}
}
