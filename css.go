// Package css implements a CSS stylesheet parser: a cursor-driven
// tokenizer plus a recursive-descent parser that turns raw source text
// into a typed AST of rules, selectors, declarations and values,
// including nested rule sets and at-rules.
//
// Parsing is synchronous and purely CPU-bound over an immutable input
// buffer; all string data in the returned tree is owned by the caller.
package css

import (
	"github.com/oxidlabs/cssparser/ast"
	"github.com/oxidlabs/cssparser/lexer"
	"github.com/oxidlabs/cssparser/parser"
)

// Parse converts raw CSS source into a stylesheet AST, or returns a
// *parser.Error positioned as a half-open byte range into source.
func Parse(source string) (*ast.Stylesheet, error) {
	return parser.Parse(source)
}

// Tokenize scans raw CSS source into its full lexical token stream. The
// returned error, if any, is the first *lexer.Error encountered; the
// token slice is complete either way.
func Tokenize(source string) ([]lexer.Token, error) {
	return lexer.Tokenize(source)
}
