package parser

import (
	"fmt"

	"github.com/oxidlabs/cssparser/lexer"
)

// Kind classifies parse failures
type Kind uint8

const (
	// KindLex is an unrecognized byte sequence in the input
	KindLex Kind = iota + 1
	// KindUnexpectedToken is a grammar violation at the current position
	KindUnexpectedToken
	// KindUnterminated is input exhausted inside a function call or
	// @-rule before its closing marker
	KindUnterminated
	// KindInvalidArity is a wrong argument count for rgb/rgba/rect
	KindInvalidArity
	// KindNumberFormat is numeric token text not parsable as a double
	KindNumberFormat
)

var kindNames = map[Kind]string{
	KindLex:             "lex",
	KindUnexpectedToken: "unexpected_token",
	KindUnterminated:    "unterminated",
	KindInvalidArity:    "invalid_arity",
	KindNumberFormat:    "number_format",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Error is a parse failure carrying a message and a half-open byte range
// into the original source buffer.
type Error struct {
	Kind  Kind
	Msg   string
	Start int
	End   int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%d:%d]", e.Msg, e.Start, e.End)
}

func newError(kind Kind, tok lexer.Token, msg string) *Error {
	return &Error{
		Kind:  kind,
		Msg:   msg,
		Start: tok.Start(),
		End:   tok.End(),
	}
}
