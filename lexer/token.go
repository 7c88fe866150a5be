package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt   TokenType
	text string

	start int
	end   int
}

// NewToken creates a lexical unit spanning the half-open byte range
// [start, end) of the source buffer.
func NewToken(tt TokenType, text string, start, end int) Token {
	return Token{
		tt:    tt,
		text:  text,
		start: start,
		end:   end,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Text returns the text carried by the lexical unit. Wrapper characters
// are stripped where the token type says so ("@", "#", quotes).
func (t Token) Text() string {
	return t.text
}

// Start returns the byte offset where the token begins
func (t Token) Start() int {
	return t.start
}

// End returns the byte offset just past the token
func (t Token) End() int {
	return t.end
}

// Span returns the half-open byte range of the token
func (t Token) Span() (int, int) {
	return t.start, t.end
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", tokenNames[t.tt], t.text, t.start, t.end)
}
