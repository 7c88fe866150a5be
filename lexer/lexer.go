package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Error is a lexical failure: an unrecognized byte sequence together with
// its half-open byte range in the source.
type Error struct {
	Text  string
	Start int
	End   int
}

func (e *Error) Error() string {
	return fmt.Sprintf("unrecognized input %q [%d:%d]", e.Text, e.Start, e.End)
}

// Lexer is a cursor over an immutable source buffer. Each call to Next
// yields one token; whitespace is consumed silently, comments are emitted.
// The cursor never halts on bad input: unrecognized bytes come back as
// TokenInvalid and scanning continues.
type Lexer struct {
	src  string
	pos  int
	base int
}

// New initializes a Lexer over the given source
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// NewAt initializes a Lexer over a substring of a larger buffer. The base
// offset is added to every token span so that tokens produced while
// re-lexing a captured block still point into the original source.
func NewAt(src string, base int) *Lexer {
	return &Lexer{src: src, base: base}
}

// Tokenize scans src and returns every token in it, including invalid
// ones, plus the first lexical error encountered (nil if none).
func Tokenize(src string) ([]Token, error) {
	lx := New(src)

	tokens := []Token{}
	var lastErr error
	for {
		tok := lx.Next()
		if tok.Is(TokenEOF) {
			return tokens, lastErr
		}
		if tok.Is(TokenInvalid) && lastErr == nil {
			lastErr = &Error{Text: tok.Text(), Start: tok.Start(), End: tok.End()}
		}
		tokens = append(tokens, tok)
	}
}

func (lx *Lexer) token(tt TokenType, text string, start int) Token {
	return NewToken(tt, text, lx.base+start, lx.base+lx.pos)
}

func (lx *Lexer) peekAt(n int) byte {
	if lx.pos+n < len(lx.src) {
		return lx.src[lx.pos+n]
	}
	return 0
}

func (lx *Lexer) hasPrefix(s string) bool {
	return strings.HasPrefix(lx.src[lx.pos:], s)
}

// Next advances the cursor and returns the next token, or a token of type
// TokenEOF once the input is exhausted.
func (lx *Lexer) Next() Token {
	for lx.pos < len(lx.src) && isWhitespace(lx.src[lx.pos]) {
		lx.pos++
	}

	start := lx.pos
	if lx.pos >= len(lx.src) {
		return lx.token(TokenEOF, "", start)
	}

	c := lx.src[lx.pos]

	switch {
	case c == '/' && lx.peekAt(1) == '*':
		return lx.scanComment()

	case lx.hasPrefix("<!--"):
		lx.pos += 4
		return lx.token(TokenCDO, "<!--", start)

	case lx.hasPrefix("-->"):
		lx.pos += 3
		return lx.token(TokenCDC, "-->", start)

	case c == '"' || c == '\'':
		return lx.scanString(c)

	case isDigit(c),
		(c == '+' || c == '-') && lx.startsNumber(1),
		c == '.' && isDigit(lx.peekAt(1)):
		return lx.scanNumeric()

	case c == '@' && (isIdentStart(lx.peekAt(1)) || lx.peekAt(1) == '-'):
		lx.pos++
		name := lx.scanIdentChars()
		return lx.token(TokenAtKeyword, name, start)

	case c == '#' && isIdentChar(lx.peekAt(1)):
		lx.pos++
		name := lx.scanIdentChars()
		return lx.token(TokenHash, name, start)

	case c == '.' && isIdentStart(lx.peekAt(1)):
		lx.pos++
		lx.scanIdentChars()
		return lx.token(TokenClassSelector, lx.src[start:lx.pos], start)

	case c == ':':
		return lx.scanColon()

	case c == '!' && lx.hasPrefix("!important"):
		lx.pos += len("!important")
		return lx.token(TokenImportant, "!important", start)

	case isIdentStart(c) || c == '-' && (isIdentStart(lx.peekAt(1)) || lx.peekAt(1) == '-'):
		return lx.scanIdentLike()

	case c == '~' && lx.peekAt(1) == '=':
		lx.pos += 2
		return lx.token(TokenIncludeMatch, "~=", start)
	case c == '|' && lx.peekAt(1) == '=':
		lx.pos += 2
		return lx.token(TokenDashMatch, "|=", start)
	case c == '^' && lx.peekAt(1) == '=':
		lx.pos += 2
		return lx.token(TokenPrefixMatch, "^=", start)
	case c == '$' && lx.peekAt(1) == '=':
		lx.pos += 2
		return lx.token(TokenSuffixMatch, "$=", start)
	case c == '*' && lx.peekAt(1) == '=':
		lx.pos += 2
		return lx.token(TokenSubstringMatch, "*=", start)

	case c == '(' || c == '[' || c == '{':
		return lx.scanBlock(c)

	case c == ')':
		lx.pos++
		return lx.token(TokenCloseParen, ")", start)
	case c == ']':
		lx.pos++
		return lx.token(TokenCloseSquare, "]", start)
	case c == '}':
		lx.pos++
		return lx.token(TokenCloseCurly, "}", start)

	case c == ';':
		lx.pos++
		return lx.token(TokenSemicolon, ";", start)
	case c == ',':
		lx.pos++
		return lx.token(TokenComma, ",", start)

	default:
		r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
		lx.pos += size
		if r == utf8.RuneError && size == 1 || !unicode.IsGraphic(r) {
			return lx.token(TokenInvalid, lx.src[start:lx.pos], start)
		}
		return lx.token(TokenDelim, lx.src[start:lx.pos], start)
	}
}

// startsNumber reports whether a digit, or a dot followed by a digit,
// begins at the given lookahead offset.
func (lx *Lexer) startsNumber(n int) bool {
	if isDigit(lx.peekAt(n)) {
		return true
	}
	return lx.peekAt(n) == '.' && isDigit(lx.peekAt(n+1))
}

func (lx *Lexer) scanIdentChars() string {
	start := lx.pos
	for lx.pos < len(lx.src) && isIdentChar(lx.src[lx.pos]) {
		lx.pos++
	}
	return lx.src[start:lx.pos]
}

func (lx *Lexer) scanComment() Token {
	start := lx.pos
	lx.pos += 2
	if i := strings.Index(lx.src[lx.pos:], "*/"); i >= 0 {
		lx.pos += i + 2
	} else {
		lx.pos = len(lx.src)
	}
	return lx.token(TokenComment, lx.src[start:lx.pos], start)
}

func (lx *Lexer) scanString(quote byte) Token {
	start := lx.pos
	lx.pos++
	for lx.pos < len(lx.src) {
		switch lx.src[lx.pos] {
		case quote:
			text := lx.src[start+1 : lx.pos]
			lx.pos++
			return lx.token(TokenQuotedString, text, start)
		case '\\':
			lx.pos += 2
		default:
			lx.pos++
		}
	}
	// Ran off the end of the input inside the string.
	lx.pos = len(lx.src)
	return lx.token(TokenBadString, lx.src[start:], start)
}

func (lx *Lexer) scanNumeric() Token {
	start := lx.pos
	if c := lx.src[lx.pos]; c == '+' || c == '-' {
		lx.pos++
	}
	for lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]) {
		lx.pos++
	}
	if lx.pos < len(lx.src) && lx.src[lx.pos] == '.' && isDigit(lx.peekAt(1)) {
		lx.pos++
		for lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]) {
			lx.pos++
		}
	}

	switch {
	case lx.pos < len(lx.src) && lx.src[lx.pos] == '%':
		lx.pos++
		return lx.token(TokenPercentage, lx.src[start:lx.pos], start)
	case lx.pos < len(lx.src) && isAlpha(lx.src[lx.pos]):
		for lx.pos < len(lx.src) && isAlpha(lx.src[lx.pos]) {
			lx.pos++
		}
		return lx.token(TokenDimension, lx.src[start:lx.pos], start)
	default:
		return lx.token(TokenNumber, lx.src[start:lx.pos], start)
	}
}

// scanColon handles ":", "::" and pseudo selectors. A colon followed by
// identifier-shaped text is a pseudo selector and keeps its colons; an
// optional flat parenthesized argument is folded into the token text.
func (lx *Lexer) scanColon() Token {
	start := lx.pos

	j := lx.pos + 1
	if j < len(lx.src) && lx.src[j] == ':' {
		j++
	}
	if j < len(lx.src) && isIdentStart(lx.src[j]) {
		for j < len(lx.src) && isIdentChar(lx.src[j]) {
			j++
		}
		if j < len(lx.src) && lx.src[j] == '(' {
			if k := strings.IndexByte(lx.src[j:], ')'); k >= 0 {
				j += k + 1
			}
		}
		lx.pos = j
		return lx.token(TokenPseudoSelector, lx.src[start:lx.pos], start)
	}

	lx.pos++
	return lx.token(TokenColon, ":", start)
}

func (lx *Lexer) scanIdentLike() Token {
	start := lx.pos

	if lx.hasPrefix("--") {
		lx.scanIdentChars()
		return lx.token(TokenCustomProperty, lx.src[start:lx.pos], start)
	}

	if lx.hasPrefix("url(") {
		if tok, ok := lx.scanUnquotedURL(); ok {
			return tok
		}
	}

	name := lx.scanIdentChars()
	if lx.pos < len(lx.src) && lx.src[lx.pos] == '(' {
		lx.pos++
		return lx.token(TokenFunction, name, start)
	}
	return lx.token(TokenIdent, name, start)
}

// scanUnquotedURL captures url(...) content with no internal quoting. A
// quoted argument is left to the Function token path instead.
func (lx *Lexer) scanUnquotedURL() (Token, bool) {
	start := lx.pos

	rest := lx.src[lx.pos+4:]
	k := strings.IndexByte(rest, ')')
	if k < 0 {
		lx.pos = len(lx.src)
		return lx.token(TokenBadURL, lx.src[start:], start), true
	}

	content := rest[:k]
	if strings.ContainsAny(content, `"'`) {
		return Token{}, false
	}

	lx.pos += 4 + k + 1
	if strings.TrimSpace(content) == "" {
		return lx.token(TokenBadURL, lx.src[start:lx.pos], start), true
	}
	return lx.token(TokenUnquotedURL, content, start), true
}

// scanBlock captures one flat balanced bracket pair including the brackets
// themselves. Same-type brackets one level down are skipped by jumping to
// their first closer; the capture ends at the first same-depth closer, so
// deeper same-type nesting closes early. Nested rules are the parser's
// business: it re-lexes the captured text, this scan never counts depth.
func (lx *Lexer) scanBlock(open byte) Token {
	var closer byte
	var tt TokenType
	switch open {
	case '(':
		closer, tt = ')', TokenParenBlock
	case '[':
		closer, tt = ']', TokenSquareBlock
	default:
		closer, tt = '}', TokenCurlyBlock
	}

	start := lx.pos
	i := lx.pos + 1
	for i < len(lx.src) {
		switch lx.src[i] {
		case closer:
			lx.pos = i + 1
			return lx.token(tt, lx.src[start:lx.pos], start)
		case open:
			j := strings.IndexByte(lx.src[i+1:], closer)
			if j < 0 {
				i = len(lx.src)
			} else {
				i += 1 + j + 1
			}
		default:
			i++
		}
	}

	// No closer: the opener itself is the offending slice.
	lx.pos = start + 1
	return lx.token(TokenInvalid, lx.src[start:lx.pos], start)
}
