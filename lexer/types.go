package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid        TokenType = iota
	TokenIdent                    // Identifier: "body", "-webkit-transform"
	TokenFunction                 // Identifier immediately followed by "(": "rgb("
	TokenAtKeyword                // "@" + identifier, "@" stripped: "media"
	TokenHash                     // "#" + identifier characters, "#" stripped: "fff"
	TokenClassSelector            // "." + identifier, dot kept: ".container"
	TokenPseudoSelector           // ":" or "::" + identifier, colons kept: ":hover", "::before"
	TokenCustomProperty           // "--" + identifier characters: "--blue"
	TokenImportant                // The literal "!important"
	TokenQuotedString             // Quoted string, quotes stripped, escapes kept raw
	TokenBadString                // Unterminated quoted string
	TokenUnquotedURL              // url(...) content without internal quoting
	TokenBadURL                   // Empty or unterminated url(
	TokenNumber                   // Numeric literal, sign included
	TokenPercentage               // Numeric literal + "%", "%" kept
	TokenDimension                // Numeric literal + unit, unit kept
	TokenParenBlock               // Flat balanced "(...)" capture, brackets kept
	TokenSquareBlock              // Flat balanced "[...]" capture, brackets kept
	TokenCurlyBlock               // Flat balanced "{...}" capture, brackets kept
	TokenComment                  // "/* ... */", emitted, never skipped
	TokenColon                    // ":"
	TokenSemicolon                // ";"
	TokenComma                    // ","
	TokenIncludeMatch             // "~="
	TokenDashMatch                // "|="
	TokenPrefixMatch              // "^="
	TokenSuffixMatch              // "$="
	TokenSubstringMatch           // "*="
	TokenCDO                      // "<!--"
	TokenCDC                      // "-->"
	TokenCloseParen               // ")"
	TokenCloseSquare              // "]"
	TokenCloseCurly               // "}"
	TokenDelim                    // Any other single printable rune
	TokenEOF                      // End of input
)

var tokenNames = map[TokenType]string{
	TokenInvalid:        "invalid",
	TokenIdent:          "ident",
	TokenFunction:       "function",
	TokenAtKeyword:      "at_keyword",
	TokenHash:           "hash",
	TokenClassSelector:  "class_selector",
	TokenPseudoSelector: "pseudo_selector",
	TokenCustomProperty: "custom_property",
	TokenImportant:      "important",
	TokenQuotedString:   "quoted_string",
	TokenBadString:      "bad_string",
	TokenUnquotedURL:    "unquoted_url",
	TokenBadURL:         "bad_url",
	TokenNumber:         "number",
	TokenPercentage:     "percentage",
	TokenDimension:      "dimension",
	TokenParenBlock:     "paren_block",
	TokenSquareBlock:    "square_block",
	TokenCurlyBlock:     "curly_block",
	TokenComment:        "comment",
	TokenColon:          "colon",
	TokenSemicolon:      "semicolon",
	TokenComma:          "comma",
	TokenIncludeMatch:   "include_match",
	TokenDashMatch:      "dash_match",
	TokenPrefixMatch:    "prefix_match",
	TokenSuffixMatch:    "suffix_match",
	TokenSubstringMatch: "substring_match",
	TokenCDO:            "cdo",
	TokenCDC:            "cdc",
	TokenCloseParen:     "close_paren",
	TokenCloseSquare:    "close_square",
	TokenCloseCurly:     "close_curly",
	TokenDelim:          "delim",
	TokenEOF:            "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentStart(c byte) bool {
	return isAlpha(c) || c == '_'
}

func isIdentChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_' || c == '-'
}
