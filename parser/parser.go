package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/oxidlabs/cssparser/ast"
	"github.com/oxidlabs/cssparser/lexer"
)

// maxNestingDepth bounds block re-lexing recursion so that adversarial
// nesting reports an error instead of exhausting the call stack.
const maxNestingDepth = 64

// Parser is a recursive-descent consumer of the token cursor. Captured
// blocks are parsed by constructing a fresh Parser over their trimmed
// content; the tokenizer itself never tracks brace depth.
type Parser struct {
	lx    *lexer.Lexer
	tok   lexer.Token
	depth int
}

// New initializes a Parser over the given CSS source
func New(source string) *Parser {
	p := &Parser{lx: lexer.New(source)}
	p.advance()
	return p
}

func newNested(source string, base, depth int) *Parser {
	p := &Parser{lx: lexer.NewAt(source, base), depth: depth}
	p.advance()
	return p
}

// Parse converts raw CSS source into a stylesheet
func Parse(source string) (*ast.Stylesheet, error) {
	return New(source).ParseStylesheet()
}

func (p *Parser) advance() {
	p.tok = p.lx.Next()
}

// ParseStylesheet runs the top-level loop. At-keywords and
// selector-starting tokens dispatch into the grammar; anything else at
// the top level is skipped, never fatal. Errors inside a dispatched rule
// propagate unchanged.
func (p *Parser) ParseStylesheet() (*ast.Stylesheet, error) {
	rules := []ast.Rule{}

	for !p.tok.Is(lexer.TokenEOF) {
		switch p.tok.Type() {
		case lexer.TokenAtKeyword:
			name := p.tok.Text()
			p.advance()
			at, err := p.parseAtRule(name)
			if err != nil {
				return nil, err
			}
			rules = append(rules, at)

		case lexer.TokenIdent, lexer.TokenClassSelector, lexer.TokenHash,
			lexer.TokenPseudoSelector, lexer.TokenSquareBlock:
			rule, err := p.parseRuleSet()
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)

		case lexer.TokenDelim:
			if p.tok.Text() == "*" {
				rule, err := p.parseRuleSet()
				if err != nil {
					return nil, err
				}
				rules = append(rules, rule)
				continue
			}
			p.advance()

		default:
			p.advance()
		}
	}

	return &ast.Stylesheet{Rules: rules}, nil
}

// nestedParser re-lexes the captured text of a block token with a fresh
// Parser. Spans stay relative to the original buffer via the base offset.
func (p *Parser) nestedParser(tok lexer.Token) (*Parser, error) {
	if p.depth+1 > maxNestingDepth {
		return nil, newError(KindUnexpectedToken, tok, "block nesting too deep")
	}

	raw := tok.Text()
	off := 0
	if strings.HasPrefix(raw, "{") && strings.HasSuffix(raw, "}") {
		raw = raw[1 : len(raw)-1]
		off = 1
	}
	trimmed := strings.TrimLeft(raw, " \t\r\n\f")
	off += len(raw) - len(trimmed)
	trimmed = strings.TrimRight(trimmed, " \t\r\n\f")

	return newNested(trimmed, tok.Start()+off, p.depth+1), nil
}

// parseSelectors accumulates simple selectors for one rule set. Pseudo,
// attribute and parenthesis captures following a selector with no pending
// separator are appended to its Classes; combinator delimiters splice the
// next selector's text onto the previous selector's Tag.
func (p *Parser) parseSelectors() []ast.Selector {
	selectors := []ast.Selector{}
	hasSeparator := true

loop:
	for {
		switch p.tok.Type() {
		case lexer.TokenCurlyBlock, lexer.TokenEOF:
			break loop

		case lexer.TokenHash:
			selectors = append(selectors, &ast.SimpleSelector{ID: p.tok.Text()})
			hasSeparator = false
			p.advance()

		case lexer.TokenPseudoSelector, lexer.TokenSquareBlock, lexer.TokenParenBlock:
			if hasSeparator {
				selectors = append(selectors, &ast.SimpleSelector{Tag: p.tok.Text()})
			} else if last, ok := lastSimple(selectors); ok {
				last.Classes = append(last.Classes, p.tok.Text())
			}
			p.advance()

		case lexer.TokenClassSelector, lexer.TokenIdent:
			selectors = append(selectors, &ast.SimpleSelector{Tag: p.tok.Text()})
			hasSeparator = false
			p.advance()

		case lexer.TokenComma:
			hasSeparator = true
			p.advance()

		case lexer.TokenDelim:
			switch p.tok.Text() {
			case "*":
				selectors = append(selectors, &ast.SimpleSelector{Tag: "*"})
				hasSeparator = false
				p.advance()

			case ">", "+", "~":
				p.spliceCombinator(selectors, p.tok.Text())
				hasSeparator = true

			default:
				break loop
			}

		default:
			break loop
		}
	}

	return selectors
}

// spliceCombinator consumes a combinator delimiter plus the following
// selector token and folds both into the previous selector's Tag as the
// literal string "prev comb next". Combinators never become
// CombinatorSelector nodes.
func (p *Parser) spliceCombinator(selectors []ast.Selector, comb string) {
	p.advance()
	if p.tok.Is(lexer.TokenEOF) {
		return
	}

	next := ""
	switch p.tok.Type() {
	case lexer.TokenIdent, lexer.TokenClassSelector:
		next = p.tok.Text()
	case lexer.TokenHash:
		next = "#" + p.tok.Text()
	}

	if last, ok := lastSimple(selectors); ok {
		if last.Tag != "" {
			last.Tag = last.Tag + " " + comb + " " + next
		} else {
			last.Tag = next
		}
	}
	p.advance()
}

func lastSimple(selectors []ast.Selector) (*ast.SimpleSelector, bool) {
	if len(selectors) == 0 {
		return nil, false
	}
	s, ok := selectors[len(selectors)-1].(*ast.SimpleSelector)
	return s, ok
}

// parseRuleSet parses "selectors { ... }". The block interleaves
// declarations and nested rule sets: identifiers and custom properties
// start declarations, selector-starting tokens recurse, comments and
// anything else are skipped. Missing "{", ":" or ";" is fatal.
func (p *Parser) parseRuleSet() (*ast.RuleSet, error) {
	selectors := p.parseSelectors()

	if !p.tok.Is(lexer.TokenCurlyBlock) {
		return nil, newError(KindUnexpectedToken, p.tok, "expected '{' after selectors")
	}

	bp, err := p.nestedParser(p.tok)
	if err != nil {
		return nil, err
	}
	p.advance()

	declarations := []ast.Declaration{}
	nested := []ast.Rule{}

	for !bp.tok.Is(lexer.TokenEOF) {
		switch bp.tok.Type() {
		case lexer.TokenIdent, lexer.TokenCustomProperty:
			decl, err := bp.parseDeclaration()
			if err != nil {
				return nil, err
			}
			declarations = append(declarations, decl)

		case lexer.TokenComment:
			bp.advance()

		case lexer.TokenClassSelector, lexer.TokenHash,
			lexer.TokenParenBlock, lexer.TokenSquareBlock:
			rule, err := bp.parseRuleSet()
			if err != nil {
				return nil, err
			}
			nested = append(nested, rule)

		default:
			bp.advance()
		}
	}

	return &ast.RuleSet{
		Selectors:    selectors,
		Declarations: declarations,
		NestedRules:  nested,
	}, nil
}

func (p *Parser) parseDeclaration() (ast.Declaration, error) {
	property := p.tok.Text()
	p.advance()

	if !p.tok.Is(lexer.TokenColon) {
		return ast.Declaration{}, newError(KindUnexpectedToken, p.tok, "expected ':' after property")
	}
	p.advance()

	value, err := p.parseDeclarationValue()
	if err != nil {
		return ast.Declaration{}, err
	}

	if !p.tok.Is(lexer.TokenSemicolon) {
		return ast.Declaration{}, newError(KindUnexpectedToken, p.tok, "expected ';' after value")
	}
	p.advance()

	return ast.Declaration{Property: property, Value: value}, nil
}

// parseDeclarationValue consumes value tokens until a semicolon, the end
// of the input or a token no value can start from. Commas separate values
// without being emitted; "/" comes back as a literal identifier so
// shorthand separators like font-size/line-height survive.
func (p *Parser) parseDeclarationValue() ([]ast.Value, error) {
	values := []ast.Value{}

loop:
	for {
		switch p.tok.Type() {
		case lexer.TokenSemicolon, lexer.TokenEOF:
			break loop

		case lexer.TokenHash:
			values = append(values, ast.Hex(p.tok.Text()))
			p.advance()

		case lexer.TokenIdent:
			values = append(values, ast.Identifier(p.tok.Text()))
			p.advance()

		case lexer.TokenNumber:
			f, err := parseFloat(p.tok)
			if err != nil {
				return nil, err
			}
			values = append(values, ast.Number(f))
			p.advance()

		case lexer.TokenDimension:
			d, err := splitDimension(p.tok)
			if err != nil {
				return nil, err
			}
			values = append(values, d)
			p.advance()

		case lexer.TokenPercentage:
			f, err := parsePercentage(p.tok)
			if err != nil {
				return nil, err
			}
			values = append(values, ast.Percentage(f))
			p.advance()

		case lexer.TokenQuotedString:
			values = append(values, ast.String(p.tok.Text()))
			p.advance()

		case lexer.TokenUnquotedURL:
			values = append(values, ast.URI(p.tok.Text()))
			p.advance()

		case lexer.TokenCustomProperty:
			values = append(values, ast.Var(p.tok.Text()))
			p.advance()

		case lexer.TokenImportant:
			values = append(values, ast.Identifier("!important"))
			p.advance()

		case lexer.TokenComma:
			p.advance()

		case lexer.TokenFunction:
			name := p.tok.Text()
			p.advance()
			v, err := p.parseFunction(name)
			if err != nil {
				return nil, err
			}
			values = append(values, v)

		case lexer.TokenDelim:
			if p.tok.Text() != "/" {
				break loop
			}
			values = append(values, ast.Identifier("/"))
			p.advance()

		default:
			break loop
		}
	}

	return values, nil
}

// parseFunction dispatches to the name-specific sub-grammar. The cursor
// sits on the first token after the function's opening parenthesis.
func (p *Parser) parseFunction(name string) (ast.Value, error) {
	switch name {
	case "rgb", "rgba":
		return p.parseColorFunction(name)
	case "calc":
		return p.parseCalc()
	case "url":
		return p.parseURL()
	case "rect":
		return p.parseRect()
	default:
		return p.parseGenericFunction(name)
	}
}

// closesFunction reports whether the current token ends a function
// argument list.
func (p *Parser) closesFunction() bool {
	return p.tok.Is(lexer.TokenCloseParen) || p.tok.Is(lexer.TokenParenBlock)
}

func (p *Parser) parseColorFunction(name string) (ast.Value, error) {
	args, err := p.collectNumberArgs(name)
	if err != nil {
		return nil, err
	}

	if len(args) < 3 || len(args) > 4 {
		return nil, newError(KindInvalidArity, p.tok, "invalid number of arguments for rgb/rgba")
	}

	r, err := parseChannel(args[0])
	if err != nil {
		return nil, err
	}
	g, err := parseChannel(args[1])
	if err != nil {
		return nil, err
	}
	b, err := parseChannel(args[2])
	if err != nil {
		return nil, err
	}

	if len(args) == 4 {
		a, err := parseAlpha(args[3])
		if err != nil {
			return nil, err
		}
		return ast.RGBA{R: r, G: g, B: b, A: a}, nil
	}
	return ast.RGB{R: r, G: g, B: b}, nil
}

func (p *Parser) parseRect() (ast.Value, error) {
	args, err := p.collectNumberArgs("rect")
	if err != nil {
		return nil, err
	}

	if len(args) != 4 {
		return nil, newError(KindInvalidArity, p.tok, "invalid number of arguments for rect")
	}

	arguments := make([]ast.Value, 0, len(args))
	for _, tok := range args {
		f, err := parseFloat(tok)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, ast.Number(f))
	}
	return ast.Function{Name: "rect", Arguments: arguments}, nil
}

// collectNumberArgs gathers the comma-or-space separated Number tokens of
// a fixed-arity function, consuming the closing marker.
func (p *Parser) collectNumberArgs(name string) ([]lexer.Token, error) {
	args := []lexer.Token{}

	for {
		switch p.tok.Type() {
		case lexer.TokenNumber:
			args = append(args, p.tok)
			p.advance()

		case lexer.TokenComma:
			p.advance()

		case lexer.TokenCloseParen, lexer.TokenParenBlock:
			p.advance()
			return args, nil

		case lexer.TokenEOF:
			return nil, newError(KindUnterminated, p.tok, "unterminated "+name+"()")

		default:
			return nil, newError(KindUnexpectedToken, p.tok, "invalid "+name+" value")
		}
	}
}

// parseCalc builds the ordered term list of a calc() expression. A
// standalone "%" delimiter becomes a zero-valued percent placeholder
// term; a Percentage token is not a valid calc term.
func (p *Parser) parseCalc() (ast.Value, error) {
	terms := []ast.CalcTerm{}

loop:
	for {
		switch p.tok.Type() {
		case lexer.TokenNumber:
			f, err := parseFloat(p.tok)
			if err != nil {
				return nil, err
			}
			terms = append(terms, ast.CalcNumber{Value: f})
			p.advance()

		case lexer.TokenDimension:
			d, err := splitDimension(p.tok)
			if err != nil {
				return nil, err
			}
			terms = append(terms, ast.CalcNumber{Value: d.Value, Unit: d.Unit})
			p.advance()

		case lexer.TokenDelim:
			switch p.tok.Text() {
			case "%":
				terms = append(terms, ast.CalcNumber{Unit: "%"})
			case "+":
				terms = append(terms, ast.CalcAdd)
			case "-":
				terms = append(terms, ast.CalcSubtract)
			case "*":
				terms = append(terms, ast.CalcMultiply)
			case "/":
				terms = append(terms, ast.CalcDivide)
			default:
				return nil, newError(KindUnexpectedToken, p.tok, "invalid calc term")
			}
			p.advance()

		case lexer.TokenCloseParen, lexer.TokenParenBlock:
			p.advance()
			break loop

		case lexer.TokenEOF:
			return nil, newError(KindUnterminated, p.tok, "unterminated calc()")

		default:
			return nil, newError(KindUnexpectedToken, p.tok, "invalid calc term")
		}
	}

	return ast.Calc{Terms: terms}, nil
}

// parseURL concatenates quoted and unquoted url token text until the
// closing marker.
func (p *Parser) parseURL() (ast.Value, error) {
	var url strings.Builder

loop:
	for {
		switch p.tok.Type() {
		case lexer.TokenUnquotedURL, lexer.TokenQuotedString:
			url.WriteString(p.tok.Text())
			p.advance()

		case lexer.TokenCloseParen, lexer.TokenParenBlock:
			p.advance()
			break loop

		case lexer.TokenEOF:
			return nil, newError(KindUnterminated, p.tok, "unterminated url()")

		default:
			return nil, newError(KindUnexpectedToken, p.tok, "invalid url value")
		}
	}

	return ast.URI(url.String()), nil
}

// parseGenericFunction consumes declaration-value-shaped arguments until
// the closing marker for any function with no dedicated grammar.
func (p *Parser) parseGenericFunction(name string) (ast.Value, error) {
	arguments := []ast.Value{}

	for {
		switch p.tok.Type() {
		case lexer.TokenCloseParen, lexer.TokenParenBlock:
			p.advance()
			return ast.Function{Name: name, Arguments: arguments}, nil

		case lexer.TokenEOF:
			return nil, newError(KindUnterminated, p.tok, "unterminated "+name+"()")

		default:
			vals, err := p.parseDeclarationValue()
			if err != nil {
				return nil, err
			}
			if len(vals) == 0 && !p.closesFunction() && !p.tok.Is(lexer.TokenEOF) {
				return nil, newError(KindUnexpectedToken, p.tok, "invalid argument in "+name+"()")
			}
			arguments = append(arguments, vals...)
		}
	}
}

// parseAtRule collects the prelude as opaque raw strings until a block or
// the end of the input. A block is re-lexed by a nested parser that only
// recognizes rule sets and further at-rules. An at-rule that never opens
// a block is rejected; semicolon-terminated at-rules do not parse.
func (p *Parser) parseAtRule(name string) (*ast.AtRule, error) {
	prelude := []string{}

	for !p.tok.Is(lexer.TokenEOF) {
		switch p.tok.Type() {
		case lexer.TokenCurlyBlock:
			bp, err := p.nestedParser(p.tok)
			if err != nil {
				return nil, err
			}

			rules := []ast.Rule{}
			for !bp.tok.Is(lexer.TokenEOF) {
				switch bp.tok.Type() {
				case lexer.TokenIdent, lexer.TokenClassSelector, lexer.TokenHash:
					rule, err := bp.parseRuleSet()
					if err != nil {
						return nil, err
					}
					rules = append(rules, rule)

				case lexer.TokenAtKeyword:
					inner := bp.tok.Text()
					bp.advance()
					at, err := bp.parseAtRule(inner)
					if err != nil {
						return nil, err
					}
					rules = append(rules, at)

				default:
					bp.advance()
				}
			}

			p.advance()
			return &ast.AtRule{
				Name:    name,
				Prelude: prelude,
				Block:   &ast.Stylesheet{Rules: rules},
			}, nil

		case lexer.TokenIdent, lexer.TokenNumber, lexer.TokenDimension,
			lexer.TokenParenBlock, lexer.TokenSquareBlock:
			prelude = append(prelude, p.tok.Text())
			p.advance()

		default:
			p.advance()
		}
	}

	return nil, newError(KindUnterminated, p.tok, "expected '{' in @-rule")
}

func parseFloat(tok lexer.Token) (float64, error) {
	f, err := strconv.ParseFloat(tok.Text(), 64)
	if err != nil {
		return 0, newError(KindNumberFormat, tok, "malformed number "+strconv.Quote(tok.Text()))
	}
	return f, nil
}

func parsePercentage(tok lexer.Token) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSuffix(tok.Text(), "%"), 64)
	if err != nil {
		return 0, newError(KindNumberFormat, tok, "malformed percentage "+strconv.Quote(tok.Text()))
	}
	return f, nil
}

// splitDimension splits dimension text at its first alphabetic character
// into value and unit.
func splitDimension(tok lexer.Token) (ast.Dimension, error) {
	text := tok.Text()
	i := strings.IndexFunc(text, unicode.IsLetter)
	if i < 0 {
		i = len(text)
	}

	f, err := strconv.ParseFloat(text[:i], 64)
	if err != nil {
		return ast.Dimension{}, newError(KindNumberFormat, tok, "malformed dimension "+strconv.Quote(text))
	}
	return ast.Dimension{Value: f, Unit: text[i:]}, nil
}

func parseChannel(tok lexer.Token) (uint8, error) {
	n, err := strconv.ParseUint(tok.Text(), 10, 8)
	if err != nil {
		return 0, newError(KindNumberFormat, tok, "color channel out of range "+strconv.Quote(tok.Text()))
	}
	return uint8(n), nil
}

func parseAlpha(tok lexer.Token) (float32, error) {
	a, err := strconv.ParseFloat(tok.Text(), 32)
	if err != nil {
		return 0, newError(KindNumberFormat, tok, "malformed alpha "+strconv.Quote(tok.Text()))
	}
	return float32(a), nil
}
