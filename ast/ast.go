package ast

// Stylesheet is the root of the tree. Rule order is source order and is
// preserved.
type Stylesheet struct {
	Rules []Rule
}

// Rule is either a *RuleSet or an *AtRule
type Rule interface {
	isRule()
}

// RuleSet is a standard CSS rule: selectors, declarations and any rule
// sets nested inside its block.
type RuleSet struct {
	Selectors    []Selector
	Declarations []Declaration
	NestedRules  []Rule
}

// AtRule is an @-rule. Prelude carries the raw parameter tokens as opaque
// strings; Block is nil when the rule has no block.
type AtRule struct {
	Name    string
	Prelude []string
	Block   *Stylesheet
}

func (*RuleSet) isRule() {}
func (*AtRule) isRule()  {}

// Selector is one of *SimpleSelector, *AttributeSelector,
// *PseudoClassSelector, *PseudoElementSelector or *CombinatorSelector.
//
// The parser only ever builds *SimpleSelector values: attribute, pseudo
// and combinator text is folded into Tag and Classes. The richer variants
// are part of the model contract and remain available to callers that
// build trees by hand.
type Selector interface {
	isSelector()
}

// SimpleSelector matches on tag name, id and/or classes. A combinator
// chain is folded into Tag as a single spliced string, for example
// "body > .container".
type SimpleSelector struct {
	Tag     string
	ID      string
	Classes []string
}

// IsEmpty reports whether the selector carries no constraint at all
func (s *SimpleSelector) IsEmpty() bool {
	return s.Tag == "" && s.ID == "" && len(s.Classes) == 0
}

// AttributeSelector matches on an attribute, e.g. [type="text"]
type AttributeSelector struct {
	Attribute string
	Operator  AttributeOperator
	Value     string
}

// AttributeOperator is the comparison operator of an attribute selector
type AttributeOperator uint8

const (
	AttributeOpNone AttributeOperator = iota
	AttributeOpEquals
	AttributeOpIncludes
	AttributeOpDashMatch
	AttributeOpPrefixMatch
	AttributeOpSuffixMatch
	AttributeOpSubstringMatch
)

var attributeOpNames = map[AttributeOperator]string{
	AttributeOpEquals:         "=",
	AttributeOpIncludes:       "~=",
	AttributeOpDashMatch:      "|=",
	AttributeOpPrefixMatch:    "^=",
	AttributeOpSuffixMatch:    "$=",
	AttributeOpSubstringMatch: "*=",
}

func (op AttributeOperator) String() string {
	return attributeOpNames[op]
}

// PseudoClassSelector matches a pseudo class, e.g. :hover, :nth-child(2)
type PseudoClassSelector struct {
	Name     string
	Argument string
}

// PseudoElementSelector matches a pseudo element, e.g. ::before
type PseudoElementSelector struct {
	Name string
}

// CombinatorSelector joins a selector to what precedes it
type CombinatorSelector struct {
	Combinator Combinator
	Selector   Selector
}

func (*SimpleSelector) isSelector()        {}
func (*AttributeSelector) isSelector()     {}
func (*PseudoClassSelector) isSelector()   {}
func (*PseudoElementSelector) isSelector() {}
func (*CombinatorSelector) isSelector()    {}

// Combinator is a selector-joining operator
type Combinator uint8

const (
	CombinatorDescendant Combinator = iota
	CombinatorChild
	CombinatorAdjacentSibling
	CombinatorGeneralSibling
)

var combinatorNames = map[Combinator]string{
	CombinatorDescendant:      " ",
	CombinatorChild:           ">",
	CombinatorAdjacentSibling: "+",
	CombinatorGeneralSibling:  "~",
}

func (c Combinator) String() string {
	return combinatorNames[c]
}

// CombinatorFromString maps combinator text to its Combinator value
func CombinatorFromString(s string) (Combinator, bool) {
	for c, name := range combinatorNames {
		if name == s {
			return c, true
		}
	}
	return 0, false
}

// Declaration is a single "property: value list" pair. The value list
// preserves source order; adjacent values with no separator are
// space-joined shorthand values ("border: 1px solid red").
type Declaration struct {
	Property string
	Value    []Value
}
