package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxidlabs/cssparser/ast"
)

func TestParseSimpleRuleSet(t *testing.T) {
	sheet, err := Parse("body { color: #fff; }")
	require.NoError(t, err)

	expected := &ast.Stylesheet{
		Rules: []ast.Rule{
			&ast.RuleSet{
				Selectors: []ast.Selector{
					&ast.SimpleSelector{Tag: "body"},
				},
				Declarations: []ast.Declaration{
					{Property: "color", Value: []ast.Value{ast.Hex("fff")}},
				},
				NestedRules: []ast.Rule{},
			},
		},
	}
	assert.Equal(t, expected, sheet)

	sheet, err = Parse("#main { background-color: #fff; }")
	require.NoError(t, err)

	expected = &ast.Stylesheet{
		Rules: []ast.Rule{
			&ast.RuleSet{
				Selectors: []ast.Selector{
					&ast.SimpleSelector{ID: "main"},
				},
				Declarations: []ast.Declaration{
					{Property: "background-color", Value: []ast.Value{ast.Hex("fff")}},
				},
				NestedRules: []ast.Rule{},
			},
		},
	}
	assert.Equal(t, expected, sheet)

	sheet, err = Parse(".container { width: 100%; }")
	require.NoError(t, err)

	expected = &ast.Stylesheet{
		Rules: []ast.Rule{
			&ast.RuleSet{
				Selectors: []ast.Selector{
					&ast.SimpleSelector{Tag: ".container"},
				},
				Declarations: []ast.Declaration{
					{Property: "width", Value: []ast.Value{ast.Percentage(100.0)}},
				},
				NestedRules: []ast.Rule{},
			},
		},
	}
	assert.Equal(t, expected, sheet)
}

func TestParseMultiValue(t *testing.T) {
	sheet, err := Parse("body { font-family: Arial, sans-serif; }")
	require.NoError(t, err)

	expected := &ast.Stylesheet{
		Rules: []ast.Rule{
			&ast.RuleSet{
				Selectors: []ast.Selector{
					&ast.SimpleSelector{Tag: "body"},
				},
				Declarations: []ast.Declaration{
					{
						Property: "font-family",
						Value: []ast.Value{
							ast.Identifier("Arial"),
							ast.Identifier("sans-serif"),
						},
					},
				},
				NestedRules: []ast.Rule{},
			},
		},
	}
	assert.Equal(t, expected, sheet)
}

func TestParseNestedRuleSet(t *testing.T) {
	sheet, err := Parse("body { color: #fff; .container { width: 100%; } }")
	require.NoError(t, err)

	expected := &ast.Stylesheet{
		Rules: []ast.Rule{
			&ast.RuleSet{
				Selectors: []ast.Selector{
					&ast.SimpleSelector{Tag: "body"},
				},
				Declarations: []ast.Declaration{
					{Property: "color", Value: []ast.Value{ast.Hex("fff")}},
				},
				NestedRules: []ast.Rule{
					&ast.RuleSet{
						Selectors: []ast.Selector{
							&ast.SimpleSelector{Tag: ".container"},
						},
						Declarations: []ast.Declaration{
							{Property: "width", Value: []ast.Value{ast.Percentage(100.0)}},
						},
						NestedRules: []ast.Rule{},
					},
				},
			},
		},
	}
	assert.Equal(t, expected, sheet)
}

func TestParseDeepNesting(t *testing.T) {
	// Two levels of same-type nesting close the block capture early, so
	// re-lexing the block meets an unmatched inner opener and the
	// declaration grammar rejects it.
	_, err := Parse("a { b { c { x: y; } } }")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindUnexpectedToken, perr.Kind)
	assert.Equal(t, "expected ':' after property", perr.Msg)
	assert.Equal(t, 6, perr.Start)
	assert.Equal(t, 7, perr.End)
}

func TestParseAtRule(t *testing.T) {
	sheet, err := Parse("@media screen and (max-width: 600px) { body { color: #000; } }")
	require.NoError(t, err)

	expected := &ast.Stylesheet{
		Rules: []ast.Rule{
			&ast.AtRule{
				Name:    "media",
				Prelude: []string{"screen", "and", "(max-width: 600px)"},
				Block: &ast.Stylesheet{
					Rules: []ast.Rule{
						&ast.RuleSet{
							Selectors: []ast.Selector{
								&ast.SimpleSelector{Tag: "body"},
							},
							Declarations: []ast.Declaration{
								{Property: "color", Value: []ast.Value{ast.Hex("000")}},
							},
							NestedRules: []ast.Rule{},
						},
					},
				},
			},
		},
	}
	assert.Equal(t, expected, sheet)
}

func TestParseNestedAtRule(t *testing.T) {
	sheet, err := Parse("@media screen { @media print { } }")
	require.NoError(t, err)

	require.Len(t, sheet.Rules, 1)
	outer := sheet.Rules[0].(*ast.AtRule)
	assert.Equal(t, "media", outer.Name)
	assert.Equal(t, []string{"screen"}, outer.Prelude)

	require.NotNil(t, outer.Block)
	require.Len(t, outer.Block.Rules, 1)
	inner := outer.Block.Rules[0].(*ast.AtRule)
	assert.Equal(t, "media", inner.Name)
	assert.Equal(t, []string{"print"}, inner.Prelude)
	require.NotNil(t, inner.Block)
	assert.Empty(t, inner.Block.Rules)
}

func TestParseSelectorGroups(t *testing.T) {
	css := `
	*,
	*::before,
	*::after {
		box-sizing: border-box;
	}`

	sheet, err := Parse(css)
	require.NoError(t, err)

	expected := &ast.Stylesheet{
		Rules: []ast.Rule{
			&ast.RuleSet{
				Selectors: []ast.Selector{
					&ast.SimpleSelector{Tag: "*"},
					&ast.SimpleSelector{Tag: "*", Classes: []string{"::before"}},
					&ast.SimpleSelector{Tag: "*", Classes: []string{"::after"}},
				},
				Declarations: []ast.Declaration{
					{Property: "box-sizing", Value: []ast.Value{ast.Identifier("border-box")}},
				},
				NestedRules: []ast.Rule{},
			},
		},
	}
	assert.Equal(t, expected, sheet)
}

func TestParsePseudoSelectorAndCustomProperty(t *testing.T) {
	sheet, err := Parse(":root { --blue: #007bff; }")
	require.NoError(t, err)

	expected := &ast.Stylesheet{
		Rules: []ast.Rule{
			&ast.RuleSet{
				Selectors: []ast.Selector{
					&ast.SimpleSelector{Tag: ":root"},
				},
				Declarations: []ast.Declaration{
					{Property: "--blue", Value: []ast.Value{ast.Hex("007bff")}},
				},
				NestedRules: []ast.Rule{},
			},
		},
	}
	assert.Equal(t, expected, sheet)
}

func TestParseStringValues(t *testing.T) {
	css := `
	:root {
		--font-family-monospace: SFMono-Regular, Menlo, Monaco, Consolas,
			"Liberation Mono", "Courier New", monospace;
	}`

	sheet, err := Parse(css)
	require.NoError(t, err)

	require.Len(t, sheet.Rules, 1)
	rule := sheet.Rules[0].(*ast.RuleSet)
	require.Len(t, rule.Declarations, 1)

	assert.Equal(t, "--font-family-monospace", rule.Declarations[0].Property)
	assert.Equal(t, []ast.Value{
		ast.Identifier("SFMono-Regular"),
		ast.Identifier("Menlo"),
		ast.Identifier("Monaco"),
		ast.Identifier("Consolas"),
		ast.String("Liberation Mono"),
		ast.String("Courier New"),
		ast.Identifier("monospace"),
	}, rule.Declarations[0].Value)
}

func TestParseRGBFunction(t *testing.T) {
	sheet, err := Parse("body { color: rgb(255, 0, 0); }")
	require.NoError(t, err)

	rule := sheet.Rules[0].(*ast.RuleSet)
	assert.Equal(t, []ast.Value{ast.RGB{R: 255, G: 0, B: 0}}, rule.Declarations[0].Value)
}

func TestParseRGBAFunction(t *testing.T) {
	sheet, err := Parse("body { color: rgba(255, 128, 0, 0.5); }")
	require.NoError(t, err)

	rule := sheet.Rules[0].(*ast.RuleSet)
	assert.Equal(t, []ast.Value{ast.RGBA{R: 255, G: 128, B: 0, A: 0.5}}, rule.Declarations[0].Value)
}

func TestParseCombinators(t *testing.T) {
	sheet, err := Parse(".custom-switch .custom-control-label::before { left: -2.25rem; }")
	require.NoError(t, err)

	expected := &ast.Stylesheet{
		Rules: []ast.Rule{
			&ast.RuleSet{
				Selectors: []ast.Selector{
					&ast.SimpleSelector{Tag: ".custom-switch"},
					&ast.SimpleSelector{Tag: ".custom-control-label", Classes: []string{"::before"}},
				},
				Declarations: []ast.Declaration{
					{Property: "left", Value: []ast.Value{ast.Dimension{Value: -2.25, Unit: "rem"}}},
				},
				NestedRules: []ast.Rule{},
			},
		},
	}
	assert.Equal(t, expected, sheet)
}

func TestParseCombinatorSplicing(t *testing.T) {
	// Combinators are folded into the previous selector's Tag as one
	// literal string, never into CombinatorSelector nodes.
	sheet, err := Parse("body > .container + .container { margin-top: 1rem; }")
	require.NoError(t, err)

	expected := &ast.Stylesheet{
		Rules: []ast.Rule{
			&ast.RuleSet{
				Selectors: []ast.Selector{
					&ast.SimpleSelector{Tag: "body > .container + .container"},
				},
				Declarations: []ast.Declaration{
					{Property: "margin-top", Value: []ast.Value{ast.Dimension{Value: 1.0, Unit: "rem"}}},
				},
				NestedRules: []ast.Rule{},
			},
		},
	}
	assert.Equal(t, expected, sheet)
}

func TestParseSiblingCombinator(t *testing.T) {
	css := `
	.custom-switch .custom-control-input:checked ~ .custom-control-label::after {
		background-color: #fff;
		-webkit-transform: translateX(0.75rem);
		transform: translateX(0.75rem);
	}`

	sheet, err := Parse(css)
	require.NoError(t, err)

	translate := ast.Function{
		Name:      "translateX",
		Arguments: []ast.Value{ast.Dimension{Value: 0.75, Unit: "rem"}},
	}
	expected := &ast.Stylesheet{
		Rules: []ast.Rule{
			&ast.RuleSet{
				Selectors: []ast.Selector{
					&ast.SimpleSelector{Tag: ".custom-switch"},
					&ast.SimpleSelector{
						Tag:     ".custom-control-input ~ .custom-control-label",
						Classes: []string{":checked"},
					},
					&ast.SimpleSelector{Tag: "::after"},
				},
				Declarations: []ast.Declaration{
					{Property: "background-color", Value: []ast.Value{ast.Hex("fff")}},
					{Property: "-webkit-transform", Value: []ast.Value{translate}},
					{Property: "transform", Value: []ast.Value{translate}},
				},
				NestedRules: []ast.Rule{},
			},
		},
	}
	assert.Equal(t, expected, sheet)
}

func TestParseCalc(t *testing.T) {
	sheet, err := Parse("body { width: calc(100 % - 20px); }")
	require.NoError(t, err)

	rule := sheet.Rules[0].(*ast.RuleSet)
	assert.Equal(t, []ast.Value{
		ast.Calc{Terms: []ast.CalcTerm{
			ast.CalcNumber{Value: 100},
			ast.CalcNumber{Unit: "%"},
			ast.CalcSubtract,
			ast.CalcNumber{Value: 20, Unit: "px"},
		}},
	}, rule.Declarations[0].Value)
}

func TestParseCalcRejectsPercentageToken(t *testing.T) {
	// A percentage literal is not a valid calc term; only a standalone
	// "%" delimiter is folded in, as a zero-valued placeholder.
	_, err := Parse("body { width: calc(100% - 20px); }")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindUnexpectedToken, perr.Kind)
	assert.Equal(t, "invalid calc term", perr.Msg)
	assert.Equal(t, 19, perr.Start)
	assert.Equal(t, 23, perr.End)
}

func TestParseRect(t *testing.T) {
	sheet, err := Parse("body { clip: rect(0, 0, 10, 10); }")
	require.NoError(t, err)

	rule := sheet.Rules[0].(*ast.RuleSet)
	assert.Equal(t, []ast.Value{
		ast.Function{Name: "rect", Arguments: []ast.Value{
			ast.Number(0), ast.Number(0), ast.Number(10), ast.Number(10),
		}},
	}, rule.Declarations[0].Value)
}

func TestParseURLFunction(t *testing.T) {
	sheet, err := Parse(`body { background: url("a.png"); }`)
	require.NoError(t, err)

	rule := sheet.Rules[0].(*ast.RuleSet)
	assert.Equal(t, []ast.Value{ast.URI("a.png")}, rule.Declarations[0].Value)
}

func TestParseUnquotedURL(t *testing.T) {
	sheet, err := Parse("body { background: url(a.png); }")
	require.NoError(t, err)

	rule := sheet.Rules[0].(*ast.RuleSet)
	assert.Equal(t, []ast.Value{ast.URI("a.png")}, rule.Declarations[0].Value)
}

func TestParseVarFunction(t *testing.T) {
	sheet, err := Parse("body { color: var(--blue); }")
	require.NoError(t, err)

	rule := sheet.Rules[0].(*ast.RuleSet)
	assert.Equal(t, []ast.Value{
		ast.Function{Name: "var", Arguments: []ast.Value{ast.Var("--blue")}},
	}, rule.Declarations[0].Value)
}

func TestParseImportantAndSlash(t *testing.T) {
	sheet, err := Parse("body { font: 12px/1.5 serif !important; }")
	require.NoError(t, err)

	rule := sheet.Rules[0].(*ast.RuleSet)
	assert.Equal(t, []ast.Value{
		ast.Dimension{Value: 12, Unit: "px"},
		ast.Identifier("/"),
		ast.Number(1.5),
		ast.Identifier("serif"),
		ast.Identifier("!important"),
	}, rule.Declarations[0].Value)
}

func TestParseCommentsInsideBlock(t *testing.T) {
	sheet, err := Parse("body { /* base color */ color: red; }")
	require.NoError(t, err)

	rule := sheet.Rules[0].(*ast.RuleSet)
	require.Len(t, rule.Declarations, 1)
	assert.Equal(t, "color", rule.Declarations[0].Property)
}

func TestTopLevelRecoveryIsLenient(t *testing.T) {
	// Tokens that cannot start a rule are skipped at the top level, never
	// fatal.
	sheet, err := Parse("} ; <!-- --> body { color: red; }")
	require.NoError(t, err)

	require.Len(t, sheet.Rules, 1)
	rule := sheet.Rules[0].(*ast.RuleSet)
	assert.Equal(t, []ast.Selector{&ast.SimpleSelector{Tag: "body"}}, rule.Selectors)
}

func TestMissingColonIsFatal(t *testing.T) {
	_, err := Parse("body { color #fff; }")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindUnexpectedToken, perr.Kind)
	assert.Equal(t, "expected ':' after property", perr.Msg)
	// Positioned at the token right after the property, in original
	// buffer coordinates.
	assert.Equal(t, 13, perr.Start)
	assert.Equal(t, 17, perr.End)
}

func TestUnspacedDeclarationIsFatal(t *testing.T) {
	// "color:red" lexes ":red" as a pseudo selector, never as a colon
	// plus a value, so the declaration is rejected.
	_, err := Parse("body { color:red; }")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindUnexpectedToken, perr.Kind)
	assert.Equal(t, "expected ':' after property", perr.Msg)
	assert.Equal(t, 12, perr.Start)
	assert.Equal(t, 16, perr.End)
}

func TestMissingSemicolonIsFatal(t *testing.T) {
	_, err := Parse("body { color: #fff }")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindUnexpectedToken, perr.Kind)
	assert.Equal(t, "expected ';' after value", perr.Msg)
	assert.Equal(t, 18, perr.Start)
}

func TestMissingBlockIsFatal(t *testing.T) {
	_, err := Parse("body color: red;")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindUnexpectedToken, perr.Kind)
	assert.Equal(t, "expected '{' after selectors", perr.Msg)
	assert.Equal(t, 10, perr.Start)
}

func TestRGBArity(t *testing.T) {
	_, err := Parse("body { color: rgb(255, 0); }")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindInvalidArity, perr.Kind)
}

func TestRectArity(t *testing.T) {
	_, err := Parse("body { clip: rect(0, 0, 0); }")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindInvalidArity, perr.Kind)
}

func TestRGBChannelRange(t *testing.T) {
	_, err := Parse("body { color: rgb(300, 0, 0); }")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindNumberFormat, perr.Kind)
}

func TestRGBRejectsNonNumbers(t *testing.T) {
	_, err := Parse("body { color: rgb(255, red, 0); }")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindUnexpectedToken, perr.Kind)
	assert.Equal(t, "invalid rgb value", perr.Msg)
}

func TestBlocklessAtRuleIsRejected(t *testing.T) {
	// Semicolon-terminated at-rules do not parse: the grammar requires a
	// trailing block.
	_, err := Parse("@import url(x.css);")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindUnterminated, perr.Kind)
	assert.Equal(t, "expected '{' in @-rule", perr.Msg)
}

func TestNestingDepthLimit(t *testing.T) {
	p := newNested("a { color: red; }", 0, maxNestingDepth)

	_, err := p.ParseStylesheet()
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindUnexpectedToken, perr.Kind)
	assert.Equal(t, "block nesting too deep", perr.Msg)
}

func TestUnterminatedFunction(t *testing.T) {
	_, err := Parse("body { color: rgb(255, 0, 0")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
}
