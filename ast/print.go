package ast

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Print displays a human-readable representation of a stylesheet
func Print(sheet *Stylesheet) {
	Fprint(os.Stdout, sheet)
}

// Fprint writes a human-readable representation of a stylesheet to w
func Fprint(w io.Writer, sheet *Stylesheet) {
	fprintSheet(w, sheet, 0)
}

func fprintSheet(w io.Writer, sheet *Stylesheet, level int) {
	if sheet == nil {
		return
	}
	for _, rule := range sheet.Rules {
		fprintRule(w, rule, level)
	}
}

func fprintRule(w io.Writer, rule Rule, level int) {
	indent := strings.Repeat("    ", level)

	switch r := rule.(type) {
	case *RuleSet:
		selectors := make([]string, 0, len(r.Selectors))
		for _, s := range r.Selectors {
			selectors = append(selectors, FormatSelector(s))
		}
		fmt.Fprintf(w, "%s(ruleset): %s\n", indent, strings.Join(selectors, ", "))
		for _, d := range r.Declarations {
			values := make([]string, 0, len(d.Value))
			for _, v := range d.Value {
				values = append(values, FormatValue(v))
			}
			fmt.Fprintf(w, "%s    (declaration): %s: %s\n", indent, d.Property, strings.Join(values, " "))
		}
		for _, nested := range r.NestedRules {
			fprintRule(w, nested, level+1)
		}

	case *AtRule:
		fmt.Fprintf(w, "%s(at-rule): @%s %s\n", indent, r.Name, strings.Join(r.Prelude, " "))
		fprintSheet(w, r.Block, level+1)

	default:
		panic("unknown rule type")
	}
}

// FormatSelector renders a selector back to CSS-shaped text
func FormatSelector(sel Selector) string {
	switch s := sel.(type) {
	case *SimpleSelector:
		var b strings.Builder
		b.WriteString(s.Tag)
		if s.ID != "" {
			b.WriteString("#")
			b.WriteString(s.ID)
		}
		for _, class := range s.Classes {
			b.WriteString(class)
		}
		return b.String()

	case *AttributeSelector:
		if s.Operator == AttributeOpNone {
			return "[" + s.Attribute + "]"
		}
		return "[" + s.Attribute + s.Operator.String() + strconv.Quote(s.Value) + "]"

	case *PseudoClassSelector:
		if s.Argument != "" {
			return ":" + s.Name + "(" + s.Argument + ")"
		}
		return ":" + s.Name

	case *PseudoElementSelector:
		return "::" + s.Name

	case *CombinatorSelector:
		inner := ""
		if s.Selector != nil {
			inner = FormatSelector(s.Selector)
		}
		if s.Combinator == CombinatorDescendant {
			return " " + inner
		}
		return s.Combinator.String() + " " + inner

	default:
		panic("unknown selector type")
	}
}

// FormatValue renders a value back to CSS-shaped text
func FormatValue(val Value) string {
	switch v := val.(type) {
	case Identifier:
		return string(v)
	case String:
		return strconv.Quote(string(v))
	case Number:
		return formatFloat(float64(v))
	case Percentage:
		return formatFloat(float64(v)) + "%"
	case Dimension:
		return formatFloat(v.Value) + v.Unit
	case URI:
		return "url(" + string(v) + ")"
	case Var:
		return "var(" + string(v) + ")"
	case Function:
		args := make([]string, 0, len(v.Arguments))
		for _, a := range v.Arguments {
			args = append(args, FormatValue(a))
		}
		return v.Name + "(" + strings.Join(args, ", ") + ")"
	case Calc:
		terms := make([]string, 0, len(v.Terms))
		for _, t := range v.Terms {
			terms = append(terms, FormatCalcTerm(t))
		}
		return "calc(" + strings.Join(terms, " ") + ")"
	case Hex:
		return "#" + string(v)
	case RGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", v.R, v.G, v.B)
	case RGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", v.R, v.G, v.B, formatFloat(float64(v.A)))
	case HSL:
		return fmt.Sprintf("hsl(%s, %s, %s)",
			formatFloat(float64(v.H)), formatFloat(float64(v.S)), formatFloat(float64(v.L)))
	case HSLA:
		return fmt.Sprintf("hsla(%s, %s, %s, %s)",
			formatFloat(float64(v.H)), formatFloat(float64(v.S)), formatFloat(float64(v.L)), formatFloat(float64(v.A)))
	case NamedColor:
		return string(v)
	case Angle:
		return formatFloat(v.Value) + v.Unit.String()
	case Time:
		return formatFloat(v.Value) + v.Unit.String()
	case Frequency:
		return formatFloat(v.Value) + v.Unit.String()
	case Resolution:
		return formatFloat(v.Value) + v.Unit.String()
	case LinearGradient:
		return formatGradient("linear-gradient", formatDirection(v.Direction), v.ColorStops)
	case RepeatingLinearGradient:
		return formatGradient("repeating-linear-gradient", formatDirection(v.Direction), v.ColorStops)
	case RadialGradient:
		return formatGradient("radial-gradient", formatRadialPrelude(v), v.ColorStops)
	case RepeatingRadialGradient:
		return formatGradient("repeating-radial-gradient", formatRadialPrelude(RadialGradient(v)), v.ColorStops)
	default:
		panic("unknown value type")
	}
}

// FormatCalcTerm renders one calc() term
func FormatCalcTerm(term CalcTerm) string {
	switch t := term.(type) {
	case CalcNumber:
		return formatFloat(t.Value) + t.Unit
	case CalcOperator:
		return t.String()
	default:
		panic("unknown calc term type")
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatDirection(a *Angle) string {
	if a == nil {
		return ""
	}
	return FormatValue(*a)
}

func formatRadialPrelude(g RadialGradient) string {
	parts := []string{}
	if g.Shape != "" {
		parts = append(parts, g.Shape)
	}
	if g.Size != "" {
		parts = append(parts, g.Size)
	}
	if g.Position != nil {
		pos := []string{}
		if g.Position.X != nil {
			pos = append(pos, FormatValue(g.Position.X))
		}
		if g.Position.Y != nil {
			pos = append(pos, FormatValue(g.Position.Y))
		}
		if len(pos) > 0 {
			parts = append(parts, "at "+strings.Join(pos, " "))
		}
	}
	return strings.Join(parts, " ")
}

func formatGradient(name, prelude string, stops []ColorStop) string {
	parts := []string{}
	if prelude != "" {
		parts = append(parts, prelude)
	}
	for _, stop := range stops {
		s := FormatValue(stop.Color)
		if stop.Position != nil {
			s += " " + FormatValue(stop.Position)
		}
		parts = append(parts, s)
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}
