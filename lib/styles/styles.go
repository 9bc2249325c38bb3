// Package styles models themes and nested stylesheet declarations, and
// flattens them into CSS text.
//
// A stylesheet is an ordered list of rules. Each rule has a selector (plus
// optional grouped selectors sharing the same body), its own declarations,
// and nested rules whose selectors are joined to the parent with a space:
//
//	styles.Styles{
//	    {Selector: "p.message", Decls: styles.Decls{{"color", "black"}},
//	        Nested: styles.Styles{
//	            {Selector: "a", Decls: styles.Decls{{"color", "red"}}},
//	        }},
//	}
//
// Selectors starting with "@" are at-rules; their bodies are flattened onto
// a single line.
package styles

import (
	"fmt"
	"strconv"
	"strings"
)

// Decl is a single CSS declaration.
type Decl struct {
	Property string
	Value    any
}

// Decls is an ordered list of declarations. It is also the value type of
// inline style attributes.
type Decls []Decl

// Get returns the value of the last declaration of property.
func (d Decls) Get(property string) (any, bool) {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i].Property == property {
			return d[i].Value, true
		}
	}
	return nil, false
}

// Rule is a selector with its declarations and nested rules.
type Rule struct {
	Selector string
	// Group lists further selectors sharing this rule's body.
	Group  []string
	Decls  Decls
	Nested Styles
}

// Selectors returns the rule's selector followed by its group.
func (r Rule) Selectors() []string {
	return append([]string{r.Selector}, r.Group...)
}

func (r Rule) key() string {
	return strings.Join(r.Selectors(), "\x00")
}

// Styles is an ordered stylesheet.
type Styles []Rule

// Resolve implements Sheet.
func (s Styles) Resolve(*Theme) Styles { return s }

// Sheet is a stylesheet that may depend on the active theme.
type Sheet interface {
	Resolve(theme *Theme) Styles
}

// SheetFunc defers building styles until a theme is known.
type SheetFunc func(theme *Theme) Styles

// Resolve implements Sheet.
func (f SheetFunc) Resolve(theme *Theme) Styles { return f(theme) }

// Use wraps a theme-parameterised stylesheet.
//
//	styles.Use(func(t *styles.Theme) styles.Styles {
//	    return styles.Styles{{Selector: "a", Decls: styles.Decls{{"color", t.Colors.Primary}}}}
//	})
func Use(fn func(theme *Theme) Styles) Sheet { return SheetFunc(fn) }

// worklist entry: either a rule body or a preformatted at-rule body.
type styleNode struct {
	parents []string
	decls   Decls
	nested  Styles
	raw     string
}

// Format flattens styles into CSS, one rule per entry joined by sep.
//
// Rules are visited breadth first: every rule at one nesting depth is
// emitted before any rule nested below it. Declarations keep their order.
func Format(s Styles, sep string) string {
	var result []string
	queue := []styleNode{{nested: s}}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		var content []string
		if node.raw != "" {
			content = append(content, node.raw)
		}
		for _, d := range node.decls {
			if v, ok := FormatValue(d.Value); ok {
				content = append(content, d.Property+": "+v+";")
			}
		}
		for _, rule := range node.nested {
			for _, sel := range rule.Selectors() {
				parents := append(append([]string{}, node.parents...), sel)
				if strings.HasPrefix(sel, "@") {
					queue = append(queue, styleNode{parents: parents, raw: formatAtRule(rule)})
					continue
				}
				queue = append(queue, styleNode{parents: parents, decls: rule.Decls, nested: rule.Nested})
			}
		}

		if len(content) > 0 {
			result = append(result, fmt.Sprintf("%s { %s }", strings.Join(node.parents, " "), strings.Join(content, " ")))
		}
	}

	return strings.Join(result, sep)
}

func formatAtRule(rule Rule) string {
	var parts []string
	for _, d := range rule.Decls {
		if v, ok := FormatValue(d.Value); ok {
			parts = append(parts, d.Property+": "+v+";")
		}
	}
	if inner := Format(rule.Nested, " "); inner != "" {
		parts = append(parts, inner)
	}
	return strings.Join(parts, " ")
}

// FormatValue converts a declaration value to CSS text. Nil values and
// unsupported types report false.
func FormatValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case fmt.Stringer:
		return val.String(), true
	case bool:
		return strconv.FormatBool(val), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	}
	if f, ok := number(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

// Collect merges the top-level rules of every sheet, resolved against
// theme. A rule whose selectors match an earlier rule replaces it in the
// earlier rule's position.
func Collect(theme *Theme, sheets ...Sheet) Styles {
	var out Styles
	index := make(map[string]int)
	for _, sheet := range sheets {
		if sheet == nil {
			continue
		}
		for _, rule := range sheet.Resolve(theme) {
			k := rule.key()
			if i, ok := index[k]; ok {
				out[i] = rule
				continue
			}
			index[k] = len(out)
			out = append(out, rule)
		}
	}
	return out
}
