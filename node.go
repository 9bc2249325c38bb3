package hxel

import (
	"context"
	"io"
	"reflect"
	"strings"

	"github.com/pthm/hxel/lib/styles"
)

// Node is any value in an element tree. Every node is backed by an
// Element holding its kind, children and attributes.
type Node interface {
	Base() *Element
}

// Renderer is a node whose content is defined by another node. Rendering
// calls Render repeatedly until the result is no longer a Renderer or stops
// changing.
type Renderer interface {
	Node
	Render(ctx context.Context) Node
}

// Serializer is a node that writes its own markup. Classes of the
// components that rendered to it are not applied.
type Serializer interface {
	Node
	WriteHTML(ctx context.Context, w io.Writer) error
}

// Element is the concrete node. Elements are created through a Kind and
// are not modified after construction, apart from SetDefault and Use.
type Element struct {
	kind     *Kind
	children []any
	attrs    Attrs
	theme    *styles.Theme
}

// Base implements Node.
func (e *Element) Base() *Element { return e }

// Kind returns the element's kind.
func (e *Element) Kind() *Kind { return e.kind }

// Children returns the children in order. The slice must not be modified.
func (e *Element) Children() []any { return e.children }

// Attrs returns the attributes in order. The slice must not be modified.
func (e *Element) Attrs() Attrs { return e.attrs }

// Len returns the number of children.
func (e *Element) Len() int { return len(e.children) }

// Attr returns the attribute stored under key.
func (e *Element) Attr(key string) (any, bool) { return e.attrs.Get(key) }

// SetDefault sets key to value unless the attribute is already present.
func (e *Element) SetDefault(key string, value any) {
	if !e.attrs.Has(key) {
		e.attrs = append(e.attrs, Attr{Key: key, Value: value})
	}
}

// Use binds theme to this node's subtree.
func (e *Element) Use(theme *styles.Theme) { e.theme = theme }

// BoundTheme returns the theme bound with Use, or nil.
func (e *Element) BoundTheme() *styles.Theme { return e.theme }

// Theme returns the theme bound to this node, falling back to the theme of
// ctx and then the default theme.
func (e *Element) Theme(ctx context.Context) *styles.Theme {
	if e.theme != nil {
		return e.theme
	}
	return ThemeFrom(ctx)
}

// AttrsFor returns the attributes declared by kind's schema, for
// forwarding to a child of that kind.
//
//	func (b *Button) Render(ctx context.Context) hxel.Node {
//	    return html.Button(b.Children(), b.AttrsFor(html.ButtonKind))
//	}
func (e *Element) AttrsFor(kind *Kind) Attrs {
	var out Attrs
	for _, attr := range e.attrs {
		if kind.Schema.Declares(attr.Key) {
			out = append(out, attr)
		}
	}
	return out
}

// Text returns the text content of the subtree.
func (e *Element) Text() string {
	var b strings.Builder
	for _, child := range e.children {
		if n, ok := child.(Node); ok {
			b.WriteString(n.Base().Text())
			continue
		}
		b.WriteString(primitiveText(child, false))
	}
	return b.String()
}

// isSimple reports whether the element holds exactly one primitive child.
func (e *Element) isSimple() bool {
	return len(e.children) == 1 && isPrimitive(e.children[0])
}

func (e *Element) setup(kind *Kind, children []any, attrs Attrs) {
	e.kind = kind
	e.children = children
	e.attrs = attrs
}

// Use binds theme to n's subtree and returns n.
func Use[N Node](theme *styles.Theme, n N) N {
	n.Base().Use(theme)
	return n
}

// Equal reports whether two nodes have the same concrete type and kind,
// equal children in order and equal attributes in any order.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	ea, eb := a.Base(), b.Base()
	if ea == eb {
		return true
	}
	if ea.kind != eb.kind || len(ea.children) != len(eb.children) {
		return false
	}
	for i := range ea.children {
		if !childEqual(ea.children[i], eb.children[i]) {
			return false
		}
	}
	return ea.attrs.Equal(eb.attrs)
}

func childEqual(x, y any) bool {
	if xn, ok := x.(Node); ok {
		yn, ok := y.(Node)
		return ok && Equal(xn, yn)
	}
	return x == y
}
