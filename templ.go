package hxel

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Templ adapts n to a templ component so it can be used from .templ files.
func Templ(n Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Write(ctx, w, n)
	})
}

var templKind = DefineElement("Templ", KindSpec{Children: NoChildren})

type templNode struct {
	Element
	component templ.Component
}

// WriteHTML implements Serializer.
func (t *templNode) WriteHTML(ctx context.Context, w io.Writer) error {
	return t.component.Render(ctx, w)
}

// FromTempl embeds a templ component in an element tree. Its output is
// written as is.
func FromTempl(c templ.Component) Node {
	n := &templNode{component: c}
	n.setup(templKind, nil, nil)
	return n
}
