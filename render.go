package hxel

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// MaxRenderDepth bounds the number of Render calls made for one node.
// Exceeding it fails with ErrRenderLoop.
const MaxRenderDepth = 1024

// HTML renders n to a string.
func HTML(ctx context.Context, n Node) (string, error) {
	var b strings.Builder
	if err := Write(ctx, &b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// MustHTML renders n with a background context and panics on error.
func MustHTML(n Node) string {
	out, err := HTML(context.Background(), n)
	if err != nil {
		panic(err)
	}
	return out
}

// Write renders n to w.
//
// Components are rendered until they reduce to an element. Classes of
// every kind along the way are added to the element's class attribute,
// and themes bound with Use apply to the whole subtree.
func Write(ctx context.Context, w io.Writer, n Node) error {
	hw := &htmlWriter{w: w}
	if err := writeNode(ctx, hw, n); err != nil {
		return err
	}
	return hw.err
}

// htmlWriter keeps the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) Write(p []byte) (int, error) {
	if h.err != nil {
		return 0, h.err
	}
	n, err := h.w.Write(p)
	h.err = err
	return n, err
}

func (h *htmlWriter) str(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

// resolve renders n to its fixpoint.
func resolve(ctx context.Context, n Node) (Node, []string, context.Context, error) {
	el := n.Base()
	if el == nil || el.kind == nil {
		return nil, nil, ctx, fmt.Errorf("hxel: render of uninitialised node %T", n)
	}
	classes := append([]string(nil), el.kind.Classes...)
	ctx = bindTheme(ctx, el)

	for depth := 0; ; depth++ {
		r, ok := n.(Renderer)
		if !ok {
			return n, classes, ctx, nil
		}
		if depth == MaxRenderDepth {
			return nil, nil, ctx, fmt.Errorf("%w: %s after %d renders", ErrRenderLoop, el.kind.Name, depth)
		}

		next := r.Render(ctx)
		if next == nil || next.Base() == nil || next.Base().kind == nil {
			return nil, nil, ctx, fmt.Errorf("hxel: %s rendered an uninitialised node", el.kind.Name)
		}
		if next.Base() == el || Equal(next, n) {
			return n, classes, ctx, nil
		}

		n, el = next, next.Base()
		classes = append(classes, el.kind.Classes...)
		ctx = bindTheme(ctx, el)
	}
}

func bindTheme(ctx context.Context, el *Element) context.Context {
	if el.theme != nil {
		return WithTheme(ctx, el.theme)
	}
	return ctx
}

func writeNode(ctx context.Context, w *htmlWriter, n Node) error {
	leaf, classes, ctx, err := resolve(ctx, n)
	if err != nil {
		return err
	}

	if s, ok := leaf.(Serializer); ok {
		return s.WriteHTML(ctx, w)
	}

	el := leaf.Base()
	k := el.kind

	if k.Header != "" {
		w.str(k.Header + "\n")
	}
	if k.Transparent() {
		return writeChildren(ctx, w, el.children)
	}

	w.str("<" + k.Tag)
	for _, attr := range mergeClasses(FormatAttrs(k.Schema, el.attrs, true), classes) {
		w.str(" " + formatAttr(attr.Key, attr.Value.(string)))
	}

	if len(el.children) == 0 && !k.AlwaysPaired {
		w.str(" />")
		return nil
	}

	w.str(">")
	if err := writeChildren(ctx, w, el.children); err != nil {
		return err
	}
	w.str("</" + k.Tag + ">")
	return nil
}

func writeChildren(ctx context.Context, w *htmlWriter, children []any) error {
	for _, child := range children {
		if n, ok := child.(Node); ok {
			if err := writeNode(ctx, w, n); err != nil {
				return err
			}
			continue
		}
		w.str(primitiveText(child, true))
	}
	return nil
}

func mergeClasses(attrs Attrs, classes []string) Attrs {
	if len(classes) == 0 {
		return attrs
	}
	joined := strings.Join(classes, " ")
	for i := range attrs {
		if attrs[i].Key == "class" {
			attrs[i].Value = attrs[i].Value.(string) + " " + joined
			return attrs
		}
	}
	return append(attrs, Attr{Key: "class", Value: joined})
}

// RenderAttrs formats attrs for a start tag, each preceded by a space.
func RenderAttrs(schema Schema, attrs Attrs) string {
	var b strings.Builder
	for _, attr := range FormatAttrs(schema, attrs, true) {
		b.WriteString(" " + formatAttr(attr.Key, attr.Value.(string)))
	}
	return b.String()
}

// formatAttr writes key="value", switching to single quotes when the value
// contains a double quote.
func formatAttr(key, value string) string {
	if !strings.Contains(value, `"`) {
		return key + `="` + value + `"`
	}
	if !strings.Contains(value, "'") {
		return key + "='" + value + "'"
	}
	return key + `="` + strings.ReplaceAll(value, `"`, "&quot;") + `"`
}
