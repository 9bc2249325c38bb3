package html

import (
	"context"
	"fmt"
	"io"

	"github.com/pthm/hxel"
	"github.com/pthm/hxel/lib/styles"
)

// StyleKind is the kind of <style> elements.
var StyleKind = hxel.DefineNode[StyleElement]("style", hxel.KindSpec{
	Tag:          "style",
	AlwaysPaired: true,
	Children:     hxel.NoChildren,
	Schema:       styleAttrs,
})

// StyleElement writes a stylesheet resolved at render time, so the theme
// of the surrounding tree applies.
type StyleElement struct {
	hxel.Element
	css func(ctx context.Context, theme *styles.Theme) (string, error)
}

// WriteHTML writes <style attrs>\n css \n</style>.
func (s *StyleElement) WriteHTML(ctx context.Context, w io.Writer) error {
	css := ""
	if s.css != nil {
		var err error
		if css, err = s.css(ctx, s.Theme(ctx)); err != nil {
			return fmt.Errorf("html: style: %w", err)
		}
	}
	_, err := io.WriteString(w, "<style"+hxel.RenderAttrs(StyleKind.Schema, s.Attrs())+">\n"+css+"\n</style>")
	return err
}

func newStyle(css func(context.Context, *styles.Theme) (string, error), args []any) *StyleElement {
	s := StyleKind.New(args...).(*StyleElement)
	s.css = css
	return s
}

// Style creates a <style> element for sheet.
//
//	html.Style(styles.Styles{
//	    {Selector: "a", Decls: styles.Decls{{Property: "color", Value: "red"}}},
//	})
func Style(sheet styles.Sheet, attrs ...any) *StyleElement {
	return newStyle(func(_ context.Context, theme *styles.Theme) (string, error) {
		if sheet == nil {
			return "", nil
		}
		return styles.Format(sheet.Resolve(theme), "\n"), nil
	}, attrs)
}

// StyleFrom creates a <style> element with the collected styles of kinds.
func StyleFrom(kinds ...*hxel.Kind) *StyleElement {
	return newStyle(func(_ context.Context, theme *styles.Theme) (string, error) {
		return styles.Format(hxel.CollectStyles(theme, kinds...), "\n"), nil
	}, []any{hxel.Type("text/css")})
}

// StyleFromRegistry creates a <style> element with the styles of every
// kind registered in reg. With cached set the stylesheet is memoised by
// the registry's style cache.
func StyleFromRegistry(reg *hxel.Registry, cached bool) *StyleElement {
	return newStyle(func(ctx context.Context, theme *styles.Theme) (string, error) {
		return reg.Stylesheet(ctx, theme, cached)
	}, []any{hxel.Type("text/css")})
}
