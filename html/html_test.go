package html

import (
	"context"
	"errors"
	"testing"

	"github.com/pthm/hxel"
	"github.com/pthm/hxel/lib/styles"
)

func TestElements(t *testing.T) {
	tests := []struct {
		name string
		node hxel.Node
		want string
	}{
		{"div", Div("a < b"), "<div>a &lt; b</div>"},
		{"empty div", Div(), "<div></div>"},
		{"empty script", Script(hxel.Src("/app.js")), `<script src="/app.js"></script>`},
		{"script body", Script(hxel.JavaScript("if (a < b) go()")), "<script>if (a < b) go()</script>"},
		{"iframe", Iframe(hxel.Src("/embed")), `<iframe src="/embed"></iframe>`},
		{"br", Br(), "<br />"},
		{"img", Img(hxel.Src("/a.png"), hxel.A("alt", "A")), `<img src="/a.png" alt="A" />`},
		{"input", Input(hxel.Type("checkbox"), hxel.A("checked", true)), `<input type="checkbox" checked="checked" />`},
		{"link", A(hxel.Href("/docs"), "Docs"), `<a href="/docs">Docs</a>`},
		{"list", Ul(Li("one"), Li("two")), "<ul><li>one</li><li>two</li></ul>"},
		{"blank", Blank("a", B("b")), "a<b>b</b>"},
		{
			"document",
			HTML(Head(Title("T")), Body(P("x"))),
			"<!doctype html>\n<html><head><title>T</title></head><body><p>x</p></body></html>",
		},
		{"htmx attrs", Button(hxel.HxPost("/save"), hxel.HxSwap(hxel.SwapOuter), "Save"), `<button hx-post="/save" hx-swap="outerHTML">Save</button>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hxel.MustHTML(tt.node); got != tt.want {
				t.Errorf("HTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElementValidation(t *testing.T) {
	tests := []struct {
		name    string
		kind    *hxel.Kind
		args    []any
		wantErr error
	}{
		{"void with child", BrKind, []any{"x"}, hxel.ErrInvalidChildren},
		{"title with element", TitleKind, []any{B("x")}, hxel.ErrInvalidChildren},
		{"iframe with child", IframeKind, []any{"x"}, hxel.ErrInvalidChildren},
		{"input type", InputKind, []any{hxel.Type("colour")}, hxel.ErrInvalidAttributes},
		{"undeclared", DivKind, []any{hxel.Href("/")}, hxel.ErrInvalidAttributes},
		{"not global on html", HTMLKind, []any{hxel.ID("root")}, hxel.ErrInvalidAttributes},
		{"dir", PKind, []any{hxel.A("dir", "up")}, hxel.ErrInvalidAttributes},
		{"number", InputKind, []any{hxel.A("maxlength", "ten")}, hxel.ErrInvalidAttributes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.kind.Build(tt.args...); !errors.Is(err, tt.wantErr) {
				t.Errorf("Build() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestElementAccepts(t *testing.T) {
	tests := []struct {
		name string
		kind *hxel.Kind
		args []any
	}{
		{"global on div", DivKind, []any{hxel.ID("x"), hxel.Class("c"), hxel.A("tabindex", 1), hxel.Hidden(true)}},
		{"event handler", ButtonKind, []any{hxel.A("onclick", hxel.JavaScript("go()"))}},
		{"open prefixes", SpanKind, []any{hxel.Data("id", 1), hxel.Aria("label", "x"), hxel.HxGet("/x")}},
		{"lang on html", HTMLKind, []any{hxel.A("lang", "en")}},
		{"input type", InputKind, []any{hxel.Type("datetime-local")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.kind.Build(tt.args...); err != nil {
				t.Errorf("Build() error = %v", err)
			}
		})
	}
}

func TestKindNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range Kinds() {
		if seen[k.Name] {
			t.Errorf("duplicate kind name %q", k.Name)
		}
		seen[k.Name] = true
		if !k.Transparent() && k.Name != k.Tag {
			t.Errorf("kind %q has tag %q", k.Name, k.Tag)
		}
	}
}

func TestParseWithCatalog(t *testing.T) {
	reg := hxel.NewRegistry()
	Register(reg)

	tests := []struct {
		markup string
		want   hxel.Node
	}{
		{"<div></div>", Div()},
		{`Read <a href="/docs" target="_blank">the docs</a>.`, Blank("Read ", A(hxel.Href("/docs"), hxel.A("target", "_blank"), "the docs"), ".")},
		{`<input type="text" required maxlength="5">`, Input(hxel.Type("text"), hxel.A("required", true), hxel.A("maxlength", 5))},
		{`<span class="x y">s</span>`, Span(hxel.Class("x y"), "s")},
		{`<svg viewBox="0 0 10 10"></svg>`, Svg(hxel.A("viewBox", "0 0 10 10"))},
		{`<p style="color:red; margin: 0">x</p>`, P(hxel.Style(styles.Decl{Property: "color", Value: "red"}, styles.Decl{Property: "margin", Value: "0"}), "x")},
		{`<button hx-boost="true" hx-get="/a">b</button>`, Button(hxel.HxBoost(true), hxel.HxGet("/a"), "b")},
	}

	for _, tt := range tests {
		t.Run(tt.markup, func(t *testing.T) {
			got, err := hxel.Parse(tt.markup, reg)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !hxel.Equal(got, tt.want) {
				t.Errorf("Parse() = %s, want %s", hxel.DebugString(got, false), hxel.DebugString(tt.want, false))
			}
		})
	}
}

func TestParseRoundTripsRenderedAttrs(t *testing.T) {
	reg := hxel.NewRegistry()
	Register(reg)

	want := Div(
		hxel.HxBoost(false),
		hxel.Style(styles.Decl{Property: "color", Value: "red"}),
		hxel.ID("main"),
		"x",
	)
	got, err := hxel.Parse(hxel.MustHTML(want), reg)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !hxel.Equal(got, want) {
		t.Errorf("Parse(MustHTML()) = %s, want %s", hxel.DebugString(got, false), hxel.DebugString(want, false))
	}
}

// badge is a component with themed styles.
type badge struct {
	hxel.Component
}

var badgeKind = hxel.Define[badge]("Badge", hxel.KindSpec{
	Classes: []string{"badge"},
	Styles: styles.Use(func(t *styles.Theme) styles.Styles {
		return styles.Styles{{Selector: ".badge", Decls: styles.Decls{{Property: "color", Value: t.Colors.Primary}}}}
	}),
})

func (b *badge) Render(context.Context) hxel.Node {
	return Span(b.Children())
}

func TestStyle(t *testing.T) {
	sheet := styles.Styles{
		{Selector: "a", Decls: styles.Decls{{Property: "color", Value: "red"}}},
		{Selector: "b", Decls: styles.Decls{{Property: "color", Value: "blue"}}, Nested: styles.Styles{
			{Selector: "c", Decls: styles.Decls{{Property: "x", Value: "1"}}},
		}},
	}

	got := hxel.MustHTML(Style(sheet))
	want := "<style>\na { color: red; }\nb { color: blue; }\nb c { x: 1; }\n</style>"
	if got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}

	if got := hxel.MustHTML(Style(nil, hxel.A("media", "print"))); got != "<style media=\"print\">\n\n</style>" {
		t.Errorf("HTML() = %q for an empty sheet", got)
	}
}

func TestStyleFrom(t *testing.T) {
	primary := styles.LightTheme().Colors.Primary.String()
	got, err := hxel.HTML(hxel.WithTheme(context.Background(), styles.LightTheme()), StyleFrom(badgeKind, DivKind))
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	want := "<style type=\"text/css\">\n.badge { color: " + primary + "; }\n</style>"
	if got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}

	dark := styles.DarkTheme()
	got = hxel.MustHTML(hxel.Use(dark, StyleFrom(badgeKind)))
	if want := "<style type=\"text/css\">\n.badge { color: " + dark.Colors.Primary.String() + "; }\n</style>"; got != want {
		t.Errorf("HTML() with bound theme = %q, want %q", got, want)
	}
}

func TestStyleFromRegistry(t *testing.T) {
	reg := hxel.NewRegistry()
	Register(reg)
	reg.Register(badgeKind)

	cache := styles.NewMemoryCache()
	reg.SetStyleCache(cache)

	page := Div(StyleFromRegistry(reg, true), badgeKind.New("new"))
	got := hxel.MustHTML(page)
	want := "<div><style type=\"text/css\">\n.badge { color: " + styles.DefaultTheme().Colors.Primary.String() +
		"; }\n</style><span class=\"badge\">new</span></div>"
	if got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
	if cache.Len() != 1 {
		t.Errorf("cache.Len() = %d, want 1", cache.Len())
	}
}
