package hxel

import (
	"context"

	"github.com/pthm/hxel/lib/styles"
)

var testGlobal = Schema{
	"id":      {Type: AttrString},
	"class_":  {Type: AttrString, Alias: "class"},
	"classes": {Type: AttrList, Alias: "class"},
	"style":   {Type: AttrMapping},
	"hidden":  {Type: AttrBool},
	"title":   {Type: AttrString},
}

var (
	testDiv   = DefineElement("div", KindSpec{Tag: "div", AlwaysPaired: true, Schema: testGlobal})
	testP     = DefineElement("p", KindSpec{Tag: "p", AlwaysPaired: true, Schema: testGlobal})
	testB     = DefineElement("b", KindSpec{Tag: "b", AlwaysPaired: true, Schema: testGlobal})
	testA     = DefineElement("a", KindSpec{Tag: "a", AlwaysPaired: true, Schema: testGlobal.Merge(Schema{"href": {Type: AttrString}})})
	testBr    = DefineElement("br", KindSpec{Tag: "br", Children: NoChildren, Schema: testGlobal})
	testTitle = DefineElement("title", KindSpec{Tag: "title", AlwaysPaired: true, Children: TextChildren, Schema: testGlobal})
	testInput = DefineElement("input", KindSpec{Tag: "input", Children: NoChildren, Schema: testGlobal.Merge(Schema{
		"type":     {Type: AttrString, Rule: "oneof=text checkbox"},
		"checked":  {Type: AttrBool},
		"disabled": {Type: AttrBool},
		"value":    {},
		"size":     {Type: AttrNumber},
	})})
	testPage = DefineElement("html", KindSpec{Tag: "html", AlwaysPaired: true, Header: "<!doctype html>"})
)

// testCard renders a div carrying its children and forwarded attributes.
type testCard struct {
	Component
}

var testCardKind = Define[testCard]("Card", KindSpec{
	Classes: []string{"card"},
	Schema:  testGlobal.Merge(Schema{"heading": {Type: AttrString}}),
	Styles: styles.Use(func(t *styles.Theme) styles.Styles {
		return styles.Styles{{Selector: ".card", Decls: styles.Decls{{Property: "color", Value: t.Colors.Primary}}}}
	}),
})

func (c *testCard) Render(context.Context) Node {
	return testDiv.New(c.Children(), c.AttrsFor(testDiv))
}

// testPanel wraps a card, adding its own class.
type testPanel struct {
	Component
}

var testPanelKind = Define[testPanel]("Panel", KindSpec{
	Classes: []string{"panel"},
	Styles: styles.Styles{
		{Selector: ".card", Decls: styles.Decls{{Property: "color", Value: "black"}}},
		{Selector: ".panel", Decls: styles.Decls{{Property: "margin", Value: "0"}}},
	},
})

func (c *testPanel) Render(context.Context) Node {
	return testCardKind.New(c.Children())
}

// testThemed renders the name of the theme it sees.
type testThemed struct {
	Component
}

var testThemedKind = Define[testThemed]("Themed", KindSpec{})

func (c *testThemed) Render(ctx context.Context) Node {
	return testP.New(c.Theme(ctx).Name)
}

// testLoop never reaches a fixpoint.
type testLoop struct {
	Component
}

var testLoopKind = Define[testLoop]("Loop", KindSpec{})

func (c *testLoop) Render(context.Context) Node {
	return testLoopKind.New(append(c.Children(), "x")...)
}
