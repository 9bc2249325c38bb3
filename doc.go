// Package hxel builds HTML on the server from typed Go values, for
// applications driven by HTMX.
//
// A page is a tree of nodes. Each node has a Kind, which carries its tag
// name, the attributes it accepts and how it renders. Elements render
// themselves as markup; components render into another node, which is
// rendered in turn.
//
// # Elements
//
// Elements are built from a Kind with children and attributes in any
// order. Strings are escaped; Safe values are written as is.
//
//	html.Div(hxel.ID("greeting"), "Hello ", html.B("world"), "!")
//	// <div id="greeting">Hello <b>world</b>!</div>
//
// Every Kind validates its arguments against its Schema when the node is
// built. New panics on invalid arguments; Build returns the error instead.
// Attribute keys use underscores: "class_" and "for_" avoid Go keywords,
// "hx_get" renders as hx-get.
//
// # Components
//
// Components embed Component and implement Render. They are defined once
// and built like elements:
//
//	type Card struct {
//	    hxel.Component
//	}
//
//	var CardKind = hxel.Define[Card]("Card", hxel.KindSpec{
//	    Classes: []string{"card"},
//	    Schema:  html.Global.Merge(hxel.Schema{"heading": {Type: hxel.AttrString}}),
//	})
//
//	func (c *Card) Render(ctx context.Context) hxel.Node {
//	    heading, _ := c.Attr("heading")
//	    return html.Div(html.H2(heading), c.Children(), c.AttrsFor(html.DivKind))
//	}
//
// Rendering repeats until an element is reached. A component's classes
// are added to the class attribute of the element it renders.
//
// # Styles and Themes
//
// Kinds may carry styles, either static or built from the active theme
// with styles.Use. A Registry collects the styles of its kinds into one
// stylesheet, cached per theme:
//
//	reg := hxel.NewRegistry()
//	reg.Register(CardKind)
//	css, err := reg.Stylesheet(ctx, styles.LightTheme(), true)
//
// Themes travel in the context (WithTheme) or are bound to a subtree with
// Use.
//
// # Formatting and Parsing
//
// Sprintf interpolates nodes into text through placeholder tokens; the
// text is expanded back into nodes when passed to a Kind:
//
//	html.P(hxel.Sprintf("Read the %s first.", html.A(hxel.Href("/docs"), "docs")))
//
// Parse turns markup into a tree, resolving tag names through a Registry.
//
// # HTTP
//
// Render writes a node to an http.ResponseWriter; IsHTMX and the other
// request helpers read the headers HTMX sends. The web package routes
// requests to handlers returning nodes, and adapters/echo does the same
// for Echo applications.
package hxel
