package hxel

import (
	"context"
	"fmt"

	"github.com/pthm/hxel/lib/styles"
)

// ChildPolicy restricts the children a kind accepts.
type ChildPolicy int

const (
	// AnyChildren accepts text and nodes.
	AnyChildren ChildPolicy = iota
	// NoChildren rejects every child (void elements).
	NoChildren
	// TextChildren accepts only text-like children.
	TextChildren
)

// KindSpec is the static description of a node type.
type KindSpec struct {
	// Tag is the element name. An empty tag renders only the children.
	Tag string
	// AlwaysPaired writes a closing tag even without children.
	AlwaysPaired bool
	// Header is written on its own line before the element.
	Header string
	// Classes are added to the class attribute of the rendered output.
	Classes []string
	// Styles are collected into page stylesheets.
	Styles   styles.Sheet
	Schema   Schema
	Children ChildPolicy
}

// Kind is a node type: its metadata and factory. Kinds are created once,
// usually as package variables, and registered with a Registry for markup
// parsing and style collection.
type Kind struct {
	KindSpec
	Name string

	factory func() Node
}

// Transparent reports whether the kind renders only its children.
func (k *Kind) Transparent() bool { return k.Tag == "" }

func (k *Kind) String() string { return k.Name }

// Component is embedded by user components. Embedding types implement
// Render and are defined with Define.
//
//	type Card struct {
//	    hxel.Component
//	}
//
//	var CardKind = hxel.Define[Card]("Card", hxel.KindSpec{Classes: []string{"card"}})
//
//	func (c *Card) Render(ctx context.Context) hxel.Node {
//	    return html.Div(c.Children(), c.AttrsFor(html.DivKind))
//	}
//
//	func NewCard(args ...any) *Card { return CardKind.New(args...).(*Card) }
type Component struct {
	Element
}

// Define creates the kind of component type T. *T must implement Render,
// which is checked at compile time.
func Define[T any, PT interface {
	*T
	Renderer
}](name string, spec KindSpec) *Kind {
	return &Kind{
		KindSpec: spec,
		Name:     name,
		factory:  func() Node { return PT(new(T)) },
	}
}

// DefineNode creates the kind of a custom node type T that is not a
// component, such as a Serializer writing its own markup. *T must embed
// Element.
func DefineNode[T any, PT interface {
	*T
	Node
}](name string, spec KindSpec) *Kind {
	return &Kind{
		KindSpec: spec,
		Name:     name,
		factory:  func() Node { return PT(new(T)) },
	}
}

// DefineElement creates a plain element kind.
func DefineElement(name string, spec KindSpec) *Kind {
	return &Kind{
		KindSpec: spec,
		Name:     name,
		factory:  func() Node { return &Element{} },
	}
}

// New builds a node from args and panics if they are invalid.
//
// Args are children and attributes in any order: Attr and Attrs set
// attributes; strings, Safe, numbers, bools and nodes become children;
// []any and []Node are flattened; Formatted text is expanded back into
// text and nodes.
func (k *Kind) New(args ...any) Node {
	n, err := k.Build(args...)
	if err != nil {
		panic(err)
	}
	return n
}

// NewContext is New with the formatter of ctx expanding tokens found in
// plain string arguments.
func (k *Kind) NewContext(ctx context.Context, args ...any) Node {
	n, err := k.build(FormatterFrom(ctx), args)
	if err != nil {
		panic(err)
	}
	return n
}

// Build is New returning an error instead of panicking.
func (k *Kind) Build(args ...any) (Node, error) {
	return k.build(nil, args)
}

func (k *Kind) build(f *Formatter, args []any) (Node, error) {
	var children []any
	var attrs Attrs

	var add func(arg any) error
	// Extracted text is already expanded; anything else is checked like
	// a direct argument.
	addExtracted := func(items []any) error {
		for _, item := range items {
			if s, ok := item.(string); ok {
				children = append(children, s)
				continue
			}
			if err := add(item); err != nil {
				return err
			}
		}
		return nil
	}
	add = func(arg any) error {
		switch v := arg.(type) {
		case Attr:
			attrs = attrs.set(v.Key, v.Value)
		case Attrs:
			for _, a := range v {
				attrs = attrs.set(a.Key, a.Value)
			}
		case []Attr:
			for _, a := range v {
				attrs = attrs.set(a.Key, a.Value)
			}
		case Formatted:
			return addExtracted(v.Children())
		case string:
			if f == nil {
				children = append(children, v)
				return nil
			}
			return addExtracted(f.Extract(v))
		case []any:
			for _, item := range v {
				if err := add(item); err != nil {
					return err
				}
			}
		case []Node:
			for _, item := range v {
				if err := add(item); err != nil {
					return err
				}
			}
		case Node:
			if v == nil || v.Base() == nil || v.Base().kind == nil {
				return &InvalidChildrenError{Kind: k.Name, Reason: fmt.Sprintf("uninitialised node %T", v)}
			}
			children = append(children, v)
		default:
			if !isPrimitive(arg) {
				return &InvalidChildrenError{Kind: k.Name, Reason: fmt.Sprintf("unsupported child type %T", arg)}
			}
			children = append(children, arg)
		}
		return nil
	}

	for _, arg := range args {
		if err := add(arg); err != nil {
			return nil, err
		}
	}

	if err := k.checkChildren(children); err != nil {
		return nil, err
	}
	if err := k.Schema.validate(k.Name, attrs); err != nil {
		return nil, err
	}

	n := k.factory()
	n.Base().setup(k, children, attrs)
	return n, nil
}

func (k *Kind) checkChildren(children []any) error {
	switch k.Children {
	case NoChildren:
		if len(children) > 0 {
			return &InvalidChildrenError{Kind: k.Name, Reason: "element takes no children"}
		}
	case TextChildren:
		for _, c := range children {
			if _, ok := c.(Node); ok {
				return &InvalidChildrenError{Kind: k.Name, Reason: "element takes only text"}
			}
		}
	}
	return nil
}

// AttrsFor returns the attributes of n declared by kind's schema.
func AttrsFor(n Node, kind *Kind) Attrs {
	return n.Base().AttrsFor(kind)
}
