package hxel

import "strings"

// DebugString returns a readable dump of the tree. Nodes are named after
// their kind, so components appear as themselves rather than rendered.
// With pretty set, children go on indented lines, except for nodes without
// attributes holding a single text child.
func DebugString(n Node, pretty bool) string {
	var b strings.Builder
	writeDebug(&b, n, pretty, 0)
	return b.String()
}

// String returns the pretty debug representation.
func (e *Element) String() string {
	return DebugString(e, true)
}

func writeDebug(b *strings.Builder, n Node, pretty bool, level int) {
	el := n.Base()
	name := "Element"
	var schema Schema
	if el.kind != nil {
		name = el.kind.Name
		schema = el.kind.Schema
	}

	indent := ""
	if pretty {
		indent = strings.Repeat("  ", level)
	}

	b.WriteString("<" + name)
	for _, attr := range FormatAttrs(schema, el.attrs, false) {
		b.WriteString(" " + formatAttr(attr.Key, attr.Value.(string)))
	}

	if len(el.children) == 0 {
		b.WriteString(" />")
		return
	}

	var prefix, sep, suffix string
	if pretty && (!el.isSimple() || len(el.attrs) > 0) {
		prefix = "\n" + indent + "  "
		sep = prefix
		suffix = "\n" + indent
	}

	b.WriteString(">" + prefix)
	for i, child := range el.children {
		if i > 0 {
			b.WriteString(sep)
		}
		if cn, ok := child.(Node); ok {
			writeDebug(b, cn, pretty, level+1)
			continue
		}
		b.WriteString(primitiveText(child, false))
	}
	b.WriteString(suffix + "</" + name + ">")
}
