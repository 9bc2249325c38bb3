package hxel

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/pthm/hxel/lib/styles"
)

// Record is one element parsed from markup. Attribute values are the raw
// strings; children are text runs.
type Record struct {
	Tag      string
	Attrs    []html.Attribute
	Children []string
}

// ErrMalformedMarkup is returned for unclosed or stray tags.
var ErrMalformedMarkup = errors.New("hxel: malformed markup")

const rootTag = "hxel-root"

var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// ParseMarkup parses a single level of markup into Records interleaved
// with top-level text runs (strings).
//
// Only one level of tags is supported: opening a tag while another is
// open fails with *NestedTagError. Build nested trees with constructors.
// Tag names keep their case so components can be referenced by name:
//
//	hxel.ParseMarkup(`Read <Link to="/docs">the docs</Link>.`)
func ParseMarkup(text string) ([]any, error) {
	z := html.NewTokenizer(strings.NewReader("<" + rootTag + ">" + text + "</" + rootTag + ">"))

	var out []any
	var open *Record

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
			}
			if open != nil {
				return nil, fmt.Errorf("%w: unclosed <%s>", ErrMalformedMarkup, open.Tag)
			}
			return out, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			name := rawTagName(z.Raw())
			if strings.EqualFold(name, rootTag) {
				continue
			}
			if open != nil {
				return nil, &NestedTagError{Outer: open.Tag, Inner: name}
			}
			rec := &Record{Tag: name}
			for {
				key, val, more := z.TagAttr()
				if len(key) > 0 {
					rec.Attrs = append(rec.Attrs, html.Attribute{Key: string(key), Val: string(val)})
				}
				if !more {
					break
				}
			}
			if tt == html.SelfClosingTagToken || voidTags[strings.ToLower(name)] {
				out = append(out, *rec)
				continue
			}
			open = rec

		case html.EndTagToken:
			name := rawTagName(z.Raw())
			if strings.EqualFold(name, rootTag) {
				continue
			}
			if open == nil || !strings.EqualFold(name, open.Tag) {
				return nil, fmt.Errorf("%w: unexpected </%s>", ErrMalformedMarkup, name)
			}
			out = append(out, *open)
			open = nil

		case html.TextToken:
			text := string(z.Text())
			if text == "" {
				continue
			}
			if open != nil {
				open.Children = append(open.Children, text)
				continue
			}
			out = append(out, text)
		}
	}
}

// rawTagName reads the tag name from a raw token. The tokenizer lower-cases
// names, so the raw bytes are used to keep component names intact.
func rawTagName(raw []byte) string {
	s := strings.TrimPrefix(strings.TrimPrefix(string(raw), "<"), "/")
	end := strings.IndexAny(s, " \t\n\r\f/>")
	if end < 0 {
		return s
	}
	return s[:end]
}

// Fragment renders only its children. It is the root of trees resolved
// from markup with more than one top-level item.
var Fragment = DefineElement("Blank", KindSpec{})

// ResolveTree builds nodes for parsed markup, looking each tag up in reg.
// A single record resolves to its node; anything else is wrapped in a
// Fragment. Unknown tags fail with *UnknownElementError.
func ResolveTree(items []any, reg *Registry) (Node, error) {
	if len(items) == 1 {
		if rec, ok := items[0].(Record); ok {
			return resolveRecord(rec, reg)
		}
	}

	children := make([]any, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case Record:
			n, err := resolveRecord(v, reg)
			if err != nil {
				return nil, err
			}
			children = append(children, n)
		case string:
			children = append(children, v)
		default:
			return nil, fmt.Errorf("%w: unexpected item %T", ErrMalformedMarkup, item)
		}
	}
	return Fragment.Build(children...)
}

// Parse parses markup and resolves it against reg.
func Parse(text string, reg *Registry) (Node, error) {
	items, err := ParseMarkup(text)
	if err != nil {
		return nil, err
	}
	return ResolveTree(items, reg)
}

func resolveRecord(rec Record, reg *Registry) (Node, error) {
	kind, err := reg.Resolve(rec.Tag)
	if err != nil {
		return nil, err
	}

	args := make([]any, 0, len(rec.Children)+len(rec.Attrs))
	for _, c := range rec.Children {
		args = append(args, c)
	}
	for _, a := range rec.Attrs {
		key := attrKey(kind.Schema, a.Key)
		args = append(args, Attr{Key: key, Value: parseAttrValue(kind.Schema, key, a.Key, a.Val)})
	}
	return kind.Build(args...)
}

// attrKey maps a markup attribute name back to its schema key.
func attrKey(schema Schema, name string) string {
	if _, ok := schema[name]; ok {
		return name
	}
	keys := make([]string, 0, len(schema))
	for key := range schema {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.EqualFold(schema.Alias(key), name) {
			return key
		}
	}
	return strings.ReplaceAll(name, "-", "_")
}

func parseAttrValue(schema Schema, key, name, raw string) any {
	spec, declared := schema[key]
	if !declared && strings.HasPrefix(key, "hx_") {
		switch raw {
		case "true":
			return true
		case "false":
			return false
		}
	}
	switch spec.Type {
	case AttrBool:
		switch strings.ToLower(raw) {
		case "false":
			return false
		}
		return raw == "" || raw == "true" || strings.EqualFold(raw, name)
	case AttrNumber:
		if i, err := strconv.Atoi(raw); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	case AttrList:
		return strings.Fields(raw)
	case AttrMapping:
		return parseDecls(raw)
	}
	return raw
}

// parseDecls splits an inline style such as "color:red;margin:0".
func parseDecls(raw string) styles.Decls {
	var decls styles.Decls
	for _, part := range strings.Split(raw, ";") {
		prop, value, ok := strings.Cut(part, ":")
		prop = strings.TrimSpace(prop)
		if !ok || prop == "" {
			continue
		}
		decls = append(decls, styles.Decl{Property: prop, Value: strings.TrimSpace(value)})
	}
	return decls
}
