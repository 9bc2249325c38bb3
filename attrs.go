package hxel

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/pthm/hxel/lib/styles"
)

// Attr is a single attribute. Key is the internal identifier, e.g.
// "class_" or "hx_get"; the name written to markup is derived from it.
type Attr struct {
	Key   string
	Value any
}

// A builds an attribute.
//
//	html.Input(hxel.A("autocomplete", "off"))
func A(key string, value any) Attr { return Attr{Key: key, Value: value} }

// Attrs is an ordered attribute list.
type Attrs []Attr

// Get returns the value stored under key.
func (a Attrs) Get(key string) (any, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (a Attrs) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Keys returns attribute keys in order.
func (a Attrs) Keys() []string {
	keys := make([]string, len(a))
	for i, attr := range a {
		keys[i] = attr.Key
	}
	return keys
}

// set replaces the value of key or appends it.
func (a Attrs) set(key string, value any) Attrs {
	for i := range a {
		if a[i].Key == key {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attr{Key: key, Value: value})
}

// Equal reports whether both lists hold the same key/value pairs,
// regardless of order.
func (a Attrs) Equal(b Attrs) bool {
	if len(a) != len(b) {
		return false
	}
	for _, attr := range a {
		v, ok := b.Get(attr.Key)
		if !ok || !valuesEqual(attr.Value, v) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	switch av := a.(type) {
	case styles.Decls:
		bv, ok := b.(styles.Decls)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i].Property != bv[i].Property || !valuesEqual(av[i].Value, bv[i].Value) {
				return false
			}
		}
		return true
	case []string:
		bv, ok := b.([]string)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case map[string]string:
		bv, ok := b.(map[string]string)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			if bv[k] != v {
				return false
			}
		}
		return true
	}
	if t := reflect.TypeOf(a); t != nil && !t.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

// AttrType constrains the values accepted for an attribute.
type AttrType int

const (
	AttrAny AttrType = iota
	AttrString
	AttrBool
	AttrNumber
	AttrMapping
	AttrList
)

func (t AttrType) String() string {
	switch t {
	case AttrString:
		return "string"
	case AttrBool:
		return "bool"
	case AttrNumber:
		return "number"
	case AttrMapping:
		return "mapping"
	case AttrList:
		return "list"
	}
	return "any"
}

// AttrSpec declares one attribute of a kind.
type AttrSpec struct {
	Type AttrType
	// Alias overrides the markup name derived from the key.
	Alias string
	// Rule is a validator tag checked against the value, e.g. "oneof=get post".
	Rule string
}

// Schema is the attribute contract of a kind. A nil Schema accepts any
// attribute.
type Schema map[string]AttrSpec

// OpenPrefixes are attribute key prefixes accepted by every schema.
var OpenPrefixes = []string{"data_", "aria_", "hx_"}

// Merge returns a new schema with the entries of s and others; later
// entries win.
func (s Schema) Merge(others ...Schema) Schema {
	out := make(Schema, len(s))
	for k, v := range s {
		out[k] = v
	}
	for _, o := range others {
		for k, v := range o {
			out[k] = v
		}
	}
	return out
}

// Declares reports whether key is part of the schema.
func (s Schema) Declares(key string) bool {
	if s == nil {
		return true
	}
	if _, ok := s[key]; ok {
		return true
	}
	for _, p := range OpenPrefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

var defaultAliases = map[string]string{
	"classes": "class",
}

// Alias returns the markup name for key.
func (s Schema) Alias(key string) string {
	if spec, ok := s[key]; ok && spec.Alias != "" {
		return spec.Alias
	}
	if alias, ok := defaultAliases[key]; ok {
		return alias
	}
	return strings.ReplaceAll(strings.Trim(key, "_"), "_", "-")
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Validator returns the shared validator used for attribute rules.
// Register custom rules on it before defining kinds that use them.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

func (s Schema) validate(kind string, attrs Attrs) error {
	var problems []string
	for _, attr := range attrs {
		if !validAttrValue(attr.Value) {
			problems = append(problems, fmt.Sprintf("%s: unsupported value type %T", attr.Key, attr.Value))
			continue
		}
		if !s.Declares(attr.Key) {
			problems = append(problems, fmt.Sprintf("%s: not declared", attr.Key))
			continue
		}
		spec, ok := s[attr.Key]
		if !ok {
			continue
		}
		if !spec.Type.accepts(attr.Value) {
			problems = append(problems, fmt.Sprintf("%s: want %s, got %T", attr.Key, spec.Type, attr.Value))
			continue
		}
		if spec.Rule != "" {
			if err := Validator().Var(ruleValue(attr.Value), spec.Rule); err != nil {
				problems = append(problems, fmt.Sprintf("%s: %v fails %q", attr.Key, attr.Value, spec.Rule))
			}
		}
	}
	if len(problems) > 0 {
		return &InvalidAttributesError{Kind: kind, Problems: problems}
	}
	return nil
}

func (t AttrType) accepts(v any) bool {
	switch t {
	case AttrString:
		switch v.(type) {
		case string, Safe, fmt.Stringer:
			return true
		}
		return false
	case AttrBool:
		_, ok := v.(bool)
		return ok
	case AttrNumber:
		switch v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
			return true
		}
		return false
	case AttrMapping:
		switch v.(type) {
		case styles.Decls, map[string]string:
			return true
		}
		return false
	case AttrList:
		switch v.(type) {
		case []string, string:
			return true
		}
		return false
	}
	return true
}

func ruleValue(v any) any {
	switch val := v.(type) {
	case Safe:
		return string(val)
	case fmt.Stringer:
		return val.String()
	}
	return v
}

func validAttrValue(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case string, Safe, JavaScript, bool, styles.Decls, map[string]string, []string, fmt.Stringer:
		return true
	}
	return isPrimitive(v)
}

// FormatAttrValue formats a single attribute value. In HTML mode strings
// are escaped and true booleans take the attribute name as their value,
// so Hidden(true) renders hidden="hidden"; false drops the attribute. Keys
// starting with "hx" are written as "true"/"false" literals instead.
func FormatAttrValue(key string, value any, html bool) string {
	esc := func(s string) string {
		if html {
			return Escape(s)
		}
		return s
	}

	switch v := value.(type) {
	case string:
		return esc(v)
	case Safe:
		return string(v)
	case JavaScript:
		return string(v)
	case bool:
		if html && !strings.HasPrefix(key, "hx") {
			if v {
				return Escape(key)
			}
			return ""
		}
		if v {
			return "true"
		}
		return "false"
	case styles.Decls:
		parts := make([]string, 0, len(v))
		for _, d := range v {
			if s, ok := styles.FormatValue(d.Value); ok {
				parts = append(parts, d.Property+":"+esc(s))
			}
		}
		return strings.Join(parts, ";")
	case map[string]string:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ":" + esc(v[k])
		}
		return strings.Join(parts, ";")
	case []string:
		parts := make([]string, len(v))
		for i, s := range v {
			parts[i] = esc(s)
		}
		return strings.Join(parts, " ")
	case fmt.Stringer:
		return esc(v.String())
	}
	return primitiveText(value, false)
}

// FormatAttrs resolves markup names and formats values. Attributes that
// format to an empty string are dropped; attributes sharing a markup name
// are joined with a space.
func FormatAttrs(schema Schema, attrs Attrs, html bool) Attrs {
	out := make(Attrs, 0, len(attrs))
	index := make(map[string]int, len(attrs))
	for _, attr := range attrs {
		value := FormatAttrValue(attr.Key, attr.Value, html)
		if value == "" {
			continue
		}
		name := schema.Alias(attr.Key)
		if i, ok := index[name]; ok {
			out[i].Value = out[i].Value.(string) + " " + value
			continue
		}
		index[name] = len(out)
		out = append(out, Attr{Key: name, Value: value})
	}
	return out
}

// Attribute helpers.

// ID sets the id attribute.
func ID(id string) Attr { return Attr{Key: "id", Value: id} }

// Class sets the class attribute.
func Class(class string) Attr { return Attr{Key: "class_", Value: class} }

// Classes adds classes to the class attribute.
func Classes(classes ...string) Attr { return Attr{Key: "classes", Value: classes} }

// Href sets the href attribute.
func Href(url string) Attr { return Attr{Key: "href", Value: url} }

// Src sets the src attribute.
func Src(url string) Attr { return Attr{Key: "src", Value: url} }

// Type sets the type attribute.
func Type(t string) Attr { return Attr{Key: "type", Value: t} }

// Name sets the name attribute.
func Name(name string) Attr { return Attr{Key: "name", Value: name} }

// Value sets the value attribute.
func Value(v any) Attr { return Attr{Key: "value", Value: v} }

// Title sets the title attribute.
func Title(title string) Attr { return Attr{Key: "title", Value: title} }

// Style sets the inline style attribute.
func Style(decls ...styles.Decl) Attr { return Attr{Key: "style", Value: styles.Decls(decls)} }

// Hidden sets the hidden boolean attribute.
func Hidden(v bool) Attr { return Attr{Key: "hidden", Value: v} }

// Disabled sets the disabled boolean attribute.
func Disabled(v bool) Attr { return Attr{Key: "disabled", Value: v} }

// Data sets a data-* attribute.
func Data(name string, v any) Attr {
	return Attr{Key: "data_" + strings.ReplaceAll(name, "-", "_"), Value: v}
}

// Aria sets an aria-* attribute.
func Aria(name string, v any) Attr {
	return Attr{Key: "aria_" + strings.ReplaceAll(name, "-", "_"), Value: v}
}

// HxGet issues a GET to url.
func HxGet(url string) Attr { return Attr{Key: "hx_get", Value: url} }

// HxPost issues a POST to url.
func HxPost(url string) Attr { return Attr{Key: "hx_post", Value: url} }

// HxPut issues a PUT to url.
func HxPut(url string) Attr { return Attr{Key: "hx_put", Value: url} }

// HxPatch issues a PATCH to url.
func HxPatch(url string) Attr { return Attr{Key: "hx_patch", Value: url} }

// HxDelete issues a DELETE to url.
func HxDelete(url string) Attr { return Attr{Key: "hx_delete", Value: url} }

// HxTarget selects the element receiving the response.
func HxTarget(selector string) Attr { return Attr{Key: "hx_target", Value: selector} }

// HxSwap sets the swap strategy.
func HxSwap(mode SwapMode) Attr { return Attr{Key: "hx_swap", Value: mode} }

// HxTrigger sets the triggering event.
func HxTrigger(trigger string) Attr { return Attr{Key: "hx_trigger", Value: trigger} }

// HxBoost enables boosted links and forms.
func HxBoost(v bool) Attr { return Attr{Key: "hx_boost", Value: v} }

// HxConfirm asks for confirmation before the request.
func HxConfirm(msg string) Attr { return Attr{Key: "hx_confirm", Value: msg} }

// HxPushURL pushes url (or "true") into the browser history.
func HxPushURL(url string) Attr { return Attr{Key: "hx_push_url", Value: url} }
