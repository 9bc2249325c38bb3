package hxel

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"sync"
)

var tokenPattern = regexp.MustCompile(`\{(\d+:id)\}`)

var tokenLimit = new(big.Int).Lsh(big.NewInt(1), 256)

// Formatter lets nodes survive string interpolation. Append stores a value
// and returns a placeholder token; Extract later swaps tokens in a string
// back for the stored values. Each token resolves once.
//
// A Formatter must not be shared between concurrent renders that use the
// same tokens; give each request its own with WithFormatter.
type Formatter struct {
	mu     sync.Mutex
	values map[string]any
}

// NewFormatter creates an empty formatter.
func NewFormatter() *Formatter {
	return &Formatter{values: make(map[string]any)}
}

// Append stores v and returns its token, "{<id>:id}".
func (f *Formatter) Append(v any) string {
	n, err := rand.Int(rand.Reader, tokenLimit)
	if err != nil {
		panic(fmt.Sprintf("hxel: failed to generate token: %v", err))
	}
	id := n.String() + ":id"

	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[id] = v
	return "{" + id + "}"
}

// Extract splits text around tokens and substitutes the stored values,
// removing them from the formatter. Tokens the formatter does not know are
// kept as literal text. Empty fragments are dropped.
func (f *Formatter) Extract(text string) []any {
	matches := tokenPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		if text == "" {
			return nil
		}
		return []any{text}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var out []any
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			out = append(out, literal.String())
			literal.Reset()
		}
	}

	last := 0
	for _, m := range matches {
		literal.WriteString(text[last:m[0]])
		id := text[m[2]:m[3]]
		if v, ok := f.values[id]; ok {
			delete(f.values, id)
			flush()
			out = append(out, v)
		} else {
			literal.WriteString(text[m[0]:m[1]])
		}
		last = m[1]
	}
	literal.WriteString(text[last:])
	flush()
	return out
}

// Sprintf formats like fmt.Sprintf, replacing Node arguments with tokens.
// Formatted arguments from other formatters have their values moved into
// f. Passing the result to a constructor restores the nodes as children.
//
//	f.Sprintf("Read the %s first.", html.A(hxel.Href("/docs"), "docs"))
func (f *Formatter) Sprintf(format string, args ...any) Formatted {
	converted := make([]any, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case Node:
			converted[i] = f.Append(v)
		case Formatted:
			converted[i] = f.adopt(v)
		default:
			converted[i] = arg
		}
	}
	return Formatted{f: f, text: fmt.Sprintf(format, converted...)}
}

// adopt returns the text of s with its values moved into f.
func (f *Formatter) adopt(s Formatted) string {
	if s.f == nil || s.f == f {
		return s.text
	}
	var b strings.Builder
	for _, part := range s.Children() {
		if text, ok := part.(string); ok {
			b.WriteString(text)
			continue
		}
		b.WriteString(f.Append(part))
	}
	return b.String()
}

// Len returns the number of pending values.
func (f *Formatter) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.values)
}

// Clear drops every pending value.
func (f *Formatter) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.values)
}

// Close clears the formatter. It is meant for defer.
func (f *Formatter) Close() error {
	f.Clear()
	return nil
}

// Formatted is text produced by Formatter.Sprintf. Constructors expand it
// into text and node children.
type Formatted struct {
	f    *Formatter
	text string
}

// String returns the raw text, tokens included.
func (s Formatted) String() string { return s.text }

// Children extracts the text into children.
func (s Formatted) Children() []any {
	if s.f == nil {
		if s.text == "" {
			return nil
		}
		return []any{s.text}
	}
	return s.f.Extract(s.text)
}

// Scoped runs fn with a fresh formatter and clears it on every exit path.
//
//	node := hxel.Scoped(func(f *hxel.Formatter) hxel.Node {
//	    return html.P(f.Sprintf("Hello %s!", html.B("World")))
//	})
func Scoped[T any](fn func(f *Formatter) T) T {
	f := NewFormatter()
	defer f.Close()
	return fn(f)
}

var sharedFormatter = NewFormatter()

// Sprintf formats with a process-wide formatter. Values whose text is never
// passed to a constructor stay in memory; prefer Scoped or a per-request
// formatter from FormatterFrom.
func Sprintf(format string, args ...any) Formatted {
	return sharedFormatter.Sprintf(format, args...)
}

type formatterKey struct{}

// WithFormatter attaches f to ctx.
func WithFormatter(ctx context.Context, f *Formatter) context.Context {
	return context.WithValue(ctx, formatterKey{}, f)
}

// FormatterFrom returns the formatter attached to ctx, or nil.
func FormatterFrom(ctx context.Context) *Formatter {
	f, _ := ctx.Value(formatterKey{}).(*Formatter)
	return f
}
