package hxel

import (
	"context"
	"regexp"
	"sync"
	"testing"
)

func TestFormatterAppendExtract(t *testing.T) {
	f := NewFormatter()
	node := testB.New("x")

	token := f.Append(node)
	if !regexp.MustCompile(`^\{\d+:id\}$`).MatchString(token) {
		t.Fatalf("Append() = %q, want {<id>:id}", token)
	}

	got := f.Extract(token)
	if len(got) != 1 || got[0] != node {
		t.Fatalf("Extract() = %v, want [node]", got)
	}

	again := f.Extract(token)
	if len(again) != 1 || again[0] != token {
		t.Errorf("second Extract() = %v, want the token as literal text", again)
	}
}

func TestFormatterExtract(t *testing.T) {
	f := NewFormatter()
	a, b := testB.New("a"), testB.New("b")
	ta, tb := f.Append(a), f.Append(b)

	tests := []struct {
		name string
		text string
		want []any
	}{
		{"plain", "hello", []any{"hello"}},
		{"empty", "", nil},
		{"unknown token", "x {123:id} y", []any{"x {123:id} y"}},
		{"surrounded", "before " + ta + " after", []any{"before ", a, " after"}},
		{"adjacent", tb + "!", []any{b, "!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Extract(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Extract() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Extract()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSprintf(t *testing.T) {
	got := Scoped(func(f *Formatter) string {
		return MustHTML(testP.New(f.Sprintf("Read %s or %s, %d times.", testA.New(Href("/docs"), "the docs"), testB.New("not"), 2)))
	})
	want := `<p>Read <a href="/docs">the docs</a> or <b>not</b>, 2 times.</p>`
	if got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestSprintfNestedFormatted(t *testing.T) {
	before := sharedFormatter.Len()
	got := Scoped(func(f *Formatter) string {
		inner := Sprintf("see %s", testB.New("x"))
		return MustHTML(testP.New(f.Sprintf("%s and %s", inner, testB.New("y"))))
	})
	if want := "<p>see <b>x</b> and <b>y</b></p>"; got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
	if n := sharedFormatter.Len(); n != before {
		t.Errorf("shared formatter Len() = %d, want %d", n, before)
	}

	got = Scoped(func(f *Formatter) string {
		inner := f.Sprintf("see %s", testB.New("x"))
		return MustHTML(testP.New(f.Sprintf("[%s]", inner)))
	})
	if want := "<p>[see <b>x</b>]</p>"; got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestSprintfEscapesText(t *testing.T) {
	got := Scoped(func(f *Formatter) string {
		return MustHTML(testP.New(f.Sprintf("%s < %s", "a", testB.New("b"))))
	})
	if want := "<p>a &lt; <b>b</b></p>"; got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestScopedClears(t *testing.T) {
	var kept *Formatter
	Scoped(func(f *Formatter) struct{} {
		kept = f
		f.Append("unused")
		return struct{}{}
	})
	if kept.Len() != 0 {
		t.Errorf("Len() = %d after Scoped, want 0", kept.Len())
	}

	func() {
		defer func() { _ = recover() }()
		Scoped(func(f *Formatter) int {
			kept = f
			f.Append("unused")
			panic("boom")
		})
	}()
	if kept.Len() != 0 {
		t.Errorf("Len() = %d after a panic in Scoped, want 0", kept.Len())
	}
}

func TestFormattedString(t *testing.T) {
	s := Formatted{text: "plain"}
	if s.String() != "plain" {
		t.Errorf("String() = %q, want plain", s.String())
	}
	if got := s.Children(); len(got) != 1 || got[0] != "plain" {
		t.Errorf("Children() = %v, want [plain]", got)
	}
}

func TestFormatterContext(t *testing.T) {
	if FormatterFrom(context.Background()) != nil {
		t.Error("FormatterFrom() != nil for an empty context")
	}
	f := NewFormatter()
	if FormatterFrom(WithFormatter(context.Background(), f)) != f {
		t.Error("FormatterFrom() did not return the attached formatter")
	}
}

func TestFormatterConcurrentScopes(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := Scoped(func(f *Formatter) string {
				return MustHTML(testP.New(f.Sprintf("x %s", testB.New("y"))))
			})
			if got != "<p>x <b>y</b></p>" {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent render = %q", got)
	}
}
