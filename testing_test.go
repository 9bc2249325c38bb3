package hxel

import (
	"context"
	"net/http"
	"testing"

	"github.com/pthm/hxel/lib/styles"
)

func TestTestRender(t *testing.T) {
	result, err := TestRender(testCardKind.New("Hello"))
	if err != nil {
		t.Fatalf("TestRender() error = %v", err)
	}
	if !result.IsOK() {
		t.Errorf("StatusCode = %d, want 200", result.StatusCode)
	}
	if !result.HTMLContains(`class="card"`) {
		t.Errorf("HTML = %q, want card class", result.HTML)
	}
	if !result.HTMLContainsAll("<div", "Hello", "</div>") {
		t.Errorf("HTML = %q, missing parts", result.HTML)
	}
	if result.HTMLContainsAll("Hello", "Goodbye") {
		t.Error("HTMLContainsAll() = true with a missing part")
	}
}

func TestTestRenderWithContext(t *testing.T) {
	ctx := WithTheme(context.Background(), styles.DarkTheme())
	result, err := TestRenderWithContext(ctx, testThemedKind.New())
	if err != nil {
		t.Fatalf("TestRenderWithContext() error = %v", err)
	}
	if result.HTML != "<p>dark</p>" {
		t.Errorf("HTML = %q, want %q", result.HTML, "<p>dark</p>")
	}

	if _, err := TestRender(testLoopKind.New()); err == nil {
		t.Error("TestRender() error = nil for a render loop")
	}
}

func TestTestRequestBuilder(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm() error = %v", err)
		}
		w.Header().Set("HX-Trigger", BuildTriggerHeader("saved", map[string]any{"id": 1}))
		w.Header().Set("HX-Redirect", "/done")
		w.Header().Set("X-Custom", r.Header.Get("X-Custom"))
		if !IsHTMX(r) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_ = Render(w, r, testP.New(r.FormValue("title")))
	})

	result, err := NewTestRequest(http.MethodPost, "/todos").
		WithFormData("title", "milk").
		WithHeader("X-Custom", "yes").
		AsHTMX().
		Execute(h)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !result.IsOK() {
		t.Errorf("StatusCode = %d, want 200", result.StatusCode)
	}
	if result.HTML != "<p>milk</p>" {
		t.Errorf("HTML = %q, want %q", result.HTML, "<p>milk</p>")
	}
	if !result.HasEvent("saved") {
		t.Errorf("TriggeredEvents = %v, want saved", result.TriggeredEvents)
	}
	if result.RedirectURL != "/done" {
		t.Errorf("RedirectURL = %q, want /done", result.RedirectURL)
	}
	if !result.HasHeader("X-Custom", "yes") {
		t.Errorf("X-Custom = %q, want yes", result.Headers.Get("X-Custom"))
	}

	result, _ = NewTestRequest(http.MethodPost, "/todos").Execute(h)
	if !result.HasStatus(http.StatusForbidden) {
		t.Errorf("StatusCode = %d without HX-Request, want 403", result.StatusCode)
	}
}

type ctxKey struct{}

func TestTestRequestBuilderWithContext(t *testing.T) {
	var got any
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Context().Value(ctxKey{})
	})

	ctx := context.WithValue(context.Background(), ctxKey{}, "value")
	if _, err := NewTestRequest(http.MethodGet, "/").WithContext(ctx).Execute(h); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != "value" {
		t.Errorf("context value = %v, want value", got)
	}
}

func TestParseTriggerHeader(t *testing.T) {
	tests := []struct {
		header string
		want   []string
	}{
		{"", nil},
		{"saved", []string{"saved"}},
		{"a, b ,c", []string{"a", "b", "c"}},
		{`{"b": {"id": 1}, "a": null}`, []string{"a", "b"}},
		{`{broken`, nil},
	}

	for _, tt := range tests {
		got := parseTriggerHeader(tt.header)
		if len(got) != len(tt.want) {
			t.Errorf("parseTriggerHeader(%q) = %v, want %v", tt.header, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseTriggerHeader(%q) = %v, want %v", tt.header, got, tt.want)
				break
			}
		}
	}
}
