package hxel

import (
	"context"
	"errors"
	"testing"

	"github.com/pthm/hxel/lib/styles"
)

func TestRegistryResolve(t *testing.T) {
	reg := NewRegistry()
	reg.Register(testDiv, testCardKind, testDiv)

	if got := reg.All(); len(got) != 2 {
		t.Fatalf("All() returned %d kinds, want 2", len(got))
	}

	k, err := reg.Resolve("Card")
	if err != nil || k != testCardKind {
		t.Errorf("Resolve(Card) = %v, %v, want Card", k, err)
	}

	_, err = reg.Resolve("Missing")
	var unknown *UnknownElementError
	if !errors.As(err, &unknown) || unknown.Name != "Missing" {
		t.Errorf("Resolve(Missing) error = %v, want *UnknownElementError", err)
	}
	if !IsUnknownElement(err) {
		t.Errorf("IsUnknownElement(%v) = false", err)
	}

	other := DefineElement("Card", KindSpec{Tag: "section"})
	reg.Register(other)
	if got := reg.Lookup("Card"); len(got) != 2 {
		t.Errorf("Lookup(Card) returned %d kinds, want 2", len(got))
	}
	if _, err := reg.Resolve("Card"); !errors.Is(err, ErrAmbiguousElement) {
		t.Errorf("Resolve(Card) error = %v, want ErrAmbiguousElement", err)
	}

	reg.Reset()
	if len(reg.All()) != 0 {
		t.Errorf("All() after Reset() = %v, want empty", reg.All())
	}
}

func TestRegistryRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		kind *Kind
	}{
		{"nil", nil},
		{"unnamed", &Kind{KindSpec: KindSpec{Tag: "div"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register() did not panic")
				}
			}()
			NewRegistry().Register(tt.kind)
		})
	}
}

func TestCollectStyles(t *testing.T) {
	light := styles.LightTheme()
	primary := light.Colors.Primary.String()

	tests := []struct {
		name  string
		kinds []*Kind
		want  string
	}{
		{"none", []*Kind{testDiv}, ""},
		{"themed", []*Kind{testCardKind}, ".card { color: " + primary + "; }"},
		{"later replaces", []*Kind{testCardKind, testPanelKind}, ".card { color: black; }\n.panel { margin: 0; }"},
		{"order matters", []*Kind{testPanelKind, testCardKind}, ".card { color: " + primary + "; }\n.panel { margin: 0; }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := styles.Format(CollectStyles(light, tt.kinds...), "\n")
			if got != tt.want {
				t.Errorf("CollectStyles() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegistryStylesheet(t *testing.T) {
	ctx := context.Background()
	cache := styles.NewMemoryCache()
	reg := NewRegistry()
	reg.SetStyleCache(cache)
	reg.Register(testCardKind)

	light, dark := styles.LightTheme(), styles.DarkTheme()

	css, err := reg.Stylesheet(ctx, light, true)
	if err != nil {
		t.Fatalf("Stylesheet() error = %v", err)
	}
	if want := ".card { color: " + light.Colors.Primary.String() + "; }"; css != want {
		t.Errorf("Stylesheet(light) = %q, want %q", css, want)
	}

	css, err = reg.Stylesheet(ctx, dark, true)
	if err != nil {
		t.Fatalf("Stylesheet() error = %v", err)
	}
	if want := ".card { color: " + dark.Colors.Primary.String() + "; }"; css != want {
		t.Errorf("Stylesheet(dark) = %q, want %q", css, want)
	}
	if cache.Len() != 2 {
		t.Errorf("cache.Len() = %d, want one entry per theme", cache.Len())
	}

	reg.Register(testPanelKind)
	if cache.Len() != 0 {
		t.Errorf("cache.Len() = %d after Register, want 0", cache.Len())
	}
	css, _ = reg.Stylesheet(ctx, light, true)
	if want := ".card { color: black; }\n.panel { margin: 0; }"; css != want {
		t.Errorf("Stylesheet() after Register = %q, want %q", css, want)
	}

	uncached, _ := reg.Stylesheet(ctx, dark, false)
	if uncached != ".card { color: black; }\n.panel { margin: 0; }" {
		t.Errorf("Stylesheet(uncached) = %q", uncached)
	}
	if cache.Len() != 1 {
		t.Errorf("cache.Len() = %d, uncached call should not store", cache.Len())
	}
}

// brokenCache fails every operation.
type brokenCache struct {
	clears int
}

var errCacheDown = errors.New("cache down")

func (c *brokenCache) Get(context.Context, string) (string, error) { return "", errCacheDown }
func (c *brokenCache) Set(context.Context, string, string) error   { return errCacheDown }
func (c *brokenCache) Delete(context.Context, string) error        { return errCacheDown }
func (c *brokenCache) Close() error                                { return nil }

func (c *brokenCache) Clear(context.Context) error {
	c.clears++
	return errCacheDown
}

func TestRegistryStylesheetCacheFailure(t *testing.T) {
	cache := &brokenCache{}
	reg := NewRegistry()
	reg.SetStyleCache(cache)
	reg.Register(testCardKind)
	reg.Reset()
	reg.Register(testPanelKind)

	if cache.clears != 3 {
		t.Errorf("Clear() called %d times, want 3", cache.clears)
	}

	css, err := reg.Stylesheet(context.Background(), styles.LightTheme(), true)
	if err != nil {
		t.Fatalf("Stylesheet() error = %v", err)
	}
	if want := ".card { color: black; }\n.panel { margin: 0; }"; css != want {
		t.Errorf("Stylesheet() = %q, want %q", css, want)
	}
}

func TestDefaultRegistry(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	reg := NewRegistry()
	SetDefault(reg)
	if Default() != reg {
		t.Error("Default() did not return the registry passed to SetDefault")
	}
}
