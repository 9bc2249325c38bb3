package hxel

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/pthm/hxel/lib/styles"
)

// Registry indexes kinds by name for markup parsing and collects their
// styles. Registration normally happens at startup; lookups are safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string][]*Kind
	kinds  []*Kind
	cache  styles.Cache
}

// NewRegistry creates an empty registry with an in-memory style cache.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string][]*Kind),
		cache:  styles.NewMemoryCache(),
	}
}

// Register adds kinds. Registering the same kind twice is a no-op; kinds
// sharing a name are kept side by side and reported as ambiguous by
// Resolve. Registering invalidates cached stylesheets.
// Panics if a kind is nil or has no name.
func (r *Registry) Register(kinds ...*Kind) {
	r.mu.Lock()
	for _, k := range kinds {
		if k == nil {
			r.mu.Unlock()
			panic("hxel: cannot register nil kind")
		}
		if k.Name == "" {
			r.mu.Unlock()
			panic(fmt.Sprintf("hxel: kind with tag %q has no name", k.Tag))
		}
		if r.contains(k) {
			continue
		}
		r.byName[k.Name] = append(r.byName[k.Name], k)
		r.kinds = append(r.kinds, k)
	}
	cache := r.cache
	r.mu.Unlock()
	clearStyles(cache)
}

func (r *Registry) contains(k *Kind) bool {
	for _, existing := range r.byName[k.Name] {
		if existing == k {
			return true
		}
	}
	return false
}

// Lookup returns every kind registered under name.
func (r *Registry) Lookup(name string) []*Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Kind(nil), r.byName[name]...)
}

// Resolve returns the single kind registered under name.
func (r *Registry) Resolve(name string) (*Kind, error) {
	kinds := r.Lookup(name)
	switch len(kinds) {
	case 0:
		return nil, &UnknownElementError{Name: name}
	case 1:
		return kinds[0], nil
	}
	return nil, fmt.Errorf("%w: %d kinds named %q", ErrAmbiguousElement, len(kinds), name)
}

// All returns every registered kind in registration order.
func (r *Registry) All() []*Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Kind(nil), r.kinds...)
}

// Reset removes every kind and clears cached stylesheets.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.byName = make(map[string][]*Kind)
	r.kinds = nil
	cache := r.cache
	r.mu.Unlock()
	clearStyles(cache)
}

// clearStyles drops cached stylesheets, logging failures.
func clearStyles(cache styles.Cache) {
	if err := cache.Clear(context.Background()); err != nil {
		log.Warn("style cache clear failed", "err", err)
	}
}

// SetStyleCache replaces the stylesheet cache. The previous cache is closed.
func (r *Registry) SetStyleCache(c styles.Cache) {
	if c == nil {
		c = styles.NullCache{}
	}
	r.mu.Lock()
	prev := r.cache
	r.cache = c
	r.mu.Unlock()
	_ = prev.Close()
}

// CollectStyles merges the styles of every registered kind for theme.
func (r *Registry) CollectStyles(theme *styles.Theme) styles.Styles {
	return CollectStyles(theme, r.All()...)
}

// Stylesheet returns the formatted styles of every registered kind. With
// cached set, results are memoised per theme name.
func (r *Registry) Stylesheet(ctx context.Context, theme *styles.Theme, cached bool) (string, error) {
	if !cached {
		return styles.Format(r.CollectStyles(theme), "\n"), nil
	}

	r.mu.RLock()
	cache := r.cache
	r.mu.RUnlock()

	logger := LoggerFrom(ctx)
	css, err := cache.Get(ctx, theme.Name)
	if err == nil {
		return css, nil
	}
	if !styles.IsCacheMiss(err) {
		logger.Warn("style cache read failed", "theme", theme.Name, "err", err)
	}

	css = styles.Format(r.CollectStyles(theme), "\n")
	logger.Debug("collected styles", "theme", theme.Name, "bytes", len(css))
	if err := cache.Set(ctx, theme.Name, css); err != nil {
		logger.Warn("style cache write failed", "theme", theme.Name, "err", err)
	}
	return css, nil
}

// CollectStyles merges the styles of kinds for theme. Later kinds replace
// same-selector rules of earlier ones.
func CollectStyles(theme *styles.Theme, kinds ...*Kind) styles.Styles {
	sheets := make([]styles.Sheet, 0, len(kinds))
	for _, k := range kinds {
		if k.Styles != nil {
			sheets = append(sheets, k.Styles)
		}
	}
	return styles.Collect(theme, sheets...)
}

var defaultRegistry atomic.Pointer[Registry]

// SetDefault sets the application-wide registry.
func SetDefault(r *Registry) {
	defaultRegistry.Store(r)
}

// Default returns the application-wide registry, creating an empty one on
// first use.
func Default() *Registry {
	if r := defaultRegistry.Load(); r != nil {
		return r
	}
	defaultRegistry.CompareAndSwap(nil, NewRegistry())
	return defaultRegistry.Load()
}
