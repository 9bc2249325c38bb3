package styles

import (
	"context"
	"sync"
)

// Cache stores formatted stylesheets keyed by theme name. Implementations
// must be safe for concurrent use.
type Cache interface {
	// Get returns ErrCacheMiss when key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, css string) error
	Delete(ctx context.Context, key string) error
	// Clear drops every entry owned by the cache.
	Clear(ctx context.Context) error
	Close() error
}

// MemoryCache is an in-process Cache.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]string)}
}

// Get implements Cache.
func (c *MemoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	css, ok := c.entries[key]
	if !ok {
		return "", ErrCacheMiss
	}
	return css, nil
}

// Set implements Cache.
func (c *MemoryCache) Set(_ context.Context, key, css string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = css
	return nil
}

// Delete implements Cache.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

// Clear implements Cache.
func (c *MemoryCache) Clear(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	return nil
}

// Len returns the number of cached stylesheets.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close implements Cache.
func (c *MemoryCache) Close() error { return nil }

// NullCache never stores anything.
type NullCache struct{}

// Get always misses.
func (NullCache) Get(context.Context, string) (string, error) { return "", ErrCacheMiss }

// Set does nothing.
func (NullCache) Set(context.Context, string, string) error { return nil }

// Delete does nothing.
func (NullCache) Delete(context.Context, string) error { return nil }

// Clear does nothing.
func (NullCache) Clear(context.Context) error { return nil }

// Close does nothing.
func (NullCache) Close() error { return nil }

var (
	_ Cache = (*MemoryCache)(nil)
	_ Cache = NullCache{}
)
