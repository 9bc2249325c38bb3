package styles

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pthm/hxel/lib/encoding"
)

// redisClient is the subset of go-redis used by RedisCache.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Keys(ctx context.Context, pattern string) *redis.StringSliceCmd
	Close() error
}

// RedisCache shares formatted stylesheets between processes. Entries are
// sealed with a signing key so tampered values read as misses.
type RedisCache struct {
	client redisClient
	codec  *encoding.Codec
	prefix string
	ttl    time.Duration
}

// RedisOption configures a RedisCache.
type RedisOption func(*RedisCache)

// WithPrefix sets the key prefix. Defaults to "hxel:styles:".
func WithPrefix(prefix string) RedisOption {
	return func(c *RedisCache) { c.prefix = prefix }
}

// WithTTL expires entries after ttl. Zero keeps entries until cleared.
func WithTTL(ttl time.Duration) RedisOption {
	return func(c *RedisCache) { c.ttl = ttl }
}

// NewRedisCache connects to the redis server at url, e.g.
// "redis://localhost:6379/0".
func NewRedisCache(url string, key []byte, opts ...RedisOption) (*RedisCache, error) {
	ropts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("styles: parse redis url: %w", err)
	}
	return newRedisCache(redis.NewClient(ropts), key, opts...), nil
}

func newRedisCache(client redisClient, key []byte, opts ...RedisOption) *RedisCache {
	c := &RedisCache{
		client: client,
		codec:  encoding.NewCodec(key),
		prefix: "hxel:styles:",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type redisEntry struct {
	Key string `msgpack:"k"`
	CSS string `msgpack:"c"`
}

// Get implements Cache.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	sealed, err := c.client.Get(ctx, c.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}

	var entry redisEntry
	if err := c.codec.Open(sealed, &entry); err != nil || entry.Key != key {
		return "", ErrCacheMiss
	}
	return entry.CSS, nil
}

// Set implements Cache.
func (c *RedisCache) Set(ctx context.Context, key, css string) error {
	sealed, err := c.codec.Seal(redisEntry{Key: key, CSS: css})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.prefix+key, sealed, c.ttl).Err()
}

// Delete implements Cache.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}

// Clear implements Cache.
func (c *RedisCache) Clear(ctx context.Context) error {
	keys, err := c.client.Keys(ctx, c.prefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Close implements Cache.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
