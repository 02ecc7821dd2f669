// Package cache provides a small Redis-backed JSON cache used for the
// public content lists and geolocation results. Cache failures are never
// fatal: a miss or a Redis error simply sends the caller to the source.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis client with a default TTL.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New returns a Cache writing entries with the given TTL.
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get unmarshals the cached value for key into dest. Returns false on a
// miss, a Redis error, or a corrupt entry.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		slog.Warn("cache entry corrupt, ignoring", "key", key, "err", err)
		return false
	}
	return true
}

// Set stores v under key with the configured TTL. Failures are logged,
// not returned.
func (c *Cache) Set(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("cache marshal failed", "key", key, "err", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Warn("cache write failed", "key", key, "err", err)
	}
}

// Delete removes key. Used when a mutation invalidates a cached list.
func (c *Cache) Delete(ctx context.Context, key string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		slog.Warn("cache delete failed", "key", key, "err", err)
	}
}
