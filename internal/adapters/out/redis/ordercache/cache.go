// Package ordercache provides the Redis-backed implementation of the cache
// port used by the active-orders listing.
package ordercache

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// RedisCache implements ports.Cache on top of a go-redis client.
// A missing key maps to ports.ErrCacheMiss so callers do not depend on the
// redis package.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a cache adapter around an existing client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get returns the value stored under key, or ports.ErrCacheMiss when absent.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ports.ErrCacheMiss
		}
		return nil, err
	}

	return data, nil
}

// Set stores value under key with the given time-to-live.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes key. Deleting an absent key is not an error.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
