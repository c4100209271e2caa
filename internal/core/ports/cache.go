package ports

import (
	"context"
	"errors"
	"time"
)

// ActiveOrdersCacheKey is the single aggregate key holding the JSON-serialized
// active-orders listing.
const ActiveOrdersCacheKey = "orders:active"

// ActiveOrdersCacheTTL bounds the staleness of the cached listing. The cache
// is invalidated (deleted, never updated in place) on every mutation, so the
// TTL is only the upper bound for readers racing a writer.
const ActiveOrdersCacheTTL = 30 * time.Second

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a key/value store with expiring entries, used as a best-effort
// acceleration structure in front of the order store. It must never be treated
// as a source of truth: readers fall through to the store on a miss, and
// implementations are expected to be stale-tolerant up to the entry TTL.
type Cache interface {
	// Get returns the value stored under key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key with the given time-to-live.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
