package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer.
// Implementations: Redis (production), in-memory (tests, cache-disabled runs).
type Cache interface {
	// Get fetches data from the cache and unmarshals it into dest.
	// found = false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores a value with a TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes all keys matching a glob pattern (e.g. "books:count:*").
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connection, if any.
	Close() error
}
