package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer.
// It allows swapping implementations (Redis, in-memory) without touching
// the callers. Post data is never stored here; the cache serves request
// accounting and health reporting only.
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// Returns (found, error): on a miss dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with a TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache
	Delete(ctx context.Context, keys ...string) error

	// Increment atomically increments a counter key, creating it at 1
	Increment(ctx context.Context, key string) (int64, error)

	// Expire sets a TTL on an existing key
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// Ping verifies the connection
	Ping(ctx context.Context) error
}
