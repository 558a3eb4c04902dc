// Package cache provides pluggable caching for fetched package indexes.
//
// Three backends implement the [Cache] interface:
//
//   - [FileCache]: file-based storage for CLI usage (the default)
//   - [RedisCache]: Redis-backed storage for shared environments
//   - [NullCache]: no-op cache for disabling caching entirely
//
// Cache entries carry a TTL; expired entries are treated as misses.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// found (fresh); expired or absent entries are misses, not errors.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
