// Package cache stores rendered chart artifacts between runs.
//
// Three backends implement [Cache]:
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance
//   - [NullCache]: stores nothing, used when caching is disabled
//
// Keys come from a [Keyer], which hashes the document and every option that
// changes the rendered output. [Observe] wraps any backend so hits, misses
// and writes reach [observability.CacheHooks].
//
// [observability.CacheHooks]: github.com/matzehuels/barfly/pkg/observability#CacheHooks
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long rendered artifacts stay cached.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the entry for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) error
}
