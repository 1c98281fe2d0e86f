package cache

import (
	"context"
	"time"
)

// Store is a generic key-value store with idle expiration.
//
// TTL semantics for Set:
//   - Positive duration: entry expires after being idle for this duration
//   - Zero: use the store's configured default idle TTL
//   - Negative: entry never expires
type Store[V any] interface {
	// Get retrieves a value by key and refreshes its idle deadline.
	// Returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) (V, error)

	// Set stores a value with the given idle TTL.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error

	// Delete removes a key. The eviction callback runs for removed entries.
	Delete(ctx context.Context, key string) error

	// Len returns the number of live entries.
	Len() int

	// Close evicts all entries and stops background work.
	Close() error
}

// EvictFunc is called for every entry that leaves the store, whether by
// expiration, LRU eviction, deletion, replacement or Close.
// It runs outside the store's lock.
type EvictFunc[V any] func(key string, value V)
