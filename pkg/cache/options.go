package cache

import "time"

// MemoryOption configures the in-memory store.
type MemoryOption[V any] func(*memoryOptions[V])

type memoryOptions[V any] struct {
	onEvict         EvictFunc[V]
	idleTTL         time.Duration
	cleanupInterval time.Duration
	maxEntries      int
	sliding         bool
}

func defaultMemoryOptions[V any]() *memoryOptions[V] {
	return &memoryOptions[V]{
		idleTTL:         30 * time.Minute,
		cleanupInterval: time.Minute,
		sliding:         true,
	}
}

// WithIdleTTL sets the default idle expiration used when Set is called
// with a zero TTL.
// Default: 30 minutes.
func WithIdleTTL[V any](d time.Duration) MemoryOption[V] {
	return func(o *memoryOptions[V]) {
		o.idleTTL = d
	}
}

// WithCleanupInterval sets how often the janitor removes expired entries.
// Zero disables the janitor; expired entries are then dropped on access.
// Default: 1 minute.
func WithCleanupInterval[V any](d time.Duration) MemoryOption[V] {
	return func(o *memoryOptions[V]) {
		o.cleanupInterval = d
	}
}

// WithMaxEntries caps the number of entries. When full, the least recently
// used entry is evicted. Zero means unlimited.
func WithMaxEntries[V any](n int) MemoryOption[V] {
	return func(o *memoryOptions[V]) {
		if n >= 0 {
			o.maxEntries = n
		}
	}
}

// WithEvictCallback sets the function called for every entry leaving the store.
func WithEvictCallback[V any](fn EvictFunc[V]) MemoryOption[V] {
	return func(o *memoryOptions[V]) {
		o.onEvict = fn
	}
}

// WithFixedTTL stops Get from extending deadlines, so entries expire a fixed
// time after Set no matter how often they are read.
func WithFixedTTL[V any]() MemoryOption[V] {
	return func(o *memoryOptions[V]) {
		o.sliding = false
	}
}
