// Package cache provides a generic in-memory store with idle expiration.
//
// It holds process-local values that cannot be serialized, such as live
// page documents with their event listeners. Every read pushes the entry's
// deadline forward, so entries expire only after staying unused for their
// idle TTL.
//
// # Usage
//
//	pages := cache.NewMemory[*board.Page](
//	    cache.WithIdleTTL[*board.Page](30 * time.Minute),
//	    cache.WithMaxEntries[*board.Page](10000),
//	    cache.WithEvictCallback[*board.Page](func(_ string, p *board.Page) { p.Close() }),
//	)
//	defer pages.Close()
//
//	_ = pages.Set(ctx, id, page, 0) // default idle TTL
//	page, err := pages.Get(ctx, id)
//	if errors.Is(err, cache.ErrNotFound) {
//	    // expired or never stored
//	}
//
// # TTL semantics
//
//   - Positive duration: entry expires after being idle for this duration
//   - Zero: use the configured default idle TTL
//   - Negative: entry never expires
//
// WithFixedTTL turns sliding expiry off so reads no longer extend deadlines.
//
// # Compute on miss
//
// GetOrSet fills the store from a callback and collapses concurrent misses
// for the same key into one call:
//
//	users, err := cache.GetOrSet(ctx, usersCache, "users", func(ctx context.Context) ([]placeholder.User, time.Duration, error) {
//	    u, err := client.Users(ctx)
//	    return u, time.Minute, err
//	})
//
// # Eviction
//
// The eviction callback runs for every entry that leaves the store: idle
// expiry (on access or by the janitor), LRU eviction when WithMaxEntries is
// reached, Delete, replacement by Set, and Close. Callbacks run outside the
// store's lock and may call back into other locks safely.
package cache
