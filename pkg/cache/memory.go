package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// entry holds a stored value with its idle TTL and current deadline.
type entry[V any] struct {
	expiresAt time.Time // zero value = never expires
	value     V
	key       string
	ttl       time.Duration
}

func (e *entry[V]) isExpired(now time.Time) bool {
	if e.expiresAt.IsZero() {
		return false
	}
	return now.After(e.expiresAt)
}

// touch pushes the deadline forward by the entry's idle TTL.
func (e *entry[V]) touch(now time.Time) {
	if e.ttl > 0 {
		e.expiresAt = now.Add(e.ttl)
	}
}

// Memory is an in-memory store with idle expiration and optional LRU
// eviction when a maximum entry count is configured.
//
// A hash map gives O(1) lookups; a doubly-linked list keeps LRU order with
// the most recently used entries at the front.
type Memory[V any] struct {
	items    map[string]*list.Element
	eviction *list.List
	opts     *memoryOptions[V]
	done     chan struct{}
	now      func() time.Time
	mu       sync.Mutex
	closed   bool
}

// NewMemory creates a new in-memory store.
//
// Example:
//
//	pages := cache.NewMemory[*board.Page](
//	    cache.WithIdleTTL[*board.Page](30 * time.Minute),
//	    cache.WithMaxEntries[*board.Page](10000),
//	    cache.WithEvictCallback[*board.Page](func(_ string, p *board.Page) { p.Close() }),
//	)
//	defer pages.Close()
func NewMemory[V any](opts ...MemoryOption[V]) *Memory[V] {
	o := defaultMemoryOptions[V]()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory[V]{
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		opts:     o,
		done:     make(chan struct{}),
		now:      time.Now,
	}

	if o.cleanupInterval > 0 {
		go m.janitor()
	}

	return m
}

// Get retrieves a value by key, marks it as recently used and, unless the
// store was built WithFixedTTL, refreshes its idle deadline.
func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	var zero V

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return zero, ErrClosed
	}

	elem, ok := m.items[key]
	if !ok {
		m.mu.Unlock()
		return zero, ErrNotFound
	}

	now := m.now()
	e := elem.Value.(*entry[V])
	if e.isExpired(now) {
		m.removeElement(elem)
		m.mu.Unlock()
		m.notify(e)
		return zero, ErrNotFound
	}

	if m.opts.sliding {
		e.touch(now)
	}
	m.eviction.MoveToFront(elem)
	m.mu.Unlock()

	return e.value, nil
}

// Set stores a value. Replacing an existing key evicts the previous value.
func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()

	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}

	if ttl == 0 {
		ttl = m.opts.idleTTL
	}

	e := &entry[V]{key: key, value: value, ttl: ttl}
	e.touch(m.now())

	var evicted []*entry[V]
	if elem, ok := m.items[key]; ok {
		evicted = append(evicted, elem.Value.(*entry[V]))
		m.removeElement(elem)
	}

	if m.opts.maxEntries > 0 && len(m.items) >= m.opts.maxEntries {
		if oldest := m.eviction.Back(); oldest != nil {
			evicted = append(evicted, oldest.Value.(*entry[V]))
			m.removeElement(oldest)
		}
	}

	m.items[key] = m.eviction.PushFront(e)
	m.mu.Unlock()

	m.notify(evicted...)
	return nil
}

// Delete removes a key from the store.
func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()

	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}

	elem, ok := m.items[key]
	if !ok {
		m.mu.Unlock()
		return nil
	}
	e := elem.Value.(*entry[V])
	m.removeElement(elem)
	m.mu.Unlock()

	m.notify(e)
	return nil
}

// Len returns the number of entries, including expired ones the janitor
// has not collected yet.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Close stops the janitor and evicts every entry. Close is idempotent.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	close(m.done)

	evicted := make([]*entry[V], 0, len(m.items))
	for elem := m.eviction.Front(); elem != nil; elem = elem.Next() {
		evicted = append(evicted, elem.Value.(*entry[V]))
	}
	m.items = make(map[string]*list.Element)
	m.eviction.Init()
	m.mu.Unlock()

	m.notify(evicted...)
	return nil
}

// janitor periodically removes expired entries.
func (m *Memory[V]) janitor() {
	ticker := time.NewTicker(m.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.deleteExpired()
		}
	}
}

// deleteExpired removes all expired entries from back to front.
func (m *Memory[V]) deleteExpired() {
	m.mu.Lock()
	now := m.now()
	var evicted []*entry[V]
	for elem := m.eviction.Back(); elem != nil; {
		prev := elem.Prev()
		if e := elem.Value.(*entry[V]); e.isExpired(now) {
			evicted = append(evicted, e)
			m.removeElement(elem)
		}
		elem = prev
	}
	m.mu.Unlock()

	m.notify(evicted...)
}

// removeElement unlinks an element. Caller must hold the mutex.
func (m *Memory[V]) removeElement(elem *list.Element) {
	m.eviction.Remove(elem)
	delete(m.items, elem.Value.(*entry[V]).key)
}

// notify runs the eviction callback. Caller must not hold the mutex.
func (m *Memory[V]) notify(evicted ...*entry[V]) {
	if m.opts.onEvict == nil {
		return
	}
	for _, e := range evicted {
		m.opts.onEvict(e.key, e.value)
	}
}

var _ Store[any] = (*Memory[any])(nil)
