package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/postboard/pkg/cache"
)

// ErrPageNotFound is returned for unknown or expired page ids.
var ErrPageNotFound = errors.New("board: page not found")

// Sessions keeps one Page per browser tab in memory. Pages expire after an
// idle period and the least recently used page is dropped when the store is
// full. A dropped page is closed.
type Sessions struct {
	store  *cache.Memory[*Page]
	fetch  *Fetcher
	logger *slog.Logger
}

type sessionsOptions struct {
	idleTTL         time.Duration
	cleanupInterval time.Duration
	maxPages        int
}

// SessionsOption configures Sessions.
type SessionsOption func(*sessionsOptions)

// WithIdleTTL sets how long an untouched page is kept. Default: 30 minutes.
func WithIdleTTL(d time.Duration) SessionsOption {
	return func(o *sessionsOptions) {
		if d > 0 {
			o.idleTTL = d
		}
	}
}

// WithMaxPages bounds the number of live pages. Zero means unbounded.
func WithMaxPages(n int) SessionsOption {
	return func(o *sessionsOptions) {
		if n >= 0 {
			o.maxPages = n
		}
	}
}

// WithCleanupInterval sets how often expired pages are collected.
// Default: 1 minute.
func WithCleanupInterval(d time.Duration) SessionsOption {
	return func(o *sessionsOptions) {
		o.cleanupInterval = d
	}
}

// NewSessions creates a page store. Pages read through fetch.
func NewSessions(fetch *Fetcher, logger *slog.Logger, opts ...SessionsOption) *Sessions {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	o := &sessionsOptions{
		idleTTL:         30 * time.Minute,
		cleanupInterval: time.Minute,
	}
	for _, opt := range opts {
		opt(o)
	}

	s := &Sessions{fetch: fetch, logger: logger}
	s.store = cache.NewMemory[*Page](
		cache.WithIdleTTL[*Page](o.idleTTL),
		cache.WithCleanupInterval[*Page](o.cleanupInterval),
		cache.WithMaxEntries[*Page](o.maxPages),
		cache.WithEvictCallback[*Page](func(id string, p *Page) {
			p.Close()
			s.logger.Debug("page closed", slog.String("page_id", id))
		}),
	)
	return s
}

// Open creates a page, initializes it and stores it.
func (s *Sessions) Open(ctx context.Context) (*Page, error) {
	page := NewPage(uuid.NewString(), s.fetch, s.logger)
	page.Init(ctx)
	if err := s.store.Set(ctx, page.ID(), page, 0); err != nil {
		page.Close()
		return nil, fmt.Errorf("store page: %w", err)
	}
	return page, nil
}

// Lookup returns a live page and refreshes its idle deadline.
func (s *Sessions) Lookup(ctx context.Context, id string) (*Page, error) {
	if id == "" {
		return nil, ErrPageNotFound
	}
	page, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) || errors.Is(err, cache.ErrClosed) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return page, nil
}

// Len returns the number of stored pages.
func (s *Sessions) Len() int {
	return s.store.Len()
}

// Close closes every page and stops background cleanup.
func (s *Sessions) Close() error {
	return s.store.Close()
}
