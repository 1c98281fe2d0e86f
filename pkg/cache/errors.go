package cache

import "errors"

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a key does not exist or has expired.
	ErrNotFound = errors.New("cache: entry not found")

	// ErrClosed is returned when an operation is attempted on a closed store.
	ErrClosed = errors.New("cache: closed")
)
