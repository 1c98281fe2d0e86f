package cache

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

var sfGroup singleflight.Group

type getOrSetResult[V any] struct {
	val V
	ttl time.Duration
}

// GetOrSet returns the cached value for key, or calls fn to compute it on a
// miss. Concurrent misses for the same key in the same store share a
// single fn call.
//
// fn returns the value and the TTL to store it with. When fn fails nothing is
// cached and the error is returned. A failing store is ignored: the computed
// value is still returned.
func GetOrSet[V any](ctx context.Context, s Store[V], key string, fn func(ctx context.Context) (V, time.Duration, error)) (V, error) {
	if v, err := s.Get(ctx, key); err == nil {
		return v, nil
	}

	v, err, _ := sfGroup.Do(fmt.Sprintf("%p/%s", s, key), func() (any, error) {
		val, ttl, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return getOrSetResult[V]{val: val, ttl: ttl}, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	r, ok := v.(getOrSetResult[V])
	if !ok {
		// Same key used with a different value type in flight; compute directly.
		val, ttl, err := fn(ctx)
		if err != nil {
			var zero V
			return zero, err
		}
		r = getOrSetResult[V]{val: val, ttl: ttl}
	}

	_ = s.Set(ctx, key, r.val, r.ttl)
	return r.val, nil
}
