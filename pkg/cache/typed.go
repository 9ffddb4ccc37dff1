package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Load returns the value of key, registering it with fetch on first use and
// waiting for the first fetch. Once a value exists it is returned even when
// the latest refresh failed.
func Load[T any](ctx context.Context, c *Cache, key string, interval time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	e, err := c.register(key, interval,
		func(ctx context.Context) (any, error) { return fetch(ctx) },
		func(raw []byte) (any, error) {
			var v T
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, err
			}
			return v, nil
		},
	)
	if err != nil {
		return zero, err
	}

	snap, err := c.await(ctx, e)
	if err != nil {
		return zero, err
	}
	if !snap.HasValue() {
		if snap.Err != nil {
			return zero, snap.Err
		}
		return zero, ErrMiss
	}
	return valueOf[T](snap)
}

// Peek returns the cached value of key without fetching.
func Peek[T any](c *Cache, key string) (T, Snapshot, bool) {
	var zero T
	snap, ok := c.Get(key)
	if !ok || !snap.HasValue() {
		return zero, snap, false
	}
	v, err := valueOf[T](snap)
	if err != nil {
		return zero, snap, false
	}
	return v, snap, true
}

func valueOf[T any](snap Snapshot) (T, error) {
	v, ok := snap.Value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache entry %s holds %T", snap.Key, snap.Value)
	}
	return v, nil
}
