// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import (
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/reelmatch/internal/metrics"
)

// FillFunc computes a value for a missing key. It returns the value and the
// TTL to store it with: UseDefaultTTL for the memo's default, zero for no
// expiry.
type FillFunc[V any] func() (V, time.Duration, error)

// Memo memoizes a function over string keys. Concurrent misses for the same
// key share one fill call, and failed fills are not cached.
type Memo[V any] struct {
	name  string
	lru   *LRU[string, V]
	group singleflight.Group
}

// UseDefaultTTL tells Memo to store a filled value with the default TTL.
const UseDefaultTTL time.Duration = -1

// NewMemo creates a named memo with bounded capacity and default TTL.
// name labels the memo_cache_* metrics.
func NewMemo[V any](name string, capacity int, ttl time.Duration) *Memo[V] {
	return &Memo[V]{
		name: name,
		lru:  NewLRU[string, V](capacity, ttl),
	}
}

// Do returns the cached value for key or runs fill once to compute it.
// hit reports whether the value came from the cache without waiting on a fill.
func (m *Memo[V]) Do(key string, fill FillFunc[V]) (value V, hit bool, err error) {
	if v, ok := m.lru.Get(key); ok {
		metrics.RecordCacheLookup(m.name, true)
		return v, true, nil
	}
	metrics.RecordCacheLookup(m.name, false)

	result, err, _ := m.group.Do(key, func() (interface{}, error) {
		// A concurrent caller may have filled the key between Get and Do.
		if v, ok := m.lru.Get(key); ok {
			return v, nil
		}

		v, ttl, fillErr := fill()
		if fillErr != nil {
			return v, fillErr
		}
		if ttl < 0 {
			m.lru.Set(key, v)
		} else {
			m.lru.SetWithTTL(key, v, ttl)
		}
		metrics.CacheEntries.WithLabelValues(m.name).Set(float64(m.lru.Len()))
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, false, err
	}

	v, ok := result.(V)
	if !ok {
		var zero V
		return zero, false, fmt.Errorf("memo %s: unexpected value type %T", m.name, result)
	}
	return v, false, nil
}

// Get returns a cached value without filling.
func (m *Memo[V]) Get(key string) (V, bool) {
	return m.lru.Get(key)
}

// Forget removes key from the memo.
func (m *Memo[V]) Forget(key string) {
	m.lru.Remove(key)
	m.group.Forget(key)
}

// CleanupExpired drops expired entries and returns how many were removed.
func (m *Memo[V]) CleanupExpired() int {
	return m.lru.CleanupExpired()
}

// Stats returns the underlying cache counters.
func (m *Memo[V]) Stats() Stats {
	return m.lru.Stats()
}
