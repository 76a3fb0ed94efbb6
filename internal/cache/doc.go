// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package cache provides the bounded memo caches behind recommendations and
poster lookups.

# Components

  - LRU: generic thread-safe LRU with optional per-entry TTL and
    hit/miss/eviction counters.
  - Memo: an LRU fronted by golang.org/x/sync/singleflight so that concurrent
    misses for one key run the fill function at most once. Failed fills are
    not stored. Hits and misses are exported as memo_cache_* metrics.

# Example

	posters := cache.NewMemo[string]("posters", 8192, 24*time.Hour)

	url, hit, err := posters.Do(key, func() (string, time.Duration, error) {
	    url, ok := resolve()
	    if !ok {
	        return url, time.Minute, nil // short-lived negative entry
	    }
	    return url, cache.UseDefaultTTL, nil
	})
*/
package cache
