// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Sweeper drops expired cache entries. *recommend.Engine and
// *poster.Resolver implement it.
type Sweeper interface {
	CleanupExpired() int
}

// CacheJanitorService periodically sweeps expired entries from the memo
// caches. Expired entries are already ignored on read; sweeping returns their
// memory without waiting for capacity eviction.
type CacheJanitorService struct {
	sweepers map[string]Sweeper
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheJanitorService creates a janitor for the named sweepers.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheJanitorService(sweepers map[string]Sweeper, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	return &CacheJanitorService{
		sweepers: sweepers,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
		name:     "cache-janitor",
	}
}

// Serve implements suture.Service. A non-positive interval disables sweeping;
// the service then idles until shutdown so the supervisor does not restart it.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Debug().Msg("cache sweeping disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep runs one pass over every cache and returns the total removed.
func (s *CacheJanitorService) sweep() int {
	total := 0
	for name, sw := range s.sweepers {
		removed := sw.CleanupExpired()
		total += removed
		if removed > 0 {
			s.logger.Debug().Str("cache", name).Int("removed", removed).Msg("swept expired entries")
		}
	}
	return total
}

// String implements fmt.Stringer for suture's log messages.
func (s *CacheJanitorService) String() string {
	return s.name
}
