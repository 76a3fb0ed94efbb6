// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"time"

	"github.com/tomtom215/reelmatch/internal/config"
)

// Options configures an Engine.
type Options struct {
	// FetchInterval is the minimum spacing between poster lookup starts.
	// Zero disables pacing.
	FetchInterval time.Duration

	// Workers is the number of concurrent poster lookups per request.
	Workers int

	// CacheSize bounds the number of memoized responses.
	CacheSize int

	// CacheTTL is how long a memoized response is served.
	CacheTTL time.Duration

	// ErrorTTL is how long a response containing an error placeholder is served.
	ErrorTTL time.Duration
}

// DefaultOptions returns options matching the default configuration.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default().Recommend, config.Default().Cache)
}

// OptionsFromConfig maps configuration onto engine options.
func OptionsFromConfig(rc config.RecommendConfig, cc config.CacheConfig) Options {
	return Options{
		FetchInterval: rc.FetchInterval,
		Workers:       rc.Workers,
		CacheSize:     cc.RecommendationSize,
		CacheTTL:      cc.RecommendationTTL,
		ErrorTTL:      cc.PosterErrorTTL,
	}
}
