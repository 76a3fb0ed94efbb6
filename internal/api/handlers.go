// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"time"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// PosterService resolves posters and reports its memo statistics.
// *poster.Resolver implements it.
type PosterService interface {
	recommend.PosterFetcher
	CacheStats() cache.Stats
}

// Handler serves the recommender's HTTP endpoints.
type Handler struct {
	engine    *recommend.Engine
	posters   PosterService
	config    *config.Config
	version   string
	startTime time.Time
}

// NewHandler creates a handler. cfg may be nil, in which case TMDB is
// reported as unconfigured.
func NewHandler(engine *recommend.Engine, posters PosterService, cfg *config.Config, version string) *Handler {
	return &Handler{
		engine:    engine,
		posters:   posters,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
}
