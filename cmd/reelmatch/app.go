// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/poster"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// app holds the components shared by the commands.
type app struct {
	cfg      *config.Config
	logger   zerolog.Logger
	catalog  *catalog.Catalog
	resolver *poster.Resolver
	engine   *recommend.Engine
}

// newApp loads the catalog and wires the ranker, resolver, and engine.
func newApp(cfg *config.Config) (*app, error) {
	logger := logging.Logger()

	cat, err := catalog.Load(cfg.Catalog.MoviesPath, cfg.Catalog.SimilarityPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Info().
		Int("items", cat.Len()).
		Str("movies_path", cfg.Catalog.MoviesPath).
		Msg("Catalog loaded")

	if !cfg.HasTMDBCredentials() {
		logger.Warn().Msg("TMDB_API_KEY is not set: poster lookups will fail and show the error placeholder")
	}

	lookup := poster.NewLookup(cfg.TMDB, cfg.Breaker, logger)
	resolver := poster.NewResolver(lookup, poster.OptionsFromConfig(cfg.TMDB, cfg.Cache), logger)
	ranker := recommend.NewRanker(cfg.Recommend.TopK, logger)
	engine := recommend.NewEngine(cat, ranker, resolver, recommend.OptionsFromConfig(cfg.Recommend, cfg.Cache), logger)

	return &app{
		cfg:      cfg,
		logger:   logger,
		catalog:  cat,
		resolver: resolver,
		engine:   engine,
	}, nil
}
