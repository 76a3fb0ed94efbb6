// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend produces "more like this" recommendations for a selected
// movie title.
//
// # Architecture
//
// A recommendation is built in two steps:
//
//   - Ranking: the Ranker reads the selected movie's row of the precomputed
//     similarity matrix, drops the movie itself by position, and keeps the
//     K highest scores (K = 5 by default). Ties keep catalog order.
//   - Poster resolution: the Engine resolves each ranked movie to a poster
//     URL through a PosterFetcher (normally a *poster.Resolver). Every slot
//     always carries a URL; failures surface as placeholder images.
//
// # Pacing and Concurrency
//
// Poster lookups start no faster than one per Options.FetchInterval, enforced
// by a token bucket shared across requests. Options.Workers lookups may run
// at once; output order always follows rank order.
//
// # Caching
//
// Whole responses are memoized per selected title with single-flight fills,
// so concurrent requests for the same title trigger one ranking and one set
// of poster lookups. Responses containing an error placeholder are kept only
// for Options.ErrorTTL so transient TMDB outages heal quickly.
//
// # Usage
//
//	ranker := recommend.NewRanker(recommend.DefaultK, logger)
//	engine := recommend.NewEngine(cat, ranker, resolver, recommend.OptionsFromConfig(cfg.Recommend, cfg.Cache), logger)
//
//	resp, err := engine.Recommend(ctx, "Avatar")
//	var nf *catalog.NotFoundError
//	if errors.As(err, &nf) {
//	    // unknown title
//	}
package recommend
