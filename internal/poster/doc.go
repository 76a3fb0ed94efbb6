// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package poster resolves TMDB movie IDs to displayable poster image URLs.

The Resolver never fails: every call yields a URL, either a real poster or
one of two placeholder images.

# Resolution

Each attempt queries the movie detail endpoint:

	GET {base}/movie/{id}?api_key=...&language=en-US

If the detail payload has a poster_path, the poster URL is the configured
image base followed by that path verbatim. Otherwise, when a title is known,
a title search runs and the first result's poster_path is used:

	GET {base}/search/movie?api_key=...&query={title}

A response without any poster path resolves to the no-image placeholder.
Transport failures (network errors, timeouts, non-2xx responses, an open
circuit breaker) and 2xx bodies that cannot be decoded are retried after a
uniformly random backoff; once every attempt has failed the error placeholder
is returned.

# Components

  - TMDBClient: go-resty based HTTP client for the two endpoints
  - CircuitBreakerClient: optional sony/gobreaker wrapper that stops calling
    TMDB after repeated failures (breaker.enabled, off by default)
  - Resolver: retry, fallback and placeholder logic plus a bounded memo
    keyed by (movie ID, title)

# Example

	lookup := poster.NewLookup(cfg.TMDB, cfg.Breaker, logger)
	resolver := poster.NewResolver(lookup, poster.OptionsFromConfig(cfg.TMDB, cfg.Cache), logger)

	result := resolver.Fetch(ctx, 19995, "Avatar")
	fmt.Println(result.URL)
*/
package poster
