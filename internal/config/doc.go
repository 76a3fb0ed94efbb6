// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package config provides configuration loading and validation for Reelmatch.

Configuration is layered with Koanf v2: struct defaults, then an optional
YAML file, then environment variables. Only mapped environment variables are
read (see envMappings); everything else in the environment is ignored.

# Sections

  - tmdb: poster lookup endpoint, credential, timeout, retry and backoff
  - catalog: paths of the movie records and similarity matrix
  - recommend: top-K size, pacing interval between poster lookups, workers
  - cache: capacity and TTL of the recommendation and poster memo caches
  - breaker: circuit breaker in front of TMDB
  - server: HTTP listen address, timeouts, CORS, per-IP rate limit
  - logging: zerolog level, format, caller

# Example

	cfg, err := config.LoadWithKoanf("")
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load config")
	}

A YAML file mirrors the koanf tags:

	tmdb:
	  api_key: "..."
	  timeout: 5s
	recommend:
	  top_k: 5
	  workers: 4
*/
package config
