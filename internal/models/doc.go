// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package models defines the HTTP API data structures shared by handlers and
clients.

Key Components:

  - APIResponse: Standard response wrapper with status, data, metadata and error
  - APIError: Machine-readable error code, message and optional details
  - Metadata: Response timestamp, processing time and cache indicator
  - HealthStatus: Liveness payload including catalog size and TMDB setup
  - MovieList: Title search results for the movie picker
  - PosterResponse: A single resolved poster

Recommendation payloads are served as recommend.Response directly and are
not duplicated here.
*/
package models
