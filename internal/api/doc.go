// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api provides the HTTP interface of the recommender using the chi router.

Endpoints:

  - GET /health: service status, catalog size and memo cache statistics
  - GET /metrics: Prometheus metrics
  - GET /api/v1/movies?q=&limit=: case-insensitive title search for the picker
  - GET /api/v1/recommendations?title=: up to K similar movies with posters
  - GET /api/v1/posters/{movieID}?title=: a single poster resolution

Every JSON endpoint answers with the models.APIResponse envelope. Errors carry
a machine-readable code; an unknown title yields 404 TITLE_NOT_FOUND and bad
query parameters yield 400 VALIDATION_ERROR.

Middleware Stack:

Global middleware runs in this order: request ID, real IP, panic recovery,
CORS, gzip compression and security headers. The /api/v1 group adds a per-IP
rate limit (go-chi/httprate) and Prometheus request metrics.
*/
package api
