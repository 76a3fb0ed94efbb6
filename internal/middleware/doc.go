// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package middleware provides HTTP middleware components for the API server.

Key Components:

  - Request ID: UUID-based request tracking. The ID is echoed in the
    X-Request-ID response header and stored in the request context through
    the logging package, so recommendation and poster logs carry it.
  - Prometheus Metrics: request count, latency and in-flight gauge, labelled
    by chi route pattern rather than raw path to keep cardinality bounded.

Both are written as http.HandlerFunc decorators and adapted to chi with a
small wrapper in the api package:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Thread Safety:

All middleware is stateless apart from the Prometheus collectors, which are
safe for concurrent use.
*/
package middleware
