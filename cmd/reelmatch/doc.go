// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Command reelmatch recommends movies similar to a selected title and
// resolves their posters from TMDB.
//
// # Commands
//
//	reelmatch serve                 Run the HTTP API under the supervisor tree
//	reelmatch recommend <title>     Print the top recommendations for a title
//	reelmatch titles [--query q]    List or search catalog titles
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables, optionally seeded from a .env file (--env-file)
//   - Config file (--config, CONFIG_PATH, or config.yaml)
//   - Built-in defaults
//
// The catalog is read from MOVIES_PATH and SIMILARITY_PATH. Without
// TMDB_API_KEY every poster lookup fails and recommendations render with the
// error placeholder; the service still starts and reports itself degraded.
//
// # Example Usage
//
//	export TMDB_API_KEY=your-tmdb-key
//	reelmatch recommend "The Dark Knight"
//
//	HTTP_PORT=8080 reelmatch serve
//	curl 'http://localhost:8080/api/v1/recommendations?title=Avatar'
//
// # Signal Handling
//
// serve shuts down gracefully on SIGINT and SIGTERM, draining in-flight
// requests for up to HTTP_SHUTDOWN_TIMEOUT.
package main
