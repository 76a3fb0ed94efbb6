// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package services provides suture.Service wrappers for Reelmatch components.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve pattern:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server built by NewHTTPServer from config.ServerConfig
  - Graceful Shutdown with a bounded drain timeout on context cancellation
  - Listener failures are returned so the supervisor restarts the server

Cache Janitor (CacheJanitorService):
  - Sweeps expired entries from the recommendation and poster memo caches
  - Runs on cache.cleanup_interval; zero disables sweeping

# Error Handling

	nil         -> Service stopped cleanly, will not restart
	error       -> Service crashed, supervisor will restart
	ctx.Err()   -> Shutdown requested, normal termination

All services implement fmt.Stringer so suture logs them by name.
*/
package services
