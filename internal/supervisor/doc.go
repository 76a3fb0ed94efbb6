// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package supervisor provides process supervision for Reelmatch using suture v4.

The tree restarts crashed services with backoff and shuts everything down in
order when the serve context is cancelled:

	RootSupervisor ("reelmatch")
	├── CacheSupervisor ("cache-layer")
	│   └── CacheJanitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logger), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddCacheService(services.NewCacheJanitorService(sweepers, interval, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, timeout, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

# Failure Handling

Each layer counts failures independently. A counter above FailureThreshold
(decaying over FailureDecay seconds) delays restarts by FailureBackoff.
Supervisor events are logged through sutureslog into the zerolog pipeline.

See internal/supervisor/services for the service wrappers.
*/
package supervisor
