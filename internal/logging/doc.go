// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package logging provides the zerolog-based logging used across Reelmatch.

Every component receives a zerolog.Logger (usually derived with
WithComponent) and emits structured events. The package also keeps a global
logger for code paths that run before configuration is loaded, such as the
CLI bootstrap.

# Initialization

	logging.Init(logging.Config{
	    Level:  cfg.Logging.Level,
	    Format: cfg.Logging.Format,
	    Caller: cfg.Logging.Caller,
	})

# Request Scoped Logging

HTTP middleware stores a request ID in the context; Ctx(ctx) returns a logger
carrying it:

	logging.Ctx(ctx).Info().Str("title", title).Msg("recommendation served")

# slog Interop

NewSlogLogger returns a *slog.Logger that writes through zerolog. The
supervisor tree passes it to sutureslog so restart events share the same
output and format.
*/
package logging
