// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/api"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				opts.cfg.Server.Port = port
			}
			return runServe(cmd.Context(), opts)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "override the configured HTTP port")
	return cmd
}

func runServe(ctx context.Context, opts *globalOptions) error {
	cfg := opts.cfg
	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(a.logger), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	handler := api.NewHandler(a.engine, a.resolver, cfg, version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Server))
	server := services.NewHTTPServer(cfg.Server, router.Setup())

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, a.logger))
	tree.AddCacheService(services.NewCacheJanitorService(map[string]services.Sweeper{
		"recommendations": a.engine,
		"posters":         a.resolver,
	}, cfg.Cache.CleanupInterval, a.logger))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info().
		Str("addr", cfg.Server.Addr()).
		Str("version", version).
		Int("k", a.engine.K()).
		Msg("Starting Reelmatch with supervisor tree")

	err = tree.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor stopped: %w", err)
	}

	if report, reportErr := tree.UnstoppedServiceReport(); reportErr == nil && len(report) > 0 {
		a.logger.Warn().Int("count", len(report)).Msg("Some services did not stop within the shutdown timeout")
	}
	a.logger.Info().Msg("Reelmatch stopped")
	return nil
}
