// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/projectatlas/internal/api"
	"github.com/tomtom215/projectatlas/internal/cache"
	"github.com/tomtom215/projectatlas/internal/config"
	"github.com/tomtom215/projectatlas/internal/logging"
	"github.com/tomtom215/projectatlas/internal/pipeline"
	"github.com/tomtom215/projectatlas/internal/supervisor"
	"github.com/tomtom215/projectatlas/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging.ToLoggingConfig())
	logging.Info().Str("version", version).Msg("Starting Project Atlas")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Both files are read once at startup; every request filters the same
	// in-memory Source.
	src, err := cfg.Dataset.OpenSource(ctx)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}

	p := pipeline.New(src, pipeline.Options{TopN: cfg.Pipeline.TopN})

	var runCache *cache.Cache[*pipeline.Result]
	if cfg.Cache.Enabled {
		runCache = cache.New[*pipeline.Result](api.RunCacheName, cfg.Cache.TTL)
		logging.Info().Dur("ttl", cfg.Cache.TTL).Msg("Run cache enabled")
	} else {
		logging.Info().Msg("Run cache disabled (CACHE_ENABLED=false)")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins for public deployments")
	}

	handler := api.NewHandler(p, runCache, version)
	mw := api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
	})
	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if runCache != nil {
		tree.AddDataService(services.NewCacheJanitorService(runCache, cache.DefaultCleanupInterval))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Project Atlas stopped")
}
