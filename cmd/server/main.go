// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

// Command server runs the personalized report feed service: it loads the
// dataset, builds the first snapshot, and serves the feed API under a
// suture supervision tree.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OussamaMasri/TacticalReportBackend/internal/api"
	"github.com/OussamaMasri/TacticalReportBackend/internal/config"
	"github.com/OussamaMasri/TacticalReportBackend/internal/logging"
	"github.com/OussamaMasri/TacticalReportBackend/internal/recommend"
	"github.com/OussamaMasri/TacticalReportBackend/internal/store"
	"github.com/OussamaMasri/TacticalReportBackend/internal/supervisor"
	"github.com/OussamaMasri/TacticalReportBackend/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("data_dir", cfg.Data.Dir).
		Str("addr", cfg.ListenAddr()).
		Bool("refresh_enabled", cfg.Refresh.Enabled).
		Msg("Starting Tactical Report feed service")

	st, err := store.Open(cfg.Data.Dir, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}

	engine, err := recommend.NewEngine(cfg.Scoring, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create scoring engine")
	}
	engine.SetDataProvider(st)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The first snapshot must exist before the API can serve feeds.
	stats, err := engine.Rebuild(ctx)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build initial snapshot")
	}
	logging.Info().
		Int("users", stats.Users).
		Int("reports", stats.Reports).
		Int("events", stats.Events).
		Msg("Initial snapshot built")

	handler := api.NewHandler(engine, st, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())

	if cfg.Refresh.Enabled {
		tree.AddBackgroundService(services.NewRefreshService(
			st, engine, cfg.Refresh.Interval, logging.Logger()))
		logging.Info().Dur("interval", cfg.Refresh.Interval).Msg("Refresh service added")
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
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
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

	logging.Info().Msg("Service stopped gracefully")
}
