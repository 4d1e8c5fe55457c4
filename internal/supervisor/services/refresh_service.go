// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/OussamaMasri/TacticalReportBackend/internal/metrics"
	"github.com/OussamaMasri/TacticalReportBackend/internal/recommend"
)

// DatasetReloader reloads the dataset from its source. Implemented by the
// store layer.
type DatasetReloader interface {
	Reload() error
}

// SnapshotRebuilder rebuilds the derived snapshot. Implemented by the
// scoring engine.
type SnapshotRebuilder interface {
	Rebuild(ctx context.Context) (recommend.SnapshotStats, error)
}

// RefreshService periodically reloads the dataset from disk and rebuilds
// the engine snapshot. A failed reload keeps the previous dataset and the
// previous snapshot; the loop continues on schedule.
type RefreshService struct {
	reloader DatasetReloader
	engine   SnapshotRebuilder
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewRefreshService creates the periodic refresh service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRefreshService(reloader DatasetReloader, engine SnapshotRebuilder, interval time.Duration, logger zerolog.Logger) *RefreshService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &RefreshService{
		reloader: reloader,
		engine:   engine,
		interval: interval,
		logger:   logger.With().Str("service", "refresh").Logger(),
		name:     "refresh-service",
	}
}

// Serve implements the suture.Service interface.
func (s *RefreshService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.interval).
		Msg("refresh service starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("refresh service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

// refresh performs one reload-and-rebuild cycle.
func (s *RefreshService) refresh(ctx context.Context) {
	start := time.Now()

	err := s.reloader.Reload()
	metrics.RecordDatasetReload(err)
	if err != nil {
		s.logger.Warn().Err(err).Msg("dataset reload failed, keeping previous data")
		return
	}

	stats, err := s.engine.Rebuild(ctx)
	metrics.RecordSnapshotRebuild(time.Since(start), stats.Version,
		stats.Skipped.UnknownUser, stats.Skipped.UnknownReport, err)
	if err != nil {
		s.logger.Warn().Err(err).Msg("snapshot rebuild failed, keeping previous snapshot")
		return
	}

	s.logger.Info().
		Int64("version", stats.Version).
		Dur("duration", time.Since(start)).
		Msg("scheduled refresh complete")
}

// String returns the service name for supervisor logs.
func (s *RefreshService) String() string {
	return s.name
}
