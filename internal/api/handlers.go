// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

// Package api provides the HTTP boundary: request parsing, validation,
// pagination, and the standardized response envelope around the scoring
// engine.
package api

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/OussamaMasri/TacticalReportBackend/internal/config"
	"github.com/OussamaMasri/TacticalReportBackend/internal/logging"
	"github.com/OussamaMasri/TacticalReportBackend/internal/metrics"
	"github.com/OussamaMasri/TacticalReportBackend/internal/models"
	"github.com/OussamaMasri/TacticalReportBackend/internal/recommend"
	"github.com/OussamaMasri/TacticalReportBackend/internal/store"
)

// Handler holds the dependencies for all HTTP endpoints.
type Handler struct {
	engine *recommend.Engine
	store  *store.Store
	config *config.Config
	start  time.Time
}

// NewHandler creates the endpoint handler.
func NewHandler(engine *recommend.Engine, st *store.Store, cfg *config.Config) *Handler {
	return &Handler{
		engine: engine,
		store:  st,
		config: cfg,
		start:  time.Now(),
	}
}

// Reports returns the full report catalog in catalog order.
func (h *Handler) Reports(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	reports, err := h.engine.Reports()
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY",
			"snapshot not built yet", err)
		return
	}

	respondSuccess(w, map[string]interface{}{
		"total":   len(reports),
		"reports": reports,
	}, start)
}

// Users returns the user directory sorted by user ID.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userMap, err := h.engine.Users()
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY",
			"snapshot not built yet", err)
		return
	}

	users := make([]models.User, 0, len(userMap))
	for _, u := range userMap {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	respondSuccess(w, map[string]interface{}{
		"total": len(users),
		"users": users,
	}, start)
}

// Feed returns one page of the ranked feed for a user.
//
// Query parameters:
//   - user_id (required)
//   - page (default 1)
//   - page_size (default and max from config)
//   - category (optional, case-insensitive filter)
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, err := h.parseFeedRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	if !validateRequest(w, req) {
		return
	}
	if err := req.checkBounds(h.config.API.MaxPageSize); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	items, err := h.engine.BuildFeed(r.Context(), req.UserID, req.Category)
	switch {
	case errors.Is(err, recommend.ErrUserNotFound):
		metrics.RecordFeedBuild(time.Since(start), "not_found")
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
		return
	case errors.Is(err, recommend.ErrNoSnapshot):
		metrics.RecordFeedBuild(time.Since(start), "error")
		respondError(w, http.StatusServiceUnavailable, "NOT_READY",
			"snapshot not built yet", err)
		return
	case err != nil:
		metrics.RecordFeedBuild(time.Since(start), "error")
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"failed to build feed", err)
		return
	}
	metrics.RecordFeedBuild(time.Since(start), "success")

	total := len(items)
	from := (req.Page - 1) * req.PageSize
	if from > total {
		from = total
	}
	to := from + req.PageSize
	if to > total {
		to = total
	}

	logging.Ctx(r.Context()).Debug().
		Str("user_id", req.UserID).
		Int("total", total).
		Int("page", req.Page).
		Msg("feed served")

	respondSuccess(w, models.FeedResponse{
		UserID:   req.UserID,
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    total,
		Items:    items[from:to],
	}, start)
}

// FeedRefresh reloads the dataset from disk and rebuilds the snapshot.
func (h *Handler) FeedRefresh(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	err := h.store.Reload()
	metrics.RecordDatasetReload(err)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "RELOAD_FAILED",
			"failed to reload dataset", err)
		return
	}

	stats, err := h.engine.Rebuild(r.Context())
	metrics.RecordSnapshotRebuild(time.Since(start), stats.Version,
		stats.Skipped.UnknownUser, stats.Skipped.UnknownReport, err)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "REBUILD_FAILED",
			"failed to rebuild snapshot", err)
		return
	}

	respondSuccess(w, stats, start)
}

// FeedStatus reports the active snapshot's build statistics.
func (h *Handler) FeedStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	snap := h.engine.CurrentSnapshot()
	if snap == nil {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY",
			"snapshot not built yet", nil)
		return
	}

	respondSuccess(w, snap.Stats(), start)
}

// HealthLive reports process liveness. Always 200 once the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, map[string]interface{}{
		"status": "alive",
		"uptime": time.Since(h.start).String(),
	}, time.Now())
}

// HealthReady reports readiness: the service is ready once the first
// snapshot is built.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.engine.CurrentSnapshot() == nil {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY",
			"snapshot not built yet", nil)
		return
	}
	respondSuccess(w, map[string]interface{}{"status": "ready"}, time.Now())
}
