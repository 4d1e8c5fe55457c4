// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

/*
Package api provides the HTTP REST surface for the report feed service.

Every response uses a single JSON envelope (models.APIResponse) with a
status, optional data payload, request metadata, and a structured error
block on failure. Error codes are stable strings the frontend can switch
on: VALIDATION_ERROR, NOT_FOUND, NOT_READY, INTERNAL_ERROR,
RELOAD_FAILED, REBUILD_FAILED.

# Routes

Core endpoints (/api/v1/):

  - GET  /api/v1/health/live    liveness probe, always 200 once the process is up
  - GET  /api/v1/health/ready   readiness probe, 503 until the first snapshot exists
  - GET  /api/v1/reports        full report catalog
  - GET  /api/v1/users          user directory, sorted by ID
  - GET  /api/v1/feed           personalized feed (user_id required; page,
    page_size, category optional)
  - GET  /api/v1/feed/status    current snapshot stats (version, counts, build time)
  - POST /api/v1/feed/refresh   reload the dataset from disk and rebuild the snapshot

Prometheus metrics are served at /metrics outside the v1 group.

# Middleware stack

Request ID assignment, real client IP resolution, panic recovery, CORS,
per-IP rate limiting (httprate), and prometheus instrumentation, applied
in that order. Health probes bypass rate limiting and metrics so
orchestrator checks never count against the limit.

# Error mapping

Feed requests map engine sentinels onto HTTP status codes:
recommend.ErrUserNotFound becomes 404 NOT_FOUND,
recommend.ErrNoSnapshot becomes 503 NOT_READY, anything else 500
INTERNAL_ERROR. Validation failures are 400 with per-field detail.

All handlers are safe for concurrent use; shared state lives behind the
engine's atomic snapshot and the store's read lock.
*/
package api
