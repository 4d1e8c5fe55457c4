// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

/*
Package metrics exposes Prometheus instrumentation for the service,
served at /metrics.

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

Snapshot:
  - snapshot_rebuilds_total{outcome}
  - snapshot_rebuild_duration_seconds
  - snapshot_version
  - snapshot_skipped_events{reason} (unknown_user, unknown_report)

Feed:
  - feed_build_duration_seconds
  - feed_requests_total{outcome}

Dataset:
  - dataset_reloads_total{outcome}

Endpoint labels use chi route patterns rather than raw paths so
cardinality stays bounded regardless of user IDs in query strings.
All metrics register through promauto at package init; recording helpers
are safe for concurrent use.
*/
package metrics
