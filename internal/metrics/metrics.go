// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

// Package metrics provides Prometheus instrumentation for the feed
// service: API latency and throughput, snapshot rebuilds, dataset loads,
// and feed construction timing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Snapshot Metrics
	SnapshotRebuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_rebuilds_total",
			Help: "Total number of snapshot rebuilds",
		},
		[]string{"outcome"}, // "success", "error"
	)

	SnapshotRebuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "snapshot_rebuild_duration_seconds",
			Help:    "Snapshot rebuild duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	SnapshotVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_version",
			Help: "Version of the active snapshot",
		},
	)

	SnapshotSkippedEvents = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "snapshot_skipped_events",
			Help: "Engagement events skipped during the last rebuild",
		},
		[]string{"reason"}, // "unknown_user", "unknown_report"
	)

	// Feed Metrics
	FeedBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feed_build_duration_seconds",
			Help:    "Per-request feed ranking duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	FeedRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_requests_total",
			Help: "Total number of feed requests",
		},
		[]string{"outcome"}, // "success", "not_found", "error"
	)

	// Dataset Metrics
	DatasetReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_reloads_total",
			Help: "Total number of dataset reloads",
		},
		[]string{"outcome"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordSnapshotRebuild records a rebuild attempt and, on success, the
// new snapshot version and skipped-event counts.
func RecordSnapshotRebuild(duration time.Duration, version int64, unknownUser, unknownReport int, err error) {
	if err != nil {
		SnapshotRebuildsTotal.WithLabelValues("error").Inc()
		return
	}
	SnapshotRebuildsTotal.WithLabelValues("success").Inc()
	SnapshotRebuildDuration.Observe(duration.Seconds())
	SnapshotVersion.Set(float64(version))
	SnapshotSkippedEvents.WithLabelValues("unknown_user").Set(float64(unknownUser))
	SnapshotSkippedEvents.WithLabelValues("unknown_report").Set(float64(unknownReport))
}

// RecordFeedBuild records one feed construction.
func RecordFeedBuild(duration time.Duration, outcome string) {
	FeedRequestsTotal.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		FeedBuildDuration.Observe(duration.Seconds())
	}
}

// RecordDatasetReload records a dataset reload attempt.
func RecordDatasetReload(err error) {
	if err != nil {
		DatasetReloadsTotal.WithLabelValues("error").Inc()
		return
	}
	DatasetReloadsTotal.WithLabelValues("success").Inc()
}
