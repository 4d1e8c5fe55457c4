// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/feed", "200"))
	RecordAPIRequest("GET", "/api/v1/feed", "200", 25*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/feed", "200"))

	if after != before+1 {
		t.Errorf("counter went %v -> %v, want +1", before, after)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != base+1 {
		t.Errorf("gauge = %v, want %v", got, base+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("gauge = %v, want %v", got, base)
	}
}

func TestRecordSnapshotRebuild(t *testing.T) {
	RecordSnapshotRebuild(50*time.Millisecond, 7, 2, 3, nil)

	if got := testutil.ToFloat64(SnapshotVersion); got != 7 {
		t.Errorf("snapshot version = %v, want 7", got)
	}
	if got := testutil.ToFloat64(SnapshotSkippedEvents.WithLabelValues("unknown_user")); got != 2 {
		t.Errorf("unknown_user skipped = %v, want 2", got)
	}
	if got := testutil.ToFloat64(SnapshotSkippedEvents.WithLabelValues("unknown_report")); got != 3 {
		t.Errorf("unknown_report skipped = %v, want 3", got)
	}
}

func TestRecordSnapshotRebuildError(t *testing.T) {
	before := testutil.ToFloat64(SnapshotRebuildsTotal.WithLabelValues("error"))
	RecordSnapshotRebuild(0, 0, 0, 0, errors.New("load failed"))
	after := testutil.ToFloat64(SnapshotRebuildsTotal.WithLabelValues("error"))

	if after != before+1 {
		t.Errorf("error counter went %v -> %v, want +1", before, after)
	}
}

func TestRecordFeedBuild(t *testing.T) {
	before := testutil.ToFloat64(FeedRequestsTotal.WithLabelValues("not_found"))
	RecordFeedBuild(0, "not_found")
	after := testutil.ToFloat64(FeedRequestsTotal.WithLabelValues("not_found"))

	if after != before+1 {
		t.Errorf("counter went %v -> %v, want +1", before, after)
	}
}
