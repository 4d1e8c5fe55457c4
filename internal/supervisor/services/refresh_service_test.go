// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/OussamaMasri/TacticalReportBackend/internal/recommend"
)

type fakeReloader struct {
	calls atomic.Int32
	err   error
}

func (f *fakeReloader) Reload() error {
	f.calls.Add(1)
	return f.err
}

type fakeRebuilder struct {
	calls atomic.Int32
	err   error
}

func (f *fakeRebuilder) Rebuild(ctx context.Context) (recommend.SnapshotStats, error) {
	f.calls.Add(1)
	return recommend.SnapshotStats{Version: int64(f.calls.Load())}, f.err
}

func TestRefreshServicePeriodicCycle(t *testing.T) {
	reloader := &fakeReloader{}
	rebuilder := &fakeRebuilder{}
	svc := NewRefreshService(reloader, rebuilder, 20*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Serve returned %v, want deadline exceeded", err)
	}

	if reloader.calls.Load() < 2 {
		t.Errorf("reload called %d times, want at least 2", reloader.calls.Load())
	}
	if rebuilder.calls.Load() != reloader.calls.Load() {
		t.Errorf("rebuild calls (%d) != reload calls (%d)",
			rebuilder.calls.Load(), reloader.calls.Load())
	}
}

func TestRefreshServiceSkipsRebuildOnReloadFailure(t *testing.T) {
	reloader := &fakeReloader{err: errors.New("disk gone")}
	rebuilder := &fakeRebuilder{}
	svc := NewRefreshService(reloader, rebuilder, 20*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
	defer cancel()
	_ = svc.Serve(ctx)

	if reloader.calls.Load() == 0 {
		t.Fatal("reload never attempted")
	}
	if rebuilder.calls.Load() != 0 {
		t.Errorf("rebuild called %d times after failed reloads, want 0", rebuilder.calls.Load())
	}
}

func TestRefreshServiceContinuesAfterRebuildFailure(t *testing.T) {
	reloader := &fakeReloader{}
	rebuilder := &fakeRebuilder{err: errors.New("bad dataset")}
	svc := NewRefreshService(reloader, rebuilder, 20*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()
	_ = svc.Serve(ctx)

	// The loop keeps attempting despite rebuild failures.
	if rebuilder.calls.Load() < 2 {
		t.Errorf("rebuild attempted %d times, want at least 2", rebuilder.calls.Load())
	}
}

func TestRefreshServiceDefaultInterval(t *testing.T) {
	svc := NewRefreshService(&fakeReloader{}, &fakeRebuilder{}, 0, zerolog.Nop())
	if svc.interval != 5*time.Minute {
		t.Errorf("interval = %v, want 5m default", svc.interval)
	}
	if svc.String() != "refresh-service" {
		t.Errorf("String() = %q", svc.String())
	}
}
