// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/OussamaMasri/TacticalReportBackend/internal/models"
)

// Note: this package depends only on internal/models. The DataProvider
// interface lets the store layer feed the engine without a circular import.

// Sentinel errors surfaced to the boundary layer.
var (
	// ErrUserNotFound is returned by BuildFeed for an unknown user ID.
	// The boundary maps it to a not-found response.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoSnapshot is returned when the engine has not built a snapshot
	// yet. Rebuild must succeed at least once before serving feeds.
	ErrNoSnapshot = errors.New("no snapshot built")
)

// DataProvider supplies the immutable inputs for a snapshot rebuild.
// Typically implemented by the store layer.
type DataProvider interface {
	// Reports returns the report catalog in stored (catalog) order.
	Reports() []models.Report

	// Users returns the user directory keyed by user ID.
	Users() map[string]models.User

	// Engagements returns the full engagement log in stored order.
	Engagements() models.Engagements
}

// Snapshot is an immutable view of the derived state: interest profiles
// and the popularity index, plus the catalog they were derived from.
// Concurrent feed requests share one snapshot without locking; Rebuild
// constructs a new snapshot and swaps it in atomically.
type Snapshot struct {
	reports   []models.Report
	reportIDs map[string]models.Report
	users     map[string]models.User
	profiles  map[string]*Profile
	populars  map[string]int
	stats     SnapshotStats
}

// Profile returns the interest profile for a user, or nil if unknown.
func (s *Snapshot) Profile(userID string) *Profile {
	return s.profiles[userID]
}

// Popularity returns the cross-user engagement count for a report.
func (s *Snapshot) Popularity(reportID string) int {
	return s.populars[reportID]
}

// Stats returns the snapshot build statistics.
func (s *Snapshot) Stats() SnapshotStats {
	return s.stats
}

// SnapshotStats describes one snapshot build.
type SnapshotStats struct {
	// Version increments on every successful rebuild.
	Version int64 `json:"version"`

	// BuiltAt is when the snapshot was constructed.
	BuiltAt time.Time `json:"built_at"`

	// Users, Reports, and Events are the input sizes.
	Users   int `json:"users"`
	Reports int `json:"reports"`
	Events  int `json:"events"`

	// Skipped counts engagement events dropped for dangling references.
	Skipped AggregationStats `json:"skipped_events"`

	// DurationMS is how long the build took.
	DurationMS int64 `json:"duration_ms"`
}

// Engine derives interest profiles from engagement history and ranks the
// report catalog per user. It is safe for concurrent use: feed requests
// read a shared immutable snapshot while Rebuild swaps in a new one.
type Engine struct {
	config   *Config
	logger   zerolog.Logger
	provider DataProvider

	snapshot atomic.Pointer[Snapshot]
	version  atomic.Int64

	// now is the clock, replaceable in tests for determinism.
	now func() time.Time
}

// NewEngine creates a scoring engine with the given configuration.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
		now:    time.Now,
	}, nil
}

// SetDataProvider sets the provider used by Rebuild.
func (e *Engine) SetDataProvider(dp DataProvider) {
	e.provider = dp
}

// Rebuild derives a fresh snapshot from the provider's current data and
// atomically swaps it in. A full recompute, never incremental: the
// engagement log is reprocessed from scratch on every call.
func (e *Engine) Rebuild(ctx context.Context) (SnapshotStats, error) {
	if e.provider == nil {
		return SnapshotStats{}, fmt.Errorf("data provider not set")
	}
	if err := ctx.Err(); err != nil {
		return SnapshotStats{}, err
	}

	start := e.now()

	reports := e.provider.Reports()
	users := e.provider.Users()
	eng := e.provider.Engagements()

	reportIDs := make(map[string]models.Report, len(reports))
	for _, r := range reports {
		reportIDs[r.ID] = r
	}

	profiles, skipped := buildProfiles(start, e.config, users, reportIDs, eng, e.logger)
	populars := buildPopularity(eng)

	stats := SnapshotStats{
		Version:    e.version.Add(1),
		BuiltAt:    start,
		Users:      len(users),
		Reports:    len(reports),
		Events:     eng.Len(),
		Skipped:    skipped,
		DurationMS: time.Since(start).Milliseconds(),
	}

	e.snapshot.Store(&Snapshot{
		reports:   reports,
		reportIDs: reportIDs,
		users:     users,
		profiles:  profiles,
		populars:  populars,
		stats:     stats,
	})

	e.logger.Info().
		Int64("version", stats.Version).
		Int("users", stats.Users).
		Int("reports", stats.Reports).
		Int("events", stats.Events).
		Int("skipped", skipped.Total()).
		Msg("snapshot rebuilt")

	return stats, nil
}

// CurrentSnapshot returns the active snapshot, or nil before the first
// successful Rebuild.
func (e *Engine) CurrentSnapshot() *Snapshot {
	return e.snapshot.Load()
}

// Reports returns the report catalog from the active snapshot.
func (e *Engine) Reports() ([]models.Report, error) {
	snap := e.snapshot.Load()
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	return snap.reports, nil
}

// Users returns the user directory from the active snapshot.
func (e *Engine) Users() (map[string]models.User, error) {
	snap := e.snapshot.Load()
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	return snap.users, nil
}

// BuildFeed ranks every eligible report for the user and returns the fully
// ordered feed. Candidates are the catalog minus already-purchased reports,
// optionally restricted to a category (case-insensitive). The feed is
// computed fresh on every call and never cached.
//
// Ties keep catalog order: the sort is stable and candidates are scored in
// catalog order, so equal scores rank by position in the loaded catalog.
func (e *Engine) BuildFeed(ctx context.Context, userID, category string) ([]models.FeedItem, error) {
	snap := e.snapshot.Load()
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profile := snap.profiles[userID]
	if profile == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}

	now := e.now()
	items := make([]models.FeedItem, 0, len(snap.reports))

	for _, report := range snap.reports {
		if _, purchased := profile.Purchased[report.ID]; purchased {
			continue
		}
		if category != "" && !strings.EqualFold(report.Category, category) {
			continue
		}

		total, signals := score(e.config, now, report, profile)

		// Popularity backstop: contributes to the score only, not
		// recorded as a signal.
		total += e.config.PopularityWeight * float64(snap.populars[report.ID])

		rounded := make(map[string]float64, len(signals))
		for name, v := range signals {
			rounded[name] = round3(v)
		}

		items = append(items, models.FeedItem{
			ID:           report.ID,
			Title:        report.Title,
			Category:     report.Category,
			Tags:         report.Tags,
			PublishedAt:  report.PublishedAt,
			Score:        round3(total),
			Reason:       reason(report, profile, snap.populars[report.ID]),
			Signals:      rounded,
			WhyItMatters: whyItMatters(report),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})

	return items, nil
}

// GetConfig returns a copy of the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}
