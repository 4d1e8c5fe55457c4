// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

package recommend

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/OussamaMasri/TacticalReportBackend/internal/models"
)

// Profile holds a user's derived interest weights plus the per-report
// engagement records needed for direct scoring signals. Profiles are built
// once per aggregation pass and read-only afterwards.
type Profile struct {
	// UserID is the owning user.
	UserID string

	// CategoryInterest maps category label to accumulated weight.
	// Weights are non-negative sums of decayed contributions and only
	// grow during a pass.
	CategoryInterest map[string]float64

	// TagInterest maps tag label to accumulated weight.
	TagInterest map[string]float64

	// Purchased is the set of purchased report IDs, excluded from feeds.
	Purchased map[string]struct{}

	// Views maps report ID to the most recent view event. When the log
	// holds multiple views for a report, the later entry in stored order
	// wins.
	Views map[string]models.ViewEvent

	// Campaigns maps report ID to the most recent campaign touch, same
	// overwrite rule as Views.
	Campaigns map[string]models.CampaignEvent

	// Bookmarks is the set of bookmarked report IDs.
	Bookmarks map[string]struct{}
}

// profileBuilder accumulates contributions for a single user and is merged
// into an immutable Profile only after the full pass, so a rebuild never
// exposes partially-written interest maps.
type profileBuilder struct {
	profile *Profile
}

func newProfileBuilder(userID string) *profileBuilder {
	return &profileBuilder{profile: &Profile{
		UserID:           userID,
		CategoryInterest: make(map[string]float64),
		TagInterest:      make(map[string]float64),
		Purchased:        make(map[string]struct{}),
		Views:            make(map[string]models.ViewEvent),
		Campaigns:        make(map[string]models.CampaignEvent),
		Bookmarks:        make(map[string]struct{}),
	}}
}

// addInterest adds a decayed contribution to category and tag interest.
func (b *profileBuilder) addInterest(report models.Report, categoryWeight, tagWeight float64) {
	b.profile.CategoryInterest[report.Category] += categoryWeight
	for _, tag := range report.Tags {
		b.profile.TagInterest[tag] += tagWeight
	}
}

// finalize returns the built profile. The builder must not be used after.
func (b *profileBuilder) finalize() *Profile {
	return b.profile
}

// AggregationStats counts events tolerated-but-skipped during a pass.
// Dangling references are skipped per-event rather than failing the pass;
// the counts surface that tolerance instead of letting it vanish silently.
type AggregationStats struct {
	// UnknownUser counts events referencing a user absent from the
	// user directory.
	UnknownUser int `json:"unknown_user"`

	// UnknownReport counts events referencing a report absent from the
	// catalog. The event's per-report record (purchased/viewed/...) is
	// still kept; only the interest contribution is dropped.
	UnknownReport int `json:"unknown_report"`
}

// Total returns the total number of skipped events.
func (s AggregationStats) Total() int {
	return s.UnknownUser + s.UnknownReport
}

// buildProfiles derives one Profile per known user from the engagement log
// and each user's stated focus.
//
// Events are processed kind by kind in stored order: purchases, views,
// campaigns, bookmarks, then the flat focus seeding. Interest sums are
// order-independent (contributions only add), but stored order decides
// which view/campaign record is retained as most recent per report.
func buildProfiles(
	now time.Time,
	cfg *Config,
	users map[string]models.User,
	reports map[string]models.Report,
	eng models.Engagements,
	logger zerolog.Logger,
) (map[string]*Profile, AggregationStats) {
	builders := make(map[string]*profileBuilder, len(users))
	for id := range users {
		builders[id] = newProfileBuilder(id)
	}

	var stats AggregationStats

	// lookup resolves the builder and referenced report for an event,
	// counting unknown users and reports.
	lookup := func(kind, userID, reportID string) (*profileBuilder, models.Report, bool, bool) {
		b, ok := builders[userID]
		if !ok {
			stats.UnknownUser++
			logger.Debug().
				Str("kind", kind).
				Str("user_id", userID).
				Str("report_id", reportID).
				Msg("skipping event for unknown user")
			return nil, models.Report{}, false, false
		}
		report, ok := reports[reportID]
		if !ok {
			stats.UnknownReport++
			logger.Debug().
				Str("kind", kind).
				Str("user_id", userID).
				Str("report_id", reportID).
				Msg("event references unknown report")
			return b, models.Report{}, true, false
		}
		return b, report, true, true
	}

	for _, ev := range eng.Purchases {
		b, report, userOK, reportOK := lookup("purchase", ev.UserID, ev.ReportID)
		if !userOK {
			continue
		}
		b.profile.Purchased[ev.ReportID] = struct{}{}
		if !reportOK {
			continue
		}
		d := Decay(now, ev.PurchasedAt, cfg.HalfLives.Purchase)
		b.addInterest(report, cfg.Weights.PurchaseCategory*d, cfg.Weights.PurchaseTag*d)
	}

	for _, ev := range eng.Views {
		b, report, userOK, reportOK := lookup("view", ev.UserID, ev.ReportID)
		if !userOK {
			continue
		}
		b.profile.Views[ev.ReportID] = ev
		if !reportOK {
			continue
		}
		d := Decay(now, ev.ViewedAt, cfg.HalfLives.View)
		b.addInterest(report, cfg.Weights.ViewCategory*d, cfg.Weights.ViewTag*d)
		// Dwell bonus goes to category interest only.
		b.profile.CategoryInterest[report.Category] += cfg.dwellFactor(ev.DwellSeconds) * d
	}

	for _, ev := range eng.Campaigns {
		b, report, userOK, reportOK := lookup("campaign", ev.UserID, ev.ReportID)
		if !userOK {
			continue
		}
		b.profile.Campaigns[ev.ReportID] = ev
		if !reportOK {
			continue
		}
		w := cfg.campaignWeight(ev.Action)
		d := Decay(now, ev.OccurredAt, cfg.HalfLives.Campaign)
		b.addInterest(report, w*d, w*cfg.CampaignTagFactor*d)
	}

	for _, ev := range eng.Bookmarks {
		b, report, userOK, reportOK := lookup("bookmark", ev.UserID, ev.ReportID)
		if !userOK {
			continue
		}
		b.profile.Bookmarks[ev.ReportID] = struct{}{}
		if !reportOK {
			continue
		}
		d := Decay(now, ev.BookmarkedAt, cfg.HalfLives.Bookmark)
		b.addInterest(report, cfg.Weights.Bookmark*d, cfg.Weights.TagMatch*d)
	}

	// Seed stated focus last, flat and undecayed, so users with no history
	// never start from a zero-signal profile.
	profiles := make(map[string]*Profile, len(builders))
	for id, b := range builders {
		user := users[id]
		for _, cat := range user.FocusCategories {
			b.profile.CategoryInterest[cat] += cfg.Weights.FocusCategory
		}
		for _, tag := range user.FocusTags {
			b.profile.TagInterest[tag] += cfg.Weights.FocusTag
		}
		profiles[id] = b.finalize()
	}

	return profiles, stats
}

// buildPopularity tallies cross-user engagement counts per report from
// purchase, view, and campaign events. Bookmark events do not count.
// Used only as an ordering backstop, never as a primary ranking factor.
func buildPopularity(eng models.Engagements) map[string]int {
	popularity := make(map[string]int)
	for _, ev := range eng.Purchases {
		popularity[ev.ReportID]++
	}
	for _, ev := range eng.Views {
		popularity[ev.ReportID]++
	}
	for _, ev := range eng.Campaigns {
		popularity[ev.ReportID]++
	}
	return popularity
}
