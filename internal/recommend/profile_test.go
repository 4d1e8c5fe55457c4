// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

package recommend

import (
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/OussamaMasri/TacticalReportBackend/internal/models"
)

func testCatalog() (map[string]models.Report, map[string]models.User) {
	reports := map[string]models.Report{
		"rep-1": {ID: "rep-1", Title: "Drone Corridor Update", Category: "Defense", Tags: []string{"UAV", "air-defense"}, PublishedAt: daysAgo(5)},
		"rep-2": {ID: "rep-2", Title: "LNG Terminal Outlook", Category: "Energy", Tags: []string{"LNG", "hydrogen"}, PublishedAt: daysAgo(20)},
	}
	users := map[string]models.User{
		"u-1": {ID: "u-1", Name: "Analyst One", Role: "analyst"},
		"u-2": {ID: "u-2", Name: "Analyst Two", Role: "analyst", FocusCategories: []string{"Energy"}, FocusTags: []string{"LNG"}},
	}
	return reports, users
}

func buildTestProfiles(t *testing.T, eng models.Engagements) (map[string]*Profile, AggregationStats) {
	t.Helper()
	reports, users := testCatalog()
	return buildProfiles(testNow, DefaultConfig(), users, reports, eng, zerolog.Nop())
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBuildProfilesPurchase(t *testing.T) {
	profiles, stats := buildTestProfiles(t, models.Engagements{
		Purchases: []models.PurchaseEvent{
			{UserID: "u-1", ReportID: "rep-1", PurchasedAt: daysAgo(10)},
		},
	})

	p := profiles["u-1"]
	if _, ok := p.Purchased["rep-1"]; !ok {
		t.Error("rep-1 not marked purchased")
	}

	d := math.Exp(-10.0 / 90.0)
	if got := p.CategoryInterest["Defense"]; !approxEqual(got, 10.0*d) {
		t.Errorf("Defense interest = %v, want %v", got, 10.0*d)
	}
	for _, tag := range []string{"UAV", "air-defense"} {
		if got := p.TagInterest[tag]; !approxEqual(got, 6.0*d) {
			t.Errorf("%s interest = %v, want %v", tag, got, 6.0*d)
		}
	}
	if stats.Total() != 0 {
		t.Errorf("skipped = %d, want 0", stats.Total())
	}
}

func TestBuildProfilesViewDwellBonus(t *testing.T) {
	tests := []struct {
		name  string
		dwell int
		bonus float64
	}{
		{"short view gets flat factor", 30, 1.0},
		{"long view gets bonus", 200, 2.0},
		{"threshold is inclusive", 150, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles, _ := buildTestProfiles(t, models.Engagements{
				Views: []models.ViewEvent{
					{UserID: "u-1", ReportID: "rep-1", ViewedAt: daysAgo(3), DwellSeconds: tt.dwell},
				},
			})

			p := profiles["u-1"]
			d := math.Exp(-3.0 / 60.0)
			want := 4.0*d + tt.bonus*d
			if got := p.CategoryInterest["Defense"]; !approxEqual(got, want) {
				t.Errorf("Defense interest = %v, want %v", got, want)
			}
			if got := p.TagInterest["UAV"]; !approxEqual(got, 2.5*d) {
				t.Errorf("UAV interest = %v, want %v", got, 2.5*d)
			}
			if _, ok := p.Views["rep-1"]; !ok {
				t.Error("view not recorded")
			}
		})
	}
}

func TestBuildProfilesCampaignAction(t *testing.T) {
	tests := []struct {
		name   string
		action string
		weight float64
	}{
		{"clicked uses click weight", "clicked", 2.0},
		{"opened uses open weight", "opened", 1.0},
		{"unknown action treated as open", "delivered", 1.0},
		{"empty action treated as open", "", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles, _ := buildTestProfiles(t, models.Engagements{
				Campaigns: []models.CampaignEvent{
					{UserID: "u-1", ReportID: "rep-2", OccurredAt: daysAgo(9), Action: tt.action},
				},
			})

			p := profiles["u-1"]
			d := math.Exp(-9.0 / 45.0)
			if got := p.CategoryInterest["Energy"]; !approxEqual(got, tt.weight*d) {
				t.Errorf("Energy interest = %v, want %v", got, tt.weight*d)
			}
			// Tags receive half the campaign weight.
			if got := p.TagInterest["LNG"]; !approxEqual(got, tt.weight*0.5*d) {
				t.Errorf("LNG interest = %v, want %v", got, tt.weight*0.5*d)
			}
		})
	}
}

func TestBuildProfilesBookmark(t *testing.T) {
	profiles, _ := buildTestProfiles(t, models.Engagements{
		Bookmarks: []models.BookmarkEvent{
			{UserID: "u-1", ReportID: "rep-1", BookmarkedAt: daysAgo(18)},
		},
	})

	p := profiles["u-1"]
	if _, ok := p.Bookmarks["rep-1"]; !ok {
		t.Error("rep-1 not bookmarked")
	}

	d := math.Exp(-18.0 / 90.0)
	if got := p.CategoryInterest["Defense"]; !approxEqual(got, 2.5*d) {
		t.Errorf("Defense interest = %v, want %v", got, 2.5*d)
	}
	if got := p.TagInterest["UAV"]; !approxEqual(got, 1.8*d) {
		t.Errorf("UAV interest = %v, want %v", got, 1.8*d)
	}
}

func TestBuildProfilesFocusSeeding(t *testing.T) {
	// No events at all: stated focus still seeds the profile flat,
	// avoiding a zero-signal cold start.
	profiles, _ := buildTestProfiles(t, models.Engagements{})

	p := profiles["u-2"]
	if got := p.CategoryInterest["Energy"]; !approxEqual(got, 3.0) {
		t.Errorf("Energy interest = %v, want 3.0", got)
	}
	if got := p.TagInterest["LNG"]; !approxEqual(got, 2.0) {
		t.Errorf("LNG interest = %v, want 2.0", got)
	}

	// Focus stacks on top of event-derived interest.
	profiles, _ = buildTestProfiles(t, models.Engagements{
		Purchases: []models.PurchaseEvent{
			{UserID: "u-2", ReportID: "rep-2", PurchasedAt: testNow},
		},
	})
	p = profiles["u-2"]
	if got := p.CategoryInterest["Energy"]; !approxEqual(got, 10.0+3.0) {
		t.Errorf("Energy interest = %v, want 13.0", got)
	}
}

func TestBuildProfilesLatestViewWins(t *testing.T) {
	// Two views of the same report: the later entry in stored order is
	// retained, regardless of timestamps.
	profiles, _ := buildTestProfiles(t, models.Engagements{
		Views: []models.ViewEvent{
			{UserID: "u-1", ReportID: "rep-1", ViewedAt: daysAgo(1), DwellSeconds: 300},
			{UserID: "u-1", ReportID: "rep-1", ViewedAt: daysAgo(7), DwellSeconds: 10},
		},
	})

	view := profiles["u-1"].Views["rep-1"]
	if view.DwellSeconds != 10 {
		t.Errorf("retained view dwell = %d, want 10 (last in stored order)", view.DwellSeconds)
	}
}

func TestBuildProfilesDanglingReferences(t *testing.T) {
	profiles, stats := buildTestProfiles(t, models.Engagements{
		Purchases: []models.PurchaseEvent{
			{UserID: "ghost", ReportID: "rep-1", PurchasedAt: daysAgo(1)},
			{UserID: "u-1", ReportID: "rep-gone", PurchasedAt: daysAgo(1)},
		},
		Views: []models.ViewEvent{
			{UserID: "u-1", ReportID: "rep-gone", ViewedAt: daysAgo(1)},
		},
	})

	if stats.UnknownUser != 1 {
		t.Errorf("UnknownUser = %d, want 1", stats.UnknownUser)
	}
	if stats.UnknownReport != 2 {
		t.Errorf("UnknownReport = %d, want 2", stats.UnknownReport)
	}

	// Unknown report: the purchase/view record is still kept, only the
	// interest contribution is dropped.
	p := profiles["u-1"]
	if _, ok := p.Purchased["rep-gone"]; !ok {
		t.Error("purchase of unknown report not recorded")
	}
	if _, ok := p.Views["rep-gone"]; !ok {
		t.Error("view of unknown report not recorded")
	}
	if len(p.CategoryInterest) != 0 {
		t.Errorf("interest leaked from dangling events: %v", p.CategoryInterest)
	}

	// Unknown user: nothing recorded anywhere.
	if _, ok := profiles["ghost"]; ok {
		t.Error("profile created for unknown user")
	}
}

func TestBuildProfilesInterestNonNegative(t *testing.T) {
	profiles, _ := buildTestProfiles(t, models.Engagements{
		Purchases: []models.PurchaseEvent{{UserID: "u-1", ReportID: "rep-1", PurchasedAt: daysAgo(400)}},
		Views:     []models.ViewEvent{{UserID: "u-1", ReportID: "rep-2", ViewedAt: daysAgo(400)}},
		Bookmarks: []models.BookmarkEvent{{UserID: "u-1", ReportID: "rep-1", BookmarkedAt: daysAgo(400)}},
	})

	for _, p := range profiles {
		for cat, w := range p.CategoryInterest {
			if w < 0 {
				t.Errorf("negative category interest %s = %v", cat, w)
			}
		}
		for tag, w := range p.TagInterest {
			if w < 0 {
				t.Errorf("negative tag interest %s = %v", tag, w)
			}
		}
	}
}

func TestBuildPopularity(t *testing.T) {
	populars := buildPopularity(models.Engagements{
		Purchases: []models.PurchaseEvent{
			{UserID: "u-1", ReportID: "rep-1", PurchasedAt: daysAgo(1)},
		},
		Views: []models.ViewEvent{
			{UserID: "u-1", ReportID: "rep-1", ViewedAt: daysAgo(1)},
			{UserID: "u-2", ReportID: "rep-1", ViewedAt: daysAgo(2)},
		},
		Campaigns: []models.CampaignEvent{
			{UserID: "u-2", ReportID: "rep-2", OccurredAt: daysAgo(1)},
		},
		Bookmarks: []models.BookmarkEvent{
			// Bookmarks do not count toward popularity.
			{UserID: "u-1", ReportID: "rep-2", BookmarkedAt: daysAgo(1)},
		},
	})

	if populars["rep-1"] != 3 {
		t.Errorf("rep-1 popularity = %d, want 3", populars["rep-1"])
	}
	if populars["rep-2"] != 1 {
		t.Errorf("rep-2 popularity = %d, want 1", populars["rep-2"])
	}
}
