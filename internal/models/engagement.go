// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

package models

import "time"

// Campaign actions. Any action other than "clicked" is treated as an open.
const (
	CampaignActionClicked = "clicked"
	CampaignActionOpened  = "opened"
)

// Engagements is the full engagement log, grouped by event kind.
// Events are append-only facts; slices preserve stored order, which
// determines which view/campaign record "wins" as most recent per report.
type Engagements struct {
	Purchases []PurchaseEvent `json:"purchases"`
	Views     []ViewEvent     `json:"views"`
	Campaigns []CampaignEvent `json:"campaigns"`
	Bookmarks []BookmarkEvent `json:"bookmarks"`
}

// Len returns the total number of events across all kinds.
func (e Engagements) Len() int {
	return len(e.Purchases) + len(e.Views) + len(e.Campaigns) + len(e.Bookmarks)
}

// PurchaseEvent records that a user bought a report.
type PurchaseEvent struct {
	UserID      string    `json:"user_id"`
	ReportID    string    `json:"report_id"`
	PurchasedAt time.Time `json:"purchased_at"`
}

// ViewEvent records that a user opened a report, with optional dwell time.
type ViewEvent struct {
	UserID   string    `json:"user_id"`
	ReportID string    `json:"report_id"`
	ViewedAt time.Time `json:"viewed_at"`

	// DwellSeconds is how long the user stayed on the report, in seconds.
	// Zero when not tracked.
	DwellSeconds int `json:"dwell_time_seconds,omitempty"`
}

// CampaignEvent records a marketing-campaign touch for a report.
type CampaignEvent struct {
	UserID     string    `json:"user_id"`
	ReportID   string    `json:"report_id"`
	OccurredAt time.Time `json:"occurred_at"`

	// Action is "clicked" or "opened". Empty is treated as an open.
	Action string `json:"action,omitempty"`
}

// BookmarkEvent records that a user bookmarked a report.
type BookmarkEvent struct {
	UserID       string    `json:"user_id"`
	ReportID     string    `json:"report_id"`
	BookmarkedAt time.Time `json:"bookmarked_at"`
}
