// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

// Package models defines the shared data model: the report catalog, the
// user directory, engagement events, and the feed output types.
//
// Reports, users, and events are loaded once per process (or per refresh
// cycle) and treated as immutable snapshots thereafter.
package models

import "time"

// Report is a single entry in the report catalog.
// Immutable once loaded.
type Report struct {
	// ID is the unique report identifier.
	ID string `json:"id"`

	// Title is the report title.
	Title string `json:"title"`

	// Category is the single classification label (e.g., "Defense").
	Category string `json:"category"`

	// Tags is the ordered list of topical tags. Duplicates carry no meaning.
	Tags []string `json:"tags"`

	// PublishedAt is the publication timestamp (RFC3339, UTC).
	PublishedAt time.Time `json:"published_at"`
}

// User is a known consumer of reports.
// Immutable once loaded.
type User struct {
	// ID is the unique user identifier.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Role is the user's organizational role.
	Role string `json:"role"`

	// FocusCategories are the user's stated categories of interest.
	// Used to seed interest profiles and avoid cold starts.
	FocusCategories []string `json:"focus_categories"`

	// FocusTags are the user's stated tags of interest.
	FocusTags []string `json:"focus_tags"`
}
