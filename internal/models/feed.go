// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

package models

import "time"

// FeedItem is a single ranked entry in a user's personalized feed.
// It echoes the report fields plus the score, its signal breakdown,
// and a human-readable justification.
type FeedItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	PublishedAt time.Time `json:"published_at"`

	// Score is the final relevance score, rounded to 3 decimals.
	Score float64 `json:"score"`

	// Reason is the human-readable justification ("Because ...").
	Reason string `json:"reason"`

	// Signals maps signal names to their contribution values (3-decimal
	// rounded). The mapping is diagnostic: it is non-exhaustive and does
	// not sum to Score.
	Signals map[string]float64 `json:"signals"`

	// WhyItMatters is an optional topical framing note.
	WhyItMatters string `json:"why_it_matters,omitempty"`
}

// FeedResponse is the paginated feed payload returned by the API boundary.
// Pagination is applied over the fully ranked list; the core never paginates.
type FeedResponse struct {
	UserID   string     `json:"user_id"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
	Total    int        `json:"total"`
	Items    []FeedItem `json:"items"`
}
