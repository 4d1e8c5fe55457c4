// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

package recommend

import (
	"fmt"
	"strings"

	"github.com/OussamaMasri/TacticalReportBackend/internal/models"
)

// reason synthesizes the human-readable justification for recommending a
// report to a user. Clauses are collected in fixed priority order, joined
// with " and ", and prefixed with "Because ". When no personal signal
// applies the popularity backstop explains the item; failing that, a
// generic relevance clause.
func reason(report models.Report, p *Profile, popularity int) string {
	var parts []string

	if p.CategoryInterest[report.Category] > 0 {
		parts = append(parts, fmt.Sprintf("you engage with %s content", strings.ToLower(report.Category)))
	}

	var tagHits []string
	for _, tag := range report.Tags {
		if p.TagInterest[tag] > 0 {
			tagHits = append(tagHits, tag)
		}
	}
	if len(tagHits) > 0 {
		if len(tagHits) > 3 {
			tagHits = tagHits[:3]
		}
		parts = append(parts, fmt.Sprintf("tags you follow (%s)", strings.Join(tagHits, ", ")))
	}

	if _, ok := p.Views[report.ID]; ok {
		parts = append(parts, "you viewed this recently")
	}

	if _, ok := p.Bookmarks[report.ID]; ok {
		parts = append(parts, "you bookmarked similar items")
	}

	if campaign, ok := p.Campaigns[report.ID]; ok {
		action := campaign.Action
		if action == "" {
			action = models.CampaignActionOpened
		}
		parts = append(parts, fmt.Sprintf("you %s a campaign on this topic", action))
	}

	if len(parts) == 0 && popularity > 0 {
		parts = append(parts, "popular in your region and recency boosted")
	}

	if len(parts) == 0 {
		parts = append(parts, "recent and relevant to your stated focus")
	}

	return "Because " + strings.Join(parts, " and ")
}

// framing pairs a set of trigger tags with the topical framing they imply.
// First match wins.
type framing struct {
	tags []string
	note string
}

var framings = []framing{
	{tags: []string{"UAV", "air-defense"}, note: "air and counter-UAS posture"},
	{tags: []string{"hydrogen", "LNG"}, note: "energy export positioning"},
	{tags: []string{"policy", "governance"}, note: "regulatory stability"},
	{tags: []string{"grid", "storage"}, note: "infrastructure resilience"},
	{tags: []string{"elections"}, note: "political timing and risk"},
}

// whyItMatters derives the topical "why it matters" note for a report from
// its tags, falling back to a generic strategic-shift note.
func whyItMatters(report models.Report) string {
	tagSet := make(map[string]struct{}, len(report.Tags))
	for _, tag := range report.Tags {
		tagSet[tag] = struct{}{}
	}

	for _, f := range framings {
		for _, tag := range f.tags {
			if _, ok := tagSet[tag]; ok {
				return fmt.Sprintf("This shapes %s for regional stakeholders.", f.note)
			}
		}
	}

	return "Brief insight on strategic shifts affecting the region."
}
