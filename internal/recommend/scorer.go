// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

package recommend

import (
	"time"

	"github.com/OussamaMasri/TacticalReportBackend/internal/models"
)

// Signal names recorded in the per-item breakdown.
const (
	SignalCategoryMatch = "category_match"
	SignalTagMatch      = "tag_match"
	SignalViewed        = "viewed"
	SignalCampaign      = "campaign"
	SignalBookmark      = "bookmark"
	SignalRecencyBoost  = "recency_boost"
)

// Signals is the named breakdown of contributions to a report's score.
// It is a diagnostic artifact for explainability, not a strict
// decomposition: recency_boost records only the additive term of the
// recency adjustment, not the multiplicative amplification of the base,
// and the popularity backstop is not recorded at all.
type Signals map[string]float64

// score computes the relevance of one report for one profile, returning
// the scalar score and the signal breakdown. Signal values are raw
// (unrounded) except recency_boost, which is recorded rounded.
//
// The viewed and campaign signals re-derive per-report instantaneous
// contributions from the same events already folded into the aggregate
// category and tag pools. That double influence is intentional: the direct
// signal expresses "you touched this exact report" on top of the topical
// interest it contributed to.
func score(cfg *Config, now time.Time, report models.Report, p *Profile) (float64, Signals) {
	signals := make(Signals)
	base := 0.0

	if catBonus := p.CategoryInterest[report.Category]; catBonus > 0 {
		signals[SignalCategoryMatch] = catBonus
		base += catBonus
	}

	var tagHits int
	var tagSum float64
	for _, tag := range report.Tags {
		if w := p.TagInterest[tag]; w > 0 {
			tagHits++
			tagSum += w
		}
	}
	if tagHits > 0 {
		tagScore := tagSum + cfg.Weights.TagMatch*float64(tagHits)
		signals[SignalTagMatch] = tagScore
		base += tagScore
	}

	if view, ok := p.Views[report.ID]; ok {
		d := Decay(now, view.ViewedAt, cfg.HalfLives.View)
		// The dwell factor is deliberately not decayed here, unlike the
		// aggregation pass.
		viewScore := cfg.Weights.ViewCategory*d + cfg.dwellFactor(view.DwellSeconds)
		signals[SignalViewed] = viewScore
		base += viewScore
	}

	if campaign, ok := p.Campaigns[report.ID]; ok {
		d := Decay(now, campaign.OccurredAt, cfg.HalfLives.Campaign)
		campScore := cfg.campaignWeight(campaign.Action) * d
		signals[SignalCampaign] = campScore
		base += campScore
	}

	if _, ok := p.Bookmarks[report.ID]; ok {
		signals[SignalBookmark] = cfg.Weights.Bookmark
		base += cfg.Weights.Bookmark
	}

	recency := Decay(now, report.PublishedAt, cfg.HalfLives.Publication)
	final := base*(1+cfg.RecencyFactor*recency) + cfg.RecencyFactor*recency
	signals[SignalRecencyBoost] = round3(cfg.RecencyFactor * recency)

	return final, signals
}
