// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

package recommend

import (
	"fmt"

	"github.com/OussamaMasri/TacticalReportBackend/internal/models"
)

// Config contains all tunable parameters for the scoring engine.
// Weights and half-lives are supplied by the configuration layer so the
// ranking can be tuned without touching the algorithm.
type Config struct {
	// Weights defines the per-signal contribution weights.
	Weights Weights `json:"weights" koanf:"weights"`

	// HalfLives defines the exponential decay half-lives in days.
	HalfLives HalfLives `json:"half_lives" koanf:"half_lives"`

	// LongDwellSeconds is the dwell-time threshold (seconds) at or above
	// which a view earns the long-dwell bonus instead of the flat 1.0 factor.
	LongDwellSeconds int `json:"long_dwell_seconds" koanf:"long_dwell_seconds"`

	// CampaignTagFactor scales the campaign weight when applied to tag
	// interest (category interest receives the full weight).
	CampaignTagFactor float64 `json:"campaign_tag_factor" koanf:"campaign_tag_factor"`

	// PopularityWeight is the per-event popularity backstop added to the
	// final score. It is not recorded as a signal.
	PopularityWeight float64 `json:"popularity_weight" koanf:"popularity_weight"`

	// RecencyFactor scales the publication-recency boost: the final score
	// is base*(1+RecencyFactor*recency) + RecencyFactor*recency.
	RecencyFactor float64 `json:"recency_factor" koanf:"recency_factor"`
}

// Weights defines the named signal weights. All weights must be
// non-negative; with the defaults every computed score is non-negative.
type Weights struct {
	// PurchaseCategory is added to category interest per purchase.
	PurchaseCategory float64 `json:"purchase_cat" koanf:"purchase_cat"`

	// PurchaseTag is added to each report tag's interest per purchase.
	PurchaseTag float64 `json:"purchase_tag" koanf:"purchase_tag"`

	// ViewCategory is added to category interest per view.
	ViewCategory float64 `json:"view_cat" koanf:"view_cat"`

	// ViewTag is added to each report tag's interest per view.
	ViewTag float64 `json:"view_tag" koanf:"view_tag"`

	// ViewLongBonus replaces the flat 1.0 dwell factor for long views.
	ViewLongBonus float64 `json:"view_long_bonus" koanf:"view_long_bonus"`

	// CampaignClick weighs campaign touches with action "clicked".
	CampaignClick float64 `json:"campaign_click" koanf:"campaign_click"`

	// CampaignOpen weighs all other campaign touches.
	CampaignOpen float64 `json:"campaign_open" koanf:"campaign_open"`

	// Bookmark is the flat bookmark weight.
	Bookmark float64 `json:"bookmark" koanf:"bookmark"`

	// TagMatch weighs per-tag matches during scoring and bookmark tag
	// contributions during aggregation.
	TagMatch float64 `json:"tag_match" koanf:"tag_match"`

	// FocusCategory is the flat, undecayed seed per stated focus category.
	FocusCategory float64 `json:"focus_cat" koanf:"focus_cat"`

	// FocusTag is the flat, undecayed seed per stated focus tag.
	FocusTag float64 `json:"focus_tag" koanf:"focus_tag"`
}

// HalfLives defines the decay half-lives in days per event kind, plus the
// publication-recency half-life used by the scorer.
type HalfLives struct {
	Purchase    float64 `json:"purchase" koanf:"purchase"`
	View        float64 `json:"view" koanf:"view"`
	Campaign    float64 `json:"campaign" koanf:"campaign"`
	Bookmark    float64 `json:"bookmark" koanf:"bookmark"`
	Publication float64 `json:"publication" koanf:"publication"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			PurchaseCategory: 10.0,
			PurchaseTag:      6.0,
			ViewCategory:     4.0,
			ViewTag:          2.5,
			ViewLongBonus:    2.0,
			CampaignClick:    2.0,
			CampaignOpen:     1.0,
			Bookmark:         2.5,
			TagMatch:         1.8,
			FocusCategory:    3.0,
			FocusTag:         2.0,
		},
		HalfLives: HalfLives{
			Purchase:    90,
			View:        60,
			Campaign:    45,
			Bookmark:    90,
			Publication: 120,
		},
		LongDwellSeconds:  150,
		CampaignTagFactor: 0.5,
		PopularityWeight:  0.2,
		RecencyFactor:     0.5,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	weights := map[string]float64{
		"purchase_cat":    c.Weights.PurchaseCategory,
		"purchase_tag":    c.Weights.PurchaseTag,
		"view_cat":        c.Weights.ViewCategory,
		"view_tag":        c.Weights.ViewTag,
		"view_long_bonus": c.Weights.ViewLongBonus,
		"campaign_click":  c.Weights.CampaignClick,
		"campaign_open":   c.Weights.CampaignOpen,
		"bookmark":        c.Weights.Bookmark,
		"tag_match":       c.Weights.TagMatch,
		"focus_cat":       c.Weights.FocusCategory,
		"focus_tag":       c.Weights.FocusTag,
	}
	for name, w := range weights {
		if w < 0 {
			return fmt.Errorf("weight %s must be non-negative, got %v", name, w)
		}
	}

	halfLives := map[string]float64{
		"purchase":    c.HalfLives.Purchase,
		"view":        c.HalfLives.View,
		"campaign":    c.HalfLives.Campaign,
		"bookmark":    c.HalfLives.Bookmark,
		"publication": c.HalfLives.Publication,
	}
	for name, h := range halfLives {
		if h <= 0 {
			return fmt.Errorf("half-life %s must be positive, got %v", name, h)
		}
	}

	if c.LongDwellSeconds < 0 {
		return fmt.Errorf("long_dwell_seconds must be non-negative, got %d", c.LongDwellSeconds)
	}
	if c.CampaignTagFactor < 0 {
		return fmt.Errorf("campaign_tag_factor must be non-negative, got %v", c.CampaignTagFactor)
	}
	if c.PopularityWeight < 0 {
		return fmt.Errorf("popularity_weight must be non-negative, got %v", c.PopularityWeight)
	}
	if c.RecencyFactor < 0 {
		return fmt.Errorf("recency_factor must be non-negative, got %v", c.RecencyFactor)
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// campaignWeight returns the weight for a campaign action.
func (c *Config) campaignWeight(action string) float64 {
	if action == models.CampaignActionClicked {
		return c.Weights.CampaignClick
	}
	return c.Weights.CampaignOpen
}

// dwellFactor returns the dwell bonus factor for a view.
func (c *Config) dwellFactor(dwellSeconds int) float64 {
	if dwellSeconds >= c.LongDwellSeconds {
		return c.Weights.ViewLongBonus
	}
	return 1.0
}
