// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

package recommend

import (
	"math"
	"time"
)

// Decay converts an event timestamp into a recency weight in (0, 1].
//
// Elapsed time is measured in whole days between now and then, floored at
// zero so future timestamps count as zero elapsed. The weight is
// exp(-days/halfLife), monotonically decreasing in elapsed time.
//
// Timestamps are expected to be timezone-normalized (the store parses them
// as RFC3339 and rejects malformed values at load time, so the engine never
// sees an invalid time).
func Decay(now, then time.Time, halfLifeDays float64) float64 {
	days := int(now.Sub(then).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return math.Exp(-float64(days) / halfLifeDays)
}

// round3 rounds to 3 decimal places for scores and signal values.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
