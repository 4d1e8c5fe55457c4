// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

package recommend

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

// daysAgo returns a timestamp n whole days before testNow.
func daysAgo(n int) time.Time {
	return testNow.Add(-time.Duration(n) * 24 * time.Hour)
}

func TestDecayRange(t *testing.T) {
	tests := []struct {
		name     string
		then     time.Time
		halfLife float64
		want     float64
	}{
		{"same instant", testNow, 90, 1.0},
		{"less than a day", testNow.Add(-23 * time.Hour), 90, 1.0},
		{"ten days at 90d half-life", daysAgo(10), 90, math.Exp(-10.0 / 90.0)},
		{"one day at 120d half-life", daysAgo(1), 120, math.Exp(-1.0 / 120.0)},
		{"ninety days at 90d half-life", daysAgo(90), 90, math.Exp(-1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decay(testNow, tt.then, tt.halfLife)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Decay() = %v, want %v", got, tt.want)
			}
			if got <= 0 || got > 1 {
				t.Errorf("Decay() = %v, outside (0, 1]", got)
			}
		})
	}
}

func TestDecayFutureTimestamp(t *testing.T) {
	// Future timestamps count as zero elapsed days, never negative.
	got := Decay(testNow, testNow.Add(72*time.Hour), 45)
	if got != 1.0 {
		t.Errorf("Decay(future) = %v, want 1.0", got)
	}
}

func TestDecayMonotonicallyDecreasing(t *testing.T) {
	prev := math.Inf(1)
	for _, days := range []int{0, 1, 5, 30, 90, 365} {
		got := Decay(testNow, daysAgo(days), 60)
		if got >= prev {
			t.Fatalf("Decay at %d days = %v, not below %v", days, got, prev)
		}
		prev = got
	}
}

func TestRound3(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.23456, 1.235},
		{1.2344, 1.234},
		{0, 0},
		{8.9482, 8.948},
	}

	for _, tt := range tests {
		if got := round3(tt.in); got != tt.want {
			t.Errorf("round3(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
