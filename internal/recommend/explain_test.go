// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

package recommend

import (
	"strings"
	"testing"

	"github.com/OussamaMasri/TacticalReportBackend/internal/models"
)

func TestReasonClauseOrder(t *testing.T) {
	p := emptyProfile("u-1")
	p.CategoryInterest["Defense"] = 5.0
	p.TagInterest["UAV"] = 2.0
	p.Views["rep-1"] = models.ViewEvent{UserID: "u-1", ReportID: "rep-1", ViewedAt: daysAgo(1)}
	p.Bookmarks["rep-1"] = struct{}{}
	p.Campaigns["rep-1"] = models.CampaignEvent{UserID: "u-1", ReportID: "rep-1", OccurredAt: daysAgo(2), Action: "clicked"}

	report := models.Report{ID: "rep-1", Category: "Defense", Tags: []string{"UAV"}, PublishedAt: daysAgo(1)}
	got := reason(report, p, 4)

	want := "Because you engage with defense content" +
		" and tags you follow (UAV)" +
		" and you viewed this recently" +
		" and you bookmarked similar items" +
		" and you clicked a campaign on this topic"
	if got != want {
		t.Errorf("reason = %q, want %q", got, want)
	}
}

func TestReasonTagClauseFirstThree(t *testing.T) {
	p := emptyProfile("u-1")
	for _, tag := range []string{"UAV", "radar", "air-defense", "drones"} {
		p.TagInterest[tag] = 1.0
	}

	report := models.Report{
		ID: "rep-1", Category: "Defense",
		Tags: []string{"UAV", "radar", "air-defense", "drones"},
	}
	got := reason(report, p, 0)

	if !strings.Contains(got, "tags you follow (UAV, radar, air-defense)") {
		t.Errorf("reason = %q, want first three tags only", got)
	}
	if strings.Contains(got, "drones") {
		t.Errorf("reason = %q, fourth tag should be dropped", got)
	}
}

func TestReasonCampaignActionDefaultsToOpened(t *testing.T) {
	p := emptyProfile("u-1")
	p.Campaigns["rep-1"] = models.CampaignEvent{UserID: "u-1", ReportID: "rep-1", OccurredAt: daysAgo(2)}

	report := models.Report{ID: "rep-1", Category: "Defense"}
	got := reason(report, p, 0)

	if !strings.Contains(got, "you opened a campaign on this topic") {
		t.Errorf("reason = %q, want opened-campaign clause", got)
	}
}

func TestReasonPopularityFallback(t *testing.T) {
	report := models.Report{ID: "rep-1", Category: "Defense"}

	got := reason(report, emptyProfile("u-1"), 7)
	if got != "Because popular in your region and recency boosted" {
		t.Errorf("reason = %q, want popularity fallback", got)
	}
}

func TestReasonGenericFallback(t *testing.T) {
	report := models.Report{ID: "rep-1", Category: "Defense"}

	got := reason(report, emptyProfile("u-1"), 0)
	if got != "Because recent and relevant to your stated focus" {
		t.Errorf("reason = %q, want generic fallback", got)
	}
}

func TestWhyItMatters(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want string
	}{
		{"UAV framing", []string{"UAV"}, "This shapes air and counter-UAS posture for regional stakeholders."},
		{"air-defense framing", []string{"air-defense"}, "This shapes air and counter-UAS posture for regional stakeholders."},
		{"energy framing", []string{"LNG"}, "This shapes energy export positioning for regional stakeholders."},
		{"hydrogen framing", []string{"hydrogen"}, "This shapes energy export positioning for regional stakeholders."},
		{"policy framing", []string{"governance"}, "This shapes regulatory stability for regional stakeholders."},
		{"grid framing", []string{"storage"}, "This shapes infrastructure resilience for regional stakeholders."},
		{"elections framing", []string{"elections"}, "This shapes political timing and risk for regional stakeholders."},
		{"first match wins", []string{"elections", "UAV"}, "This shapes air and counter-UAS posture for regional stakeholders."},
		{"no match", []string{"minerals"}, "Brief insight on strategic shifts affecting the region."},
		{"no tags", nil, "Brief insight on strategic shifts affecting the region."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := models.Report{ID: "rep-1", Category: "Defense", Tags: tt.tags}
			if got := whyItMatters(report); got != tt.want {
				t.Errorf("whyItMatters() = %q, want %q", got, tt.want)
			}
		})
	}
}
