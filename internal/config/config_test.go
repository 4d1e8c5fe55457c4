// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.API.DefaultPageSize != 10 || cfg.API.MaxPageSize != 50 {
		t.Errorf("pagination defaults = %d/%d, want 10/50",
			cfg.API.DefaultPageSize, cfg.API.MaxPageSize)
	}
	if cfg.Scoring.Weights.PurchaseCategory != 10.0 {
		t.Errorf("scoring defaults not wired, purchase_cat = %v", cfg.Scoring.Weights.PurchaseCategory)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"empty data dir", func(c *Config) { c.Data.Dir = "" }},
		{"zero page size", func(c *Config) { c.API.DefaultPageSize = 0 }},
		{"max below default", func(c *Config) { c.API.MaxPageSize = 5 }},
		{"negative weight", func(c *Config) { c.Scoring.Weights.TagMatch = -1 }},
		{"zero half-life", func(c *Config) { c.Scoring.HalfLives.View = 0 }},
		{"short refresh", func(c *Config) {
			c.Refresh.Enabled = true
			c.Refresh.Interval = 100 * time.Millisecond
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted invalid config")
			}
		})
	}
}

func TestLoadAppliesEnvironmentOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("DATA_DIR", "/tmp/feed-data")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SCORING_WEIGHT_BOOKMARK", "3.5")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Data.Dir != "/tmp/feed-data" {
		t.Errorf("data dir = %q, want /tmp/feed-data", cfg.Data.Dir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Scoring.Weights.Bookmark != 3.5 {
		t.Errorf("bookmark weight = %v, want 3.5", cfg.Scoring.Weights.Bookmark)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.API.CORSOrigins) != 2 || cfg.API.CORSOrigins[0] != want[0] || cfg.API.CORSOrigins[1] != want[1] {
		t.Errorf("cors origins = %v, want %v", cfg.API.CORSOrigins, want)
	}
}

func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 7070
data:
  dir: /srv/feed
scoring:
  half_lives:
    view: 30
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want 7070 from file", cfg.Server.Port)
	}
	if cfg.Data.Dir != "/srv/feed" {
		t.Errorf("data dir = %q, want /srv/feed", cfg.Data.Dir)
	}
	if cfg.Scoring.HalfLives.View != 30 {
		t.Errorf("view half-life = %v, want 30 from file", cfg.Scoring.HalfLives.View)
	}
	// Untouched keys keep their defaults.
	if cfg.Scoring.HalfLives.Purchase != 90 {
		t.Errorf("purchase half-life = %v, want default 90", cfg.Scoring.HalfLives.Purchase)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7070\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want env override 9090", cfg.Server.Port)
	}
}

func TestEnvTransformSkipsUnknownKeys(t *testing.T) {
	if got := envTransformFunc("PATH"); got != "" {
		t.Errorf("PATH mapped to %q, want skipped", got)
	}
	if got := envTransformFunc("HTTP_PORT"); got != "server.port" {
		t.Errorf("HTTP_PORT mapped to %q, want server.port", got)
	}
	if got := envTransformFunc("SCORING_HALF_LIFE_PUBLICATION"); got != "scoring.half_lives.publication" {
		t.Errorf("mapping = %q, want scoring.half_lives.publication", got)
	}
}

func TestListenAddr(t *testing.T) {
	cfg := defaultConfig()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 8081
	if got := cfg.ListenAddr(); got != "127.0.0.1:8081" {
		t.Errorf("ListenAddr() = %q", got)
	}
}
