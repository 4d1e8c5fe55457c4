// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

// Package config holds the application configuration and its layered
// loading: built-in defaults, then an optional YAML config file, then
// environment variables, with later layers overriding earlier ones.
package config

import (
	"fmt"
	"time"

	"github.com/OussamaMasri/TacticalReportBackend/internal/logging"
	"github.com/OussamaMasri/TacticalReportBackend/internal/recommend"
)

// Config holds all application configuration.
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server  ServerConfig   `koanf:"server"`
	Data    DataConfig     `koanf:"data"`
	API     APIConfig      `koanf:"api"`
	Refresh RefreshConfig  `koanf:"refresh"`
	Scoring *ScoringConfig `koanf:"scoring"`
	Logging logging.Config `koanf:"logging"`
}

// ScoringConfig aliases the engine configuration so scoring weights and
// half-lives are tunable from the same YAML file and environment as the
// rest of the service.
type ScoringConfig = recommend.Config

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST: Listen address (default: 0.0.0.0)
//   - HTTP_PORT: Listen port (default: 8080)
//   - HTTP_TIMEOUT: Read/write timeout (default: 30s)
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// DataConfig locates the dataset files.
//
// Environment Variables:
//   - DATA_DIR: Directory holding reports.json, users.json, engagements.json
type DataConfig struct {
	Dir string `koanf:"dir"`
}

// APIConfig holds API boundary settings: pagination bounds and rate
// limiting.
type APIConfig struct {
	DefaultPageSize   int           `koanf:"default_page_size"`
	MaxPageSize       int           `koanf:"max_page_size"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// RefreshConfig controls the background dataset refresh service, which
// periodically reloads the dataset from disk and rebuilds the snapshot.
type RefreshConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval"`
}

// Validate checks configuration invariants. Called by Load after all
// layers are merged.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive")
	}
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir is required")
	}
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be at least 1")
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size %d below default page size %d",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if !c.API.RateLimitDisabled {
		if c.API.RateLimitReqs < 1 {
			return fmt.Errorf("api.rate_limit_reqs must be at least 1")
		}
		if c.API.RateLimitWindow <= 0 {
			return fmt.Errorf("api.rate_limit_window must be positive")
		}
	}
	if c.Refresh.Enabled && c.Refresh.Interval < time.Second {
		return fmt.Errorf("refresh.interval %s too short", c.Refresh.Interval)
	}
	if c.Scoring == nil {
		return fmt.Errorf("scoring configuration missing")
	}
	if err := c.Scoring.Validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	return nil
}

// ListenAddr returns the host:port pair for the HTTP listener.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
