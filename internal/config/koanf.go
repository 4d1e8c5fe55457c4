// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/OussamaMasri/TacticalReportBackend/internal/logging"
	"github.com/OussamaMasri/TacticalReportBackend/internal/recommend"
)

// DefaultConfigPaths lists where config files are searched, in order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/tacticalreport/config.yaml",
	"/etc/tacticalreport/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the built-in defaults, applied before the config
// file and environment layers.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8080,
			Timeout: 30 * time.Second,
		},
		Data: DataConfig{
			Dir: "data",
		},
		API: APIConfig{
			DefaultPageSize: 10,
			MaxPageSize:     50,
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Refresh: RefreshConfig{
			Enabled:  false,
			Interval: 5 * time.Minute,
		},
		Scoring: recommend.DefaultConfig(),
		Logging: logging.DefaultConfig(),
	}
}

// Load builds the configuration from layered sources:
//  1. Built-in defaults
//  2. Optional YAML config file
//  3. Environment variables (highest priority)
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths lists config paths parsed as comma-separated slices
// when sourced from environment variables.
var sliceConfigPaths = []string{
	"api.cors_origins",
}

// processSliceFields converts comma-separated strings to slices for the
// known slice fields. Env vars arrive as strings; YAML values are already
// slices and are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envTransformFunc maps environment variable names to koanf config paths.
// Unmapped variables are skipped so unrelated environment noise never
// reaches the config.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - DATA_DIR -> data.dir
//   - SCORING_WEIGHT_PURCHASE_CAT -> scoring.weights.purchase_cat
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Server mappings
		"http_host":    "server.host",
		"http_port":    "server.port",
		"http_timeout": "server.timeout",

		// Data mappings
		"data_dir": "data.dir",

		// API mappings
		"api_default_page_size": "api.default_page_size",
		"api_max_page_size":     "api.max_page_size",
		"rate_limit_requests":   "api.rate_limit_reqs",
		"rate_limit_window":     "api.rate_limit_window",
		"disable_rate_limit":    "api.rate_limit_disabled",
		"cors_origins":          "api.cors_origins",

		// Refresh mappings
		"refresh_enabled":  "refresh.enabled",
		"refresh_interval": "refresh.interval",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",

		// Scoring weight mappings
		"scoring_weight_purchase_cat":    "scoring.weights.purchase_cat",
		"scoring_weight_purchase_tag":    "scoring.weights.purchase_tag",
		"scoring_weight_view_cat":        "scoring.weights.view_cat",
		"scoring_weight_view_tag":        "scoring.weights.view_tag",
		"scoring_weight_view_long_bonus": "scoring.weights.view_long_bonus",
		"scoring_weight_campaign_click":  "scoring.weights.campaign_click",
		"scoring_weight_campaign_open":   "scoring.weights.campaign_open",
		"scoring_weight_bookmark":        "scoring.weights.bookmark",
		"scoring_weight_tag_match":       "scoring.weights.tag_match",
		"scoring_weight_focus_cat":       "scoring.weights.focus_cat",
		"scoring_weight_focus_tag":       "scoring.weights.focus_tag",

		// Scoring half-life mappings (days)
		"scoring_half_life_purchase":    "scoring.half_lives.purchase",
		"scoring_half_life_view":        "scoring.half_lives.view",
		"scoring_half_life_campaign":    "scoring.half_lives.campaign",
		"scoring_half_life_bookmark":    "scoring.half_lives.bookmark",
		"scoring_half_life_publication": "scoring.half_lives.publication",

		// Remaining scoring knobs
		"scoring_long_dwell_seconds":  "scoring.long_dwell_seconds",
		"scoring_campaign_tag_factor": "scoring.campaign_tag_factor",
		"scoring_popularity_weight":   "scoring.popularity_weight",
		"scoring_recency_factor":      "scoring.recency_factor",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}
