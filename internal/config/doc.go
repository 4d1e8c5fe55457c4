// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

/*
Package config provides layered configuration management built on koanf.

Configuration merges three layers, later layers winning:

 1. Compiled defaults (defaultConfig)
 2. A YAML file, the first of config.yaml, config.yml,
    /etc/tacticalreport/config.yaml, /etc/tacticalreport/config.yml that
    exists, or the file named by CONFIG_PATH
 3. Environment variables

# Environment Variables

Server:
  - HTTP_HOST: bind address (default 0.0.0.0)
  - HTTP_PORT: listen port (default 8080)
  - HTTP_TIMEOUT: read/write timeout (default 30s)

Data:
  - DATA_DIR: dataset directory holding reports.json, users.json,
    engagements.json (default data)

API:
  - API_DEFAULT_PAGE_SIZE: feed page size when unspecified (default 10)
  - API_MAX_PAGE_SIZE: upper bound on page_size (default 50)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW: per-IP limit (default 100/1m)
  - DISABLE_RATE_LIMIT: turn limiting off entirely
  - CORS_ORIGINS: comma-separated allowed origins

Refresh:
  - REFRESH_ENABLED: run the periodic reload/rebuild service (default false)
  - REFRESH_INTERVAL: cycle interval (default 5m)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Scoring: every engine knob is overridable, e.g. SCORING_WEIGHT_BOOKMARK,
SCORING_HALF_LIFE_VIEW, SCORING_LONG_DWELL_SECONDS,
SCORING_CAMPAIGN_TAG_FACTOR, SCORING_POPULARITY_WEIGHT,
SCORING_RECENCY_FACTOR. See koanf.go for the full mapping table; unknown
variables are ignored rather than guessed at.

Load validates the merged result before returning it. The Config struct
is immutable after Load, so concurrent reads need no synchronization.
*/
package config
