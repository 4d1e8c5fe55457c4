// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

// Package logging provides zerolog-based structured logging for the service.
//
// JSON output for production, console output for development, selected by
// Config.Format. The package-level logger is initialized once at startup
// via Init and read through Logger(), With(), or the level helpers
// (Info, Warn, Error, ...).
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("user_id", id).Msg("feed built")
//
// # Context-aware logging
//
// Request IDs travel through context. Ctx(ctx) returns a logger that
// stamps request_id on every event when the context carries one:
//
//	logging.Ctx(r.Context()).Debug().Int("items", n).Msg("feed page served")
//
// # slog adapter
//
// NewSlogLogger wraps the global logger in a log/slog handler so
// libraries that speak slog (the suture supervision tree) emit through
// zerolog with the same format and level.
//
// All exported functions are safe for concurrent use; the global logger
// is guarded by an RWMutex for reconfiguration.
package logging
