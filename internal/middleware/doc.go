// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

// Package middleware provides the service's HTTP middleware: request ID
// assignment (echoing an inbound X-Request-ID or generating a UUID, and
// propagating it through the context for logging), and prometheus
// instrumentation capturing status codes and latency per chi route
// pattern.
package middleware
