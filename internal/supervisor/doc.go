// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

// Package supervisor assembles the suture v4 supervision tree.
//
// The root supervisor "tacticalreport" owns two child layers:
// background-layer for periodic work (the dataset refresh service) and
// api-layer for the HTTP server. A failing service is restarted by its
// layer with the configured backoff; a layer that keeps failing
// propagates to the root. Tree logging goes through sutureslog into the
// service's zerolog output.
//
// Services implement suture.Service plus fmt.Stringer for readable
// restart logs, and live in the services subpackage.
package supervisor
