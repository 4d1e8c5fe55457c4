// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

// Package models defines the shared data structures: the report catalog
// and user directory, the four engagement event types
// (purchase, view, campaign, bookmark), feed output items with their
// signal breakdowns, and the API response envelope. The package has no
// dependencies beyond the standard library so every layer can import it.
package models
