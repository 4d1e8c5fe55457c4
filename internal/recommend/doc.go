// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

// Package recommend implements the profile-building and scoring engine:
// it turns raw engagement events into per-user interest weights, scores
// every eligible report against those weights with time-decay and
// popularity adjustments, and produces a ranked, justified feed.
//
// # Pipeline
//
// Data flows one way:
//
//	raw events -> aggregator -> interest profiles (+ popularity index)
//	           -> scorer/explainer (per report, per request)
//	           -> feed assembler -> ranked output
//
// Profiles and the popularity index are derived once per Rebuild from an
// immutable snapshot of the catalog, user directory, and engagement log,
// and are read-only afterwards. Feed items are computed fresh on every
// request and never cached.
//
// # Determinism
//
// The engine is a deterministic, explainable heuristic scorer, not a
// trained model. Given identical inputs and an unchanged clock day, two
// BuildFeed calls produce identical ordered output. Ties keep catalog
// order (stable sort over catalog-ordered candidates).
//
// # Concurrency
//
// The active snapshot sits behind an atomic pointer: concurrent feed
// requests share it lock-free while Rebuild constructs a replacement and
// swaps it in. The aggregation pass itself is single-threaded.
package recommend
