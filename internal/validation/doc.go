// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

// Package validation wraps go-playground/validator behind a process-wide
// singleton and translates tag failures into human-readable messages.
//
// ValidateStruct returns a RequestValidationError carrying every failed
// field; ToAPIError converts it into the response envelope's error block
// with per-field details and the VALIDATION_ERROR code. The validator is
// created once with required-struct checking enabled and is safe for
// concurrent use.
package validation
