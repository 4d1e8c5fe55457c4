// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

// Package store loads the JSON dataset (reports.json, users.json,
// engagements.json) from a data directory and serves it to the scoring
// engine through the recommend.DataProvider interface.
//
// Reload parses all three files before touching the live dataset: a
// malformed file, a bad timestamp, or a record without an ID rejects the
// whole reload and the previous dataset keeps serving. Duplicate user
// IDs are logged and the last occurrence wins. Reads hold an RWMutex so
// a reload never races a feed request.
package store
