// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

// Package store loads the report catalog, user directory, and engagement
// log from JSON files on disk. Loading is fail-fast: a missing file,
// malformed JSON, or malformed timestamp aborts the load with an error
// naming the file, and the previously loaded data stays in place.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/OussamaMasri/TacticalReportBackend/internal/models"
)

// Canonical dataset file names inside the data directory.
const (
	ReportsFile     = "reports.json"
	UsersFile       = "users.json"
	EngagementsFile = "engagements.json"
)

// Store holds the loaded dataset and serves it to the scoring engine.
// It implements recommend.DataProvider. Reads and Reload may race; the
// mutex keeps each read consistent with one complete load.
type Store struct {
	dir    string
	logger zerolog.Logger

	mu          sync.RWMutex
	reports     []models.Report
	users       map[string]models.User
	engagements models.Engagements
}

// Open creates a store over the given data directory and performs the
// initial load. All three dataset files must exist and parse.
func Open(dir string, logger zerolog.Logger) (*Store, error) {
	s := &Store{
		dir:    dir,
		logger: logger.With().Str("component", "store").Logger(),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads all three dataset files from disk and swaps them in as
// one unit. On any error the store keeps serving the previous dataset.
func (s *Store) Reload() error {
	var reports []models.Report
	if err := readJSON(filepath.Join(s.dir, ReportsFile), &reports); err != nil {
		return err
	}

	var userList []models.User
	if err := readJSON(filepath.Join(s.dir, UsersFile), &userList); err != nil {
		return err
	}

	var engagements models.Engagements
	if err := readJSON(filepath.Join(s.dir, EngagementsFile), &engagements); err != nil {
		return err
	}

	for i, r := range reports {
		if r.ID == "" {
			return fmt.Errorf("%s: report at index %d has no id", ReportsFile, i)
		}
	}

	users := make(map[string]models.User, len(userList))
	for i, u := range userList {
		if u.ID == "" {
			return fmt.Errorf("%s: user at index %d has no id", UsersFile, i)
		}
		if _, dup := users[u.ID]; dup {
			s.logger.Warn().Str("user_id", u.ID).Msg("duplicate user id, keeping last entry")
		}
		users[u.ID] = u
	}

	s.mu.Lock()
	s.reports = reports
	s.users = users
	s.engagements = engagements
	s.mu.Unlock()

	s.logger.Info().
		Int("reports", len(reports)).
		Int("users", len(users)).
		Int("events", engagements.Len()).
		Msg("dataset loaded")

	return nil
}

// Reports returns the report catalog in file order.
func (s *Store) Reports() []models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reports
}

// Users returns the user directory keyed by user ID.
func (s *Store) Users() map[string]models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users
}

// Engagements returns the engagement log in file order.
func (s *Store) Engagements() models.Engagements {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engagements
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
