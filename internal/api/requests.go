// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

package api

import (
	"fmt"
	"net/http"
	"strconv"
)

// FeedRequest carries the parsed and validated feed query parameters.
// Page and PageSize bounds come from the API configuration; the validate
// tags enforce the hard limits while parseFeedRequest applies defaults.
type FeedRequest struct {
	UserID   string `validate:"required"`
	Page     int    `validate:"gte=1"`
	PageSize int    `validate:"gte=1"`
	Category string
}

// parseFeedRequest extracts feed parameters from the query string,
// applying pagination defaults. Returns an error for non-numeric page
// values; bounds are enforced by validation afterwards.
func (h *Handler) parseFeedRequest(r *http.Request) (*FeedRequest, error) {
	q := r.URL.Query()

	req := &FeedRequest{
		UserID:   q.Get("user_id"),
		Page:     1,
		PageSize: h.config.API.DefaultPageSize,
		Category: q.Get("category"),
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("page must be an integer, got %q", raw)
		}
		req.Page = page
	}

	if raw := q.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("page_size must be an integer, got %q", raw)
		}
		req.PageSize = size
	}

	return req, nil
}

// checkBounds enforces the configured pagination ceiling, which cannot be
// expressed as a static validate tag.
func (req *FeedRequest) checkBounds(maxPageSize int) error {
	if req.PageSize > maxPageSize {
		return fmt.Errorf("page_size must be at most %d, got %d", maxPageSize, req.PageSize)
	}
	return nil
}
