// Tactical Report Backend - Personalized Intelligence Report Feed
// Copyright 2026 Oussama Masri (OussamaMasri)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OussamaMasri/TacticalReportBackend

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/OussamaMasri/TacticalReportBackend/internal/config"
	"github.com/OussamaMasri/TacticalReportBackend/internal/middleware"
)

// Router wires the endpoint handler into the chi routing tree.
type Router struct {
	handler *Handler
	config  *config.Config
}

// NewRouter creates the router.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{handler: handler, config: cfg}
}

// Setup builds the full routing tree with the middleware chain:
// request IDs and panic recovery globally, CORS for preflight handling,
// then rate limiting and Prometheus instrumentation on the API routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.config.API.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         86400,
	}))

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.rateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/reports", router.handler.Reports)
		r.Get("/users", router.handler.Users)
		r.Get("/feed", router.handler.Feed)
		r.Get("/feed/status", router.handler.FeedStatus)
		r.Post("/feed/refresh", router.handler.FeedRefresh)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// rateLimit returns the IP-keyed rate limiter, or a no-op middleware when
// disabled in configuration.
func (router *Router) rateLimit() func(http.Handler) http.Handler {
	if router.config.API.RateLimitDisabled {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		router.config.API.RateLimitReqs,
		router.config.API.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
	)
}
