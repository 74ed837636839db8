// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package http

import (
	"github.com/covid19india/portal-api/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the portal's route tree.
//
// Every route other than /login sits behind the JWT authentication
// middleware. The middleware chain mirrors the request lifecycle: panic
// recovery first, then trace-id tagging, request logging, and the optional
// per-request timeout.
func (h *Handler) Init(cfg config.Server) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/login", h.login)
	})

	// protected routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/states/", h.listStates)
		r.Get("/states/{stateId}", h.getState)
		r.Get("/states/{stateId}/stats", h.stateStats)

		r.Post("/districts", h.createDistrict)
		r.Get("/districts/{districtId}", h.getDistrict)
		r.Put("/districts/{districtId}", h.updateDistrict)
		r.Delete("/districts/{districtId}", h.deleteDistrict)
	})

	return router
}
