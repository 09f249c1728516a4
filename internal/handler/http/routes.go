// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with the full middleware chain. Reads used by the
// public marketing site stay open; everything that mutates state goes
// through the same-origin check, and dashboard routes additionally require
// the admin session.
//
// The same-origin check is installed per group, not on the router, so it
// only runs once a route and method have matched: an unsupported method
// answers 405 with an Allow header instead of 403.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withClientIP)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.requireSameOrigin)
		r.Post("/api/login", h.login)
		r.Post("/api/submissions", h.createSubmission)
		r.Get("/api/properties", h.listProperties)
		r.Get("/api/settings", h.getSettings)
	})

	// dashboard routes behind the admin session
	router.Group(func(r chi.Router) {
		r.Use(h.requireSameOrigin, h.auth)
		r.Get("/api/submissions", h.listSubmissions)
		r.Post("/api/properties", h.createProperty)
		r.Put("/api/properties", h.updateProperty)
		r.Delete("/api/properties", h.deleteProperty)
		r.Put("/api/settings", h.updateSettings)
		r.Post("/api/upload", h.uploadImage)
	})

	router.MethodNotAllowed(RejectUnsupportedMethod(router))

	return router
}
