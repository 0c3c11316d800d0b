// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/legal-dms/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP, h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/health", h.health)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/auth", func(r chi.Router) {
		// routes without authorization
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/create-admin", h.createAdmin)
		r.Post("/create-demo", h.createDemo)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/me", h.me)
			r.With(h.authorize(models.ActionManage)).Get("/users", h.listUsers)
		})
	})

	router.Route("/api/documents", func(r chi.Router) {
		r.Use(h.auth)
		r.With(h.authorize(models.ActionRead)).Get("/", h.listDocuments)
		r.With(h.authorize(models.ActionRead)).Get("/{id}", h.getDocument)
		r.With(h.authorize(models.ActionWrite)).Post("/", h.createDocument)
		r.With(h.authorize(models.ActionWrite)).Put("/{id}", h.updateDocument)
		r.With(h.authorize(models.ActionDelete)).Delete("/{id}", h.deleteDocument)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
