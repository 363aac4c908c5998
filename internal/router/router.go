// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chain for the
// blog API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkpress/internal/handlers"
	"inkpress/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(posts *handlers.Posts, categories *handlers.Categories, stats *handlers.Stats) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request. RequestID runs first
	// so both the logger and the recoverer see the id.
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Posts
		r.Route("/posts", func(r chi.Router) {
			r.Post("/", posts.Create)
			r.Get("/", posts.List)
			r.Get("/{slug}", posts.Get)
			r.Put("/{id}", posts.Update)
			r.Delete("/{id}", posts.Delete)
			r.Post("/{id}/publish", posts.Publish)
			r.Post("/{id}/unpublish", posts.Unpublish)
		})

		// Categories
		r.Route("/categories", func(r chi.Router) {
			r.Post("/", categories.Create)
			r.Get("/", categories.List)
			r.Put("/{id}", categories.Update)
			r.Delete("/{id}", categories.Delete)
		})

		// Aggregate counts
		r.Get("/stats", stats.Get)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
