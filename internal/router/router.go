// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chains of the
// gallery CMS. Routes are organized into the admin API and the public site.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gallerycms/internal/handlers"
	"gallerycms/internal/metrics"
	"gallerycms/internal/middleware"
)

// New creates the chi router with all middleware and route groups wired up.
// limiter may be nil to leave the admin API unthrottled.
func New(admin *handlers.Admin, public *handlers.Public, m *metrics.Metrics, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.Instrument(m))

	r.Get("/health", healthHandler)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/admin", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		r.Get("/menu", admin.Menu)
		r.Get("/cache-log", admin.CacheLogList)

		r.Route("/gallery-photos", func(r chi.Router) {
			r.Get("/", admin.GalleryPhotosList)
			r.Post("/", admin.GalleryPhotoCreate)
			r.Get("/{id}", admin.GalleryPhotoGet)
			r.Put("/{id}", admin.GalleryPhotoUpdate)
			r.Delete("/{id}", admin.GalleryPhotoDelete)
		})

		r.Route("/images", func(r chi.Router) {
			r.Get("/", admin.ImagesList)
			r.Post("/", admin.ImageCreate)
			r.Get("/{id}", admin.ImageGet)
			r.Put("/{id}", admin.ImageUpdate)
			r.Delete("/{id}", admin.ImageDelete)
		})

		r.Route("/documents", func(r chi.Router) {
			r.Get("/", admin.DocumentsList)
			r.Post("/", admin.DocumentCreate)
			r.Get("/{id}", admin.DocumentGet)
			r.Delete("/{id}", admin.DocumentDelete)
		})

		r.Route("/pages", func(r chi.Router) {
			r.Get("/", admin.PagesList)
			r.Post("/", admin.PageCreate)
			r.Get("/{id}", admin.PageGet)
			r.Put("/{id}", admin.PageUpdate)
			r.Delete("/{id}", admin.PageDelete)
		})

		// Snippets
		for segment, h := range admin.Snippets() {
			r.Route("/"+segment, func(r chi.Router) {
				r.Get("/", h.List)
				r.Post("/", h.Create)
				r.Get("/{id}", h.Get)
				r.Put("/{id}", h.Update)
				r.Delete("/{id}", h.Delete)
			})
		}
	})

	r.Get("/api/gallery", public.Gallery)
	r.Get("/", public.Home)
	r.Get("/pages/{slug}", public.Page)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
