// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	// an empty origin list would make cors allow every origin
	if len(h.cfg.AllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.cfg.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", csrfHeader, traceIDHeader},
			ExposedHeaders:   []string{traceIDHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withClientInfo)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Handle("/metrics", h.metrics.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Get("/csrf", h.issueCSRFToken)

		r.Group(func(r chi.Router) {
			r.Use(withGZip)

			r.Get("/games", h.listGames)
			r.Get("/games/{id}", h.getGame)
			r.Get("/cheats", h.listCheats)
			r.Get("/cheats/{id}", h.getCheat)
			r.Get("/tags", h.listTags)
			r.Get("/settings", h.getSettings)
		})

		r.With(h.requireCSRF, h.throttleDownloads).Post("/cheats/{id}/download", h.downloadCheat)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
