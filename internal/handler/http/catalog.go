// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/service"
	"github.com/MKhiriev/go-cheat-catalog/internal/utils"
	"github.com/MKhiriev/go-cheat-catalog/internal/validators"
	"github.com/MKhiriev/go-cheat-catalog/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listGames(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.services.CatalogService.Games(r.Context()), http.StatusOK)
}

func (h *Handler) getGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	game, ok := h.services.CatalogService.Game(ctx, id)
	if !ok {
		writeServiceError(w, r, service.ErrGameNotFound)
		return
	}

	h.writeJSON(w, r, models.GameDetailsResponse{
		Game:   game,
		Cheats: h.services.CatalogService.CheatsForGame(ctx, id),
	}, http.StatusOK)
}

// listCheats supports ?game_id=, repeated ?tag= and ?q= filters.
func (h *Handler) listCheats(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.CheatFilter{
		GameID: query.Get("game_id"),
		Tags:   query["tag"],
		Query:  query.Get("q"),
	}

	h.writeJSON(w, r, h.services.CatalogService.FilterCheats(r.Context(), filter), http.StatusOK)
}

func (h *Handler) getCheat(w http.ResponseWriter, r *http.Request) {
	cheat, ok := h.services.CatalogService.Cheat(r.Context(), chi.URLParam(r, "id"))
	if !ok {
		writeServiceError(w, r, service.ErrCheatNotFound)
		return
	}

	h.writeJSON(w, r, cheat, http.StatusOK)
}

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.services.CatalogService.Tags(r.Context()), http.StatusOK)
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings := h.services.CatalogService.Settings(r.Context())

	var resp models.SettingsResponse
	if settings.HomepageVideoURL != nil {
		resp.HomepageVideoURL = *settings.HomepageVideoURL
		if id, ok := validators.ExtractVideoID(resp.HomepageVideoURL); ok {
			resp.EmbedURL = validators.EmbedURL(id)
		}
	}

	h.writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
