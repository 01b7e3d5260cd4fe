// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/service"
	"github.com/MKhiriev/go-cheat-catalog/internal/utils"
	"github.com/MKhiriev/go-cheat-catalog/models"
	"github.com/go-chi/chi/v5"
)

// issueCSRFToken sets a fresh token cookie and returns the same value in the
// body for the front end to echo in the X-CSRF-Token header.
func (h *Handler) issueCSRFToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.tokens.NewToken()
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.issueCSRFToken").Msg("error issuing csrf token")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})

	h.writeJSON(w, r, models.CSRFResponse{Token: token}, http.StatusOK)
}

func (h *Handler) downloadCheat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	found, err := h.services.CatalogService.IncrementDownload(ctx, id)
	if err != nil {
		log.Err(err).Str("cheat_id", id).Msg("error counting download")
		writeServiceError(w, r, err)
		return
	}
	if !found {
		writeServiceError(w, r, service.ErrCheatNotFound)
		return
	}

	cheat, _ := h.services.CatalogService.Cheat(ctx, id)
	log.Debug().Str("cheat_id", id).Int("downloads", cheat.Downloads).Msg("download counted")

	h.writeJSON(w, r, models.DownloadResponse{
		CheatID:   cheat.ID,
		URL:       cheat.URL,
		Downloads: cheat.Downloads,
	}, http.StatusOK)
}
