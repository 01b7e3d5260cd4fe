// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
)

const (
	csrfCookie = "csrf_token"
	csrfHeader = "X-CSRF-Token"
)

// requireCSRF implements the double-submit check: the X-CSRF-Token header
// must equal the csrf_token cookie issued by GET /api/csrf.
func (h *Handler) requireCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var expected string
		if cookie, err := r.Cookie(csrfCookie); err == nil {
			expected = cookie.Value
		}

		if !h.tokens.VerifyToken(r.Header.Get(csrfHeader), expected) {
			logger.FromRequest(r).Warn().Str("path", r.URL.Path).Msg("csrf check failed")
			writeServiceError(w, r, ErrCSRFTokenMismatch)
			return
		}

		next.ServeHTTP(w, r)
	})
}
