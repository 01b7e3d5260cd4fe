// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cheat-catalog/internal/utils"
	"github.com/MKhiriev/go-cheat-catalog/models"
)

// withClientInfo stamps the caller's user agent and request URL into the
// context for security events recorded while serving the request.
func withClientInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := utils.WithClientInfo(r.Context(), models.ClientInfo{
			UserAgent: r.UserAgent(),
			URL:       r.URL.String(),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
