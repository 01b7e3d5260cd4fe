// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/service"
	"github.com/MKhiriev/go-cheat-catalog/internal/store"
	"github.com/MKhiriev/go-cheat-catalog/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidInput:            http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrAdminAccessDenied:       http.StatusForbidden,
	service.ErrGameNotFound:            http.StatusNotFound,
	service.ErrCheatNotFound:           http.StatusNotFound,
	service.ErrUserAlreadyExists:       http.StatusConflict,
	service.ErrTooManyLoginAttempts:    http.StatusTooManyRequests,
	service.ErrTooManyRegisterAttempts: http.StatusTooManyRequests,

	ErrCSRFTokenMismatch: http.StatusForbidden,
	ErrTooManyDownloads:  http.StatusTooManyRequests,

	store.ErrStorageClosed:      http.StatusServiceUnavailable,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrEncodingValue:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers with the status mapped from err. Client errors
// carry the error text; server errors only the status text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	utils.WriteError(w, err.Error(), status)
}
