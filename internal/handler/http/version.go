// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	build := h.services.AppInfoService.BuildInfo(r.Context())
	build.Version = h.services.AppInfoService.GetAppVersion(r.Context())

	h.writeJSON(w, r, build, http.StatusOK)
}
