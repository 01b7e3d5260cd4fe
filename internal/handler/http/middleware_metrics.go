// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// withMetrics records request count, latency and in-flight gauge. Paths are
// labelled with the matched route pattern to keep label cardinality bounded.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		done := h.metrics.RequestStarted()

		mw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(mw, r)

		done(r.Method, routePattern(r), mw.Status())
	})
}
