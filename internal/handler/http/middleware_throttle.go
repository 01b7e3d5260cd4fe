// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"golang.org/x/time/rate"
)

const (
	clientIdleTTL   = 10 * time.Minute
	clientSweepSize = 1024
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter keeps one token bucket per client address. Buckets idle for
// clientIdleTTL are swept once the table grows past clientSweepSize.
type clientLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

func newClientLimiter(perSecond float64, burst int) *clientLimiter {
	return &clientLimiter{
		clients: make(map[string]*clientBucket),
		limit:   rate.Limit(perSecond),
		burst:   burst,
		now:     time.Now,
	}
}

func (c *clientLimiter) allow(client string) bool {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.clients) > clientSweepSize {
		for key, b := range c.clients {
			if now.Sub(b.lastSeen) > clientIdleTTL {
				delete(c.clients, key)
			}
		}
	}

	b, ok := c.clients[client]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(c.limit, c.burst)}
		c.clients[client] = b
	}
	b.lastSeen = now

	return b.limiter.AllowN(now, 1)
}

func (h *Handler) throttleDownloads(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientAddress(r)
		if !h.downloads.allow(client) {
			logger.FromRequest(r).Warn().Str("client", client).Msg("download throttled")
			w.Header().Set("Retry-After", "1")
			writeServiceError(w, r, ErrTooManyDownloads)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
