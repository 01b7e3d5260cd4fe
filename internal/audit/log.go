// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package audit

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/metrics"
	"github.com/MKhiriev/go-cheat-catalog/internal/store"
	"github.com/MKhiriev/go-cheat-catalog/internal/utils"
	"github.com/MKhiriev/go-cheat-catalog/models"
)

// MaxEntries is the capacity of the persisted log. The oldest entries are
// dropped first.
const MaxEntries = 100

// Log is the default [SecurityLogger].
type Log struct {
	repo    store.SecurityLogRepository
	sink    *logger.Logger
	metrics *metrics.Metrics

	now           func() time.Time
	defaultClient models.ClientInfo
	limit         int

	// serialises read-modify-write of the persisted list
	mu sync.Mutex
}

// Option configures a [Log].
type Option func(*Log)

// WithMetrics counts every recorded event on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Log) { l.metrics = m }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// WithDefaultClient sets the client info used when ctx carries none.
func WithDefaultClient(info models.ClientInfo) Option {
	return func(l *Log) { l.defaultClient = info }
}

// NewLog returns a Log persisting to repo and writing diagnostics to sink.
func NewLog(repo store.SecurityLogRepository, sink *logger.Logger, opts ...Option) *Log {
	l := &Log{
		repo:  repo,
		sink:  sink,
		now:   time.Now,
		limit: MaxEntries,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Record stamps the event with the current time and the client info of ctx,
// writes it to the sink and appends it to the persisted log.
func (l *Log) Record(ctx context.Context, event string, details map[string]any) {
	client, ok := utils.GetClientInfoFromContext(ctx)
	if !ok {
		client = l.defaultClient
	}

	entry := models.SecurityLogEntry{
		Timestamp: l.now().UTC(),
		Event:     event,
		Details:   maps.Clone(details),
		UserAgent: client.UserAgent,
		URL:       client.URL,
	}

	l.sink.Warn().
		Str("event", entry.Event).
		Interface("details", entry.Details).
		Str("user_agent", entry.UserAgent).
		Str("url", entry.URL).
		Time("at", entry.Timestamp).
		Msg("security event")

	l.metrics.SecurityEvent(event)

	l.mu.Lock()
	defer l.mu.Unlock()

	entries := append(l.repo.Entries(ctx), entry)
	if len(entries) > l.limit {
		entries = entries[len(entries)-l.limit:]
	}

	if err := l.repo.SaveEntries(ctx, entries); err != nil {
		l.sink.Err(err).Str("event", event).Msg("failed to persist security event")
	}
}

// Entries returns the persisted log, oldest first.
func (l *Log) Entries(ctx context.Context) []models.SecurityLogEntry {
	return l.repo.Entries(ctx)
}
