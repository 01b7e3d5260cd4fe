// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit implements the fixed-window attempt limiter guarding
// login and registration.
//
// Windows are fixed, not sliding: a caller can spend the whole allowance at
// the end of one window and again at the start of the next one.
package ratelimit

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-cheat-catalog/models"
)

// Clock returns the current time.
type Clock func() time.Time

// Limiter counts attempts per key inside fixed windows. Entries are never
// evicted. Safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*models.RateLimitEntry
	now     Clock
}

// Option configures a [Limiter].
type Option func(*Limiter)

// WithClock replaces the wall clock. Used by tests to move time.
func WithClock(clock Clock) Option {
	return func(l *Limiter) {
		l.now = clock
	}
}

func NewLimiter(opts ...Option) *Limiter {
	l := &Limiter{
		entries: make(map[string]*models.RateLimitEntry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow records an attempt for key and reports whether it is permitted.
//
// A missing key, or one whose window has ended, starts a new window with the
// attempt counted. Inside a window attempts are counted up to maxRequests;
// further attempts are denied without being counted.
func (l *Limiter) Allow(key string, maxRequests int, window time.Duration) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok || now.After(entry.ResetAt) {
		l.entries[key] = &models.RateLimitEntry{Count: 1, ResetAt: now.Add(window)}
		return true
	}

	if entry.Count >= maxRequests {
		return false
	}

	entry.Count++
	return true
}

// Entry returns a copy of the state held for key.
func (l *Limiter) Entry(key string) (models.RateLimitEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok {
		return models.RateLimitEntry{}, false
	}
	return *entry, true
}
