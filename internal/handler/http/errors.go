// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrCSRFTokenMismatch is returned when the X-CSRF-Token header is
	// missing or does not match the csrf_token cookie.
	ErrCSRFTokenMismatch = errors.New("csrf token missing or invalid")

	// ErrTooManyDownloads is returned when a client exceeds its download
	// counter budget.
	ErrTooManyDownloads = errors.New("too many download requests")
)
