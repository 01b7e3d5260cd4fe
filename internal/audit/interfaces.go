// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package audit records security events to a diagnostic sink and to the
// bounded persisted security log of the profile.
package audit

//go:generate mockgen -source=interfaces.go -destination=../mock/audit_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-cheat-catalog/models"
)

// SecurityLogger records security events. Record never fails: persistence
// problems are reported to the diagnostic sink only.
type SecurityLogger interface {
	Record(ctx context.Context, event string, details map[string]any)
	Entries(ctx context.Context) []models.SecurityLogEntry
}
