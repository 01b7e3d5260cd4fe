// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/models"
)

type securityLogRepository struct {
	doc jsonDocument[[]models.SecurityLogEntry]
}

// NewSecurityLogRepository returns a [SecurityLogRepository] stored under
// [KeySecurityLog].
func NewSecurityLogRepository(kv KeyValueStorage, log *logger.Logger) SecurityLogRepository {
	return &securityLogRepository{doc: jsonDocument[[]models.SecurityLogEntry]{kv: kv, key: KeySecurityLog, logger: log}}
}

func (r *securityLogRepository) Entries(ctx context.Context) []models.SecurityLogEntry {
	entries, ok := r.doc.read(ctx)
	if !ok || entries == nil {
		return []models.SecurityLogEntry{}
	}
	return entries
}

func (r *securityLogRepository) SaveEntries(ctx context.Context, entries []models.SecurityLogEntry) error {
	if entries == nil {
		entries = []models.SecurityLogEntry{}
	}
	return r.doc.write(ctx, entries)
}
