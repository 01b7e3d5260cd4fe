// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-cheat-catalog/internal/audit"
	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/store"
)

func newTestSecurityLog(storages *store.Storages) *audit.Log {
	return audit.NewLog(storages.SecurityLog, logger.Nop())
}

func ptr[T any](v T) *T {
	return &v
}
