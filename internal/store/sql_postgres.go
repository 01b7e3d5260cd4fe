// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-cheat-catalog/internal/config"
	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/migrations"
)

// NewConnectPostgres opens a PostgreSQL profile through the pgx
// database/sql driver.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	return openDB(ctx, dbProfile{
		name:       "postgres",
		driver:     "pgx",
		dsn:        cfg.DSN,
		dialect:    migrations.DialectPostgres,
		maxOpen:    10,
		maxIdle:    4,
		classifier: NewPostgresErrorClassifier(),
	}, log)
}
