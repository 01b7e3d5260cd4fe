// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/migrations"
)

// DB wraps a database handle together with its goose dialect and the error
// classifier used by the retrying storage.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// dbProfile describes how one backend is opened.
type dbProfile struct {
	name       string // for logs
	driver     string
	dsn        string
	dialect    string
	maxOpen    int
	maxIdle    int
	classifier ErrorClassificator
}

// openDB opens and pings the profile database. The handle is closed again
// when the ping fails.
func openDB(ctx context.Context, p dbProfile, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(p.driver, p.dsn)
	if err != nil {
		log.Err(err).Str("backend", p.name).Msg("error opening profile database")
		return nil, fmt.Errorf("error opening %s profile: %w", p.name, err)
	}

	conn.SetMaxOpenConns(p.maxOpen)
	if p.maxIdle > 0 {
		conn.SetMaxIdleConns(p.maxIdle)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("backend", p.name).Msg("error connecting profile database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting %s profile: %w", p.name, err)
	}
	log.Info().Str("backend", p.name).Msg("profile database connected")

	return &DB{
		DB:                 conn,
		dialect:            p.dialect,
		errorClassificator: p.classifier,
		logger:             log,
	}, nil
}
