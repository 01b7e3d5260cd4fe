// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cheat-catalog/internal/config"
	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
)

// Storages groups the repositories of one profile.
type Storages struct {
	KeyValue    KeyValueStorage
	Users       UserRepository
	Session     SessionRepository
	Games       GameRepository
	Cheats      CheatRepository
	Settings    SettingsRepository
	SecurityLog SecurityLogRepository
}

// NewStorages builds all repositories over kv.
func NewStorages(kv KeyValueStorage, log *logger.Logger) (*Storages, error) {
	seed, err := LoadSeedCatalog()
	if err != nil {
		return nil, err
	}

	return &Storages{
		KeyValue:    kv,
		Users:       NewUserRepository(kv, log),
		Session:     NewSessionRepository(kv, log),
		Games:       NewGameRepository(kv, seed, log),
		Cheats:      NewCheatRepository(kv, seed, log),
		Settings:    NewSettingsRepository(kv, log),
		SecurityLog: NewSecurityLogRepository(kv, log),
	}, nil
}

// Close closes the underlying storage.
func (s *Storages) Close() error {
	return s.KeyValue.Close()
}

// NewKeyValueStorage opens the backend selected by cfg.DSN and applies
// migrations to SQL backends:
//   - "memory" or ":memory:" → process-local map
//   - postgres:// or postgresql:// → PostgreSQL
//   - anything else → SQLite file
func NewKeyValueStorage(ctx context.Context, cfg config.DB, log *logger.Logger) (KeyValueStorage, error) {
	dsn := strings.TrimSpace(cfg.DSN)

	var (
		db  *DB
		err error
	)
	switch {
	case dsn == "":
		return nil, ErrUnsupportedDSN
	case dsn == "memory" || dsn == ":memory:":
		log.Debug().Str("func", "NewKeyValueStorage").Msg("using in-memory storage")
		return NewMemoryStorage(), nil
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, cfg, log)
	default:
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		log.Err(err).Str("func", "NewKeyValueStorage").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return NewSQLStorage(db), nil
}
