// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// defaultRetryDelays are the pauses between attempts of a retryable failure.
var defaultRetryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, time.Second}

// sqlStorage implements [KeyValueStorage] on the kv_entries table.
type sqlStorage struct {
	db          *DB
	builder     sq.StatementBuilderType
	now         func() time.Time
	retryDelays []time.Duration
}

// NewSQLStorage returns a [KeyValueStorage] over a migrated database.
func NewSQLStorage(db *DB) KeyValueStorage {
	return &sqlStorage{
		db:          db,
		builder:     statementBuilder(db.dialect),
		now:         time.Now,
		retryDelays: defaultRetryDelays,
	}
}

func (s *sqlStorage) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := buildGetQuery(s.builder, key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	found := true
	err = s.withRetry(ctx, "Get", func() error {
		scanErr := s.db.QueryRowContext(ctx, query, args...).Scan(&value)
		if errors.Is(scanErr, sql.ErrNoRows) {
			found = false
			return nil
		}
		return scanErr
	})
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, found, nil
}

func (s *sqlStorage) Set(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertQuery(s.builder, key, value, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, "Set", func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlStorage) Remove(ctx context.Context, key string) error {
	query, args, err := buildRemoveQuery(s.builder, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, "Remove", func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlStorage) Close() error {
	return s.db.Close()
}

// withRetry runs fn and repeats it after each delay while the classifier
// reports the failure as retryable.
func (s *sqlStorage) withRetry(ctx context.Context, op string, fn func() error) error {
	err := fn()
	for attempt, delay := range s.retryDelays {
		if err == nil || s.db.errorClassificator == nil || s.db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		s.db.logger.Warn().Err(err).
			Str("func", "*sqlStorage."+op).
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Msg("retryable storage error")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(err, ctx.Err())
		case <-timer.C:
		}

		err = fn()
	}

	return err
}
