// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cheat-catalog/internal/config"
	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/migrations"
)

// ── helpers ───────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newMockStorage(t *testing.T) (*sqlStorage, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{
		DB:                 conn,
		dialect:            migrations.DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
	return &sqlStorage{
		db:          db,
		builder:     statementBuilder(db.dialect),
		now:         func() time.Time { return fixedNow },
		retryDelays: []time.Duration{0, 0},
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var (
	getQuery    = regexp.QuoteMeta(`SELECT entry_value FROM kv_entries WHERE entry_key = $1`)
	upsertQuery = regexp.QuoteMeta(`INSERT INTO kv_entries (entry_key,entry_value,updated_at) VALUES ($1,$2,$3) ON CONFLICT (entry_key)`)
	removeQuery = regexp.QuoteMeta(`DELETE FROM kv_entries WHERE entry_key = $1`)
)

// ── query builders ────────────────────────────────────────────────────────────

func Test_buildQueries_Placeholders(t *testing.T) {
	tests := []struct {
		name        string
		dialect     string
		placeholder string
	}{
		{name: "postgres", dialect: migrations.DialectPostgres, placeholder: "$1"},
		{name: "sqlite", dialect: migrations.DialectSQLite, placeholder: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := statementBuilder(tt.dialect)

			query, args, err := buildGetQuery(b, KeyGames)
			require.NoError(t, err)
			assert.Contains(t, query, "entry_key = "+tt.placeholder)
			assert.Equal(t, []any{KeyGames}, args)

			query, args, err = buildRemoveQuery(b, KeyGames)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(query, "DELETE FROM kv_entries"))
			assert.Equal(t, []any{KeyGames}, args)
		})
	}
}

func Test_buildUpsertQuery(t *testing.T) {
	local := time.Date(2026, 3, 1, 15, 0, 0, 0, time.FixedZone("MSK", 3*3600))

	query, args, err := buildUpsertQuery(statementBuilder(migrations.DialectPostgres), "k", "v", local)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into kv_entries")
	assert.Contains(t, q, "on conflict (entry_key) do update")
	assert.Contains(t, q, "excluded.entry_value")
	require.Len(t, args, 3)
	assert.Equal(t, "k", args[0])
	assert.Equal(t, "v", args[1])
	assert.Equal(t, fixedNow, args[2])
}

// ── sqlStorage with sqlmock ───────────────────────────────────────────────────

func TestSQLStorage_Get(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(getQuery).
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"entry_value"}).AddRow(`{"a":1}`))

	value, found, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"a":1}`, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_Get_NotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(getQuery).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"entry_value"}))

	value, found, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestSQLStorage_Get_Error(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(getQuery).WillReturnError(errors.New("connection reset"))

	_, _, err := s.Get(context.Background(), "k")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLStorage_Set(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec(upsertQuery).
		WithArgs("k", "v", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(context.Background(), "k", "v"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_Set_RetriesTransientErrors(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec(upsertQuery).WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec(upsertQuery).WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectExec(upsertQuery).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(context.Background(), "k", "v"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_Set_GivesUpAfterLastRetry(t *testing.T) {
	s, mock := newMockStorage(t)

	for range 3 {
		mock.ExpectExec(upsertQuery).WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	err := s.Set(context.Background(), "k", "v")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_Set_NonRetryableFailsOnce(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec(upsertQuery).WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := s.Set(context.Background(), "k", "v")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, pgerrcode.UniqueViolation, pgErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_Retry_StopsWhenContextEnds(t *testing.T) {
	s, mock := newMockStorage(t)
	s.retryDelays = []time.Duration{time.Hour}

	mock.ExpectExec(removeQuery).WillReturnError(pgError(pgerrcode.CannotConnectNow))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := s.Remove(ctx, "k")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)
}

func TestSQLStorage_Remove(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec(removeQuery).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Remove(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── classifiers ───────────────────────────────────────────────────────────────

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "too many connections", err: pgError(pgerrcode.TooManyConnections), want: Retryable},
		{name: "admin shutdown", err: pgError(pgerrcode.AdminShutdown), want: Retryable},
		{name: "wrapped connection failure", err: errors.Join(errors.New("ctx"), pgError(pgerrcode.ConnectionFailure)), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "undefined table", err: pgError(pgerrcode.UndefinedTable), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := SQLiteErrorClassifier{}
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("other")))
}

// ── SQLite end to end ─────────────────────────────────────────────────────────

func TestSQLiteStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "profile.db")

	kv, err := NewKeyValueStorage(ctx, config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)

	_, found, err := kv.Get(ctx, KeyGames)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set(ctx, KeyGames, "[]"))
	require.NoError(t, kv.Set(ctx, KeyGames, `[{"id":"9"}]`))

	value, found, err := kv.Get(ctx, KeyGames)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"9"}]`, value)

	require.NoError(t, kv.Remove(ctx, KeyGames))
	require.NoError(t, kv.Remove(ctx, KeyGames))
	_, found, err = kv.Get(ctx, KeyGames)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Close())

	// reopen: data persists across handles
	kv, err = NewKeyValueStorage(ctx, config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer kv.Close()
	require.NoError(t, kv.Set(ctx, KeySession, `{"id":"u1"}`))
	value, _, err = kv.Get(ctx, KeySession)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"u1"}`, value)
}

func TestNewKeyValueStorage_Selection(t *testing.T) {
	ctx := context.Background()

	for _, dsn := range []string{"memory", ":memory:"} {
		kv, err := NewKeyValueStorage(ctx, config.DB{DSN: dsn}, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, &memoryStorage{}, kv)
	}

	_, err := NewKeyValueStorage(ctx, config.DB{DSN: "  "}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}
