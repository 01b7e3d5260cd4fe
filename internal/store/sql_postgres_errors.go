// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the retrying storage whether a failed call may
// succeed when repeated.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify retries failures that happened before the server saw the
// statement, plus the server-side classes listed in [ClassifyPgError].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	if pgconn.SafeToRetry(err) {
		return Retryable
	}
	return NonRetryable
}

// ClassifyPgError retries connection exceptions (class 08), transaction
// rollbacks such as serialization failures and deadlocks (class 40),
// insufficient resources except a full disk (class 53) and operator
// intervention except a cancelled query (class 57). Everything else, notably
// constraint violations and schema errors, is final.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code):
		return Retryable
	case pgerrcode.IsInsufficientResources(code):
		if code == pgerrcode.DiskFull {
			return NonRetryable
		}
		return Retryable
	case pgerrcode.IsOperatorIntervention(code):
		if code == pgerrcode.QueryCanceled {
			return NonRetryable
		}
		return Retryable
	default:
		return NonRetryable
	}
}
