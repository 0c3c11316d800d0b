// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/legal-dms/internal/logger"
	"github.com/MKhiriev/legal-dms/migrations"
)

// DB wraps a database/sql connection pool together with the dialect-specific
// pieces every repository needs: an error classifier, a query builder with
// the right placeholder format, and the goose dialect for migrations.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	builder            sq.StatementBuilderType
	dialect            string
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Ping reports whether the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// translateError converts a driver error into a domain error.
//
// Unique violations become the matching Err*AlreadyExists value, connection
// and transient failures are wrapped in [ErrStoreUnavailable], and anything
// else is wrapped in fallback.
func (db *DB) translateError(err error, fallback error) error {
	if constraint, ok := db.errorClassificator.UniqueViolation(err); ok {
		if domainErr, known := uniqueViolationErrors[constraint]; known {
			return domainErr
		}
	}

	if isConnectionError(err) || db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}

func isConnectionError(err error) bool {
	return errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded)
}
