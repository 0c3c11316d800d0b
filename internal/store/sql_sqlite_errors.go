// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// sqliteUniquePrefix starts every SQLite unique-constraint error message.
const sqliteUniquePrefix = "UNIQUE constraint failed: "

// SQLite reports the violated columns rather than the constraint name.
var sqliteUniqueColumns = map[string]string{
	"users.username": constraintUsername,
	"users.email":    constraintEmail,
	"users.role":     constraintSingleAdmin,
}

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Busy and locked databases are
// [Retryable]; everything else is [NonRetryable].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrIoErr, sqlite3.ErrCantOpen:
		return Retryable
	}

	return NonRetryable
}

// UniqueViolation implements [ErrorClassificator]. The constraint name is
// recovered from the column list in the error message.
func (c *SQLiteErrorClassifier) UniqueViolation(err error) (string, bool) {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
		return "", false
	}

	columns := strings.TrimPrefix(sqliteErr.Error(), sqliteUniquePrefix)
	if constraint, ok := sqliteUniqueColumns[columns]; ok {
		return constraint, true
	}

	return columns, true
}
