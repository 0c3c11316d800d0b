// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a user with the same username
	// is already stored.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when a user with the same email
	// is already stored.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrAdminAlreadyExists is returned when storing a second admin user.
	ErrAdminAlreadyExists = errors.New("admin user already exists")

	// ErrNoUserWasFound is returned when an update targets a user that does
	// not exist.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDocumentNotFound is returned when an update targets a document that
	// does not exist.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrStoreUnavailable is returned when the backing store cannot be
	// reached or the failure is transient.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails midway.
	ErrScanningRows = errors.New("failed to scan rows")
)

// Names of the unique constraints declared by the schema migrations.
const (
	constraintUsername    = "users_username_key"
	constraintEmail       = "users_email_key"
	constraintSingleAdmin = "users_single_admin_idx"
)

// uniqueViolationErrors maps a violated constraint to its domain error.
var uniqueViolationErrors = map[string]error{
	constraintUsername:    ErrUsernameAlreadyExists,
	constraintEmail:       ErrEmailAlreadyExists,
	constraintSingleAdmin: ErrAdminAlreadyExists,
}
