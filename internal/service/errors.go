// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/legal-dms/internal/store"
)

// Errors surfaced by the auth and document services. Callers match them
// with [errors.Is]; the HTTP layer maps each to a status and a machine code.
var (
	// ErrValidation wraps missing or malformed input.
	ErrValidation = errors.New("validation error")

	// ErrDuplicateIdentity wraps [store.ErrUsernameAlreadyExists] and/or
	// [store.ErrEmailAlreadyExists], telling which identity conflicted.
	ErrDuplicateIdentity = errors.New("duplicate identity")

	// ErrInvalidCredentials is returned for an unknown or inactive user and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMissingToken  = errors.New("access token required")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenCreation = errors.New("token creation failed")

	ErrNotAuthenticated       = errors.New("authentication required")
	ErrInsufficientPermission = errors.New("insufficient permissions")

	// ErrStoreUnavailable is returned when the record store cannot serve the
	// request. It is not retried here.
	ErrStoreUnavailable = errors.New("store unavailable")

	ErrAdminAlreadyExists    = errors.New("admin user already exists")
	ErrDemoUserAlreadyExists = errors.New("demo user already exists")
	ErrDocumentNotFound      = errors.New("document not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// errUserNotFound is internal to the credential lookup.
	errUserNotFound = errors.New("user not found")
)

// mapStoreError translates a record store error into a service error.
// Unknown failures are reported as [ErrStoreUnavailable].
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrUsernameAlreadyExists), errors.Is(err, store.ErrEmailAlreadyExists):
		return fmt.Errorf("%w: %w", ErrDuplicateIdentity, err)
	case errors.Is(err, store.ErrAdminAlreadyExists):
		return ErrAdminAlreadyExists
	case errors.Is(err, store.ErrDocumentNotFound):
		return ErrDocumentNotFound
	default:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}
