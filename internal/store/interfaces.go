// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/legal-dms/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user records.
//
// Implementations must enforce username and email uniqueness atomically:
// of two concurrent CreateUser calls with the same username, exactly one
// succeeds. At most one user may hold [models.RoleAdmin].
type UserRepository interface {
	// CreateUser stores a new user. It returns [ErrUsernameAlreadyExists],
	// [ErrEmailAlreadyExists] or [ErrAdminAlreadyExists] on conflicts.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUsers returns every user matching filter. An empty result is not an error.
	FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)

	// UpdateUser applies patch to the user with the given id.
	// It returns [ErrNoUserWasFound] when no such user exists.
	UpdateUser(ctx context.Context, userID string, patch models.UserPatch) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// DocumentRepository persists legal documents.
type DocumentRepository interface {
	CreateDocument(ctx context.Context, document models.Document) (models.Document, error)
	FindDocuments(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error)

	// UpdateDocument applies update to the document with the given id.
	// It returns [ErrDocumentNotFound] when no such document exists.
	UpdateDocument(ctx context.Context, documentID string, update models.DocumentUpdate) error
}

// ErrorClassificator inspects driver errors for a specific SQL backend.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// UniqueViolation returns the name of the violated unique constraint,
	// or false when err is not a unique violation.
	UniqueViolation(err error) (string, bool)
}
