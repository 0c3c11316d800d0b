// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/MKhiriev/legal-dms/models"
)

var (
	allowedCategories = []any{
		models.CategoryContract,
		models.CategoryLegalBrief,
		models.CategoryCourtFiling,
		models.CategoryCorrespondence,
		models.CategoryResearch,
		models.CategoryGeneral,
	}

	allowedStatuses = []any{
		models.StatusDraft,
		models.StatusReview,
		models.StatusApproved,
		models.StatusArchived,
	}
)

// DocumentValidator validates documents on creation and document updates.
// Field scoping is not supported; every rule applies.
type DocumentValidator struct{}

// NewDocumentValidator constructs a DocumentValidator and returns it as the
// Validator interface.
func NewDocumentValidator() Validator {
	return &DocumentValidator{}
}

// Validate accepts [models.Document] and [models.DocumentUpdate], by value
// or pointer.
func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if len(fields) > 0 {
		return ErrUnknownField
	}

	switch value := obj.(type) {
	case models.Document:
		return v.validateDocument(value)
	case *models.Document:
		return v.validateDocument(*value)
	case models.DocumentUpdate:
		return v.validateDocumentUpdate(value)
	case *models.DocumentUpdate:
		return v.validateDocumentUpdate(*value)
	default:
		return ErrUnsupportedType
	}
}

// validateDocument checks a new document. Empty category and status are
// allowed; the service fills in their defaults.
func (v *DocumentValidator) validateDocument(d models.Document) error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required, validation.RuneLength(1, models.MaxDocumentTitleLength)),
		validation.Field(&d.Content, validation.Required),
		validation.Field(&d.Category, validation.In(allowedCategories...)),
		validation.Field(&d.Status, validation.In(allowedStatuses...)),
	)
}

// validateDocumentUpdate checks the provided fields of a partial update.
func (v *DocumentValidator) validateDocumentUpdate(u models.DocumentUpdate) error {
	if u.Title == nil && u.Content == nil && u.Category == nil && u.Status == nil {
		return ErrNoFieldsToUpdate
	}

	return validation.ValidateStruct(&u,
		validation.Field(&u.Title, validation.NilOrNotEmpty, validation.RuneLength(1, models.MaxDocumentTitleLength)),
		validation.Field(&u.Content, validation.NilOrNotEmpty),
		validation.Field(&u.Category, validation.NilOrNotEmpty, validation.In(allowedCategories...)),
		validation.Field(&u.Status, validation.NilOrNotEmpty, validation.In(allowedStatuses...)),
	)
}
