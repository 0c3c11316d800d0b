// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DocumentCategory classifies a legal document.
type DocumentCategory string

const (
	CategoryContract       DocumentCategory = "contract"
	CategoryLegalBrief     DocumentCategory = "legal-brief"
	CategoryCourtFiling    DocumentCategory = "court-filing"
	CategoryCorrespondence DocumentCategory = "correspondence"
	CategoryResearch       DocumentCategory = "research"
	CategoryGeneral        DocumentCategory = "general"
)

// DocumentStatus is the workflow state of a legal document.
type DocumentStatus string

const (
	StatusDraft    DocumentStatus = "draft"
	StatusReview   DocumentStatus = "review"
	StatusApproved DocumentStatus = "approved"
	StatusArchived DocumentStatus = "archived"
)

// MaxDocumentTitleLength is the maximum number of characters in a title.
const MaxDocumentTitleLength = 200

// Document is a legal document record.
// Deleting a document only clears IsActive.
type Document struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Category  DocumentCategory `json:"category"`
	Status    DocumentStatus   `json:"status"`
	CreatedBy string           `json:"created_by"`
	UpdatedBy string           `json:"updated_by"`
	IsActive  bool             `json:"is_active"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}

// DocumentFilter describes the criteria understood by the document store.
type DocumentFilter struct {
	ID       *string
	IsActive *bool
}

// DocumentUpdate is a partial update of a document.
// Only non-nil fields are applied.
type DocumentUpdate struct {
	Title     *string           `json:"title,omitempty"`
	Content   *string           `json:"content,omitempty"`
	Category  *DocumentCategory `json:"category,omitempty"`
	Status    *DocumentStatus   `json:"status,omitempty"`
	IsActive  *bool             `json:"-"`
	UpdatedBy string            `json:"-"`
	UpdatedAt time.Time         `json:"-"`
}

// IsEmpty reports whether the update changes no document field.
func (u DocumentUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Category == nil && u.Status == nil && u.IsActive == nil
}
