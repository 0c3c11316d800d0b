// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/legal-dms/internal/logger"
	"github.com/MKhiriev/legal-dms/internal/store"
	"github.com/MKhiriev/legal-dms/internal/utils"
	"github.com/MKhiriev/legal-dms/internal/validators"
	"github.com/MKhiriev/legal-dms/models"
)

type documentService struct {
	documents store.DocumentRepository
	validator validators.Validator
	ids       IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

// NewDocumentService returns a DocumentService over documents.
// Nil ids and now default to UUIDv7 ids and time.Now.
func NewDocumentService(documents store.DocumentRepository, validator validators.Validator, ids IDGenerator, now func() time.Time, logger *logger.Logger) DocumentService {
	if ids == nil {
		ids = utils.NewUUIDGenerator()
	}
	if now == nil {
		now = time.Now
	}
	return &documentService{documents: documents, validator: validator, ids: ids, now: now, logger: logger}
}

// ListDocuments returns active documents, newest first.
func (s *documentService) ListDocuments(ctx context.Context) ([]models.Document, error) {
	active := true
	docs, err := s.documents.FindDocuments(ctx, models.DocumentFilter{IsActive: &active})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "documentService.ListDocuments").Msg("error listing documents")
		return nil, mapStoreError(err)
	}
	return docs, nil
}

// GetDocument returns the active document with documentID or ErrDocumentNotFound.
func (s *documentService) GetDocument(ctx context.Context, documentID string) (models.Document, error) {
	if documentID == "" {
		return models.Document{}, ErrDocumentNotFound
	}

	active := true
	docs, err := s.documents.FindDocuments(ctx, models.DocumentFilter{ID: &documentID, IsActive: &active})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "documentService.GetDocument").Str("document_id", documentID).Msg("error finding document")
		return models.Document{}, mapStoreError(err)
	}
	if len(docs) == 0 {
		return models.Document{}, ErrDocumentNotFound
	}
	return docs[0], nil
}

// CreateDocument stores document authored by author. Empty category and
// status default to general and draft.
func (s *documentService) CreateDocument(ctx context.Context, document models.Document, author string) (models.Document, error) {
	if document.Category == "" {
		document.Category = models.CategoryGeneral
	}
	if document.Status == "" {
		document.Status = models.StatusDraft
	}
	if err := s.validator.Validate(ctx, document); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	now := s.now().UTC()
	document.ID = s.ids.Generate()
	document.CreatedBy = author
	document.UpdatedBy = author
	document.IsActive = true
	document.CreatedAt = now
	document.UpdatedAt = now

	created, err := s.documents.CreateDocument(ctx, document)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "documentService.CreateDocument").Msg("error creating document")
		return models.Document{}, mapStoreError(err)
	}
	return created, nil
}

// UpdateDocument applies the provided fields of update and returns the
// stored result.
func (s *documentService) UpdateDocument(ctx context.Context, documentID string, update models.DocumentUpdate, author string) (models.Document, error) {
	update.IsActive = nil
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if _, err := s.GetDocument(ctx, documentID); err != nil {
		return models.Document{}, err
	}

	update.UpdatedBy = author
	update.UpdatedAt = s.now().UTC()
	if err := s.documents.UpdateDocument(ctx, documentID, update); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "documentService.UpdateDocument").Str("document_id", documentID).Msg("error updating document")
		return models.Document{}, mapStoreError(err)
	}

	return s.GetDocument(ctx, documentID)
}

// DeleteDocument deactivates the document; the record is kept.
func (s *documentService) DeleteDocument(ctx context.Context, documentID string, author string) error {
	if _, err := s.GetDocument(ctx, documentID); err != nil {
		return err
	}

	inactive := false
	update := models.DocumentUpdate{IsActive: &inactive, UpdatedBy: author, UpdatedAt: s.now().UTC()}
	if err := s.documents.UpdateDocument(ctx, documentID, update); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "documentService.DeleteDocument").Str("document_id", documentID).Msg("error deleting document")
		return mapStoreError(err)
	}
	return nil
}
