// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/MKhiriev/legal-dms/models"
)

// memoryDocumentRepository is an in-process [DocumentRepository].
type memoryDocumentRepository struct {
	mu        sync.RWMutex
	documents map[string]models.Document
}

// NewMemoryDocumentRepository returns an empty in-memory [DocumentRepository].
func NewMemoryDocumentRepository() DocumentRepository {
	return &memoryDocumentRepository{documents: make(map[string]models.Document)}
}

func (r *memoryDocumentRepository) CreateDocument(ctx context.Context, document models.Document) (models.Document, error) {
	if err := ctx.Err(); err != nil {
		return models.Document{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.documents[document.ID] = document
	return document, nil
}

func (r *memoryDocumentRepository) FindDocuments(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make([]models.Document, 0)
	for _, doc := range r.documents {
		if filter.ID != nil && doc.ID != *filter.ID {
			continue
		}
		if filter.IsActive != nil && doc.IsActive != *filter.IsActive {
			continue
		}
		found = append(found, doc)
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].CreatedAt.Equal(found[j].CreatedAt) {
			return found[i].ID > found[j].ID
		}
		return found[i].CreatedAt.After(found[j].CreatedAt)
	})

	return found, nil
}

func (r *memoryDocumentRepository) UpdateDocument(ctx context.Context, documentID string, update models.DocumentUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.documents[documentID]
	if !ok {
		return ErrDocumentNotFound
	}

	if update.Title != nil {
		doc.Title = *update.Title
	}
	if update.Content != nil {
		doc.Content = *update.Content
	}
	if update.Category != nil {
		doc.Category = *update.Category
	}
	if update.Status != nil {
		doc.Status = *update.Status
	}
	if update.IsActive != nil {
		doc.IsActive = *update.IsActive
	}
	doc.UpdatedBy = update.UpdatedBy
	doc.UpdatedAt = update.UpdatedAt

	r.documents[documentID] = doc
	return nil
}
