// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/legal-dms/internal/logger"
	"github.com/MKhiriev/legal-dms/models"
)

// documentRepository is the SQL implementation of [DocumentRepository].
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] backed by db.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *documentRepository) CreateDocument(ctx context.Context, document models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertDocumentQuery(r.builder, document)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.CreateDocument").Msg("failed to build query")
		return models.Document{}, err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*documentRepository.CreateDocument").
			Str("document_id", document.ID).
			Msg("failed to insert document")
		return models.Document{}, r.translateError(err, ErrExecutingStatement)
	}

	return document, nil
}

// FindDocuments returns the documents matching filter, newest first.
func (r *documentRepository) FindDocuments(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindDocumentsQuery(r.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.FindDocuments").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.FindDocuments").Msg("failed to execute query for finding documents")
		return nil, r.translateError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	documents := make([]models.Document, 0)

	for rows.Next() {
		var doc models.Document

		scanErr := rows.Scan(
			&doc.ID,
			&doc.Title,
			&doc.Content,
			&doc.Category,
			&doc.Status,
			&doc.CreatedBy,
			&doc.UpdatedBy,
			&doc.IsActive,
			&doc.CreatedAt,
			&doc.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*documentRepository.FindDocuments").Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		documents = append(documents, doc)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*documentRepository.FindDocuments").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return documents, nil
}

func (r *documentRepository) UpdateDocument(ctx context.Context, documentID string, update models.DocumentUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateDocumentQuery(r.builder, documentID, update)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.UpdateDocument").Str("document_id", documentID).Msg("failed to build query")
		return err
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.UpdateDocument").Str("document_id", documentID).Msg("failed to update document")
		return r.translateError(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}
