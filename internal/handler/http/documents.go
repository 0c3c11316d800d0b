// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/legal-dms/internal/app"
	"github.com/MKhiriev/legal-dms/internal/logger"
	"github.com/MKhiriev/legal-dms/internal/utils"
	"github.com/MKhiriev/legal-dms/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	documents, err := h.services.DocumentService.ListDocuments(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.Response{
		Success:   true,
		Documents: documents,
		Count:     count(len(documents)),
	}, http.StatusOK)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	document, err := h.services.DocumentService.GetDocument(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.Response{Success: true, Document: &document}, http.StatusOK)
}

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	var document models.Document
	if err := decodeJSON(w, r, &document, false); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.DocumentService.CreateDocument(r.Context(), document, authorOf(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("document_id", created.ID).Msg("document created")
	writeResponse(w, r, models.Response{
		Success:  true,
		Message:  app.MsgDocumentCreated,
		Document: &created,
	}, http.StatusCreated)
}

func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	var update models.DocumentUpdate
	if err := decodeJSON(w, r, &update, false); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.DocumentService.UpdateDocument(r.Context(), chi.URLParam(r, "id"), update, authorOf(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.Response{
		Success:  true,
		Message:  app.MsgDocumentUpdated,
		Document: &updated,
	}, http.StatusOK)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "id")
	if err := h.services.DocumentService.DeleteDocument(r.Context(), documentID, authorOf(r)); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("document_id", documentID).Msg("document deleted")
	writeResponse(w, r, models.Response{Success: true, Message: app.MsgDocumentDeleted}, http.StatusOK)
}

// authorOf returns the username of the authenticated caller.
func authorOf(r *http.Request) string {
	claims, _ := utils.GetClaimsFromContext(r.Context())
	return claims.Username
}
