// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/legal-dms/internal/service"
)

// Machine-readable error codes returned in the Code field of the response.
const (
	CodeValidationError         = "VALIDATION_ERROR"
	CodeInvalidJSON             = "INVALID_JSON"
	CodeDuplicateIdentity       = "DUPLICATE_IDENTITY"
	CodeInvalidCredentials      = "INVALID_CREDENTIALS"
	CodeMissingToken            = "MISSING_TOKEN"
	CodeTokenInvalid            = "TOKEN_INVALID"
	CodeTokenExpired            = "TOKEN_EXPIRED"
	CodeNotAuthenticated        = "NOT_AUTHENTICATED"
	CodeInsufficientPermissions = "INSUFFICIENT_PERMISSIONS"
	CodeAdminExists             = "ADMIN_EXISTS"
	CodeDemoUserExists          = "DEMO_USER_EXISTS"
	CodeDocumentNotFound        = "DOCUMENT_NOT_FOUND"
	CodeRouteNotFound           = "NOT_FOUND"
	CodeStoreUnavailable        = "STORE_UNAVAILABLE"
	CodeInternalError           = "INTERNAL_ERROR"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// errorMappings is checked in order; the first target matched by
// [errors.Is] wins.
var errorMappings = []errorMapping{
	{service.ErrValidation, http.StatusBadRequest, CodeValidationError},
	{ErrInvalidJSON, http.StatusBadRequest, CodeInvalidJSON},
	{service.ErrDuplicateIdentity, http.StatusConflict, CodeDuplicateIdentity},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials},
	{service.ErrMissingToken, http.StatusUnauthorized, CodeMissingToken},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, CodeTokenInvalid},
	{ErrEmptyToken, http.StatusUnauthorized, CodeMissingToken},
	{service.ErrTokenExpired, http.StatusUnauthorized, CodeTokenExpired},
	{service.ErrTokenInvalid, http.StatusUnauthorized, CodeTokenInvalid},
	{service.ErrNotAuthenticated, http.StatusUnauthorized, CodeNotAuthenticated},
	{service.ErrInsufficientPermission, http.StatusForbidden, CodeInsufficientPermissions},
	{service.ErrAdminAlreadyExists, http.StatusConflict, CodeAdminExists},
	{service.ErrDemoUserAlreadyExists, http.StatusConflict, CodeDemoUserExists},
	{service.ErrDocumentNotFound, http.StatusNotFound, CodeDocumentNotFound},
	{ErrRouteNotFound, http.StatusNotFound, CodeRouteNotFound},
	{service.ErrStoreUnavailable, http.StatusServiceUnavailable, CodeStoreUnavailable},
}

// statusFromError returns the HTTP status and machine code for err.
// Unknown errors are internal errors.
func statusFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, CodeInternalError
}

// messageFromError returns the client-facing message for err.
// Server-side failures never expose their cause.
func messageFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
