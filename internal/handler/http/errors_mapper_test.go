// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/legal-dms/internal/service"
	"github.com/MKhiriev/legal-dms/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", fmt.Errorf("%w: username: cannot be blank", service.ErrValidation), http.StatusBadRequest, CodeValidationError},
		{"invalid json", fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON), http.StatusBadRequest, CodeInvalidJSON},
		{"duplicate username", fmt.Errorf("%w: %w", service.ErrDuplicateIdentity, store.ErrUsernameAlreadyExists), http.StatusConflict, CodeDuplicateIdentity},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials},
		{"missing token", service.ErrMissingToken, http.StatusUnauthorized, CodeMissingToken},
		{"empty bearer", ErrEmptyToken, http.StatusUnauthorized, CodeMissingToken},
		{"malformed header", ErrInvalidAuthorizationHeader, http.StatusUnauthorized, CodeTokenInvalid},
		{"expired", fmt.Errorf("%w: exp", service.ErrTokenExpired), http.StatusUnauthorized, CodeTokenExpired},
		{"invalid token", fmt.Errorf("%w: signature", service.ErrTokenInvalid), http.StatusUnauthorized, CodeTokenInvalid},
		{"not authenticated", service.ErrNotAuthenticated, http.StatusUnauthorized, CodeNotAuthenticated},
		{"forbidden", fmt.Errorf("%w: required delete", service.ErrInsufficientPermission), http.StatusForbidden, CodeInsufficientPermissions},
		{"admin exists", service.ErrAdminAlreadyExists, http.StatusConflict, CodeAdminExists},
		{"demo exists", service.ErrDemoUserAlreadyExists, http.StatusConflict, CodeDemoUserExists},
		{"document not found", service.ErrDocumentNotFound, http.StatusNotFound, CodeDocumentNotFound},
		{"route not found", ErrRouteNotFound, http.StatusNotFound, CodeRouteNotFound},
		{"store unavailable", fmt.Errorf("%w: dial tcp", service.ErrStoreUnavailable), http.StatusServiceUnavailable, CodeStoreUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestMessageFromError_HidesServerErrors(t *testing.T) {
	err := fmt.Errorf("%w: dial tcp 10.0.0.5:5432: connection refused", service.ErrStoreUnavailable)

	assert.Equal(t, "Service Unavailable", messageFromError(err, http.StatusServiceUnavailable))
	assert.Equal(t, "invalid credentials", messageFromError(service.ErrInvalidCredentials, http.StatusUnauthorized))
}
