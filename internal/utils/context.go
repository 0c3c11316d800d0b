// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, identifier generation, and JWT token generation
// and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/legal-dms/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which verified token claims are stored in
// the request context by the authentication middleware.
var ClaimsCtxKey = contextKey("claims")

// WithClaims returns a copy of ctx carrying the verified claims.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves the verified claims from the context.
//
// ok is false when the request was not authenticated.
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}
