// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/legal-dms/models"
)

func TestContextKey_String(t *testing.T) {
	if ClaimsCtxKey.String() != "claims" {
		t.Errorf("expected 'claims', got '%s'", ClaimsCtxKey.String())
	}
}

func TestGetClaimsFromContext_Found(t *testing.T) {
	claims := models.Claims{UserID: "u-1", Username: "alice", Email: "alice@example.com", Role: models.RoleUser}
	ctx := WithClaims(context.Background(), claims)

	got, ok := GetClaimsFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true")
	}
	if got.UserID != "u-1" || got.Username != "alice" || got.Role != models.RoleUser {
		t.Errorf("unexpected claims %+v", got)
	}
}

func TestGetClaimsFromContext_NotFound(t *testing.T) {
	_, ok := GetClaimsFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetClaimsFromContext_PlainStringKeyIgnored(t *testing.T) {
	//nolint:staticcheck // deliberately using a string key to check isolation
	ctx := context.WithValue(context.Background(), "claims", models.Claims{UserID: "u-1"})

	if _, ok := GetClaimsFromContext(ctx); ok {
		t.Error("expected ok=false when value is stored under a plain string key")
	}
}
