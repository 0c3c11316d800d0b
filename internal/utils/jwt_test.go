// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/legal-dms/models"
	"github.com/golang-jwt/jwt/v5"
)

var issuedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func aliceClaims() models.Claims {
	return models.Claims{UserID: "u-alice", Username: "alice", Email: "alice@example.com", Role: models.RoleUser}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(aliceClaims(), "test-issuer", issuedAt, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", token.Claims.Issuer)
	}
	if token.Claims.Subject != "u-alice" {
		t.Errorf("expected subject u-alice, got %s", token.Claims.Subject)
	}
	if !token.Claims.ExpiresAtTime().Equal(issuedAt.Add(time.Hour)) {
		t.Errorf("expected exp %v, got %v", issuedAt.Add(time.Hour), token.Claims.ExpiresAtTime())
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Minute, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(aliceClaims(), tt.issuer, issuedAt, tt.duration, tt.key); err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(aliceClaims(), "iss", issuedAt, time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "key", "iss", fixedClock(issuedAt.Add(time.Minute)))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	want := aliceClaims()
	got := parsed.Claims
	if got.UserID != want.UserID || got.Username != want.Username || got.Email != want.Email || got.Role != want.Role {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestValidateAndParseJWTToken_ExpiryBoundary(t *testing.T) {
	ttl := time.Hour
	token, err := GenerateJWTToken(aliceClaims(), "iss", issuedAt, ttl, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(token.SignedString, "key", "iss", fixedClock(issuedAt.Add(ttl-time.Second))); err != nil {
		t.Errorf("expected token valid one second before expiry, got: %v", err)
	}

	for _, at := range []time.Time{issuedAt.Add(ttl), issuedAt.Add(ttl + time.Second)} {
		_, err := ValidateAndParseJWTToken(token.SignedString, "key", "iss", fixedClock(at))
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("at %v: expected ErrTokenExpired, got: %v", at, err)
		}
	}
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	valid, err := GenerateJWTToken(aliceClaims(), "iss", issuedAt, time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, valid.Claims)
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, valid.Claims)
	otherAlg, err := hs512.SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign hs512: %v", err)
	}

	mismatched := valid.Claims
	mismatched.Subject = "someone-else"
	mismatchedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mismatched).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign mismatched: %v", err)
	}

	tampered := valid.SignedString[:len(valid.SignedString)-2] + "xx"

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other-key", "iss"},
		{"wrong issuer", valid.SignedString, "key", "other-iss"},
		{"tampered signature", tampered, "key", "iss"},
		{"alg none", unsigned, "key", "iss"},
		{"alg hs512", otherAlg, "key", "iss"},
		{"subject mismatch", mismatchedToken, "key", "iss"},
		{"garbage", "not.a.jwt", "key", "iss"},
		{"empty", "", "key", "iss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer, fixedClock(issuedAt.Add(time.Minute)))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if errors.Is(err, jwt.ErrTokenExpired) {
				t.Errorf("expected non-expiry error, got: %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_IssuedInFuture(t *testing.T) {
	token, err := GenerateJWTToken(aliceClaims(), "iss", issuedAt, time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = ValidateAndParseJWTToken(token.SignedString, "key", "iss", fixedClock(issuedAt.Add(-time.Minute)))
	if !errors.Is(err, jwt.ErrTokenUsedBeforeIssued) {
		t.Errorf("expected ErrTokenUsedBeforeIssued, got: %v", err)
	}
}
