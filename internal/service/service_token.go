// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/legal-dms/internal/utils"
	"github.com/MKhiriev/legal-dms/models"
	"github.com/golang-jwt/jwt/v5"
)

// jwtTokenService signs HS256 tokens with a process-wide key.
type jwtTokenService struct {
	signKey string
	issuer  string
	now     func() time.Time
}

// NewTokenService returns a TokenService signing with signKey and stamping
// issuer into every token. now is the clock used both for issuance and for
// expiry checks; nil means time.Now.
func NewTokenService(signKey, issuer string, now func() time.Time) TokenService {
	if now == nil {
		now = time.Now
	}
	return &jwtTokenService{signKey: signKey, issuer: issuer, now: now}
}

// Issue signs claims valid from now until now+ttl.
func (s *jwtTokenService) Issue(claims models.Claims, ttl time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(claims, s.issuer, s.now(), ttl, s.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreation, err)
	}
	return token, nil
}

// Verify checks signature, issuer and timing of token.
// A token is expired once the clock reaches its exp claim.
func (s *jwtTokenService) Verify(token string) (models.Claims, error) {
	if token == "" {
		return models.Claims{}, ErrMissingToken
	}

	parsed, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer, s.now)
	switch {
	case err == nil:
		return parsed.Claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
	default:
		return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
}
