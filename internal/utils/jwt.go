// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/legal-dms/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT carrying the given
// identity claims.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus ttl
//
// Returns an error if issuer or signKey are empty or ttl is not positive.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(models.NewClaims(user), "legal-dms", time.Now(), 24*time.Hour, "secret")
func GenerateJWTToken(claims models.Claims, issuer string, issuedAt time.Time, ttl time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || ttl <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - HS256 as the only accepted signing method
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence; the token is expired once now >= exp
//   - Issued-at (iat) must not lie in the future
//   - Subject (sub) must equal the userId claim
//
// now supplies the verification time; pass time.Now in production.
//
// Errors wrap the underlying jwt errors, so callers can match
// jwt.ErrTokenExpired with errors.Is.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now func() time.Time) (models.Token, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID == "" || claims.Subject != claims.UserID {
		return models.Token{}, errors.New("token subject does not match user id")
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString}, nil
}
