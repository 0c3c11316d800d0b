// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmptyPassword is returned when hashing an empty password.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrPasswordTooLong is returned for passwords bcrypt cannot hash
	// (longer than 72 bytes).
	ErrPasswordTooLong = bcrypt.ErrPasswordTooLong
)

// BcryptHasher hashes and verifies passwords with bcrypt.
// Each hash carries its own random salt and cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given work factor.
// Costs outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Verify reports whether password matches hash.
//
// The comparison is delegated to bcrypt, which compares digests in constant
// time. A malformed hash never matches.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
