// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/legal-dms/internal/store"
	"github.com/MKhiriev/legal-dms/models"
)

// credentialStore adapts a [store.UserRepository] to the lookups needed by
// the auth flows. Uniqueness is left to the repository, which enforces it
// with store-level constraints.
type credentialStore struct {
	users store.UserRepository
}

// NewCredentialStore returns a CredentialStore backed by users.
func NewCredentialStore(users store.UserRepository) CredentialStore {
	return &credentialStore{users: users}
}

// FindByUsernameOrEmail looks up identifier as a username first and as an
// email second, so a username match always wins.
// It returns errUserNotFound when neither matches.
func (c *credentialStore) FindByUsernameOrEmail(ctx context.Context, identifier string, activeOnly bool) (models.User, error) {
	if identifier == "" {
		return models.User{}, errUserNotFound
	}

	byUsername := models.UserFilter{Username: &identifier}
	byEmail := models.UserFilter{Email: &identifier}
	if activeOnly {
		active := true
		byUsername.IsActive = &active
		byEmail.IsActive = &active
	}

	for _, filter := range []models.UserFilter{byUsername, byEmail} {
		users, err := c.users.FindUsers(ctx, filter)
		if err != nil {
			return models.User{}, mapStoreError(err)
		}
		if len(users) > 0 {
			return users[0], nil
		}
	}

	return models.User{}, errUserNotFound
}

// Create checks username and email independently so the caller learns
// which identity is taken; both conflicts are reported when both clash.
// The repository's unique constraints still decide concurrent races.
func (c *credentialStore) Create(ctx context.Context, user models.User) (models.User, error) {
	var conflicts []error
	for _, check := range []struct {
		filter models.UserFilter
		err    error
	}{
		{models.UserFilter{Username: &user.Username}, store.ErrUsernameAlreadyExists},
		{models.UserFilter{Email: &user.Email}, store.ErrEmailAlreadyExists},
	} {
		found, err := c.users.FindUsers(ctx, check.filter)
		if err != nil {
			return models.User{}, mapStoreError(err)
		}
		if len(found) > 0 {
			conflicts = append(conflicts, check.err)
		}
	}
	if len(conflicts) > 0 {
		return models.User{}, fmt.Errorf("%w: %w", ErrDuplicateIdentity, errors.Join(conflicts...))
	}

	created, err := c.users.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, mapStoreError(err)
	}
	return created, nil
}

// TouchLastLogin sets the last login time of userID and leaves every other
// field as stored.
func (c *credentialStore) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	err := c.users.UpdateUser(ctx, userID, models.UserPatch{LastLogin: &at})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNoUserWasFound):
		return fmt.Errorf("%w: %w", errUserNotFound, err)
	default:
		return mapStoreError(err)
	}
}

func (c *credentialStore) ListActive(ctx context.Context) ([]models.User, error) {
	active := true
	users, err := c.users.FindUsers(ctx, models.UserFilter{IsActive: &active, NewestFirst: true})
	if err != nil {
		return nil, mapStoreError(err)
	}
	return users, nil
}

func (c *credentialStore) AdminExists(ctx context.Context) (bool, error) {
	role := models.RoleAdmin
	users, err := c.users.FindUsers(ctx, models.UserFilter{Role: &role})
	if err != nil {
		return false, mapStoreError(err)
	}
	return len(users) > 0, nil
}
