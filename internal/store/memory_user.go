// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/MKhiriev/legal-dms/models"
)

// memoryUserRepository is an in-process [UserRepository].
// A single mutex makes the uniqueness checks and the insert atomic.
type memoryUserRepository struct {
	mu         sync.RWMutex
	users      map[string]models.User
	byUsername map[string]string
	byEmail    map[string]string
	adminID    string
}

// NewMemoryUserRepository returns an empty in-memory [UserRepository].
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users:      make(map[string]models.User),
		byUsername: make(map[string]string),
		byEmail:    make(map[string]string),
	}
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[user.Username]; ok {
		return models.User{}, ErrUsernameAlreadyExists
	}
	if _, ok := r.byEmail[user.Email]; ok {
		return models.User{}, ErrEmailAlreadyExists
	}
	if user.Role == models.RoleAdmin && r.adminID != "" {
		return models.User{}, ErrAdminAlreadyExists
	}

	stored := cloneUser(user)
	r.users[user.UserID] = stored
	r.byUsername[user.Username] = user.UserID
	r.byEmail[user.Email] = user.UserID
	if user.Role == models.RoleAdmin {
		r.adminID = user.UserID
	}

	return cloneUser(stored), nil
}

func (r *memoryUserRepository) FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make([]models.User, 0)
	for _, user := range r.users {
		if matchesUserFilter(user, filter) {
			found = append(found, cloneUser(user))
		}
	}

	if filter.NewestFirst {
		sort.Slice(found, func(i, j int) bool {
			if found[i].CreatedAt.Equal(found[j].CreatedAt) {
				return found[i].UserID > found[j].UserID
			}
			return found[i].CreatedAt.After(found[j].CreatedAt)
		})
	}

	return found, nil
}

func (r *memoryUserRepository) UpdateUser(ctx context.Context, userID string, patch models.UserPatch) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return ErrNoUserWasFound
	}

	if patch.PasswordHash != nil {
		user.PasswordHash = *patch.PasswordHash
	}
	if patch.LastLogin != nil {
		t := *patch.LastLogin
		user.LastLogin = &t
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}

	r.users[userID] = user
	return nil
}

func (r *memoryUserRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

func matchesUserFilter(user models.User, filter models.UserFilter) bool {
	switch {
	case filter.UserID != nil && user.UserID != *filter.UserID:
		return false
	case filter.Username != nil && user.Username != *filter.Username:
		return false
	case filter.Email != nil && user.Email != *filter.Email:
		return false
	case filter.Role != nil && user.Role != *filter.Role:
		return false
	case filter.IsActive != nil && user.IsActive != *filter.IsActive:
		return false
	}
	return true
}

func cloneUser(user models.User) models.User {
	if user.LastLogin != nil {
		t := *user.LastLogin
		user.LastLogin = &t
	}
	return user
}
