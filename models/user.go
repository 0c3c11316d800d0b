// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique stable identifier assigned at creation.
	UserID string `json:"id"`

	// Username is unique across all users, active or not.
	Username string `json:"username"`

	// Email is unique across all users, active or not.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized; use [User.Public] for outbound views.
	PasswordHash string `json:"-"`

	// Role determines the permission set of the user.
	Role Role `json:"role"`

	// IsActive reports whether the user may authenticate.
	IsActive bool `json:"is_active"`

	// LastLogin is updated on every successful login.
	// Nil until the first login.
	LastLogin *time.Time `json:"last_login,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the outbound view of the user without credential data.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUser is the user representation returned to API clients.
// It deliberately has no password field.
type PublicUser struct {
	UserID    string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// UserFilter describes the criteria understood by the user record store.
// Nil fields are not filtered on; all non-nil fields are combined with AND.
type UserFilter struct {
	UserID   *string
	Username *string
	Email    *string
	Role     *Role
	IsActive *bool

	// NewestFirst orders results by creation time, descending.
	NewestFirst bool
}

// UserPatch carries the in-place mutations supported by the record store.
// Nil fields are left unchanged.
type UserPatch struct {
	PasswordHash *string
	LastLogin    *time.Time
	IsActive     *bool
}

// IsEmpty reports whether the patch would change nothing.
func (p UserPatch) IsEmpty() bool {
	return p.PasswordHash == nil && p.LastLogin == nil && p.IsActive == nil
}

// Credentials is the payload accepted by registration, login and provisioning.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
