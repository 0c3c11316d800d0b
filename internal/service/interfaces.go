// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/legal-dms/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, logs them in, verifies bearer tokens and
// decides whether a caller may perform an action.
type AuthService interface {
	// Register creates a user with role user and returns its public view.
	Register(ctx context.Context, credentials models.Credentials) (models.PublicUser, error)

	// Login checks the credentials of an active user, records the login time
	// and issues a bearer token. Username may hold either a username or an email.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error)

	// Authenticate verifies a bearer token and returns its claims.
	Authenticate(ctx context.Context, token string) (models.Claims, error)

	// Authorize checks claims against action. Every decision is handed to the
	// audit sink; sink failures never change the result.
	Authorize(ctx context.Context, claims *models.Claims, action models.Action, access models.Access) error

	// ListActiveUsers returns active users, newest first.
	ListActiveUsers(ctx context.Context) ([]models.PublicUser, error)

	// ProvisionAdmin creates the single admin account.
	ProvisionAdmin(ctx context.Context, credentials models.Credentials) (models.PublicUser, error)

	// ProvisionDemoUser creates the demo account with the given password.
	ProvisionDemoUser(ctx context.Context, password string) (models.PublicUser, error)
}

// DocumentService manages legal documents on behalf of an authenticated user.
type DocumentService interface {
	ListDocuments(ctx context.Context) ([]models.Document, error)
	GetDocument(ctx context.Context, documentID string) (models.Document, error)
	CreateDocument(ctx context.Context, document models.Document, author string) (models.Document, error)
	UpdateDocument(ctx context.Context, documentID string, update models.DocumentUpdate, author string) (models.Document, error)
	DeleteDocument(ctx context.Context, documentID string, author string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CredentialStore is the user lookup and persistence contract used by the
// auth flows.
type CredentialStore interface {
	// FindByUsernameOrEmail returns the user whose username equals identifier,
	// or else the user whose email does. With activeOnly, inactive users are
	// ignored.
	FindByUsernameOrEmail(ctx context.Context, identifier string, activeOnly bool) (models.User, error)

	// Create stores a new user; a taken username or email yields [ErrDuplicateIdentity].
	Create(ctx context.Context, user models.User) (models.User, error)

	// TouchLastLogin records a successful login of userID at the given time.
	// No other field of the user is written.
	TouchLastLogin(ctx context.Context, userID string, at time.Time) error

	// ListActive returns active users, newest first.
	ListActive(ctx context.Context) ([]models.User, error)

	// AdminExists reports whether any user holds the admin role.
	AdminExists(ctx context.Context) (bool, error)
}

// PasswordHasher hashes passwords one-way and verifies them in constant time.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenService issues and verifies signed, time-limited bearer tokens.
type TokenService interface {
	Issue(claims models.Claims, ttl time.Duration) (models.Token, error)
	Verify(token string) (models.Claims, error)
}

// PermissionRegistry answers whether a role may perform an action.
type PermissionRegistry interface {
	IsAllowed(role models.Role, action models.Action) bool
}

// IDGenerator produces unique record identifiers.
type IDGenerator interface {
	Generate() string
}
