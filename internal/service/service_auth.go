// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/legal-dms/internal/adapter"
	"github.com/MKhiriev/legal-dms/internal/logger"
	"github.com/MKhiriev/legal-dms/internal/store"
	"github.com/MKhiriev/legal-dms/internal/utils"
	"github.com/MKhiriev/legal-dms/internal/validators"
	"github.com/MKhiriev/legal-dms/models"
)

// Identities of the provisioned accounts.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@legaldms.com"
	DemoUsername         = "demo"
	DemoEmail            = "demo@legaldms.com"
)

// dummyPassword is hashed once and verified against when a login names an
// unknown user, so both failure paths cost one bcrypt comparison.
const dummyPassword = "legal-dms-dummy-password"

// authService is the concrete implementation of AuthService.
// It composes the credential store, password hasher, token service and
// permission registry, and hands every authorization decision to an audit
// sink.
type authService struct {
	credentials CredentialStore
	hasher      PasswordHasher
	tokens      TokenService
	permissions PermissionRegistry
	audit       adapter.AuditSink
	validator   validators.Validator
	ids         IDGenerator

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	now func() time.Time

	dummyOnce sync.Once
	dummyHash string

	logger *logger.Logger
}

// AuthDependencies groups the collaborators of [NewAuthService].
// Nil IDs and Now default to UUIDv7 ids and time.Now.
type AuthDependencies struct {
	Credentials   CredentialStore
	Hasher        PasswordHasher
	Tokens        TokenService
	Permissions   PermissionRegistry
	Audit         adapter.AuditSink
	Validator     validators.Validator
	IDs           IDGenerator
	TokenDuration time.Duration
	Now           func() time.Time
}

// NewAuthService constructs an AuthService from deps.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction apart from the lazily computed dummy hash.
func NewAuthService(deps AuthDependencies, logger *logger.Logger) AuthService {
	if deps.IDs == nil {
		deps.IDs = utils.NewUUIDGenerator()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &authService{
		credentials:   deps.Credentials,
		hasher:        deps.Hasher,
		tokens:        deps.Tokens,
		permissions:   deps.Permissions,
		audit:         deps.Audit,
		validator:     deps.Validator,
		ids:           deps.IDs,
		tokenDuration: deps.TokenDuration,
		now:           deps.Now,
		logger:        logger,
	}
}

// Register creates a new account with role user.
//
// Returns the public view of the stored user or:
//   - ErrValidation if a field is missing or malformed.
//   - ErrDuplicateIdentity wrapping store.ErrUsernameAlreadyExists and/or
//     store.ErrEmailAlreadyExists.
//   - ErrStoreUnavailable if the record store fails.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	user, err := a.createUser(ctx, credentials, models.RoleUser)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Str("username", credentials.Username).Msg("user registration failed")
		return models.PublicUser{}, err
	}

	log.Info().Str("username", user.Username).Str("user_id", user.UserID).Msg("new user registered")
	return user.Public(), nil
}

// Login authenticates an active user by username or email.
//
// An unknown user, an inactive user and a wrong password all yield the
// same ErrInvalidCredentials after one bcrypt comparison.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	err := a.validator.Validate(ctx, credentials, validators.FieldIdentifier, validators.FieldPasswordPresent)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	identifier := credentials.Username
	if identifier == "" {
		identifier = credentials.Email
	}

	user, err := a.credentials.FindByUsernameOrEmail(ctx, identifier, true)
	if errors.Is(err, errUserNotFound) {
		a.hasher.Verify(credentials.Password, a.getDummyHash())
		log.Info().Str("identifier", identifier).Msg("login failed: no active user")
		return models.LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user lookup failed")
		return models.LoginResult{}, err
	}

	if !a.hasher.Verify(credentials.Password, user.PasswordHash) {
		log.Info().Str("user_id", user.UserID).Msg("login failed: wrong password")
		return models.LoginResult{}, ErrInvalidCredentials
	}

	now := a.now().UTC()
	if err = a.credentials.TouchLastLogin(ctx, user.UserID, now); err != nil {
		if errors.Is(err, errUserNotFound) {
			return models.LoginResult{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "authService.Login").Str("user_id", user.UserID).Msg("error saving last login")
		return models.LoginResult{}, err
	}
	user.LastLogin = &now

	token, err := a.tokens.Issue(models.NewClaims(user), a.tokenDuration)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("user_id", user.UserID).Msg("error issuing token")
		return models.LoginResult{}, err
	}

	log.Info().Str("user_id", user.UserID).Str("role", string(user.Role)).Msg("login successful")
	return models.LoginResult{Token: token, User: user.Public()}, nil
}

// Authenticate verifies token and returns its claims.
// It fails with ErrMissingToken, ErrTokenInvalid or ErrTokenExpired.
func (a *authService) Authenticate(ctx context.Context, token string) (models.Claims, error) {
	claims, err := a.tokens.Verify(token)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Claims{}, err
	}
	return claims, nil
}

// Authorize grants action to claims when the permission registry allows it.
//
// Every outcome is logged locally and handed to the audit sink. A sink
// error is logged and otherwise ignored.
func (a *authService) Authorize(ctx context.Context, claims *models.Claims, action models.Action, access models.Access) error {
	entry := models.AuditEntry{
		Timestamp:     a.now().UTC(),
		Action:        models.AuditActionUnauthorizedAccess,
		Resource:      access.Resource,
		Result:        models.AuditDenied,
		SourceAddress: access.SourceAddress,
	}
	if entry.SourceAddress == "" {
		entry.SourceAddress = "unknown"
	}

	var result error
	switch {
	case claims == nil:
		result = ErrNotAuthenticated
	default:
		entry.Username = claims.Username
		entry.UserID = claims.UserID
		entry.Role = claims.Role
		if a.permissions.IsAllowed(claims.Role, action) {
			entry.Action = models.AuditActionAuthorizedAccess
			entry.Result = models.AuditGranted
		} else {
			result = fmt.Errorf("%w: required %s", ErrInsufficientPermission, action)
		}
	}

	a.recordAudit(ctx, entry, action)
	return result
}

func (a *authService) recordAudit(ctx context.Context, entry models.AuditEntry, action models.Action) {
	log := logger.FromContext(ctx)

	log.Info().
		Str("event", "audit").
		Str("action", entry.Action).
		Str("permission", string(action)).
		Str("user", entry.Username).
		Str("user_id", entry.UserID).
		Str("resource", entry.Resource).
		Str("result", string(entry.Result)).
		Str("ip", entry.SourceAddress).
		Msg("authorization decision")

	if a.audit == nil {
		return
	}
	if err := a.audit.Record(ctx, entry); err != nil {
		log.Err(err).Str("func", "authService.recordAudit").Str("user_id", entry.UserID).Msg("failed to store audit log")
	}
}

// ListActiveUsers returns public views of active users, newest first.
func (a *authService) ListActiveUsers(ctx context.Context) ([]models.PublicUser, error) {
	users, err := a.credentials.ListActive(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.ListActiveUsers").Msg("error listing users")
		return nil, err
	}

	public := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public, nil
}

// ProvisionAdmin creates the single admin account. Username and email
// default to [DefaultAdminUsername] and [DefaultAdminEmail]; the password
// is always required.
func (a *authService) ProvisionAdmin(ctx context.Context, credentials models.Credentials) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	exists, err := a.credentials.AdminExists(ctx)
	if err != nil {
		log.Err(err).Str("func", "authService.ProvisionAdmin").Msg("admin lookup failed")
		return models.PublicUser{}, err
	}
	if exists {
		return models.PublicUser{}, ErrAdminAlreadyExists
	}

	if credentials.Username == "" {
		credentials.Username = DefaultAdminUsername
	}
	if credentials.Email == "" {
		credentials.Email = DefaultAdminEmail
	}

	user, err := a.createUser(ctx, credentials, models.RoleAdmin)
	if err != nil {
		log.Err(err).Str("func", "authService.ProvisionAdmin").Msg("admin creation failed")
		return models.PublicUser{}, err
	}

	log.Info().Str("user_id", user.UserID).Msg("admin user created")
	return user.Public(), nil
}

// ProvisionDemoUser creates the demo account with role user.
func (a *authService) ProvisionDemoUser(ctx context.Context, password string) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	credentials := models.Credentials{Username: DemoUsername, Email: DemoEmail, Password: password}
	user, err := a.createUser(ctx, credentials, models.RoleUser)
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return models.PublicUser{}, ErrDemoUserAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "authService.ProvisionDemoUser").Msg("demo user creation failed")
		return models.PublicUser{}, err
	}

	log.Info().Str("user_id", user.UserID).Msg("demo user created")
	return user.Public(), nil
}

// createUser validates credentials, hashes the password and stores a new
// active user with role.
func (a *authService) createUser(ctx context.Context, credentials models.Credentials, role models.Role) (models.User, error) {
	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	hash, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		if errors.Is(err, utils.ErrEmptyPassword) || errors.Is(err, utils.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	return a.credentials.Create(ctx, models.User{
		UserID:       a.ids.Generate(),
		Username:     credentials.Username,
		Email:        credentials.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    a.now().UTC(),
	})
}

func (a *authService) getDummyHash() string {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Err(err).Str("func", "authService.getDummyHash").Msg("error hashing dummy password")
			return
		}
		a.dummyHash = hash
	})
	return a.dummyHash
}
