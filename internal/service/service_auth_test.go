// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/legal-dms/internal/logger"
	"github.com/MKhiriev/legal-dms/internal/mock"
	"github.com/MKhiriev/legal-dms/internal/store"
	"github.com/MKhiriev/legal-dms/internal/utils"
	"github.com/MKhiriev/legal-dms/internal/validators"
	"github.com/MKhiriev/legal-dms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testTokenTTL = 24 * time.Hour

// recordingSink keeps every audit entry it receives.
type recordingSink struct {
	mu      sync.Mutex
	entries []models.AuditEntry
}

func (s *recordingSink) Record(_ context.Context, entry models.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *recordingSink) Entries() []models.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.AuditEntry(nil), s.entries...)
}

type authFixture struct {
	svc         AuthService
	users       store.UserRepository
	credentials CredentialStore
	clock       *testClock
	sink        *recordingSink
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	return newAuthFixtureWithUsers(t, store.NewMemoryUserRepository())
}

func newAuthFixtureWithUsers(t *testing.T, users store.UserRepository) *authFixture {
	t.Helper()

	f := &authFixture{
		users: users,
		clock: newTestClock(),
		sink:  &recordingSink{},
	}
	f.credentials = NewCredentialStore(f.users)
	f.svc = NewAuthService(AuthDependencies{
		Credentials:   f.credentials,
		Hasher:        utils.NewBcryptHasher(bcrypt.MinCost),
		Tokens:        NewTokenService("test-sign-key", "legal-dms", f.clock.Now),
		Permissions:   NewPermissionRegistry(),
		Audit:         f.sink,
		Validator:     validators.NewCredentialsValidator(),
		TokenDuration: testTokenTTL,
		Now:           f.clock.Now,
	}, logger.Nop())

	return f
}

func aliceCredentials() models.Credentials {
	return models.Credentials{Username: "alice", Email: "a@x.com", Password: "hunter2"}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	f := newAuthFixture(t)

	user, err := f.svc.Register(context.Background(), aliceCredentials())
	require.NoError(t, err)

	assert.NotEmpty(t, user.UserID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.Nil(t, user.LastLogin)

	stored, err := f.credentials.FindByUsernameOrEmail(context.Background(), "alice", false)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2")))
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name        string
		credentials models.Credentials
	}{
		{name: "missing username", credentials: models.Credentials{Email: "a@x.com", Password: "hunter2"}},
		{name: "missing email", credentials: models.Credentials{Username: "alice", Password: "hunter2"}},
		{name: "missing password", credentials: models.Credentials{Username: "alice", Email: "a@x.com"}},
		{name: "malformed email", credentials: models.Credentials{Username: "alice", Email: "not-an-email", Password: "hunter2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)

			_, err := f.svc.Register(context.Background(), tt.credentials)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Register_DuplicateIdentity(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, aliceCredentials())
	require.NoError(t, err)

	_, err = f.svc.Register(ctx, models.Credentials{Username: "alice", Email: "other@x.com", Password: "hunter2"})
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
	assert.NotErrorIs(t, err, store.ErrEmailAlreadyExists)

	_, err = f.svc.Register(ctx, models.Credentials{Username: "alice2", Email: "a@x.com", Password: "hunter2"})
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	assert.NotErrorIs(t, err, store.ErrUsernameAlreadyExists)

	_, err = f.svc.Register(ctx, aliceCredentials())
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Register_DuplicateOfInactiveUser(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, aliceCredentials())
	require.NoError(t, err)
	deactivate(t, f, "alice")

	_, err = f.svc.Register(ctx, aliceCredentials())
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
}

func TestAuthService_Register_ConcurrentSameUsername(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	const attempts = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		dupes     int
	)
	for i := range attempts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			creds := models.Credentials{
				Username: "racer",
				Email:    "racer" + string(rune('a'+i)) + "@x.com",
				Password: "hunter2",
			}
			_, err := f.svc.Register(ctx, creds)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrDuplicateIdentity):
				dupes++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, dupes)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_RoundTrip(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, aliceCredentials())
	require.NoError(t, err)

	for _, identifier := range []models.Credentials{
		{Username: "alice", Password: "hunter2"},
		{Username: "a@x.com", Password: "hunter2"},
		{Email: "a@x.com", Password: "hunter2"},
	} {
		result, err := f.svc.Login(ctx, identifier)
		require.NoError(t, err)

		require.NotNil(t, result.User.LastLogin)
		assert.Equal(t, f.clock.Now(), *result.User.LastLogin)

		claims, err := f.svc.Authenticate(ctx, result.Token.SignedString)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, models.RoleUser, claims.Role)
		assert.Equal(t, result.User.UserID, claims.UserID)
		assert.Equal(t, "a@x.com", claims.Email)
	}

	stored, err := f.credentials.FindByUsernameOrEmail(ctx, "alice", true)
	require.NoError(t, err)
	require.NotNil(t, stored.LastLogin)
	assert.Equal(t, f.clock.Now(), *stored.LastLogin)
}

func TestAuthService_Login_IdenticalFailures(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, aliceCredentials())
	require.NoError(t, err)

	_, wrongPassword := f.svc.Login(ctx, models.Credentials{Username: "alice", Password: "hunter3"})
	_, unknownUser := f.svc.Login(ctx, models.Credentials{Username: "mallory", Password: "hunter2"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownUser)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestAuthService_Login_DeactivatedUser(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, aliceCredentials())
	require.NoError(t, err)
	deactivate(t, f, "alice")

	_, err = f.svc.Login(ctx, models.Credentials{Username: "alice", Password: "hunter2"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// deactivatingUsers deactivates a user right after the first lookup that
// returns it, before the caller gets to write anything back.
type deactivatingUsers struct {
	store.UserRepository
	once sync.Once
}

func (d *deactivatingUsers) FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	users, err := d.UserRepository.FindUsers(ctx, filter)
	if err != nil || len(users) == 0 {
		return users, err
	}
	d.once.Do(func() {
		inactive := false
		err = d.UserRepository.UpdateUser(ctx, users[0].UserID, models.UserPatch{IsActive: &inactive})
	})
	return users, err
}

func TestAuthService_Login_KeepsConcurrentDeactivation(t *testing.T) {
	ctx := context.Background()
	seed := newAuthFixture(t)
	_, err := seed.svc.Register(ctx, aliceCredentials())
	require.NoError(t, err)

	users := &deactivatingUsers{UserRepository: seed.users}
	f := newAuthFixtureWithUsers(t, users)

	_, err = f.svc.Login(ctx, models.Credentials{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)

	username := "alice"
	stored, err := seed.users.FindUsers(ctx, models.UserFilter{Username: &username})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.False(t, stored[0].IsActive, "login must not reactivate a user deactivated meanwhile")
	require.NotNil(t, stored[0].LastLogin)
	assert.Equal(t, f.clock.Now(), *stored[0].LastLogin)

	_, err = f.svc.Login(ctx, models.Credentials{Username: "alice", Password: "hunter2"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Login(context.Background(), models.Credentials{Password: "hunter2"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.Login(context.Background(), models.Credentials{Username: "alice"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_Login_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialStore(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthService(AuthDependencies{
		Credentials: credentials,
		Hasher:      hasher,
		Validator:   validators.NewCredentialsValidator(),
	}, logger.Nop())

	credentials.EXPECT().FindByUsernameOrEmail(gomock.Any(), "alice", true).
		Return(models.User{}, mapStoreError(errors.New("dial tcp: connection refused")))

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "hunter2"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUserStillVerifiesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialStore(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthService(AuthDependencies{
		Credentials: credentials,
		Hasher:      hasher,
		Validator:   validators.NewCredentialsValidator(),
	}, logger.Nop())

	credentials.EXPECT().FindByUsernameOrEmail(gomock.Any(), "ghost", true).Return(models.User{}, errUserNotFound).Times(2)
	hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Times(1)
	hasher.EXPECT().Verify("hunter2", "dummy-hash").Return(false).Times(2)

	for range 2 {
		_, err := svc.Login(context.Background(), models.Credentials{Username: "ghost", Password: "hunter2"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthService_Authenticate_Expiry(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, aliceCredentials())
	require.NoError(t, err)

	issuedAt := f.clock.Now()
	result, err := f.svc.Login(ctx, models.Credentials{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)

	f.clock.Set(issuedAt.Add(testTokenTTL - time.Second))
	_, err = f.svc.Authenticate(ctx, result.Token.SignedString)
	assert.NoError(t, err)

	f.clock.Set(issuedAt.Add(testTokenTTL + time.Second))
	_, err = f.svc.Authenticate(ctx, result.Token.SignedString)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestAuthService_Authenticate_Errors(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = f.svc.Authenticate(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

// ── Authorize ────────────────────────────────────────────────────────────────

func TestAuthService_Authorize_MatchesPermissionTable(t *testing.T) {
	f := newAuthFixture(t)
	registry := NewPermissionRegistry()
	ctx := context.Background()

	for _, role := range models.AllRoles() {
		for _, action := range models.AllActions() {
			claims := &models.Claims{UserID: "u-" + string(role), Username: string(role), Role: role}
			err := f.svc.Authorize(ctx, claims, action, models.Access{Resource: "/api/documents", SourceAddress: "10.0.0.1"})

			if registry.IsAllowed(role, action) {
				assert.NoError(t, err, "role=%s action=%s", role, action)
			} else {
				assert.ErrorIs(t, err, ErrInsufficientPermission, "role=%s action=%s", role, action)
			}
		}
	}

	entries := f.sink.Entries()
	require.Len(t, entries, len(models.AllRoles())*len(models.AllActions()))
	for _, entry := range entries {
		if entry.Result == models.AuditGranted {
			assert.Equal(t, models.AuditActionAuthorizedAccess, entry.Action)
		} else {
			assert.Equal(t, models.AuditDenied, entry.Result)
			assert.Equal(t, models.AuditActionUnauthorizedAccess, entry.Action)
		}
		assert.Equal(t, "/api/documents", entry.Resource)
		assert.Equal(t, "10.0.0.1", entry.SourceAddress)
		assert.Equal(t, f.clock.Now(), entry.Timestamp)
	}
}

func TestAuthService_Authorize_NoClaims(t *testing.T) {
	f := newAuthFixture(t)

	err := f.svc.Authorize(context.Background(), nil, models.ActionRead, models.Access{Resource: "/api/documents"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	entries := f.sink.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, models.AuditDenied, entries[0].Result)
	assert.Equal(t, "unknown", entries[0].SourceAddress)
	assert.Empty(t, entries[0].UserID)
}

func TestAuthService_Authorize_SinkFailureDoesNotChangeOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mock.NewMockAuditSink(ctrl)

	svc := NewAuthService(AuthDependencies{
		Permissions: NewPermissionRegistry(),
		Audit:       sink,
	}, logger.Nop())

	sink.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("vault sealed")).Times(2)

	admin := &models.Claims{UserID: "u-admin", Username: "admin", Role: models.RoleAdmin}
	viewer := &models.Claims{UserID: "u-viewer", Username: "viewer", Role: models.RoleViewer}

	assert.NoError(t, svc.Authorize(context.Background(), admin, models.ActionDelete, models.Access{}))
	assert.ErrorIs(t, svc.Authorize(context.Background(), viewer, models.ActionDelete, models.Access{}), ErrInsufficientPermission)
}

func TestAuthService_Authorize_FullQueueDoesNotChangeOutcome(t *testing.T) {
	queue := NewAuditQueue(1)
	svc := NewAuthService(AuthDependencies{
		Permissions: NewPermissionRegistry(),
		Audit:       queue,
	}, logger.Nop())

	admin := &models.Claims{UserID: "u-admin", Username: "admin", Role: models.RoleAdmin}
	for range 3 {
		assert.NoError(t, svc.Authorize(context.Background(), admin, models.ActionManage, models.Access{}))
	}
	assert.Equal(t, 1, queue.Len())
}

// ── Users and provisioning ───────────────────────────────────────────────────

func TestAuthService_ListActiveUsers(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	for i, name := range []string{"first", "second", "third"} {
		f.clock.Set(f.clock.Now().Add(time.Duration(i) * time.Minute))
		_, err := f.svc.Register(ctx, models.Credentials{Username: name, Email: name + "@x.com", Password: "hunter2"})
		require.NoError(t, err)
	}
	deactivate(t, f, "second")

	users, err := f.svc.ListActiveUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "third", users[0].Username)
	assert.Equal(t, "first", users[1].Username)
}

func TestAuthService_ProvisionAdmin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.ProvisionAdmin(ctx, models.Credentials{})
	assert.ErrorIs(t, err, ErrValidation, "password is required")

	admin, err := f.svc.ProvisionAdmin(ctx, models.Credentials{Password: "admin-secret"})
	require.NoError(t, err)
	assert.Equal(t, DefaultAdminUsername, admin.Username)
	assert.Equal(t, DefaultAdminEmail, admin.Email)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	_, err = f.svc.ProvisionAdmin(ctx, models.Credentials{Username: "root", Email: "root@x.com", Password: "admin-secret"})
	assert.ErrorIs(t, err, ErrAdminAlreadyExists)

	result, err := f.svc.Login(ctx, models.Credentials{Username: DefaultAdminEmail, Password: "admin-secret"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, result.Token.Claims.Role)
}

func TestAuthService_ProvisionDemoUser(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	demo, err := f.svc.ProvisionDemoUser(ctx, "demo123")
	require.NoError(t, err)
	assert.Equal(t, DemoUsername, demo.Username)
	assert.Equal(t, models.RoleUser, demo.Role)

	_, err = f.svc.ProvisionDemoUser(ctx, "demo123")
	assert.ErrorIs(t, err, ErrDemoUserAlreadyExists)

	_, err = f.svc.Login(ctx, models.Credentials{Username: DemoUsername, Password: "demo123"})
	assert.NoError(t, err)
}

// ── End to end ───────────────────────────────────────────────────────────────

func TestAuthService_AliceScenario(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, aliceCredentials())
	require.NoError(t, err)

	result, err := f.svc.Login(ctx, models.Credentials{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)

	claims, err := f.svc.Authenticate(ctx, result.Token.SignedString)
	require.NoError(t, err)

	access := models.Access{Resource: "/api/documents", SourceAddress: "192.0.2.7"}
	assert.NoError(t, f.svc.Authorize(ctx, &claims, models.ActionRead, access))
	assert.ErrorIs(t, f.svc.Authorize(ctx, &claims, models.ActionDelete, access), ErrInsufficientPermission)

	entries := f.sink.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, models.AuditGranted, entries[0].Result)
	assert.Equal(t, models.AuditDenied, entries[1].Result)
	assert.Equal(t, "alice", entries[1].Username)
	assert.Equal(t, claims.UserID, entries[1].UserID)
	assert.Equal(t, models.RoleUser, entries[1].Role)
}

func deactivate(t *testing.T, f *authFixture, username string) {
	t.Helper()
	inactive := false
	users, err := f.users.FindUsers(context.Background(), models.UserFilter{Username: &username})
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.NoError(t, f.users.UpdateUser(context.Background(), users[0].UserID, models.UserPatch{IsActive: &inactive}))
}
