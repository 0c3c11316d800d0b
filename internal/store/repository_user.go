// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/legal-dms/internal/logger"
	"github.com/MKhiriev/legal-dms/models"
)

// userRepository is the SQL implementation of [UserRepository] shared by the
// PostgreSQL and SQLite backends. Uniqueness is enforced by the schema, so a
// concurrent duplicate insert fails inside the database rather than racing a
// read-then-write check.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser inserts a new user row and returns it unchanged.
//
// Error handling:
//   - unique violation on username, email or the single-admin index →
//     [ErrUsernameAlreadyExists], [ErrEmailAlreadyExists], [ErrAdminAlreadyExists].
//   - connection or transient failure → wrapped [ErrStoreUnavailable].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		translated := r.translateError(err, ErrExecutingStatement)
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Str("username", user.Username).
			AnErr("translated", translated).
			Msg("failed to insert user")
		return models.User{}, translated
	}

	return user, nil
}

// FindUsers returns the users matching filter, or an empty slice.
func (r *userRepository) FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUsersQuery(r.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsers").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsers").Msg("failed to execute query for finding users")
		return nil, r.translateError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	users := make([]models.User, 0)

	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.FindUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*userRepository.FindUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// UpdateUser applies patch to the row with the given id.
func (r *userRepository) UpdateUser(ctx context.Context, userID string, patch models.UserPatch) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.builder, userID, patch)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("user_id", userID).Msg("failed to build query")
		return err
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("user_id", userID).Msg("failed to update user")
		return r.translateError(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		lastLogin sql.NullTime
	)

	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.IsActive,
		&lastLogin,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if lastLogin.Valid {
		t := lastLogin.Time
		user.LastLogin = &t
	}

	return user, nil
}
