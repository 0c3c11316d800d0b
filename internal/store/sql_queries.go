// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/legal-dms/models"
)

var userColumns = []string{
	"id", "username", "email", "password_hash", "role", "is_active", "last_login", "created_at",
}

var documentColumns = []string{
	"id", "title", "content", "category", "status", "created_by", "updated_by", "is_active", "created_at", "updated_at",
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.Username, user.Email, user.PasswordHash, string(user.Role), user.IsActive, user.LastLogin, user.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUsersQuery(b sq.StatementBuilderType, filter models.UserFilter) (string, []any, error) {
	where := sq.Eq{}
	if filter.UserID != nil {
		where["id"] = *filter.UserID
	}
	if filter.Username != nil {
		where["username"] = *filter.Username
	}
	if filter.Email != nil {
		where["email"] = *filter.Email
	}
	if filter.Role != nil {
		where["role"] = string(*filter.Role)
	}
	if filter.IsActive != nil {
		where["is_active"] = *filter.IsActive
	}

	builder := b.Select(userColumns...).From(models.User{}.TableName())
	if len(where) > 0 {
		builder = builder.Where(where)
	}
	if filter.NewestFirst {
		builder = builder.OrderBy("created_at DESC", "id DESC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateUserQuery(b sq.StatementBuilderType, userID string, patch models.UserPatch) (string, []any, error) {
	if patch.IsEmpty() {
		return "", nil, fmt.Errorf("%w: empty user patch", ErrBuildingSQLQuery)
	}

	builder := b.Update(models.User{}.TableName())
	if patch.PasswordHash != nil {
		builder = builder.Set("password_hash", *patch.PasswordHash)
	}
	if patch.LastLogin != nil {
		builder = builder.Set("last_login", *patch.LastLogin)
	}
	if patch.IsActive != nil {
		builder = builder.Set("is_active", *patch.IsActive)
	}

	query, args, err := builder.Where(sq.Eq{"id": userID}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertDocumentQuery(b sq.StatementBuilderType, doc models.Document) (string, []any, error) {
	query, args, err := b.Insert(models.Document{}.TableName()).
		Columns(documentColumns...).
		Values(doc.ID, doc.Title, doc.Content, string(doc.Category), string(doc.Status), doc.CreatedBy, doc.UpdatedBy, doc.IsActive, doc.CreatedAt, doc.UpdatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindDocumentsQuery(b sq.StatementBuilderType, filter models.DocumentFilter) (string, []any, error) {
	where := sq.Eq{}
	if filter.ID != nil {
		where["id"] = *filter.ID
	}
	if filter.IsActive != nil {
		where["is_active"] = *filter.IsActive
	}

	builder := b.Select(documentColumns...).From(models.Document{}.TableName())
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	query, args, err := builder.OrderBy("created_at DESC", "id DESC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateDocumentQuery(b sq.StatementBuilderType, documentID string, update models.DocumentUpdate) (string, []any, error) {
	builder := b.Update(models.Document{}.TableName()).
		Set("updated_by", update.UpdatedBy).
		Set("updated_at", update.UpdatedAt)

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.Category != nil {
		builder = builder.Set("category", string(*update.Category))
	}
	if update.Status != nil {
		builder = builder.Set("status", string(*update.Status))
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
	}

	query, args, err := builder.Where(sq.Eq{"id": documentID}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
