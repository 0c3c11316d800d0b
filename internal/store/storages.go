// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence layer: the user and document
// repositories and their PostgreSQL, SQLite and in-memory backends.
package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/legal-dms/internal/config"
	"github.com/MKhiriev/legal-dms/internal/logger"
)

// Storages groups the repositories used by the service layer.
type Storages struct {
	UserRepository     UserRepository
	DocumentRepository DocumentRepository

	db *DB
}

// NewStorages opens the backend selected by the DSN scheme, applies schema
// migrations for SQL backends and builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver() {
	case config.DriverMemory:
		log.Info().Str("func", "NewStorages").Msg("using in-memory storage")
		return &Storages{
			UserRepository:     NewMemoryUserRepository(),
			DocumentRepository: NewMemoryDocumentRepository(),
		}, nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported storage dsn %q", cfg.DB.DSN)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return newSQLStorages(db, log), nil
}

func newSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		DocumentRepository: NewDocumentRepository(db, log),
		db:                 db,
	}
}

// Close releases the underlying connection pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
