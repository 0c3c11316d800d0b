// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// Storage drivers derived from [DB.DSN].
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// bcrypt accepts work factors in this range.
const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// Driver returns the storage driver selected by the DSN scheme, or an empty
// string when the scheme is not supported.
func (db DB) Driver() string {
	switch {
	case strings.HasPrefix(db.DSN, "memory://"):
		return DriverMemory
	case strings.HasPrefix(db.DSN, "postgres://"), strings.HasPrefix(db.DSN, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(db.DSN, "sqlite://"):
		return DriverSQLite
	default:
		return ""
	}
}

// SQLitePath returns the file path part of a sqlite:// DSN.
func (db DB) SQLitePath() string {
	return strings.TrimPrefix(db.DSN, "sqlite://")
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, ErrMissingTokenSignKey)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.BcryptCost < minBcryptCost || cfg.App.BcryptCost > maxBcryptCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}

	if cfg.Storage.DB.Driver() == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.Driver() == DriverSQLite && cfg.Storage.DB.SQLitePath() == "" {
		return fmt.Errorf("%w: empty sqlite path", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if err := cfg.Audit.validate(); err != nil {
		return err
	}

	if cfg.Workers.HealthCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (a Audit) validate() error {
	if a.QueueSize < 1 || a.SendTimeout <= 0 {
		return fmt.Errorf("%w: queue size and send timeout must be positive", ErrInvalidAuditConfigs)
	}

	switch a.Sink {
	case AuditSinkLog:
		return nil
	case AuditSinkVault:
		if a.Vault.Address == "" || a.Vault.Token == "" || a.Vault.Mount == "" {
			return fmt.Errorf("%w: vault address, token and mount are required", ErrInvalidAuditConfigs)
		}
		return nil
	case AuditSinkRedis:
		if a.Redis.Address == "" || a.Redis.Stream == "" {
			return fmt.Errorf("%w: redis address and stream are required", ErrInvalidAuditConfigs)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown sink %q", ErrInvalidAuditConfigs, a.Sink)
	}
}
