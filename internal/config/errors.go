// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, non-positive token duration or bcrypt cost out of range).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrMissingTokenSignKey is returned when no token sign key was provided
	// by any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrInvalidStorageConfigs indicates an empty or unsupported DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that no transport is configured.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuditConfigs indicates an unknown or incomplete audit sink.
	ErrInvalidAuditConfigs = errors.New("invalid audit configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero health check interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
