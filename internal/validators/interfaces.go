// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - CredentialsValidator: registration, login and provisioning payloads.
//   - DocumentValidator: document creation and partial updates.
//
// Rules are expressed with ozzo-validation; failures are returned as
// ozzo validation.Errors keyed by the JSON field name.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
// Unsupported value types fail with ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
