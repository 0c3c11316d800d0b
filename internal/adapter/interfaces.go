// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter delivers audit entries to external systems.
//
// The primary abstraction is [AuditSink], which decouples the authorization
// flow from the destination. The package ships three implementations:
// a HashiCorp Vault KV v2 sink over HTTP ([NewVaultAuditSink]), a Redis
// stream sink ([NewRedisAuditSink]) and a structured log sink
// ([NewLogAuditSink]). [NewAuditSink] picks one from configuration.
//
// Transport failures are reported as errors wrapping the sentinel values in
// errors.go; sinks never retry.
package adapter

import (
	"context"

	"github.com/MKhiriev/legal-dms/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/audit_sink_mock.go -package=mock

// AuditSink appends one audit entry to an external, append-only trail.
type AuditSink interface {
	// Record sends entry to the destination. It returns an error on any
	// delivery failure; the caller decides how to report it.
	Record(ctx context.Context, entry models.AuditEntry) error
}
