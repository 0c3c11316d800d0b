// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/legal-dms/internal/logger"
	"github.com/MKhiriev/legal-dms/models"
)

// logAuditSink writes entries to the structured log only.
type logAuditSink struct {
	logger *logger.Logger
}

func NewLogAuditSink(logger *logger.Logger) AuditSink {
	return &logAuditSink{logger: logger}
}

func (l *logAuditSink) Record(ctx context.Context, entry models.AuditEntry) error {
	l.logger.Info().
		Str("event", "audit_log").
		Time("timestamp", entry.Timestamp).
		Str("action", entry.Action).
		Str("user", entry.Username).
		Str("user_id", entry.UserID).
		Str("role", string(entry.Role)).
		Str("resource", entry.Resource).
		Str("result", string(entry.Result)).
		Str("ip", entry.SourceAddress).
		Msg("AUDIT LOG")
	return nil
}
