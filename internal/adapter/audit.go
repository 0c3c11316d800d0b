// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/legal-dms/internal/config"
	"github.com/MKhiriev/legal-dms/internal/logger"
)

// NewAuditSink builds the sink selected by cfg.Sink.
// Sinks holding connections also implement io.Closer.
func NewAuditSink(cfg config.Audit, logger *logger.Logger) (AuditSink, error) {
	switch cfg.Sink {
	case config.AuditSinkLog, "":
		return NewLogAuditSink(logger), nil
	case config.AuditSinkVault:
		return NewVaultAuditSink(cfg.Vault, cfg.SendTimeout, logger)
	case config.AuditSinkRedis:
		return NewRedisAuditSink(cfg.Redis, cfg.SendTimeout, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSink, cfg.Sink)
	}
}
