// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/legal-dms/internal/adapter"
	"github.com/MKhiriev/legal-dms/internal/logger"
	"github.com/MKhiriev/legal-dms/models"
)

// AuditWorker delivers queued audit entries to the external sink.
// Delivery failures are logged and the entry is dropped.
type AuditWorker struct {
	entries     <-chan models.AuditEntry
	sink        adapter.AuditSink
	sendTimeout time.Duration

	logger *logger.Logger
}

func NewAuditWorker(entries <-chan models.AuditEntry, sink adapter.AuditSink, sendTimeout time.Duration, logger *logger.Logger) *AuditWorker {
	return &AuditWorker{entries: entries, sink: sink, sendTimeout: sendTimeout, logger: logger}
}

// Run delivers entries until ctx is done, then flushes what is already
// queued before returning.
func (w *AuditWorker) Run(ctx context.Context) error {
	w.logger.Info().Msg("audit worker started")
	for {
		select {
		case <-ctx.Done():
			w.flush()
			w.logger.Info().Msg("audit worker stopped")
			return nil
		case entry := <-w.entries:
			w.deliver(ctx, entry)
		}
	}
}

func (w *AuditWorker) flush() {
	for {
		select {
		case entry := <-w.entries:
			w.deliver(context.Background(), entry)
		default:
			return
		}
	}
}

func (w *AuditWorker) deliver(ctx context.Context, entry models.AuditEntry) {
	if w.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.WithoutCancel(ctx), w.sendTimeout)
		defer cancel()
	}

	if err := w.sink.Record(ctx, entry); err != nil {
		w.logger.Err(err).
			Str("func", "AuditWorker.deliver").
			Str("user_id", entry.UserID).
			Str("resource", entry.Resource).
			Str("result", string(entry.Result)).
			Msg("failed to store audit log")
	}
}
