// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/legal-dms/models"
)

// ErrAuditQueueFull is returned by [AuditQueue.Record] when no slot is free.
var ErrAuditQueueFull = errors.New("audit queue is full")

// AuditQueue is a bounded, non-blocking buffer between the authorization
// flow and the audit delivery worker. It satisfies adapter.AuditSink so the
// auth service never waits on the external sink.
type AuditQueue struct {
	entries chan models.AuditEntry
}

// NewAuditQueue returns a queue holding at most size entries.
// A non-positive size yields a queue of one.
func NewAuditQueue(size int) *AuditQueue {
	if size <= 0 {
		size = 1
	}
	return &AuditQueue{entries: make(chan models.AuditEntry, size)}
}

// Record enqueues entry without blocking.
func (q *AuditQueue) Record(ctx context.Context, entry models.AuditEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case q.entries <- entry:
		return nil
	default:
		return ErrAuditQueueFull
	}
}

// Entries exposes the receiving side of the queue to the delivery worker.
func (q *AuditQueue) Entries() <-chan models.AuditEntry {
	return q.entries
}

// Len reports how many entries are waiting.
func (q *AuditQueue) Len() int {
	return len(q.entries)
}
