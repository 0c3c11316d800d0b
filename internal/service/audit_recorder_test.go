// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/legal-dms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditQueue_RecordIsNonBlocking(t *testing.T) {
	queue := NewAuditQueue(2)
	ctx := context.Background()

	require.NoError(t, queue.Record(ctx, models.AuditEntry{UserID: "1"}))
	require.NoError(t, queue.Record(ctx, models.AuditEntry{UserID: "2"}))
	assert.ErrorIs(t, queue.Record(ctx, models.AuditEntry{UserID: "3"}), ErrAuditQueueFull)
	assert.Equal(t, 2, queue.Len())

	first := <-queue.Entries()
	assert.Equal(t, "1", first.UserID)
	assert.NoError(t, queue.Record(ctx, models.AuditEntry{UserID: "4"}))
}

func TestAuditQueue_CancelledContext(t *testing.T) {
	queue := NewAuditQueue(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, queue.Record(ctx, models.AuditEntry{}), context.Canceled)
	assert.Equal(t, 0, queue.Len())
}
