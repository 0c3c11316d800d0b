// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/legal-dms/internal/config"
	"github.com/MKhiriev/legal-dms/internal/logger"
	"github.com/MKhiriev/legal-dms/models"
	"github.com/redis/go-redis/v9"
)

// redisAuditSink appends entries to a Redis stream with XADD.
type redisAuditSink struct {
	client *redis.Client
	stream string

	logger *logger.Logger
}

// NewRedisAuditSink connects to the Redis server in cfg. The connection is
// lazy; an unreachable server surfaces on the first Record.
func NewRedisAuditSink(cfg config.Redis, timeout time.Duration, logger *logger.Logger) AuditSink {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		MaxRetries:   -1,
	})

	return &redisAuditSink{client: client, stream: cfg.Stream, logger: logger}
}

// Record adds entry to the stream as flat string fields.
func (r *redisAuditSink) Record(ctx context.Context, entry models.AuditEntry) error {
	_, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		Values: streamValues(entry),
	}).Result()
	if err != nil {
		return fmt.Errorf("%w: redis xadd: %w", ErrSinkUnavailable, err)
	}
	return nil
}

// Close releases the connection pool.
func (r *redisAuditSink) Close() error {
	return r.client.Close()
}

func streamValues(entry models.AuditEntry) map[string]any {
	return map[string]any{
		"timestamp": entry.Timestamp.UTC().Format(time.RFC3339Nano),
		"action":    entry.Action,
		"user":      entry.Username,
		"userId":    entry.UserID,
		"role":      string(entry.Role),
		"resource":  entry.Resource,
		"result":    string(entry.Result),
		"ip":        entry.SourceAddress,
	}
}
