// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// traceIDKey is the metadata key carrying the trace id.
// gRPC metadata keys are lower-case.
const traceIDKey = "x-trace-id"

// UnaryLoggingInterceptor attaches a logger carrying trace_id to the call
// context and writes one access log line per unary call.
func (h *Handler) UnaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := traceIDFromMetadata(ctx)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	start := time.Now()
	resp, err := handler(l.WithContext(ctx), req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func traceIDFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(traceIDKey); len(values) > 0 {
		return values[0]
	}
	return ""
}
