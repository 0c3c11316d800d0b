// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the gRPC transport of the legal-dms server.
// It serves the standard grpc.health.v1 protocol; the serving status is
// driven by the store health worker.
package grpc

import (
	"github.com/MKhiriev/legal-dms/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler.
//
// A handler instance is created once at startup and shared by the gRPC
// server and the health worker.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health service starts as SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: health.NewServer(),
		logger: logger,
	}
}

// Health returns the health service so that workers can update its status.
func (h *Handler) Health() *health.Server {
	return h.health
}

// Register registers all services of the handler on s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
