// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background workers of the legal-dms server.
// It defines the Worker interface and a Workers aggregate that runs several
// workers together and stops them with a shared context.
package workers

import (
	"context"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. A worker stopped by
// cancellation returns nil.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthSetter receives serving status updates; *health.Server satisfies it.
type HealthSetter interface {
	SetServingStatus(service string, status healthpb.HealthCheckResponse_ServingStatus)
}
