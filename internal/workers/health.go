// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/legal-dms/internal/logger"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthWorker probes the record store and publishes the result as the
// overall gRPC serving status.
type HealthWorker struct {
	store    Pinger
	health   HealthSetter
	interval time.Duration

	logger *logger.Logger
}

func NewHealthWorker(store Pinger, health HealthSetter, interval time.Duration, logger *logger.Logger) *HealthWorker {
	return &HealthWorker{store: store, health: health, interval: interval, logger: logger}
}

// Run probes once immediately and then every interval until ctx is done.
// The status is set to NOT_SERVING on exit.
func (w *HealthWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			w.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
			return nil
		case <-ticker.C:
			w.probe(ctx)
		}
	}
}

func (w *HealthWorker) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	if err := w.store.Ping(pingCtx); err != nil {
		w.logger.Err(err).Str("func", "HealthWorker.probe").Msg("record store is unreachable")
		w.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	w.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}
