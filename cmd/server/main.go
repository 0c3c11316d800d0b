// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/legal-dms/internal/adapter"
	"github.com/MKhiriev/legal-dms/internal/config"
	"github.com/MKhiriev/legal-dms/internal/handler"
	"github.com/MKhiriev/legal-dms/internal/logger"
	"github.com/MKhiriev/legal-dms/internal/server"
	"github.com/MKhiriev/legal-dms/internal/service"
	"github.com/MKhiriev/legal-dms/internal/store"
	"github.com/MKhiriev/legal-dms/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("legal-dms-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	// linker-injected version wins over the default
	if buildVersion != "N/A" && cfg.App.Version == config.Defaults().App.Version {
		cfg.App.Version = buildVersion
	}
	if !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("storage_driver", cfg.Storage.DB.Driver()).
		Str("audit_sink", cfg.Audit.Sink).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	sink, err := adapter.NewAuditSink(cfg.Audit, log)
	if err != nil {
		return fmt.Errorf("error creating audit sink: %w", err)
	}
	if closer, ok := sink.(io.Closer); ok {
		defer closer.Close()
	}

	auditQueue := service.NewAuditQueue(cfg.Audit.QueueSize)
	services, err := service.NewServices(storages, *cfg, auditQueue, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	background := []workers.Worker{
		workers.NewAuditWorker(auditQueue.Entries(), sink, cfg.Audit.SendTimeout, log),
		srv,
	}
	if handlers.GRPC != nil {
		background = append(background,
			workers.NewHealthWorker(storages.UserRepository, handlers.GRPC.Health(), cfg.Workers.HealthCheckInterval, log))
	}

	return workers.NewWorkers(background...).Run(ctx)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
