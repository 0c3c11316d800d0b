// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"

	"github.com/MKhiriev/legal-dms/internal/config"
	"github.com/MKhiriev/legal-dms/internal/handler"
	"github.com/MKhiriev/legal-dms/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	servers []Server

	logger *logger.Logger
}

// NewServer creates a server per handler present in handlers.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if handlers.HTTP != nil && cfg.HTTPAddress != "" {
		s.servers = append(s.servers, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if handlers.GRPC != nil && cfg.GRPCAddress != "" {
		s.servers = append(s.servers, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(s.servers) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

// Run starts every transport and waits until all have stopped. A failing
// transport stops the others.
func (s *server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, srv := range s.servers {
		g.Go(func() error {
			return srv.Run(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
