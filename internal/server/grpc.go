// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/legal-dms/internal/config"
	myGRPC "github.com/MKhiriev/legal-dms/internal/handler/grpc"
	"github.com/MKhiriev/legal-dms/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLoggingInterceptor))
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrListen, g.address, err)
	}
	return g.serve(ctx, listener)
}

func (g *grpcServer) serve(ctx context.Context, listener net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		g.logger.Info().Str("address", listener.Addr().String()).Msg("launching gRPC server")
		serveErr <- g.server.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("gRPC server Serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()

	return nil
}
