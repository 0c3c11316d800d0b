// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/legal-dms/internal/config"
	"github.com/MKhiriev/legal-dms/internal/handler"
	myGRPC "github.com/MKhiriev/legal-dms/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/legal-dms/internal/handler/http"
	"github.com/MKhiriev/legal-dms/internal/logger"
	"github.com/MKhiriev/legal-dms/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func localListener(t *testing.T) net.Listener {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return l
}

// runAsync runs fn in a goroutine and returns a channel with its result.
func runAsync(fn func() error) <-chan error {
	done := make(chan error, 1)
	go func() { done <- fn() }()
	return done
}

func waitResult(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop in time")
		return nil
	}
}

// ── NewServer ─────────────────────────────────────────────────────────────────

func TestNewServer(t *testing.T) {
	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(&service.Services{}, 0, logger.Nop()),
		GRPC: myGRPC.NewHandler(logger.Nop()),
	}

	t.Run("both transports", func(t *testing.T) {
		s, err := NewServer(handlers, config.Server{HTTPAddress: ":0", GRPCAddress: ":0"}, logger.Nop())
		require.NoError(t, err)
		assert.Len(t, s.(*server).servers, 2)
	})

	t.Run("no addresses", func(t *testing.T) {
		s, err := NewServer(handlers, config.Server{}, logger.Nop())
		assert.ErrorIs(t, err, errNoServersAreCreated)
		assert.Nil(t, s)
	})

	t.Run("address without handler", func(t *testing.T) {
		_, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())
		assert.ErrorIs(t, err, errNoServersAreCreated)
	})
}

// ── HTTP ──────────────────────────────────────────────────────────────────────

func TestHTTPServer_ServesUntilCancelled(t *testing.T) {
	router := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
	srv := newHTTPServer(router, config.Server{}, logger.Nop())
	listener := localListener(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(func() error { return srv.serve(ctx, listener) })

	resp, err := http.Get("http://" + listener.Addr().String() + "/ping")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	cancel()
	assert.NoError(t, waitResult(t, done))
}

func TestHTTPServer_ListenError(t *testing.T) {
	busy := localListener(t)
	defer busy.Close()

	srv := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: busy.Addr().String()}, logger.Nop())

	err := srv.Run(context.Background())
	assert.ErrorIs(t, err, ErrListen)
}

// ── gRPC ──────────────────────────────────────────────────────────────────────

func TestGRPCServer_HealthAndGracefulStop(t *testing.T) {
	h := myGRPC.NewHandler(logger.Nop())
	srv := newGRPCServer(h, config.Server{}, logger.Nop())
	listener := localListener(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(func() error { return srv.serve(ctx, listener) })

	conn, err := grpc.NewClient(listener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	callCtx, callCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer callCancel()
	resp, err := healthpb.NewHealthClient(conn).Check(callCtx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	cancel()
	assert.NoError(t, waitResult(t, done))
}

func TestServer_RunStopsAllTransportsOnFailure(t *testing.T) {
	busy := localListener(t)
	defer busy.Close()

	s := &server{
		servers: []Server{
			newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop()),
			newGRPCServer(myGRPC.NewHandler(logger.Nop()), config.Server{GRPCAddress: busy.Addr().String()}, logger.Nop()),
		},
		logger: logger.Nop(),
	}

	done := runAsync(func() error { return s.Run(context.Background()) })

	assert.ErrorIs(t, waitResult(t, done), ErrListen)
}
