// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"
	"time"

	"github.com/MKhiriev/legal-dms/internal/config"
	"github.com/MKhiriev/legal-dms/internal/logger"
	"github.com/MKhiriev/legal-dms/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{name: "both transports", cfg: config.Server{HTTPAddress: ":3000", GRPCAddress: ":9090", RequestTimeout: time.Second}, wantHTTP: true, wantGRPC: true},
		{name: "http only", cfg: config.Server{HTTPAddress: ":3000"}, wantHTTP: true},
		{name: "grpc only", cfg: config.Server{GRPCAddress: ":9090"}, wantGRPC: true},
		{name: "no addresses", cfg: config.Server{}, wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// handlers only store the services pointer at construction time
			h, err := NewHandlers(&service.Services{}, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}
