// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/legal-dms/internal/logger"
	"github.com/MKhiriev/legal-dms/internal/service"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every request; zero disables the timeout.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Dur("request_timeout", requestTimeout).Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
