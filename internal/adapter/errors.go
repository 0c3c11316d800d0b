// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors returned by the audit sinks. HTTP status errors wrap the response
// body for diagnostics.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("sink unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrSinkUnavailable is returned when the sink cannot be reached or is
	// sealed.
	ErrSinkUnavailable = errors.New("audit sink unavailable")

	// ErrUnsupportedSink is returned by [NewAuditSink] for an unknown kind.
	ErrUnsupportedSink = errors.New("unsupported audit sink")

	// ErrInvalidSinkAddress is returned when a sink address cannot be parsed.
	ErrInvalidSinkAddress = errors.New("invalid audit sink address")
)
