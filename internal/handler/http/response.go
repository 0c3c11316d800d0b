// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/legal-dms/internal/logger"
	"github.com/MKhiriev/legal-dms/internal/utils"
	"github.com/MKhiriev/legal-dms/models"
)

// maxBodyBytes limits the size of accepted request bodies.
const maxBodyBytes = 1 << 20

// writeResponse writes resp as JSON with the given status.
func writeResponse(w http.ResponseWriter, r *http.Request, resp models.Response, status int) {
	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "http.writeResponse").Msg("error writing response")
	}
}

// writeError maps err to a status and a machine code and writes the error
// envelope. Server-side failures are logged at error level.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("code", code).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("code", code).Msg("request rejected")
	}

	writeResponse(w, r, models.Response{
		Success: false,
		Message: messageFromError(err, status),
		Code:    code,
	}, status)
}

// decodeJSON decodes the request body into v. An empty body is an error
// unless allowEmpty is set, in which case v is left untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(body).Decode(v)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF) && allowEmpty:
		return nil
	default:
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}

func count(n int) *int {
	return &n
}
