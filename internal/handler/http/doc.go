// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the legal-dms server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, authentication and per-route
// authorization are handled in this package before requests are delegated
// to the service layer.
package http
