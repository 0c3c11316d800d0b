// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means the server config enables no transport.
// Startup fails on it.
var errNoHandlersAreCreated = errors.New("no handlers are created: neither HTTP nor gRPC address is set")
