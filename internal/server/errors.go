// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrListen is returned when a transport cannot bind its address.
	ErrListen = errors.New("error listening on address")
)
