// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Run serves requests until ctx is cancelled, then stops gracefully. It
// returns nil after a graceful stop and an error if serving failed.
// Any Server can be run as a background worker.
type Server interface {
	Run(ctx context.Context) error
}
