// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server serves until ctx is cancelled, then shuts down gracefully.
// It also satisfies workers.Worker.
type Server interface {
	Run(ctx context.Context) error
}
