// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the backend.
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal
	// arrives or a component fails.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// templateWatcher reloads the served template on file changes.
type templateWatcher interface {
	Watch(ctx context.Context) error
}
