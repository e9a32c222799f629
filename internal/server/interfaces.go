package server

import "context"

// Server is the lifecycle contract of the transports managed here.
type Server interface {
	// RunServer serves until ctx is done, then shuts down.
	RunServer(ctx context.Context)

	// Shutdown stops serving and releases listeners.
	Shutdown()
}
