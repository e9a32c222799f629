// Package server runs the HTTP API and the optional gRPC health endpoint
// and stops both gracefully when the run context ends.
package server
