// Package server runs the application's HTTP server.
//
// It owns the listener lifecycle: startup with read, write and idle
// timeouts, and graceful shutdown once the run context is cancelled.
package server
