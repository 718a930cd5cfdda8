// Package server runs the HTTP transport of the cipher-chat server.
//
// It owns the listener lifecycle: startup, waiting for a termination signal
// and graceful shutdown.
package server
