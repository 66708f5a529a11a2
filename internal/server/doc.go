// Package server runs the application's HTTP transport.
//
// It owns the server lifecycle: startup, signal handling, and graceful
// shutdown of in-flight requests.
package server
