// Package server wires the BlinkMD backend together: logging, metrics,
// tracing, the command registry, global shortcuts and the HTTP and
// WebSocket transports.
package server
