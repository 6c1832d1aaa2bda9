// Package main is the entry point for the BlinkMD editor backend.
//
// The backend runs next to the editor web view and serves:
//   - File commands (open_file, save_file, save_file_as) over HTTP and IPC
//   - exit_app and ping
//   - Editor mode events for the global shortcuts
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./blinkmd-backend --port 1420
//
//	# Development mode (colored logs, debug level)
//	./blinkmd-backend --dev
//
//	# Print the shortcut table for macOS
//	./blinkmd-backend shortcuts --platform darwin
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
