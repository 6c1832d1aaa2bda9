// Package ws provides the WebSocket IPC channel between the editor web view
// and the backend.
//
// Message Types (Client → Server):
//   - invoke: Run a command with JSON arguments
//   - shortcut: Press-state transition of a global accelerator
//   - key: In-window keydown resolved through the editor keymap
//   - ping: Keep-alive ping
//
// Message Types (Server → Client):
//   - result: Command result, correlated by id
//   - error: Command failure {code, message}, correlated by id
//   - event: Broadcast notification such as blinkmd://shortcut-edit-mode
//   - command: Editor command resolved from a key message
//   - pong: Keep-alive reply
//
// Example Usage:
//
//	hub := ws.NewHub(logger).WithMetrics(metrics)
//	app.SetEmitter(hub)
//	handler := ws.NewHandler(hub, registry, registrar, primary, tracer, logger)
//	router.GET("/ipc", handler.HandleConnection)
package ws
