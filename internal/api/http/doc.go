// Package http provides the REST surface of the BlinkMD backend.
//
// Endpoints:
//   - GET  /               Service banner
//   - GET  /health         Health with registered commands and shortcuts
//   - GET  /ping           {"result":"pong"}
//   - POST /commands/:name Invoke a command with a JSON argument object
//   - GET  /shortcuts      Resolved global shortcut table
//   - GET  /metrics/json   Metrics summary for the web view
//   - POST /logs           Web view log relay
//
// Command failures are returned as {"error": {"code", "message"}}. File
// errors use 422, unknown commands 404 and malformed arguments 400.
package http
