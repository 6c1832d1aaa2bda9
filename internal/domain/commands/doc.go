// Package commands dispatches named backend commands invoked by the front end.
//
// The HTTP API and the WebSocket IPC channel both route through a Registry,
// so every command behaves the same regardless of transport. Arguments are
// JSON objects; results are whatever the handler returns, and failures from
// the file layer surface as *files.CommandError.
//
// Built-in commands:
//   - ping: liveness check, returns "pong"
//   - open_file {path}: returns {path, content}
//   - save_file {path, content}: returns the normalized path
//   - save_file_as {path, content}: same as save_file
//   - exit_app: terminates the process through the host controller
package commands
