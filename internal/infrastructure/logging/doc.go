// Package logging builds the zap logger used across the server.
//
// Production mode writes JSON lines; development mode writes colored
// console lines.
//
//	logger, err := logging.New(logging.Config{Level: "info", Output: "stdout"})
//	logger.Info("Server starting", zap.String("addr", "127.0.0.1:1420"))
package logging
