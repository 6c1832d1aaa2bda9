package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process logger shared by the server and its handlers.
type Logger struct {
	*zap.Logger
}

// Config selects the level, encoding and sink of the process logger.
type Config struct {
	Level string
	// Development switches to colored console lines with stack traces on warn.
	Development bool
	// Output is "stdout", "stderr" or a file path. Empty means stdout.
	Output string
}

// New builds a logger from zap's production or development presets. Every
// entry carries service=blinkmd so editor logs can be told apart when the
// sink is shared.
func New(cfg Config) (*Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapCfg = zap.NewProductionConfig()
		zapCfg.Sampling = nil
		zapCfg.DisableStacktrace = true
		zapCfg.EncoderConfig.TimeKey = "timestamp"
		zapCfg.EncoderConfig.MessageKey = "message"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	output := cfg.Output
	if output == "" {
		output = "stdout"
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{output}

	logger, err := zapCfg.Build(zap.Fields(zap.String("service", "blinkmd")))
	if err != nil {
		return nil, fmt.Errorf("build logger for %s: %w", output, err)
	}
	return &Logger{Logger: logger}, nil
}

// Sync flushes buffered entries. Errors from syncing stdout are ignored.
func (l *Logger) Sync() {
	_ = l.Logger.Sync()
}
