package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/BlinkMD/backend/internal/domain/files"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/infrastructure/monitoring"
)

var (
	// ErrUnknownCommand reports a command name with no handler.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidArguments reports arguments that could not be decoded.
	ErrInvalidArguments = errors.New("invalid arguments")
)

// unknownLabel is the metric label for every unregistered command name.
const unknownLabel = "unknown"

// Handler executes one command with raw JSON arguments.
type Handler func(ctx context.Context, args []byte) (interface{}, error)

// Registry maps command names to handlers
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	logger   *zap.Logger
	metrics  *monitoring.Metrics
}

// NewRegistry creates an empty command registry
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		handlers: make(map[string]Handler),
		logger:   logger,
	}
}

// WithMetrics adds metrics tracking
func (r *Registry) WithMetrics(metrics *monitoring.Metrics) *Registry {
	r.metrics = metrics
	return r
}

// Register adds a handler under name
func (r *Registry) Register(name string, handler Handler) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("command %s: handler cannot be nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("command %s already registered", name)
	}
	r.handlers[name] = handler
	return nil
}

// Invoke runs the named command
func (r *Registry) Invoke(ctx context.Context, name string, args []byte) (interface{}, error) {
	r.mu.RLock()
	handler, ok := r.handlers[name]
	r.mu.RUnlock()

	if !ok {
		if r.metrics != nil {
			r.metrics.RecordCommand(unknownLabel, "unknown", 0)
		}
		r.logger.Debug("Unknown command", zap.String("command", name))
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	timer := monitoring.NewTimer(r.metrics, name)
	result, err := handler(ctx, args)
	timer.Stop(statusOf(err))

	if err != nil {
		r.logger.Debug("Command failed", zap.String("command", name), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// Names returns the registered command names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DecodeArgs decodes a JSON argument object into v. Empty input decodes as {}.
func DecodeArgs(args []byte, v interface{}) error {
	args = bytes.TrimSpace(args)
	if len(args) == 0 || bytes.Equal(args, []byte("null")) {
		args = []byte("{}")
	}
	if err := sonic.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return nil
}

func statusOf(err error) string {
	if err == nil {
		return monitoring.StatusOK
	}
	if cmdErr, ok := files.AsCommandError(err); ok {
		return string(cmdErr.Code)
	}
	if errors.Is(err, ErrInvalidArguments) {
		return "invalid_arguments"
	}
	return "error"
}
