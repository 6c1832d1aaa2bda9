package host

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
)

// Controller terminates the process and emits front-end notifications.
type Controller interface {
	Exit(code int)
	Emit(event string, payload interface{}) error
}

// Event is a named notification delivered to the front end.
type Event struct {
	Name    string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Emitter delivers events to connected front ends.
type Emitter interface {
	Broadcast(evt Event) error
}

// App is the process-level Controller.
type App struct {
	logger *zap.Logger
	exit   func(int)

	mu      sync.RWMutex
	emitter Emitter
	hooks   []func()
}

// Option configures an App.
type Option func(*App)

// WithExitFunc replaces os.Exit.
func WithExitFunc(fn func(int)) Option {
	return func(a *App) {
		a.exit = fn
	}
}

// WithEmitter sets the event emitter.
func WithEmitter(e Emitter) Option {
	return func(a *App) {
		a.emitter = e
	}
}

// New creates a host controller
func New(logger *zap.Logger, opts ...Option) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		logger: logger,
		exit:   os.Exit,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetEmitter swaps the emitter once the transport exists.
func (a *App) SetEmitter(e Emitter) {
	a.mu.Lock()
	a.emitter = e
	a.mu.Unlock()
}

// OnExit registers a hook run before the process terminates.
func (a *App) OnExit(fn func()) {
	a.mu.Lock()
	a.hooks = append(a.hooks, fn)
	a.mu.Unlock()
}

// Exit runs the exit hooks in registration order and terminates with code.
func (a *App) Exit(code int) {
	a.logger.Info("Exit requested", zap.Int("code", code))

	a.mu.RLock()
	hooks := make([]func(), len(a.hooks))
	copy(hooks, a.hooks)
	a.mu.RUnlock()

	for _, hook := range hooks {
		hook()
	}
	a.exit(code)
}

// Emit broadcasts a named event. Having no emitter is not an error.
func (a *App) Emit(event string, payload interface{}) error {
	if event == "" {
		return fmt.Errorf("event name cannot be empty")
	}

	a.mu.RLock()
	emitter := a.emitter
	a.mu.RUnlock()

	if emitter == nil {
		a.logger.Debug("No emitter attached, dropping event", zap.String("event", event))
		return nil
	}

	if err := emitter.Broadcast(Event{Name: event, Payload: payload}); err != nil {
		return fmt.Errorf("failed to emit %s: %w", event, err)
	}
	return nil
}
