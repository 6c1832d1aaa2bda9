package shortcuts

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/BlinkMD/backend/internal/host"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/infrastructure/monitoring"
)

// State is the press state reported by the host for an accelerator.
type State string

const (
	StatePressed  State = "pressed"
	StateReleased State = "released"
)

// ErrAlreadyRegistered reports an accelerator that is already taken.
var ErrAlreadyRegistered = errors.New("accelerator already registered")

// Host is the windowing surface global shortcuts are registered with.
type Host interface {
	Register(acc Accelerator) error
}

// SoftwareHost keeps registrations in memory. The native shell forwards
// press-state transitions for registered accelerators over IPC.
type SoftwareHost struct {
	mu         sync.RWMutex
	registered map[Accelerator]struct{}
}

// NewSoftwareHost creates an empty host
func NewSoftwareHost() *SoftwareHost {
	return &SoftwareHost{registered: make(map[Accelerator]struct{})}
}

// Register claims acc. Accelerators need a modifier and must be unique.
func (h *SoftwareHost) Register(acc Accelerator) error {
	if acc.Key == "" || acc.Modifiers == ModNone {
		return fmt.Errorf("%w: %q needs a key and at least one modifier", ErrInvalidAccelerator, acc)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, taken := h.registered[acc]; taken {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, acc)
	}
	h.registered[acc] = struct{}{}
	return nil
}

// IsRegistered reports whether acc was registered
func (h *SoftwareHost) IsRegistered(acc Accelerator) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.registered[acc]
	return ok
}

// Registrar registers bindings and emits their notifications on press.
type Registrar struct {
	bindings []Binding
	ctrl     host.Controller
	logger   *zap.Logger
	metrics  *monitoring.Metrics

	mu     sync.RWMutex
	active map[Accelerator]Binding
}

// NewRegistrar creates a registrar for the resolved bindings
func NewRegistrar(bindings []Binding, ctrl host.Controller, logger *zap.Logger) *Registrar {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registrar{
		bindings: bindings,
		ctrl:     ctrl,
		logger:   logger,
		active:   make(map[Accelerator]Binding),
	}
}

// WithMetrics adds metrics tracking
func (r *Registrar) WithMetrics(metrics *monitoring.Metrics) *Registrar {
	r.metrics = metrics
	return r
}

// Setup registers every binding with h. The first failure is returned and
// bindings after it stay unregistered.
func (r *Registrar) Setup(h Host) error {
	for _, b := range r.bindings {
		if err := h.Register(b.Accelerator); err != nil {
			return fmt.Errorf("failed to register %s shortcut %s: %w", b.Action, b.Accelerator, err)
		}

		r.mu.Lock()
		r.active[b.Accelerator] = b
		r.mu.Unlock()

		r.logger.Info("Registered shortcut",
			zap.String("action", string(b.Action)),
			zap.String("accelerator", b.Accelerator.String()),
		)
	}
	return nil
}

// Handle processes one press-state transition. Only presses of registered
// accelerators emit; everything else is ignored.
func (r *Registrar) Handle(acc Accelerator, state State) error {
	if state != StatePressed {
		return nil
	}

	r.mu.RLock()
	b, ok := r.active[acc]
	r.mu.RUnlock()
	if !ok {
		r.logger.Debug("Ignoring unregistered accelerator", zap.String("accelerator", acc.String()))
		return nil
	}

	return r.emit(b.Event)
}

// Trigger emits the notification for action as if its shortcut was pressed.
// Actions without a registered binding, such as split when it is disabled,
// are ignored.
func (r *Registrar) Trigger(action Action) error {
	if _, ok := EventFor(action); !ok {
		return fmt.Errorf("unknown shortcut action %q", action)
	}

	r.mu.RLock()
	var (
		event string
		bound bool
	)
	for _, b := range r.active {
		if b.Action == action {
			event, bound = b.Event, true
			break
		}
	}
	r.mu.RUnlock()

	if !bound {
		r.logger.Debug("Ignoring unbound shortcut action", zap.String("action", string(action)))
		return nil
	}
	return r.emit(event)
}

// Bindings returns the resolved binding table
func (r *Registrar) Bindings() []Binding {
	out := make([]Binding, len(r.bindings))
	copy(out, r.bindings)
	return out
}

// Lookup returns the active binding for acc.
func (r *Registrar) Lookup(acc Accelerator) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.active[acc]
	return b, ok
}

func (r *Registrar) emit(event string) error {
	if err := r.ctrl.Emit(event, nil); err != nil {
		r.logger.Warn("Failed to emit shortcut event", zap.String("event", event), zap.Error(err))
		return err
	}
	if r.metrics != nil {
		r.metrics.RecordShortcutEvent(event)
	}
	return nil
}
