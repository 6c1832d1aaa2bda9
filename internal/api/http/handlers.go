package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/BlinkMD/backend/internal/domain/commands"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/domain/files"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/domain/shortcuts"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/infrastructure/monitoring"
)

// Version is reported by the root endpoint.
const Version = "0.1.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	commands  *commands.Registry
	registrar *shortcuts.Registrar
	metrics   *monitoring.Metrics
	clients   func() int
	logger    *zap.Logger
}

// NewHandlers creates a new handler set. clients reports the number of
// connected IPC clients and may be nil.
func NewHandlers(
	registry *commands.Registry,
	registrar *shortcuts.Registrar,
	metrics *monitoring.Metrics,
	clients func() int,
	logger *zap.Logger,
) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clients == nil {
		clients = func() int { return 0 }
	}
	return &Handlers{
		commands:  registry,
		registrar: registrar,
		metrics:   metrics,
		clients:   clients,
		logger:    logger,
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "BlinkMD backend",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	body := gin.H{
		"status":      "healthy",
		"commands":    h.commands.Names(),
		"shortcuts":   h.registrar.Bindings(),
		"ipc_clients": h.clients(),
	}
	if h.metrics != nil {
		body["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, body)
}

// Ping answers liveness checks from the web view
func (h *Handlers) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": commands.PongResult})
}

// InvokeCommand runs a registered command with the request body as its
// JSON arguments.
func (h *Handlers) InvokeCommand(c *gin.Context) {
	name := c.Param("name")
	if !requireJSON(c) {
		return
	}

	args, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": commands.Failure{
			Code:    commands.CodeInvalidArguments,
			Message: "failed to read request body",
		}})
		return
	}

	result, err := h.commands.Invoke(c.Request.Context(), name, args)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Command failed", zap.String("command", name), zap.Error(err))
			_ = c.Error(err)
		}
		c.JSON(status, gin.H{"error": commands.FailureOf(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// Shortcuts lists the resolved global shortcut table
func (h *Handlers) Shortcuts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"shortcuts": h.registrar.Bindings(),
	})
}

// requireJSON rejects bodies a page could send cross-origin without a
// preflight, such as text/plain or form posts.
func requireJSON(c *gin.Context) bool {
	if c.ContentType() == gin.MIMEJSON {
		return true
	}
	c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": commands.Failure{
		Code:    commands.CodeInvalidArguments,
		Message: "Content-Type must be application/json",
	}})
	return false
}

func statusFor(err error) int {
	if _, ok := files.AsCommandError(err); ok {
		return http.StatusUnprocessableEntity
	}
	switch {
	case errors.Is(err, commands.ErrUnknownCommand):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrInvalidArguments):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
