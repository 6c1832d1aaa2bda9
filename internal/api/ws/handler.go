package ws

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/BlinkMD/backend/internal/api/middleware"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/domain/commands"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/domain/shortcuts"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/shared/id"
)

// ErrUnknownMessage reports a message type the handler does not understand.
var ErrUnknownMessage = errors.New("unknown message type")

// Handler manages WebSocket connections
type Handler struct {
	hub       *Hub
	commands  *commands.Registry
	registrar *shortcuts.Registrar
	primary   shortcuts.Modifier
	tracer    *tracing.Tracer
	logger    *zap.Logger
	origins   middleware.Origins
	upgrader  websocket.Upgrader
}

// NewHandler creates a new WebSocket handler. primary is the modifier
// CmdOrCtrl resolves to in shortcut messages. Until WithOrigins is called
// only clients that send no Origin header may connect.
func NewHandler(hub *Hub, registry *commands.Registry, registrar *shortcuts.Registrar, primary shortcuts.Modifier, tracer *tracing.Tracer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{
		hub:       hub,
		commands:  registry,
		registrar: registrar,
		primary:   primary,
		tracer:    tracer,
		logger:    logger,
	}
	h.upgrader.CheckOrigin = h.checkOrigin
	return h
}

// WithOrigins sets the browser origins allowed to open the socket.
func (h *Handler) WithOrigins(origins middleware.Origins) *Handler {
	h.origins = origins
	return h
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if h.origins.Allowed(origin) {
		return true
	}
	h.logger.Warn("Rejected WebSocket origin", zap.String("origin", origin))
	return false
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	cl := h.hub.add(conn)
	defer h.hub.remove(cl)

	reqCtx := c.Request.Context()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("WebSocket read error", zap.String("client_id", cl.id.String()), zap.Error(err))
			}
			return
		}

		var msg Message
		if err := sonic.Unmarshal(data, &msg); err != nil {
			h.hub.recordIn("malformed")
			h.reply(cl, ErrorMessage{
				Type:  TypeError,
				ID:    messageID(data),
				Error: commands.Failure{Code: commands.CodeInvalidArguments, Message: "malformed message"},
			})
			continue
		}
		h.hub.recordIn(inboundType(msg.Type))

		switch msg.Type {
		case TypeInvoke:
			h.handleInvoke(reqCtx, cl, msg)
		case TypeShortcut:
			h.handleShortcut(cl, msg)
		case TypeKey:
			h.handleKey(cl, msg)
		case TypePing:
			h.reply(cl, PongMessage{Type: TypePong})
		default:
			h.reply(cl, ErrorMessage{
				Type:  TypeError,
				ID:    msg.ID,
				Error: commands.FailureOf(fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)),
			})
		}
	}
}

func (h *Handler) handleInvoke(reqCtx context.Context, cl *client, msg Message) {
	ctx := reqCtx
	var span *tracing.Span
	if h.tracer != nil {
		span, ctx = h.tracer.StartSpan(reqCtx, "ws.invoke")
		span.SetTag("invocation_id", id.NewInvocationID().String())
		span.SetTag("command", msg.Command)
		span.SetTag("client_id", cl.id.String())
		if msg.ID != "" {
			span.SetTag("message_id", msg.ID)
		}
	}

	result, err := h.commands.Invoke(ctx, msg.Command, msg.Args)

	if span != nil {
		if err != nil {
			span.SetError(err)
		}
		span.Finish()
		h.tracer.Submit(span)
	}

	if err != nil {
		h.reply(cl, ErrorMessage{Type: TypeError, ID: msg.ID, Error: commands.FailureOf(err)})
		return
	}
	h.reply(cl, ResultMessage{Type: TypeResult, ID: msg.ID, Result: result})
}

func (h *Handler) handleShortcut(cl *client, msg Message) {
	acc, err := shortcuts.ParseAccelerator(msg.Accelerator, h.primary)
	if err != nil {
		h.reply(cl, ErrorMessage{
			Type:  TypeError,
			ID:    msg.ID,
			Error: commands.Failure{Code: commands.CodeInvalidArguments, Message: err.Error()},
		})
		return
	}

	if err := h.registrar.Handle(acc, msg.State); err != nil {
		h.logger.Warn("Shortcut dispatch failed",
			zap.String("accelerator", acc.String()),
			zap.Error(err),
		)
	}
}

func (h *Handler) handleKey(cl *client, msg Message) {
	cmd, ok := shortcuts.ResolveCommand(msg.KeyEvent)
	if !ok {
		return
	}

	if action, isMode := cmd.ModeAction(); isMode {
		if err := h.registrar.Trigger(action); err != nil {
			h.logger.Warn("Mode switch failed", zap.String("action", string(action)), zap.Error(err))
		}
		return
	}

	h.reply(cl, CommandMessage{Type: TypeCommand, Command: cmd})
}

func (h *Handler) reply(cl *client, msg interface{}) {
	msgType := messageType(msg)
	if err := cl.send(msg); err != nil {
		h.logger.Warn("Failed to send reply",
			zap.String("client_id", cl.id.String()),
			zap.String("type", msgType),
			zap.Error(err),
		)
		return
	}
	h.hub.recordOut(msgType)
}

// inboundType bounds the metric label to the message types the handler knows.
func inboundType(msgType string) string {
	switch msgType {
	case TypeInvoke, TypeShortcut, TypeKey, TypePing:
		return msgType
	}
	return "unknown"
}

// messageID recovers the id of a message that failed to decode as a whole.
func messageID(data []byte) string {
	node, err := sonic.Get(data, "id")
	if err != nil {
		return ""
	}
	msgID, err := node.String()
	if err != nil {
		return ""
	}
	return msgID
}

func messageType(msg interface{}) string {
	switch m := msg.(type) {
	case ResultMessage:
		return m.Type
	case ErrorMessage:
		return m.Type
	case CommandMessage:
		return m.Type
	case PongMessage:
		return m.Type
	case EventMessage:
		return m.Type
	}
	return "unknown"
}
