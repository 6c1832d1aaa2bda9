package ws

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/BlinkMD/backend/internal/host"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/shared/id"
)

const writeWait = 10 * time.Second

// client is one connected web view. Writes are serialized because replies
// and broadcasts come from different goroutines.
type client struct {
	id   id.ClientID
	conn *websocket.Conn

	writeMu sync.Mutex
}

func (c *client) send(v interface{}) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub tracks connected clients and broadcasts events to them.
type Hub struct {
	logger  *zap.Logger
	metrics *monitoring.Metrics

	mu      sync.RWMutex
	clients map[id.ClientID]*client
}

// NewHub creates an empty hub
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		logger:  logger,
		clients: make(map[id.ClientID]*client),
	}
}

// WithMetrics adds metrics tracking
func (h *Hub) WithMetrics(metrics *monitoring.Metrics) *Hub {
	h.metrics = metrics
	return h
}

func (h *Hub) add(conn *websocket.Conn) *client {
	c := &client{id: id.NewClientID(), conn: conn}

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.IncWSConnections()
	}
	h.logger.Info("Client connected", zap.String("client_id", c.id.String()))
	return c
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c.id]
	delete(h.clients, c.id)
	h.mu.Unlock()

	if !ok {
		return
	}
	if h.metrics != nil {
		h.metrics.DecWSConnections()
	}
	h.logger.Info("Client disconnected", zap.String("client_id", c.id.String()))
}

// Count returns the number of connected clients
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends evt to every connected client. A client that cannot be
// written to does not stop delivery to the others.
func (h *Hub) Broadcast(evt host.Event) error {
	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	msg := EventMessage{Type: TypeEvent, Event: evt.Name, Payload: evt.Payload}

	var errs []error
	for _, c := range targets {
		if err := c.send(msg); err != nil {
			h.logger.Warn("Failed to deliver event",
				zap.String("client_id", c.id.String()),
				zap.String("event", evt.Name),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("client %s: %w", c.id, err))
			continue
		}
		h.recordOut(TypeEvent)
	}
	return errors.Join(errs...)
}

func (h *Hub) recordIn(msgType string) {
	if h.metrics != nil {
		h.metrics.RecordWSMessage("in", msgType)
	}
}

func (h *Hub) recordOut(msgType string) {
	if h.metrics != nil {
		h.metrics.RecordWSMessage("out", msgType)
	}
}
