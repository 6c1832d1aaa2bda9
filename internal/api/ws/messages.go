package ws

import (
	"encoding/json"

	"github.com/GriffinCanCode/BlinkMD/backend/internal/domain/commands"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/domain/shortcuts"
)

// Message types
const (
	TypeInvoke   = "invoke"
	TypeShortcut = "shortcut"
	TypeKey      = "key"
	TypePing     = "ping"

	TypeResult  = "result"
	TypeError   = "error"
	TypeEvent   = "event"
	TypeCommand = "command"
	TypePong    = "pong"
)

// Message is a client message. Fields are populated according to Type.
type Message struct {
	Type string `json:"type"`

	// invoke
	ID      string          `json:"id,omitempty"`
	Command string          `json:"command,omitempty"`
	Args    json.RawMessage `json:"args,omitempty"`

	// shortcut
	Accelerator string          `json:"accelerator,omitempty"`
	State       shortcuts.State `json:"state,omitempty"`

	// key
	shortcuts.KeyEvent
}

// ResultMessage answers a successful invoke.
type ResultMessage struct {
	Type   string      `json:"type"`
	ID     string      `json:"id,omitempty"`
	Result interface{} `json:"result"`
}

// ErrorMessage answers a failed invoke or a malformed message.
type ErrorMessage struct {
	Type  string           `json:"type"`
	ID    string           `json:"id,omitempty"`
	Error commands.Failure `json:"error"`
}

// EventMessage is broadcast to every client.
type EventMessage struct {
	Type    string      `json:"type"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// CommandMessage hands a keymap command back to the web view.
type CommandMessage struct {
	Type    string            `json:"type"`
	Command shortcuts.Command `json:"command"`
}

// PongMessage answers ping.
type PongMessage struct {
	Type string `json:"type"`
}
