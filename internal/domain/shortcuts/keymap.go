package shortcuts

import "strings"

// Command is an editor command reachable from the in-window keymap.
type Command string

const (
	CommandOpen    Command = "open"
	CommandSave    Command = "save"
	CommandSaveAs  Command = "saveAs"
	CommandEdit    Command = "edit"
	CommandPreview Command = "preview"
	CommandSplit   Command = "split"
)

// KeyEvent is a keydown as reported by the web view.
type KeyEvent struct {
	Key      string `json:"key"`
	MetaKey  bool   `json:"metaKey"`
	CtrlKey  bool   `json:"ctrlKey"`
	AltKey   bool   `json:"altKey"`
	ShiftKey bool   `json:"shiftKey"`
}

// ResolveCommand maps a keydown to a command. Cmd or Ctrl is required and
// Alt disqualifies the event.
func ResolveCommand(evt KeyEvent) (Command, bool) {
	if !(evt.MetaKey || evt.CtrlKey) || evt.AltKey {
		return "", false
	}

	switch strings.ToLower(evt.Key) {
	case "o":
		return CommandOpen, true
	case "s":
		if evt.ShiftKey {
			return CommandSaveAs, true
		}
		return CommandSave, true
	case "e":
		return CommandEdit, true
	case "r":
		return CommandPreview, true
	case "\\":
		return CommandSplit, true
	}

	return "", false
}

// ModeAction returns the shortcut action for mode-switch commands.
func (c Command) ModeAction() (Action, bool) {
	switch c {
	case CommandEdit:
		return ActionEdit, true
	case CommandPreview:
		return ActionPreview, true
	case CommandSplit:
		return ActionSplit, true
	}
	return "", false
}
