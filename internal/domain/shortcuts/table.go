package shortcuts

import (
	"fmt"
	"sort"
)

// Action is the editor mode a shortcut switches to.
type Action string

const (
	ActionEdit    Action = "edit"
	ActionPreview Action = "preview"
	ActionSplit   Action = "split"
)

// Notification names emitted to the front end.
const (
	EventEditMode    = "blinkmd://shortcut-edit-mode"
	EventPreviewMode = "blinkmd://shortcut-preview-mode"
	EventSplitMode   = "blinkmd://shortcut-split-mode"
)

// DefaultPlatform is the table row used for every platform without its own entry.
const DefaultPlatform = "default"

// Binding ties an action to its accelerator and notification.
type Binding struct {
	Action      Action      `json:"action"`
	Accelerator Accelerator `json:"accelerator"`
	Event       string      `json:"event"`
}

// primaryModifiers is the platform table: the modifier every shortcut uses.
var primaryModifiers = map[string]Modifier{
	"darwin":        ModSuper,
	DefaultPlatform: ModControl,
}

var actionKeys = []struct {
	action Action
	key    string
	event  string
}{
	{ActionEdit, "E", EventEditMode},
	{ActionPreview, "R", EventPreviewMode},
	{ActionSplit, "Backslash", EventSplitMode},
}

// Overrides replaces accelerators per platform and action, e.g.
// {"darwin": {"split": "Super+Shift+Backslash"}}.
type Overrides map[string]map[Action]string

// Options controls table resolution.
type Options struct {
	// Split enables the optional split-mode shortcut.
	Split bool

	// Overrides patches the resolved accelerators.
	Overrides Overrides
}

// EventFor returns the notification emitted for action.
func EventFor(action Action) (string, bool) {
	for _, ak := range actionKeys {
		if ak.action == action {
			return ak.event, true
		}
	}
	return "", false
}

// PrimaryModifier returns the shortcut modifier for a platform (a GOOS value).
func PrimaryModifier(platform string) Modifier {
	if mod, ok := primaryModifiers[platform]; ok {
		return mod
	}
	return primaryModifiers[DefaultPlatform]
}

// Resolve builds the binding list for a platform.
func Resolve(platform string, opts Options) ([]Binding, error) {
	primary := PrimaryModifier(platform)

	patch, err := overridesFor(platform, opts.Overrides)
	if err != nil {
		return nil, err
	}

	bindings := make([]Binding, 0, len(actionKeys))
	seen := make(map[Accelerator]Action, len(actionKeys))

	for _, ak := range actionKeys {
		if ak.action == ActionSplit && !opts.Split {
			continue
		}

		acc := Accelerator{Modifiers: primary, Key: ak.key}
		if text, ok := patch[ak.action]; ok {
			acc, err = ParseAccelerator(text, primary)
			if err != nil {
				return nil, fmt.Errorf("override for %s on %s: %w", ak.action, platform, err)
			}
		}

		if other, dup := seen[acc]; dup {
			return nil, fmt.Errorf("%w: %s bound to both %s and %s", ErrInvalidAccelerator, acc, other, ak.action)
		}
		seen[acc] = ak.action

		bindings = append(bindings, Binding{
			Action:      ak.action,
			Accelerator: acc,
			Event:       ak.event,
		})
	}

	return bindings, nil
}

// overridesFor merges the default row with the platform's own row.
func overridesFor(platform string, overrides Overrides) (map[Action]string, error) {
	merged := make(map[Action]string)

	rows := []string{DefaultPlatform}
	if _, ok := primaryModifiers[platform]; ok && platform != DefaultPlatform {
		// Platforms with their own modifier do not inherit the default row.
		rows = nil
	}
	rows = append(rows, platform)

	for _, row := range rows {
		for action, text := range overrides[row] {
			if _, ok := EventFor(action); !ok {
				return nil, fmt.Errorf("unknown shortcut action %q in keymap row %q", action, row)
			}
			merged[action] = text
		}
	}

	return merged, nil
}

// Platforms lists the table rows, sorted.
func Platforms() []string {
	out := make([]string, 0, len(primaryModifiers))
	for p := range primaryModifiers {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
