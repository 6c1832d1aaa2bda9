package shortcuts

import (
	"errors"
	"fmt"
	"strings"
)

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModControl indicates the Control key.
	ModControl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModSuper indicates the Command key on macOS, Windows key elsewhere.
	ModSuper
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModControl, "Control"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModSuper, "Super"},
}

// ErrInvalidAccelerator reports an accelerator that cannot be parsed or registered.
var ErrInvalidAccelerator = errors.New("invalid accelerator")

// Accelerator is one global shortcut: a set of modifiers plus a key.
type Accelerator struct {
	Modifiers Modifier
	Key       string
}

// String renders the accelerator as "Control+Shift+E".
func (a Accelerator) String() string {
	parts := make([]string, 0, len(modifierOrder)+1)
	for _, m := range modifierOrder {
		if a.Modifiers.Has(m.mod) {
			parts = append(parts, m.name)
		}
	}
	parts = append(parts, a.Key)
	return strings.Join(parts, "+")
}

// MarshalText implements encoding.TextMarshaler.
func (a Accelerator) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

var namedKeys = map[string]string{
	"backslash": "Backslash",
	"\\":        "Backslash",
	"slash":     "Slash",
	"/":         "Slash",
	"comma":     "Comma",
	",":         "Comma",
	"period":    "Period",
	".":         "Period",
	"enter":     "Enter",
	"escape":    "Escape",
	"esc":       "Escape",
	"space":     "Space",
	"tab":       "Tab",
}

// ParseAccelerator parses "Super+E", "ctrl+shift+s" or "CmdOrCtrl+R".
// CmdOrCtrl resolves to primary.
func ParseAccelerator(text string, primary Modifier) (Accelerator, error) {
	if strings.TrimSpace(text) == "" {
		return Accelerator{}, fmt.Errorf("%w: empty", ErrInvalidAccelerator)
	}

	tokens := strings.Split(strings.TrimSpace(text), "+")
	var acc Accelerator
	for i, raw := range tokens {
		tok := strings.TrimSpace(raw)
		last := i == len(tokens)-1

		if !last {
			mod, ok := parseModifier(tok, primary)
			if !ok {
				return Accelerator{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidAccelerator, tok, text)
			}
			acc.Modifiers |= mod
			continue
		}

		key, ok := parseKey(tok)
		if !ok {
			return Accelerator{}, fmt.Errorf("%w: unknown key %q in %q", ErrInvalidAccelerator, tok, text)
		}
		acc.Key = key
	}

	return acc, nil
}

// MustParse is ParseAccelerator that panics on error.
func MustParse(text string, primary Modifier) Accelerator {
	acc, err := ParseAccelerator(text, primary)
	if err != nil {
		panic(err)
	}
	return acc
}

func parseModifier(tok string, primary Modifier) (Modifier, bool) {
	switch strings.ToLower(tok) {
	case "shift":
		return ModShift, true
	case "ctrl", "control":
		return ModControl, true
	case "alt", "option":
		return ModAlt, true
	case "super", "cmd", "command", "meta":
		return ModSuper, true
	case "cmdorctrl", "commandorcontrol":
		return primary, primary != ModNone
	}
	return ModNone, false
}

func parseKey(tok string) (string, bool) {
	if named, ok := namedKeys[strings.ToLower(tok)]; ok {
		return named, true
	}

	if len(tok) == 1 {
		c := tok[0]
		switch {
		case c >= 'a' && c <= 'z':
			return string(c - 'a' + 'A'), true
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return tok, true
		}
	}

	upper := strings.ToUpper(tok)
	if len(upper) >= 2 && upper[0] == 'F' {
		switch upper[1:] {
		case "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12":
			return upper, true
		}
	}

	return "", false
}
