package shortcuts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// LoadOverrides reads a keymap file. The format follows the extension:
// .yaml/.yml or .toml.
//
//	darwin:
//	  split: Super+Shift+Backslash
//	default:
//	  preview: CmdOrCtrl+P
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keymap %s: %w", path, err)
	}
	return ParseOverrides(data, filepath.Ext(path))
}

// ParseOverrides decodes keymap data in the format named by ext.
func ParseOverrides(data []byte, ext string) (Overrides, error) {
	var raw map[string]map[string]string

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML keymap: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse TOML keymap: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported keymap format %q", ext)
	}

	overrides := make(Overrides, len(raw))
	for platform, row := range raw {
		actions := make(map[Action]string, len(row))
		for action, accelerator := range row {
			actions[Action(strings.ToLower(action))] = accelerator
		}
		overrides[strings.ToLower(platform)] = actions
	}
	return overrides, nil
}
