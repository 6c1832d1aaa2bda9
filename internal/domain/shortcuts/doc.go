// Package shortcuts registers the editor's global keyboard shortcuts and turns
// their presses into front-end notifications.
//
// The accelerator for each action comes from a small table keyed by platform
// (macOS uses Super, every other platform uses Control). The table is
// resolved once at startup, optionally patched by a YAML or TOML keymap file,
// and handed to a Registrar. Registration failures abort startup; a press
// emits exactly one event and releases emit nothing.
//
// Example Usage:
//
//	bindings, err := shortcuts.Resolve(runtime.GOOS, shortcuts.Options{Split: true})
//	reg := shortcuts.NewRegistrar(bindings, ctrl, logger)
//	if err := reg.Setup(shortcuts.NewSoftwareHost()); err != nil {
//		return err
//	}
//	_ = reg.Handle(shortcuts.MustParse("Control+E", shortcuts.ModControl), shortcuts.StatePressed)
package shortcuts
