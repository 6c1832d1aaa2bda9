package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/BlinkMD/backend/internal/domain/shortcuts"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/infrastructure/config"
)

func TestPrintShortcuts(t *testing.T) {
	color.NoColor = true

	bindings, err := resolveShortcuts(config.ShortcutConfig{Platform: "darwin", SplitEnabled: true})
	require.NoError(t, err)

	var buf bytes.Buffer
	printShortcuts(&buf, "darwin", bindings)
	out := buf.String()

	assert.Contains(t, out, "Global shortcuts (darwin)")
	assert.Contains(t, out, "Super+E")
	assert.Contains(t, out, "blinkmd://shortcut-preview-mode")
	assert.Contains(t, out, "Super+Backslash")
}

func TestPrintTablesForEveryPlatform(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	require.NoError(t, printTables(&buf, config.ShortcutConfig{SplitEnabled: true}, shortcuts.Platforms()))
	out := buf.String()

	for _, platform := range shortcuts.Platforms() {
		assert.Contains(t, out, "Global shortcuts ("+platform+")")
	}
	assert.Contains(t, out, "Super+Backslash")
	assert.Contains(t, out, "Control+Backslash")
}

func TestShortcutsCommandAll(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	shortcutsCmd.SetOut(&buf)
	require.NoError(t, shortcutsCmd.ParseFlags([]string{"--all"}))
	t.Cleanup(func() {
		showAllPlatforms = false
		shortcutsCmd.SetOut(nil)
	})

	require.NoError(t, shortcutsCmd.RunE(shortcutsCmd, nil))
	assert.Equal(t, len(shortcuts.Platforms()), strings.Count(buf.String(), "Global shortcuts ("))
}

func TestResolveShortcutsWithoutSplit(t *testing.T) {
	bindings, err := resolveShortcuts(config.ShortcutConfig{Platform: "linux"})
	require.NoError(t, err)
	require.Len(t, bindings, 2)
	assert.Equal(t, "Control+R", bindings[1].Accelerator.String())
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")

	require.NoError(t, rootCmd.ParseFlags([]string{"--port", "2000", "--platform", "windows", "--dev"}))
	t.Cleanup(func() {
		flags.port, flags.platform, flags.dev = "", "", false
		rootCmd.Flags().Lookup("port").Changed = false
	})

	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, "2000", cfg.Server.Port)
	assert.Equal(t, "windows", cfg.Shortcuts.ResolvedPlatform())
	assert.True(t, cfg.Logging.Development)
	assert.True(t, strings.EqualFold("debug", cfg.Logging.Level))
}
