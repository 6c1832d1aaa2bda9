package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/BlinkMD/backend/internal/domain/shortcuts"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/infrastructure/config"
)

var shortcutsCmd = &cobra.Command{
	Use:   "shortcuts",
	Short: "Print the global shortcut table",
	Long: `Resolve the global shortcut table for the configured platform, including keymap overrides, and print it.
With --all every platform row is printed.`,
	RunE: showShortcuts,
}

var showAllPlatforms bool

func init() {
	shortcutsCmd.Flags().BoolVar(&showAllPlatforms, "all", false, "Print the table for every platform")
	rootCmd.AddCommand(shortcutsCmd)
}

func showShortcuts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	platforms := []string{cfg.Shortcuts.ResolvedPlatform()}
	if showAllPlatforms {
		platforms = shortcuts.Platforms()
	}
	return printTables(cmd.OutOrStdout(), cfg.Shortcuts, platforms)
}

func printTables(w io.Writer, cfg config.ShortcutConfig, platforms []string) error {
	for _, platform := range platforms {
		cfg.Platform = platform
		bindings, err := resolveShortcuts(cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", platform, err)
		}
		printShortcuts(w, platform, bindings)
	}
	return nil
}

func resolveShortcuts(cfg config.ShortcutConfig) ([]shortcuts.Binding, error) {
	var overrides shortcuts.Overrides
	if cfg.KeymapFile != "" {
		loaded, err := shortcuts.LoadOverrides(cfg.KeymapFile)
		if err != nil {
			return nil, err
		}
		overrides = loaded
	}

	return shortcuts.Resolve(cfg.ResolvedPlatform(), shortcuts.Options{
		Split:     cfg.SplitEnabled,
		Overrides: overrides,
	})
}

func printShortcuts(w io.Writer, platform string, bindings []shortcuts.Binding) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)

	cyan.Fprintln(w, strings.Repeat("=", 60))
	cyan.Fprintf(w, "  Global shortcuts (%s)\n", platform)
	cyan.Fprintln(w, strings.Repeat("=", 60))

	for _, b := range bindings {
		fmt.Fprintf(w, "  %-8s ", b.Action)
		green.Fprintf(w, "%-20s", b.Accelerator)
		fmt.Fprintf(w, " %s\n", b.Event)
	}
}
