package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/BlinkMD/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/infrastructure/server"
)

var flags struct {
	port     string
	host     string
	dev      bool
	platform string
	keymap   string
}

var rootCmd = &cobra.Command{
	Use:   "blinkmd-backend",
	Short: "BlinkMD editor backend",
	Long: `Local backend for the BlinkMD markdown editor.

Serves the file commands (open, save, save as), exit and ping over HTTP and
a WebSocket IPC channel, and emits editor mode events for the global
shortcuts forwarded by the native shell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServer,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.platform, "platform", "", "Shortcut platform (defaults to GOOS)")
	pf.StringVar(&flags.keymap, "keymap", "", "Keymap override file (.yaml or .toml)")

	rootCmd.Flags().StringVar(&flags.port, "port", "", "Server port")
	rootCmd.Flags().StringVar(&flags.host, "host", "", "Server host")
	rootCmd.Flags().BoolVar(&flags.dev, "dev", false, "Development mode (colored logs, debug level)")
}

// loadConfig reads the environment and applies CLI overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("port") {
		cfg.Server.Port = flags.port
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = flags.host
	}
	if flags.dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}
	if flags.platform != "" {
		cfg.Shortcuts.Platform = flags.platform
	}
	if flags.keymap != "" {
		cfg.Shortcuts.KeymapFile = flags.keymap
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	select {
	case <-sigChan:
		return srv.Close()
	case err := <-errChan:
		if closeErr := srv.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		return err
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
