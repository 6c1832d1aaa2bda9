package config

import (
	"fmt"
	"runtime"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Shortcuts ShortcutConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"1420"`
	Host string `envconfig:"HOST" default:"127.0.0.1"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
	// Output is stdout, stderr or a file path.
	Output string `envconfig:"LOG_OUTPUT" default:"stdout"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// CORSConfig holds the browser origins allowed to call the API and open
// the IPC socket. "*" allows any origin.
type CORSConfig struct {
	AllowOrigins []string `envconfig:"CORS_ORIGINS" default:"tauri://localhost,http://tauri.localhost,http://localhost:5173"`
}

// ShortcutConfig holds global shortcut configuration.
type ShortcutConfig struct {
	// Platform overrides runtime.GOOS when resolving the shortcut table.
	Platform     string `envconfig:"SHORTCUT_PLATFORM"`
	SplitEnabled bool   `envconfig:"SHORTCUT_SPLIT_ENABLED" default:"true"`
	KeymapFile   string `envconfig:"KEYMAP_FILE"`
}

// ResolvedPlatform returns the platform the shortcut table is resolved for.
func (s ShortcutConfig) ResolvedPlatform() string {
	if s.Platform != "" {
		return s.Platform
	}
	return runtime.GOOS
}

// Addr returns host:port
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "1420",
			Host: "127.0.0.1",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
			Output:      "stdout",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{
				"tauri://localhost",
				"http://tauri.localhost",
				"http://localhost:5173",
			},
		},
		Shortcuts: ShortcutConfig{
			SplitEnabled: true,
		},
	}
}
