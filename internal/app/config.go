package app

import (
	"io"
	"os"

	"scaffolddemo/internal/config"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ConfigPath replaces the layered lookup with a single file when set.
	ConfigPath string

	// Overrides applied on top of the loaded configuration
	Screen  config.Screen
	Locale  string
	NoMouse bool

	// EventsPath is the replay script for no-TUI mode; "-" reads stdin.
	EventsPath string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Demo configuration, filled in by NewApplication
	DemoConfig *config.DemoConfig
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool) *Config {
	return &Config{
		NoTUI:  noTUI,
		Debug:  debug,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// applyOverrides copies command line overrides into cfg.
func (c *Config) applyOverrides(cfg *config.DemoConfig) {
	if c.Screen != "" {
		cfg.Screen = c.Screen
	}
	if c.Locale != "" {
		cfg.GlobalSettings.Locale = c.Locale
	}
	if c.NoMouse {
		off := false
		cfg.GlobalSettings.Mouse = &off
	}
}
