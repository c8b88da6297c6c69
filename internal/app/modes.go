package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"scaffolddemo/internal/tui/controller"
	"scaffolddemo/internal/tui/design"
	"scaffolddemo/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// runCLIMode replays an event script through the screen reducers and prints
// one state line per step.
func runCLIMode(ctx context.Context, config *Config) error {
	logging.Debug("CLI", "Running in no-TUI mode on the %s screen", config.DemoConfig.Screen)

	r := NewReplayer(*config.DemoConfig, config.Stdout)
	if config.EventsPath == "" {
		return r.PrintState()
	}

	in, closeFn, err := openEvents(config)
	if err != nil {
		logging.Error("CLI", err, "Failed to open events")
		return err
	}
	defer closeFn()

	if err := r.Run(ctx, in); err != nil {
		logging.Error("CLI", err, "Replay stopped")
		return err
	}
	return nil
}

func openEvents(config *Config) (io.Reader, func(), error) {
	if config.EventsPath == "-" {
		return config.Stdin, func() {}, nil
	}
	f, err := os.Open(config.EventsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open events file %s: %w", config.EventsPath, err)
	}
	return f, func() { _ = f.Close() }, nil
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config) error {
	logging.Debug("CLI", "Starting TUI mode...")

	profile := design.Initialize(config.DemoConfig.GlobalSettings.DarkMode)
	logging.Debug("CLI", "Color profile %s, dark background %v", profile.Name(), profile.DarkBackground)

	// Switch logging to channel-based system for TUI integration
	logLevel := logging.LevelInfo
	if config.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	p := controller.NewProgram(*config.DemoConfig, config.Debug, logChan, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return fmt.Errorf("error running TUI program: %w", err)
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")
	return nil
}
