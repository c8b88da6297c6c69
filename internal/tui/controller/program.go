package controller

import (
	"scaffolddemo/internal/config"
	"scaffolddemo/internal/tui/model"
	"scaffolddemo/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for cfg. Extra options are
// appended after the defaults, which lets tests swap input and output.
func NewProgram(
	cfg config.DemoConfig,
	debugMode bool,
	logChannel <-chan logging.LogEntry,
	opts ...tea.ProgramOption,
) *tea.Program {
	m := model.InitialModel(cfg, debugMode, logChannel)
	app := NewAppModel(m)

	options := []tea.ProgramOption{tea.WithAltScreen()}
	if m.MouseEnabled {
		options = append(options, tea.WithMouseCellMotion())
	}
	options = append(options, opts...)
	return tea.NewProgram(app, options...)
}
