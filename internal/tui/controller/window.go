package controller

import (
	"scaffolddemo/internal/tui/model"
	"scaffolddemo/internal/tui/view"
	"scaffolddemo/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg records the terminal size and leaves the initializing
// screen on the first size report.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	_, _, vw, vh := view.LogOverlaySize(msg.Width, msg.Height)
	m.LogViewport.Width = vw
	m.LogViewport.Height = vh
	if m.CurrentAppMode == model.ModeLogOverlay {
		refreshLogViewport(m)
	}

	if m.CurrentAppMode == model.ModeInitializing {
		m.CurrentAppMode = model.ModeMain
		logging.Info(controllerDispatchSubsystem, "Showing %s screen at %dx%d", m.Screen, msg.Width, msg.Height)
	}
	return m, nil
}
