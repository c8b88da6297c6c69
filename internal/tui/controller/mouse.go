package controller

import (
	"scaffolddemo/internal/config"
	"scaffolddemo/internal/state"
	"scaffolddemo/internal/tui/model"
	"scaffolddemo/internal/tui/view"
	"scaffolddemo/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg turns left-button presses into taps on the current layout.
func handleMouseMsg(m *model.Model, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	if !m.MouseEnabled || m.CurrentAppMode != model.ModeMain {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	l := view.ComputeLayout(m)
	if l.TooSmall {
		return m, nil
	}
	if m.DebugMode {
		logging.Debug("Mouse", "tap at %d,%d on %s screen", msg.X, msg.Y, m.Screen)
	}
	if m.Screen == config.ScreenScaffold {
		return m, tapScaffold(m, l, msg.X, msg.Y)
	}
	return m, tapBackdrop(m, l, msg.X, msg.Y)
}

func tapScaffold(m *model.Model, l view.Layout, x, y int) tea.Cmd {
	if !l.Drawer.Empty() {
		for i, row := range l.DrawerRows {
			if row.Contains(x, y) {
				m.DrawerCursor = i
				return nil
			}
		}
		if l.Scrim.Contains(x, y) {
			return apply(m, state.ClosePanel{})
		}
		return nil
	}

	switch {
	case l.NavIcon.Contains(x, y):
		return apply(m, state.OpenPanel{})
	case l.Fab.Contains(x, y):
		return m.Notify(m.SnackbarText())
	}
	for i, cell := range l.BottomCells {
		if cell.Contains(x, y) {
			return selectBottomItem(m, i)
		}
	}
	return nil
}

func tapBackdrop(m *model.Model, l view.Layout, x, y int) tea.Cmd {
	if l.NavIcon.Contains(x, y) {
		return apply(m, state.TogglePanel{})
	}
	if !m.Backdrop.Layer.IsOpen() {
		return nil
	}
	for i, row := range l.BackRows {
		if row.Contains(x, y) {
			return selectBackdropItem(m, l.BackRowIndex(i))
		}
	}
	if l.FrontLayer.Contains(x, y) {
		return apply(m, state.ClosePanel{})
	}
	return nil
}
