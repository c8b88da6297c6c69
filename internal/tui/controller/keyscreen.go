package controller

import (
	"scaffolddemo/internal/state"
	"scaffolddemo/internal/tui/model"
	"scaffolddemo/internal/tui/utils"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleScaffoldKey maps keys to scaffold events. While the drawer is open it
// is modal: only browsing and closing keys reach it.
func handleScaffoldKey(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	if m.Scaffold.Drawer.IsOpen() {
		switch {
		case key.Matches(keyMsg, m.Keys.Close), key.Matches(keyMsg, m.Keys.Select):
			return apply(m, state.ClosePanel{})
		case key.Matches(keyMsg, m.Keys.Menu):
			return apply(m, state.OpenPanel{})
		case key.Matches(keyMsg, m.Keys.Up):
			m.DrawerCursor = utils.Clamp(m.DrawerCursor-1, 0, len(m.DrawerItems)-1)
		case key.Matches(keyMsg, m.Keys.Down):
			m.DrawerCursor = utils.Clamp(m.DrawerCursor+1, 0, len(m.DrawerItems)-1)
		}
		return nil
	}

	last := len(m.BottomItems) - 1
	switch {
	case key.Matches(keyMsg, m.Keys.Menu):
		return apply(m, state.OpenPanel{})
	case key.Matches(keyMsg, m.Keys.Close):
		return apply(m, state.ClosePanel{})
	case key.Matches(keyMsg, m.Keys.Left):
		m.BottomFocus = utils.Clamp(m.BottomFocus-1, 0, last)
	case key.Matches(keyMsg, m.Keys.Right):
		m.BottomFocus = utils.Clamp(m.BottomFocus+1, 0, last)
	case key.Matches(keyMsg, m.Keys.Select):
		return selectBottomItem(m, m.BottomFocus)
	case key.Matches(keyMsg, m.Keys.Fab):
		return m.Notify(m.SnackbarText())
	case key.Matches(keyMsg, m.Keys.Jump):
		if idx, ok := digitIndex(keyMsg); ok {
			return selectBottomItem(m, idx)
		}
	}
	return nil
}

func selectBottomItem(m *model.Model, idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.BottomItems) {
		return nil
	}
	m.BottomFocus = idx
	return apply(m, state.SelectItem{Title: m.BottomItems[idx].Title})
}

// handleBackdropKey maps keys to backdrop events. The cursor only moves
// while the back layer is revealed.
func handleBackdropKey(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	open := m.Backdrop.Layer.IsOpen()
	last := m.Backdrop.Selection.Len() - 1

	switch {
	case key.Matches(keyMsg, m.Keys.Menu):
		return apply(m, state.TogglePanel{})
	case key.Matches(keyMsg, m.Keys.Close):
		return apply(m, state.ClosePanel{})
	case open && key.Matches(keyMsg, m.Keys.Up):
		m.BackLayerCursor = utils.Clamp(m.BackLayerCursor-1, 0, last)
	case open && key.Matches(keyMsg, m.Keys.Down):
		m.BackLayerCursor = utils.Clamp(m.BackLayerCursor+1, 0, last)
	case open && key.Matches(keyMsg, m.Keys.Select):
		return selectBackdropItem(m, m.BackLayerCursor)
	case key.Matches(keyMsg, m.Keys.Jump):
		if idx, ok := digitIndex(keyMsg); ok {
			return selectBackdropItem(m, idx)
		}
	}
	return nil
}

func selectBackdropItem(m *model.Model, idx int) tea.Cmd {
	items := m.Backdrop.Selection.Items()
	if idx < 0 || idx >= len(items) {
		return nil
	}
	return apply(m, state.SelectItem{Title: items[idx]})
}
