package controller

import (
	"strings"

	"scaffolddemo/internal/config"
	"scaffolddemo/internal/i18n"
	"scaffolddemo/internal/tui/model"
	"scaffolddemo/pkg/logging"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgGlobal processes key presses. Overlays take their keys first,
// then the global bindings, then the active screen.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if keyMsg.Type == tea.KeyCtrlC {
		return quit(m)
	}

	switch m.CurrentAppMode {
	case model.ModeInitializing, model.ModeQuitting:
		return m, nil

	case model.ModeLogOverlay:
		switch {
		case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Close):
			m.CurrentAppMode = model.ModeMain
			return m, nil
		case key.Matches(keyMsg, m.Keys.CopyLog):
			return m, model.CopyToClipboardCmd(strings.Join(m.ActivityLog, "\n"))
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		default:
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		}

	case model.ModeHelpOverlay:
		switch {
		case key.Matches(keyMsg, m.Keys.Help), key.Matches(keyMsg, m.Keys.Close):
			m.CurrentAppMode = model.ModeMain
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)
	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.ActivityLogDirty = true
		refreshLogViewport(m)
		return m, nil
	case key.Matches(keyMsg, m.Keys.SwitchScreen):
		m.SwitchScreen()
		return m, nil
	}

	if m.DebugMode {
		logging.Debug("Keys", "%s on %s screen", keyMsg.String(), m.Screen)
	}
	if m.Screen == config.ScreenScaffold {
		return m, handleScaffoldKey(m, keyMsg)
	}
	return m, handleBackdropKey(m, keyMsg)
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = i18n.T(i18n.MsgQuitting)
	logging.Info(controllerDispatchSubsystem, "Quitting")
	return m, tea.Quit
}

// digitIndex maps the jump keys to item positions: 1..9 then 0 for the tenth.
func digitIndex(keyMsg tea.KeyMsg) (int, bool) {
	s := keyMsg.String()
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	if s[0] == '0' {
		return 9, true
	}
	return int(s[0] - '1'), true
}
