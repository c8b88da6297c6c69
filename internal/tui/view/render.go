package view

import (
	"github.com/charmbracelet/lipgloss"

	"scaffolddemo/internal/config"
	"scaffolddemo/internal/i18n"
	"scaffolddemo/internal/tui/components"
	"scaffolddemo/internal/tui/design"
	"scaffolddemo/internal/tui/model"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		msg := m.QuittingMessage
		if msg == "" {
			msg = i18n.T(i18n.MsgQuitting)
		}
		return design.TextStyle.Render(msg)
	case model.ModeInitializing:
		text := m.Spinner.View() + " " + i18n.T(i18n.MsgInitializing)
		if m.Width == 0 || m.Height == 0 {
			return design.TextStyle.Render(text)
		}
		return components.CenterContent(m.Width, m.Height, text)
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	default:
		return renderScreen(m)
	}
}

func renderScreen(m *model.Model) string {
	l := ComputeLayout(m)
	if l.TooSmall {
		return renderTooSmall(m)
	}
	if m.Screen == config.ScreenScaffold {
		return renderScaffold(m, l)
	}
	return renderBackdrop(m, l)
}

func renderTooSmall(m *model.Model) string {
	msg := design.DimStyle.Render("↔ " + screenLabel(m.Screen))
	if m.Width <= 0 || m.Height <= 0 {
		return msg
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, msg)
}

func screenLabel(s config.Screen) string {
	if s == config.ScreenScaffold {
		return i18n.T(i18n.MsgScreenScaffold)
	}
	return i18n.T(i18n.MsgScreenBackdrop)
}
