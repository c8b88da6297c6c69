package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"scaffolddemo/internal/config"
	"scaffolddemo/internal/i18n"
	"scaffolddemo/internal/tui/components"
	"scaffolddemo/internal/tui/design"
	"scaffolddemo/internal/tui/model"
	"scaffolddemo/pkg/logging"
)

// renderHelpOverlay renders the key bindings and the icon legend over the screen
func renderHelpOverlay(m *model.Model) string {
	h := m.Help
	h.ShowAll = true
	content := lipgloss.JoinVertical(lipgloss.Left, h.View(m.Keys), "", iconLegend(m.Screen))
	return components.NewOverlay(i18n.T(i18n.MsgHelpTitle)).
		WithContent(content).
		WithFooter(i18n.T(i18n.MsgHelpClose)).
		Place(m.Width, m.Height)
}

// iconLegend names the icons the screen draws.
func iconLegend(screen config.Screen) string {
	type entry struct{ icon, text string }
	entries := []entry{
		{design.IconMenu, i18n.T(i18n.MsgOpenMenu)},
		{design.IconBack, i18n.T(i18n.MsgCloseMenu)},
	}
	if screen == config.ScreenScaffold {
		entries = []entry{
			{design.IconMenu, i18n.T(i18n.MsgMenu)},
			{design.IconAdd, i18n.T(i18n.MsgAdd)},
		}
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = design.IconText(e.icon, e.text)
	}
	return design.DimStyle.Render(strings.Join(lines, "\n"))
}

// LogOverlaySize returns the outer size of the log overlay and the size of
// the viewport inside it for a terminal of width x height.
func LogOverlaySize(width, height int) (overlayW, overlayH, viewportW, viewportH int) {
	overlayW = int(float64(width) * 0.8)
	overlayH = int(float64(height) * 0.7)

	title := design.LogPanelTitleStyle.Render("x")
	viewportW = overlayW - design.LogOverlayStyle.GetHorizontalFrameSize()
	viewportH = overlayH - design.LogOverlayStyle.GetVerticalFrameSize() - lipgloss.Height(title) - 1
	if viewportW < 0 {
		viewportW = 0
	}
	if viewportH < 0 {
		viewportH = 0
	}
	return overlayW, overlayH, viewportW, viewportH
}

// renderLogOverlay renders the activity log viewport with a status line
func renderLogOverlay(m *model.Model) string {
	overlayW, overlayH, viewportW, _ := LogOverlaySize(m.Width, m.Height)

	title := design.LogPanelTitleStyle.Render(design.IconText("≡", i18n.T(i18n.MsgLogTitle)))

	right := ""
	if n := logging.Dropped(); n > 0 {
		right = i18n.TPlural(i18n.MsgDroppedLogs, int(n))
	}
	status := components.NewStatusBar(viewportW).
		WithLeftText("↑/↓ • y • esc").
		WithRightText(right).
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		Render()

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View(), status)
	box := design.LogOverlayStyle.Copy().
		Width(overlayW - design.LogOverlayStyle.GetHorizontalBorderSize()).
		Height(overlayH - design.LogOverlayStyle.GetVerticalBorderSize()).
		Render(content)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}

// PrepareLogContent applies color styles based on log level keywords.
func PrepareLogContent(lines []string) string {
	out := make([]string, len(lines))
	for i, rawLine := range lines {
		out[i] = styleLogLine(rawLine)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
