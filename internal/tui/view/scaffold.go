package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"scaffolddemo/internal/i18n"
	"scaffolddemo/internal/tui/components"
	"scaffolddemo/internal/tui/design"
	"scaffolddemo/internal/tui/model"
)

func renderScaffold(m *model.Model, l Layout) string {
	appBar := components.NewTopAppBar(m.Title).
		WithRightContent(screenLabel(m.Screen)).
		WithWidth(l.Width).
		Render()

	// Body: the selected title centered, then the FAB row and the snackbar row.
	bottomRows := 1
	if !l.Snackbar.Empty() {
		bottomRows++
	}
	centerHeight := l.Content.H - bottomRows
	title := design.ContentTitleStyle.Render(m.Scaffold.Selection.Current())
	center := components.FitHeight(
		components.CenterContent(l.Width, centerHeight, title),
		design.BaseStyle, l.Width, centerHeight)

	fab := lipgloss.NewStyle().
		Width(l.Width).
		Align(lipgloss.Right).
		PaddingRight(l.Width - l.Fab.X - l.Fab.W).
		Render(components.NewFloatingActionButton().Render())

	body := []string{center, fab}
	if n, ok := m.Scaffold.Snackbar.Visible(); ok {
		body = append(body, components.NewSnackbar(n.Text).WithWidth(l.Width).Render())
	}

	nav := components.NewBottomNavigation(m.BottomItems).
		WithSelected(m.Scaffold.Selection.Index()).
		WithFocused(m.BottomFocus).
		WithWidth(l.Width).
		Render()

	screen := components.JoinVertical(appBar, components.JoinVertical(body...), nav)
	if l.Drawer.Empty() {
		return screen
	}
	return overlayDrawer(m, l, screen)
}

// overlayDrawer draws the drawer over the left of screen and dims the rest behind a scrim.
func overlayDrawer(m *model.Model, l Layout, screen string) string {
	drawer := components.NewDrawer(i18n.T(i18n.MsgMenu), m.DrawerItems).
		WithCursor(m.DrawerCursor).
		WithDimensions(l.DrawerFull, l.Height).
		WithVisibleWidth(l.Drawer.W).
		Render()
	drawerLines := strings.Split(drawer, "\n")
	screenLines := strings.Split(screen, "\n")

	out := make([]string, l.Height)
	for y := 0; y < l.Height; y++ {
		left := ""
		if y < len(drawerLines) {
			left = drawerLines[y]
		}
		behind := ""
		if y < len(screenLines) {
			behind = ansi.TruncateLeft(ansi.Strip(screenLines[y]), l.Drawer.W, "")
		}
		out[y] = left + design.ScrimStyle.Width(l.Scrim.W).MaxWidth(l.Scrim.W).Render(behind)
	}
	return strings.Join(out, "\n")
}
