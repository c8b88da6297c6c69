package view

import (
	"strings"

	"scaffolddemo/internal/tui/components"
	"scaffolddemo/internal/tui/design"
	"scaffolddemo/internal/tui/model"
	"scaffolddemo/internal/tui/utils"
)

func renderBackdrop(m *model.Model, l Layout) string {
	open := m.Backdrop.Layer.IsOpen()
	navIcon := design.IconMenu
	if open {
		navIcon = design.IconBack
	}
	appBar := components.NewTopAppBar(m.Title).
		WithNavIcon(navIcon).
		WithRightContent(screenLabel(m.Screen)).
		WithWidth(l.Width).
		AsTransparent().
		Render()

	parts := []string{appBar}
	if rows := renderBackLayer(m, l); rows != "" {
		parts = append(parts, rows)
	}
	parts = append(parts, renderFrontLayer(m, l))
	return components.JoinVertical(parts...)
}

func renderBackLayer(m *model.Model, l Layout) string {
	if len(l.BackRows) == 0 {
		return ""
	}
	items := m.Backdrop.Selection.Items()
	selected := m.Backdrop.Selection.Index()
	open := m.Backdrop.Layer.IsOpen()

	lines := make([]string, 0, len(l.BackRows))
	for row := range l.BackRows {
		idx := l.BackRowIndex(row)
		if idx >= len(items) {
			break
		}
		style := design.BackLayerItemStyle
		prefix := "  "
		if idx == selected {
			style = design.BackLayerItemSelectedStyle
			prefix = design.SafeIcon(design.IconSelected)
		}
		if open && idx == m.BackLayerCursor {
			style = design.BackLayerItemCursorStyle
		}
		text := utils.TruncateWithEllipsis(prefix+items[idx], l.Width-style.GetHorizontalPadding())
		lines = append(lines, style.Width(l.Width).MaxWidth(l.Width).Render(text))
	}
	return strings.Join(lines, "\n")
}

func renderFrontLayer(m *model.Model, l Layout) string {
	innerHeight := l.FrontLayer.H - design.FrontLayerStyle.GetVerticalFrameSize()
	snack := ""
	if n, ok := m.Backdrop.Snackbar.Visible(); ok {
		snack = components.NewSnackbar(n.Text).WithWidth(l.Width).Render()
		innerHeight--
	}
	if innerHeight < 0 {
		innerHeight = 0
	}

	title := design.ContentTitleStyle.Render(m.Backdrop.Selection.Current())
	body := components.FitHeight(
		components.CenterContent(l.Width, innerHeight, title),
		design.BaseStyle, l.Width, innerHeight)

	front := design.FrontLayerStyle.Width(l.Width).Render(body)
	if snack != "" {
		front = components.JoinVertical(front, snack)
	}
	return front
}
