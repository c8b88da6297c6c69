package components

import (
	"github.com/charmbracelet/lipgloss"

	"scaffolddemo/internal/tui/design"
)

// Overlay is a bordered box drawn centered over the screen.
type Overlay struct {
	Title   string
	Content string
	Footer  string
}

// NewOverlay creates an overlay that sizes itself to its content
func NewOverlay(title string) *Overlay {
	return &Overlay{Title: title}
}

// WithContent sets the body
func (o *Overlay) WithContent(content string) *Overlay {
	o.Content = content
	return o
}

// WithFooter sets a line shown under the body
func (o *Overlay) WithFooter(footer string) *Overlay {
	o.Footer = footer
	return o
}

// Render returns the boxed overlay
func (o *Overlay) Render() string {
	var parts []string
	if o.Title != "" {
		parts = append(parts, design.HelpTitleStyle.Render(o.Title))
	}
	if o.Content != "" {
		parts = append(parts, o.Content)
	}
	if o.Footer != "" {
		parts = append(parts, design.DimStyle.Render(o.Footer))
	}

	return design.CenteredOverlayContainerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Place centers the rendered overlay on a width x height canvas.
func (o *Overlay) Place(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, o.Render(),
		lipgloss.WithWhitespaceBackground(design.ColorScrim))
}
