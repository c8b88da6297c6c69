package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"scaffolddemo/internal/tui/design"
)

// Layout helps organize a screen into fixed bars and a flexible body
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a new layout manager
func NewLayout(width, height int) *Layout {
	return &Layout{
		Width:  width,
		Height: height,
	}
}

// TooSmall reports whether the terminal cannot fit a screen.
func (l *Layout) TooSmall() bool {
	return l.Width < design.MinWidth || l.Height < design.MinHeight
}

// FitHeight pads or cuts content to exactly height lines of width columns.
func FitHeight(content string, style lipgloss.Style, width, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	blank := style.Width(width).Render("")
	for len(lines) < height {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

// JoinVertical joins components vertically
func JoinVertical(components ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, components...)
}

// CenterContent centers content within the given dimensions
func CenterContent(width, height int, content string) string {
	return design.CenterVertical(height, design.CenterHorizontal(width, content))
}
