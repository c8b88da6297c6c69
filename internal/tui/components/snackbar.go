package components

import (
	"scaffolddemo/internal/tui/design"
	"scaffolddemo/internal/tui/utils"
)

// Snackbar renders a transient one-line message.
type Snackbar struct {
	Text  string
	Width int
}

// NewSnackbar creates a snackbar showing text
func NewSnackbar(text string) *Snackbar {
	return &Snackbar{Text: text, Width: 80}
}

// WithWidth sets the snackbar width
func (s *Snackbar) WithWidth(width int) *Snackbar {
	s.Width = width
	return s
}

// Render returns the styled snackbar line
func (s *Snackbar) Render() string {
	inner := s.Width - design.SnackbarStyle.GetHorizontalFrameSize()
	return design.SnackbarStyle.
		Width(s.Width).
		MaxWidth(s.Width).
		Render(utils.TruncateWithEllipsis(s.Text, inner))
}
