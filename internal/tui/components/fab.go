package components

import (
	"github.com/charmbracelet/lipgloss"

	"scaffolddemo/internal/tui/design"
)

// FloatingActionButton is the single accent button of the scaffold.
type FloatingActionButton struct {
	Icon string
}

// NewFloatingActionButton creates an icon-only button
func NewFloatingActionButton() *FloatingActionButton {
	return &FloatingActionButton{Icon: design.IconAdd}
}

// Render returns the styled button
func (f *FloatingActionButton) Render() string {
	return design.FabStyle.Render(f.Icon)
}

// Width returns the rendered width in cells.
func (f *FloatingActionButton) Width() int {
	return lipgloss.Width(f.Render())
}
