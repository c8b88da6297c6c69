package components

import (
	"github.com/charmbracelet/lipgloss"

	"scaffolddemo/internal/state"
	"scaffolddemo/internal/tui/design"
	"scaffolddemo/internal/tui/utils"
)

// BottomNavigation renders one cell per item: the icon above the label.
type BottomNavigation struct {
	Items    []state.MenuItem
	Selected int
	Focused  int
	Width    int
}

// NewBottomNavigation creates a bar over items with nothing focused.
func NewBottomNavigation(items []state.MenuItem) *BottomNavigation {
	return &BottomNavigation{
		Items:   items,
		Focused: -1,
		Width:   80,
	}
}

// WithSelected marks the selected item
func (n *BottomNavigation) WithSelected(index int) *BottomNavigation {
	n.Selected = index
	return n
}

// WithFocused marks the keyboard focus
func (n *BottomNavigation) WithFocused(index int) *BottomNavigation {
	n.Focused = index
	return n
}

// WithWidth sets the bar width
func (n *BottomNavigation) WithWidth(width int) *BottomNavigation {
	n.Width = width
	return n
}

// CellBounds returns the half-open column range [x0, x1) of cell i when
// count cells share width columns.
func CellBounds(width, count, i int) (x0, x1 int) {
	if count <= 0 {
		return 0, 0
	}
	return i * width / count, (i + 1) * width / count
}

// Render returns the two-line navigation bar
func (n *BottomNavigation) Render() string {
	if len(n.Items) == 0 {
		return design.BottomNavStyle.Width(n.Width).Height(design.BottomNavHeight).Render("")
	}

	cells := make([]string, 0, len(n.Items))
	for i, item := range n.Items {
		x0, x1 := CellBounds(n.Width, len(n.Items), i)
		w := x1 - x0

		style := design.BottomNavItemStyle
		if i == n.Selected {
			style = design.BottomNavItemSelectedStyle
		}
		if i == n.Focused {
			style = style.Copy().Underline(true)
		}
		label := utils.TruncateWithEllipsis(item.Title, w)
		cells = append(cells, style.
			Width(w).
			MaxWidth(w).
			Height(design.BottomNavHeight).
			Render(design.Glyph(item.Icon)+"\n"+label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
