package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"scaffolddemo/internal/tui/design"
	"scaffolddemo/internal/tui/utils"
)

// NavIconHitWidth is how many cells from the left edge of the app bar
// belong to the navigation icon.
const NavIconHitWidth = 3

// TopAppBar is the single-line bar with a navigation icon and a title.
type TopAppBar struct {
	Title        string
	NavIcon      string
	RightContent string
	Width        int
	Transparent  bool
}

// NewTopAppBar creates an app bar with the menu icon
func NewTopAppBar(title string) *TopAppBar {
	return &TopAppBar{
		Title:   title,
		NavIcon: design.IconMenu,
		Width:   80,
	}
}

// WithNavIcon replaces the navigation icon
func (b *TopAppBar) WithNavIcon(icon string) *TopAppBar {
	b.NavIcon = icon
	return b
}

// WithRightContent adds content to the right side
func (b *TopAppBar) WithRightContent(content string) *TopAppBar {
	b.RightContent = content
	return b
}

// WithWidth sets the bar width
func (b *TopAppBar) WithWidth(width int) *TopAppBar {
	b.Width = width
	return b
}

// AsTransparent draws the bar in the back layer colors
func (b *TopAppBar) AsTransparent() *TopAppBar {
	b.Transparent = true
	return b
}

// Render returns the styled app bar
func (b *TopAppBar) Render() string {
	style := design.AppBarStyle
	if b.Transparent {
		style = design.AppBarTransparentStyle
	}

	left := b.Title
	if b.NavIcon != "" {
		left = design.SafeIcon(b.NavIcon) + " " + b.Title
	}
	available := b.Width - style.GetHorizontalFrameSize()
	if available < 0 {
		available = 0
	}

	content := utils.TruncateWithEllipsis(left, available)
	if b.RightContent != "" {
		leftWidth := lipgloss.Width(left)
		rightWidth := lipgloss.Width(b.RightContent)
		if leftWidth+rightWidth+1 <= available {
			content = left + strings.Repeat(" ", available-leftWidth-rightWidth) + b.RightContent
		}
	}

	return style.
		Width(b.Width).
		MaxWidth(b.Width).
		Render(content)
}
