package design

import (
	"github.com/charmbracelet/lipgloss"

	"scaffolddemo/internal/color"
)

// Spacing is counted in terminal cells.
const (
	SpaceXS = 1
	SpaceSM = 2

	// Component dimensions
	AppBarHeight     = 1
	BottomNavHeight  = 2
	SnackbarHeight   = 1
	DrawerWidthRatio = 0.75
	MinDrawerWidth   = 20
	MaxDrawerWidth   = 40
	MinWidth         = 30
	MinHeight        = 10
)

// Color palette with light and dark variants.
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#6200EE",
		Dark:  "#BB86FC",
	}
	ColorPrimaryVariant = lipgloss.AdaptiveColor{
		Light: "#3700B3",
		Dark:  "#3700B3",
	}
	ColorOnPrimary = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#000000",
	}
	ColorSecondary = lipgloss.AdaptiveColor{
		Light: "#03DAC6",
		Dark:  "#03DAC6",
	}
	ColorOnSecondary = lipgloss.AdaptiveColor{
		Light: "#000000",
		Dark:  "#000000",
	}

	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#121212",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F5F5F5",
		Dark:  "#1E1E1E",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#E8E8E8",
		Dark:  "#2C2C2C",
	}
	ColorScrim = lipgloss.AdaptiveColor{
		Light: "#9E9E9E",
		Dark:  "#0A0A0A",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E0E0E0",
		Dark:  "#404040",
	}
	ColorInverseSurface = lipgloss.AdaptiveColor{
		Light: "#333333",
		Dark:  "#E0E0E0",
	}
	ColorOnInverseSurface = lipgloss.AdaptiveColor{
		Light: "#F5F5F5",
		Dark:  "#1E1E1E",
	}

	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
	ColorHighlight = lipgloss.AdaptiveColor{
		Light: "#EDE7F6",
		Dark:  "#332940",
	}

	ColorError = lipgloss.AdaptiveColor{
		Light: "#B00020",
		Dark:  "#CF6679",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
)

// Base styles
var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	BaseStyle = lipgloss.NewStyle().
			Background(ColorBackground).
			Foreground(ColorText)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Scaffold styles
var (
	AppBarStyle = lipgloss.NewStyle().
			Bold(true).
			Background(ColorPrimary).
			Foreground(ColorOnPrimary).
			Padding(0, SpaceXS)

	// The backdrop app bar sits on the back layer, so it takes its colors.
	AppBarTransparentStyle = lipgloss.NewStyle().
				Bold(true).
				Background(ColorPrimaryVariant).
				Foreground(lipgloss.Color("#FFFFFF")).
				Padding(0, SpaceXS)

	ContentTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText)

	BottomNavStyle = lipgloss.NewStyle().
			Background(ColorPrimary).
			Foreground(ColorOnPrimary)

	BottomNavItemStyle = lipgloss.NewStyle().
				Background(ColorPrimary).
				Foreground(ColorOnPrimary).
				Faint(true).
				Align(lipgloss.Center)

	BottomNavItemSelectedStyle = BottomNavItemStyle.Copy().
					Faint(false).
					Bold(true)

	BottomNavItemFocusedStyle = BottomNavItemStyle.Copy().
					Underline(true)

	FabStyle = lipgloss.NewStyle().
			Background(ColorSecondary).
			Foreground(ColorOnSecondary).
			Bold(true).
			Padding(0, SpaceXS)

	SnackbarStyle = lipgloss.NewStyle().
			Background(ColorInverseSurface).
			Foreground(ColorOnInverseSurface).
			Padding(0, SpaceXS)

	DrawerStyle = lipgloss.NewStyle().
			Background(ColorSurface).
			Foreground(ColorText).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(ColorBorder)

	DrawerItemStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorSurface).
			PaddingLeft(SpaceXS)

	DrawerItemFocusedStyle = DrawerItemStyle.Copy().
				Background(ColorHighlight).
				Foreground(ColorPrimary).
				Bold(true)

	ScrimStyle = lipgloss.NewStyle().
			Background(ColorScrim).
			Foreground(ColorTextMuted)
)

// Backdrop styles
var (
	BackLayerStyle = lipgloss.NewStyle().
			Background(ColorPrimaryVariant).
			Foreground(lipgloss.Color("#FFFFFF"))

	BackLayerItemStyle = lipgloss.NewStyle().
				Background(ColorPrimaryVariant).
				Foreground(lipgloss.Color("#FFFFFF")).
				PaddingLeft(SpaceSM)

	BackLayerItemSelectedStyle = BackLayerItemStyle.Copy().
					Bold(true)

	BackLayerItemCursorStyle = BackLayerItemStyle.Copy().
					Background(ColorPrimary).
					Foreground(ColorOnPrimary).
					Bold(true)

	FrontLayerStyle = lipgloss.NewStyle().
			Background(ColorBackground).
			Foreground(ColorText).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderTop(true).
			BorderForeground(ColorBorder)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceSM).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.Copy().
				Background(ColorSecondary).
				Foreground(ColorOnSecondary)

	StatusBarErrorStyle = StatusBarStyle.Copy().
				Background(ColorError).
				Foreground(ColorBackground)
)

// Overlay styles
var (
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Align(lipgloss.Center).
			Foreground(ColorText)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorBorder).
					Background(ColorSurface).
					Foreground(ColorText).
					Padding(1, 2)

	LogOverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(1, 2)

	LogPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				MarginBottom(1).
				Foreground(ColorText)
)

// Log level styles
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)

// Quit key style
var QuitKeyStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)

// Layout Helpers
func CenterHorizontal(width int, content string) string {
	contentWidth := lipgloss.Width(content)
	if contentWidth >= width {
		return content
	}
	padding := (width - contentWidth) / 2
	return lipgloss.NewStyle().
		PaddingLeft(padding).
		Width(width).
		Render(content)
}

func CenterVertical(height int, content string) string {
	contentHeight := lipgloss.Height(content)
	if contentHeight >= height {
		return content
	}
	padding := (height - contentHeight) / 2
	return lipgloss.NewStyle().
		PaddingTop(padding).
		Height(height).
		Render(content)
}

// DrawerWidth is the width of the open drawer for a screen width.
func DrawerWidth(screenWidth int) int {
	w := int(float64(screenWidth) * DrawerWidthRatio)
	if w > MaxDrawerWidth {
		w = MaxDrawerWidth
	}
	if w < MinDrawerWidth {
		w = MinDrawerWidth
	}
	if w > screenWidth {
		w = screenWidth
	}
	return w
}

// Initialize detects the terminal and applies it to lipgloss.
// darkOverride comes from configuration and may be nil.
func Initialize(darkOverride *bool) color.Profile {
	return color.Initialize(color.Detect(), darkOverride)
}
