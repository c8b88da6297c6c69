package config

import (
	"time"

	"scaffolddemo/internal/state"
)

// Screen names one of the two demo screens.
type Screen string

const (
	ScreenScaffold Screen = "scaffold"
	ScreenBackdrop Screen = "backdrop"
)

// DemoConfig is the top-level configuration structure for scaffolddemo.
type DemoConfig struct {
	GlobalSettings GlobalSettings   `yaml:"globalSettings"`
	Screen         Screen           `yaml:"screen,omitempty"`
	Title          string           `yaml:"title,omitempty"` // empty means the localized default
	BottomItems    []NavigationItem `yaml:"bottomItems,omitempty"`
	DrawerItems    []NavigationItem `yaml:"drawerItems,omitempty"`
	MenuItems      []string         `yaml:"menuItems,omitempty"`
	Snackbar       SnackbarConfig   `yaml:"snackbar"`
	Animation      AnimationConfig  `yaml:"animation"`
}

// GlobalSettings holds presentation preferences.
type GlobalSettings struct {
	Locale   string `yaml:"locale,omitempty"`   // BCP 47 tag, e.g. "en", "es"
	DarkMode *bool  `yaml:"darkMode,omitempty"` // nil means detect from the terminal
	Mouse    *bool  `yaml:"mouse,omitempty"`    // nil means enabled
}

// NavigationItem is a titled entry with an icon, used by the bottom bar and the drawer.
type NavigationItem struct {
	Title string        `yaml:"title"`
	Icon  state.IconRef `yaml:"icon"`
}

// SnackbarConfig controls the floating action button notification.
type SnackbarConfig struct {
	Message  string        `yaml:"message,omitempty"` // empty means the localized default
	Duration time.Duration `yaml:"duration,omitempty"`
}

// AnimationConfig controls how panels slide. Frames of 0 disables animation.
type AnimationConfig struct {
	Frames        *int          `yaml:"frames,omitempty"`
	FrameInterval time.Duration `yaml:"frameInterval,omitempty"`
}

// FrameCount returns the configured number of frames, 0 when unset.
func (a AnimationConfig) FrameCount() int {
	if a.Frames == nil {
		return 0
	}
	return *a.Frames
}

// MouseEnabled reports whether mouse taps are handled.
func (g GlobalSettings) MouseEnabled() bool {
	return g.Mouse == nil || *g.Mouse
}

// BottomMenuItems returns the bottom navigation items as state items.
func (c DemoConfig) BottomMenuItems() []state.MenuItem {
	return toMenuItems(c.BottomItems)
}

// DrawerMenuItems returns the drawer items as state items.
func (c DemoConfig) DrawerMenuItems() []state.MenuItem {
	return toMenuItems(c.DrawerItems)
}

// BackdropMenuItems returns a copy of the backdrop menu titles.
func (c DemoConfig) BackdropMenuItems() []string {
	items := make([]string, len(c.MenuItems))
	copy(items, c.MenuItems)
	return items
}

func toMenuItems(items []NavigationItem) []state.MenuItem {
	out := make([]state.MenuItem, 0, len(items))
	for _, item := range items {
		out = append(out, state.MenuItem{Title: item.Title, Icon: item.Icon})
	}
	return out
}
