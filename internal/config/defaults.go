package config

import (
	"fmt"
	"time"

	"scaffolddemo/internal/state"
)

const (
	// DefaultSnackbarDuration matches the short display time of a toolkit snackbar.
	DefaultSnackbarDuration = 4 * time.Second
	DefaultFrames           = 6
	DefaultFrameInterval    = 16 * time.Millisecond
	defaultMenuItemCount    = 10
)

// GetDefaultConfig returns the built-in demo configuration: three bottom
// items, three drawer sections and ten backdrop menu items.
func GetDefaultConfig() DemoConfig {
	frames := DefaultFrames
	menuItems := make([]string, 0, defaultMenuItemCount)
	for i := 1; i <= defaultMenuItemCount; i++ {
		menuItems = append(menuItems, fmt.Sprintf("Item %d", i))
	}

	return DemoConfig{
		Screen: ScreenBackdrop,
		BottomItems: []NavigationItem{
			{Title: "Item 1", Icon: state.IconOne},
			{Title: "Item 2", Icon: state.IconTwo},
			{Title: "Item 3", Icon: state.IconThree},
		},
		DrawerItems: []NavigationItem{
			{Title: "Section 1", Icon: state.IconOne},
			{Title: "Section 2", Icon: state.IconTwo},
			{Title: "Section 3", Icon: state.IconThree},
		},
		MenuItems: menuItems,
		GlobalSettings: GlobalSettings{
			Locale: "en",
		},
		Snackbar: SnackbarConfig{
			Duration: DefaultSnackbarDuration,
		},
		Animation: AnimationConfig{
			Frames:        &frames,
			FrameInterval: DefaultFrameInterval,
		},
	}
}
