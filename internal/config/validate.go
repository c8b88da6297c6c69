package config

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownScreen   = errors.New("unknown screen")
	ErrEmptyItems      = errors.New("item list is empty")
	ErrDuplicateTitle  = errors.New("duplicate item title")
	ErrEmptyTitle      = errors.New("item title is empty")
	ErrUnknownIcon     = errors.New("unknown icon")
	ErrInvalidDuration = errors.New("invalid duration")
)

// Validate checks that the configuration can drive both screens.
func (c DemoConfig) Validate() error {
	switch c.Screen {
	case ScreenScaffold, ScreenBackdrop:
	default:
		return fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownScreen, c.Screen, ScreenScaffold, ScreenBackdrop)
	}

	if err := validateNavigationItems("bottomItems", c.BottomItems); err != nil {
		return err
	}
	if err := validateNavigationItems("drawerItems", c.DrawerItems); err != nil {
		return err
	}
	if err := validateTitles("menuItems", c.MenuItems); err != nil {
		return err
	}

	if c.Snackbar.Duration <= 0 {
		return fmt.Errorf("%w: snackbar.duration must be positive, got %s", ErrInvalidDuration, c.Snackbar.Duration)
	}
	if c.Animation.FrameCount() < 0 {
		return fmt.Errorf("%w: animation.frames must not be negative, got %d", ErrInvalidDuration, c.Animation.FrameCount())
	}
	if c.Animation.FrameCount() > 0 && c.Animation.FrameInterval <= 0 {
		return fmt.Errorf("%w: animation.frameInterval must be positive, got %s", ErrInvalidDuration, c.Animation.FrameInterval)
	}
	return nil
}

func validateNavigationItems(field string, items []NavigationItem) error {
	titles := make([]string, 0, len(items))
	for _, item := range items {
		if !item.Icon.IsKnown() {
			return fmt.Errorf("%s: %w %q for %q", field, ErrUnknownIcon, item.Icon, item.Title)
		}
		titles = append(titles, item.Title)
	}
	return validateTitles(field, titles)
}

func validateTitles(field string, titles []string) error {
	if len(titles) == 0 {
		return fmt.Errorf("%s: %w", field, ErrEmptyItems)
	}
	seen := make(map[string]bool, len(titles))
	for _, title := range titles {
		if title == "" {
			return fmt.Errorf("%s: %w", field, ErrEmptyTitle)
		}
		if seen[title] {
			return fmt.Errorf("%s: %w %q", field, ErrDuplicateTitle, title)
		}
		seen[title] = true
	}
	return nil
}
