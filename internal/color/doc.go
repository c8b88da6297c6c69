// Package color detects terminal color support and background brightness.
//
// Detection is done with termenv against stdout. The result is pushed into
// lipgloss so the adaptive colors in the design package resolve to the
// light or dark variant.
//
//	p := color.Initialize(color.Detect(), cfg.GlobalSettings.DarkMode)
//	logging.Debug("Color", "profile %s dark=%v", p.Name(), p.DarkBackground)
//
// Setting NO_COLOR in the environment disables all color output.
package color
