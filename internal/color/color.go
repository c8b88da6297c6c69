package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Profile describes what the terminal can render.
type Profile struct {
	Colors         termenv.Profile
	DarkBackground bool
}

// Name returns a short label for the color depth.
func (p Profile) Name() string {
	switch p.Colors {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}

// Detect queries the terminal attached to stdout.
// NO_COLOR forces the ascii profile.
func Detect() Profile {
	out := termenv.NewOutput(os.Stdout)
	p := Profile{
		Colors:         out.EnvColorProfile(),
		DarkBackground: out.HasDarkBackground(),
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		p.Colors = termenv.Ascii
	}
	return p
}

// Initialize applies the profile to lipgloss. A non-nil darkOverride wins over
// the detected background.
func Initialize(p Profile, darkOverride *bool) Profile {
	if darkOverride != nil {
		p.DarkBackground = *darkOverride
	}
	lipgloss.SetColorProfile(p.Colors)
	lipgloss.SetHasDarkBackground(p.DarkBackground)
	return p
}
