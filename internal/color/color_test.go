package color

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	dark := true
	light := false

	tests := []struct {
		name     string
		profile  Profile
		override *bool
		expected bool
	}{
		{"detected dark", Profile{Colors: termenv.ANSI256, DarkBackground: true}, nil, true},
		{"detected light", Profile{Colors: termenv.ANSI256, DarkBackground: false}, nil, false},
		{"override dark", Profile{Colors: termenv.ANSI, DarkBackground: false}, &dark, true},
		{"override light", Profile{Colors: termenv.ANSI, DarkBackground: true}, &light, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Initialize(tt.profile, tt.override)
			assert.Equal(t, tt.expected, got.DarkBackground)
			assert.Equal(t, tt.expected, lipgloss.HasDarkBackground())
			assert.Equal(t, tt.profile.Colors, lipgloss.ColorProfile())
		})
	}
}

func TestProfileName(t *testing.T) {
	assert.Equal(t, "truecolor", Profile{Colors: termenv.TrueColor}.Name())
	assert.Equal(t, "ansi256", Profile{Colors: termenv.ANSI256}.Name())
	assert.Equal(t, "ansi", Profile{Colors: termenv.ANSI}.Name())
	assert.Equal(t, "ascii", Profile{Colors: termenv.Ascii}.Name())
}

func TestDetectHonoursNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, Detect().Colors)
}
