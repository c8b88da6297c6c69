package design

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDrawerWidth(t *testing.T) {
	tests := []struct {
		screen int
		want   int
	}{
		{screen: 10, want: 10},
		{screen: 24, want: MinDrawerWidth},
		{screen: 40, want: 30},
		{screen: 200, want: MaxDrawerWidth},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DrawerWidth(tt.screen), "screen width %d", tt.screen)
	}
}

func TestCenterHorizontal(t *testing.T) {
	out := CenterHorizontal(10, "ab")
	assert.Equal(t, 10, lipgloss.Width(out))
	assert.Equal(t, "    ab", strings.TrimRight(out, " "))

	assert.Equal(t, "too wide", CenterHorizontal(3, "too wide"))
}

func TestCenterVertical(t *testing.T) {
	out := CenterVertical(5, "x")
	assert.Equal(t, 5, lipgloss.Height(out))
}

func TestInitializeOverride(t *testing.T) {
	dark := false
	p := Initialize(&dark)
	assert.False(t, p.DarkBackground)
	assert.False(t, lipgloss.HasDarkBackground())
}
