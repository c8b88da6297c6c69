package design

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"scaffolddemo/internal/state"
)

// Glyphs
const (
	IconOne      = "①"
	IconTwo      = "②"
	IconThree    = "③"
	IconMenu     = "☰"
	IconBack     = "←"
	IconAdd      = "+"
	IconSelected = "▸"
	IconUnknown  = "•"
)

var iconGlyphs = map[state.IconRef]string{
	state.IconOne:   IconOne,
	state.IconTwo:   IconTwo,
	state.IconThree: IconThree,
	state.IconMenu:  IconMenu,
	state.IconBack:  IconBack,
	state.IconAdd:   IconAdd,
}

// Glyph resolves an icon reference to the character drawn for it.
func Glyph(ref state.IconRef) string {
	if g, ok := iconGlyphs[ref]; ok {
		return g
	}
	return IconUnknown
}

// SafeIcon wraps an icon with proper spacing to prevent rendering issues
// It ensures that an icon doesn't "swallow" the next character by adding
// spaces depending on the display width of the icon:
//   - If the icon occupies a single cell we append 1 space.
//   - If the icon occupies two cells we append 2 spaces so that at least one
//     space is visible after the icon.
func SafeIcon(icon string) string {
	w := runewidth.StringWidth(icon)
	spaces := 1
	if w >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}

// IconText formats an icon with text, handling spacing properly
func IconText(icon string, text string) string {
	return fmt.Sprintf("%s%s", SafeIcon(icon), text)
}
