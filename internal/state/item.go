package state

// IconRef identifies an icon by name. The rendering layer decides what glyph
// a ref maps to.
type IconRef string

const (
	IconOne   IconRef = "one"
	IconTwo   IconRef = "two"
	IconThree IconRef = "three"
	IconMenu  IconRef = "menu"
	IconBack  IconRef = "back"
	IconAdd   IconRef = "add"
)

// KnownIcons lists every icon ref the views can draw.
var KnownIcons = []IconRef{IconOne, IconTwo, IconThree, IconMenu, IconBack, IconAdd}

// IsKnown reports whether the ref can be rendered.
func (r IconRef) IsKnown() bool {
	for _, known := range KnownIcons {
		if r == known {
			return true
		}
	}
	return false
}

// MenuItem is a navigation entry. Items have no identity beyond their title.
type MenuItem struct {
	Title string
	Icon  IconRef
}

// Titles returns the titles of items in order.
func Titles(items []MenuItem) []string {
	titles := make([]string, 0, len(items))
	for _, item := range items {
		titles = append(titles, item.Title)
	}
	return titles
}
