package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"scaffolddemo/internal/i18n"
	"scaffolddemo/internal/state"
	"scaffolddemo/internal/tui/design"
	"scaffolddemo/internal/tui/utils"
)

// DrawerFirstItemRow is the row of the first item below the drawer header.
const DrawerFirstItemRow = 2

// Drawer is the navigation sheet that slides in from the left.
type Drawer struct {
	Header  string
	Items   []state.MenuItem
	Cursor  int
	Width   int
	Height  int
	Visible int
}

// NewDrawer creates a drawer listing items
func NewDrawer(header string, items []state.MenuItem) *Drawer {
	return &Drawer{
		Header:  header,
		Items:   items,
		Width:   design.MinDrawerWidth,
		Height:  design.MinHeight,
		Visible: design.MinDrawerWidth,
	}
}

// WithCursor highlights the browsed item
func (d *Drawer) WithCursor(cursor int) *Drawer {
	d.Cursor = cursor
	return d
}

// WithDimensions sets the full drawer size
func (d *Drawer) WithDimensions(width, height int) *Drawer {
	d.Width = width
	d.Height = height
	d.Visible = width
	return d
}

// WithVisibleWidth sets how many columns have slid in so far
func (d *Drawer) WithVisibleWidth(visible int) *Drawer {
	d.Visible = utils.Clamp(visible, 0, d.Width)
	return d
}

// ItemLabel is the text drawn for a drawer item.
func ItemLabel(item state.MenuItem) string {
	return design.IconText(design.Glyph(item.Icon), i18n.TData(i18n.MsgCategory, map[string]interface{}{"Title": item.Title}))
}

// Render returns Height lines, each Visible columns wide.
func (d *Drawer) Render() string {
	if d.Visible == 0 || d.Height <= 0 {
		return ""
	}
	inner := d.Width - design.DrawerStyle.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	lines := make([]string, 0, d.Height)
	lines = append(lines, design.DrawerItemStyle.Copy().Bold(true).Width(inner).Render(utils.TruncateString(d.Header, inner)))
	lines = append(lines, design.DrawerItemStyle.Width(inner).Render(""))
	for i, item := range d.Items {
		style := design.DrawerItemStyle
		if i == d.Cursor {
			style = design.DrawerItemFocusedStyle
		}
		lines = append(lines, style.Width(inner).Render(utils.TruncateWithEllipsis(ItemLabel(item), inner-style.GetHorizontalPadding())))
	}
	for len(lines) < d.Height {
		lines = append(lines, design.DrawerItemStyle.Width(inner).Render(""))
	}
	lines = lines[:d.Height]

	full := design.DrawerStyle.Render(strings.Join(lines, "\n"))
	if d.Visible >= d.Width {
		return full
	}

	// Slide: only the right-hand Visible columns are on screen.
	rows := strings.Split(full, "\n")
	for i, row := range rows {
		rows[i] = ansi.TruncateLeft(row, d.Width-d.Visible, "")
	}
	return strings.Join(rows, "\n")
}
