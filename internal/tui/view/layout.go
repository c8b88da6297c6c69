package view

import (
	"math"

	"scaffolddemo/internal/config"
	"scaffolddemo/internal/tui/components"
	"scaffolddemo/internal/tui/design"
	"scaffolddemo/internal/tui/model"
)

// frontLayerMinHeight keeps the front layer's border and title on screen
// however many menu items the back layer has.
const frontLayerMinHeight = 3

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return r.W > 0 && r.H > 0 && x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Layout is the geometry of the current frame. Rendering and mouse hit
// testing both derive from it so they cannot disagree.
type Layout struct {
	Width    int
	Height   int
	TooSmall bool

	AppBar  Rect
	NavIcon Rect

	// Scaffold
	Content     Rect
	BottomNav   Rect
	BottomCells []Rect
	Fab         Rect
	Snackbar    Rect
	Drawer      Rect
	DrawerFull  int
	DrawerRows  []Rect
	Scrim       Rect

	// Backdrop
	BackLayer  Rect
	BackRows   []Rect
	BackOffset int
	BackSpan   int
	FrontLayer Rect
}

// BackRowIndex maps a back layer row to the menu item it shows.
func (l Layout) BackRowIndex(row int) int {
	return l.BackOffset + row
}

// ComputeLayout derives the geometry of the screen m is showing.
func ComputeLayout(m *model.Model) Layout {
	l := Layout{Width: m.Width, Height: m.Height}
	if components.NewLayout(m.Width, m.Height).TooSmall() {
		l.TooSmall = true
		return l
	}

	l.AppBar = Rect{X: 0, Y: 0, W: m.Width, H: design.AppBarHeight}
	l.NavIcon = Rect{X: 0, Y: 0, W: components.NavIconHitWidth, H: design.AppBarHeight}

	if m.Screen == config.ScreenScaffold {
		computeScaffold(m, &l)
	} else {
		computeBackdrop(m, &l)
	}
	return l
}

func computeScaffold(m *model.Model, l *Layout) {
	w, h := m.Width, m.Height
	bodyTop := design.AppBarHeight
	navTop := h - design.BottomNavHeight

	l.Content = Rect{X: 0, Y: bodyTop, W: w, H: navTop - bodyTop}
	l.BottomNav = Rect{X: 0, Y: navTop, W: w, H: design.BottomNavHeight}
	for i := range m.BottomItems {
		x0, x1 := components.CellBounds(w, len(m.BottomItems), i)
		l.BottomCells = append(l.BottomCells, Rect{X: x0, Y: navTop, W: x1 - x0, H: design.BottomNavHeight})
	}

	fabRow := navTop - 1
	if _, ok := m.Scaffold.Snackbar.Visible(); ok {
		l.Snackbar = Rect{X: 0, Y: navTop - 1, W: w, H: design.SnackbarHeight}
		fabRow--
	}
	fabW := components.NewFloatingActionButton().Width()
	l.Fab = Rect{X: w - 1 - fabW, Y: fabRow, W: fabW, H: 1}

	l.DrawerFull = design.DrawerWidth(w)
	visible := revealed(m.Animation.Progress(m.Scaffold.Drawer.IsOpen()), l.DrawerFull)
	if visible > 0 {
		l.Drawer = Rect{X: 0, Y: 0, W: visible, H: h}
		l.Scrim = Rect{X: visible, Y: 0, W: w - visible, H: h}
		for i := range m.DrawerItems {
			y := components.DrawerFirstItemRow + i
			if y >= h {
				break
			}
			l.DrawerRows = append(l.DrawerRows, Rect{X: 0, Y: y, W: visible, H: 1})
		}
	}
}

func computeBackdrop(m *model.Model, l *Layout) {
	w, h := m.Width, m.Height
	top := design.AppBarHeight
	n := m.Backdrop.Selection.Len()

	span := h - top - frontLayerMinHeight
	if span > n {
		span = n
	}
	if span < 0 {
		span = 0
	}
	l.BackSpan = span
	if n > span && span > 0 {
		offset := m.BackLayerCursor - span + 1
		if offset < 0 {
			offset = 0
		}
		if offset > n-span {
			offset = n - span
		}
		l.BackOffset = offset
	}

	rows := revealed(m.Animation.Progress(m.Backdrop.Layer.IsOpen()), span)
	l.BackLayer = Rect{X: 0, Y: top, W: w, H: rows}
	for i := 0; i < rows; i++ {
		l.BackRows = append(l.BackRows, Rect{X: 0, Y: top + i, W: w, H: 1})
	}
	l.FrontLayer = Rect{X: 0, Y: top + rows, W: w, H: h - top - rows}
	if _, ok := m.Backdrop.Snackbar.Visible(); ok {
		l.Snackbar = Rect{X: 0, Y: h - 1, W: w, H: design.SnackbarHeight}
	}
}

func revealed(progress float64, full int) int {
	return int(math.Round(progress * float64(full)))
}
