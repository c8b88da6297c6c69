package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scaffolddemo/internal/config"
	"scaffolddemo/internal/i18n"
	"scaffolddemo/internal/state"
	"scaffolddemo/internal/tui/components"
	"scaffolddemo/internal/tui/design"
	"scaffolddemo/internal/tui/model"
)

func newModel(t *testing.T, screen config.Screen, w, h int) *model.Model {
	t.Helper()
	cfg := config.GetDefaultConfig()
	cfg.Screen = screen
	m := model.InitialModel(cfg, false, nil)
	m.Width, m.Height = w, h
	m.CurrentAppMode = model.ModeMain
	m.NewNotificationID = func() string { return "id" }
	return m
}

func openPanel(m *model.Model) {
	m.Apply(state.OpenPanel{})
	m.Animation.Snap(true)
}

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestRect(t *testing.T) {
	r := Rect{X: 2, Y: 1, W: 3, H: 2}
	assert.True(t, r.Contains(2, 1))
	assert.True(t, r.Contains(4, 2))
	assert.False(t, r.Contains(5, 1))
	assert.False(t, r.Contains(2, 3))
	assert.True(t, Rect{}.Empty())
	assert.False(t, Rect{}.Contains(0, 0))
}

func TestComputeLayout_TooSmall(t *testing.T) {
	m := newModel(t, config.ScreenScaffold, 10, 5)
	l := ComputeLayout(m)
	assert.True(t, l.TooSmall)
	assert.NotEmpty(t, Render(m))
}

func TestComputeLayout_Scaffold(t *testing.T) {
	m := newModel(t, config.ScreenScaffold, 60, 20)
	l := ComputeLayout(m)

	assert.Equal(t, Rect{X: 0, Y: 0, W: components.NavIconHitWidth, H: 1}, l.NavIcon)
	assert.Equal(t, Rect{X: 0, Y: 18, W: 60, H: 2}, l.BottomNav)
	require.Len(t, l.BottomCells, 3)
	assert.Equal(t, Rect{X: 0, Y: 18, W: 20, H: 2}, l.BottomCells[0])
	assert.Equal(t, Rect{X: 40, Y: 18, W: 20, H: 2}, l.BottomCells[2])
	assert.Equal(t, Rect{X: 56, Y: 17, W: 3, H: 1}, l.Fab)
	assert.True(t, l.Snackbar.Empty())
	assert.True(t, l.Drawer.Empty())
	assert.Empty(t, l.DrawerRows)
}

func TestComputeLayout_ScaffoldSnackbarLiftsFab(t *testing.T) {
	m := newModel(t, config.ScreenScaffold, 60, 20)
	m.Notify("Button clicked")
	l := ComputeLayout(m)

	assert.Equal(t, Rect{X: 0, Y: 17, W: 60, H: 1}, l.Snackbar)
	assert.Equal(t, 16, l.Fab.Y)
}

func TestComputeLayout_ScaffoldDrawer(t *testing.T) {
	m := newModel(t, config.ScreenScaffold, 60, 20)
	openPanel(m)
	l := ComputeLayout(m)

	assert.Equal(t, design.MaxDrawerWidth, l.DrawerFull)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 40, H: 20}, l.Drawer)
	assert.Equal(t, Rect{X: 40, Y: 0, W: 20, H: 20}, l.Scrim)
	require.Len(t, l.DrawerRows, 3)
	assert.Equal(t, components.DrawerFirstItemRow, l.DrawerRows[0].Y)
}

func TestComputeLayout_ScaffoldDrawerMidAnimation(t *testing.T) {
	m := newModel(t, config.ScreenScaffold, 60, 20)
	m.Apply(state.OpenPanel{})
	m.Animation.Frame = m.Animation.Frames / 2
	l := ComputeLayout(m)

	assert.Equal(t, 20, l.Drawer.W)
	assert.Equal(t, 40, l.Scrim.W)
}

func TestComputeLayout_BackdropConcealed(t *testing.T) {
	m := newModel(t, config.ScreenBackdrop, 60, 20)
	l := ComputeLayout(m)

	assert.Empty(t, l.BackRows)
	assert.Equal(t, Rect{X: 0, Y: 1, W: 60, H: 19}, l.FrontLayer)
	assert.Equal(t, 10, l.BackSpan)
}

func TestComputeLayout_BackdropRevealed(t *testing.T) {
	m := newModel(t, config.ScreenBackdrop, 60, 20)
	openPanel(m)
	l := ComputeLayout(m)

	require.Len(t, l.BackRows, 10)
	assert.Equal(t, 1, l.BackRows[0].Y)
	assert.Equal(t, 0, l.BackRowIndex(0))
	assert.Equal(t, Rect{X: 0, Y: 11, W: 60, H: 9}, l.FrontLayer)
}

func TestComputeLayout_BackdropScrollsToCursor(t *testing.T) {
	m := newModel(t, config.ScreenBackdrop, 40, 10)
	openPanel(m)
	m.BackLayerCursor = 9
	l := ComputeLayout(m)

	// 10 rows minus the app bar and the minimum front layer leaves 6
	assert.Equal(t, 6, l.BackSpan)
	assert.Len(t, l.BackRows, 6)
	assert.Equal(t, 4, l.BackOffset)
	assert.Equal(t, 9, l.BackRowIndex(5))
	assert.Equal(t, frontLayerMinHeight, l.FrontLayer.H)
}

func TestRender_ScaffoldFillsScreen(t *testing.T) {
	m := newModel(t, config.ScreenScaffold, 60, 20)
	out := Render(m)

	assert.Equal(t, 20, lipgloss.Height(out))
	assert.Equal(t, 60, lipgloss.Width(out))
	lines := plainLines(out)
	assert.Contains(t, lines[0], design.IconMenu)
	assert.Contains(t, lines[0], "Title")
	assert.Contains(t, out, "Item 1")
	assert.Contains(t, lines[17], design.IconAdd)
	assert.Contains(t, lines[19], "Item 3")
}

func TestRender_ScaffoldSnackbar(t *testing.T) {
	m := newModel(t, config.ScreenScaffold, 60, 20)
	m.Notify("Button clicked")
	out := Render(m)

	assert.Equal(t, 20, lipgloss.Height(out))
	lines := plainLines(out)
	assert.Contains(t, lines[17], "Button clicked")
	assert.Contains(t, lines[16], design.IconAdd)
}

func TestRender_ScaffoldDrawer(t *testing.T) {
	m := newModel(t, config.ScreenScaffold, 60, 20)
	openPanel(m)
	out := Render(m)

	assert.Equal(t, 20, lipgloss.Height(out))
	assert.Equal(t, 60, lipgloss.Width(out))
	lines := plainLines(out)
	assert.Contains(t, lines[0], "Menu")
	assert.Contains(t, lines[components.DrawerFirstItemRow], "Category Section 1")
	assert.Contains(t, lines[components.DrawerFirstItemRow+2], "Category Section 3")
}

func TestRender_BackdropNavIconFollowsLayer(t *testing.T) {
	m := newModel(t, config.ScreenBackdrop, 60, 20)
	concealed := plainLines(Render(m))
	assert.Contains(t, concealed[0], design.IconMenu)
	assert.NotContains(t, concealed[0], design.IconBack)

	openPanel(m)
	out := Render(m)
	revealed := plainLines(out)
	assert.Contains(t, revealed[0], design.IconBack)
	assert.Contains(t, revealed[1], "Item 1")
	assert.Contains(t, revealed[10], "Item 10")
	assert.Equal(t, 20, lipgloss.Height(out))
}

func TestRender_BackdropSelectionOnFrontLayer(t *testing.T) {
	m := newModel(t, config.ScreenBackdrop, 60, 20)
	m.Apply(state.SelectItem{Title: "Item 7"})
	out := Render(m)

	assert.Contains(t, out, "Item 7")
	assert.Equal(t, 20, lipgloss.Height(out))
}

func TestRender_Modes(t *testing.T) {
	m := newModel(t, config.ScreenScaffold, 60, 20)

	m.CurrentAppMode = model.ModeInitializing
	assert.Contains(t, Render(m), "Initializing")

	m.CurrentAppMode = model.ModeQuitting
	assert.Contains(t, Render(m), "Goodbye")

	m.CurrentAppMode = model.ModeHelpOverlay
	help := ansi.Strip(Render(m))
	assert.Contains(t, help, "Keyboard shortcuts")
	assert.Contains(t, help, "menu")

	m.CurrentAppMode = model.ModeLogOverlay
	m.LogViewport.SetContent(PrepareLogContent([]string{"12:00:00 [INFO] [Test] hello"}))
	logView := ansi.Strip(Render(m))
	assert.Contains(t, logView, "Activity log")
	assert.Contains(t, logView, "↑/↓ • y • esc")
}

func TestHelpOverlay_IconLegend(t *testing.T) {
	scaffold := newModel(t, config.ScreenScaffold, 80, 30)
	scaffold.CurrentAppMode = model.ModeHelpOverlay
	out := ansi.Strip(Render(scaffold))
	assert.Contains(t, out, design.IconText(design.IconMenu, "Menu"))
	assert.Contains(t, out, design.IconText(design.IconAdd, "Add"))

	backdrop := newModel(t, config.ScreenBackdrop, 80, 30)
	backdrop.CurrentAppMode = model.ModeHelpOverlay
	out = ansi.Strip(Render(backdrop))
	assert.Contains(t, out, design.IconText(design.IconMenu, "Open menu"))
	assert.Contains(t, out, design.IconText(design.IconBack, "Close menu"))
}

func TestRender_PartialLocaleUsesEnglishFallback(t *testing.T) {
	require.NoError(t, i18n.Init("es"))
	t.Cleanup(func() { _ = i18n.Init("") })

	m := newModel(t, config.ScreenBackdrop, 60, 20)
	lines := plainLines(Render(m))
	assert.Contains(t, lines[0], "Backdrop")
	assert.NotContains(t, lines[0], i18n.MsgScreenBackdrop)

	m.CurrentAppMode = model.ModeHelpOverlay
	help := ansi.Strip(Render(m))
	assert.Contains(t, help, "jump to item")
	assert.NotContains(t, help, i18n.MsgKeyJump)
	assert.Contains(t, help, "Abrir menú")
}

func TestLogOverlaySize(t *testing.T) {
	ow, oh, vw, vh := LogOverlaySize(100, 40)
	assert.Equal(t, 80, ow)
	assert.Equal(t, 28, oh)
	assert.Greater(t, vw, 0)
	assert.Greater(t, vh, 0)
	assert.Less(t, vw, ow)
	assert.Less(t, vh, oh)

	_, _, vw, vh = LogOverlaySize(0, 0)
	assert.Equal(t, 0, vw)
	assert.Equal(t, 0, vh)
}

func TestPrepareLogContent(t *testing.T) {
	out := PrepareLogContent([]string{"a [ERROR] x", "b [WARN] y", "c [DEBUG] z", "d"})
	assert.Equal(t, 4, lipgloss.Height(out))
	assert.Contains(t, ansi.Strip(out), "a [ERROR] x")
}
