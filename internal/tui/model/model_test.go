package model

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scaffolddemo/internal/config"
	"scaffolddemo/internal/state"
	"scaffolddemo/pkg/logging"
)

func newTestModel(t *testing.T, screen config.Screen) *Model {
	t.Helper()
	cfg := config.GetDefaultConfig()
	cfg.Screen = screen
	m := InitialModel(cfg, false, nil)
	n := 0
	m.NewNotificationID = func() string {
		n++
		return fmt.Sprintf("n%d", n)
	}
	return m
}

func TestInitialModel(t *testing.T) {
	m := newTestModel(t, config.ScreenScaffold)

	assert.Equal(t, ModeInitializing, m.CurrentAppMode)
	assert.Equal(t, "Title", m.Title)
	assert.Equal(t, "Item 1", m.Scaffold.Selection.Current())
	assert.Equal(t, "Item 1", m.Backdrop.Selection.Current())
	assert.Equal(t, 10, m.Backdrop.Selection.Len())
	assert.Len(t, m.BottomItems, 3)
	assert.Len(t, m.DrawerItems, 3)
	assert.True(t, m.MouseEnabled)
	assert.Equal(t, config.DefaultFrames, m.Animation.Frames)
}

func TestApplyRoutesToActiveScreen(t *testing.T) {
	m := newTestModel(t, config.ScreenBackdrop)

	changed := m.Apply(state.OpenPanel{})
	assert.True(t, changed)
	assert.True(t, m.Backdrop.Layer.IsOpen())
	assert.False(t, m.Scaffold.Drawer.IsOpen())

	changed = m.Apply(state.SelectItem{Title: "Item 4"})
	assert.True(t, changed)
	assert.Equal(t, "Item 4", m.Backdrop.Selection.Current())
	assert.False(t, m.Backdrop.Layer.IsOpen())
	assert.Equal(t, "Item 1", m.Scaffold.Selection.Current())
}

func TestApplyOpenResetsCursor(t *testing.T) {
	m := newTestModel(t, config.ScreenBackdrop)
	m.Apply(state.SelectItem{Title: "Item 6"})
	m.BackLayerCursor = 0

	m.Apply(state.OpenPanel{})
	assert.Equal(t, 5, m.BackLayerCursor)

	s := newTestModel(t, config.ScreenScaffold)
	s.DrawerCursor = 2
	s.Apply(state.OpenPanel{})
	assert.Equal(t, 0, s.DrawerCursor)
}

func TestApplyScaffoldSelectKeepsDrawer(t *testing.T) {
	m := newTestModel(t, config.ScreenScaffold)
	m.Apply(state.OpenPanel{})

	changed := m.Apply(state.SelectItem{Title: "Item 3"})
	assert.False(t, changed)
	assert.True(t, m.Scaffold.Drawer.IsOpen())
	assert.Equal(t, "Item 3", m.Scaffold.Selection.Current())
}

func TestNotifyLastWriteWins(t *testing.T) {
	m := newTestModel(t, config.ScreenScaffold)

	cmd1 := m.Notify("first")
	require.NotNil(t, cmd1)
	cmd2 := m.Notify("second")
	require.NotNil(t, cmd2)

	n, ok := m.Scaffold.Snackbar.Visible()
	require.True(t, ok)
	assert.Equal(t, "second", n.Text)

	// the first timer fires late and must not hide the newer message
	m.Apply(state.DismissNotification{ID: "n1"})
	_, ok = m.Scaffold.Snackbar.Visible()
	assert.True(t, ok)

	m.Apply(state.DismissNotification{ID: "n2"})
	_, ok = m.Scaffold.Snackbar.Visible()
	assert.False(t, ok)
}

func TestDismissNotificationAcrossScreens(t *testing.T) {
	m := newTestModel(t, config.ScreenScaffold)
	m.Notify("hello")
	m.SwitchScreen()

	m.DismissNotification("n1")
	_, ok := m.Scaffold.Snackbar.Visible()
	assert.False(t, ok)
}

func TestSnackbarText(t *testing.T) {
	m := newTestModel(t, config.ScreenScaffold)
	assert.Equal(t, "Button clicked", m.SnackbarText())

	m.Config.Snackbar.Message = "Saved"
	assert.Equal(t, "Saved", m.SnackbarText())
}

func TestSwitchScreen(t *testing.T) {
	m := newTestModel(t, config.ScreenScaffold)
	m.Apply(state.OpenPanel{})
	m.Animation.Snap(true)

	m.SwitchScreen()
	assert.Equal(t, config.ScreenBackdrop, m.Screen)
	assert.Equal(t, 0, m.Animation.Frame)
	assert.False(t, m.ActivePanel().IsOpen())

	m.SwitchScreen()
	assert.Equal(t, config.ScreenScaffold, m.Screen)
	assert.Equal(t, m.Animation.Frames, m.Animation.Frame)
	assert.True(t, m.ActivePanel().IsOpen())
}

func TestActiveAccessors(t *testing.T) {
	m := newTestModel(t, config.ScreenBackdrop)
	m.Apply(state.SelectItem{Title: "Item 2"})
	assert.Equal(t, "Item 2", m.ActiveSelection().Current())

	m.Notify("hi")
	_, ok := m.ActiveSnackbar().Visible()
	assert.True(t, ok)

	m.SwitchScreen()
	assert.Equal(t, "Item 1", m.ActiveSelection().Current())
	_, ok = m.ActiveSnackbar().Visible()
	assert.False(t, ok)
}

func TestAddRawLineToActivityLogCaps(t *testing.T) {
	m := newTestModel(t, config.ScreenScaffold)
	for i := 0; i < MaxActivityLogLines+5; i++ {
		AddRawLineToActivityLog(m, fmt.Sprintf("line %d", i))
	}
	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.Equal(t, "line 5", m.ActivityLog[0])
	assert.True(t, m.ActivityLogDirty)
}

func TestAddLogEntry(t *testing.T) {
	m := newTestModel(t, config.ScreenScaffold)
	AddLogEntry(m, logging.LogEntry{
		Timestamp: time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
		Level:     logging.LevelInfo,
		Subsystem: "Scaffold",
		Message:   "opened",
	})
	require.Len(t, m.ActivityLog, 1)
	assert.Equal(t, "09:30:00 [INFO] [Scaffold] opened", m.ActivityLog[0])
}

func TestSetStatusMessageCancelsPrevious(t *testing.T) {
	m := newTestModel(t, config.ScreenScaffold)
	m.SetStatusMessage("one", StatusBarInfo, time.Second)
	first := m.StatusBarClearCancel
	m.SetStatusMessage("two", StatusBarSuccess, time.Second)

	select {
	case <-first:
	default:
		t.Fatal("expected first cancel channel to be closed")
	}
	assert.Equal(t, "two", m.StatusBarMessage)

	m.ClearStatusMessage()
	assert.Empty(t, m.StatusBarMessage)
}

func TestListenForLogEntriesCmd(t *testing.T) {
	assert.Nil(t, ListenForLogEntriesCmd(nil))

	ch := make(chan logging.LogEntry, 1)
	ch <- logging.LogEntry{Message: "hello"}
	msg := ListenForLogEntriesCmd(ch)()
	entryMsg, ok := msg.(NewLogEntryMsg)
	require.True(t, ok)
	assert.Equal(t, "hello", entryMsg.Entry.Message)

	close(ch)
	assert.Nil(t, ListenForLogEntriesCmd(ch)())
}

func TestCopyToClipboardCmd(t *testing.T) {
	original := writeClipboard
	t.Cleanup(func() { writeClipboard = original })

	var got string
	writeClipboard = func(text string) error {
		got = text
		return nil
	}

	msg := CopyToClipboardCmd("log text")()
	assert.Equal(t, ClipboardResultMsg{}, msg)
	assert.Equal(t, "log text", got)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	msg = CopyToClipboardCmd("x")()
	assert.EqualError(t, msg.(ClipboardResultMsg).Err, "no clipboard")
}

func TestAppModeString(t *testing.T) {
	assert.Equal(t, "Main", ModeMain.String())
	assert.Equal(t, "LogOverlay", ModeLogOverlay.String())
	assert.Equal(t, "Unknown", AppMode(99).String())
}
