package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"scaffolddemo/internal/config"
	"scaffolddemo/internal/i18n"
	"scaffolddemo/internal/state"
	"scaffolddemo/pkg/logging"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeInitializing AppMode = iota
	ModeMain
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

func (m AppMode) String() string {
	switch m {
	case ModeInitializing:
		return "Initializing"
	case ModeMain:
		return "Main"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
)

const (
	MaxActivityLogLines = 1000
)

// KeyMap defines the keybindings for the application
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Select       key.Binding
	Menu         key.Binding
	Close        key.Binding
	Fab          key.Binding
	Jump         key.Binding
	SwitchScreen key.Binding
	Help         key.Binding
	ToggleLog    key.Binding
	CopyLog      key.Binding
	Quit         key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Select, k.SwitchScreen, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Jump, k.Menu, k.Close},
		{k.Fab, k.SwitchScreen, k.ToggleLog, k.CopyLog},
		{k.Help, k.Quit},
	}
}

// Model is the TUI state. Screen state lives in the pure Scaffold and
// Backdrop values and only changes through Apply.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	CurrentAppMode AppMode
	Screen         config.Screen
	DebugMode      bool
	MouseEnabled   bool

	// Read-only configuration snapshot
	Config      config.DemoConfig
	Title       string
	BottomItems []state.MenuItem
	DrawerItems []state.MenuItem

	// Screen state
	Scaffold state.ScaffoldState
	Backdrop state.BackdropState

	// Focus cursors. These are presentation state, not part of the screen state.
	BottomFocus     int
	DrawerCursor    int
	BackLayerCursor int

	Animation PanelAnimation

	// UI components
	Keys                 KeyMap
	Help                 help.Model
	LogViewport          viewport.Model
	LogViewportLastWidth int
	Spinner              spinner.Model

	// Activity log
	ActivityLog      []string
	ActivityLogDirty bool
	LogChannel       <-chan logging.LogEntry

	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	QuittingMessage string

	// NewNotificationID is replaceable for tests.
	NewNotificationID func() string
}

// ActivePanel returns the drawer on the scaffold screen and the back layer on the backdrop.
func (m *Model) ActivePanel() state.PanelState {
	if m.Screen == config.ScreenScaffold {
		return m.Scaffold.Drawer
	}
	return m.Backdrop.Layer
}

// ActiveSnackbar returns the snackbar of the current screen.
func (m *Model) ActiveSnackbar() state.Snackbar {
	if m.Screen == config.ScreenScaffold {
		return m.Scaffold.Snackbar
	}
	return m.Backdrop.Snackbar
}

// ActiveSelection returns the selection of the current screen.
func (m *Model) ActiveSelection() state.Selection {
	if m.Screen == config.ScreenScaffold {
		return m.Scaffold.Selection
	}
	return m.Backdrop.Selection
}

// Apply runs ev through the reducer of the current screen.
// It reports whether the panel changed so callers can start an animation.
func (m *Model) Apply(ev state.Event) (panelChanged bool) {
	switch m.Screen {
	case config.ScreenScaffold:
		before := m.Scaffold
		m.Scaffold = state.ReduceScaffold(m.Scaffold, ev)
		logging.Debug("Scaffold", "%s: %s -> %s", ev, before, m.Scaffold)
		panelChanged = before.Drawer != m.Scaffold.Drawer
		if panelChanged && m.Scaffold.Drawer.IsOpen() {
			m.DrawerCursor = 0
		}
	default:
		before := m.Backdrop
		m.Backdrop = state.ReduceBackdrop(m.Backdrop, ev)
		logging.Debug("Backdrop", "%s: %s -> %s", ev, before, m.Backdrop)
		panelChanged = before.Layer != m.Backdrop.Layer
		if panelChanged && m.Backdrop.Layer.IsOpen() {
			m.BackLayerCursor = m.Backdrop.Selection.Index()
		}
	}
	return panelChanged
}

// Notify shows text in the snackbar of the current screen and returns the
// timer that hides it again.
func (m *Model) Notify(text string) tea.Cmd {
	id := m.NewNotificationID()
	m.Apply(state.ShowNotification{ID: id, Text: text})
	return DismissNotificationCmd(id, m.Config.Snackbar.Duration)
}

// DismissNotification hides notification id on whichever screen shows it.
// Timers keep running across screen switches, so both screens are checked.
func (m *Model) DismissNotification(id string) {
	ev := state.DismissNotification{ID: id}
	m.Scaffold = state.ReduceScaffold(m.Scaffold, ev)
	m.Backdrop = state.ReduceBackdrop(m.Backdrop, ev)
	logging.Debug("Snackbar", "%s", ev)
}

// SnackbarText is the text the floating action button shows.
func (m *Model) SnackbarText() string {
	if m.Config.Snackbar.Message != "" {
		return m.Config.Snackbar.Message
	}
	return i18n.T(i18n.MsgButtonClicked)
}

// SwitchScreen moves to the other screen. Panel animation snaps to the new screen's panel.
func (m *Model) SwitchScreen() {
	if m.Screen == config.ScreenScaffold {
		m.Screen = config.ScreenBackdrop
	} else {
		m.Screen = config.ScreenScaffold
	}
	m.Animation.Snap(m.ActivePanel().IsOpen())
	logging.Info("Controller", "Switched to %s screen", m.Screen)
}

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ClearStatusMessage removes the status bar message.
func (m *Model) ClearStatusMessage() {
	m.StatusBarMessage = ""
	m.StatusBarClearCancel = nil
}
