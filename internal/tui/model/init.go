package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/google/uuid"

	"scaffolddemo/internal/config"
	"scaffolddemo/internal/i18n"
	"scaffolddemo/internal/state"
	"scaffolddemo/pkg/logging"
)

// InitialModel builds the model for cfg. cfg must already be validated.
func InitialModel(cfg config.DemoConfig, debugMode bool, logChannel <-chan logging.LogEntry) *Model {
	title := cfg.Title
	if title == "" {
		title = i18n.T(i18n.MsgAppTitle)
	}
	bottom := cfg.BottomMenuItems()

	m := &Model{
		CurrentAppMode: ModeInitializing,
		Screen:         cfg.Screen,
		DebugMode:      debugMode,
		MouseEnabled:   cfg.GlobalSettings.MouseEnabled(),

		Config:      cfg,
		Title:       title,
		BottomItems: bottom,
		DrawerItems: cfg.DrawerMenuItems(),

		Scaffold: state.NewScaffoldState(bottom),
		Backdrop: state.NewBackdropState(cfg.BackdropMenuItems()),

		Animation: NewPanelAnimation(cfg.Animation.FrameCount()),

		Keys:        DefaultKeyMap(),
		Help:        help.New(),
		LogViewport: viewport.New(80, 20),
		Spinner:     spinner.New(),

		ActivityLog: []string{},
		LogChannel:  logChannel,

		NewNotificationID: uuid.NewString,
	}
	m.Spinner.Spinner = spinner.Dot
	return m
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", i18n.T(i18n.MsgKeyUp)),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", i18n.T(i18n.MsgKeyDown)),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", i18n.T(i18n.MsgKeyLeft)),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", i18n.T(i18n.MsgKeyRight)),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", i18n.T(i18n.MsgKeySelect)),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", "ctrl+n"),
			key.WithHelp("m", i18n.T(i18n.MsgKeyMenu)),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T(i18n.MsgKeyClose)),
		),
		Fab: key.NewBinding(
			key.WithKeys("a", "+"),
			key.WithHelp("a", i18n.T(i18n.MsgKeyFab)),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
			key.WithHelp("1-9,0", i18n.T(i18n.MsgKeyJump)),
		),
		SwitchScreen: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", i18n.T(i18n.MsgKeySwitch)),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", i18n.T(i18n.MsgKeyHelp)),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", i18n.T(i18n.MsgKeyLog)),
		),
		CopyLog: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", i18n.T(i18n.MsgKeyCopy)),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", i18n.T(i18n.MsgKeyQuit)),
		),
	}
}
