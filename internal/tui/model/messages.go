package model

import "scaffolddemo/pkg/logging"

// PanelFrameMsg advances the panel animation by one frame.
type PanelFrameMsg struct {
	Gen int
}

// DismissNotificationMsg hides the snackbar if it still shows notification ID.
type DismissNotificationMsg struct {
	ID string
}

// NewLogEntryMsg carries a log entry from the logging channel to the TUI.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClearStatusBarMsg clears the status bar message.
type ClearStatusBarMsg struct{}

// ClipboardResultMsg reports the outcome of copying the activity log.
type ClipboardResultMsg struct {
	Err error
}
