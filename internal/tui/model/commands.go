package model

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"scaffolddemo/pkg/logging"
)

// DismissNotificationCmd fires a DismissNotificationMsg for id after d.
// The timer is never cancelled; a newer notification simply makes it stale.
func DismissNotificationCmd(id string, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissNotificationMsg{ID: id}
	})
}

// PanelFrameCmd schedules the next frame of animation chain gen.
func PanelFrameCmd(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return PanelFrameMsg{Gen: gen}
	})
}

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once the channel is closed.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// For mocking in tests
var writeClipboard = clipboard.WriteAll

// CopyToClipboardCmd writes text to the system clipboard.
func CopyToClipboardCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return ClipboardResultMsg{Err: writeClipboard(text)}
	}
}
