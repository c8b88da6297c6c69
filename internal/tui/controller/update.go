package controller

import (
	"time"

	"scaffolddemo/internal/i18n"
	"scaffolddemo/internal/tui/model"
	"scaffolddemo/internal/tui/view"
	"scaffolddemo/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	controllerDispatchSubsystem = "ControllerDispatch"
	statusMessageDuration       = 3 * time.Second
)

// mainControllerDispatch is the central message routing function for the TUI application.
// Every state change of a screen goes through model.Apply from here, one message at a time.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg, model.PanelFrameMsg:
	default:
		if m.DebugMode {
			logging.Debug(controllerDispatchSubsystem, "Received msg: %T -- Value: %v", msg, msg)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case tea.KeyMsg:
		return handleKeyMsgGlobal(m, msg)

	case tea.MouseMsg:
		return handleMouseMsg(m, msg)

	case model.PanelFrameMsg:
		return handlePanelFrameMsg(m, msg)

	case model.DismissNotificationMsg:
		m.DismissNotification(msg.ID)
		return m, nil

	case model.NewLogEntryMsg:
		model.AddLogEntry(m, msg.Entry)
		if m.CurrentAppMode == model.ModeLogOverlay {
			refreshLogViewport(m)
		}
		return m, model.ListenForLogEntriesCmd(m.LogChannel)

	case model.ClipboardResultMsg:
		if msg.Err != nil {
			logging.Error(controllerDispatchSubsystem, msg.Err, "Failed to copy activity log")
			return m, m.SetStatusMessage(
				i18n.TData(i18n.MsgLogCopyFailed, map[string]interface{}{"Error": msg.Err.Error()}),
				model.StatusBarError, statusMessageDuration)
		}
		return m, m.SetStatusMessage(i18n.T(i18n.MsgLogCopied), model.StatusBarSuccess, statusMessageDuration)

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage()
		return m, nil

	case spinner.TickMsg:
		if m.CurrentAppMode != model.ModeInitializing {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func refreshLogViewport(m *model.Model) {
	if !m.ActivityLogDirty && m.LogViewportLastWidth == m.LogViewport.Width {
		return
	}
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
	m.LogViewport.GotoBottom()
	m.ActivityLogDirty = false
	m.LogViewportLastWidth = m.LogViewport.Width
}
