package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"scaffolddemo/internal/tui/design"
	"scaffolddemo/internal/tui/model"
	"scaffolddemo/internal/tui/utils"
)

// StatusBar represents a single status line
type StatusBar struct {
	Width       int
	Message     string
	MessageType model.MessageType
	LeftText    string
	RightText   string
	ShowMessage bool
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{
		Width:       width,
		ShowMessage: false,
	}
}

// WithMessage sets a status message
func (s *StatusBar) WithMessage(message string, msgType model.MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	s.ShowMessage = message != ""
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render() string {
	style := s.getStyle()
	available := s.Width - style.GetHorizontalFrameSize()

	var content string
	if s.ShowMessage {
		content = utils.TruncateWithEllipsis(s.Message, available)
	} else {
		leftWidth := lipgloss.Width(s.LeftText)
		rightWidth := lipgloss.Width(s.RightText)
		switch {
		case s.LeftText != "" && s.RightText != "" && leftWidth+rightWidth < available:
			content = s.LeftText + strings.Repeat(" ", available-leftWidth-rightWidth) + s.RightText
		case s.LeftText != "":
			content = utils.TruncateString(s.LeftText, available)
		default:
			content = utils.TruncateString(s.RightText, available)
		}
	}

	return style.
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

// getStyle returns the appropriate style based on message type
func (s *StatusBar) getStyle() lipgloss.Style {
	if !s.ShowMessage {
		return design.StatusBarStyle
	}
	switch s.MessageType {
	case model.StatusBarSuccess:
		return design.StatusBarSuccessStyle
	case model.StatusBarError:
		return design.StatusBarErrorStyle
	default:
		return design.StatusBarStyle
	}
}
