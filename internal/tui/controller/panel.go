package controller

import (
	"scaffolddemo/internal/state"
	"scaffolddemo/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// apply runs ev through the model and starts the slide animation when the panel moved.
func apply(m *model.Model, ev state.Event) tea.Cmd {
	if !m.Apply(ev) {
		return nil
	}
	return startPanelAnimation(m)
}

func startPanelAnimation(m *model.Model) tea.Cmd {
	open := m.ActivePanel().IsOpen()
	if m.Animation.Frames == 0 {
		m.Animation.Snap(open)
		return nil
	}
	if m.Animation.Running {
		// The running chain reads the target on every frame and turns around by itself.
		return nil
	}
	gen := m.Animation.Start()
	return model.PanelFrameCmd(gen, m.Config.Animation.FrameInterval)
}

func handlePanelFrameMsg(m *model.Model, msg model.PanelFrameMsg) (*model.Model, tea.Cmd) {
	if msg.Gen != m.Animation.Gen {
		return m, nil
	}
	if m.Animation.Step(m.ActivePanel().IsOpen()) {
		return m, model.PanelFrameCmd(msg.Gen, m.Config.Animation.FrameInterval)
	}
	return m, nil
}
