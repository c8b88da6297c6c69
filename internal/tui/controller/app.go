package controller

import (
	"scaffolddemo/internal/tui/model"
	"scaffolddemo/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// AppModel wraps the model to handle updates and views
type AppModel struct {
	model *model.Model
}

// NewAppModel creates a new app wrapper
func NewAppModel(m *model.Model) AppModel {
	return AppModel{model: m}
}

// Model exposes the wrapped model.
func (a AppModel) Model() *model.Model {
	return a.model
}

// Init implements tea.Model
func (a AppModel) Init() tea.Cmd {
	return tea.Batch(
		a.model.Spinner.Tick,
		model.ListenForLogEntriesCmd(a.model.LogChannel),
	)
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := mainControllerDispatch(a.model, msg)
	a.model = updatedModel
	return a, cmd
}

// View implements tea.Model
func (a AppModel) View() string {
	return view.Render(a.model)
}
