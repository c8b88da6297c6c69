package state

import "fmt"

// ScaffoldState is the state of the scaffold screen: the bottom navigation
// selection, the drawer and the snackbar.
type ScaffoldState struct {
	Selection Selection
	Drawer    PanelState
	Snackbar  Snackbar
}

// NewScaffoldState starts with the first bottom item selected and the drawer closed.
func NewScaffoldState(bottomItems []MenuItem) ScaffoldState {
	return ScaffoldState{
		Selection: NewSelection(Titles(bottomItems)),
		Drawer:    PanelClosed,
	}
}

// String renders the state as a single line.
func (s ScaffoldState) String() string {
	return fmt.Sprintf("selection=%q drawer=%s%s", s.Selection.Current(), s.Drawer, snackbarSuffix(s.Snackbar))
}

// ReduceScaffold applies e to s. Selecting a bottom item does not touch the drawer.
func ReduceScaffold(s ScaffoldState, e Event) ScaffoldState {
	switch e := e.(type) {
	case OpenPanel:
		s.Drawer = s.Drawer.Open()
	case ClosePanel:
		s.Drawer = s.Drawer.Close()
	case TogglePanel:
		s.Drawer = s.Drawer.Toggle()
	case SelectItem:
		s.Selection = s.Selection.Select(e.Title)
	case ShowNotification:
		s.Snackbar = s.Snackbar.Show(Notification{ID: e.ID, Text: e.Text})
	case DismissNotification:
		s.Snackbar = s.Snackbar.Dismiss(e.ID)
	}
	return s
}

// BackdropState is the state of the backdrop screen: the menu selection, the
// back layer and the snackbar.
type BackdropState struct {
	Selection Selection
	Layer     PanelState
	Snackbar  Snackbar
}

// NewBackdropState starts with the first menu item selected and the back layer concealed.
func NewBackdropState(menuItems []string) BackdropState {
	return BackdropState{
		Selection: NewSelection(menuItems),
		Layer:     PanelClosed,
	}
}

// String renders the state as a single line.
func (s BackdropState) String() string {
	return fmt.Sprintf("selection=%q layer=%s%s", s.Selection.Current(), s.Layer.BackdropString(), snackbarSuffix(s.Snackbar))
}

// ReduceBackdrop applies e to s. Selecting an item also conceals the back
// layer in the same transition.
func ReduceBackdrop(s BackdropState, e Event) BackdropState {
	switch e := e.(type) {
	case OpenPanel:
		s.Layer = s.Layer.Open()
	case ClosePanel:
		s.Layer = s.Layer.Close()
	case TogglePanel:
		s.Layer = s.Layer.Toggle()
	case SelectItem:
		s.Selection = s.Selection.Select(e.Title)
		s.Layer = s.Layer.Close()
	case ShowNotification:
		s.Snackbar = s.Snackbar.Show(Notification{ID: e.ID, Text: e.Text})
	case DismissNotification:
		s.Snackbar = s.Snackbar.Dismiss(e.ID)
	}
	return s
}

func snackbarSuffix(s Snackbar) string {
	if n, ok := s.Visible(); ok {
		return fmt.Sprintf(" snackbar=%q", n.Text)
	}
	return ""
}
