package state

import "fmt"

// Event is a user intent applied to a screen state by a reducer.
type Event interface {
	isEvent()
	fmt.Stringer
}

// OpenPanel opens the drawer or reveals the back layer.
type OpenPanel struct{}

// ClosePanel closes the drawer or conceals the back layer.
type ClosePanel struct{}

// TogglePanel flips the panel, as the backdrop navigation icon does.
type TogglePanel struct{}

// SelectItem selects the item with the given title.
type SelectItem struct {
	Title string
}

// ShowNotification puts a message in the snackbar, replacing any visible one.
type ShowNotification struct {
	ID   string
	Text string
}

// DismissNotification hides the snackbar message with the given ID.
type DismissNotification struct {
	ID string
}

func (OpenPanel) isEvent()           {}
func (ClosePanel) isEvent()          {}
func (TogglePanel) isEvent()         {}
func (SelectItem) isEvent()          {}
func (ShowNotification) isEvent()    {}
func (DismissNotification) isEvent() {}

func (OpenPanel) String() string   { return "open" }
func (ClosePanel) String() string  { return "close" }
func (TogglePanel) String() string { return "toggle" }
func (e SelectItem) String() string {
	return fmt.Sprintf("select:%s", e.Title)
}
func (e ShowNotification) String() string {
	return fmt.Sprintf("notify:%s", e.Text)
}
func (e DismissNotification) String() string {
	return fmt.Sprintf("dismiss:%s", e.ID)
}
