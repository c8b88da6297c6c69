package state

// Notification is a one-shot transient message.
type Notification struct {
	ID   string
	Text string
}

// Snackbar holds at most one visible notification.
type Snackbar struct {
	visible *Notification
}

// Visible returns the notification on screen, if any.
func (s Snackbar) Visible() (Notification, bool) {
	if s.visible == nil {
		return Notification{}, false
	}
	return *s.visible, true
}

// Show replaces whatever is visible with n.
func (s Snackbar) Show(n Notification) Snackbar {
	s.visible = &n
	return s
}

// Dismiss hides the visible notification when its ID matches id.
// A timer started for an older notification therefore never hides a newer one.
func (s Snackbar) Dismiss(id string) Snackbar {
	if s.visible != nil && s.visible.ID == id {
		s.visible = nil
	}
	return s
}
