package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bottomItems() []MenuItem {
	return []MenuItem{
		{Title: "Item 1", Icon: IconOne},
		{Title: "Item 2", Icon: IconTwo},
		{Title: "Item 3", Icon: IconThree},
	}
}

func TestBackdrop_Scenario(t *testing.T) {
	s := NewBackdropState(tenItems())
	require.Equal(t, "Item 1", s.Selection.Current())
	require.Equal(t, PanelClosed, s.Layer)

	s = ReduceBackdrop(s, OpenPanel{})
	assert.Equal(t, "Item 1", s.Selection.Current())
	assert.Equal(t, PanelOpen, s.Layer)

	s = ReduceBackdrop(s, SelectItem{Title: "Item 4"})
	assert.Equal(t, "Item 4", s.Selection.Current())
	assert.Equal(t, PanelClosed, s.Layer)
}

func TestBackdrop_SelectWhileOpenAlwaysCloses(t *testing.T) {
	for _, item := range tenItems() {
		t.Run(item, func(t *testing.T) {
			s := ReduceBackdrop(NewBackdropState(tenItems()), OpenPanel{})
			s = ReduceBackdrop(s, SelectItem{Title: item})
			assert.Equal(t, PanelClosed, s.Layer)
			assert.Equal(t, item, s.Selection.Current())
		})
	}
}

func TestScaffold_SelectDoesNotTouchDrawer(t *testing.T) {
	s := ReduceScaffold(NewScaffoldState(bottomItems()), OpenPanel{})
	s = ReduceScaffold(s, SelectItem{Title: "Item 3"})

	assert.Equal(t, "Item 3", s.Selection.Current())
	assert.Equal(t, PanelOpen, s.Drawer)
}

func TestScaffold_PanelEvents(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   PanelState
	}{
		{name: "initial", events: nil, want: PanelClosed},
		{name: "open", events: []Event{OpenPanel{}}, want: PanelOpen},
		{name: "open twice", events: []Event{OpenPanel{}, OpenPanel{}}, want: PanelOpen},
		{name: "open close", events: []Event{OpenPanel{}, ClosePanel{}}, want: PanelClosed},
		{name: "close when closed", events: []Event{ClosePanel{}}, want: PanelClosed},
		{name: "toggle", events: []Event{TogglePanel{}}, want: PanelOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScaffoldState(bottomItems())
			for _, e := range tt.events {
				s = ReduceScaffold(s, e)
			}
			assert.Equal(t, tt.want, s.Drawer)
		})
	}
}

func TestScreens_InitialSelectionIsIndependent(t *testing.T) {
	scaffold := NewScaffoldState(bottomItems())
	backdrop := NewBackdropState([]string{"Alpha", "Beta"})

	assert.Equal(t, "Item 1", scaffold.Selection.Current())
	assert.Equal(t, "Alpha", backdrop.Selection.Current())
}

func TestScreens_Notifications(t *testing.T) {
	s := ReduceScaffold(NewScaffoldState(bottomItems()), ShowNotification{ID: "a", Text: "Button clicked"})
	s = ReduceScaffold(s, ShowNotification{ID: "b", Text: "Button clicked"})
	s = ReduceScaffold(s, DismissNotification{ID: "a"})

	n, ok := s.Snackbar.Visible()
	require.True(t, ok)
	assert.Equal(t, "b", n.ID)

	s = ReduceScaffold(s, DismissNotification{ID: "b"})
	_, ok = s.Snackbar.Visible()
	assert.False(t, ok)
}

func TestReducers_DoNotModifyInput(t *testing.T) {
	before := NewBackdropState(tenItems())
	_ = ReduceBackdrop(before, OpenPanel{})
	_ = ReduceBackdrop(before, SelectItem{Title: "Item 9"})

	assert.Equal(t, "Item 1", before.Selection.Current())
	assert.Equal(t, PanelClosed, before.Layer)
}

func TestStateStrings(t *testing.T) {
	b := ReduceBackdrop(NewBackdropState(tenItems()), OpenPanel{})
	assert.Equal(t, `selection="Item 1" layer=Revealed`, b.String())

	s := ReduceScaffold(NewScaffoldState(bottomItems()), ShowNotification{ID: "x", Text: "Button clicked"})
	assert.Equal(t, `selection="Item 1" drawer=Closed snackbar="Button clicked"`, s.String())
}

func TestIconRef_IsKnown(t *testing.T) {
	assert.True(t, IconMenu.IsKnown())
	assert.False(t, IconRef("star").IsKnown())
}
