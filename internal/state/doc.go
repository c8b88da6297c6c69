// Package state holds the screen state of scaffolddemo independent of any
// rendering.
//
// Each screen is a value type changed only through a reducer:
//
//	s := state.NewBackdropState(items)
//	s = state.ReduceBackdrop(s, state.OpenPanel{})
//	s = state.ReduceBackdrop(s, state.SelectItem{Title: "Item 4"})
//	// s.Selection.Current() == "Item 4", s.Layer == state.PanelClosed
//
// Reducers are total: every event is valid in every state, nothing returns an
// error and the input value is never modified. Panel animation and snackbar
// timing are the renderer's concern; here every transition is instantaneous.
package state
