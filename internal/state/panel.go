package state

// PanelState is the visibility of a drawer or back layer.
type PanelState int

const (
	PanelClosed PanelState = iota
	PanelOpen
)

// String provides a human-readable representation of the PanelState.
func (p PanelState) String() string {
	switch p {
	case PanelOpen:
		return "Open"
	default:
		return "Closed"
	}
}

// BackdropString names the state the way a backdrop layer does.
func (p PanelState) BackdropString() string {
	switch p {
	case PanelOpen:
		return "Revealed"
	default:
		return "Concealed"
	}
}

// IsOpen reports whether the panel is showing.
func (p PanelState) IsOpen() bool {
	return p == PanelOpen
}

// Open returns PanelOpen from either state.
func (p PanelState) Open() PanelState {
	return PanelOpen
}

// Close returns PanelClosed from either state.
func (p PanelState) Close() PanelState {
	return PanelClosed
}

// Toggle flips the state.
func (p PanelState) Toggle() PanelState {
	if p == PanelOpen {
		return PanelClosed
	}
	return PanelOpen
}
