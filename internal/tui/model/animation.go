package model

// PanelAnimation tracks how far the active panel is drawn. Frame runs from 0
// (closed) to Frames (fully open). It never feeds back into screen state.
type PanelAnimation struct {
	Frame   int
	Frames  int
	Running bool
	// Gen identifies the current tick chain; frames from older chains are ignored.
	Gen int
}

// NewPanelAnimation returns an animation resting at the closed position.
func NewPanelAnimation(frames int) PanelAnimation {
	if frames < 0 {
		frames = 0
	}
	return PanelAnimation{Frames: frames}
}

// Progress returns the reveal fraction in [0, 1].
func (a PanelAnimation) Progress(open bool) float64 {
	if a.Frames == 0 {
		if open {
			return 1
		}
		return 0
	}
	return float64(a.Frame) / float64(a.Frames)
}

// Settled reports whether the animation rests at the position for open.
func (a PanelAnimation) Settled(open bool) bool {
	if a.Frames == 0 {
		return true
	}
	if open {
		return a.Frame == a.Frames
	}
	return a.Frame == 0
}

// Step moves one frame towards open and reports whether more frames remain.
func (a *PanelAnimation) Step(open bool) bool {
	if a.Frames == 0 {
		a.Running = false
		return false
	}
	if open && a.Frame < a.Frames {
		a.Frame++
	} else if !open && a.Frame > 0 {
		a.Frame--
	}
	a.Running = !a.Settled(open)
	return a.Running
}

// Start begins a new tick chain and returns its generation.
func (a *PanelAnimation) Start() int {
	a.Gen++
	a.Running = true
	return a.Gen
}

// Snap jumps straight to the resting position for open.
func (a *PanelAnimation) Snap(open bool) {
	a.Gen++
	if open {
		a.Frame = a.Frames
	} else {
		a.Frame = 0
	}
	a.Running = false
}
