package state

// SimState represents the run state of the sandbox
type SimState int

const (
	StateRunning  SimState = iota
	StatePaused            // ticks frozen
	StateStepping          // one tick pending, then back to paused
)

// String returns the string representation of the sim state
func (s SimState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateStepping:
		return "Stepping"
	default:
		return "Unknown"
	}
}

// Toggle flips between running and paused. A pending step counts as paused.
func (s SimState) Toggle() SimState {
	if s == StateRunning {
		return StatePaused
	}
	return StateRunning
}
