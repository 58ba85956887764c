package core

// Action is a semantic player command, abstracted from physical key presses.
// Frontends translate their own input events into actions so the simulation
// never sees a key code.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, H, A
	ActionRight           // Right arrow, L, D
	ActionSoftDrop        // Down arrow, J, S - one row down
	ActionRotate          // Up arrow, K, W, X - rotate clockwise
	ActionStart           // Enter, R - start or restart
	ActionQuit            // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Playing reports whether the action only has meaning during play.
// Start and Quit are accepted in every phase.
func (a Action) Playing() bool {
	switch a {
	case ActionLeft, ActionRight, ActionSoftDrop, ActionRotate:
		return true
	default:
		return false
	}
}
