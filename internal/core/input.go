package core

// Action represents a semantic game action, abstracted from physical input.
// This allows games to work with high-level intents rather than raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move up one step
	ActionDown           // S, Down arrow - move down one step
	ActionDrag           // Pointer drag - move by a vertical delta
	ActionRestart        // R, Enter - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionDrag:
		return "Drag"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is a single input event delivered to a game between ticks.
type Input struct {
	Action Action
	// DY is the vertical pointer delta in world units. Only meaningful
	// for ActionDrag; positive values move down.
	DY float64
}

// Press creates an input event for a discrete action.
func Press(a Action) Input {
	return Input{Action: a}
}

// Drag creates a pointer drag event with the given vertical delta.
func Drag(dy float64) Input {
	return Input{Action: ActionDrag, DY: dy}
}
