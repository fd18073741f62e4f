package core

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionPress         // Space, Up, W - start a round when idle, jump while running
	ActionQuit          // Q, Ctrl+C - exit the program or session
	ActionCapture       // Ctrl+S - save a text screenshot
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPress:
		return "Press"
	case ActionQuit:
		return "Quit"
	case ActionCapture:
		return "Capture"
	default:
		return "Unknown"
	}
}
