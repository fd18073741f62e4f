package dino

// Phase is the driver's lifecycle state.
type Phase int

const (
	PhaseIdle    Phase = iota // start screen visible, waiting for a press
	PhaseRunning              // frames are being simulated
	PhaseLost                 // frozen after a collision, waiting to be re-armed
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Round is the mutable state of one round. It is owned by a single Driver.
type Round struct {
	Phase      Phase
	Score      float64 // >= 0, non-decreasing while running
	SpeedScale float64 // >= 1, non-decreasing while running
	Dark       bool    // current visual theme

	lastTime       float64
	hasLastTime    bool
	checkpointMark int // last score multiple that fired the checkpoint cue
	themeMark      int // last score multiple that toggled the theme
}

// reset prepares the round for a fresh start.
func (r *Round) reset(initialSpeedScale float64) {
	*r = Round{
		Phase:      PhaseRunning,
		SpeedScale: initialSpeedScale,
	}
}
