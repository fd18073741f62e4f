package dino

import (
	"math"

	"github.com/vovakirdan/tui-dino/internal/config"
)

// Events are the discrete effects produced by one score update.
type Events struct {
	Checkpoint   bool // a checkpoint multiple was crossed
	ThemeToggled bool // the theme flipped; Round.Dark holds the new value
}

// Progression converts elapsed time into score, speed scale and the
// edge-triggered checkpoint and theme events.
type Progression struct {
	scoreRate          float64
	speedScaleRate     float64
	checkpointInterval int
	themeInterval      int
}

// NewProgression creates a tracker from progression config.
func NewProgression(cfg config.ProgressionConfig) Progression {
	return Progression{
		scoreRate:          cfg.ScoreRate,
		speedScaleRate:     cfg.SpeedScaleRate,
		checkpointInterval: cfg.CheckpointInterval,
		themeInterval:      cfg.ThemeInterval,
	}
}

// AdvanceSpeed grows the round's speed scale by delta * speedScaleRate.
func (p Progression) AdvanceSpeed(r *Round, delta float64) {
	r.SpeedScale += delta * p.speedScaleRate
}

// AdvanceScore grows the score by delta * scoreRate and reports checkpoint
// and theme events. Each multiple fires at most once: a marker remembers the
// last multiple handled, so frames that stay on the same floored score do
// not re-fire.
func (p Progression) AdvanceScore(r *Round, delta float64) Events {
	r.Score += delta * p.scoreRate

	var ev Events
	floor := int(math.Floor(r.Score))

	if mark := lastMultiple(floor, p.checkpointInterval); mark > 0 && mark > r.checkpointMark {
		r.checkpointMark = mark
		ev.Checkpoint = true
	}

	if mark := lastMultiple(floor, p.themeInterval); mark > 0 && mark > r.themeMark {
		r.themeMark = mark
		r.Dark = !r.Dark
		ev.ThemeToggled = true
	}

	return ev
}

// lastMultiple returns the largest multiple of interval that is <= n.
func lastMultiple(n, interval int) int {
	if interval <= 0 {
		return 0
	}
	return n / interval * interval
}
