// Package dino implements a Chrome Dino-style endless runner.
// The player jumps over obstacles that scroll past at increasing speed.
//
// The Driver owns all round state and is advanced by the host, which calls
// Tick once per displayed frame and honours the returned Schedule. The
// Driver never blocks and never starts goroutines.
package dino

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// Schedule tells the host what to do after a Driver call.
type Schedule int

const (
	ScheduleNone  Schedule = iota // nothing to schedule
	ScheduleFrame                 // call Tick again on the next frame
	ScheduleRearm                 // call Rearm after RestartDelay
)

// Deps are the collaborators of a Driver. Nil fields get silent defaults:
// no view, no sound, an in-memory high score and a time-seeded RNG.
type Deps struct {
	View       View
	Cues       Cues
	HighScores HighScores
	Rand       *rand.Rand
}

// Driver runs the game loop and the Idle -> Running -> Lost -> Idle cycle.
type Driver struct {
	cfg         config.DinoConfig
	view        View
	cues        Cues
	highScores  HighScores
	rng         *rand.Rand
	detector    Detector
	progression Progression

	round     Round
	ground    *Ground
	player    *Player
	obstacles *ObstacleSet
	highScore int
}

// NewDriver creates an idle driver, loads the persisted high score and shows
// the start screen.
func NewDriver(cfg config.DinoConfig, deps Deps) *Driver {
	if deps.View == nil {
		deps.View = nopView{}
	}
	if deps.Cues == nil {
		deps.Cues = nopCues{}
	}
	if deps.HighScores == nil {
		deps.HighScores = &memoryScores{}
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	d := &Driver{
		cfg:         cfg,
		view:        deps.View,
		cues:        deps.Cues,
		highScores:  deps.HighScores,
		rng:         deps.Rand,
		detector:    NewDetector(cfg.Collision),
		progression: NewProgression(cfg.Progression),
		round:       Round{Phase: PhaseIdle, SpeedScale: cfg.Progression.InitialSpeedScale},
	}
	d.newEntities()

	d.refreshHighScore()
	d.view.ShowStartScreen()
	return d
}

// refreshHighScore raises the cached best to the persisted one, which other
// drivers sharing the cell may have raised, and shows it.
func (d *Driver) refreshHighScore() int {
	d.highScore = core.Max(d.highScore, d.highScores.LoadHighScore())
	d.publishHighScore()
	return d.highScore
}

// newEntities recreates everything a round owns.
func (d *Driver) newEntities() {
	d.ground = NewGround(d.cfg.Ground)
	d.player = NewPlayer(d.cfg.Player, d.cfg.World.GroundY)
	d.obstacles = NewObstacleSet(d.cfg.Obstacles, d.cfg.World, d.rng)
}

// Start begins a new round. It only has an effect while idle.
func (d *Driver) Start() Schedule {
	if d.round.Phase != PhaseIdle {
		return ScheduleNone
	}
	d.round.reset(d.cfg.Progression.InitialSpeedScale)
	d.newEntities()
	d.refreshHighScore()
	d.view.SetScore("0")
	d.view.HideStartScreen()
	return ScheduleFrame
}

// Jump forwards the jump input to the player while a round is running.
func (d *Driver) Jump() {
	if d.round.Phase == PhaseRunning {
		d.player.Jump()
	}
}

// Press handles the single start/jump trigger.
func (d *Driver) Press() Schedule {
	switch d.round.Phase {
	case PhaseIdle:
		return d.Start()
	case PhaseRunning:
		d.Jump()
	}
	return ScheduleNone
}

// Tick advances the round to timestampMs. The first tick after Start only
// records the timestamp. Negative deltas are treated as zero.
func (d *Driver) Tick(timestampMs float64) Schedule {
	if d.round.Phase != PhaseRunning {
		return ScheduleNone
	}
	if !d.round.hasLastTime {
		d.round.lastTime = timestampMs
		d.round.hasLastTime = true
		return ScheduleFrame
	}

	delta := math.Max(0, timestampMs-d.round.lastTime)
	if d.Step(delta) {
		return ScheduleRearm
	}
	d.round.lastTime = timestampMs
	return ScheduleFrame
}

// Step simulates delta ms of a running round in fixed order: ground, player,
// obstacles, speed scale, score and theme, then collision. It reports
// whether the round was lost.
func (d *Driver) Step(delta float64) bool {
	if d.round.Phase != PhaseRunning {
		return false
	}
	scale := d.round.SpeedScale

	d.ground.Advance(delta, scale)
	d.player.Advance(delta, scale)
	d.obstacles.Advance(delta, scale)
	d.progression.AdvanceSpeed(&d.round, delta)

	ev := d.progression.AdvanceScore(&d.round, delta)
	d.view.SetScore(fmt.Sprintf("%d", d.ScoreInt()))
	if ev.Checkpoint {
		d.cues.PlayCheckpointCue()
	}
	if ev.ThemeToggled {
		d.view.SetTheme(d.round.Dark)
	}

	if HasCollision(d.player.Rect(), d.obstacles.Rects()) &&
		d.detector.Collides(d.player.Body(), d.obstacles.Bodies()) {
		d.lose()
		return true
	}
	return false
}

// lose freezes the round, plays the lose cue and records the high score.
func (d *Driver) lose() {
	d.round.Phase = PhaseLost
	d.player.Lose()
	d.cues.PlayLoseCue()

	if score := d.ScoreInt(); score > d.refreshHighScore() {
		d.highScore = score
		d.highScores.SaveHighScore(score)
		d.publishHighScore()
	}
}

// Rearm returns a lost round to idle: the start screen comes back and the
// theme resets to light.
func (d *Driver) Rearm() {
	if d.round.Phase != PhaseLost {
		return
	}
	d.round.Phase = PhaseIdle
	d.round.Dark = false
	d.view.SetTheme(false)
	d.view.ShowStartScreen()
}

// Resize fits the world into a screen of the given size and reports the
// resulting scale to the view.
func (d *Driver) Resize(screenW, screenH int) float64 {
	scale := core.WorldToScreenScale(screenW, screenH, d.cfg.World.Width, d.cfg.World.Height)
	d.view.SetScale(scale)
	return scale
}

func (d *Driver) publishHighScore() {
	if d.highScore > 0 {
		d.view.SetHighScoreText(fmt.Sprintf("HI:%d", d.highScore))
	}
}

// RestartDelay is how long the host waits after ScheduleRearm.
func (d *Driver) RestartDelay() time.Duration {
	return time.Duration(d.cfg.Round.RestartDelayMS) * time.Millisecond
}

// Phase returns the current lifecycle phase.
func (d *Driver) Phase() Phase { return d.round.Phase }

// Score returns the exact current score.
func (d *Driver) Score() float64 { return d.round.Score }

// ScoreInt returns the floored score shown to the player.
func (d *Driver) ScoreInt() int { return int(math.Floor(d.round.Score)) }

// SpeedScale returns the current speed multiplier.
func (d *Driver) SpeedScale() float64 { return d.round.SpeedScale }

// HighScore returns the best floored score seen so far.
func (d *Driver) HighScore() int { return d.highScore }

// Dark reports whether the dark theme is active.
func (d *Driver) Dark() bool { return d.round.Dark }

// Player returns the current player entity.
func (d *Driver) Player() *Player { return d.player }

// Obstacles returns the current obstacle set.
func (d *Driver) Obstacles() *ObstacleSet { return d.obstacles }

// Ground returns the current scrolling ground.
func (d *Driver) Ground() *Ground { return d.ground }

// Config returns the configuration the driver was built with.
func (d *Driver) Config() config.DinoConfig { return d.cfg }
