package dino

import (
	"math/rand"

	"github.com/vovakirdan/tui-dino/internal/config"
)

// quietConfig returns the default config with obstacle spawning disabled.
func quietConfig() config.DinoConfig {
	cfg := config.DefaultDinoConfig()
	cfg.Obstacles.Enabled = false
	return cfg
}

// recordingView captures every call the driver makes on its view.
type recordingView struct {
	scale         float64
	score         string
	highScoreText string
	startVisible  bool
	dark          bool
	themeCalls    int
}

func (v *recordingView) SetScale(s float64) { v.scale = s }
func (v *recordingView) SetScore(text string) { v.score = text }
func (v *recordingView) SetHighScoreText(t string) { v.highScoreText = t }
func (v *recordingView) ShowStartScreen() { v.startVisible = true }
func (v *recordingView) HideStartScreen() { v.startVisible = false }
func (v *recordingView) SetTheme(dark bool) { v.dark = dark; v.themeCalls++ }

type countingCues struct {
	checkpoints int
	loses       int
}

func (c *countingCues) PlayCheckpointCue() { c.checkpoints++ }
func (c *countingCues) PlayLoseCue() { c.loses++ }

type testDriver struct {
	*Driver
	view   *recordingView
	cues   *countingCues
	scores *memoryScores
}

func newTestDriver(cfg config.DinoConfig, seed int64) testDriver {
	td := testDriver{
		view:   &recordingView{},
		cues:   &countingCues{},
		scores: &memoryScores{},
	}
	td.Driver = NewDriver(cfg, Deps{
		View:       td.view,
		Cues:       td.cues,
		HighScores: td.scores,
		Rand:       rand.New(rand.NewSource(seed)),
	})
	return td
}

// runFor ticks a running driver from its last timestamp in stepMs frames
// until totalMs have elapsed or the round ends.
func (td testDriver) runFor(start, totalMs, stepMs float64) (float64, Schedule) {
	ts := start
	sched := ScheduleFrame
	for ts < start+totalMs && sched == ScheduleFrame {
		ts += stepMs
		sched = td.Tick(ts)
	}
	return ts, sched
}

// placeBlock puts a solid obstacle under the player.
func (td testDriver) placeBlock() {
	px := td.cfg.Player.X
	td.obstacles.obstacles = append(td.obstacles.obstacles, Obstacle{
		X:       px,
		Variant: &Variant{Name: "block", Width: 4, Height: 6},
	})
}
