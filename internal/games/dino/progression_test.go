package dino

import (
	"testing"

	"github.com/vovakirdan/tui-dino/internal/config"
)

func TestCheckpointFiresOncePerCrossing(t *testing.T) {
	p := NewProgression(config.DefaultDinoConfig().Progression)
	r := Round{Phase: PhaseRunning, Score: 99.5, SpeedScale: 1}

	// 99.5 -> 100.5 in a single tick.
	if ev := p.AdvanceScore(&r, 100); !ev.Checkpoint {
		t.Fatalf("crossing 100 should fire the checkpoint, score %v", r.Score)
	}

	// Two consecutive ticks that stay on floor(score) = 150.
	r.Score = 150.2
	for i := 0; i < 2; i++ {
		if ev := p.AdvanceScore(&r, 10); ev.Checkpoint {
			t.Errorf("tick %d at score %v should not fire", i, r.Score)
		}
	}
}

func TestCheckpointCountOverLongRun(t *testing.T) {
	p := NewProgression(config.DefaultDinoConfig().Progression)
	r := Round{Phase: PhaseRunning, SpeedScale: 1}

	fired := 0
	// 16ms frames up to score ~ 520.
	for r.Score < 520 {
		if p.AdvanceScore(&r, 16).Checkpoint {
			fired++
		}
	}
	if fired != 5 {
		t.Errorf("checkpoint fired %d times up to 520, expected 5", fired)
	}
}

func TestThemeTogglesAtInterval(t *testing.T) {
	p := NewProgression(config.DefaultDinoConfig().Progression)
	r := Round{Phase: PhaseRunning, SpeedScale: 1}

	toggles := 0
	for r.Score < 650 {
		ev := p.AdvanceScore(&r, 10)
		if ev.ThemeToggled {
			toggles++
		}
		floor := int(r.Score)
		switch {
		case floor < 200 && r.Dark:
			t.Fatalf("theme dark before 200 at score %v", r.Score)
		case floor >= 200 && floor < 400 && !r.Dark:
			t.Fatalf("theme should be dark between 200 and 400, score %v", r.Score)
		case floor >= 400 && floor < 600 && r.Dark:
			t.Fatalf("theme should be light between 400 and 600, score %v", r.Score)
		}
	}
	if toggles != 3 {
		t.Errorf("theme toggled %d times up to 650, expected 3", toggles)
	}
}

func TestScoreAndSpeedMonotonic(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	p := NewProgression(cfg.Progression)
	r := Round{Phase: PhaseRunning, SpeedScale: cfg.Progression.InitialSpeedScale}

	for _, delta := range []float64{0, 16, 0, 33, 1000, 0.5} {
		prevScore, prevSpeed := r.Score, r.SpeedScale
		p.AdvanceSpeed(&r, delta)
		p.AdvanceScore(&r, delta)
		if r.Score < prevScore {
			t.Errorf("score decreased from %v to %v", prevScore, r.Score)
		}
		if r.SpeedScale < prevSpeed {
			t.Errorf("speed scale decreased from %v to %v", prevSpeed, r.SpeedScale)
		}
	}
	if r.SpeedScale < 1 {
		t.Errorf("speed scale %v below 1", r.SpeedScale)
	}
}
