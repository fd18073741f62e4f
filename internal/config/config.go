// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

import (
	"errors"
	"fmt"
)

// DinoConfig contains all configuration for the runner.
type DinoConfig struct {
	World       WorldConfig       `yaml:"world"`
	Ground      GroundConfig      `yaml:"ground"`
	Player      PlayerConfig      `yaml:"player"`
	Obstacles   ObstacleConfig    `yaml:"obstacles"`
	Progression ProgressionConfig `yaml:"progression"`
	Collision   CollisionConfig   `yaml:"collision"`
	Round       RoundConfig       `yaml:"round"`
}

// WorldConfig defines the logical coordinate space.
// Screen size never changes these values, only the render scale.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // y of the surface the player stands on
}

// GroundConfig defines the scrolling ground strip.
type GroundConfig struct {
	Speed        float64 `yaml:"speed"`         // world units per ms at speed scale 1
	SegmentWidth float64 `yaml:"segment_width"` // width of one tiled segment
	Segments     int     `yaml:"segments"`      // number of tiled segments
}

// PlayerConfig defines the player's size and jump physics.
type PlayerConfig struct {
	X         float64 `yaml:"x"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	JumpSpeed float64 `yaml:"jump_speed"` // initial upward velocity, units per ms
	Gravity   float64 `yaml:"gravity"`    // units per ms^2
	FrameTime float64 `yaml:"frame_time"` // ms per run animation frame at speed scale 1
}

// ObstacleConfig defines obstacle spawning and the variant catalog.
type ObstacleConfig struct {
	Enabled     bool            `yaml:"enabled"`
	Speed       float64         `yaml:"speed"`
	IntervalMin float64         `yaml:"interval_min"` // ms
	IntervalMax float64         `yaml:"interval_max"` // ms
	Catalog     []VariantConfig `yaml:"catalog"`
}

// VariantConfig describes one obstacle variant.
type VariantConfig struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ProgressionConfig defines score and speed growth.
type ProgressionConfig struct {
	InitialSpeedScale  float64 `yaml:"initial_speed_scale"`
	SpeedScaleRate     float64 `yaml:"speed_scale_rate"` // per ms
	ScoreRate          float64 `yaml:"score_rate"`       // points per ms
	CheckpointInterval int     `yaml:"checkpoint_interval"`
	ThemeInterval      int     `yaml:"theme_interval"`
}

// CollisionConfig controls the opacity-mask refinement.
type CollisionConfig struct {
	PixelPerfect bool    `yaml:"pixel_perfect"`
	Resolution   float64 `yaml:"resolution"` // mask samples per world unit
}

// RoundConfig controls round lifecycle timing.
type RoundConfig struct {
	RestartDelayMS int `yaml:"restart_delay_ms"`
}

// Validate reports the first inconsistency that would break the simulation.
func (c DinoConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.World.GroundY <= 0 || c.World.GroundY > c.World.Height {
		errs = append(errs, fmt.Errorf("ground_y %v outside world height %v", c.World.GroundY, c.World.Height))
	}
	if c.Ground.Segments < 2 {
		errs = append(errs, fmt.Errorf("ground needs at least 2 segments, got %d", c.Ground.Segments))
	}
	if c.Ground.SegmentWidth < c.World.Width {
		errs = append(errs, fmt.Errorf("ground segment width %v narrower than world %v", c.Ground.SegmentWidth, c.World.Width))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.Gravity <= 0 {
		errs = append(errs, errors.New("player gravity must be positive"))
	}
	if c.Obstacles.Enabled && len(c.Obstacles.Catalog) == 0 {
		errs = append(errs, errors.New("obstacle catalog is empty"))
	}
	if c.Obstacles.IntervalMin <= 0 || c.Obstacles.IntervalMax < c.Obstacles.IntervalMin {
		errs = append(errs, fmt.Errorf("invalid spawn interval [%v, %v]", c.Obstacles.IntervalMin, c.Obstacles.IntervalMax))
	}
	for _, v := range c.Obstacles.Catalog {
		if v.Width <= 0 || v.Height <= 0 {
			errs = append(errs, fmt.Errorf("obstacle %q has non-positive size", v.Name))
		}
	}
	if c.Progression.InitialSpeedScale < 1 {
		errs = append(errs, fmt.Errorf("initial speed scale %v below 1", c.Progression.InitialSpeedScale))
	}
	if c.Progression.SpeedScaleRate < 0 || c.Progression.ScoreRate < 0 {
		errs = append(errs, errors.New("progression rates must not be negative"))
	}
	if c.Progression.CheckpointInterval <= 0 || c.Progression.ThemeInterval <= 0 {
		errs = append(errs, errors.New("progression intervals must be positive"))
	}
	if c.Collision.PixelPerfect && c.Collision.Resolution <= 0 {
		errs = append(errs, errors.New("collision resolution must be positive"))
	}
	if c.Round.RestartDelayMS < 0 {
		errs = append(errs, errors.New("restart delay must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// The empty string means "keep the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
