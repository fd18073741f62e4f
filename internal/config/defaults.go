package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the hard-coded runner configuration.
// It mirrors defaults/dino.yaml and is used when the embedded file cannot be parsed.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		World: WorldConfig{
			Width:   100,
			Height:  30,
			GroundY: 27,
		},
		Ground: GroundConfig{
			Speed:        0.05,
			SegmentWidth: 300,
			Segments:     2,
		},
		Player: PlayerConfig{
			X:         2,
			Width:     8,
			Height:    8,
			JumpSpeed: 0.12,
			Gravity:   0.0004,
			FrameTime: 100,
		},
		Obstacles: ObstacleConfig{
			Enabled:     true,
			Speed:       0.05,
			IntervalMin: 500,
			IntervalMax: 2000,
			Catalog: []VariantConfig{
				{Name: "small", Width: 4, Height: 6},
				{Name: "large", Width: 5, Height: 8},
				{Name: "pair", Width: 8, Height: 6},
			},
		},
		Progression: ProgressionConfig{
			InitialSpeedScale:  1.0,
			SpeedScaleRate:     0.00001,
			ScoreRate:          0.01,
			CheckpointInterval: 100,
			ThemeInterval:      200,
		},
		Collision: CollisionConfig{
			PixelPerfect: true,
			Resolution:   2,
		},
		Round: RoundConfig{
			RestartDelayMS: 100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDinoYAML
}
