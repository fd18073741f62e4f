package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDinoConfig()) {
		t.Errorf("embedded YAML and DefaultDinoConfig differ:\n yaml: %+v\n code: %+v", cfg, DefaultDinoConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("progression:\n  score_rate: 0.02\nobstacles:\n  enabled: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Progression.ScoreRate != 0.02 {
		t.Errorf("ScoreRate = %v, expected 0.02", cfg.Progression.ScoreRate)
	}
	if cfg.Obstacles.Enabled {
		t.Error("Obstacles should be disabled by the custom file")
	}
	// Untouched keys keep their defaults.
	if cfg.World.Width != 100 {
		t.Errorf("World.Width = %v, expected default 100", cfg.World.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("ground:\n  segment_width: 10\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("Load() should reject a segment narrower than the world")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DinoConfig)
	}{
		{"single ground segment", func(c *DinoConfig) { c.Ground.Segments = 1 }},
		{"inverted spawn interval", func(c *DinoConfig) { c.Obstacles.IntervalMax = c.Obstacles.IntervalMin - 1 }},
		{"speed scale below one", func(c *DinoConfig) { c.Progression.InitialSpeedScale = 0.5 }},
		{"empty catalog", func(c *DinoConfig) { c.Obstacles.Catalog = nil }},
		{"zero checkpoint interval", func(c *DinoConfig) { c.Progression.CheckpointInterval = 0 }},
		{"zero gravity", func(c *DinoConfig) { c.Player.Gravity = 0 }},
	}

	if err := DefaultDinoConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDinoConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultDinoConfig()

	tests := []struct {
		preset      DifficultyPreset
		wantInitial float64
		wantRate    float64
	}{
		{DifficultyEasy, 1.0, base.Progression.SpeedScaleRate * 0.5},
		{DifficultyNormal, 1.0, base.Progression.SpeedScaleRate},
		{DifficultyHard, 1.5, base.Progression.SpeedScaleRate * 2},
		{DifficultyFixed, 1.0, 0},
		{"", 1.0, base.Progression.SpeedScaleRate},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultDinoConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Progression.InitialSpeedScale != tc.wantInitial {
				t.Errorf("InitialSpeedScale = %v, expected %v", cfg.Progression.InitialSpeedScale, tc.wantInitial)
			}
			if cfg.Progression.SpeedScaleRate != tc.wantRate {
				t.Errorf("SpeedScaleRate = %v, expected %v", cfg.Progression.SpeedScaleRate, tc.wantRate)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if _, err := ParsePreset("hard"); err != nil {
		t.Errorf("ParsePreset(hard) failed: %v", err)
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}
