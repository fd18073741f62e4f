package config

// presetTuning holds how a preset bends speed progression.
type presetTuning struct {
	initialSpeedScale float64
	rateMultiplier    float64
}

var presets = map[DifficultyPreset]presetTuning{
	DifficultyEasy:   {initialSpeedScale: 1.0, rateMultiplier: 0.5},
	DifficultyNormal: {initialSpeedScale: 1.0, rateMultiplier: 1.0},
	DifficultyHard:   {initialSpeedScale: 1.5, rateMultiplier: 2.0},
	DifficultyFixed:  {initialSpeedScale: 1.0, rateMultiplier: 0},
}

// ApplyPreset modifies the config based on a difficulty preset.
// Speed scale stays >= 1 and non-decreasing under every preset; "fixed"
// simply stops it from growing.
func ApplyPreset(cfg *DinoConfig, preset DifficultyPreset) {
	tuning, ok := presets[preset]
	if !ok {
		return
	}
	if tuning.initialSpeedScale > cfg.Progression.InitialSpeedScale {
		cfg.Progression.InitialSpeedScale = tuning.initialSpeedScale
	}
	cfg.Progression.SpeedScaleRate *= tuning.rateMultiplier
}
