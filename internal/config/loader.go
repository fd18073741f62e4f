package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative config location.
const LocalConfigPath = "configs/dino.yaml"

// Load loads the runner configuration.
// Search order: customPath -> ~/.dino/configs/dino.yaml -> ./configs/dino.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other locations are best effort.
func Load(customPath string) (DinoConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DinoConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DinoConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(LocalConfigPath); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultDinoYAML)
	if err != nil {
		return DefaultDinoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the hard-coded defaults, so partial files
// only override the keys they mention, then validates the result.
func parse(data []byte) (DinoConfig, error) {
	cfg := DefaultDinoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DinoConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DinoConfig{}, err
	}
	return cfg, nil
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dino", "configs", "dino.yaml")
}

// Marshal renders a config as YAML, for `dino config`.
func Marshal(cfg DinoConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}
