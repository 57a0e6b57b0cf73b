package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBounce loads the bounce toy configuration.
// Search order: customPath -> ~/.arcade/configs/bounce.yaml -> ./configs/bounce.yaml -> embedded default
func LoadBounce(customPath string) (BounceConfig, error) {
	cfg, err := load("bounce.yaml", customPath, defaultBounceYAML, DefaultBounceConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: bounce: %w", err)
	}
	return cfg, nil
}

// LoadDefense loads the tower-defense configuration.
// Search order: customPath -> ~/.arcade/configs/defense.yaml -> ./configs/defense.yaml -> embedded default
func LoadDefense(customPath string) (DefenseConfig, error) {
	cfg, err := load("defense.yaml", customPath, defaultDefenseYAML, DefaultDefenseConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: defense: %w", err)
	}
	return cfg, nil
}

// load decodes the first readable config in the search order on top of
// the hardcoded defaults, so a partial file only overrides what it names.
// Only an explicit customPath produces read or parse errors; broken files
// in the implicit locations are skipped.
func load[T any](filename, customPath string, embedded []byte, fallback func() T) (T, error) {
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBouncePreset rewrites the physics (and for some presets the shape)
// of cfg. An empty preset leaves cfg unchanged.
func ApplyBouncePreset(cfg *BounceConfig, preset BouncePreset) error {
	switch preset {
	case "":
	case PresetEarth:
		cfg.Physics.Gravity = 0.05
		cfg.Physics.Restitution = 0.8
	case PresetMoon:
		cfg.Physics.Gravity = 0.008
		cfg.Physics.Restitution = 0.8
	case PresetZeroG:
		cfg.Physics.Gravity = 0
		cfg.Physics.Restitution = 1
	case PresetSuperball:
		cfg.Physics.Gravity = 0.05
		cfg.Physics.Restitution = 0.97
		cfg.Population.Shape = "circle"
	case PresetMixed:
		cfg.Population.Shape = "mixed"
		cfg.Population.Count = max(cfg.Population.Count, 24)
	default:
		return fmt.Errorf("%w: bounce %q", ErrUnknownPreset, preset)
	}
	return nil
}

// ApplyDefensePreset modifies the config based on a difficulty preset.
func ApplyDefensePreset(cfg *DefenseConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Economy.StartGold = 200
		cfg.Enemies.MaxLeaks = 20
	case DifficultyHard:
		cfg.Economy.StartGold = 60
		cfg.Enemies.MaxLeaks = 5
	}
}
