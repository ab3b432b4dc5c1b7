package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration cannot drive a game.
var ErrInvalidConfig = errors.New("invalid config")

// LoadWaveRider loads Wave Rider configuration.
// Search order: customPath -> ~/.waverider/configs/waverider.yaml -> ./configs/waverider.yaml -> embedded default.
// Files are overlaid on the defaults, so a partial file only overrides the keys it names.
func LoadWaveRider(customPath string) (WaveRiderConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return WaveRiderConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseWaveRider(data)
		if err != nil {
			return WaveRiderConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("waverider.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseWaveRider(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/waverider.yaml"); err == nil {
		if cfg, err := ParseWaveRider(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseWaveRider(defaultWaveRiderYAML)
	if err != nil {
		return DefaultWaveRiderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseWaveRider decodes YAML on top of the hardcoded defaults and validates the result.
func ParseWaveRider(data []byte) (WaveRiderConfig, error) {
	cfg := DefaultWaveRiderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WaveRiderConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return WaveRiderConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c WaveRiderConfig) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport must be positive, got %gx%g",
			ErrInvalidConfig, c.Viewport.Width, c.Viewport.Height)
	}
	if len(c.Wave.Layers) == 0 {
		return fmt.Errorf("%w: wave needs at least one layer", ErrInvalidConfig)
	}
	if c.Wave.SlopeEpsilon <= 0 {
		return fmt.Errorf("%w: wave.slope_epsilon must be positive", ErrInvalidConfig)
	}
	if c.Wave.SampleStep <= 0 {
		return fmt.Errorf("%w: wave.sample_step must be positive", ErrInvalidConfig)
	}
	if c.Gameplay.Lives <= 0 {
		return fmt.Errorf("%w: gameplay.lives must be positive", ErrInvalidConfig)
	}
	if c.Gameplay.TimeLimit <= 0 {
		return fmt.Errorf("%w: gameplay.time_limit must be positive", ErrInvalidConfig)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".waverider", "configs", filename)
}

// ApplyWaveRiderPreset modifies the config based on a difficulty preset.
func ApplyWaveRiderPreset(cfg *WaveRiderConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Spawner.WhirlpoolChance = 0.25
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Spawner.WhirlpoolChance = 0.5
	}
}
