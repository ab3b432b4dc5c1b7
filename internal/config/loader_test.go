package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseWaveRider(GetDefaultYAML("waverider"))
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultWaveRiderConfig()) {
		t.Errorf("embedded YAML and DefaultWaveRiderConfig() disagree:\nyaml: %+v\ncode: %+v", cfg, DefaultWaveRiderConfig())
	}
}

func TestLoadCustomPartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("gameplay:\n  lives: 7\nshells:\n  points: 20\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWaveRider(path)
	if err != nil {
		t.Fatalf("LoadWaveRider() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Shells.Points != 20 {
		t.Errorf("points = %d, expected 20", cfg.Shells.Points)
	}
	// Untouched keys keep their defaults
	if cfg.Whirlpools.HitRadius != 48 {
		t.Errorf("hit radius = %f, expected default 48", cfg.Whirlpools.HitRadius)
	}
	if len(cfg.Wave.Layers) != 3 {
		t.Errorf("expected default wave layers, got %d", len(cfg.Wave.Layers))
	}
}

func TestLoadCustomMissingFile(t *testing.T) {
	_, err := LoadWaveRider(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadRejectsInvalidViewport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("viewport:\n  width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadWaveRider(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestApplyWaveRiderPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		lives   int
	}{
		{DifficultyEasy, true, 0.0, 5},
		{DifficultyNormal, true, 0.3, 3},
		{DifficultyHard, true, 0.7, 2},
		{DifficultyFixed, false, 0.0, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultWaveRiderConfig()
			ApplyWaveRiderPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("initial level = %f, expected %f", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}
