package config

import (
	"math"
	"testing"
)

func TestDifficultyLevelTime(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
	})

	tests := []struct {
		name     string
		elapsed  float64
		expected float64
	}{
		{"start", 0, 0.2},
		{"halfway", 50, 0.6},
		{"max", 100, 1.0},
		{"past max", 500, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.Level(0, tc.elapsed); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Level(0, %f) = %f, expected %f", tc.elapsed, got, tc.expected)
			}
		})
	}
}

func TestDifficultyLevelScore(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 300},
	})

	if got := d.Level(150, 9999); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level(150, _) = %f, expected 0.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	if d.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if got := d.Level(1000, 1000); got != 0.4 {
		t.Errorf("disabled Level should stay at initial level, got %f", got)
	}
	if got := d.Speed(0, 0); math.Abs(got-1.4) > 1e-9 {
		t.Errorf("Speed() = %f, expected 1.4", got)
	}
}

func TestDifficultySpeedRange(t *testing.T) {
	d := NewDifficultyManager(DefaultWaveRiderConfig().Difficulty)

	if got := d.Speed(0, 0); got != 1.0 {
		t.Errorf("Speed at start = %f, expected 1.0", got)
	}
	if got := d.Speed(0, 1e6); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("Speed at max = %f, expected 1.5", got)
	}
}

func TestDifficultyZeroMaxAt(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 0},
	})
	if got := d.Level(0, 5); got != 1.0 {
		t.Errorf("zero max_at should saturate instead of dividing by zero, got %f", got)
	}
}
