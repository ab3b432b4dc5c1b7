package config

import (
	_ "embed"
)

//go:embed defaults/waverider.yaml
var defaultWaveRiderYAML []byte

// DefaultWaveRiderConfig returns the default Wave Rider configuration.
// It mirrors defaults/waverider.yaml and is used when the embedded file
// cannot be parsed.
func DefaultWaveRiderConfig() WaveRiderConfig {
	return WaveRiderConfig{
		Viewport: ViewportConfig{
			Width:  960,
			Height: 540,
		},
		Wave: WaveConfig{
			BaselineRatio: 0.6,
			SlopeEpsilon:  4.0,
			SampleStep:    12,
			Layers: []WaveLayerConfig{
				{Amplitude: 22, Frequency: 0.9, Speed: 1.1, Phase: 0},
				{Amplitude: 14, Frequency: 2.6, Speed: 0.7, Phase: 0},
				{Amplitude: 6, Frequency: 4.8, Speed: 2.1, Phase: 0},
			},
			RenderLayers: []RenderLayerConfig{
				{Offset: 0, TimeLag: 0},
				{Offset: 26, TimeLag: 0.6},
				{Offset: 52, TimeLag: 1.3},
			},
		},
		Spawner: SpawnerConfig{
			ShellInterval:     1.0,
			ShellChance:       0.8,
			ShellMargin:       60,
			ShellLiftMin:      10,
			ShellLiftMax:      50,
			WhirlpoolInterval: 5.0,
			WhirlpoolChance:   0.35,
			WhirlpoolMargin:   80,
			WhirlpoolDepthMin: 18,
			WhirlpoolDepthMax: 98,
			ShellJitter:       150,
			WhirlpoolJitter:   160,
		},
		Shells: ShellConfig{
			Speed:         80,
			CollectRadius: 36,
			Points:        15,
			RemoveX:       -60,
		},
		Whirlpools: WhirlpoolConfig{
			Speed:        60,
			HitRadius:    48,
			InitialScale: 1.0,
			GrowthRate:   0.03,
			MaxScale:     0,
			Knockback:    60,
			HitExpiry:    0.6,
			RemoveX:      -120,
		},
		Player: PlayerConfig{
			StartRatio:    0.25,
			Speed:         240,
			Margin:        24,
			TiltThreshold: 0.15,
			CrestOffset:   14,
			FollowRate:    6,
			TiltCoeff:     0.12,
			MaxTurnRate:   6.0,
			JumpLift:      150,
		},
		Gameplay: GameplayConfig{
			Lives:     3,
			TimeLimit: 60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 180,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "waverider", "waverider_timed":
		return defaultWaveRiderYAML
	default:
		return nil
	}
}
