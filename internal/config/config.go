// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// WaveRiderConfig contains all configuration for the Wave Rider game.
type WaveRiderConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Wave       WaveConfig       `yaml:"wave"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Shells     ShellConfig      `yaml:"shells"`
	Whirlpools WhirlpoolConfig  `yaml:"whirlpools"`
	Player     PlayerConfig     `yaml:"player"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ViewportConfig is the logical world size the simulation runs in.
// Frontends scale it onto their own surface (terminal cells or pixels).
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// WaveConfig defines the procedural ocean surface.
type WaveConfig struct {
	BaselineRatio float64             `yaml:"baseline_ratio"` // Waterline as a fraction of viewport height
	SlopeEpsilon  float64             `yaml:"slope_epsilon"`  // Finite-difference step for slope
	Layers        []WaveLayerConfig   `yaml:"layers"`
	RenderLayers  []RenderLayerConfig `yaml:"render_layers"`
	SampleStep    float64             `yaml:"sample_step"` // Horizontal spacing of rendered samples
}

// WaveLayerConfig is one sinusoid of the surface.
type WaveLayerConfig struct {
	Amplitude float64 `yaml:"amplitude"` // World units
	Frequency float64 `yaml:"frequency"` // Cycles per viewport width
	Speed     float64 `yaml:"speed"`     // Radians per second
	Phase     float64 `yaml:"phase"`     // Radians
}

// RenderLayerConfig shifts the surface to draw a background swell.
type RenderLayerConfig struct {
	Offset  float64 `yaml:"offset"`   // Vertical shift in world units (positive = lower)
	TimeLag float64 `yaml:"time_lag"` // Seconds the layer trails the surface
}

// SpawnerConfig defines timed, probabilistic entity creation.
type SpawnerConfig struct {
	ShellInterval     float64 `yaml:"shell_interval"`
	ShellChance       float64 `yaml:"shell_chance"`
	ShellMargin       float64 `yaml:"shell_margin"`
	ShellLiftMin      float64 `yaml:"shell_lift_min"`
	ShellLiftMax      float64 `yaml:"shell_lift_max"`
	WhirlpoolInterval float64 `yaml:"whirlpool_interval"`
	WhirlpoolChance   float64 `yaml:"whirlpool_chance"`
	WhirlpoolMargin   float64 `yaml:"whirlpool_margin"`
	WhirlpoolDepthMin float64 `yaml:"whirlpool_depth_min"`
	WhirlpoolDepthMax float64 `yaml:"whirlpool_depth_max"`
	ShellJitter       float64 `yaml:"shell_jitter"`     // Max backwards offset of the shell's wave sample
	WhirlpoolJitter   float64 `yaml:"whirlpool_jitter"` // Same for whirlpools
}

// ShellConfig defines collectible behavior.
type ShellConfig struct {
	Speed         float64 `yaml:"speed"`
	CollectRadius float64 `yaml:"collect_radius"`
	Points        int     `yaml:"points"`
	RemoveX       float64 `yaml:"remove_x"`
}

// WhirlpoolConfig defines hazard behavior.
type WhirlpoolConfig struct {
	Speed        float64 `yaml:"speed"`
	HitRadius    float64 `yaml:"hit_radius"`
	InitialScale float64 `yaml:"initial_scale"`
	GrowthRate   float64 `yaml:"growth_rate"`
	MaxScale     float64 `yaml:"max_scale"` // 0 = uncapped
	Knockback    float64 `yaml:"knockback"`
	HitExpiry    float64 `yaml:"hit_expiry"` // Seconds a hit whirlpool lingers
	RemoveX      float64 `yaml:"remove_x"`
}

// PlayerConfig defines how the rider follows the surface.
type PlayerConfig struct {
	StartRatio    float64 `yaml:"start_ratio"` // Initial X as a fraction of viewport width
	Speed         float64 `yaml:"speed"`
	Margin        float64 `yaml:"margin"`
	TiltThreshold float64 `yaml:"tilt_threshold"`
	CrestOffset   float64 `yaml:"crest_offset"`
	FollowRate    float64 `yaml:"follow_rate"`
	TiltCoeff     float64 `yaml:"tilt_coefficient"`
	MaxTurnRate   float64 `yaml:"max_turn_rate"`
	JumpLift      float64 `yaml:"jump_lift"`
}

// GameplayConfig defines scoring, lives and the clock.
type GameplayConfig struct {
	Lives     int     `yaml:"lives"`
	TimeLimit float64 `yaml:"time_limit"` // Seconds in timed mode
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to game speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
