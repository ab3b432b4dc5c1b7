package sim

import (
	"math/rand"

	"github.com/vovakirdan/wave-rider/internal/config"
)

// Spawner creates shells and whirlpools beyond the right edge on fixed
// intervals, each interval rolling once against a spawn chance.
type Spawner struct {
	cfg config.SpawnerConfig
	rng *rand.Rand

	sinceShell     float64
	sinceWhirlpool float64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.SpawnerConfig, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Reset zeroes both timers.
func (s *Spawner) Reset() {
	s.sinceShell = 0
	s.sinceWhirlpool = 0
}

// Update advances the timers by dt and adds any new entities to reg.
// Entities are anchored to the surface at session time t.
func (s *Spawner) Update(dt, t float64, field WaveField, reg *Registry) {
	s.sinceShell += dt
	s.sinceWhirlpool += dt

	if s.sinceShell > s.cfg.ShellInterval {
		s.sinceShell = 0
		if s.rng.Float64() < s.cfg.ShellChance {
			x := field.Width() + s.cfg.ShellMargin
			y := s.surface(field, x, t, s.cfg.ShellJitter) - s.uniform(s.cfg.ShellLiftMin, s.cfg.ShellLiftMax)
			reg.AddShell(x, y)
		}
	}

	if s.sinceWhirlpool > s.cfg.WhirlpoolInterval {
		s.sinceWhirlpool = 0
		if s.rng.Float64() < s.cfg.WhirlpoolChance {
			x := field.Width() + s.cfg.WhirlpoolMargin
			y := s.surface(field, x, t, s.cfg.WhirlpoolJitter) + s.uniform(s.cfg.WhirlpoolDepthMin, s.cfg.WhirlpoolDepthMax)
			reg.AddWhirlpool(x, y)
		}
	}
}

// surface samples the wave up to jitter behind x.
func (s *Spawner) surface(field WaveField, x, t, jitter float64) float64 {
	return field.Height(x-s.uniform(0, jitter), t)
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}
