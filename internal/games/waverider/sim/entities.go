package sim

import (
	"math"

	"github.com/vovakirdan/wave-rider/internal/config"
	"github.com/vovakirdan/wave-rider/internal/core"
)

// Shell is a collectible floating above the surface.
type Shell struct {
	X, Y      float64
	Collected bool
}

// Pos returns the shell position.
func (s *Shell) Pos() core.Vec2 {
	return core.V(s.X, s.Y)
}

// Whirlpool is a hazard below the surface that grows while it drifts.
type Whirlpool struct {
	X, Y      float64
	HitRadius float64
	Scale     float64
	Hit       bool
	SinceHit  float64 // Seconds since Hit was set
}

// Pos returns the whirlpool position.
func (w *Whirlpool) Pos() core.Vec2 {
	return core.V(w.X, w.Y)
}

// Contact is the outcome of one registry update.
type Contact struct {
	Collected int // Shells collected this tick
	Hits      int // Whirlpools that struck the rider this tick
}

// Registry owns the live shells and whirlpools: it moves them, removes
// the ones that left the screen or expired and resolves contact with the
// rider. The Collected and Hit flags make every entity count at most once.
type Registry struct {
	shellCfg     config.ShellConfig
	whirlpoolCfg config.WhirlpoolConfig

	shells     []*Shell
	whirlpools []*Whirlpool
}

// NewRegistry creates an empty registry.
func NewRegistry(shells config.ShellConfig, whirlpools config.WhirlpoolConfig) *Registry {
	return &Registry{
		shellCfg:     shells,
		whirlpoolCfg: whirlpools,
		shells:       make([]*Shell, 0, 16),
		whirlpools:   make([]*Whirlpool, 0, 4),
	}
}

// Reset drops every entity.
func (r *Registry) Reset() {
	r.shells = r.shells[:0]
	r.whirlpools = r.whirlpools[:0]
}

// AddShell places a new shell.
func (r *Registry) AddShell(x, y float64) *Shell {
	s := &Shell{X: x, Y: y}
	r.shells = append(r.shells, s)
	return s
}

// AddWhirlpool places a new whirlpool with the configured radius and scale.
func (r *Registry) AddWhirlpool(x, y float64) *Whirlpool {
	w := &Whirlpool{
		X:         x,
		Y:         y,
		HitRadius: r.whirlpoolCfg.HitRadius,
		Scale:     r.whirlpoolCfg.InitialScale,
	}
	r.whirlpools = append(r.whirlpools, w)
	return w
}

// Shells returns the live shells. The slice must not be modified.
func (r *Registry) Shells() []*Shell {
	return r.shells
}

// Whirlpools returns the live whirlpools. The slice must not be modified.
func (r *Registry) Whirlpools() []*Whirlpool {
	return r.whirlpools
}

// Update advances every entity by dt at the given game speed and resolves
// contact against the rider position. Entity Y is clamped to [0, viewH].
// Collected shells are removed before Update returns.
func (r *Registry) Update(dt, gameSpeed float64, rider core.Vec2, viewH float64) Contact {
	var c Contact

	shellStep := r.shellCfg.Speed * dt * gameSpeed
	live := r.shells[:0]
	for _, s := range r.shells {
		s.X -= shellStep
		s.Y = core.ClampF(s.Y, 0, viewH)
		if s.X < r.shellCfg.RemoveX {
			continue
		}
		if !s.Collected && core.Dist(s.Pos(), rider) < r.shellCfg.CollectRadius {
			s.Collected = true
			c.Collected++
		}
		if s.Collected {
			continue
		}
		live = append(live, s)
	}
	clear(r.shells[len(live):])
	r.shells = live

	poolStep := r.whirlpoolCfg.Speed * dt * gameSpeed
	pools := r.whirlpools[:0]
	for _, w := range r.whirlpools {
		w.X -= poolStep
		w.Y = core.ClampF(w.Y, 0, viewH)
		w.Scale += r.whirlpoolCfg.GrowthRate * dt
		if limit := r.whirlpoolCfg.MaxScale; limit > 0 {
			w.Scale = math.Min(limit, w.Scale)
		}
		if w.Hit {
			w.SinceHit += dt
		}
		if w.X < r.whirlpoolCfg.RemoveX {
			continue
		}
		if w.Hit && w.SinceHit >= r.whirlpoolCfg.HitExpiry {
			continue
		}
		if !w.Hit && core.Dist(w.Pos(), rider) < w.HitRadius {
			w.Hit = true
			c.Hits++
		}
		pools = append(pools, w)
	}
	clear(r.whirlpools[len(pools):])
	r.whirlpools = pools

	return c
}
