package sim

import (
	"math"

	"github.com/vovakirdan/wave-rider/internal/config"
	"github.com/vovakirdan/wave-rider/internal/core"
)

// Controls is the per-tick input snapshot for the rider.
type Controls struct {
	Left  bool
	Right bool
	Jump  bool
	Tilt  float64 // Normalized device tilt in [-1, 1]
}

// Rider is the player's board. It steers horizontally from input, follows
// the wave crest vertically with exponential smoothing and eases its
// rotation toward the local surface angle.
type Rider struct {
	cfg config.PlayerConfig

	X        float64
	Y        float64
	Rotation float64 // Radians, positive = clockwise on screen
}

// NewRider places a rider on the crest at t=0.
func NewRider(cfg config.PlayerConfig, field WaveField) *Rider {
	r := &Rider{cfg: cfg}
	r.Place(field)
	return r
}

// Place resets the rider to its start position on the surface.
func (r *Rider) Place(field WaveField) {
	r.X = field.Width() * r.cfg.StartRatio
	r.Y = inside(r.target(field, 0), r.cfg.Margin, field.height)
	r.Rotation = 0
}

// Pos returns the rider position.
func (r *Rider) Pos() core.Vec2 {
	return core.V(r.X, r.Y)
}

// Velocity returns the horizontal velocity requested by the controls.
func (r *Rider) Velocity(in Controls) float64 {
	left := in.Left || in.Tilt < -r.cfg.TiltThreshold
	right := in.Right || in.Tilt > r.cfg.TiltThreshold

	switch {
	case left && !right:
		return -r.cfg.Speed
	case right && !left:
		return r.cfg.Speed
	default:
		return 0
	}
}

// Update advances the rider by dt seconds at session time t.
// It returns true when the jump control lifted the rider this tick.
func (r *Rider) Update(dt, t float64, in Controls, field WaveField, viewH float64) bool {
	r.X += r.Velocity(in) * dt
	r.X = inside(r.X, r.cfg.Margin, field.Width())

	// Follow the crest; alpha is clamped so a long frame lands on the
	// target instead of overshooting it.
	alpha := math.Min(1, r.cfg.FollowRate*dt)
	r.Y += (r.target(field, t) - r.Y) * alpha

	goal := -field.Slope(r.X, t) * r.cfg.TiltCoeff
	r.Rotation = core.Approach(r.Rotation, goal, r.cfg.MaxTurnRate*dt)

	lifted := false
	if in.Jump {
		r.Y -= r.cfg.JumpLift * dt
		lifted = true
	}

	r.Y = inside(r.Y, r.cfg.Margin, viewH)
	return lifted
}

// Knockback shoves the rider left by dx, keeping it on screen.
func (r *Rider) Knockback(dx, width float64) {
	r.X = inside(r.X-dx, r.cfg.Margin, width)
}

// Clamp keeps the rider inside the viewport after a resize.
func (r *Rider) Clamp(width, height float64) {
	r.X = inside(r.X, r.cfg.Margin, width)
	r.Y = inside(r.Y, r.cfg.Margin, height)
}

// inside clamps v to [margin, extent-margin]. The margin shrinks to half
// the extent when the viewport is too small for it.
func inside(v, margin, extent float64) float64 {
	margin = math.Min(margin, extent/2)
	return core.ClampF(v, margin, extent-margin)
}

func (r *Rider) target(field WaveField, t float64) float64 {
	return field.Height(r.X, t) - r.cfg.CrestOffset
}
