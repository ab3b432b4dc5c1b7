package waverider

import (
	"math"

	"github.com/vovakirdan/wave-rider/internal/core"
	"github.com/vovakirdan/wave-rider/internal/games/waverider/sim"
)

// Autopilot steers the rider from the previous frame alone. It chases the
// nearest shell and jumps over whirlpools drifting into range. The
// headless runner uses it.
type Autopilot struct {
	// DangerAhead is how far ahead (world units) a whirlpool triggers a jump.
	DangerAhead float64
	// DangerBehind is how far behind the rider a whirlpool is still watched.
	DangerBehind float64
	// Deadband is the horizontal distance at which the rider stops chasing.
	Deadband float64
}

// NewAutopilot returns an autopilot with working defaults.
func NewAutopilot() *Autopilot {
	return &Autopilot{DangerAhead: 140, DangerBehind: 50, Deadband: 8}
}

// Controls decides the next tick's input.
func (a *Autopilot) Controls(f sim.Frame) sim.Controls {
	p := f.Player
	var c sim.Controls

	for _, w := range f.Whirlpools {
		if w.Hit {
			continue
		}
		dx := w.X - p.X
		if dx > -a.DangerBehind && dx < a.DangerAhead {
			c.Jump = true
			// Outrun it to the left while there is room.
			c.Left = dx > 0 && p.X > 80
			c.Right = !c.Left
			return c
		}
	}

	target, ok := nearestShell(f)
	if !ok {
		return c
	}
	switch dx := target.X - p.X; {
	case dx < -a.Deadband:
		c.Left = true
	case dx > a.Deadband:
		c.Right = true
	}
	if target.Y < p.Y-12 && math.Abs(target.X-p.X) < 60 {
		c.Jump = true
	}
	return c
}

func nearestShell(f sim.Frame) (core.Vec2, bool) {
	best := math.Inf(1)
	var out core.Vec2
	for _, s := range f.Shells {
		if d := math.Abs(s.X - f.Player.X); d < best {
			best = d
			out = s
		}
	}
	return out, !math.IsInf(best, 1)
}
