// Package shapes computes the polygons and labels the window frontend
// draws for a frame. It has no graphics dependency so it can be tested
// headlessly.
package shapes

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/vovakirdan/wave-rider/internal/core"
	"github.com/vovakirdan/wave-rider/internal/games/waverider/sim"
)

// Board dimensions in world units.
const (
	BoardLength = 56
	BoardHeight = 8
	RiderRadius = 9
	ShellRadius = 10
	PoolRadius  = 22
)

// TiltDeadzone is the stick travel ignored around center.
const TiltDeadzone = 0.2

// WaterBody closes a wave polyline into a polygon down to the bottom of
// the viewport. It returns nil for fewer than two points.
func WaterBody(line []core.Vec2, bottom float64) []core.Vec2 {
	if len(line) < 2 {
		return nil
	}
	poly := make([]core.Vec2, 0, len(line)+2)
	poly = append(poly, line...)
	poly = append(poly,
		core.V(line[len(line)-1].X, bottom),
		core.V(line[0].X, bottom),
	)
	return poly
}

// Board returns the corners of the rider's board, centered under the
// rider and rotated by its rotation.
func Board(p sim.PlayerView) [4]core.Vec2 {
	hw, hh := BoardLength/2.0, BoardHeight/2.0
	local := [4]core.Vec2{
		core.V(-hw, -hh), core.V(hw, -hh), core.V(hw, hh), core.V(-hw, hh),
	}
	sin, cos := math.Sincos(p.Rotation)
	var out [4]core.Vec2
	for i, c := range local {
		out[i] = core.V(p.X+c.X*cos-c.Y*sin, p.Y+c.X*sin+c.Y*cos)
	}
	return out
}

// Head returns the center of the rider's body, standing on the board.
func Head(p sim.PlayerView) core.Vec2 {
	lift := BoardHeight/2.0 + RiderRadius
	return core.V(p.X+lift*math.Sin(p.Rotation), p.Y-lift*math.Cos(p.Rotation))
}

// PoolRings returns the radii of a whirlpool's concentric rings.
func PoolRings(w sim.WhirlpoolView) []float64 {
	return []float64{PoolRadius * w.Scale, PoolRadius * w.Scale * 0.6, PoolRadius * w.Scale * 0.25}
}

// Tilt converts a raw stick axis value into a steering tilt in [-1, 1],
// rescaled so the deadzone edge maps to zero.
func Tilt(axis float64) float64 {
	if math.IsNaN(axis) || math.Abs(axis) <= TiltDeadzone {
		return 0
	}
	v := (math.Abs(axis) - TiltDeadzone) / (1 - TiltDeadzone)
	return math.Copysign(core.ClampF(v, 0, 1), axis)
}

// LayerColor shades the wave layers from deep (back) to bright (surface).
func LayerColor(layer, layers int) color.RGBA {
	if layers <= 1 {
		return color.RGBA{R: 24, G: 110, B: 170, A: 255}
	}
	// Layer 0 is the surface; higher indices are further back.
	depth := float64(layer) / float64(layers-1)
	return color.RGBA{
		R: uint8(24 - 14*depth),
		G: uint8(110 - 60*depth),
		B: uint8(170 - 60*depth),
		A: 255,
	}
}

// HUDLine formats the status line drawn in the window's top-left corner.
func HUDLine(h sim.HUD) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score: %d   Lives: %d", h.Score, h.Lives)
	if !math.IsInf(h.TimeLeft, 1) {
		fmt.Fprintf(&b, "   Time: %d", int(math.Floor(h.TimeLeft)))
	}
	return b.String()
}

// EndBanner returns the overlay text for a finished run, or nil while playing.
func EndBanner(h sim.HUD) []string {
	if h.Phase != sim.PhaseEnded {
		return nil
	}
	title := "GAME OVER"
	if h.Reason == sim.ReasonTimeUp {
		title = "TIME UP"
	}
	return []string{
		title,
		fmt.Sprintf("Final score: %d", h.FinalScore),
		"R: Restart   Esc: Quit",
	}
}
