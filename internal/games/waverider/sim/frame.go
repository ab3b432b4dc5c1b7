package sim

import "github.com/vovakirdan/wave-rider/internal/core"

// TickInput is everything one tick consumes from its driver.
type TickInput struct {
	Elapsed   float64 // Seconds since the previous tick, >= 0
	Input     Controls
	ViewportW float64
	ViewportH float64
}

// PlayerView is the rider as seen by a renderer.
type PlayerView struct {
	X, Y     float64
	Rotation float64
}

// WhirlpoolView is a whirlpool as seen by a renderer.
type WhirlpoolView struct {
	X, Y  float64
	Scale float64
	Hit   bool
}

// HUD is the read-only state shown alongside the scene.
type HUD struct {
	Score      int
	Lives      int
	TimeLeft   float64 // +Inf in endless mode
	Phase      Phase
	Reason     EndReason
	FinalScore int
}

// Frame is the render output of one tick.
type Frame struct {
	Waves      [][]core.Vec2 // One ordered polyline per render layer, surface first
	Player     PlayerView
	Shells     []core.Vec2
	Whirlpools []WhirlpoolView
	Signals    []Signal // Raised during this tick
	HUD        HUD
}
