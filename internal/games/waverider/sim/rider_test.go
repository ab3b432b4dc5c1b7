package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/wave-rider/internal/config"
)

func newTestRider(t *testing.T) (*Rider, WaveField) {
	t.Helper()
	f := defaultField(t)
	return NewRider(config.DefaultWaveRiderConfig().Player, f), f
}

func TestRiderStartsOnCrest(t *testing.T) {
	r, f := newTestRider(t)

	if r.X != 240 {
		t.Errorf("start X = %v, expected a quarter of 960", r.X)
	}
	if want := f.Height(r.X, 0) - 14; math.Abs(r.Y-want) > 1e-9 {
		t.Errorf("start Y = %v, expected %v", r.Y, want)
	}
}

func TestRiderVelocity(t *testing.T) {
	r, _ := newTestRider(t)

	tests := []struct {
		name     string
		in       Controls
		expected float64
	}{
		{"idle", Controls{}, 0},
		{"left key", Controls{Left: true}, -240},
		{"right key", Controls{Right: true}, 240},
		{"both keys cancel", Controls{Left: true, Right: true}, 0},
		{"tilt left", Controls{Tilt: -0.6}, -240},
		{"tilt right", Controls{Tilt: 0.3}, 240},
		{"tilt inside dead zone", Controls{Tilt: 0.1}, 0},
		{"tilt against key", Controls{Left: true, Tilt: 0.9}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if v := r.Velocity(tc.in); v != tc.expected {
				t.Errorf("Velocity(%+v) = %v, expected %v", tc.in, v, tc.expected)
			}
		})
	}
}

func TestRiderClampedToViewport(t *testing.T) {
	r, f := newTestRider(t)

	for i := 0; i < 120; i++ {
		r.Update(1.0/60, float64(i)/60, Controls{Left: true}, f, 540)
	}
	if r.X != 24 {
		t.Errorf("X = %v after holding left, expected clamp at 24", r.X)
	}

	for i := 0; i < 600; i++ {
		r.Update(1.0/60, float64(i)/60, Controls{Right: true}, f, 540)
	}
	if r.X != 936 {
		t.Errorf("X = %v after holding right, expected clamp at 936", r.X)
	}

	r.Update(1.0/60, 0, Controls{}, f, 100)
	if r.Y != 76 {
		t.Errorf("Y = %v in a short viewport, expected clamp at 76", r.Y)
	}
}

func TestRiderLargeStepLandsOnTarget(t *testing.T) {
	r, f := newTestRider(t)

	r.Update(5, 5, Controls{}, f, 540)
	if want := f.Height(r.X, 5) - 14; math.Abs(r.Y-want) > 1e-9 {
		t.Errorf("Y = %v after a long frame, expected exactly the target %v", r.Y, want)
	}
}

func TestRiderJumpLiftsEachHeldTick(t *testing.T) {
	a, f := newTestRider(t)
	b, _ := newTestRider(t)
	dt := 0.02

	if a.Update(dt, dt, Controls{}, f, 540) {
		t.Error("Update without jump should not report a lift")
	}
	if !b.Update(dt, dt, Controls{Jump: true}, f, 540) {
		t.Error("Update with jump should report a lift")
	}
	if d := a.Y - b.Y; math.Abs(d-150*dt) > 1e-9 {
		t.Errorf("jump lifted by %v, expected %v", d, 150*dt)
	}
}

func TestRiderRotationRateLimited(t *testing.T) {
	r, f := newTestRider(t)
	cfg := config.DefaultWaveRiderConfig().Player
	dt := 0.01
	limit := cfg.MaxTurnRate * dt

	prev := r.Rotation
	for i := 1; i <= 200; i++ {
		tm := float64(i) * dt
		r.Update(dt, tm, Controls{}, f, 540)
		if d := math.Abs(r.Rotation - prev); d > limit+1e-12 {
			t.Fatalf("rotation changed by %v in one tick, limit is %v", d, limit)
		}
		prev = r.Rotation
	}

	// Held long enough, the board settles near the surface angle.
	goal := -f.Slope(r.X, 2) * cfg.TiltCoeff
	if math.Abs(r.Rotation-goal) > 0.01 {
		t.Errorf("Rotation = %v, expected close to %v", r.Rotation, goal)
	}
}

func TestRiderKnockback(t *testing.T) {
	r, _ := newTestRider(t)

	r.Knockback(60, 960)
	if r.X != 180 {
		t.Errorf("X = %v after knockback, expected 180", r.X)
	}

	r.X = 50
	r.Knockback(60, 960)
	if r.X != 24 {
		t.Errorf("X = %v after knockback near the edge, expected 24", r.X)
	}
}

func TestRiderMarginShrinksInTinyViewport(t *testing.T) {
	cfg := config.DefaultWaveRiderConfig()

	tests := []struct {
		name string
		w, h float64
	}{
		{"narrow", 30, 540},
		{"short", 960, 20},
		{"both", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewWaveField(tc.w, tc.h, cfg.Wave)
			if err != nil {
				t.Fatalf("NewWaveField() error: %v", err)
			}
			r := NewRider(cfg.Player, f)

			for i, in := range []Controls{{Left: true}, {Right: true}, {Jump: true}, {}} {
				r.Update(0.5, float64(i), in, f, tc.h)
				if r.X < 0 || r.X > tc.w || r.Y < 0 || r.Y > tc.h {
					t.Fatalf("rider at (%v, %v) outside %vx%v", r.X, r.Y, tc.w, tc.h)
				}
			}

			r.Knockback(60, tc.w)
			if r.X < 0 || r.X > tc.w {
				t.Errorf("knockback left the rider at X = %v", r.X)
			}
		})
	}
}
