package tui

import (
	"math"
	"testing"
	"time"
)

func TestFrameElapsed(t *testing.T) {
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name     string
		last     time.Time
		now      time.Time
		rate     int
		expected float64
	}{
		{"first tick uses nominal interval", time.Time{}, t0, 50, 0.02},
		{"measured gap", t0, t0.Add(33 * time.Millisecond), 60, 0.033},
		{"stall is capped", t0, t0.Add(3 * time.Second), 60, 0.25},
		{"clock going backwards", t0, t0.Add(-time.Second), 60, 0},
		{"bad rate falls back to 60", time.Time{}, t0, 0, 1.0 / 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := frameElapsed(tc.last, tc.now, tc.rate)
			if math.Abs(got-tc.expected) > 1e-6 {
				t.Errorf("frameElapsed() = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestNewTickLoopUnique(t *testing.T) {
	a, b := newTickLoop(), newTickLoop()
	if a == b {
		t.Errorf("tick loop ids should differ, both %d", a)
	}
}
