package core

import (
	"math"
	"testing"
)

func TestDist(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected float64
	}{
		{"same point", V(3, 4), V(3, 4), 0},
		{"3-4-5 triangle", V(0, 0), V(3, 4), 5},
		{"negative coords", V(-1, -1), V(2, 3), 5},
		{"horizontal", V(10, 0), V(0, 0), 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Dist(tc.a, tc.b)
			if math.Abs(result-tc.expected) > 1e-9 {
				t.Errorf("Dist() = %f, expected %f", result, tc.expected)
			}
			// Also test symmetry
			if reverse := Dist(tc.b, tc.a); math.Abs(reverse-result) > 1e-9 {
				t.Errorf("Dist() (reversed) = %f, expected %f", reverse, result)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{5.0, 24.0, 16.0, 24.0}, // inverted bounds favour min
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestApproach(t *testing.T) {
	tests := []struct {
		name                      string
		current, target, maxDelta float64
		expected                  float64
	}{
		{"reaches target", 0, 0.5, 1, 0.5},
		{"limited upward", 0, 5, 1, 1},
		{"limited downward", 0, -5, 1, -1},
		{"zero delta holds", 2, 5, 0, 2},
		{"already there", 3, 3, 1, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Approach(tc.current, tc.target, tc.maxDelta)
			if result != tc.expected {
				t.Errorf("Approach(%f, %f, %f) = %f, expected %f",
					tc.current, tc.target, tc.maxDelta, result, tc.expected)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Error("1.5 should be finite")
	}
	if IsFinite(math.NaN()) {
		t.Error("NaN should not be finite")
	}
	if IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Error("Inf should not be finite")
	}
}
