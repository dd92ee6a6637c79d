package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping",
			a:        NewRectF(0, 0, 26, 26),
			b:        NewRectF(20, 20, 40, 40),
			expected: true,
		},
		{
			name:     "touching right edge",
			a:        NewRectF(0, 0, 40, 40),
			b:        NewRectF(40, 0, 40, 40),
			expected: false,
		},
		{
			name:     "touching bottom edge",
			a:        NewRectF(0, 0, 40, 40),
			b:        NewRectF(0, 40, 40, 40),
			expected: false,
		},
		{
			name:     "fractional overlap",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(9.9, 9.9, 10, 10),
			expected: true,
		},
		{
			name:     "contained",
			a:        NewRectF(0, 0, 480, 40),
			b:        NewRectF(100, 10, 5, 5),
			expected: true,
		},
		{
			name:     "far apart",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(100, 100, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFExpandInset(t *testing.T) {
	r := NewRectF(40, 80, 160, 160)

	e := r.Expand(40)
	if e != NewRectF(0, 40, 240, 240) {
		t.Errorf("Expand(40) = %+v", e)
	}

	tile := NewRectF(80, 120, 40, 40).Inset(6)
	if tile != NewRectF(86, 126, 28, 28) {
		t.Errorf("Inset(6) = %+v", tile)
	}
}

func TestRectFCenterAndWithin(t *testing.T) {
	r := NewRectF(227, 227, 26, 26)
	cx, cy := r.Center()
	if cx != 240 || cy != 240 {
		t.Errorf("Center() = (%v, %v), expected (240, 240)", cx, cy)
	}

	if !r.Within(480, 480) {
		t.Error("rect should be within 480x480")
	}
	if NewRectF(460, 0, 26, 26).Within(480, 480) {
		t.Error("rect crossing the right edge should not be within bounds")
	}
	if NewRectF(-0.5, 0, 26, 26).Within(480, 480) {
		t.Error("rect left of the origin should not be within bounds")
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 30, 40); math.Abs(d-50) > 1e-9 {
		t.Errorf("Distance = %v, expected 50", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{454.2, 0.0, 454.0, 454.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
