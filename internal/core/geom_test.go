package core

import (
	"testing"
	"time"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectClampPoint(t *testing.T) {
	r := NewRect(2, 3, 10, 5)

	tests := []struct {
		name     string
		in, want Point
	}{
		{"inside", Point{5, 5}, Point{5, 5}},
		{"left of rect", Point{0, 5}, Point{2, 5}},
		{"below rect", Point{5, 20}, Point{5, 7}},
		{"beyond corner", Point{50, -4}, Point{11, 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ClampPoint(tc.in); got != tc.want {
				t.Errorf("ClampPoint(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	from := Point{0, 10}
	to := Point{10, 0}

	if got := Lerp(from, to, 0); got != from {
		t.Errorf("Lerp(t=0) = %v, expected %v", got, from)
	}
	if got := Lerp(from, to, 1); got != to {
		t.Errorf("Lerp(t=1) = %v, expected %v", got, to)
	}
	if got := Lerp(from, to, 0.5); got != (Point{5, 5}) {
		t.Errorf("Lerp(t=0.5) = %v, expected (5,5)", got)
	}
	if got := Lerp(from, to, 3); got != to {
		t.Errorf("Lerp(t=3) should clamp to destination, got %v", got)
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

func TestTickDuration(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).TickDuration(); got != 20*time.Millisecond {
		t.Errorf("TickDuration() = %v, expected 20ms", got)
	}
	if got := (RuntimeConfig{}).TickDuration(); got != time.Second/60 {
		t.Errorf("zero TickRate should fall back to 60 fps, got %v", got)
	}
}

func TestInputFrameDirection(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionRight)

	if got := f.Direction(); got != (Point{1, -1}) {
		t.Errorf("Direction() = %v, expected (1,-1)", got)
	}

	f.SelectItem("apple")
	f.Tap(3, 4)
	f.Drag = true
	f.Clear()
	if f.Has(ActionSelect) || f.Item != "" || f.Pointer != (Point{}) || f.Drag {
		t.Errorf("Clear() left state behind: %+v", f)
	}
}
