// Package core provides fundamental types and utilities for the pet platform.
// It contains no external dependencies (especially no Bubble Tea) to keep scene
// logic pure and testable.
package core

// Point is a cell position on the screen.
type Point struct {
	X, Y int
}

// Add returns the sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Lerp interpolates between two points. t is clamped to [0, 1].
func Lerp(from, to Point, t float64) Point {
	t = ClampF(t, 0, 1)
	return Point{
		X: from.X + int(float64(to.X-from.X)*t+0.5*sign(to.X-from.X)),
		Y: from.Y + int(float64(to.Y-from.Y)*t+0.5*sign(to.Y-from.Y)),
	}
}

func sign(v int) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Rect represents an axis-aligned box used for layout and hit testing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampPoint moves p inside the rectangle.
func (r Rect) ClampPoint(p Point) Point {
	if r.W <= 0 || r.H <= 0 {
		return Point{X: r.X, Y: r.Y}
	}
	return Point{
		X: Clamp(p.X, r.X, r.Right()-1),
		Y: Clamp(p.Y, r.Y, r.Bottom()-1),
	}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
