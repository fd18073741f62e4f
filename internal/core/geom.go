// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned bounding box in world coordinates.
// The y axis grows downward, so Top <= Bottom.
type Rect struct {
	Left, Top     float64
	Right, Bottom float64
}

// NewRect creates a rectangle from its top-left corner and size.
// Negative sizes are normalised so that Left <= Right and Top <= Bottom.
func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Intersects reports whether the two rectangles overlap.
// Intervals are open: rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.Left < other.Right &&
		r.Top < other.Bottom &&
		r.Right > other.Left &&
		r.Bottom > other.Top
}

// Intersection returns the overlapping region of two rectangles and whether
// it is non-empty.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	out := Rect{
		Left:   math.Max(r.Left, other.Left),
		Top:    math.Max(r.Top, other.Top),
		Right:  math.Min(r.Right, other.Right),
		Bottom: math.Min(r.Bottom, other.Bottom),
	}
	if out.Left >= out.Right || out.Top >= out.Bottom {
		return Rect{}, false
	}
	return out, true
}

// WorldToScreenScale returns how many screen cells one world unit occupies
// when a worldW x worldH world is fitted into a screenW x screenH screen
// without distortion.
func WorldToScreenScale(screenW, screenH int, worldW, worldH float64) float64 {
	if screenW <= 0 || screenH <= 0 || worldW <= 0 || worldH <= 0 {
		return 0
	}
	if float64(screenW)/float64(screenH) < worldW/worldH {
		return float64(screenW) / worldW
	}
	return float64(screenH) / worldH
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
