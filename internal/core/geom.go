// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world coordinates (y grows upward).
type Vec2 struct {
	X, Y float64
}

// Box represents an axis-aligned bounding box used for collision detection,
// given by its center and half extents.
type Box struct {
	Center Vec2
	Half   Vec2
}

// NewBox creates a box from a center position and full width/height.
func NewBox(cx, cy, w, h float64) Box {
	return Box{
		Center: Vec2{X: cx, Y: cy},
		Half:   Vec2{X: w / 2, Y: h / 2},
	}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.Center.X - b.Half.X
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Center.X + b.Half.X
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Center.Y + b.Half.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Center.Y - b.Half.Y
}

// Overlaps returns true if this box overlaps with another.
// Uses standard AABB collision detection. Touching edges do not count.
func (b Box) Overlaps(other Box) bool {
	if b.Left() >= other.Right() || other.Left() >= b.Right() {
		return false
	}
	if b.Bottom() >= other.Top() || other.Bottom() >= b.Top() {
		return false
	}
	return true
}

// Side identifies the face of a box through which another box is judged
// to have entered.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
	SideInside
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideNone:
		return "None"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	case SideInside:
		return "Inside"
	default:
		return "Unknown"
	}
}

// Collide reports whether a overlaps b and, if so, which face of b the
// box a entered through. The entry side is the axis with the smaller
// penetration depth; on equal depths the horizontal axis wins. SideInside
// means a does not stick out past a single face of b on either axis.
func Collide(a, b Box) (Side, bool) {
	if !a.Overlaps(b) {
		return SideNone, false
	}

	xSide := SideInside
	xDepth := math.Inf(1)
	if a.Left() < b.Left() && a.Right() > b.Left() && a.Right() < b.Right() {
		xSide = SideLeft
		xDepth = a.Right() - b.Left()
	} else if a.Left() > b.Left() && a.Left() < b.Right() && a.Right() > b.Right() {
		xSide = SideRight
		xDepth = b.Right() - a.Left()
	}

	ySide := SideInside
	yDepth := math.Inf(1)
	if a.Bottom() < b.Bottom() && a.Top() > b.Bottom() && a.Top() < b.Top() {
		ySide = SideBottom
		yDepth = a.Top() - b.Bottom()
	} else if a.Bottom() > b.Bottom() && a.Bottom() < b.Top() && a.Top() > b.Top() {
		ySide = SideTop
		yDepth = b.Top() - a.Bottom()
	}

	if yDepth < xDepth {
		return ySide, true
	}
	return xSide, true
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
