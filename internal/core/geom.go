// Package core holds the small value types shared by the simulation, the
// games and the terminal host: rectangles and overlap tests, control signals,
// input frames and the character screen. It imports nothing outside the
// standard library so every game stays testable without a terminal.
package core

// Rect is an axis-aligned rectangle in integer pixel (or cell) units.
// X, Y is the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle with the given position and size.
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

// Contains reports whether the point lies inside the rectangle
// (left/top edges inclusive, right/bottom exclusive).
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// SquareAround returns the bounding square of a circle centred at (cx, cy).
// The square spans [cx-radius, cx+radius] on both axes.
func SquareAround(cx, cy, radius int) Rect {
	return Rect{X: cx - radius, Y: cy - radius, W: 2 * radius, H: 2 * radius}
}

// BallTouches reports whether the bounding square of a ball centred at
// (cx, cy) touches or overlaps r. Both shapes are treated as closed
// intervals on every side, so contact along an edge counts.
func BallTouches(cx, cy, radius int, r Rect) bool {
	sq := SquareAround(cx, cy, radius)
	return sq.X <= r.Right() &&
		sq.Right() >= r.X &&
		sq.Y <= r.Bottom() &&
		sq.Bottom() >= r.Y
}

// Scale maps a coordinate from a space of size from into a space of size to.
// Used by renderers to project playfield pixels onto terminal cells.
func Scale(v, from, to int) int {
	if from <= 0 {
		return 0
	}
	return v * to / from
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
