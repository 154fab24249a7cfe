// Package core provides the fundamental types shared by all arcade games:
// grid geometry, the abstract input frame, the screen buffer games render
// into, and the runtime configuration handed to games at reset. It has no
// external dependencies (especially no Bubble Tea) so game logic stays
// pure and testable.
package core

// Point is a grid cell coordinate. For snake it doubles as a velocity
// vector (DX/DY via Add).
type Point struct {
	X, Y int
}

// Add returns the point translated by the given delta.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// IsZero reports whether the point is the zero vector.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Rect is an axis-aligned rectangle used for overlay boxes.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts val to [lo, hi].
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
