// Package core provides fundamental types and utilities for the flow platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks the rectangle by n on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: Max(0, r.W-2*n), H: Max(0, r.H-2*n)}
}

// CellGrid maps a square board of Size x Size logical cells onto screen
// characters. Each logical cell covers CellW x CellH characters.
type CellGrid struct {
	X, Y         int // Screen position of the top-left cell
	CellW, CellH int
	Size         int
}

// Bounds returns the screen area covered by the board.
func (g CellGrid) Bounds() Rect {
	return NewRect(g.X, g.Y, g.CellW*g.Size, g.CellH*g.Size)
}

// Origin returns the top-left screen character of a logical cell.
func (g CellGrid) Origin(cx, cy int) (int, int) {
	return g.X + cx*g.CellW, g.Y + cy*g.CellH
}

// CellAt converts a screen position to a logical cell.
// ok is false when the position is outside the board.
func (g CellGrid) CellAt(x, y int) (cx, cy int, ok bool) {
	if g.CellW <= 0 || g.CellH <= 0 || !g.Bounds().Contains(x, y) {
		return 0, 0, false
	}
	return (x - g.X) / g.CellW, (y - g.Y) / g.CellH, true
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
