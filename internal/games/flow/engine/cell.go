// Package engine provides the core puzzle logic for the Flow game:
// grid geometry, endpoint placement, the path-drawing state machine and
// the level generator. It is UI-agnostic and deterministic given a seed.
package engine

import "fmt"

// Cell represents a 2D coordinate on the grid.
// X increases to the right, Y increases downward (screen coordinates).
type Cell struct {
	X int
	Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the Manhattan distance to another cell.
func (c Cell) Manhattan(other Cell) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

// Adjacent reports whether other is exactly one orthogonal step away.
func (c Cell) Adjacent(other Cell) bool {
	return c.Manhattan(other) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
