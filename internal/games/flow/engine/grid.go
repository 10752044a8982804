package engine

// MaxGridSize is the largest grid the generator will ever produce.
const MaxGridSize = 10

// Grid is the fixed-size square coordinate space of a level.
type Grid struct {
	Size int
}

// NewGrid creates a grid with the given side length.
func NewGrid(size int) Grid {
	return Grid{Size: size}
}

// InBounds returns true if the cell is within the grid boundaries.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// IsAdjacent returns true if a and b are one orthogonal step apart.
func (g Grid) IsAdjacent(a, b Cell) bool {
	return a.Adjacent(b)
}

// Cells returns every cell of the grid ordered by row then column.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Size*g.Size)
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			cells = append(cells, C(x, y))
		}
	}
	return cells
}

// Area returns the number of cells in the grid.
func (g Grid) Area() int {
	return g.Size * g.Size
}
