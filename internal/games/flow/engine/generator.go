package engine

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Rand is the random source used by the generator.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Sizing derives grid size and pair count from a level number:
// grid = min(BaseGrid + level/GridEvery, MaxGrid) and likewise for pairs.
type Sizing struct {
	BaseGrid   int
	GridEvery  int
	MaxGrid    int
	BasePairs  int
	PairsEvery int
	MaxPairs   int
}

// GridSize returns the unclamped grid size for a level.
func (s Sizing) GridSize(level int) int {
	return min(s.BaseGrid+div(level, s.GridEvery), s.MaxGrid)
}

// PairCount returns the unclamped pair count for a level.
func (s Sizing) PairCount(level int) int {
	return min(s.BasePairs+div(level, s.PairsEvery), s.MaxPairs)
}

func div(a, b int) int {
	if b <= 0 {
		return 0
	}
	return a / b
}

// GenParams configures level generation.
type GenParams struct {
	Easy       Sizing
	Hard       Sizing
	Impossible Sizing

	MinGrid int // Lower clamp for grid size

	// Connectable placement
	MaxAttempts       int     // Random tries before falling back to any free cell
	MinDistance       int     // Minimum Manhattan distance between endpoints
	MaxDistanceFactor float64 // Maximum distance as a multiple of grid size

	// Adversarial placement (impossible mode only)
	AdversarialAfter  int     // Adversarial placement only above this level
	AdversarialChance float64 // Per-pair probability of adversarial placement
	MirrorChance      float64 // Probability of mirroring an earlier pair instead of using a corner
}

// DefaultGenParams returns the stock sizing formulas and placement tuning.
func DefaultGenParams() GenParams {
	return GenParams{
		Easy:              Sizing{BaseGrid: 5, GridEvery: 10, MaxGrid: 8, BasePairs: 3, PairsEvery: 5, MaxPairs: 7},
		Hard:              Sizing{BaseGrid: 6, GridEvery: 8, MaxGrid: 10, BasePairs: 4, PairsEvery: 4, MaxPairs: 9},
		Impossible:        Sizing{BaseGrid: 5, GridEvery: 6, MaxGrid: 9, BasePairs: 4, PairsEvery: 3, MaxPairs: 9},
		MinGrid:           3,
		MaxAttempts:       100,
		MinDistance:       2,
		MaxDistanceFactor: 1.5,
		AdversarialAfter:  3,
		AdversarialChance: 0.7,
		MirrorChance:      0.8,
	}
}

// Sizing returns the sizing formula for a mode.
func (p GenParams) Sizing(mode Mode) Sizing {
	switch mode {
	case ModeHard:
		return p.Hard
	case ModeImpossible:
		return p.Impossible
	default:
		return p.Easy
	}
}

// Params returns the clamped grid size and pair count for a mode and level.
// Levels below 1 are treated as level 1.
func (p GenParams) Params(mode Mode, level int) (gridSize, pairCount int) {
	if level < 1 {
		level = 1
	}
	minGrid := clamp(p.MinGrid, 2, MaxGridSize)
	s := p.Sizing(mode)

	gridSize = clamp(s.GridSize(level), minGrid, MaxGridSize)
	pairCount = clamp(s.PairCount(level), 1, PaletteSize)
	if limit := gridSize * gridSize / 2; pairCount > limit {
		pairCount = limit
	}
	return gridSize, pairCount
}

// Generator places endpoint pairs for a level.
type Generator struct {
	params GenParams
	rng    Rand
}

// NewGenerator creates a generator. Zero-valued tuning fields fall back to defaults.
func NewGenerator(params GenParams, rng Rand) *Generator {
	def := DefaultGenParams()
	if params.MaxAttempts <= 0 {
		params.MaxAttempts = def.MaxAttempts
	}
	if params.MinDistance <= 0 {
		params.MinDistance = def.MinDistance
	}
	if params.MaxDistanceFactor <= 0 {
		params.MaxDistanceFactor = def.MaxDistanceFactor
	}
	return &Generator{params: params, rng: rng}
}

// Params returns the generator's configuration.
func (g *Generator) Params() GenParams {
	return g.params
}

// Generate builds a level for the given mode and number.
// It always terminates and always yields a valid DotSet.
func (g *Generator) Generate(mode Mode, level int) Level {
	if level < 1 {
		level = 1
	}
	size, pairs := g.params.Params(mode, level)
	grid := NewGrid(size)

	occupied := mapset.New[Cell]()
	dots := make([]Dot, 0, pairs*2)
	strategies := make([]Strategy, 0, pairs)

	for i := 0; i < pairs; i++ {
		color := PaletteColor(i)

		first := g.placeFirst(grid, &occupied)
		occupied.Put(first)
		dots = append(dots, Dot{ID: i * 2, Color: color, Pos: first, PairID: i})

		var second Cell
		strategy := StrategyConnectable
		if g.useAdversarial(mode, level) {
			second, strategy = g.placeAdversarial(grid, &occupied, dots, first, i)
		} else {
			second = g.placeConnectable(grid, &occupied, first)
		}
		occupied.Put(second)
		dots = append(dots, Dot{ID: i*2 + 1, Color: color, Pos: second, PairID: i})
		strategies = append(strategies, strategy)
	}

	ds, err := NewDotSet(dots)
	if err != nil {
		panic(fmt.Sprintf("engine: generated invalid dot set: %v", err))
	}

	return Level{
		Mode:       mode,
		Number:     level,
		GridSize:   size,
		Dots:       ds,
		Strategies: strategies,
	}
}

func (g *Generator) useAdversarial(mode Mode, level int) bool {
	if mode != ModeImpossible || level <= g.params.AdversarialAfter {
		return false
	}
	return g.rng.Float64() < g.params.AdversarialChance
}

func (g *Generator) randomCell(grid Grid) Cell {
	return C(g.rng.Intn(grid.Size), g.rng.Intn(grid.Size))
}

// placeFirst samples uniformly, resampling on collision a bounded number
// of times before picking uniformly from the remaining free cells.
func (g *Generator) placeFirst(grid Grid, occupied *mapset.Set[Cell]) Cell {
	for attempt := 0; attempt < g.params.MaxAttempts; attempt++ {
		c := g.randomCell(grid)
		if !occupied.Has(c) {
			return c
		}
	}
	return g.pickFree(grid, occupied)
}

func (g *Generator) placeConnectable(grid Grid, occupied *mapset.Set[Cell], first Cell) Cell {
	maxDist := g.params.MaxDistanceFactor * float64(grid.Size)
	for attempt := 0; attempt < g.params.MaxAttempts; attempt++ {
		c := g.randomCell(grid)
		if occupied.Has(c) {
			continue
		}
		d := first.Manhattan(c)
		if d >= g.params.MinDistance && float64(d) <= maxDist {
			return c
		}
	}
	return g.pickFree(grid, occupied)
}

// placeAdversarial puts the partner just beyond an earlier pair's endpoint,
// or in the far corner, to provoke crossings.
func (g *Generator) placeAdversarial(grid Grid, occupied *mapset.Set[Cell], dots []Dot, first Cell, existingPairs int) (Cell, Strategy) {
	var candidate Cell
	strategy := StrategyCorner

	if existingPairs > 0 && g.rng.Float64() < g.params.MirrorChance {
		pair := g.rng.Intn(existingPairs)
		ref := dots[pair*2].Pos
		if g.rng.Float64() >= 0.5 {
			ref = dots[pair*2+1].Pos
		}
		candidate = C(stepAway(first.X, ref.X), stepAway(first.Y, ref.Y))
		candidate = C(clamp(candidate.X, 0, grid.Size-1), clamp(candidate.Y, 0, grid.Size-1))
		strategy = StrategyMirror
	} else {
		candidate = C(farEdge(first.X, grid.Size), farEdge(first.Y, grid.Size))
	}

	return g.resolveDiagonal(grid, occupied, candidate), strategy
}

func stepAway(from, ref int) int {
	if from < ref {
		return ref + 1
	}
	return ref - 1
}

func farEdge(v, size int) int {
	if float64(v) < float64(size)/2 {
		return size - 1
	}
	return 0
}

// resolveDiagonal steps (x+1, y+1) modulo size until a free cell is found.
// The diagonal orbit has at most size cells, after which the first free
// cell in scan order is used.
func (g *Generator) resolveDiagonal(grid Grid, occupied *mapset.Set[Cell], c Cell) Cell {
	for step := 0; step < grid.Size; step++ {
		if !occupied.Has(c) {
			return c
		}
		c = C((c.X+1)%grid.Size, (c.Y+1)%grid.Size)
	}
	for _, free := range grid.Cells() {
		if !occupied.Has(free) {
			return free
		}
	}
	return c
}

func (g *Generator) pickFree(grid Grid, occupied *mapset.Set[Cell]) Cell {
	free := make([]Cell, 0, grid.Area()-occupied.Size())
	for _, c := range grid.Cells() {
		if !occupied.Has(c) {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return C(0, 0)
	}
	return free[g.rng.Intn(len(free))]
}
