package engine

import "fmt"

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidateLevel checks structural properties of a generated level:
// every dot in bounds, no shared cells, two same-colored dots per pair.
func ValidateLevel(level Level) error {
	if level.Dots == nil {
		return ValidationError{Code: "BAD_PAIR", Message: "level has no dots"}
	}
	grid := level.Grid()
	seen := make(map[Cell]int)
	for _, d := range level.Dots.Dots() {
		if !grid.InBounds(d.Pos) {
			return ValidationError{
				Code:    "OUT_OF_BOUNDS",
				Message: fmt.Sprintf("dot %d at %s outside %dx%d grid", d.ID, d.Pos, grid.Size, grid.Size),
			}
		}
		if prev, ok := seen[d.Pos]; ok {
			return ValidationError{
				Code:    "SHARED_CELL",
				Message: fmt.Sprintf("dots %d and %d share cell %s", prev, d.ID, d.Pos),
			}
		}
		seen[d.Pos] = d.ID
	}
	for pair := 0; pair < level.Dots.PairCount(); pair++ {
		a, b, ok := level.Dots.PairEndpoints(pair)
		if !ok {
			return ValidationError{Code: "BAD_PAIR", Message: fmt.Sprintf("pair %d missing", pair)}
		}
		if a.Color != b.Color {
			return ValidationError{
				Code:    "COLOR_MISMATCH",
				Message: fmt.Sprintf("pair %d has colors %s and %s", pair, a.Color, b.Color),
			}
		}
	}
	if len(level.Strategies) != 0 && len(level.Strategies) != level.Dots.PairCount() {
		return ValidationError{
			Code:    "BAD_PAIR",
			Message: fmt.Sprintf("%d strategies recorded for %d pairs", len(level.Strategies), level.Dots.PairCount()),
		}
	}
	return nil
}

// ValidatePath checks a single path: simple, orthogonally connected,
// starting on its own endpoint, with no dot in its interior, and
// completed only when both endpoints are at the ends.
func ValidatePath(grid Grid, dots *DotSet, p Path) error {
	if len(p.Points) == 0 {
		if p.Completed {
			return ValidationError{Code: "BAD_COMPLETION", Message: fmt.Sprintf("path %d is empty but completed", p.ID)}
		}
		return nil
	}

	seen := make(map[Cell]bool, len(p.Points))
	for i, c := range p.Points {
		if !grid.InBounds(c) {
			return ValidationError{Code: "OUT_OF_BOUNDS", Message: fmt.Sprintf("path %d point %s out of bounds", p.ID, c)}
		}
		if seen[c] {
			return ValidationError{Code: "REPEATED_CELL", Message: fmt.Sprintf("path %d visits %s twice", p.ID, c)}
		}
		seen[c] = true
		if i > 0 && !p.Points[i-1].Adjacent(c) {
			return ValidationError{
				Code:    "NOT_ADJACENT",
				Message: fmt.Sprintf("path %d steps from %s to %s", p.ID, p.Points[i-1], c),
			}
		}
		if i > 0 && i < len(p.Points)-1 {
			if d, ok := dots.DotAt(c); ok {
				return ValidationError{
					Code:    "DOT_INTERIOR",
					Message: fmt.Sprintf("path %d passes through dot %d at %s", p.ID, d.ID, c),
				}
			}
		}
	}

	if !dots.IsEndpointOf(p.Points[0], p.ID) {
		return ValidationError{Code: "BAD_START", Message: fmt.Sprintf("path %d does not start on its own dot", p.ID)}
	}

	last := p.Points[len(p.Points)-1]
	if len(p.Points) > 1 {
		if d, ok := dots.DotAt(last); ok && (d.PairID != p.ID || !p.Completed) {
			return ValidationError{
				Code:    "DOT_INTERIOR",
				Message: fmt.Sprintf("path %d ends on dot %d without completing", p.ID, d.ID),
			}
		}
	}

	if p.Completed {
		a, b, ok := dots.PairEndpoints(p.ID)
		ends := ok && len(p.Points) >= 2 &&
			((p.Points[0] == a.Pos && last == b.Pos) || (p.Points[0] == b.Pos && last == a.Pos))
		if !ends {
			return ValidationError{
				Code:    "BAD_COMPLETION",
				Message: fmt.Sprintf("path %d is completed but does not join its endpoints", p.ID),
			}
		}
	}
	return nil
}

// ValidatePaths validates each path and checks that no cell is claimed twice.
func ValidatePaths(grid Grid, dots *DotSet, paths []Path) error {
	owner := make(map[Cell]int)
	for _, p := range paths {
		if err := ValidatePath(grid, dots, p); err != nil {
			return err
		}
		for _, c := range p.Points {
			if prev, ok := owner[c]; ok {
				return ValidationError{
					Code:    "CELL_CLAIMED",
					Message: fmt.Sprintf("cell %s claimed by paths %d and %d", c, prev, p.ID),
				}
			}
			owner[c] = p.ID
		}
	}
	return nil
}

// LevelStats summarizes a generated level.
type LevelStats struct {
	GridSize         int
	Pairs            int
	TotalCells       int
	FreeCells        int
	MeanDistance     float64
	MinDistance      int
	MaxDistance      int
	AdversarialPairs int
}

// ComputeLevelStats analyzes a level and returns statistics.
func ComputeLevelStats(level Level) LevelStats {
	stats := LevelStats{
		GridSize:    level.GridSize,
		Pairs:       level.PairCount(),
		TotalCells:  level.GridSize * level.GridSize,
		MinDistance: -1,
	}
	stats.FreeCells = stats.TotalCells - level.Dots.Len()

	if stats.Pairs == 0 {
		stats.MinDistance = 0
		return stats
	}

	total := 0
	for pair := 0; pair < stats.Pairs; pair++ {
		a, b, _ := level.Dots.PairEndpoints(pair)
		d := a.Pos.Manhattan(b.Pos)
		total += d
		if stats.MinDistance < 0 || d < stats.MinDistance {
			stats.MinDistance = d
		}
		if d > stats.MaxDistance {
			stats.MaxDistance = d
		}
	}
	stats.MeanDistance = float64(total) / float64(stats.Pairs)

	for _, s := range level.Strategies {
		if s.Adversarial() {
			stats.AdversarialPairs++
		}
	}
	return stats
}
