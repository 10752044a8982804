package engine

import (
	"fmt"
	"sort"
)

// DotSet is an immutable, validated collection of endpoints with
// cell and pair lookup.
type DotSet struct {
	dots   []Dot
	byCell map[Cell]int
	pairs  [][2]int
}

// NewDotSet validates dots and builds the lookup tables.
// Each pair id in 0..n-1 must have exactly two dots of one color,
// and no two dots may share a cell.
func NewDotSet(dots []Dot) (*DotSet, error) {
	ds := &DotSet{
		dots:   make([]Dot, len(dots)),
		byCell: make(map[Cell]int, len(dots)),
	}
	copy(ds.dots, dots)
	sort.SliceStable(ds.dots, func(i, j int) bool {
		return ds.dots[i].ID < ds.dots[j].ID
	})

	members := make(map[int][]int)
	for i, d := range ds.dots {
		if prev, ok := ds.byCell[d.Pos]; ok {
			return nil, ValidationError{
				Code:    "SHARED_CELL",
				Message: fmt.Sprintf("dots %d and %d share cell %s", ds.dots[prev].ID, d.ID, d.Pos),
			}
		}
		if d.PairID < 0 {
			return nil, ValidationError{
				Code:    "BAD_PAIR",
				Message: fmt.Sprintf("dot %d has negative pair id %d", d.ID, d.PairID),
			}
		}
		ds.byCell[d.Pos] = i
		members[d.PairID] = append(members[d.PairID], i)
	}

	ds.pairs = make([][2]int, len(members))
	for pair := 0; pair < len(members); pair++ {
		idx, ok := members[pair]
		if !ok {
			return nil, ValidationError{
				Code:    "BAD_PAIR",
				Message: fmt.Sprintf("pair ids are not contiguous: missing pair %d", pair),
			}
		}
		if len(idx) != 2 {
			return nil, ValidationError{
				Code:    "BAD_PAIR",
				Message: fmt.Sprintf("pair %d has %d dots, want 2", pair, len(idx)),
			}
		}
		a, b := ds.dots[idx[0]], ds.dots[idx[1]]
		if a.Color != b.Color {
			return nil, ValidationError{
				Code:    "COLOR_MISMATCH",
				Message: fmt.Sprintf("pair %d has colors %s and %s", pair, a.Color, b.Color),
			}
		}
		ds.pairs[pair] = [2]int{idx[0], idx[1]}
	}

	return ds, nil
}

// DotAt returns the dot occupying c, if any.
func (ds *DotSet) DotAt(c Cell) (Dot, bool) {
	if ds == nil {
		return Dot{}, false
	}
	i, ok := ds.byCell[c]
	if !ok {
		return Dot{}, false
	}
	return ds.dots[i], true
}

// PairEndpoints returns both dots of a pair in id order.
func (ds *DotSet) PairEndpoints(pairID int) (Dot, Dot, bool) {
	if ds == nil || pairID < 0 || pairID >= len(ds.pairs) {
		return Dot{}, Dot{}, false
	}
	p := ds.pairs[pairID]
	return ds.dots[p[0]], ds.dots[p[1]], true
}

// PairCount returns the number of pairs.
func (ds *DotSet) PairCount() int {
	if ds == nil {
		return 0
	}
	return len(ds.pairs)
}

// Len returns the number of dots.
func (ds *DotSet) Len() int {
	if ds == nil {
		return 0
	}
	return len(ds.dots)
}

// Dots returns a copy of all dots ordered by id.
func (ds *DotSet) Dots() []Dot {
	if ds == nil {
		return nil
	}
	out := make([]Dot, len(ds.dots))
	copy(out, ds.dots)
	return out
}

// IsEndpointOf reports whether c holds a dot of the given pair.
func (ds *DotSet) IsEndpointOf(c Cell, pairID int) bool {
	d, ok := ds.DotAt(c)
	return ok && d.PairID == pairID
}
