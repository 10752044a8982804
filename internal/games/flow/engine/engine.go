package engine

// Outcome describes what a single cell event did to the engine state.
type Outcome uint8

const (
	// OutcomeNone means the event was ignored and state is unchanged.
	OutcomeNone Outcome = iota
	// OutcomeSelected means a pair became active and its path was reset to its dot.
	OutcomeSelected
	// OutcomeCompleted means the active path reached its partner dot.
	OutcomeCompleted
	// OutcomeExtended means a free cell was appended to the active path.
	OutcomeExtended
	// OutcomeRetracted means the active path was truncated to a revisited cell.
	OutcomeRetracted
	// OutcomeEvicted means another pair's path was cleared and the cell appended.
	OutcomeEvicted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeSelected:
		return "selected"
	case OutcomeCompleted:
		return "completed"
	case OutcomeExtended:
		return "extended"
	case OutcomeRetracted:
		return "retracted"
	case OutcomeEvicted:
		return "evicted"
	default:
		return "unknown"
	}
}

// Changed reports whether the event mutated state.
func (o Outcome) Changed() bool {
	return o != OutcomeNone
}

const noActive = -1

// Engine is the path-drawing state machine for one level.
// It is not safe for concurrent use; callers deliver events one at a time.
type Engine struct {
	grid   Grid
	dots   *DotSet
	paths  []Path
	active int
}

// NewEngine creates an engine with one empty path per pair of the level.
func NewEngine(level Level) *Engine {
	e := &Engine{
		grid:   level.Grid(),
		dots:   level.Dots,
		active: noActive,
	}
	e.paths = make([]Path, level.PairCount())
	for i := range e.paths {
		a, _, _ := e.dots.PairEndpoints(i)
		e.paths[i] = Path{ID: i, Color: a.Color}
	}
	return e
}

// HandleCellEvent applies one click or drag step on a grid cell.
// Invalid events are no-ops and return OutcomeNone.
//
// Clicking a dot selects its pair and restarts that pair's path from the
// dot; the previously active path keeps its partial points. Clicking the
// partner dot of the active pair completes the path only when the partner
// is adjacent to the path's last point, and the partner is appended as the
// final point. A non-adjacent partner click is a no-op.
func (e *Engine) HandleCellEvent(c Cell) Outcome {
	if !e.grid.InBounds(c) {
		return OutcomeNone
	}

	if d, ok := e.dots.DotAt(c); ok {
		return e.handleDot(d)
	}

	if e.active == noActive {
		return OutcomeNone
	}
	path := &e.paths[e.active]
	last, ok := path.Last()
	if !ok || !last.Adjacent(c) {
		return OutcomeNone
	}

	if i := path.IndexOf(c); i >= 0 {
		path.Points = path.Points[:i+1]
		return OutcomeRetracted
	}

	outcome := OutcomeExtended
	if owner, ok := e.OwnerAt(c); ok && owner != e.active {
		e.paths[owner].Points = nil
		e.paths[owner].Completed = false
		outcome = OutcomeEvicted
	}
	path.Points = append(path.Points, c)
	return outcome
}

func (e *Engine) handleDot(d Dot) Outcome {
	if e.active != d.PairID {
		e.active = d.PairID
		path := &e.paths[d.PairID]
		path.Points = []Cell{d.Pos}
		path.Completed = false
		return OutcomeSelected
	}

	path := &e.paths[e.active]
	if len(path.Points) == 0 || path.Points[0] == d.Pos {
		return OutcomeNone
	}
	// The partner dot is only reachable from an adjacent cell; it becomes the final point.
	last, _ := path.Last()
	if !last.Adjacent(d.Pos) {
		return OutcomeNone
	}
	path.Points = append(path.Points, d.Pos)
	path.Completed = true
	e.active = noActive
	return OutcomeCompleted
}

// Apply feeds a sequence of cell events and returns each outcome.
func (e *Engine) Apply(cells ...Cell) []Outcome {
	out := make([]Outcome, len(cells))
	for i, c := range cells {
		out[i] = e.HandleCellEvent(c)
	}
	return out
}

// Restart clears every path and the active pair. Dots are kept.
func (e *Engine) Restart() {
	for i := range e.paths {
		e.paths[i].Points = nil
		e.paths[i].Completed = false
	}
	e.active = noActive
}

// ActivePair returns the pair currently accepting extension events.
func (e *Engine) ActivePair() (int, bool) {
	if e.active == noActive {
		return 0, false
	}
	return e.active, true
}

// ActivePath returns a copy of the active pair's path.
func (e *Engine) ActivePath() (Path, bool) {
	if e.active == noActive {
		return Path{}, false
	}
	return e.paths[e.active].Clone(), true
}

// Paths returns a deep copy of all paths ordered by pair id.
func (e *Engine) Paths() []Path {
	out := make([]Path, len(e.paths))
	for i, p := range e.paths {
		out[i] = p.Clone()
	}
	return out
}

// Path returns a copy of one pair's path.
func (e *Engine) Path(id int) (Path, bool) {
	if id < 0 || id >= len(e.paths) {
		return Path{}, false
	}
	return e.paths[id].Clone(), true
}

// Dots returns the level's endpoints.
func (e *Engine) Dots() *DotSet {
	return e.dots
}

// GridSize returns the side length of the grid.
func (e *Engine) GridSize() int {
	return e.grid.Size
}

// Grid returns the engine's grid.
func (e *Engine) Grid() Grid {
	return e.grid
}

// OwnerAt returns the pair whose path passes through c.
func (e *Engine) OwnerAt(c Cell) (int, bool) {
	for _, p := range e.paths {
		if p.IndexOf(c) >= 0 {
			return p.ID, true
		}
	}
	return 0, false
}

// CompletedCount returns how many paths are completed.
func (e *Engine) CompletedCount() int {
	n := 0
	for _, p := range e.paths {
		if p.Completed {
			n++
		}
	}
	return n
}

// FilledCount returns the number of cells covered by any path.
func (e *Engine) FilledCount() int {
	n := 0
	for _, p := range e.paths {
		n += len(p.Points)
	}
	return n
}

// IsComplete reports whether every path is completed.
func (e *Engine) IsComplete() bool {
	return IsLevelComplete(e.paths)
}

// IsLevelComplete is true iff paths is non-empty and every path is completed.
func IsLevelComplete(paths []Path) bool {
	if len(paths) == 0 {
		return false
	}
	for _, p := range paths {
		if !p.Completed {
			return false
		}
	}
	return true
}
