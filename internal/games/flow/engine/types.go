package engine

import (
	"fmt"
	"strings"
)

// Mode selects the level sizing formula and placement policy.
type Mode uint8

const (
	ModeEasy Mode = iota
	ModeHard
	ModeImpossible
)

// Modes lists every mode in menu order.
var Modes = []Mode{ModeEasy, ModeHard, ModeImpossible}

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeEasy:
		return "easy"
	case ModeHard:
		return "hard"
	case ModeImpossible:
		return "impossible"
	default:
		return "unknown"
	}
}

// Title returns the mode name for display.
func (m Mode) Title() string {
	switch m {
	case ModeEasy:
		return "Easy"
	case ModeHard:
		return "Hard"
	case ModeImpossible:
		return "Impossible"
	default:
		return "Unknown"
	}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "easy":
		return ModeEasy, nil
	case "hard":
		return ModeHard, nil
	case "impossible":
		return ModeImpossible, nil
	default:
		return ModeEasy, fmt.Errorf("unknown mode %q (want easy, hard or impossible)", s)
	}
}

// Strategy records how the second endpoint of a pair was placed.
type Strategy uint8

const (
	// StrategyConnectable places the partner at a moderate distance.
	StrategyConnectable Strategy = iota
	// StrategyMirror places the partner next to an earlier pair's endpoint.
	StrategyMirror
	// StrategyCorner places the partner in the far corner of the first endpoint's row.
	StrategyCorner
)

func (s Strategy) String() string {
	switch s {
	case StrategyConnectable:
		return "connectable"
	case StrategyMirror:
		return "mirror"
	case StrategyCorner:
		return "corner"
	default:
		return "unknown"
	}
}

// Adversarial reports whether the placement was meant to obstruct other pairs.
func (s Strategy) Adversarial() bool {
	return s == StrategyMirror || s == StrategyCorner
}

// Dot is a fixed colored endpoint. Every pair has exactly two dots
// with ids 2*PairID and 2*PairID+1.
type Dot struct {
	ID     int
	Color  Color
	Pos    Cell
	PairID int
}

// PathState is the lifecycle state of a path.
type PathState uint8

const (
	PathEmpty PathState = iota
	PathInProgress
	PathCompleted
)

func (s PathState) String() string {
	switch s {
	case PathEmpty:
		return "empty"
	case PathInProgress:
		return "in_progress"
	case PathCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Path is the user-drawn connection for one pair. ID equals the pair id.
type Path struct {
	ID        int
	Color     Color
	Points    []Cell
	Completed bool
}

// State derives the lifecycle state from the points and completion flag.
func (p Path) State() PathState {
	switch {
	case p.Completed:
		return PathCompleted
	case len(p.Points) == 0:
		return PathEmpty
	default:
		return PathInProgress
	}
}

// Last returns the final point of the path.
func (p Path) Last() (Cell, bool) {
	if len(p.Points) == 0 {
		return Cell{}, false
	}
	return p.Points[len(p.Points)-1], true
}

// IndexOf returns the position of c in the path, or -1.
func (p Path) IndexOf(c Cell) int {
	for i, pt := range p.Points {
		if pt == c {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	out := p
	if p.Points != nil {
		out.Points = make([]Cell, len(p.Points))
		copy(out.Points, p.Points)
	}
	return out
}

// Level is one generated puzzle.
type Level struct {
	Mode       Mode
	Number     int
	GridSize   int
	Dots       *DotSet
	Strategies []Strategy // indexed by pair id
}

// Grid returns the level's grid.
func (l Level) Grid() Grid {
	return NewGrid(l.GridSize)
}

// PairCount returns the number of pairs in the level.
func (l Level) PairCount() int {
	if l.Dots == nil {
		return 0
	}
	return l.Dots.PairCount()
}
