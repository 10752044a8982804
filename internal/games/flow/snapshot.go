package flow

import (
	"time"

	"github.com/vovakirdan/tui-flow/internal/games/flow/engine"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string
	Level      int
	GridSize   int
	Pairs      int
	Connected  int
	Attempts   int
	Elapsed    time.Duration
	Cursor     engine.Cell
	ActivePair int // -1 when no pair is selected
	Board      string
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.completed:
		state = StateLevelCleared
	}

	snap := Snapshot{
		Tick:       g.tick,
		Mode:       g.mode.String(),
		Level:      g.number,
		GridSize:   g.level.GridSize,
		Pairs:      g.level.PairCount(),
		Attempts:   g.attempts,
		Elapsed:    g.elapsed,
		Cursor:     g.cursor,
		ActivePair: -1,
		State:      state,
	}
	if g.eng != nil {
		snap.Connected = g.eng.CompletedCount()
		snap.Board = engine.RenderASCII(g.eng)
		if id, ok := g.eng.ActivePair(); ok {
			snap.ActivePair = id
		}
	}
	return snap
}
