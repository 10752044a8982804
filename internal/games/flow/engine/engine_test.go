package engine_test

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-flow/internal/games/flow/engine"
)

// newLevel builds a level whose pair i has endpoints pairs[i][0] and pairs[i][1].
func newLevel(t *testing.T, size int, pairs ...[2]engine.Cell) engine.Level {
	t.Helper()
	dots := make([]engine.Dot, 0, len(pairs)*2)
	for i, p := range pairs {
		color := engine.PaletteColor(i)
		dots = append(dots,
			engine.Dot{ID: i * 2, Color: color, Pos: p[0], PairID: i},
			engine.Dot{ID: i*2 + 1, Color: color, Pos: p[1], PairID: i},
		)
	}
	ds, err := engine.NewDotSet(dots)
	if err != nil {
		t.Fatalf("NewDotSet failed: %v", err)
	}
	return engine.Level{GridSize: size, Dots: ds}
}

func pair(a, b engine.Cell) [2]engine.Cell {
	return [2]engine.Cell{a, b}
}

func mustPath(t *testing.T, e *engine.Engine, id int) engine.Path {
	t.Helper()
	p, ok := e.Path(id)
	if !ok {
		t.Fatalf("path %d not found", id)
	}
	return p
}

func assertPoints(t *testing.T, got []engine.Cell, want ...engine.Cell) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("points = %v, want %v", got, want)
	}
}

func assertValid(t *testing.T, e *engine.Engine) {
	t.Helper()
	if err := engine.ValidatePaths(e.Grid(), e.Dots(), e.Paths()); err != nil {
		t.Errorf("invalid engine state: %v", err)
	}
}

func TestNewEngineStartsEmpty(t *testing.T) {
	e := engine.NewEngine(newLevel(t, 5, pair(engine.C(0, 0), engine.C(0, 2)), pair(engine.C(1, 0), engine.C(1, 2))))

	paths := e.Paths()
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	for i, p := range paths {
		if p.ID != i {
			t.Errorf("path %d has id %d", i, p.ID)
		}
		if p.Color != engine.PaletteColor(i) {
			t.Errorf("path %d color = %s, want %s", i, p.Color, engine.PaletteColor(i))
		}
		if p.State() != engine.PathEmpty {
			t.Errorf("path %d state = %s, want empty", i, p.State())
		}
	}
	if _, ok := e.ActivePair(); ok {
		t.Error("expected no active pair")
	}
	if e.IsComplete() {
		t.Error("fresh level should not be complete")
	}
	if e.GridSize() != 5 {
		t.Errorf("GridSize = %d, want 5", e.GridSize())
	}
}

func TestStraightCompletion(t *testing.T) {
	e := engine.NewEngine(newLevel(t, 5, pair(engine.C(0, 0), engine.C(0, 2))))

	outcomes := e.Apply(engine.C(0, 0), engine.C(0, 1), engine.C(0, 2))
	want := []engine.Outcome{engine.OutcomeSelected, engine.OutcomeExtended, engine.OutcomeCompleted}
	if !reflect.DeepEqual(outcomes, want) {
		t.Errorf("outcomes = %v, want %v", outcomes, want)
	}

	p := mustPath(t, e, 0)
	assertPoints(t, p.Points, engine.C(0, 0), engine.C(0, 1), engine.C(0, 2))
	if !p.Completed {
		t.Error("expected path to be completed")
	}
	if !e.IsComplete() {
		t.Error("expected level to be complete")
	}
	if _, ok := e.ActivePair(); ok {
		t.Error("active pair should be cleared after completion")
	}
	assertValid(t, e)
}

func TestRetractOnSelfRevisit(t *testing.T) {
	e := engine.NewEngine(newLevel(t, 5, pair(engine.C(0, 0), engine.C(0, 2))))

	e.Apply(engine.C(0, 0), engine.C(1, 0), engine.C(1, 1))
	if got := e.HandleCellEvent(engine.C(1, 0)); got != engine.OutcomeRetracted {
		t.Errorf("outcome = %s, want retracted", got)
	}

	p := mustPath(t, e, 0)
	assertPoints(t, p.Points, engine.C(0, 0), engine.C(1, 0))
	if p.Completed {
		t.Error("retracted path should not be completed")
	}
	assertValid(t, e)
}

func TestRetractToStart(t *testing.T) {
	e := engine.NewEngine(newLevel(t, 5, pair(engine.C(0, 0), engine.C(4, 4))))

	e.Apply(engine.C(0, 0), engine.C(1, 0), engine.C(2, 0), engine.C(2, 1), engine.C(1, 1))
	// (1,0) is adjacent to (1,1) and already in the path.
	e.HandleCellEvent(engine.C(1, 0))
	assertPoints(t, mustPath(t, e, 0).Points, engine.C(0, 0), engine.C(1, 0))

	// Moving back onto the start dot is a no-op, not a retract.
	if got := e.HandleCellEvent(engine.C(0, 0)); got != engine.OutcomeNone {
		t.Errorf("reclicking start = %s, want none", got)
	}
	assertPoints(t, mustPath(t, e, 0).Points, engine.C(0, 0), engine.C(1, 0))
}

func TestEvictionOfOtherPath(t *testing.T) {
	e := engine.NewEngine(newLevel(t, 5,
		pair(engine.C(0, 0), engine.C(0, 2)),
		pair(engine.C(1, 0), engine.C(1, 2)),
	))

	// B draws through (1,1).
	e.Apply(engine.C(1, 0), engine.C(1, 1))
	assertPoints(t, mustPath(t, e, 1).Points, engine.C(1, 0), engine.C(1, 1))

	// A detours through (1,1).
	e.HandleCellEvent(engine.C(0, 0))
	e.HandleCellEvent(engine.C(0, 1))
	if got := e.HandleCellEvent(engine.C(1, 1)); got != engine.OutcomeEvicted {
		t.Errorf("outcome = %s, want evicted", got)
	}

	b := mustPath(t, e, 1)
	if len(b.Points) != 0 || b.Completed {
		t.Errorf("evicted path = %+v, want empty and not completed", b)
	}
	assertPoints(t, mustPath(t, e, 0).Points, engine.C(0, 0), engine.C(0, 1), engine.C(1, 1))
	if owner, ok := e.OwnerAt(engine.C(1, 1)); !ok || owner != 0 {
		t.Errorf("OwnerAt(1,1) = %d,%v, want 0,true", owner, ok)
	}
	assertValid(t, e)
}

func TestEvictionOfCompletedPath(t *testing.T) {
	e := engine.NewEngine(newLevel(t, 4,
		pair(engine.C(0, 0), engine.C(2, 0)),
		pair(engine.C(1, 1), engine.C(1, 3)),
	))

	e.Apply(engine.C(0, 0), engine.C(1, 0), engine.C(2, 0))
	if !mustPath(t, e, 0).Completed {
		t.Fatal("setup: pair 0 should be completed")
	}

	e.HandleCellEvent(engine.C(1, 1))
	if got := e.HandleCellEvent(engine.C(1, 0)); got != engine.OutcomeEvicted {
		t.Fatalf("cutting through completed path = %s, want evicted", got)
	}

	red := mustPath(t, e, 0)
	if len(red.Points) != 0 || red.Completed {
		t.Errorf("evicted path = %+v, want empty and not completed", red)
	}
	assertPoints(t, mustPath(t, e, 1).Points, engine.C(1, 1), engine.C(1, 0))
	if e.IsComplete() {
		t.Error("level should not be complete after eviction")
	}
	assertValid(t, e)
}

func TestNonAdjacentIsNoOp(t *testing.T) {
	e := engine.NewEngine(newLevel(t, 5, pair(engine.C(0, 0), engine.C(4, 4))))
	e.HandleCellEvent(engine.C(0, 0))

	before := e.Paths()
	tests := []engine.Cell{
		engine.C(2, 0), // two steps away
		engine.C(1, 1), // diagonal
		engine.C(3, 3),
	}
	for _, c := range tests {
		if got := e.HandleCellEvent(c); got != engine.OutcomeNone {
			t.Errorf("HandleCellEvent(%s) = %s, want none", c, got)
		}
	}
	if !reflect.DeepEqual(before, e.Paths()) {
		t.Error("state changed after non-adjacent events")
	}
}

func TestEventsWithoutActivePairAreNoOps(t *testing.T) {
	e := engine.NewEngine(newLevel(t, 5, pair(engine.C(0, 0), engine.C(0, 2))))

	if got := e.HandleCellEvent(engine.C(2, 2)); got != engine.OutcomeNone {
		t.Errorf("empty cell with no active pair = %s, want none", got)
	}

	e.Apply(engine.C(0, 0), engine.C(0, 1), engine.C(0, 2))
	if got := e.HandleCellEvent(engine.C(1, 2)); got != engine.OutcomeNone {
		t.Errorf("empty cell after completion = %s, want none", got)
	}
	assertPoints(t, mustPath(t, e, 0).Points, engine.C(0, 0), engine.C(0, 1), engine.C(0, 2))
}

func TestOutOfBoundsIsNoOp(t *testing.T) {
	e := engine.NewEngine(newLevel(t, 3, pair(engine.C(0, 0), engine.C(2, 2))))
	e.HandleCellEvent(engine.C(0, 0))

	for _, c := range []engine.Cell{engine.C(-1, 0), engine.C(0, -1), engine.C(3, 0), engine.C(0, 3)} {
		if got := e.HandleCellEvent(c); got != engine.OutcomeNone {
			t.Errorf("HandleCellEvent(%s) = %s, want none", c, got)
		}
	}
	assertPoints(t, mustPath(t, e, 0).Points, engine.C(0, 0))
}

func TestReclickStartIsIdempotent(t *testing.T) {
	e := engine.NewEngine(newLevel(t, 5, pair(engine.C(0, 0), engine.C(0, 2))))
	e.HandleCellEvent(engine.C(0, 0))

	before := e.Paths()
	activeBefore, _ := e.ActivePair()
	if got := e.HandleCellEvent(engine.C(0, 0)); got != engine.OutcomeNone {
		t.Errorf("reclick start = %s, want none", got)
	}
	if !reflect.DeepEqual(before, e.Paths()) {
		t.Error("reclicking start changed paths")
	}
	if active, ok := e.ActivePair(); !ok || active != activeBefore {
		t.Error("reclicking start changed active pair")
	}
}

func TestStartFromEitherEndpoint(t *testing.T) {
	e := engine.NewEngine(newLevel(t, 5, pair(engine.C(0, 0), engine.C(0, 2))))

	e.Apply(engine.C(0, 2), engine.C(0, 1), engine.C(0, 0))
	p := mustPath(t, e, 0)
	assertPoints(t, p.Points, engine.C(0, 2), engine.C(0, 1), engine.C(0, 0))
	if !p.Completed {
		t.Error("expected completion from the second endpoint")
	}
	assertValid(t, e)
}

func TestPartnerDotMustBeAdjacent(t *testing.T) {
	e := engine.NewEngine(newLevel(t, 5, pair(engine.C(0, 0), engine.C(0, 3))))

	e.Apply(engine.C(0, 0), engine.C(0, 1))
	if got := e.HandleCellEvent(engine.C(0, 3)); got != engine.OutcomeNone {
		t.Errorf("non-adjacent partner = %s, want none", got)
	}
	p := mustPath(t, e, 0)
	if p.Completed {
		t.Error("path should not complete from a distance")
	}
	if active, ok := e.ActivePair(); !ok || active != 0 {
		t.Error("pair 0 should remain active")
	}
}

func TestSwitchingPairsKeepsPartialPrefix(t *testing.T) {
	e := engine.NewEngine(newLevel(t, 5,
		pair(engine.C(0, 0), engine.C(0, 4)),
		pair(engine.C(4, 0), engine.C(4, 4)),
	))

	e.Apply(engine.C(0, 0), engine.C(0, 1), engine.C(0, 2))
	if got := e.HandleCellEvent(engine.C(4, 0)); got != engine.OutcomeSelected {
		t.Fatalf("switch = %s, want selected", got)
	}

	assertPoints(t, mustPath(t, e, 0).Points, engine.C(0, 0), engine.C(0, 1), engine.C(0, 2))
	assertPoints(t, mustPath(t, e, 1).Points, engine.C(4, 0))
	if active, ok := e.ActivePair(); !ok || active != 1 {
		t.Errorf("active = %d,%v, want 1,true", active, ok)
	}

	// The abandoned prefix is frozen: extending next to it does nothing for pair 0.
	e.HandleCellEvent(engine.C(4, 1))
	assertPoints(t, mustPath(t, e, 0).Points, engine.C(0, 0), engine.C(0, 1), engine.C(0, 2))
}

func TestReselectingResetsPath(t *testing.T) {
	e := engine.NewEngine(newLevel(t, 5, pair(engine.C(0, 0), engine.C(0, 2))))

	e.Apply(engine.C(0, 0), engine.C(0, 1), engine.C(0, 2))
	if got := e.HandleCellEvent(engine.C(0, 2)); got != engine.OutcomeSelected {
		t.Fatalf("clicking a completed path's dot = %s, want selected", got)
	}
	p := mustPath(t, e, 0)
	assertPoints(t, p.Points, engine.C(0, 2))
	if p.Completed {
		t.Error("reselected path should not be completed")
	}
	if e.IsComplete() {
		t.Error("level should no longer be complete")
	}
}

func TestRestartClearsPathsKeepsDots(t *testing.T) {
	level := newLevel(t, 5,
		pair(engine.C(0, 0), engine.C(0, 2)),
		pair(engine.C(1, 0), engine.C(1, 2)),
	)
	e := engine.NewEngine(level)
	e.Apply(engine.C(0, 0), engine.C(0, 1), engine.C(0, 2), engine.C(1, 0))

	e.Restart()

	for _, p := range e.Paths() {
		if p.State() != engine.PathEmpty {
			t.Errorf("path %d state = %s after restart", p.ID, p.State())
		}
	}
	if _, ok := e.ActivePair(); ok {
		t.Error("restart should clear the active pair")
	}
	if !reflect.DeepEqual(e.Dots().Dots(), level.Dots.Dots()) {
		t.Error("restart should keep dots")
	}
}

func TestPathsReturnsCopy(t *testing.T) {
	e := engine.NewEngine(newLevel(t, 5, pair(engine.C(0, 0), engine.C(0, 2))))
	e.Apply(engine.C(0, 0), engine.C(0, 1))

	paths := e.Paths()
	paths[0].Points[1] = engine.C(3, 3)
	paths[0].Completed = true

	p := mustPath(t, e, 0)
	assertPoints(t, p.Points, engine.C(0, 0), engine.C(0, 1))
	if p.Completed {
		t.Error("mutating a snapshot leaked into engine state")
	}
}

func TestRandomWalkKeepsInvariants(t *testing.T) {
	e := engine.NewEngine(newLevel(t, 4,
		pair(engine.C(0, 0), engine.C(3, 3)),
		pair(engine.C(3, 0), engine.C(0, 3)),
		pair(engine.C(1, 1), engine.C(2, 2)),
	))

	// Deterministic pseudo-random sweep of clicks and drags.
	x, y := 0, 0
	for i := 0; i < 500; i++ {
		x = (x*7 + i + 3) % 5
		y = (y*5 + i*3 + 1) % 5
		e.HandleCellEvent(engine.C(x, y))
		if err := engine.ValidatePaths(e.Grid(), e.Dots(), e.Paths()); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

func TestIsLevelComplete(t *testing.T) {
	done := engine.Path{ID: 0, Points: []engine.Cell{engine.C(0, 0)}, Completed: true}
	open := engine.Path{ID: 1, Points: []engine.Cell{engine.C(1, 0)}}

	tests := []struct {
		name  string
		paths []engine.Path
		want  bool
	}{
		{"nil", nil, false},
		{"empty", []engine.Path{}, false},
		{"all completed", []engine.Path{done, done}, true},
		{"one open", []engine.Path{done, open}, false},
		{"none completed", []engine.Path{open}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.IsLevelComplete(tt.paths); got != tt.want {
				t.Errorf("IsLevelComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOutcomeChanged(t *testing.T) {
	if engine.OutcomeNone.Changed() {
		t.Error("OutcomeNone should not report a change")
	}
	for _, o := range []engine.Outcome{
		engine.OutcomeSelected, engine.OutcomeCompleted, engine.OutcomeExtended,
		engine.OutcomeRetracted, engine.OutcomeEvicted,
	} {
		if !o.Changed() {
			t.Errorf("%s should report a change", o)
		}
	}
}
