// Package flow provides the path-connection puzzle for the platform.
// Three modes are registered: flow (easy), flow_hard and flow_impossible.
package flow

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flow/internal/config"
	"github.com/vovakirdan/tui-flow/internal/core"
	"github.com/vovakirdan/tui-flow/internal/games/flow/engine"
	"github.com/vovakirdan/tui-flow/internal/registry"
)

// Game implements the flow puzzle for one mode.
type Game struct {
	mode   engine.Mode
	cfg    config.FlowConfig
	rng    *rand.Rand
	gen    *engine.Generator
	eng    *engine.Engine
	level  engine.Level
	number int // current level, 1-based

	startLevel int

	// Screen dimensions
	screenW  int
	screenH  int
	tickDur  time.Duration
	layout   core.CellGrid
	tooSmall bool

	// Status
	tick      uint64
	attempts  int
	elapsed   time.Duration
	completed bool

	// Transient overlays, counted down per tick
	hintLeft   time.Duration
	noticeLeft time.Duration

	// Selection state
	cursor   engine.Cell
	dragging bool
	dragLast engine.Cell
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	for _, mode := range engine.Modes {
		mode := mode
		registry.Register(GameID(mode), func() registry.Game {
			return New(mode)
		})
	}
}

// GameID returns the registry id of a mode.
func GameID(mode engine.Mode) string {
	switch mode {
	case engine.ModeHard:
		return "flow_hard"
	case engine.ModeImpossible:
		return "flow_impossible"
	default:
		return "flow"
	}
}

// ModeFromID is the inverse of GameID.
func ModeFromID(id string) (engine.Mode, bool) {
	for _, mode := range engine.Modes {
		if GameID(mode) == id {
			return mode, true
		}
	}
	return engine.ModeEasy, false
}

// New creates a game for the given mode. Call Reset before Step.
func New(mode engine.Mode) *Game {
	return &Game{mode: mode, cfg: config.DefaultFlowConfig()}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == engine.ModeEasy {
		return "Flow"
	}
	return "Flow: " + g.mode.Title()
}

// Mode returns the difficulty mode.
func (g *Game) Mode() engine.Mode {
	return g.mode
}

// SetStartLevel selects the level generated by the next Reset.
// Values below 1 start from the beginning.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = level
}

// Reset loads the configuration and generates the starting level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	flowCfg, err := config.LoadFlow(configPath)
	if err != nil {
		flowCfg = config.DefaultFlowConfig()
	}
	g.cfg = flowCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.gen = engine.NewGenerator(flowCfg.GenParams(), g.rng)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickDur = cfg.TickDuration()
	g.tick = 0

	g.number = 1
	if g.startLevel > 1 {
		g.number = g.startLevel
	}
	g.loadLevel(g.number)
}

// Resize adapts the layout to a new screen size and keeps progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.calculateLayout()
}

// loadLevel generates level n and starts it fresh.
func (g *Game) loadLevel(n int) {
	g.number = n
	g.level = g.gen.Generate(g.mode, n)
	g.eng = engine.NewEngine(g.level)

	g.attempts = 0
	g.elapsed = 0
	g.completed = false
	g.hintLeft = 0
	g.noticeLeft = 0
	g.dragging = false

	g.cursor = engine.Cell{}
	if a, _, ok := g.level.Dots.PairEndpoints(0); ok {
		g.cursor = a.Pos
	}

	g.calculateLayout()
}

// calculateLayout picks the largest square-looking cell that fits.
// Terminal characters are about twice as tall as wide, so cells are 2k x k.
func (g *Game) calculateLayout() {
	size := g.level.GridSize
	if size <= 0 {
		g.tooSmall = true
		return
	}

	// Frame and cursor markers take two characters on each side.
	availW := g.screenW - 6
	availH := g.screenH - hudHeight - footerHeight - 4

	k := core.Min(availW/(2*size), availH/size)
	if k > maxCellScale {
		k = maxCellScale
	}
	if k < 1 {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	boardW := 2 * k * size
	boardH := k * size
	g.layout = core.CellGrid{
		X:     (g.screenW - boardW) / 2,
		Y:     hudHeight + 2 + (availH-boardH)/2,
		CellW: 2 * k,
		CellH: k,
		Size:  size,
	}
}

// Layout constants
const (
	hudHeight    = 2
	footerHeight = 2
	maxCellScale = 3
)

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.eng == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.hintLeft = countdown(g.hintLeft, g.tickDur)
	g.noticeLeft = countdown(g.noticeLeft, g.tickDur)

	if g.completed {
		if in.Has(core.ActionNext) || in.Has(core.ActionConfirm) || hasPress(in) {
			g.loadLevel(g.number + 1)
		}
		return core.StepResult{State: g.State()}
	}

	g.elapsed += g.tickDur

	// Events apply one at a time in arrival order. Input after the
	// move that completes the level is dropped.
	for _, ev := range in.Events {
		if ev.IsPointer() {
			g.handlePointer(ev.Pointer)
		} else {
			g.handleAction(ev.Action)
		}
		if g.eng.IsComplete() {
			break
		}
	}

	var cleared *core.LevelClear
	if g.eng.IsComplete() {
		g.completed = true
		g.dragging = false
		cleared = &core.LevelClear{
			GameID:   g.ID(),
			Level:    g.number,
			GridSize: g.level.GridSize,
			Pairs:    g.level.PairCount(),
			Duration: g.elapsed,
			Attempts: g.attempts,
		}
	}

	return core.StepResult{State: g.State(), Cleared: cleared}
}

// restart clears every path. Repeated restarts in impossible mode
// surface a notice that the level may be unsolvable.
func (g *Game) restart() {
	previous := g.attempts
	g.eng.Restart()
	g.attempts++
	g.dragging = false

	if g.mode == engine.ModeImpossible && previous >= g.cfg.UI.NoticeAfterAttempts {
		g.noticeLeft = seconds(g.cfg.UI.NoticeSeconds)
	}
}

// cursorMoves maps direction actions to cursor deltas.
var cursorMoves = map[core.Action]engine.Cell{
	core.ActionUp:    {X: 0, Y: -1},
	core.ActionDown:  {X: 0, Y: 1},
	core.ActionLeft:  {X: -1, Y: 0},
	core.ActionRight: {X: 1, Y: 0},
}

// handleAction applies one key action. While a pair is active each
// cursor move extends or retracts its path.
func (g *Game) handleAction(a core.Action) {
	switch a {
	case core.ActionHint:
		g.hintLeft = seconds(g.cfg.UI.HintSeconds)
	case core.ActionRestart:
		g.restart()
	case core.ActionSelect, core.ActionConfirm:
		g.eng.HandleCellEvent(g.cursor)
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		d := cursorMoves[a]
		next := g.cursor.Add(d.X, d.Y)
		if !g.eng.Grid().InBounds(next) {
			return
		}
		g.cursor = next
		if _, active := g.eng.ActivePair(); active {
			g.stepTo(next)
		}
	}
}

// handlePointer applies one mouse event.
func (g *Game) handlePointer(ev core.PointerEvent) {
	cx, cy, ok := g.layout.CellAt(ev.X, ev.Y)
	if !ok {
		if ev.Kind == core.PointerRelease {
			g.dragging = false
		}
		return
	}
	cell := engine.C(cx, cy)

	switch ev.Kind {
	case core.PointerPress:
		g.cursor = cell
		g.eng.HandleCellEvent(cell)
		g.dragging = true
		g.dragLast = cell
	case core.PointerDrag:
		g.cursor = cell
		if !g.dragging {
			g.dragging = true
			g.dragLast = cell
		}
		g.dragTo(cell)
	case core.PointerHover:
		g.cursor = cell
	case core.PointerRelease:
		g.dragging = false
	}
}

// dragTo walks from the last dragged cell to c one cell at a time so
// that fast mouse motion does not skip cells. Horizontal steps go first.
func (g *Game) dragTo(c engine.Cell) {
	if _, active := g.eng.ActivePair(); !active {
		g.dragLast = c
		return
	}

	at := g.dragLast
	for at != c {
		switch {
		case at.X < c.X:
			at = at.Add(1, 0)
		case at.X > c.X:
			at = at.Add(-1, 0)
		case at.Y < c.Y:
			at = at.Add(0, 1)
		default:
			at = at.Add(0, -1)
		}
		if !g.stepTo(at) {
			break
		}
	}
	g.dragLast = c
}

// stepTo forwards a movement step to the engine. Entering a dot of
// another pair would switch the selection mid-stroke, so such steps are
// dropped. Reports whether the step was forwarded.
func (g *Game) stepTo(c engine.Cell) bool {
	active, ok := g.eng.ActivePair()
	if !ok {
		return false
	}
	if d, isDot := g.eng.Dots().DotAt(c); isDot && d.PairID != active {
		return false
	}
	g.eng.HandleCellEvent(c)
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Level:     g.number,
		Attempts:  g.attempts,
		Elapsed:   g.elapsed,
		Completed: g.completed,
	}
}

// Level returns the level being played.
func (g *Game) Level() engine.Level {
	return g.level
}

func hasPress(in core.InputFrame) bool {
	for _, ev := range in.Pointers() {
		if ev.Kind == core.PointerPress {
			return true
		}
	}
	return false
}

func countdown(left, by time.Duration) time.Duration {
	if left <= by {
		return 0
	}
	return left - by
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
