package flow

import (
	"fmt"

	"github.com/vovakirdan/tui-flow/internal/core"
	"github.com/vovakirdan/tui-flow/internal/games/flow/engine"
)

// Visual characters for rendering
const (
	DotChar      = '●'
	PathChar     = '█'
	DraftChar    = '▓' // path not yet completed
	BandChar     = '░' // preview from the active path to the cursor
	EmptyChar    = '·'
	RowMarker    = '▶'
	ColumnMarker = '▼'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, core.ColorBrightWhite, "Window too small", "Resize to continue")
		return
	}
	if g.eng == nil {
		return
	}

	g.renderBoard(dst)
	g.renderFooter(dst)

	switch {
	case g.completed:
		g.renderOverlay(dst, core.ColorGreen,
			"Level complete!",
			fmt.Sprintf("Time: %ds", int(g.elapsed.Seconds())),
			"N/Enter: next level")
	case g.noticeLeft > 0:
		g.renderOverlay(dst, core.ColorRed, "This level is designed to be unsolvable!")
	case g.hintLeft > 0:
		g.renderOverlay(dst, core.ColorBrightWhite, g.hintText())
	}
}

func (g *Game) hintText() string {
	if g.mode == engine.ModeImpossible {
		return "This level may have no solution!"
	}
	return "Connect same colors without overlapping paths!"
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := " " + g.Title()
	if g.eng != nil {
		hud += fmt.Sprintf(" | Level %d | Grid %dx%d | Pairs %d/%d | Time %ds | Restarts %d",
			g.number, g.level.GridSize, g.level.GridSize,
			g.eng.CompletedCount(), g.level.PairCount(),
			int(g.elapsed.Seconds()), g.attempts)
	}
	dst.DrawTextWithColor(0, 0, hud, core.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 1, '─', core.ColorGray)
	}
}

// renderFooter draws the mode blurb and the controls.
func (g *Game) renderFooter(dst *core.Screen) {
	h := dst.Height()

	blurb := " Connect every pair of matching colors without crossing paths."
	if g.mode == engine.ModeImpossible {
		blurb = " This mode is designed to be unwinnable. Challenge yourself!"
	}
	dst.DrawTextWithColor(0, h-2, blurb, core.ColorGray)
	dst.DrawTextWithColor(0, h-1,
		" Mouse/Arrows: draw | Space: select | H: hint | R: restart | Esc: menu | Q: quit",
		core.ColorDarkGray)
}

// renderBoard draws dots, paths and the cursor markers.
func (g *Game) renderBoard(dst *core.Screen) {
	box := g.layout.Bounds()
	dst.DrawBoxWithColor(core.NewRect(box.X-1, box.Y-1, box.W+2, box.H+2), core.ColorGray)

	owners := make(map[engine.Cell]engine.Path)
	for _, p := range g.eng.Paths() {
		for _, pt := range p.Points {
			owners[pt] = p
		}
	}

	for _, c := range g.eng.Grid().Cells() {
		x, y := g.layout.Origin(c.X, c.Y)
		p, onPath := owners[c]
		d, isDot := g.eng.Dots().DotAt(c)

		switch {
		case isDot:
			g.fillCell(dst, x, y, ' ', core.ColorDefault)
			cx, cy := x+g.layout.CellW/2, y+g.layout.CellH/2
			color := coreColor(d.Color)
			if onPath && p.Completed {
				g.fillCell(dst, x, y, PathChar, color)
				color = core.ColorBrightWhite
			}
			dst.SetWithColor(cx, cy, DotChar, color)
		case onPath:
			ch := DraftChar
			if p.Completed {
				ch = PathChar
			}
			g.fillCell(dst, x, y, ch, coreColor(p.Color))
		default:
			g.fillCell(dst, x, y, ' ', core.ColorDefault)
			dst.SetWithColor(x+g.layout.CellW/2, y+g.layout.CellH/2, EmptyChar, core.ColorDarkGray)
		}
	}

	if p, ok := g.eng.ActivePath(); ok {
		for _, c := range g.bandCells() {
			x, y := g.layout.Origin(c.X, c.Y)
			g.fillCell(dst, x, y, BandChar, coreColor(p.Color))
		}
	}

	// Cursor markers sit outside the frame so they never hide a cell.
	markColor := core.ColorBrightWhite
	if active, ok := g.eng.ActivePair(); ok {
		if p, ok := g.eng.Path(active); ok {
			markColor = coreColor(p.Color)
		}
	}
	cx, cy := g.layout.Origin(g.cursor.X, g.cursor.Y)
	dst.SetWithColor(box.X-2, cy+g.layout.CellH/2, RowMarker, markColor)
	dst.SetWithColor(cx+g.layout.CellW/2, box.Y-2, ColumnMarker, markColor)
}

// bandCells returns the free cells between the active path's last point
// and the cursor, walking horizontally first like a drag does. It is
// only a preview and never touches the engine.
func (g *Game) bandCells() []engine.Cell {
	p, ok := g.eng.ActivePath()
	if !ok || p.Completed {
		return nil
	}
	last, ok := p.Last()
	if !ok || last == g.cursor {
		return nil
	}

	var cells []engine.Cell
	at := last
	for at != g.cursor {
		switch {
		case at.X < g.cursor.X:
			at = at.Add(1, 0)
		case at.X > g.cursor.X:
			at = at.Add(-1, 0)
		case at.Y < g.cursor.Y:
			at = at.Add(0, 1)
		default:
			at = at.Add(0, -1)
		}
		if _, isDot := g.eng.Dots().DotAt(at); isDot {
			continue
		}
		if _, owned := g.eng.OwnerAt(at); owned {
			continue
		}
		cells = append(cells, at)
	}
	return cells
}

func (g *Game) fillCell(dst *core.Screen, x, y int, ch rune, color core.Color) {
	dst.DrawRectWithColor(core.NewRect(x, y, g.layout.CellW, g.layout.CellH), ch, color)
}

// renderOverlay draws a centered box with one line per message.
func (g *Game) renderOverlay(dst *core.Screen, color core.Color, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = core.Max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := 2*len(lines) + 1
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxWithColor(box, color)
	for i, l := range lines {
		dst.DrawTextCenteredWithColor(box.Y+1+2*i, l, color)
	}
}

// coreColor maps a pair color to a screen color. Both palettes share order.
func coreColor(c engine.Color) core.Color {
	if c >= engine.ColorCount {
		return core.ColorDefault
	}
	return core.ColorRed + core.Color(c)
}
