package engine

import (
	"fmt"
	"strings"
)

// RenderLevel draws the dots of a level without any paths.
//
// Format:
//   - Dots: uppercase color letter (R/G/B/Y/O/P/C/W/K)
//   - Empty cells: '.'
func RenderLevel(level Level) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Level %d (%s) | Grid: %dx%d | Pairs: %d\n",
		level.Number, level.Mode, level.GridSize, level.GridSize, level.PairCount()))
	writeBoard(&sb, level.GridSize, level.Dots, nil)
	return sb.String()
}

// RenderASCII draws the current engine state. Path cells use the
// lowercase letter of their color; the active pair is marked in the header.
func RenderASCII(e *Engine) string {
	var sb strings.Builder

	active := "-"
	if id, ok := e.ActivePair(); ok {
		a, _, _ := e.dots.PairEndpoints(id)
		active = a.Color.String()
	}
	sb.WriteString(fmt.Sprintf("Grid: %dx%d | Completed: %d/%d | Active: %s\n",
		e.grid.Size, e.grid.Size, e.CompletedCount(), len(e.paths), active))
	writeBoard(&sb, e.grid.Size, e.dots, e.paths)
	return sb.String()
}

func writeBoard(sb *strings.Builder, size int, dots *DotSet, paths []Path) {
	owner := make(map[Cell]Color)
	for _, p := range paths {
		for _, c := range p.Points {
			owner[c] = p.Color
		}
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := C(x, y)
			if d, ok := dots.DotAt(c); ok {
				sb.WriteRune(d.Color.Char())
			} else if col, ok := owner[c]; ok {
				sb.WriteRune(col.LowerChar())
			} else {
				sb.WriteRune('.')
			}
		}
		sb.WriteString("\n")
	}
}
