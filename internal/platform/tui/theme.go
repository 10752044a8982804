package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flow/internal/core"
	"github.com/vovakirdan/tui-flow/internal/games/flow/engine"
)

// FlowTheme contains all configurable visual styles.
type FlowTheme struct {
	// Screen colors, indexed by core.Color
	Palette map[core.Color]lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuHint        lipgloss.Style

	// History styles
	HistoryTitle  lipgloss.Style
	HistoryBorder lipgloss.Color
	HistoryStats  lipgloss.Style
	HistoryEmpty  lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
}

// basePalette holds the non-pair screen colors shared by every theme.
func basePalette() map[core.Color]lipgloss.Style {
	return map[core.Color]lipgloss.Style{
		core.ColorDefault:     lipgloss.NewStyle(),
		core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorDarkGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	}
}

// DefaultFlowTheme returns the default theme. Pair colors use the
// puzzle's web palette; lipgloss degrades them on limited terminals.
func DefaultFlowTheme() FlowTheme {
	palette := basePalette()
	for c := engine.Color(0); c < engine.ColorCount; c++ {
		palette[core.ColorRed+core.Color(c)] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}

	return FlowTheme{
		Palette: palette,

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuHint:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		HistoryTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		HistoryBorder: lipgloss.Color("240"),
		HistoryStats:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		HistoryEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
	}
}

// ClassicFlowTheme uses the 16 ANSI colors for terminals that render
// 256-color or true-color output poorly.
func ClassicFlowTheme() FlowTheme {
	theme := DefaultFlowTheme()
	ansi := map[engine.Color]string{
		engine.ColorRed:    "9",
		engine.ColorGreen:  "10",
		engine.ColorBlue:   "12",
		engine.ColorYellow: "11",
		engine.ColorOrange: "3",
		engine.ColorPurple: "5",
		engine.ColorCyan:   "14",
		engine.ColorWhite:  "15",
		engine.ColorPink:   "13",
	}
	for c, code := range ansi {
		theme.Palette[core.ColorRed+core.Color(c)] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	theme.Palette[core.ColorGray] = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	theme.Palette[core.ColorDarkGray] = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	return theme
}

// ThemeByName returns a theme by its CLI name.
func ThemeByName(name string) (FlowTheme, bool) {
	switch name {
	case "", "default":
		return DefaultFlowTheme(), true
	case "classic":
		return ClassicFlowTheme(), true
	default:
		return DefaultFlowTheme(), false
	}
}

// Global theme variable (can be changed at runtime)
var flowTheme = DefaultFlowTheme()

// SetFlowTheme sets the global theme.
func SetFlowTheme(theme FlowTheme) {
	flowTheme = theme
}

// GetFlowTheme returns the current global theme.
func GetFlowTheme() FlowTheme {
	return flowTheme
}
