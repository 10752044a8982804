package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Colors available to games. The first nine after ColorDefault match the
// pair palette of the puzzle.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorOrange
	ColorPurple
	ColorCyan
	ColorWhite
	ColorPink
	ColorGray
	ColorDarkGray
	ColorBrightWhite
)
