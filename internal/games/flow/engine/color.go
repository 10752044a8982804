package engine

import "strings"

// Color identifies a pair color from the fixed palette.
// Pairs take colors in palette order: pair 0 is red, pair 1 green, and so on.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorOrange
	ColorPurple
	ColorCyan
	ColorWhite
	ColorPink
	ColorCount // Sentinel value for iteration
)

// PaletteSize is the number of distinct pair colors.
const PaletteSize = int(ColorCount)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorOrange:
		return "orange"
	case ColorPurple:
		return "purple"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorPink:
		return "pink"
	default:
		return "unknown"
	}
}

// Hex returns the web color used for this palette entry.
func (c Color) Hex() string {
	switch c {
	case ColorRed:
		return "#ff3333"
	case ColorGreen:
		return "#33cc33"
	case ColorBlue:
		return "#3366ff"
	case ColorYellow:
		return "#ffcc00"
	case ColorOrange:
		return "#ff9900"
	case ColorPurple:
		return "#9933cc"
	case ColorCyan:
		return "#00cccc"
	case ColorWhite:
		return "#ffffff"
	case ColorPink:
		return "#ff66cc"
	default:
		return "#808080"
	}
}

// Char returns a single character representation of the color for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorOrange:
		return 'O'
	case ColorPurple:
		return 'P'
	case ColorCyan:
		return 'C'
	case ColorWhite:
		return 'W'
	case ColorPink:
		return 'K'
	default:
		return '?'
	}
}

// LowerChar returns the lowercase character used for path cells.
func (c Color) LowerChar() rune {
	ch := c.Char()
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}

// ParseColor converts a color name or letter to a Color.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c := Color(0); c < ColorCount; c++ {
		if s == c.String() || (len(s) == 1 && rune(s[0]) == c.LowerChar()) {
			return c, true
		}
	}
	return ColorRed, false
}

// PaletteColor returns the color assigned to the pair at the given index.
func PaletteColor(pairIndex int) Color {
	if pairIndex < 0 {
		return ColorRed
	}
	return Color(pairIndex % PaletteSize)
}
