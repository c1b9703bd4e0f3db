package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI colors by the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// NumberColor returns the display color for an uncovered cell with the
// given adjacent-mine count, following the classic minesweeper palette.
func NumberColor(neighbors int) Color {
	switch neighbors {
	case 1:
		return ColorBlue
	case 2:
		return ColorGreen
	case 3:
		return ColorRed
	case 4:
		return ColorBrightBlue
	case 5:
		return ColorMagenta
	case 6:
		return ColorCyan
	case 7:
		return ColorYellow
	case 8:
		return ColorBrightRed
	default:
		return ColorDefault
	}
}
