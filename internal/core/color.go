package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
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

// tilePalette assigns a color per tile exponent: 2, 4, 8, ... 2048.
var tilePalette = []Color{
	ColorWhite,
	ColorBrightWhite,
	ColorYellow,
	ColorOrange,
	ColorBrightRed,
	ColorRed,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorGreen,
	ColorBrightCyan,
	ColorBrightMagenta,
}

// TileColor returns the color used to draw a tile of the given value.
// Values past 2048 share the last palette entry.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorGray
	}
	exp := 0
	for v := value; v > 2; v >>= 1 {
		exp++
	}
	return tilePalette[Min(exp, len(tilePalette)-1)]
}
