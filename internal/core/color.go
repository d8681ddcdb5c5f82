package core

// Color represents a foreground color for a board cell.
// The renderer maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for board contents.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)
