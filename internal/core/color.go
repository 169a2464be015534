package core

// Color represents a foreground color for a screen cell.
// Uses ANSI color codes for terminal compatibility.
type Color uint8

// Predefined colors for board pieces and HUD elements.
const (
	ColorDefault Color = iota
	ColorBlue
	ColorRed
	ColorGreen
	ColorWhite
	ColorYellow
	ColorGray
)
