package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements and player tokens.
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

// playerColors maps player colour tags to screen colours.
var playerColors = map[string]Color{
	"red":    ColorBrightRed,
	"blue":   ColorBrightBlue,
	"green":  ColorBrightGreen,
	"purple": ColorBrightMagenta,
	"orange": ColorOrange,
	"cyan":   ColorBrightCyan,
	"yellow": ColorBrightYellow,
	"white":  ColorBrightWhite,
	"gray":   ColorGray,
	"grey":   ColorGray,
}

// ParseColor maps a player colour tag to a screen colour.
// Unknown tags render in the default colour.
func ParseColor(tag string) Color {
	if c, ok := playerColors[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return c
	}
	return ColorDefault
}
