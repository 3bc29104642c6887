// Package core provides engine-neutral types shared by renderers: a coloured
// screen buffer, semantic input actions and runtime timing. It has no
// Bubble Tea dependency so board drawing stays testable.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
