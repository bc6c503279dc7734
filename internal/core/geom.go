// Package core provides fundamental types and utilities shared by the game
// and its front-ends. It contains no terminal or Bubble Tea dependencies to
// keep game logic pure and testable.
package core

// Wrap maps v into [0, n) using Euclidean modulo, so negative values wrap
// around to the far edge. n must be positive.
func Wrap(v, n int) int {
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}
