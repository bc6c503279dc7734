// Package engine drives a snake game in real time: a scheduler advances it on
// a timer while a controller feeds it player input.
package engine

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrNoInput is returned by an InputSource when no key arrived within its
// poll window.
var ErrNoInput = errors.New("engine: no input")

// InputSource yields key presses one rune at a time.
// ReadKey returns ErrNoInput when nothing arrived before its poll timeout and
// io.EOF when the input is closed.
type InputSource interface {
	ReadKey(ctx context.Context) (rune, error)
}

// Renderer draws a frame of the game.
type Renderer interface {
	Render(snap snake.Snapshot) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(snake.Snapshot) error

// Render calls f(snap).
func (f RendererFunc) Render(snap snake.Snapshot) error { return f(snap) }

func orDiscard(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}
	return log.New(io.Discard)
}
