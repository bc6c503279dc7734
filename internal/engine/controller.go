package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// KeyMap maps raw key runes to actions.
type KeyMap map[rune]core.Action

// DefaultKeyMap returns the vi-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		'k': core.ActionUp,
		'j': core.ActionDown,
		'h': core.ActionLeft,
		'l': core.ActionRight,
		'q': core.ActionQuit,
	}
}

// Controller turns key presses into game commands.
type Controller struct {
	game     *snake.Game
	input    InputSource
	keys     KeyMap
	renderer Renderer // may be nil
	logger   *log.Logger
}

// NewController creates a controller. The renderer may be nil when the caller
// redraws on its own after Apply; a nil keys uses DefaultKeyMap.
func NewController(game *snake.Game, input InputSource, keys KeyMap, renderer Renderer, logger *log.Logger) *Controller {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &Controller{
		game:     game,
		input:    input,
		keys:     keys,
		renderer: renderer,
		logger:   orDiscard(logger),
	}
}

// Run reads keys until the game finishes, the input closes or ctx is cancelled.
// A closed input counts as a quit.
func (c *Controller) Run(ctx context.Context) error {
	for !c.game.Finished() {
		r, err := c.input.ReadKey(ctx)
		switch {
		case err == nil:
		case errors.Is(err, ErrNoInput):
			continue
		case errors.Is(err, io.EOF):
			c.logger.Debug("input closed")
			c.game.Quit()
			return nil
		case ctx.Err() != nil:
			return nil
		default:
			return fmt.Errorf("engine: read key: %w", err)
		}

		if _, err := c.Handle(r); err != nil {
			return err
		}
	}
	return nil
}

// Handle applies the action bound to r. Unbound keys are ignored.
func (c *Controller) Handle(r rune) (stop bool, err error) {
	action, ok := c.keys[r]
	if !ok {
		return false, nil
	}
	return c.Apply(action)
}

// Apply performs an action against the game. It reports stop once the game
// has ended, either by quitting or by a turn that collided.
func (c *Controller) Apply(action core.Action) (stop bool, err error) {
	if action == core.ActionQuit {
		c.game.Quit()
		return true, nil
	}

	if !action.IsDirection() {
		return false, nil
	}
	d, _ := snake.DirectionFor(action)

	accepted, outcome := c.game.Turn(d)
	if !accepted {
		return false, nil
	}
	c.logger.Debug("turn", "heading", d, "outcome", outcome)

	if c.renderer != nil {
		if err := c.renderer.Render(c.game.Snapshot()); err != nil {
			return true, fmt.Errorf("engine: render: %w", err)
		}
	}
	return c.game.Finished(), nil
}
