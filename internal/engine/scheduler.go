package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Scheduler advances the game once per tick and renders every new frame.
// The tick interval is read again before each sleep, so speed-ups apply on
// the next tick.
type Scheduler struct {
	game     *snake.Game
	renderer Renderer
	logger   *log.Logger
}

// NewScheduler creates a scheduler. A nil logger discards.
func NewScheduler(game *snake.Game, renderer Renderer, logger *log.Logger) *Scheduler {
	return &Scheduler{game: game, renderer: renderer, logger: orDiscard(logger)}
}

// Run ticks until the game finishes or ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	for !s.game.Finished() {
		timer := time.NewTimer(s.game.Interval())
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		if s.game.Finished() {
			return nil
		}
		if err := s.step(); err != nil {
			return err
		}
	}
	return nil
}

// step performs one tick.
func (s *Scheduler) step() error {
	outcome := s.game.Advance()
	snap := s.game.Snapshot()

	switch outcome {
	case snake.OutcomeGrew:
		s.logger.Debug("food eaten", "score", snap.Score, "interval", snap.Interval, "head", snap.Head)
		if snap.Status == snake.StatusGameOver {
			s.logger.Debug("game over", "reason", snap.Reason, "score", snap.Score)
		}
	case snake.OutcomeCollided:
		s.logger.Debug("game over", "reason", snap.Reason, "score", snap.Score, "head", snap.Head)
	case snake.OutcomeNone:
		return nil
	}

	if err := s.renderer.Render(snap); err != nil {
		return fmt.Errorf("engine: render: %w", err)
	}
	return nil
}
