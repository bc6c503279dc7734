package engine

import (
	"context"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Result summarizes a finished session.
type Result struct {
	Score  int
	Status snake.Status
	Reason snake.Reason
	Final  snake.Snapshot
}

// Session runs a scheduler and a controller against one game.
type Session struct {
	game       *snake.Game
	scheduler  *Scheduler
	controller *Controller
	logger     *log.Logger
}

// NewSession wires both units to game. The same renderer draws ticks and
// accepted turns.
func NewSession(game *snake.Game, input InputSource, keys KeyMap, renderer Renderer, logger *log.Logger) *Session {
	logger = orDiscard(logger)
	return &Session{
		game:       game,
		scheduler:  NewScheduler(game, renderer, logger),
		controller: NewController(game, input, keys, renderer, logger),
		logger:     logger,
	}
}

// Run plays until the game ends or ctx is cancelled. Whichever unit returns
// first stops the other.
func (s *Session) Run(ctx context.Context) (Result, error) {
	g, gctx := errgroup.WithContext(ctx)
	gctx, cancel := context.WithCancel(gctx)
	defer cancel()

	g.Go(func() error {
		defer cancel()
		return s.scheduler.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		return s.controller.Run(gctx)
	})

	err := g.Wait()
	res := Collect(s.game)
	s.logger.Debug("session finished", "status", res.Status, "reason", res.Reason, "score", res.Score)
	return res, err
}

// Collect reads the final result from a game.
func Collect(game *snake.Game) Result {
	snap := game.Snapshot()
	return Result{
		Score:  snap.Score,
		Status: snap.Status,
		Reason: snap.Reason,
		Final:  snap,
	}
}
