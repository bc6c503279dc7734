package engine

import (
	"context"
	"errors"
	"io"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// fakeInput hands out queued keys, then reports ErrNoInput (or end when set).
type fakeInput struct {
	mu   sync.Mutex
	keys []rune
	end  error
}

func (f *fakeInput) ReadKey(ctx context.Context) (rune, error) {
	f.mu.Lock()
	if len(f.keys) > 0 {
		r := f.keys[0]
		f.keys = f.keys[1:]
		f.mu.Unlock()
		return r, nil
	}
	end := f.end
	f.mu.Unlock()

	if end != nil {
		return 0, end
	}
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-time.After(time.Millisecond):
		return 0, ErrNoInput
	}
}

// fakeRenderer records every frame it is given.
type fakeRenderer struct {
	mu     sync.Mutex
	frames []snake.Snapshot
	err    error
	onDraw func(n int)
}

func (f *fakeRenderer) Render(snap snake.Snapshot) error {
	f.mu.Lock()
	f.frames = append(f.frames, snap)
	n := len(f.frames)
	f.mu.Unlock()

	if f.onDraw != nil {
		f.onDraw(n)
	}
	return f.err
}

func (f *fakeRenderer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.frames)
}

func newGame(t *testing.T, interval time.Duration) *snake.Game {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Interval = interval
	cfg.Seed = 7
	g, err := snake.New(cfg)
	if err != nil {
		t.Fatalf("snake.New: %v", err)
	}
	return g
}

// perpendicular returns an action that turns the snake off its current axis.
func perpendicular(d snake.Direction) (core.Action, snake.Direction) {
	if d == snake.DirLeft || d == snake.DirRight {
		return core.ActionUp, snake.DirUp
	}
	return core.ActionLeft, snake.DirLeft
}

func reverse(d snake.Direction) core.Action {
	switch d.Opposite() {
	case snake.DirUp:
		return core.ActionUp
	case snake.DirDown:
		return core.ActionDown
	case snake.DirLeft:
		return core.ActionLeft
	default:
		return core.ActionRight
	}
}

func TestControllerTurnAdvancesAndRenders(t *testing.T) {
	game := newGame(t, time.Hour)
	r := &fakeRenderer{}
	c := NewController(game, &fakeInput{}, nil, r, nil)

	before := game.Snapshot()
	action, want := perpendicular(before.Heading)

	stop, err := c.Apply(action)
	if err != nil || stop {
		t.Fatalf("Apply(%s) = (%v, %v), expected (false, nil)", action, stop, err)
	}
	if r.count() != 1 {
		t.Errorf("accepted turn rendered %d frames, expected 1", r.count())
	}
	if got := game.Heading(); got != want {
		t.Errorf("heading = %s, expected %s", got, want)
	}
	if got, exp := game.Head(), before.Grid.Next(before.Head, want); got != exp {
		t.Errorf("head = %v, expected %v", got, exp)
	}
}

func TestControllerRejectedTurnIsSilent(t *testing.T) {
	game := newGame(t, time.Hour)
	r := &fakeRenderer{}
	c := NewController(game, &fakeInput{}, nil, r, nil)

	before := game.Snapshot()
	for _, key := range []rune{'x', ' '} {
		if stop, err := c.Handle(key); stop || err != nil {
			t.Errorf("Handle(%q) = (%v, %v), expected (false, nil)", key, stop, err)
		}
	}
	if stop, err := c.Apply(reverse(before.Heading)); stop || err != nil {
		t.Errorf("reversal = (%v, %v), expected (false, nil)", stop, err)
	}
	if stop, err := c.Apply(core.ActionNone); stop || err != nil {
		t.Errorf("ActionNone = (%v, %v), expected (false, nil)", stop, err)
	}

	if r.count() != 0 {
		t.Errorf("rejected input rendered %d frames", r.count())
	}
	if after := game.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Error("rejected input changed the game")
	}
}

func TestControllerQuit(t *testing.T) {
	game := newGame(t, time.Hour)
	c := NewController(game, &fakeInput{}, nil, nil, nil)

	stop, err := c.Handle('q')
	if !stop || err != nil {
		t.Fatalf("Handle('q') = (%v, %v), expected (true, nil)", stop, err)
	}
	if game.Status() != snake.StatusQuit || game.Reason() != snake.ReasonQuit {
		t.Errorf("status = %s/%q, expected quit", game.Status(), game.Reason())
	}
}

func TestControllerCustomKeys(t *testing.T) {
	game := newGame(t, time.Hour)
	c := NewController(game, &fakeInput{}, KeyMap{'x': core.ActionQuit}, nil, nil)

	if stop, _ := c.Handle('q'); stop {
		t.Error("'q' should be unbound with a custom key map")
	}
	if stop, _ := c.Handle('x'); !stop {
		t.Error("'x' should quit with a custom key map")
	}
}

func TestControllerCtrlCQuits(t *testing.T) {
	game := newGame(t, time.Hour)
	keys := KeyMap(config.DefaultSnakeConfig().Keys.KeyMap())
	c := NewController(game, &fakeInput{keys: []rune{'\x03'}}, keys, nil, nil)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if game.Status() != snake.StatusQuit {
		t.Errorf("status = %s, expected quit after ctrl+c", game.Status())
	}
}

func TestControllerRenderError(t *testing.T) {
	game := newGame(t, time.Hour)
	boom := errors.New("boom")
	c := NewController(game, &fakeInput{}, nil, &fakeRenderer{err: boom}, nil)

	action, _ := perpendicular(game.Heading())
	if _, err := c.Apply(action); !errors.Is(err, boom) {
		t.Errorf("Apply error = %v, expected to wrap %v", err, boom)
	}
}

func TestControllerRunEOFQuits(t *testing.T) {
	game := newGame(t, time.Hour)
	c := NewController(game, &fakeInput{end: io.EOF}, nil, nil, nil)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if game.Status() != snake.StatusQuit {
		t.Errorf("status = %s, expected quit", game.Status())
	}
}

func TestControllerRunReadError(t *testing.T) {
	game := newGame(t, time.Hour)
	boom := errors.New("tty gone")
	c := NewController(game, &fakeInput{end: boom}, nil, nil, nil)

	if err := c.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Run error = %v, expected to wrap %v", err, boom)
	}
	if game.Finished() {
		t.Error("a read error should not end the game")
	}
}

func TestSchedulerTicksUntilFinished(t *testing.T) {
	game := newGame(t, time.Millisecond)
	r := &fakeRenderer{}
	r.onDraw = func(n int) {
		if n == 3 {
			game.Quit()
		}
	}
	s := NewScheduler(game, r, nil)

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop after the game ended")
	}
	if r.count() != 3 {
		t.Errorf("rendered %d frames, expected 3", r.count())
	}
}

func TestSchedulerStopsOnCancel(t *testing.T) {
	game := newGame(t, time.Hour)
	s := NewScheduler(game, &fakeRenderer{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Run(ctx); err != nil {
		t.Errorf("Run after cancel = %v, expected nil", err)
	}
	if game.Finished() {
		t.Error("cancelling the scheduler should not end the game")
	}
}

func TestSchedulerRenderError(t *testing.T) {
	game := newGame(t, time.Millisecond)
	boom := errors.New("boom")
	s := NewScheduler(game, &fakeRenderer{err: boom}, nil)

	if err := s.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Run error = %v, expected to wrap %v", err, boom)
	}
}

func TestSessionQuitKey(t *testing.T) {
	game := newGame(t, time.Hour)
	input := &fakeInput{keys: []rune{'x', 'q'}}
	s := NewSession(game, input, nil, &fakeRenderer{}, nil)

	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Status != snake.StatusQuit || res.Reason != snake.ReasonQuit {
		t.Errorf("result = %s/%q, expected quit", res.Status, res.Reason)
	}
	if res.Score != 0 || res.Final.Score != res.Score {
		t.Errorf("score = %d (final %d), expected 0", res.Score, res.Final.Score)
	}
}

func TestSessionCancel(t *testing.T) {
	game := newGame(t, time.Hour)
	s := NewSession(game, &fakeInput{}, nil, &fakeRenderer{}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	res, err := s.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Status != snake.StatusRunning {
		t.Errorf("status = %s, expected running after cancel", res.Status)
	}
}

func TestSessionInputErrorStopsScheduler(t *testing.T) {
	game := newGame(t, time.Hour)
	boom := errors.New("tty gone")
	s := NewSession(game, &fakeInput{end: boom}, nil, &fakeRenderer{}, nil)

	done := make(chan error, 1)
	go func() {
		_, err := s.Run(context.Background())
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, boom) {
			t.Errorf("Run error = %v, expected to wrap %v", err, boom)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("session did not stop after an input error")
	}
}
