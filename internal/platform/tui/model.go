package tui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/term"
)

// Options configures the Bubble Tea front-end.
type Options struct {
	Keys   config.KeysConfig
	Fill   rune
	Color  bool
	Logger *log.Logger

	// Input and Output override the terminal, for tests.
	Input  io.Reader
	Output io.Writer
}

// Model is the Bubble Tea model for a running snake game.
type Model struct {
	game       *snake.Game
	controller *engine.Controller
	keys       KeyMap
	help       help.Model
	screen     *core.Screen
	styles     map[core.Color]lipgloss.Style
	fill       rune
	snap       snake.Snapshot
	err        error
}

// NewModel creates a model for game. Accepted turns are redrawn by the model
// itself, so the controller gets no renderer.
func NewModel(game *snake.Game, opts Options) Model {
	snap := game.Snapshot()
	w, h := snake.FrameSize(snap.Grid.Rows(), snap.Grid.Cols())

	keys := opts.Keys
	if len(keys.Up) == 0 {
		keys = config.DefaultSnakeConfig().Keys
	}
	fill := opts.Fill
	if fill == 0 {
		fill = snake.DefaultFill
	}

	m := Model{
		game:       game,
		controller: engine.NewController(game, nil, nil, nil, opts.Logger),
		keys:       NewKeyMap(keys),
		help:       help.New(),
		screen:     core.NewScreen(w, h),
		fill:       fill,
		snap:       snap,
	}
	if opts.Color {
		m.styles = term.Styles(nil)
	}
	return m
}

// Init implements tea.Model. Ticks come from the scheduler, not from here.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case FrameMsg:
		m.snap = snake.Snapshot(msg)
		if m.snap.Status != snake.StatusRunning {
			return m, tea.Quit
		}

	case DoneMsg:
		m.snap = m.game.Snapshot()
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	stop, err := m.controller.Apply(action)
	m.snap = m.game.Snapshot()
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	if stop {
		return m, tea.Quit
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	board := RenderSnapshot(m.screen, m.snap, m.fill, m.styles)
	footer := m.help.View(m.keys)
	if status := statusLine(m.snap); status != "" {
		footer = status
	}
	return lipgloss.JoinVertical(lipgloss.Left, board, footerStyle.Render(footer))
}

// Snapshot returns the last frame the model has seen.
func (m Model) Snapshot() snake.Snapshot {
	return m.snap
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run plays game on the alternate screen until it ends or ctx is cancelled.
func Run(ctx context.Context, game *snake.Game, opts Options) (engine.Result, error) {
	teaOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil || opts.Output != nil {
		teaOpts = append(teaOpts, tea.WithInput(opts.Input), tea.WithOutput(opts.Output))
	} else {
		teaOpts = append(teaOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(NewModel(game, opts), teaOpts...)
	scheduler := engine.NewScheduler(game, sender(p), opts.Logger)

	g, gctx := errgroup.WithContext(ctx)
	gctx, cancel := context.WithCancel(gctx)
	defer cancel()

	g.Go(func() error {
		defer p.Send(DoneMsg{})
		return scheduler.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		final, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}
		if m, ok := final.(Model); ok && m.err != nil {
			return m.err
		}
		return nil
	})

	err := g.Wait()
	return engine.Collect(game), err
}
