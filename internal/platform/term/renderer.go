package term

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// RendererOptions configures a Renderer.
type RendererOptions struct {
	Fill       rune // bottom-row fill, snake.DefaultFill when zero
	Color      bool
	HideCursor bool
}

// Renderer redraws the whole frame on every call. The terminal is in raw
// mode, so lines end in "\r\n".
type Renderer struct {
	mu     sync.Mutex
	w      io.Writer
	out    *termenv.Output
	fill   rune
	styles map[core.Color]lipgloss.Style
	screen *core.Screen
	hidden bool
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer, opts RendererOptions) *Renderer {
	r := &Renderer{
		w:    w,
		out:  termenv.NewOutput(w),
		fill: opts.Fill,
	}
	if r.fill == 0 {
		r.fill = snake.DefaultFill
	}
	if opts.Color {
		lr := lipgloss.NewRenderer(w)
		lr.SetColorProfile(termenv.ANSI256)
		r.styles = Styles(lr)
	}
	if opts.HideCursor {
		r.out.HideCursor()
		r.hidden = true
	}
	return r
}

// Render clears the terminal and draws snap.
func (r *Renderer) Render(snap snake.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, h := snake.FrameSize(snap.Grid.Rows(), snap.Grid.Cols())
	if r.screen == nil || r.screen.Width() != w || r.screen.Height() != h {
		r.screen = core.NewScreen(w, h)
	}
	snap.Draw(r.screen, r.fill)

	r.out.ClearScreen()
	if _, err := io.WriteString(r.w, Compose(r.screen, r.styles, "\r\n")+"\r\n"); err != nil {
		return fmt.Errorf("term: write frame: %w", err)
	}
	return nil
}

// Close shows the cursor again if it was hidden.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hidden {
		r.out.ShowCursor()
		r.hidden = false
	}
	return nil
}
