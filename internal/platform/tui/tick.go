// Package tui runs the game inside a Bubble Tea program. The program loop
// handles keys while the engine scheduler ticks alongside it and pushes
// frames in as messages.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// FrameMsg carries a snapshot taken after a scheduler tick.
type FrameMsg snake.Snapshot

// DoneMsg is sent once the scheduler stops.
type DoneMsg struct{}

// sender returns a renderer that forwards frames to p.
func sender(p *tea.Program) engine.Renderer {
	return engine.RendererFunc(func(snap snake.Snapshot) error {
		p.Send(FrameMsg(snap))
		return nil
	})
}
