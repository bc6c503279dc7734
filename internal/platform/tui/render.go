package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/term"
)

var (
	footerStyle = lipgloss.NewStyle().MarginTop(1)
	statusStyle = lipgloss.NewStyle().Bold(true)
)

// RenderSnapshot draws snap onto screen and returns it as styled text.
// A nil styles map renders plain text.
func RenderSnapshot(screen *core.Screen, snap snake.Snapshot, fill rune, styles map[core.Color]lipgloss.Style) string {
	snap.Draw(screen, fill)
	return term.Compose(screen, styles, "\n")
}

// statusLine describes a finished game.
func statusLine(snap snake.Snapshot) string {
	switch snap.Status {
	case snake.StatusGameOver:
		return statusStyle.Render(fmt.Sprintf("GAME OVER (%s)", snap.Reason))
	case snake.StatusQuit:
		return statusStyle.Render("QUIT")
	}
	return ""
}
