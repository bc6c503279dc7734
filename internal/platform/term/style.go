// Package term draws the game to a plain terminal and reads raw key presses
// from it.
package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorCodes maps core.Color to ANSI palette indexes.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:         lipgloss.Color("1"),
	core.ColorGreen:       lipgloss.Color("2"),
	core.ColorBrightGreen: lipgloss.Color("10"),
	core.ColorGray:        lipgloss.Color("245"),
}

// Styles returns a style per color bound to r. A nil r uses the default
// lipgloss renderer.
func Styles(r *lipgloss.Renderer) map[core.Color]lipgloss.Style {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: r.NewStyle(),
	}
	for c, code := range colorCodes {
		styles[c] = r.NewStyle().Foreground(code)
	}
	return styles
}

// Compose converts a Screen buffer to text, one line per row joined by sep.
// Adjacent cells of the same color share one styled run, trailing blanks are
// dropped, and a nil styles map yields plain text.
func Compose(s *core.Screen, styles map[core.Color]lipgloss.Style, sep string) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height()*len(sep))

	for y := range s.Height() {
		if y > 0 {
			sb.WriteString(sep)
		}

		end := s.Width()
		for end > 0 {
			if c := s.GetCell(end-1, y); c.Rune != ' ' || c.Color != core.ColorDefault {
				break
			}
			end--
		}

		x := 0
		for x < end {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < end {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[color]
			if !ok || color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
