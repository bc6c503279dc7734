package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DefaultFill is drawn in place of empty cells on the bottom board row so the
// lower border stays visible.
const DefaultFill = '_'

// scoreWidth leaves room for the score line on very narrow boards.
const scoreWidth = 16

// FrameSize returns the screen dimensions needed to draw a rows x cols board:
// a score line, a top border, one line per row, and a side border on each side.
func FrameSize(rows, cols int) (width, height int) {
	return max(cols+2, scoreWidth), rows + 2
}

// cellColors maps cell kinds to display colors.
var cellColors = map[Kind]core.Color{
	KindEmpty: core.ColorDefault,
	KindFood:  core.ColorRed,
	KindBody:  core.ColorGreen,
	KindHead:  core.ColorBrightGreen,
}

// Draw renders the snapshot into dst, which must be at least FrameSize.
//
//	SCORE: 3
//	____________
//	|    @     |
//	|  #00     |
//	|__________|
func (s Snapshot) Draw(dst *core.Screen, fill rune) {
	dst.Clear()

	rows, cols := s.Grid.Rows(), s.Grid.Cols()
	dst.DrawText(0, 0, fmt.Sprintf("SCORE: %d", s.Score))
	dst.DrawHLine(0, 1, cols+2, '_')

	for row := 0; row < rows; row++ {
		y := row + 2
		dst.SetColored(0, y, '|', core.ColorGray)
		dst.SetColored(cols+1, y, '|', core.ColorGray)
		for col := 0; col < cols; col++ {
			cell := s.Grid.At(Point{Row: row, Col: col})
			glyph := cell.Glyph()
			color := cellColors[cell.Kind()]
			if cell.IsEmpty() && row == rows-1 {
				glyph = fill
				color = core.ColorGray
			}
			dst.SetColored(col+1, y, glyph, color)
		}
	}
}
