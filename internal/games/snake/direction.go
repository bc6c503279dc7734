package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the heading of a snake segment.
type Direction int

const (
	DirLeft Direction = iota
	DirDown
	DirRight
	DirUp
)

// Directions lists every heading in declaration order.
var Directions = [...]Direction{DirLeft, DirDown, DirRight, DirUp}

// Opposite returns the heading pointing the other way along the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFor maps a steering action to a heading.
// Returns false for actions that do not steer.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}
