package snake

// Kind is the occupancy of a grid cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindFood
	KindBody
	KindHead
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindFood:
		return "food"
	case KindBody:
		return "body"
	case KindHead:
		return "head"
	default:
		return "unknown"
	}
}

// Cell is the state of one grid position. Only body and head cells carry a
// heading; the zero value is an empty cell.
type Cell struct {
	kind    Kind
	heading Direction
}

// Empty returns an unoccupied cell.
func Empty() Cell { return Cell{} }

// Food returns a cell holding food.
func Food() Cell { return Cell{kind: KindFood} }

// Body returns a snake body segment moving toward d.
func Body(d Direction) Cell { return Cell{kind: KindBody, heading: d} }

// Head returns the snake head moving toward d.
func Head(d Direction) Cell { return Cell{kind: KindHead, heading: d} }

// Kind returns the cell occupancy.
func (c Cell) Kind() Kind { return c.kind }

// Heading returns the direction an occupied cell is moving in.
// Returns false for empty and food cells.
func (c Cell) Heading() (Direction, bool) {
	if !c.IsOccupied() {
		return 0, false
	}
	return c.heading, true
}

func (c Cell) IsEmpty() bool    { return c.kind == KindEmpty }
func (c Cell) IsFood() bool     { return c.kind == KindFood }
func (c Cell) IsBody() bool     { return c.kind == KindBody }
func (c Cell) IsHead() bool     { return c.kind == KindHead }
func (c Cell) IsOccupied() bool { return c.kind == KindBody || c.kind == KindHead }

// Glyph returns the character used to draw the cell.
func (c Cell) Glyph() rune {
	switch c.kind {
	case KindBody:
		return GlyphBody
	case KindHead:
		return GlyphHead
	case KindFood:
		return GlyphFood
	default:
		return GlyphEmpty
	}
}
