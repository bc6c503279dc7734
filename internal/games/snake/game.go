package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs used to draw the board.
const (
	GlyphEmpty = ' '
	GlyphBody  = '0'
	GlyphHead  = '#'
	GlyphFood  = '@'
)

// SpeedUp is the factor applied to the tick interval every time food is eaten.
const SpeedUp = 0.9

// ErrGridTooSmall is returned when the board cannot hold a head and a food cell.
var ErrGridTooSmall = errors.New("snake: grid needs at least two cells")

// Status is the lifecycle stage of a game.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
	StatusQuit
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game_over"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Reason explains why a game ended.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonCollision Reason = "collision"
	ReasonBoardFull Reason = "board full"
	ReasonQuit      Reason = "quit"
)

// Outcome reports what a single advance did.
type Outcome int

const (
	OutcomeNone     Outcome = iota // nothing changed
	OutcomeMoved                   // snake moved one cell
	OutcomeGrew                    // head ate food, snake is one segment longer
	OutcomeCollided                // head ran into the body, game over
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeMoved:
		return "moved"
	case OutcomeGrew:
		return "grew"
	case OutcomeCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// Game is the shared simulation state. The tick loop and the input loop both
// drive it; every mutation happens under mu.
type Game struct {
	mu       sync.RWMutex
	rng      *rand.Rand
	grid     *Grid
	head     Point // cached position of the head cell in grid
	food     Point
	score    int
	interval time.Duration
	status   Status
	reason   Reason
}

// New creates a game with a randomly placed head and food.
// A zero cfg.Seed seeds from the current time.
func New(cfg core.RuntimeConfig) (*Game, error) {
	if cfg.Rows < 1 || cfg.Cols < 1 {
		return nil, fmt.Errorf("snake: invalid grid size %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.Rows*cfg.Cols < 2 {
		return nil, ErrGridTooSmall
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	grid := NewGrid(cfg.Rows, cfg.Cols)
	head := Point{Row: rng.Intn(cfg.Rows), Col: rng.Intn(cfg.Cols)}
	headings := movingDirections(grid, head)
	grid.Set(head, Head(headings[rng.Intn(len(headings))]))

	g, err := fromGrid(grid, cfg.Interval, rng)
	if err != nil {
		return nil, err
	}
	if !g.spawnFood() {
		return nil, ErrGridTooSmall
	}
	return g, nil
}

// fromGrid wraps an existing board. The board must hold exactly one head and
// at most one food cell.
func fromGrid(grid *Grid, interval time.Duration, rng *rand.Rand) (*Game, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("snake: tick interval must be positive, got %s", interval)
	}
	heads := grid.Find(KindHead)
	if len(heads) != 1 {
		return nil, fmt.Errorf("snake: board must have exactly one head, found %d", len(heads))
	}
	g := &Game{
		rng:      rng,
		grid:     grid,
		head:     heads[0],
		interval: interval,
		status:   StatusRunning,
	}
	switch foods := grid.Find(KindFood); len(foods) {
	case 0:
	case 1:
		g.food = foods[0]
	default:
		return nil, fmt.Errorf("snake: board must have at most one food, found %d", len(foods))
	}
	return g, nil
}

// movingDirections returns the headings that actually leave p. On a board one
// cell tall (or wide) the vertical (or horizontal) steps wrap back onto p.
func movingDirections(grid *Grid, p Point) []Direction {
	out := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if grid.Next(p, d) != p {
			out = append(out, d)
		}
	}
	return out
}

// spawnFood places food on a uniformly random empty cell.
// Returns false if the board has no empty cell left.
func (g *Game) spawnFood() bool {
	empty := g.grid.Find(KindEmpty)
	if len(empty) == 0 {
		return false
	}
	g.food = empty[g.rng.Intn(len(empty))]
	g.grid.Set(g.food, Food())
	return true
}

// Advance moves the snake one step. It is a no-op once the game has ended.
func (g *Game) Advance() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.advance()
}

// Turn points the head toward d and immediately advances. Turning onto the
// current heading or its opposite, or along an axis one cell long, is rejected
// and leaves the game untouched.
func (g *Game) Turn(d Direction) (bool, Outcome) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status != StatusRunning {
		return false, OutcomeNone
	}
	current, _ := g.grid.At(g.head).Heading()
	if d == current || d == current.Opposite() || g.grid.Next(g.head, d) == g.head {
		return false, OutcomeNone
	}
	g.grid.Set(g.head, Head(d))
	return true, g.advance()
}

// Quit ends a running game at the player's request.
func (g *Game) Quit() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status == StatusRunning {
		g.status = StatusQuit
		g.reason = ReasonQuit
	}
}

// advance builds the next board from the current one. Caller holds mu.
func (g *Game) advance() Outcome {
	if g.status != StatusRunning {
		return OutcomeNone
	}

	cur := g.grid
	next := NewGrid(cur.rows, cur.cols)
	var head Point

	for row := 0; row < cur.rows; row++ {
		for col := 0; col < cur.cols; col++ {
			p := Point{Row: row, Col: col}
			cell := cur.At(p)

			switch cell.Kind() {
			case KindEmpty:
				continue
			case KindFood:
				next.Set(p, Food())
				continue
			}

			heading, _ := cell.Heading()
			dst := cur.Next(p, heading)
			target := cur.At(dst)

			if cell.IsHead() {
				if target.IsFood() {
					g.grow(p, dst, heading)
					return OutcomeGrew
				}
				if target.IsBody() {
					g.status = StatusGameOver
					g.reason = ReasonCollision
					return OutcomeCollided
				}
				next.Set(dst, Head(heading))
				head = dst
				continue
			}

			// Each body segment steps into the cell ahead and takes over its heading.
			inherited, ok := target.Heading()
			if !ok {
				panic(fmt.Sprintf("snake: body segment at %v moves onto %s cell %v", p, target.Kind(), dst))
			}
			next.Set(dst, Body(inherited))
		}
	}

	g.grid = next
	g.head = head
	return OutcomeMoved
}

// grow moves the head from p onto the food at dst without shifting the body.
// The old head square becomes the newest body segment. Caller holds mu.
func (g *Game) grow(p, dst Point, heading Direction) {
	g.grid.Set(p, Body(heading))
	g.grid.Set(dst, Head(heading))
	g.head = dst
	g.score++
	g.interval = time.Duration(float64(g.interval) * SpeedUp)

	if !g.spawnFood() {
		g.status = StatusGameOver
		g.reason = ReasonBoardFull
	}
}

// Status returns the lifecycle stage.
func (g *Game) Status() Status {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.status
}

// Finished reports whether the game reached a terminal state.
func (g *Game) Finished() bool {
	return g.Status() != StatusRunning
}

// Reason returns why the game ended, or ReasonNone while running.
func (g *Game) Reason() Reason {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.reason
}

// Score returns the number of food cells eaten.
func (g *Game) Score() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.score
}

// Interval returns the current tick interval.
func (g *Game) Interval() time.Duration {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.interval
}

// Heading returns the direction the head is moving in.
func (g *Game) Heading() Direction {
	g.mu.RLock()
	defer g.mu.RUnlock()
	d, _ := g.grid.At(g.head).Heading()
	return d
}

// Head returns the head position.
func (g *Game) Head() Point {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.head
}

// Food returns the food position.
func (g *Game) Food() Point {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.food
}
