package snake

import "time"

// Snapshot is an immutable copy of the game taken under the read lock.
// Renderers draw from snapshots so they never see a half-built board.
type Snapshot struct {
	Grid     *Grid
	Score    int
	Interval time.Duration
	Status   Status
	Reason   Reason
	Head     Point
	Food     Point
	Heading  Direction
}

// Snapshot returns a deep copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	heading, _ := g.grid.At(g.head).Heading()
	return Snapshot{
		Grid:     g.grid.Clone(),
		Score:    g.score,
		Interval: g.interval,
		Status:   g.status,
		Reason:   g.reason,
		Head:     g.head,
		Food:     g.food,
		Heading:  heading,
	}
}

// Occupied returns the number of snake segments on the board.
func (s Snapshot) Occupied() int {
	return s.Grid.Count(KindBody) + s.Grid.Count(KindHead)
}
