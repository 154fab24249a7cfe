package snake

import "github.com/wesleydude/arcade/internal/core"

// Snapshot captures the full observable game state for determinism
// tests and replay.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Score      int
	SnakeLen   int
	Head       core.Point
	Dir        core.Point
	Food       core.Point
	IntervalMs int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	var head core.Point
	if len(g.snake) > 0 {
		head = g.snake[0]
	}
	return Snapshot{
		Tick:       g.tick,
		Phase:      g.phase,
		Score:      g.score,
		SnakeLen:   len(g.snake),
		Head:       head,
		Dir:        g.dir,
		Food:       g.food,
		IntervalMs: g.intervalMs,
	}
}
