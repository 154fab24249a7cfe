package cooking

// Snapshot captures the full observable game state for determinism
// tests and replay.
type Snapshot struct {
	Tick        uint64
	Phase       Phase
	Mode        Mode
	Score       int
	Level       int
	TimeLeft    int
	Recipe      string
	Pointer     int
	CookedCount int
	Mistakes    int
	Combo       int
	Streak      int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	cooked := 0
	for _, s := range g.steps {
		if s.Cooked {
			cooked++
		}
	}
	return Snapshot{
		Tick:        g.tick,
		Phase:       g.phase,
		Mode:        g.mode,
		Score:       g.score,
		Level:       g.level,
		TimeLeft:    g.timeLeft,
		Recipe:      g.recipe.Name,
		Pointer:     g.pointer,
		CookedCount: cooked,
		Mistakes:    g.mistakes,
		Combo:       g.combo,
		Streak:      g.streak,
	}
}
