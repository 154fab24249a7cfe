package shop

// Snapshot captures the full observable game state for determinism
// tests and replay.
type Snapshot struct {
	Tick         uint64
	Phase        Phase
	Day          int
	Money        int
	Reputation   int
	TimeProgress int
	QueueLen     int
	StockTotal   int
	SoldTotal    int
	Upgrades     Upgrades
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	stockTotal := 0
	for _, n := range g.stock {
		stockTotal += n
	}
	soldTotal := 0
	for _, n := range g.soldToday {
		soldTotal += n
	}
	return Snapshot{
		Tick:         g.tick,
		Phase:        g.phase,
		Day:          g.day,
		Money:        g.money,
		Reputation:   g.reputation,
		TimeProgress: g.timeProgress,
		QueueLen:     len(g.queue),
		StockTotal:   stockTotal,
		SoldTotal:    soldTotal,
		Upgrades:     g.upgrades,
	}
}
