// Package snake implements the classic grid snake game: steer the
// snake onto food to grow and score, avoid the walls and your own body.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/wesleydude/arcade/internal/config"
	"github.com/wesleydude/arcade/internal/core"
	"github.com/wesleydude/arcade/internal/registry"
)

// Phase represents the lifecycle state of a run.
type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
)

// Game implements the Snake game.
type Game struct {
	cfg config.SnakeConfig
	rt  core.RuntimeConfig
	rng *rand.Rand

	tick  uint64
	phase Phase
	score int

	// Snake state. Head at index 0; dir is the velocity applied on the
	// next move, nextDir buffers the latest accepted direction input.
	snake   []core.Point
	dir     core.Point
	nextDir core.Point
	food    core.Point

	intervalMs int    // Current move interval
	moveTicks  uint64 // intervalMs converted to ticks
	moveTicker uint64 // Ticks since the last move

	pending []core.Message

	// Layout
	boardX   int
	boardY   int
	tooSmall bool
}

// Package-level knobs set by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for the next run.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next run.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Reset initializes/restarts the game into the Waiting phase.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	config.ApplySnakePreset(&cfg, config.DifficultyPreset(difficultyPreset))
	g.cfg = cfg
	g.rt = rt

	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.phase = PhaseWaiting
	g.score = 0
	g.pending = nil

	n := g.cfg.Grid.TileCount
	cx, cy := n/2, n/2
	g.snake = []core.Point{
		{X: cx, Y: cy},
		{X: cx - 1, Y: cy},
		{X: cx - 2, Y: cy},
	}
	g.dir = core.Point{}
	g.nextDir = core.Point{}

	g.intervalMs = g.cfg.Speed.StartIntervalMs
	g.moveTicks = rt.DurationTicks(g.intervalMs)
	g.moveTicker = 0

	g.spawnFood()
	g.layout()
}

// layout centers the board and flags undersized screens.
func (g *Game) layout() {
	n := g.cfg.Grid.TileCount
	requiredW := n + 2
	requiredH := n + 2 + hudHeight
	if g.rt.ScreenW < requiredW || g.rt.ScreenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.boardX = (g.rt.ScreenW - requiredW) / 2
	g.boardY = hudHeight
}

const hudHeight = 2

// spawnFood places food at a random cell, retrying while the candidate
// is occupied. The retry budget bounds the loop on a packed grid; the
// last candidate is accepted if every attempt collided.
func (g *Game) spawnFood() {
	n := g.cfg.Grid.TileCount
	var cand core.Point
	for i := 0; i < g.cfg.Spawn.FoodAttempts; i++ {
		cand = core.Point{X: g.rng.Intn(n), Y: g.rng.Intn(n)}
		if !g.isSnakeAt(cand) {
			g.food = cand
			return
		}
	}
	g.food = cand
}

// isSnakeAt reports whether the snake occupies the given cell.
func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	switch g.phase {
	case PhaseWaiting:
		if input.Has(core.ActionStart) {
			g.phase = PhasePlaying
		}
	case PhaseGameOver:
		if input.Has(core.ActionRestart) {
			g.Reset(core.RuntimeConfig{
				ScreenW:  g.rt.ScreenW,
				ScreenH:  g.rt.ScreenH,
				TickRate: g.rt.TickRate,
				Seed:     g.rng.Int63(),
			})
		}
	case PhasePaused:
		if input.Has(core.ActionPause) {
			g.phase = PhasePlaying
		}
	case PhasePlaying:
		if input.Has(core.ActionPause) {
			g.phase = PhasePaused
			break
		}
		if g.tooSmall {
			break
		}
		g.setDirection(input)
		g.moveTicker++
		if g.moveTicker >= g.moveTicks {
			g.moveTicker = 0
			g.moveSnake()
		}
	}

	return g.result()
}

// result drains pending messages into a StepResult.
func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State(), Messages: g.pending}
	g.pending = nil
	return res
}

// setDirection buffers a direction change for the next move. Reversing
// a nonzero current direction is rejected; while the snake is idle any
// direction is accepted.
func (g *Game) setDirection(input core.InputFrame) {
	var d core.Point
	switch {
	case input.Has(core.ActionUp):
		d = core.Point{X: 0, Y: -1}
	case input.Has(core.ActionDown):
		d = core.Point{X: 0, Y: 1}
	case input.Has(core.ActionLeft):
		d = core.Point{X: -1, Y: 0}
	case input.Has(core.ActionRight):
		d = core.Point{X: 1, Y: 0}
	default:
		return
	}

	if !g.dir.IsZero() && d.X == -g.dir.X && d.Y == -g.dir.Y {
		return
	}
	g.nextDir = d
}

// moveSnake advances the snake one cell. A zero direction means the
// snake has not received its first input yet and stays put.
func (g *Game) moveSnake() {
	g.dir = g.nextDir
	if g.dir.IsZero() {
		return
	}

	head := g.snake[0]
	newHead := head.Add(g.dir)

	n := g.cfg.Grid.TileCount
	if newHead.X < 0 || newHead.X >= n || newHead.Y < 0 || newHead.Y >= n {
		g.endRun()
		return
	}

	eating := newHead == g.food

	// The tail cell is vacated this move unless the snake grows, so it
	// only counts as a collision when eating.
	checkLen := len(g.snake)
	if !eating {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if g.snake[i] == newHead {
			g.endRun()
			return
		}
	}

	g.snake = append([]core.Point{newHead}, g.snake...)
	if eating {
		g.eat()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// eat scores the food, speeds the snake up on threshold scores, and
// regenerates food.
func (g *Game) eat() {
	g.score += g.cfg.Scoring.FoodPoints

	if g.cfg.Speed.EveryPoints > 0 && g.score%g.cfg.Speed.EveryPoints == 0 &&
		g.intervalMs > g.cfg.Speed.MinIntervalMs {
		g.intervalMs -= g.cfg.Speed.StepMs
		if g.intervalMs < g.cfg.Speed.MinIntervalMs {
			g.intervalMs = g.cfg.Speed.MinIntervalMs
		}
		g.moveTicks = g.rt.DurationTicks(g.intervalMs)
		g.pending = append(g.pending, core.Info("Speed up!"))
	}

	g.spawnFood()
}

// endRun transitions to GameOver.
func (g *Game) endRun() {
	g.phase = PhaseGameOver
	g.pending = append(g.pending, core.Fail(fmt.Sprintf("Game over! Final score: %d", g.score)))
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	n := g.cfg.Grid.TileCount
	dst.DrawBox(core.Rect{X: g.boardX, Y: g.boardY, W: n + 2, H: n + 2})

	fx := g.boardX + 1 + g.food.X
	fy := g.boardY + 1 + g.food.Y
	dst.SetColored(fx, fy, '*', core.ColorRed)

	for i, seg := range g.snake {
		sx := g.boardX + 1 + seg.X
		sy := g.boardY + 1 + seg.Y
		if i == 0 {
			dst.SetColored(sx, sy, 'O', core.ColorBrightGreen)
		} else {
			dst.SetColored(sx, sy, 'o', core.ColorGreen)
		}
	}

	switch g.phase {
	case PhaseWaiting:
		g.renderOverlay(dst, "Snake", "Press Enter to start")
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case PhaseGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d — press R to restart", g.score))
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake — Score: %d  Length: %d  Speed: %dms", g.score, len(g.snake), g.intervalMs)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len([]rune(line1))
	if n := len([]rune(line2)); n > maxLen {
		maxLen = n
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}
