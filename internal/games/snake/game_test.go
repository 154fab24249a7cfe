package snake

import (
	"fmt"
	"strings"
	"testing"

	"github.com/wesleydude/arcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
}

func newTestGame() *Game {
	g := New()
	g.Reset(testConfig())
	return g
}

func press(g *Game, a core.Action) core.StepResult {
	input := core.NewInputFrame()
	input.Set(a)
	return g.Step(input)
}

func idle(g *Game, ticks int) {
	input := core.NewInputFrame()
	for i := 0; i < ticks; i++ {
		g.Step(input)
	}
}

func TestResetStartsWaitingAndIdle(t *testing.T) {
	g := newTestGame()

	if g.phase != PhaseWaiting {
		t.Fatalf("Expected Waiting phase after reset, got %v", g.phase)
	}
	want := []core.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	for i, p := range want {
		if g.snake[i] != p {
			t.Errorf("Segment %d: expected %v, got %v", i, p, g.snake[i])
		}
	}
	if !g.dir.IsZero() {
		t.Errorf("Expected zero direction at reset, got %v", g.dir)
	}
	if g.score != 0 {
		t.Errorf("Expected score 0, got %d", g.score)
	}
	if g.intervalMs != 150 {
		t.Errorf("Expected 150ms start interval, got %d", g.intervalMs)
	}
	if g.isSnakeAt(g.food) {
		t.Errorf("Food spawned on the snake at %v", g.food)
	}
}

func TestSnakeStaysPutWithoutInput(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)

	idle(g, 120)

	if head := g.snake[0]; head != (core.Point{X: 10, Y: 10}) {
		t.Errorf("Snake moved without input: head at %v", head)
	}
}

func TestFirstInputMovesHeadRight(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)
	press(g, core.ActionRight)

	idle(g, int(g.moveTicks))

	if head := g.snake[0]; head != (core.Point{X: 11, Y: 10}) {
		t.Errorf("Expected head at (11,10), got %v", head)
	}
	if len(g.snake) != 3 {
		t.Errorf("Expected length 3 after a plain move, got %d", len(g.snake))
	}
}

func TestReversalIsRejected(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)
	press(g, core.ActionRight)
	idle(g, int(g.moveTicks))

	press(g, core.ActionLeft)
	idle(g, int(g.moveTicks))

	if g.dir != (core.Point{X: 1, Y: 0}) {
		t.Errorf("Reversal mutated direction: %v", g.dir)
	}
	if head := g.snake[0]; head.X <= 11 {
		t.Errorf("Expected snake to keep moving right, head at %v", head)
	}
}

func TestEatingGrowsScoresAndRespawnsFood(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)
	press(g, core.ActionRight)

	g.food = core.Point{X: 11, Y: 10}
	idle(g, int(g.moveTicks))

	if g.score != 10 {
		t.Errorf("Expected score 10 after one food, got %d", g.score)
	}
	if len(g.snake) != 4 {
		t.Errorf("Expected length 4 after one food, got %d", len(g.snake))
	}
	if g.food == (core.Point{X: 11, Y: 10}) {
		t.Error("Food was not regenerated after being eaten")
	}
	assertNoDuplicateSegments(t, g)
}

func TestWallCollisionEndsRun(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)
	press(g, core.ActionRight)

	g.food = core.Point{X: 0, Y: 0}
	// 10 moves reach the right wall from x=10 on a 20-wide grid.
	idle(g, int(g.moveTicks)*11)

	if g.phase != PhaseGameOver {
		t.Fatalf("Expected GameOver at the wall, got %v (head %v)", g.phase, g.snake[0])
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be true")
	}
}

func TestBodyCollisionEndsRun(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)

	g.snake = []core.Point{
		{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6},
	}
	g.dir = core.Point{X: 0, Y: 1}
	g.nextDir = g.dir
	g.food = core.Point{X: 0, Y: 0}

	g.moveSnake()

	if g.phase != PhaseGameOver {
		t.Errorf("Expected GameOver on body collision, got %v", g.phase)
	}
}

func TestVacatedTailIsNotACollision(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)

	// Head (5,5) moving down into the tail cell (5,6), which is vacated
	// by the same move.
	g.snake = []core.Point{
		{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6},
	}
	g.dir = core.Point{X: 0, Y: 1}
	g.nextDir = g.dir
	g.food = core.Point{X: 0, Y: 0}

	g.moveSnake()

	if g.phase != PhasePlaying {
		t.Fatalf("Moving into the vacated tail cell ended the run: %v", g.phase)
	}
	if head := g.snake[0]; head != (core.Point{X: 5, Y: 6}) {
		t.Errorf("Expected head at (5,6), got %v", head)
	}
	assertNoDuplicateSegments(t, g)
}

func TestSpeedUpAtScoreThreshold(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)
	press(g, core.ActionRight)

	g.score = 40
	g.food = core.Point{X: 11, Y: 10}
	idle(g, int(g.moveTicks))

	if g.score != 50 {
		t.Fatalf("Expected score 50, got %d", g.score)
	}
	if g.intervalMs != 140 {
		t.Errorf("Expected interval 140ms after the 50-point threshold, got %d", g.intervalMs)
	}
}

func TestSpeedNeverDropsBelowFloor(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)
	press(g, core.ActionRight)

	g.intervalMs = 80
	g.moveTicks = g.rt.DurationTicks(80)
	g.score = 90
	g.food = core.Point{X: 11, Y: 10}
	idle(g, int(g.moveTicks))

	if g.intervalMs != 80 {
		t.Errorf("Interval dropped below the 80ms floor: %d", g.intervalMs)
	}
}

func TestFoodSpawnAvoidsSnakeWhenFreeCellsExist(t *testing.T) {
	g := newTestGame()

	for i := 0; i < 200; i++ {
		g.spawnFood()
		if g.isSnakeAt(g.food) {
			t.Fatalf("Spawn %d placed food on the snake at %v", i, g.food)
		}
	}
}

func TestFoodSpawnTerminatesOnPackedGrid(t *testing.T) {
	g := newTestGame()

	n := g.cfg.Grid.TileCount
	g.snake = g.snake[:0]
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			g.snake = append(g.snake, core.Point{X: x, Y: y})
		}
	}

	g.spawnFood()

	if g.food.X < 0 || g.food.X >= n || g.food.Y < 0 || g.food.Y >= n {
		t.Errorf("Spawn on a packed grid left food out of bounds: %v", g.food)
	}
}

func TestGameOverOverlayBoxFitsText(t *testing.T) {
	g := newTestGame()
	g.phase = PhaseGameOver
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	line2 := fmt.Sprintf("Score: %d — press R to restart", g.score)
	want := len([]rune(line2)) + 4

	boxY := (dst.Height() - 5) / 2
	row := []rune(strings.Split(dst.String(), "\n")[boxY])
	left, right := -1, -1
	for i, r := range row {
		if r == '┌' {
			left = i
		}
		if r == '┐' {
			right = i
		}
	}
	if left < 0 || right < 0 {
		t.Fatal("Overlay box corners not found")
	}
	if got := right - left + 1; got != want {
		t.Errorf("Expected overlay box width %d, got %d", want, got)
	}
}

func TestPausePreservesPosition(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)
	press(g, core.ActionRight)
	idle(g, int(g.moveTicks))

	head := g.snake[0]
	press(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("Expected Paused state")
	}

	idle(g, 120)
	if g.snake[0] != head {
		t.Errorf("Snake moved while paused: %v -> %v", head, g.snake[0])
	}

	press(g, core.ActionPause)
	idle(g, int(g.moveTicks))
	if g.snake[0] == head {
		t.Error("Snake did not resume after unpause")
	}
}

func TestRestartReturnsToWaiting(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)
	g.score = 70
	g.endRun()

	press(g, core.ActionRestart)

	if g.phase != PhaseWaiting {
		t.Errorf("Expected Waiting after restart, got %v", g.phase)
	}
	if g.score != 0 {
		t.Errorf("Expected score reset to 0, got %d", g.score)
	}
	if len(g.snake) != 3 {
		t.Errorf("Expected fresh 3-segment snake, got %d", len(g.snake))
	}
}

func TestGameOverEmitsFinalScoreMessage(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)
	press(g, core.ActionRight)
	g.food = core.Point{X: 0, Y: 0}

	var got []core.Message
	input := core.NewInputFrame()
	for i := 0; i < int(g.moveTicks)*12 && g.phase != PhaseGameOver; i++ {
		res := g.Step(input)
		got = append(got, res.Messages...)
	}

	if g.phase != PhaseGameOver {
		t.Fatal("Run did not end")
	}
	if len(got) == 0 || got[len(got)-1].Level != core.MessageError {
		t.Errorf("Expected an error-level game-over message, got %v", got)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig())
	g2 := New()
	g2.Reset(testConfig())

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		switch i {
		case 0:
			input.Set(core.ActionStart)
		case 5:
			input.Set(core.ActionRight)
		case 60:
			input.Set(core.ActionDown)
		case 120:
			input.Set(core.ActionLeft)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func assertNoDuplicateSegments(t *testing.T, g *Game) {
	t.Helper()
	seen := make(map[core.Point]bool, len(g.snake))
	for _, seg := range g.snake {
		if seen[seg] {
			t.Fatalf("Duplicate snake segment at %v", seg)
		}
		seen[seg] = true
	}
}
