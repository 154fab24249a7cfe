// Package cooking implements the Cooking Master game: cook a recipe's
// ingredients in order before the countdown runs out, then serve the
// dish for points. Classic mode is pure time pressure; extended mode
// adds a mistake budget, combo multipliers, and streak bonuses.
package cooking

import (
	"fmt"
	"math/rand"

	"github.com/wesleydude/arcade/internal/config"
	"github.com/wesleydude/arcade/internal/core"
	"github.com/wesleydude/arcade/internal/registry"
	"github.com/wesleydude/arcade/internal/timer"
)

// Phase represents the lifecycle state of a round.
type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseFinished Phase = "finished"
)

// Mode selects the rule set.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeExtended Mode = "extended"
)

// step tracks one recipe position in the pan.
type step struct {
	Ingredient string
	Cooking    bool
	Cooked     bool
}

// Game implements the Cooking Master game.
type Game struct {
	mode Mode
	cfg  config.CookingConfig
	rt   core.RuntimeConfig
	rng  *rand.Rand

	sched *timer.Scheduler
	tick  uint64
	phase Phase

	score    int
	level    int
	timeLeft int // Seconds on the round countdown

	recipe  Recipe
	steps   []step
	pointer int // First step not yet cooked

	cookTimers  map[string]timer.ID // Active cook task per ingredient id
	countdownID timer.ID

	// Extended-mode state
	mistakes     int
	maxMistakes  int
	combo        int // Consecutive serves, resets on any mistake
	streak       int
	dishMistakes int // Mistakes made on the current dish

	pending []core.Message
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

// New creates a classic mode Cooking game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewExtended creates an extended mode Cooking game.
func NewExtended() *Game {
	return &Game{mode: ModeExtended}
}

func init() {
	registry.Register("cooking", func() registry.Game {
		return New()
	})
	registry.Register("cooking_extended", func() registry.Game {
		return NewExtended()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeExtended {
		return "cooking_extended"
	}
	return "cooking"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeExtended {
		return "Cooking Master (Extended)"
	}
	return "Cooking Master"
}

// Reset initializes/restarts the game into the Waiting phase.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadCooking(configPath)
	if err != nil {
		cfg = config.DefaultCookingConfig()
	}
	config.ApplyCookingPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	g.cfg = cfg
	g.rt = rt

	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.sched = timer.New()
	g.tick = 0
	g.phase = PhaseWaiting

	g.score = 0
	g.level = 1
	g.timeLeft = cfg.Round.Seconds

	g.recipe = Recipe{}
	g.steps = nil
	g.pointer = 0
	g.cookTimers = make(map[string]timer.ID)
	g.countdownID = 0

	g.mistakes = 0
	g.maxMistakes = cfg.Mistakes.Max
	g.combo = 0
	g.streak = 0
	g.dishMistakes = 0
	g.pending = nil
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	switch g.phase {
	case PhaseWaiting:
		if input.Has(core.ActionStart) {
			g.start()
		}
	case PhaseFinished:
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
			g.sched.Resume()
		}
	case PhasePlaying:
		if input.Has(core.ActionPause) {
			g.phase = PhasePaused
			g.sched.Pause()
			break
		}
		if slot := input.Slot(); slot >= 0 && slot < len(Ingredients) {
			g.placeIngredient(Ingredients[slot].ID)
		}
		if input.Has(core.ActionServe) {
			g.serveDish()
		}
		g.sched.Tick()
	}

	return g.result()
}

// result drains pending messages into a StepResult.
func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State(), Messages: g.pending}
	g.pending = nil
	return res
}

// start begins a round: countdown running, first recipe on the board.
func (g *Game) start() {
	g.phase = PhasePlaying
	g.countdownID = g.sched.Every(g.rt.SecondTicks(), g.countdown)
	g.generateRecipe()
	g.say(core.Info("Game started! Cook the ingredients in order!"))
}

// countdown runs once per second while playing.
func (g *Game) countdown() {
	g.timeLeft--
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.finish()
	}
}

// finish ends the round. Cancelling everything ensures no cook timer
// fires into a finished game.
func (g *Game) finish() {
	g.phase = PhaseFinished
	g.sched.CancelAll()
	g.cookTimers = make(map[string]timer.ID)
	g.say(core.Info(fmt.Sprintf("Game over! Final score: %d", g.score)))
}

// generateRecipe draws the next recipe and resets the pan.
func (g *Game) generateRecipe() {
	pool := Recipes
	if g.mode == ModeExtended {
		// One extra recipe unlocks per level.
		n := 1 + g.level
		if n > len(Recipes) {
			n = len(Recipes)
		}
		pool = Recipes[:n]
	}
	g.recipe = pool[g.rng.Intn(len(pool))]

	g.steps = make([]step, len(g.recipe.Ingredients))
	for i, id := range g.recipe.Ingredients {
		g.steps[i] = step{Ingredient: id}
	}
	g.pointer = 0
	g.dishMistakes = 0
	for _, id := range g.cookTimers {
		g.sched.Cancel(id)
	}
	g.cookTimers = make(map[string]timer.ID)
}

// placeIngredient puts an ingredient in the pan. Placement follows
// recipe order: only the first unplaced step's ingredient is accepted.
func (g *Game) placeIngredient(id string) {
	placeIdx := -1
	for i, s := range g.steps {
		if !s.Cooking && !s.Cooked {
			placeIdx = i
			break
		}
	}
	if placeIdx < 0 {
		g.say(core.Info("Everything is in the pan! Serve the dish!"))
		return
	}

	expected := g.steps[placeIdx].Ingredient
	if id != expected {
		g.wrongIngredient(expected)
		return
	}
	if _, cooking := g.cookTimers[id]; cooking {
		ing, _ := ingredientByID(id)
		g.say(core.Fail(fmt.Sprintf("%s is already cooking!", ing.Name)))
		return
	}

	ing, ok := ingredientByID(id)
	if !ok {
		return
	}
	g.steps[placeIdx].Cooking = true
	idx := placeIdx
	g.cookTimers[id] = g.sched.After(g.cookTicks(ing), func() {
		g.completeIngredient(idx, id)
	})
}

// wrongIngredient handles an out-of-order placement. Classic mode only
// complains; extended mode burns the mistake budget and round time.
func (g *Game) wrongIngredient(expected string) {
	ing, _ := ingredientByID(expected)
	if g.mode == ModeClassic {
		g.say(core.Fail(fmt.Sprintf("Wrong ingredient! Need %s", ing.Name)))
		return
	}

	g.mistakes++
	g.dishMistakes++
	g.combo = 0
	g.timeLeft -= g.cfg.Mistakes.PenaltySecs
	g.say(core.Fail(fmt.Sprintf("Wrong ingredient! Need %s (-%ds)", ing.Name, g.cfg.Mistakes.PenaltySecs)))

	if g.mistakes >= g.maxMistakes {
		g.say(core.Fail("Too many mistakes!"))
		g.finish()
		return
	}
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.finish()
	}
}

// cookTicks converts an ingredient's cook time to ticks, scaled down as
// the player levels up and floored at the configured minimum.
func (g *Game) cookTicks(ing Ingredient) uint64 {
	factor := 1.0 - g.cfg.Pan.LevelSpeedup*float64(g.level-1)
	if factor < 0.3 {
		factor = 0.3
	}
	ms := int(float64(ing.CookSecs) * factor * 1000)
	minMs := g.cfg.Pan.MinCookSecs * 1000
	if ms < minMs {
		ms = minMs
	}
	return g.rt.DurationTicks(ms)
}

// completeIngredient is the cook-timer callback: the step is done, and
// the pointer advances only when the pointed step itself completed.
func (g *Game) completeIngredient(idx int, id string) {
	delete(g.cookTimers, id)
	g.steps[idx].Cooking = false
	g.steps[idx].Cooked = true

	ing, _ := ingredientByID(id)
	g.say(core.Success(fmt.Sprintf("%s cooked perfectly!", ing.Name)))

	if idx == g.pointer {
		g.pointer++
	}
	if g.allCooked() {
		g.say(core.Success("All ingredients cooked! Serve the dish!"))
	}
}

// allCooked reports whether every recipe step is done.
func (g *Game) allCooked() bool {
	for _, s := range g.steps {
		if !s.Cooked {
			return false
		}
	}
	return len(g.steps) > 0
}

// serveDish scores the completed dish and rolls the next recipe.
func (g *Game) serveDish() {
	if !g.allCooked() {
		g.say(core.Fail("Cook all ingredients first!"))
		return
	}

	pan := make([]string, len(g.steps))
	for i, s := range g.steps {
		pan[i] = s.Ingredient
	}
	points := recipePoints(pan, g.cfg.Scoring.FallbackPoints)

	var total int
	if g.mode == ModeClassic {
		total = points + g.timeLeft*g.cfg.Scoring.ClassicTimeBonus
	} else {
		base := points + g.timeLeft*g.cfg.Scoring.ExtendedTimeBonus + g.streak*g.cfg.Scoring.StreakBonus
		if g.dishMistakes == 0 {
			base += g.cfg.Scoring.PerfectBonus
		}
		total = int(float64(base) * (1.0 + g.cfg.Scoring.ComboStep*float64(g.combo)))
		g.streak++
		g.combo++
	}

	g.score += total
	g.say(core.Success(fmt.Sprintf("Dish served! +%d points!", total)))

	if g.score >= g.level*g.cfg.Round.LevelThreshold {
		g.levelUp()
	}
	g.generateRecipe()
}

// levelUp grants bonus time; extended mode also tightens the mistake
// budget, floored at one.
func (g *Game) levelUp() {
	g.level++
	g.timeLeft += g.cfg.Round.LevelBonusSecs
	if g.mode == ModeExtended && g.maxMistakes > 1 {
		g.maxMistakes--
	}
	g.say(core.Success(fmt.Sprintf("Level up! Level %d", g.level)))
}

// say queues a transient message for the next StepResult.
func (g *Game) say(m core.Message) {
	g.pending = append(g.pending, m)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseFinished,
		Paused:   g.phase == PhasePaused,
	}
}
