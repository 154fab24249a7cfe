// Package shop implements the Shop Master game: run a store through
// repeating day cycles, restocking products, serving a queue of
// impatient customers, and buying permanent upgrades. The score is the
// money total.
package shop

import (
	"fmt"
	"math/rand"

	"github.com/wesleydude/arcade/internal/config"
	"github.com/wesleydude/arcade/internal/core"
	"github.com/wesleydude/arcade/internal/registry"
	"github.com/wesleydude/arcade/internal/timer"
)

// Phase represents the lifecycle state of a day.
type Phase string

const (
	PhaseWaiting Phase = "waiting"
	PhasePlaying Phase = "playing"
	PhasePaused  Phase = "paused"
)

// Panel selects which side panel the cursor operates on.
type Panel int

const (
	PanelStock Panel = iota
	PanelUpgrades
)

// Customer is one queued customer.
type Customer struct {
	Type     CustomerType
	Patience int
	Budget   int
	Wants    string // Product ID; empty if nothing could be drawn
}

// Upgrades tracks the permanent one-time purchases.
type Upgrades struct {
	Counter     bool // Serve two customers per action
	Storage     bool // Raises the per-product stock cap
	Advertising bool // Faster customer arrivals
	Security    bool // Suppresses night robberies
}

// Game implements the Shop Master game.
type Game struct {
	cfg config.ShopConfig
	rt  core.RuntimeConfig
	rng *rand.Rand

	sched *timer.Scheduler
	tick  uint64
	phase Phase

	day        int
	money      int
	reputation int

	stock     map[string]int
	soldToday map[string]int
	queue     []Customer
	upgrades  Upgrades

	timeProgress int

	arrivalID  timer.ID
	patienceID timer.ID
	progressID timer.ID

	// UI cursor
	panel  Panel
	cursor int

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

// New creates a new Shop Master game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("shop", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "shop" }

// Title returns the display name.
func (g *Game) Title() string { return "Shop Master" }

// Reset initializes/restarts the game into the Waiting phase of day 1.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadShop(configPath)
	if err != nil {
		cfg = config.DefaultShopConfig()
	}
	config.ApplyShopPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	g.cfg = cfg
	g.rt = rt

	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.sched = timer.New()
	g.tick = 0
	g.phase = PhaseWaiting

	g.day = 1
	g.money = cfg.Economy.StartingMoney
	g.reputation = cfg.Economy.StartingReputation

	g.stock = make(map[string]int)
	g.soldToday = make(map[string]int)
	g.queue = nil
	g.upgrades = Upgrades{}
	g.timeProgress = 0

	g.panel = PanelStock
	g.cursor = 0
	g.pending = nil
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	switch g.phase {
	case PhaseWaiting:
		g.handleCursor(input)
		if input.Has(core.ActionBuy) {
			g.buySelected()
		}
		if input.Has(core.ActionStart) {
			g.startDay()
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
		g.handleCursor(input)
		if input.Has(core.ActionBuy) {
			g.buySelected()
		}
		if input.Has(core.ActionServe) {
			g.serveNext()
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

// handleCursor moves the selection and switches panels.
func (g *Game) handleCursor(input core.InputFrame) {
	if input.Has(core.ActionPanel) {
		if g.panel == PanelStock {
			g.panel = PanelUpgrades
		} else {
			g.panel = PanelStock
		}
		g.cursor = 0
	}

	limit := len(Products)
	if g.panel == PanelUpgrades {
		limit = len(upgradeOrder)
	}
	if input.Has(core.ActionUp) && g.cursor > 0 {
		g.cursor--
	}
	if input.Has(core.ActionDown) && g.cursor < limit-1 {
		g.cursor++
	}
}

// startDay schedules the three recurring day tasks and opens the shop.
func (g *Game) startDay() {
	g.phase = PhasePlaying
	g.timeProgress = 0
	g.soldToday = make(map[string]int)

	arrivalMs := g.cfg.Queue.ArrivalMs
	if g.upgrades.Advertising {
		arrivalMs = g.cfg.Queue.ArrivalAdvertisingMs
	}
	g.arrivalID = g.sched.Every(g.rt.DurationTicks(arrivalMs), g.spawnCustomer)
	g.patienceID = g.sched.Every(g.rt.DurationTicks(g.cfg.Queue.PatienceMs), g.decayPatience)
	g.progressID = g.sched.Every(g.rt.DurationTicks(g.cfg.Day.ProgressMs), g.progressTime)

	g.say(core.Info(fmt.Sprintf("Day %d started!", g.day)))
}

// period maps day progress onto the time of day.
func (g *Game) period() Period {
	switch {
	case g.timeProgress <= 25:
		return Morning
	case g.timeProgress <= 50:
		return Afternoon
	case g.timeProgress <= 75:
		return Evening
	default:
		return Night
	}
}

// spawnCustomer adds an arriving customer to the queue. Arrivals while
// the queue is full walk on by.
func (g *Game) spawnCustomer() {
	if len(g.queue) >= g.cfg.Queue.Capacity {
		return
	}
	ct := CustomerTypes[g.rng.Intn(len(CustomerTypes))]
	g.queue = append(g.queue, Customer{
		Type:     ct,
		Patience: ct.Patience,
		Budget:   ct.Budget,
		Wants:    g.randomProduct(),
	})
}

// randomProduct draws a product weighted by demand and time of day.
// A product whose effective weight is zero is never drawn.
func (g *Game) randomProduct() string {
	period := g.period()
	total := 0.0
	for _, p := range Products {
		total += float64(p.DemandWeight) * p.TimePrefs[period]
	}
	if total <= 0 {
		return ""
	}
	r := g.rng.Float64() * total
	for _, p := range Products {
		w := float64(p.DemandWeight) * p.TimePrefs[period]
		if r < w {
			return p.ID
		}
		r -= w
	}
	// Float residue fell past the last bucket; settle on the last
	// product that actually has weight right now.
	for i := len(Products) - 1; i >= 0; i-- {
		if float64(Products[i].DemandWeight)*Products[i].TimePrefs[period] > 0 {
			return Products[i].ID
		}
	}
	return ""
}

// decayPatience ages every queued customer; those out of patience
// leave angry.
func (g *Game) decayPatience() {
	kept := g.queue[:0]
	for _, c := range g.queue {
		c.Patience--
		if c.Patience <= 0 {
			g.adjustReputation(-g.cfg.Reputation.AngryDelta)
			g.say(core.Fail(fmt.Sprintf("%s left angry!", c.Type.Name)))
			continue
		}
		kept = append(kept, c)
	}
	g.queue = kept
}

// progressTime advances the day clock, runs the night robbery check,
// and closes the shop at full progress.
func (g *Game) progressTime() {
	g.timeProgress++

	if g.period() == Night && g.rng.Float64() < g.cfg.Day.RobberyChance {
		g.handleRobbery()
	}

	if g.timeProgress >= 100 {
		g.endDay()
	}
}

// handleRobbery removes one unit of a random stocked product, unless
// the security upgrade is installed.
func (g *Game) handleRobbery() {
	if g.upgrades.Security {
		g.say(core.Success("Security system prevented a robbery!"))
		return
	}

	var stocked []string
	for _, p := range Products {
		if g.stock[p.ID] > 0 {
			stocked = append(stocked, p.ID)
		}
	}
	if len(stocked) == 0 {
		g.say(core.Info("A robber found nothing to steal!"))
		return
	}

	id := stocked[g.rng.Intn(len(stocked))]
	g.stock[id]--
	p, _ := productByID(id)
	g.say(core.Fail(fmt.Sprintf("A robber stole a %s!", p.Name)))
}

// serveNext serves the head of the queue. The counter upgrade lets one
// action serve up to two customers.
func (g *Game) serveNext() {
	if len(g.queue) == 0 {
		g.say(core.Fail("No customers waiting!"))
		return
	}

	count := 1
	if g.upgrades.Counter {
		count = 2
	}
	for i := 0; i < count && len(g.queue) > 0; i++ {
		g.serveOne()
	}
}

// serveOne pops and serves the head customer. Any unfillable request
// sends them away angry; a sale pays out and improves reputation.
func (g *Game) serveOne() {
	c := g.queue[0]
	g.queue = g.queue[1:]

	p, ok := productByID(c.Wants)
	if !ok || g.stock[p.ID] <= 0 || c.Budget < p.SellPrice {
		g.adjustReputation(-g.cfg.Reputation.AngryDelta)
		g.say(core.Fail(fmt.Sprintf("%s left angry!", c.Type.Name)))
		return
	}

	g.stock[p.ID]--
	g.soldToday[p.ID]++
	g.money += p.SellPrice
	g.adjustReputation(g.cfg.Reputation.HappyDelta)
	g.say(core.Success(fmt.Sprintf("Sold a %s for $%d!", p.Name, p.SellPrice)))
}

// adjustReputation moves reputation by delta, clamped to [0, 100].
func (g *Game) adjustReputation(delta int) {
	g.reputation = core.Clamp(g.reputation+delta, 0, 100)
}

// stockCap is the per-product inventory limit.
func (g *Game) stockCap() int {
	if g.upgrades.Storage {
		return g.cfg.Stock.StorageCap
	}
	return g.cfg.Stock.BaseCap
}

// buySelected buys whatever the cursor points at.
func (g *Game) buySelected() {
	if g.panel == PanelStock {
		g.buyProduct(Products[g.cursor].ID)
	} else {
		g.buyUpgrade(upgradeOrder[g.cursor])
	}
}

// buyProduct restocks one unit of a product.
func (g *Game) buyProduct(id string) {
	p, ok := productByID(id)
	if !ok {
		return
	}
	if g.stock[id] >= g.stockCap() {
		g.say(core.Fail(fmt.Sprintf("Storage full for %s!", p.Name)))
		return
	}
	if g.money < p.Cost {
		g.say(core.Fail("Not enough money!"))
		return
	}
	g.money -= p.Cost
	g.stock[id]++
	g.say(core.Info(fmt.Sprintf("Bought a %s for $%d", p.Name, p.Cost)))
}

// upgradeOrder fixes the upgrade panel layout.
var upgradeOrder = []string{"counter", "storage", "advertising", "security"}

// upgradePrice returns the configured price of an upgrade.
func (g *Game) upgradePrice(id string) int {
	switch id {
	case "counter":
		return g.cfg.Upgrades.Counter
	case "storage":
		return g.cfg.Upgrades.Storage
	case "advertising":
		return g.cfg.Upgrades.Advertising
	case "security":
		return g.cfg.Upgrades.Security
	default:
		return 0
	}
}

// upgradeOwned reports whether an upgrade was already bought.
func (g *Game) upgradeOwned(id string) bool {
	switch id {
	case "counter":
		return g.upgrades.Counter
	case "storage":
		return g.upgrades.Storage
	case "advertising":
		return g.upgrades.Advertising
	case "security":
		return g.upgrades.Security
	default:
		return false
	}
}

// buyUpgrade buys a permanent upgrade. Repeat purchases are rejected
// before any money moves.
func (g *Game) buyUpgrade(id string) {
	if g.upgradeOwned(id) {
		g.say(core.Fail("Upgrade already owned!"))
		return
	}
	price := g.upgradePrice(id)
	if g.money < price {
		g.say(core.Fail("Not enough money for that upgrade!"))
		return
	}

	g.money -= price
	switch id {
	case "counter":
		g.upgrades.Counter = true
	case "storage":
		g.upgrades.Storage = true
	case "advertising":
		g.upgrades.Advertising = true
	case "security":
		g.upgrades.Security = true
	}
	g.say(core.Success(fmt.Sprintf("Upgrade installed: %s!", id)))

	// A faster arrival rate takes effect immediately mid-day.
	if id == "advertising" && g.phase == PhasePlaying {
		g.sched.Cancel(g.arrivalID)
		g.arrivalID = g.sched.Every(g.rt.DurationTicks(g.cfg.Queue.ArrivalAdvertisingMs), g.spawnCustomer)
	}
}

// endDay cancels the day tasks, credits the day profit, and returns to
// Waiting for the next day. Remaining customers disperse without
// affecting reputation.
func (g *Game) endDay() {
	g.sched.CancelAll()
	g.queue = nil

	profit := 0
	for id, n := range g.soldToday {
		if p, ok := productByID(id); ok {
			profit += (p.SellPrice - p.Cost) * n
		}
	}
	g.money += profit

	g.say(core.Info(fmt.Sprintf("Day %d complete! Profit: $%d", g.day, profit)))
	g.day++
	g.phase = PhaseWaiting
}

// say queues a transient message for the next StepResult.
func (g *Game) say(m core.Message) {
	g.pending = append(g.pending, m)
}

// State returns the current game state. The score is the money total;
// the shop has no terminal state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.money,
		Paused: g.phase == PhasePaused,
	}
}
