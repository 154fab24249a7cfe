package shop

import (
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

func makeCustomer(wants string, patience, budget int) Customer {
	return Customer{Type: CustomerTypes[0], Patience: patience, Budget: budget, Wants: wants}
}

func TestResetStartsWaitingWithSeedMoney(t *testing.T) {
	g := newTestGame()

	if g.phase != PhaseWaiting {
		t.Fatalf("Expected Waiting after reset, got %v", g.phase)
	}
	if g.money != 1000 || g.reputation != 50 || g.day != 1 {
		t.Errorf("Unexpected starting state: $%d rep %d day %d", g.money, g.reputation, g.day)
	}
}

func TestStartDaySchedulesThreeTasks(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)

	if g.phase != PhasePlaying {
		t.Fatalf("Expected Playing after start, got %v", g.phase)
	}
	if g.sched.Len() != 3 {
		t.Errorf("Expected arrivals, patience, and progress tasks, got %d", g.sched.Len())
	}
}

func TestQueueCapsArrivals(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)

	for i := 0; i < 20; i++ {
		g.spawnCustomer()
	}

	if len(g.queue) != g.cfg.Queue.Capacity {
		t.Errorf("Expected queue capped at %d, got %d", g.cfg.Queue.Capacity, len(g.queue))
	}
}

func TestRandomProductAlwaysValid(t *testing.T) {
	g := newTestGame()

	for _, progress := range []int{0, 30, 60, 90} {
		g.timeProgress = progress
		for i := 0; i < 500; i++ {
			id := g.randomProduct()
			if _, ok := productByID(id); !ok {
				t.Fatalf("Weighted draw returned unknown product %q at progress %d", id, progress)
			}
		}
	}
}

func TestZeroWeightProductNeverDrawn(t *testing.T) {
	g := newTestGame()
	orig := Products
	defer func() { Products = orig }()
	Products = []Product{
		{ID: "bread", Name: "Bread", Category: "food", Cost: 3, SellPrice: 5, DemandWeight: 20, TimePrefs: [4]float64{0.5, 0.3, 0.1, 0.1}},
		{ID: "fireworks", Name: "Fireworks", Category: "seasonal", Cost: 10, SellPrice: 20, DemandWeight: 10, TimePrefs: [4]float64{0.4, 0.4, 0.2, 0}},
	}

	g.timeProgress = 90 // Night: fireworks carry zero effective weight
	for i := 0; i < 500; i++ {
		if id := g.randomProduct(); id != "bread" {
			t.Fatalf("Drew %q despite zero effective weight", id)
		}
	}
}

func TestPatienceDecayRemovesExpiredCustomers(t *testing.T) {
	g := newTestGame()
	g.queue = []Customer{
		makeCustomer("apple", 1, 700),
		makeCustomer("bread", 5, 700),
	}

	g.decayPatience()

	if len(g.queue) != 1 {
		t.Fatalf("Expected one customer left, got %d", len(g.queue))
	}
	if g.queue[0].Patience != 4 {
		t.Errorf("Expected remaining customer at patience 4, got %d", g.queue[0].Patience)
	}
	if g.reputation != 47 {
		t.Errorf("Expected reputation 50-3=47, got %d", g.reputation)
	}
}

func TestDecayAndSpawnOrderIndependent(t *testing.T) {
	a := newTestGame()
	b := newTestGame()
	a.queue = []Customer{makeCustomer("apple", 1, 700)}
	b.queue = []Customer{makeCustomer("apple", 1, 700)}

	a.decayPatience()
	a.spawnCustomer()

	b.spawnCustomer()
	b.decayPatience()

	if len(a.queue) != len(b.queue) {
		t.Errorf("Queue length depends on task order: %d vs %d", len(a.queue), len(b.queue))
	}
	if a.reputation != b.reputation {
		t.Errorf("Reputation depends on task order: %d vs %d", a.reputation, b.reputation)
	}
}

func TestServeSellsAndPaysOut(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)
	g.stock["apple"] = 1
	g.queue = []Customer{makeCustomer("apple", 5, 700)}

	g.serveNext()

	if g.money != 1003 {
		t.Errorf("Expected $1003 after selling an apple, got $%d", g.money)
	}
	if g.stock["apple"] != 0 {
		t.Errorf("Expected apple stock 0, got %d", g.stock["apple"])
	}
	if g.soldToday["apple"] != 1 {
		t.Errorf("Expected one apple sold today, got %d", g.soldToday["apple"])
	}
	if g.reputation != 52 {
		t.Errorf("Expected reputation 52, got %d", g.reputation)
	}
	if g.State().Score != g.money {
		t.Errorf("Score should track money: %d vs %d", g.State().Score, g.money)
	}
}

func TestServeEmitsSaleMessage(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)
	g.stock["apple"] = 1
	g.queue = []Customer{makeCustomer("apple", 5, 700)}

	g.serveNext()
	res := g.result()

	found := false
	for _, m := range res.Messages {
		if m.Level == core.MessageSuccess {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a success message after a sale, got %v", res.Messages)
	}
}

func TestServeSoftFailsOnEmptyStock(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)
	g.queue = []Customer{makeCustomer("laptop", 5, 1500)}

	g.serveNext()

	if g.money != 1000 {
		t.Errorf("Money changed on a failed sale: $%d", g.money)
	}
	if g.stock["laptop"] != 0 {
		t.Errorf("Inventory went negative: %d", g.stock["laptop"])
	}
	if g.reputation != 47 {
		t.Errorf("Expected angry penalty, reputation %d", g.reputation)
	}
	if len(g.queue) != 0 {
		t.Error("Failed customer should still leave the queue")
	}
}

func TestServeSoftFailsOnBudget(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)
	g.stock["laptop"] = 1
	g.queue = []Customer{makeCustomer("laptop", 5, 100)}

	g.serveNext()

	if g.stock["laptop"] != 1 {
		t.Errorf("Stock changed on a failed sale: %d", g.stock["laptop"])
	}
	if g.money != 1000 {
		t.Errorf("Money changed on a failed sale: $%d", g.money)
	}
}

func TestCounterUpgradeServesTwoPerAction(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)
	g.upgrades.Counter = true
	g.stock["apple"] = 5
	g.queue = []Customer{
		makeCustomer("apple", 5, 700),
		makeCustomer("apple", 5, 700),
		makeCustomer("apple", 5, 700),
	}

	g.serveNext()

	if len(g.queue) != 1 {
		t.Errorf("Expected two customers served, queue has %d left", len(g.queue))
	}
	if g.soldToday["apple"] != 2 {
		t.Errorf("Expected two apples sold, got %d", g.soldToday["apple"])
	}
}

func TestReputationClampedToRange(t *testing.T) {
	g := newTestGame()

	g.reputation = 1
	g.adjustReputation(-3)
	if g.reputation != 0 {
		t.Errorf("Reputation went below zero: %d", g.reputation)
	}

	g.reputation = 99
	g.adjustReputation(2)
	if g.reputation != 100 {
		t.Errorf("Reputation exceeded 100: %d", g.reputation)
	}
}

func TestBuyProductRespectsCapAndFunds(t *testing.T) {
	g := newTestGame()

	for i := 0; i < 10; i++ {
		g.buyProduct("apple")
	}
	if g.stock["apple"] != 5 {
		t.Errorf("Expected stock capped at 5, got %d", g.stock["apple"])
	}
	if g.money != 1000-5*2 {
		t.Errorf("Expected $990 after five apples, got $%d", g.money)
	}

	g.money = 100
	g.buyProduct("laptop")
	if g.stock["laptop"] != 0 || g.money != 100 {
		t.Errorf("Bought a laptop without funds: stock %d, $%d", g.stock["laptop"], g.money)
	}
}

func TestStorageUpgradeRaisesCap(t *testing.T) {
	g := newTestGame()
	g.upgrades.Storage = true
	g.money = 100

	for i := 0; i < 10; i++ {
		g.buyProduct("apple")
	}
	if g.stock["apple"] != 8 {
		t.Errorf("Expected stock capped at 8 with storage, got %d", g.stock["apple"])
	}
}

func TestBuyUpgradeRejectsRepeatsAndPoverty(t *testing.T) {
	g := newTestGame()

	g.buyUpgrade("security")
	if !g.upgrades.Security || g.money != 600 {
		t.Fatalf("Expected security owned at $600, got %v $%d", g.upgrades.Security, g.money)
	}

	g.buyUpgrade("security")
	if g.money != 600 {
		t.Errorf("Repeat purchase moved money: $%d", g.money)
	}

	g.money = 100
	g.buyUpgrade("counter")
	if g.upgrades.Counter || g.money != 100 {
		t.Errorf("Bought an upgrade without funds: %v $%d", g.upgrades.Counter, g.money)
	}
}

func TestSecuritySuppressesRobbery(t *testing.T) {
	g := newTestGame()
	g.stock["apple"] = 3
	g.upgrades.Security = true

	g.handleRobbery()

	if g.stock["apple"] != 3 {
		t.Errorf("Robbery changed inventory despite security: %d", g.stock["apple"])
	}
}

func TestRobberyStealsOneUnit(t *testing.T) {
	g := newTestGame()
	g.stock["apple"] = 3
	g.stock["bread"] = 2

	g.handleRobbery()

	if total := g.stock["apple"] + g.stock["bread"]; total != 4 {
		t.Errorf("Expected one unit stolen, total stock %d", total)
	}
}

func TestDayEndCreditsProfitFromUnitsSold(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)
	g.queue = []Customer{makeCustomer("apple", 5, 700)}
	g.soldToday = map[string]int{"apple": 2, "laptop": 1}
	before := g.money

	g.endDay()

	// apple margin 1 x2, laptop margin 400 x1.
	if g.money != before+402 {
		t.Errorf("Expected $%d after profit credit, got $%d", before+402, g.money)
	}
	if g.day != 2 || g.phase != PhaseWaiting {
		t.Errorf("Expected Waiting on day 2, got %v day %d", g.phase, g.day)
	}
	if len(g.queue) != 0 {
		t.Error("Queue should be discarded at day end")
	}
	if g.sched.Len() != 0 {
		t.Errorf("Expected all tasks cancelled at day end, %d remain", g.sched.Len())
	}
}

func TestDayEndsAtFullProgress(t *testing.T) {
	g := newTestGame()
	press(g, core.ActionStart)
	g.timeProgress = 99

	g.progressTime()

	if g.phase != PhaseWaiting || g.day != 2 {
		t.Errorf("Expected day rollover at 100%%, got %v day %d", g.phase, g.day)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig())
	g2 := New()
	g2.Reset(testConfig())

	input := core.NewInputFrame()
	for i := 0; i < 3000; i++ {
		input.Clear()
		switch i {
		case 0:
			input.Set(core.ActionStart)
		case 10:
			input.Set(core.ActionBuy)
		case 20:
			input.Set(core.ActionDown)
		case 30:
			input.Set(core.ActionBuy)
		case 200, 400, 600:
			input.Set(core.ActionServe)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}
