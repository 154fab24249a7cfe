// Package registry holds the global registry of game factories. Games
// register themselves in init() functions so the platform can discover
// and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/wesleydude/arcade/internal/core"
)

// Game is the interface every arcade game implements. Games are pure
// state machines: the platform owns timing, input mapping, and display,
// and calls Step at a fixed tick rate.
type Game interface {
	// ID returns a unique identifier (e.g. "snake", "cooking").
	// Used for CLI commands and best-score storage.
	ID() string

	// Title returns a human-readable display name.
	Title() string

	// Reset initializes or restarts the game from the given config.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick, consuming the
	// actions triggered during that tick. The result carries the
	// updated state plus any transient messages for the player.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current platform-visible state.
	State() core.GameState
}

// Info describes a registered game.
type Info struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
)

// Register adds a game factory. Called from game init() functions.
// Panics on duplicate IDs; that is a programming error.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	infos[id] = Info{ID: id, Title: f().Title()}
}

// List returns every registered game, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Info, 0, len(infos))
	for _, info := range infos {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
