package core

// RuntimeConfig is passed to games at reset. Games use it to adapt to
// screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks a time-based seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// SecondTicks returns the number of simulation ticks in one second.
func (c RuntimeConfig) SecondTicks() uint64 {
	if c.TickRate <= 0 {
		return 60
	}
	return uint64(c.TickRate)
}

// DurationTicks converts a millisecond duration to ticks, never less
// than one.
func (c RuntimeConfig) DurationTicks(ms int) uint64 {
	t := uint64(ms) * c.SecondTicks() / 1000
	if t == 0 {
		t = 1
	}
	return t
}

// GameState is the platform-visible status of a game, returned from
// Game.State and carried in every StepResult.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// MessageLevel classifies a transient message for display styling.
type MessageLevel int

const (
	MessageInfo MessageLevel = iota
	MessageSuccess
	MessageError
)

// Message is a transient user-facing notification produced by a game:
// wrong ingredient, insufficient funds, day summary, and so on. Soft
// failures are reported this way, never as errors.
type Message struct {
	Text  string
	Level MessageLevel
}

// Info builds an informational message.
func Info(text string) Message { return Message{Text: text, Level: MessageInfo} }

// Success builds a success message.
func Success(text string) Message { return Message{Text: text, Level: MessageSuccess} }

// Fail builds an error-level message.
func Fail(text string) Message { return Message{Text: text, Level: MessageError} }

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State    GameState
	Messages []Message // Transient notifications emitted during this tick
}
