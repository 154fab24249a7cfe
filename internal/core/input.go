package core

// Action is a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; games never see raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow - snake direction / menu cursor
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionStart        // Enter - start the game / start the shop day
	ActionServe        // Space - serve the dish / serve next customer
	ActionBuy          // B - buy the highlighted product or upgrade
	ActionPanel        // Tab - switch shop panel (stock / upgrades)
	ActionPause        // P, Esc - pause/unpause
	ActionRestart      // R - restart after game over / start next day
	ActionBack         // Esc from menus - go back
	ActionQuit         // Q, Ctrl+C - exit session
	ActionSlot1        // 1..6 - ingredient slots, 1:1 with the catalog
	ActionSlot2
	ActionSlot3
	ActionSlot4
	ActionSlot5
	ActionSlot6
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionServe:
		return "Serve"
	case ActionBuy:
		return "Buy"
	case ActionPanel:
		return "Panel"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionSlot1, ActionSlot2, ActionSlot3, ActionSlot4, ActionSlot5, ActionSlot6:
		return "Slot"
	default:
		return "Unknown"
	}
}

// SlotIndex returns the zero-based slot number for slot actions, or -1.
func (a Action) SlotIndex() int {
	if a >= ActionSlot1 && a <= ActionSlot6 {
		return int(a - ActionSlot1)
	}
	return -1
}

// InputFrame holds every action triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Slot returns the first triggered slot action as a zero-based index,
// or -1 if no slot key was pressed this frame.
func (f InputFrame) Slot() int {
	for a := ActionSlot1; a <= ActionSlot6; a++ {
		if f.Actions[a] {
			return a.SlotIndex()
		}
	}
	return -1
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
