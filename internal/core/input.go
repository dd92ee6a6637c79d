package core

// Action is a semantic input, independent of the key or message that
// produced it.
//
// Directions describe held state for the current tick. Every other action
// is a pulse that fires at most once per physical press.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - held
	ActionDown             // S, Down arrow - held
	ActionLeft             // A, Left arrow - held
	ActionRight            // D, Right arrow - held
	ActionInteract         // E - talk / use door
	ActionInventory        // B, I - show the companion's moves
	ActionStart            // Enter - leave the idle state
	ActionRestart          // R - rebuild the world and start over
	ActionChoose1          // 1 - first catalog entry while the picker is open
	ActionChoose2          // 2
	ActionChoose3          // 3
	ActionQuit             // Q, Ctrl+C - leave the game
)

var actionNames = [...]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionInteract:  "Interact",
	ActionInventory: "Inventory",
	ActionStart:     "Start",
	ActionRestart:   "Restart",
	ActionChoose1:   "Choose1",
	ActionChoose2:   "Choose2",
	ActionChoose3:   "Choose3",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// IsDirection reports whether the action describes held movement.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame is the input of one player for one tick: the directions held
// during the tick plus the pulses delivered since the previous one.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an input frame with the given actions set.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active for this tick.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action is active for this tick.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}
