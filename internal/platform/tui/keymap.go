package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-nomekop/internal/core"
)

// GameKeyMap defines the key bindings used while playing.
type GameKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Interact  key.Binding
	Inventory key.Binding
	Start     key.Binding
	Reset     key.Binding
	Choose1   key.Binding
	Choose2   key.Binding
	Choose3   key.Binding
	Journal   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Interact, k.Inventory, k.Start, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Interact, k.Inventory, k.Start, k.Reset},
		{k.Choose1, k.Choose2, k.Choose3},
		{k.Journal, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Interact: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "talk/door"),
		),
		Inventory: key.NewBinding(
			key.WithKeys("b", "i"),
			key.WithHelp("b/i", "moves"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new town"),
		),
		Choose1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Blue"),
		),
		Choose2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Red"),
		),
		Choose3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Green"),
		),
		Journal: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "journal"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command is a platform request that never reaches the game.
type Command int

const (
	CommandNone Command = iota
	CommandJournal
	CommandHelp
	CommandQuit
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys     GameKeyMap
	bindings []actionBinding
}

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys GameKeyMap) *KeyMapper {
	return &KeyMapper{
		keys: keys,
		bindings: []actionBinding{
			{keys.Up, core.ActionUp},
			{keys.Down, core.ActionDown},
			{keys.Left, core.ActionLeft},
			{keys.Right, core.ActionRight},
			{keys.Interact, core.ActionInteract},
			{keys.Inventory, core.ActionInventory},
			{keys.Start, core.ActionStart},
			{keys.Reset, core.ActionRestart},
			{keys.Choose1, core.ActionChoose1},
			{keys.Choose2, core.ActionChoose2},
			{keys.Choose3, core.ActionChoose3},
		},
	}
}

// MapKey translates a key message to either a game action or a platform
// command. At most one of the results is set.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, Command) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, CommandQuit
	case key.Matches(msg, km.keys.Journal):
		return core.ActionNone, CommandJournal
	case key.Matches(msg, km.keys.Help):
		return core.ActionNone, CommandHelp
	}

	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			return b.action, CommandNone
		}
	}
	return core.ActionNone, CommandNone
}

// InputLatch turns terminal key presses into per-tick input frames.
//
// Terminals report presses and auto-repeats, never releases. A direction
// counts as held for holdTicks frames after its last press. A pulse fires on
// the first press; repeats of the same key arriving within the hold window
// are treated as auto-repeat and swallowed.
type InputLatch struct {
	holdTicks uint64
	tick      uint64
	lastPress map[core.Action]uint64
	pulses    map[core.Action]bool
}

// NewInputLatch creates a latch with the given hold window. Values below one
// are raised to one.
func NewInputLatch(holdTicks int) *InputLatch {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &InputLatch{
		holdTicks: uint64(holdTicks),
		lastPress: make(map[core.Action]uint64),
		pulses:    make(map[core.Action]bool),
	}
}

// SetHoldTicks changes the hold window. Values below one are raised to one.
func (l *InputLatch) SetHoldTicks(holdTicks int) {
	if holdTicks < 1 {
		holdTicks = 1
	}
	l.holdTicks = uint64(holdTicks)
}

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// Press records a key press for the next frame.
func (l *InputLatch) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}

	if a.IsDirection() {
		// Auto-repeat switches keys when the player turns around.
		delete(l.lastPress, opposite[a])
		l.lastPress[a] = l.tick
		return
	}

	last, seen := l.lastPress[a]
	l.lastPress[a] = l.tick
	if seen && l.tick-last < l.holdTicks {
		return
	}
	l.pulses[a] = true
}

// Frame returns the input for the current tick and advances the latch.
func (l *InputLatch) Frame() core.InputFrame {
	in := core.NewInputFrame()
	for a, last := range l.lastPress {
		if a.IsDirection() && l.tick-last < l.holdTicks {
			in.Set(a)
		}
	}
	for a := range l.pulses {
		in.Set(a)
		delete(l.pulses, a)
	}
	l.tick++
	return in
}

// Release forgets every held direction and pending pulse.
func (l *InputLatch) Release() {
	for a := range l.lastPress {
		delete(l.lastPress, a)
	}
	for a := range l.pulses {
		delete(l.pulses, a)
	}
}
