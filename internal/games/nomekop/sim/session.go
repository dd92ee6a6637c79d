package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-nomekop/internal/core"
)

// Player is the avatar the user controls.
type Player struct {
	Rect  core.RectF
	Color string
}

// Input is the normalized input for one tick. Held is level-triggered; every
// other field is a pulse that the caller sets for exactly one tick per press.
type Input struct {
	Held      Held
	Interact  bool
	Inventory bool
	Start     bool
	Reset     bool
	Choose    StarterID // Empty when no choice was made this tick
}

// Session owns all mutable game state: world, scene, player, progression and
// overlays. It is not safe for concurrent use; platforms step it from a
// single goroutine.
type Session struct {
	cfg Config
	rng *rand.Rand

	tick    uint64
	running bool

	world  World
	house  House
	npc    NPC
	scenes SceneState

	player      Player
	progression Progression

	dialog           dialogBox
	pickerOpen       bool
	inventoryVisible bool
	inventoryText    string

	events []core.Event
}

// NewSession builds a fresh world from rng and returns an idle session.
func NewSession(cfg Config, rng *rand.Rand) *Session {
	s := &Session{
		cfg:    cfg,
		rng:    rng,
		dialog: newDialogBox(cfg.StaleDismiss),
	}
	s.scenes = newSceneState(&s.cfg, &s.world, &s.house)
	s.rebuild()
	return s
}

// Config returns the session constants.
func (s *Session) Config() Config {
	return s.cfg
}

// Tick returns the number of Step calls so far. It never resets.
func (s *Session) Tick() uint64 {
	return s.tick
}

// Running reports whether movement is enabled.
func (s *Session) Running() bool {
	return s.running
}

// Scene returns the active scene.
func (s *Session) Scene() Scene {
	return s.scenes.Current()
}

// Scenes exposes the scene geometry accessors.
func (s *Session) Scenes() *SceneState {
	return &s.scenes
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player
}

// World returns the current obstacle collections.
func (s *Session) World() World {
	return s.world
}

// House returns the house geometry.
func (s *Session) House() House {
	return s.house
}

// NPC returns the villager.
func (s *Session) NPC() NPC {
	return s.npc
}

// Progression returns the starter progression.
func (s *Session) Progression() *Progression {
	return &s.progression
}

// PickerOpen reports whether the starter picker is shown.
func (s *Session) PickerOpen() bool {
	return s.pickerOpen
}

// Start leaves the idle state. Starting twice is a no-op.
func (s *Session) Start() {
	if s.running {
		return
	}
	s.running = true
	s.emit(core.EventStarted, "")
}

// Reset returns to idle in the town with a freshly built world and no starter.
// Pending dialog dismissals stay scheduled.
func (s *Session) Reset() {
	s.running = false
	s.scenes.set(SceneTown)
	s.progression.Reset()
	s.dialog.Hide()
	s.pickerOpen = false
	s.hideInventory()
	s.rebuild()
	s.emit(core.EventReset, "")
}

// Step runs one tick: reset and start signals, movement, the starter choice,
// the interact and inventory pulses, then due dialog dismissals.
func (s *Session) Step(in Input) Frame {
	s.tick++

	if in.Reset {
		s.Reset()
	}
	if in.Start {
		s.Start()
	}
	if s.running {
		s.player.Rect = Advance(s.player.Rect, in.Held, s.scenes.ActiveObstacles(), s.cfg.Width, s.cfg.Height, s.cfg.Speed)
	}
	if in.Choose != "" {
		s.ChooseStarter(in.Choose)
	}
	if in.Interact {
		s.Interact()
	}
	if in.Inventory {
		s.ToggleInventory()
	}
	s.dialog.Advance(s.tick)

	return s.Frame()
}

// DrainEvents returns and clears the events recorded since the last call.
func (s *Session) DrainEvents() []core.Event {
	out := s.events
	s.events = nil
	return out
}

// ChooseStarter picks a starter while the picker is open. It returns false
// when the picker is closed, the ID is unknown, or a starter was already
// chosen.
func (s *Session) ChooseStarter(id StarterID) bool {
	if !s.pickerOpen {
		return false
	}
	st, ok := LookupStarter(id)
	if !ok {
		return false
	}
	if !s.progression.Choose(st) {
		return false
	}
	s.player.Color = st.Color
	s.pickerOpen = false
	s.dialog.Show("You chose " + st.Name + "! Go to the bottom door and press E to leave.")
	s.emit(core.EventStarterChosen, string(st.ID))
	return true
}

// ToggleInventory shows the chosen starter's moves, or hides them when they
// are already shown. Without a starter it does nothing.
func (s *Session) ToggleInventory() {
	if s.inventoryVisible {
		s.hideInventory()
		return
	}
	st, ok := s.progression.Picked()
	if !ok {
		return
	}
	s.inventoryText = inventoryLine(st, s.progression.ListMoves())
	s.inventoryVisible = true
}

func (s *Session) hideInventory() {
	s.inventoryVisible = false
	s.inventoryText = ""
}

func (s *Session) rebuild() {
	x := s.cfg.Width/2 - s.cfg.PlayerW/2
	y := s.cfg.Height/2 - s.cfg.PlayerH/2
	s.player = Player{
		Rect:  core.NewRectF(x, y, s.cfg.PlayerW, s.cfg.PlayerH),
		Color: s.cfg.Palette.Player,
	}

	ex, ey := exitSpawn(NewHouse(s.cfg).OutdoorDoor, s.cfg.PlayerW, s.cfg.PlayerH)
	keepClear := []core.RectF{
		s.player.Rect,
		core.NewRectF(ex, ey, s.cfg.PlayerW, s.cfg.PlayerH),
		NewNPC(s.cfg).Rect,
	}
	s.world, s.house, s.npc = BuildWorld(s.cfg, keepClear, s.rng)
}

func (s *Session) emit(kind core.EventKind, detail string) {
	s.events = append(s.events, core.Event{Kind: kind, Detail: detail, Tick: s.tick})
}
