// Package nomekop adapts the Nomekop Town simulation to the platform Game
// interface: it maps semantic actions onto session input, keeps the latest
// frame, and rasterizes it into a character screen.
package nomekop

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/tui-nomekop/internal/config"
	"github.com/vovakirdan/tui-nomekop/internal/core"
	"github.com/vovakirdan/tui-nomekop/internal/games/nomekop/sim"
	"github.com/vovakirdan/tui-nomekop/internal/registry"
)

// Variant selects the dialog dismissal policy.
type Variant int

const (
	VariantClassic Variant = iota // Stale dismissals clear any dialog
	VariantStrict                 // Stale dismissals only clear their own dialog
)

// FrameSink receives every frame the game produces.
type FrameSink interface {
	WriteFrame(f sim.Frame) error
}

// configPath stores the custom config path set via CLI
var configPath string

var (
	sinkMu sync.RWMutex
	sink   FrameSink
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetRecorder installs a sink that receives every frame of every game created
// afterwards. Pass nil to stop recording.
func SetRecorder(s FrameSink) {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	sink = s
}

func currentSink() FrameSink {
	sinkMu.RLock()
	defer sinkMu.RUnlock()
	return sink
}

// Game implements registry.Game for Nomekop Town.
type Game struct {
	variant Variant

	runtime core.RuntimeConfig
	cfg     config.NomekopConfig
	cfgErr  error

	session *sim.Session
	frame   sim.Frame

	sink    FrameSink
	sinkErr error

	glyphs map[string]rune
	colors map[string]core.Color
}

// New creates the classic variant.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewStrict creates the variant whose dialog timers never hide newer dialogs.
func NewStrict() *Game {
	return &Game{variant: VariantStrict}
}

func init() {
	registry.Register("nomekop", func() registry.Game {
		return New()
	})
	registry.Register("nomekop_strict", func() registry.Game {
		return NewStrict()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantStrict {
		return "nomekop_strict"
	}
	return "nomekop"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantStrict {
		return "Nomekop Town (strict dialogs)"
	}
	return "Nomekop Town"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	return "Explore the town, visit the house and pick your first Nomekop"
}

// SessionConfig converts the YAML configuration into simulation constants.
func SessionConfig(cfg config.NomekopConfig, tickRate int) sim.Config {
	return sim.Config{
		Width:        cfg.World.Width,
		Height:       cfg.World.Height,
		Tile:         cfg.World.Tile,
		Speed:        cfg.World.Speed,
		PlayerW:      cfg.Player.Width,
		PlayerH:      cfg.Player.Height,
		TreeDraws:    cfg.Trees.Draws,
		TreeMargin:   cfg.Trees.Margin,
		NPCSize:      cfg.NPC.Size,
		NPCRadius:    cfg.NPC.Radius,
		Greeting:     cfg.NPC.Greeting,
		DialogDelay:  time.Duration(cfg.Dialog.DelayMS) * time.Millisecond,
		TickRate:     tickRate,
		StaleDismiss: sim.DismissPolicy(strings.ToLower(cfg.Dialog.StaleDismiss)),
		Layout: sim.Layout{
			RoadRow:    cfg.Layout.RoadRow,
			RoadCol:    cfg.Layout.RoadCol,
			HouseCol:   cfg.Layout.HouseCol,
			HouseRow:   cfg.Layout.HouseRow,
			HouseCols:  cfg.Layout.HouseCols,
			HouseRows:  cfg.Layout.HouseRows,
			DoorOffset: cfg.Layout.DoorOffset,
			NPCCol:     cfg.Layout.NPCCol,
			NPCRow:     cfg.Layout.NPCRow,
		},
		Palette: sim.Palette{
			Grass:      cfg.Palette.Grass,
			Road:       cfg.Palette.Road,
			House:      cfg.Palette.House,
			Roof:       cfg.Palette.Roof,
			Door:       cfg.Palette.Door,
			NPC:        cfg.Palette.NPC,
			Tree:       cfg.Palette.Tree,
			Floor:      cfg.Palette.Floor,
			IndoorDoor: cfg.Palette.IndoorDoor,
			Player:     cfg.Palette.Player,
			Accessory:  cfg.Palette.Accessory,
		},
	}
}

// Reset loads configuration and builds a new session seeded from cfg.Seed.
// A broken config file falls back to the defaults; ConfigError reports it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	g.cfg, g.cfgErr = config.LoadNomekop(configPath)
	if g.cfgErr != nil {
		g.cfg = config.DefaultNomekopConfig()
	}

	simCfg := SessionConfig(g.cfg, g.runtime.TickRate)
	if g.variant == VariantStrict {
		simCfg.StaleDismiss = sim.DismissKeep
	}

	g.session = sim.NewSession(simCfg, rand.New(rand.NewSource(cfg.Seed)))
	g.frame = g.session.Frame()
	g.sink = currentSink()
	g.sinkErr = nil
	g.buildStyles(simCfg.Palette)
}

// ConfigError returns the error from the last config load, if any.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// RecorderError returns the first error the frame sink reported. Recording
// stops after it.
func (g *Game) RecorderError() error {
	return g.sinkErr
}

// HoldTicks returns how long terminal platforms keep a direction held.
func (g *Game) HoldTicks() int {
	return g.cfg.Input.HoldTicks
}

// ToInput maps one tick of semantic actions onto session input.
func ToInput(in core.InputFrame) sim.Input {
	out := sim.Input{
		Held: sim.Held{
			Up:    in.Has(core.ActionUp),
			Down:  in.Has(core.ActionDown),
			Left:  in.Has(core.ActionLeft),
			Right: in.Has(core.ActionRight),
		},
		Interact:  in.Has(core.ActionInteract),
		Inventory: in.Has(core.ActionInventory),
		Start:     in.Has(core.ActionStart),
		Reset:     in.Has(core.ActionRestart),
	}

	choices := []core.Action{core.ActionChoose1, core.ActionChoose2, core.ActionChoose3}
	for i, a := range choices {
		if in.Has(a) {
			if st, ok := sim.StarterAt(i); ok {
				out.Choose = st.ID
			}
			break
		}
	}
	return out
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame = g.session.Step(ToInput(in))

	if g.sink != nil {
		if err := g.sink.WriteFrame(g.frame); err != nil {
			g.sinkErr = err
			g.sink = nil
		}
	}

	return core.StepResult{
		State:  g.State(),
		Events: g.session.DrainEvents(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Tick:    g.session.Tick(),
		Running: g.session.Running(),
		Scene:   g.session.Scene().String(),
	}
}

// Frame returns the frame produced by the last tick.
func (g *Game) Frame() sim.Frame {
	return g.frame
}

// Session exposes the underlying session.
func (g *Game) Session() *sim.Session {
	return g.session
}
