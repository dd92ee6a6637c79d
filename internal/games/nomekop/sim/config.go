// Package sim contains the world, movement and scene simulation for Nomekop
// Town. It has no platform dependencies: callers feed it normalized input once
// per tick and draw the Frame it returns.
package sim

import (
	"math"
	"time"
)

// DismissPolicy decides what a due dialog dismissal hides.
type DismissPolicy string

const (
	// DismissClear hides whatever dialog is visible when the dismissal fires,
	// even if a newer dialog replaced the one it was scheduled for.
	DismissClear DismissPolicy = "clear"
	// DismissKeep only hides the dialog the dismissal was scheduled for.
	DismissKeep DismissPolicy = "keep"
)

// Layout places the fixed town features on the tile grid.
type Layout struct {
	RoadRow    int // Grid row of the horizontal road
	RoadCol    int // Grid column of the vertical road
	HouseCol   int // Left column of the house
	HouseRow   int // Top row of the house
	HouseCols  int // House width in tiles
	HouseRows  int // House height in tiles
	DoorOffset int // Door column relative to HouseCol
	NPCCol     int
	NPCRow     int
}

// Palette holds the "#rrggbb" colors used in draw primitives.
type Palette struct {
	Grass      string
	Road       string
	House      string
	Roof       string
	Door       string
	NPC        string
	Tree       string
	Floor      string
	IndoorDoor string
	Player     string
	Accessory  string
}

// Config is the full set of simulation constants.
type Config struct {
	Width  float64 // World width in world units
	Height float64 // World height in world units
	Tile   float64 // Tile edge length
	Speed  float64 // Per-axis distance per tick

	PlayerW float64
	PlayerH float64

	TreeDraws  int     // Random placement attempts per rebuild
	TreeMargin float64 // Hitbox inset from the tile edge

	NPCSize   float64
	NPCRadius float64 // Talk distance between player and NPC centers
	Greeting  string

	DialogDelay  time.Duration
	TickRate     int
	StaleDismiss DismissPolicy

	Layout  Layout
	Palette Palette
}

// DefaultConfig returns the stock 480x480 town on a 40-unit grid.
func DefaultConfig() Config {
	return Config{
		Width:      480,
		Height:     480,
		Tile:       40,
		Speed:      2.2,
		PlayerW:    26,
		PlayerH:    26,
		TreeDraws:  26,
		TreeMargin: 6,
		NPCSize:    28,
		NPCRadius:  50,
		Greeting:   "NPC: Welcome to Nomekop!",

		DialogDelay:  2500 * time.Millisecond,
		TickRate:     60,
		StaleDismiss: DismissClear,

		Layout: Layout{
			RoadRow:    7,
			RoadCol:    10,
			HouseCol:   1,
			HouseRow:   2,
			HouseCols:  4,
			HouseRows:  4,
			DoorOffset: 1,
			NPCCol:     6,
			NPCRow:     2,
		},
		Palette: Palette{
			Grass:      "#86d36b",
			Road:       "#bba37d",
			House:      "#b44a4a",
			Roof:       "#8f3939",
			Door:       "#3b2a1f",
			NPC:        "#3a5ea9",
			Tree:       "#2e7b32",
			Floor:      "#d8cfb1",
			IndoorDoor: "#7c5a3a",
			Player:     "#1a1a1a",
			Accessory:  "#ffdb70",
		},
	}
}

// Cols returns the number of grid columns.
func (c Config) Cols() int {
	return int(c.Width / c.Tile)
}

// Rows returns the number of grid rows.
func (c Config) Rows() int {
	return int(c.Height / c.Tile)
}

// DialogDelayTicks converts DialogDelay into simulation ticks (at least 1).
func (c Config) DialogDelayTicks() uint64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	ticks := math.Round(c.DialogDelay.Seconds() * float64(rate))
	if ticks < 1 {
		return 1
	}
	return uint64(ticks)
}
