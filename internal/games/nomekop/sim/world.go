package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-nomekop/internal/core"
)

// House is the single enterable building in the town.
type House struct {
	Bounds      core.RectF `json:"bounds"`
	OutdoorDoor core.RectF `json:"outdoorDoor"`
	IndoorDoor  core.RectF `json:"indoorDoor"`
}

// NPC is the villager standing in the town.
type NPC struct {
	Rect     core.RectF `json:"rect"`
	Greeting string     `json:"greeting"`
}

// Outdoor is the result of one town build.
type Outdoor struct {
	Roads     []core.RectF // Placement exclusion only, never collidable
	Obstacles []core.RectF // House walls first, then trees
	Trees     []core.RectF // Tree hitboxes
	TreeTiles []core.RectF // Full tile of each tree, same order as Trees
}

// Indoor is the result of one house interior build.
type Indoor struct {
	Obstacles []core.RectF
	Door      core.RectF
}

// World holds both obstacle collections of a session.
type World struct {
	Outdoor Outdoor
	Indoor  Indoor
}

func tileRect(cfg Config, col, row int) core.RectF {
	return core.NewRectF(float64(col)*cfg.Tile, float64(row)*cfg.Tile, cfg.Tile, cfg.Tile)
}

// NewHouse places the house and its outdoor door from the layout. The door is
// one tile directly beneath the bottom wall band.
func NewHouse(cfg Config) House {
	l := cfg.Layout
	bounds := core.NewRectF(
		float64(l.HouseCol)*cfg.Tile,
		float64(l.HouseRow)*cfg.Tile,
		float64(l.HouseCols)*cfg.Tile,
		float64(l.HouseRows)*cfg.Tile,
	)
	door := core.NewRectF(
		bounds.X+float64(l.DoorOffset)*cfg.Tile,
		bounds.Bottom(),
		cfg.Tile,
		cfg.Tile,
	)
	return House{Bounds: bounds, OutdoorDoor: door}
}

// NewNPC places the villager at its layout cell.
func NewNPC(cfg Config) NPC {
	x := float64(cfg.Layout.NPCCol) * cfg.Tile
	y := float64(cfg.Layout.NPCRow) * cfg.Tile
	return NPC{
		Rect:     core.NewRectF(x, y, cfg.NPCSize, cfg.NPCSize),
		Greeting: cfg.Greeting,
	}
}

// houseWalls returns the four one-tile bands around the house bounds.
func houseWalls(b core.RectF, tile float64) []core.RectF {
	return []core.RectF{
		core.NewRectF(b.X, b.Y, b.W, tile),
		core.NewRectF(b.X, b.Bottom()-tile, b.W, tile),
		core.NewRectF(b.X, b.Y, tile, b.H),
		core.NewRectF(b.Right()-tile, b.Y, tile, b.H),
	}
}

// BuildOutdoor lays out roads, house walls and trees. Each of cfg.TreeDraws
// draws picks a random cell and is discarded when its tile touches a road, the
// house footprint grown by one tile, or any keep-clear rect. Discarded draws
// are not retried.
func BuildOutdoor(cfg Config, house House, keepClear []core.RectF, rng *rand.Rand) Outdoor {
	cols, rows := cfg.Cols(), cfg.Rows()
	out := Outdoor{}

	for c := 0; c < cols; c++ {
		out.Roads = append(out.Roads, tileRect(cfg, c, cfg.Layout.RoadRow))
	}
	for r := 0; r < rows; r++ {
		out.Roads = append(out.Roads, tileRect(cfg, cfg.Layout.RoadCol, r))
	}

	out.Obstacles = append(out.Obstacles, houseWalls(house.Bounds, cfg.Tile)...)

	exclusion := house.Bounds.Expand(cfg.Tile)
	for i := 0; i < cfg.TreeDraws; i++ {
		col := rng.Intn(cols)
		row := rng.Intn(rows)
		tile := tileRect(cfg, col, row)
		if !treeAllowed(tile, out.Roads, exclusion, keepClear) {
			continue
		}
		hitbox := tile.Inset(cfg.TreeMargin)
		out.Trees = append(out.Trees, hitbox)
		out.TreeTiles = append(out.TreeTiles, tile)
		out.Obstacles = append(out.Obstacles, hitbox)
	}

	return out
}

func treeAllowed(tile core.RectF, roads []core.RectF, house core.RectF, keepClear []core.RectF) bool {
	if tile.Intersects(house) {
		return false
	}
	for _, r := range roads {
		if tile.Intersects(r) {
			return false
		}
	}
	for _, k := range keepClear {
		if tile.Intersects(k) {
			return false
		}
	}
	return true
}

// BuildIndoor closes the room with four wall bands and leaves a one-tile gap
// centered in the bottom wall. The gap is the indoor door.
func BuildIndoor(cfg Config) Indoor {
	w, h, t := cfg.Width, cfg.Height, cfg.Tile
	door := core.NewRectF(w/2-t/2, h-t, t, t)

	return Indoor{
		Obstacles: []core.RectF{
			core.NewRectF(0, 0, w, t),
			core.NewRectF(0, 0, t, h),
			core.NewRectF(w-t, 0, t, h),
			core.NewRectF(0, h-t, door.X, t),
			core.NewRectF(door.Right(), h-t, w-door.Right(), t),
		},
		Door: door,
	}
}

// BuildWorld runs both builder passes and fills in the house's indoor door.
func BuildWorld(cfg Config, keepClear []core.RectF, rng *rand.Rand) (World, House, NPC) {
	house := NewHouse(cfg)
	npc := NewNPC(cfg)
	indoor := BuildIndoor(cfg)
	house.IndoorDoor = indoor.Door

	world := World{
		Outdoor: BuildOutdoor(cfg, house, keepClear, rng),
		Indoor:  indoor,
	}
	return world, house, npc
}
