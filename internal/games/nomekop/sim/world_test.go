package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-nomekop/internal/core"
)

func TestNewHouseGeometry(t *testing.T) {
	cfg := DefaultConfig()
	h := NewHouse(cfg)

	if h.Bounds != core.NewRectF(40, 80, 160, 160) {
		t.Errorf("Unexpected house bounds: %+v", h.Bounds)
	}
	if h.OutdoorDoor != core.NewRectF(80, 240, 40, 40) {
		t.Errorf("Unexpected outdoor door: %+v", h.OutdoorDoor)
	}
}

func TestBuildOutdoorStructure(t *testing.T) {
	cfg := DefaultConfig()
	house := NewHouse(cfg)
	out := BuildOutdoor(cfg, house, nil, rand.New(rand.NewSource(1)))

	if len(out.Roads) != cfg.Cols()+cfg.Rows() {
		t.Errorf("Expected %d road tiles, got %d", cfg.Cols()+cfg.Rows(), len(out.Roads))
	}
	if len(out.Trees) > cfg.TreeDraws {
		t.Errorf("Expected at most %d trees, got %d", cfg.TreeDraws, len(out.Trees))
	}
	if len(out.Obstacles) != 4+len(out.Trees) {
		t.Fatalf("Expected 4 walls + %d trees, got %d obstacles", len(out.Trees), len(out.Obstacles))
	}

	walls := houseWalls(house.Bounds, cfg.Tile)
	for i, w := range walls {
		if out.Obstacles[i] != w {
			t.Errorf("Obstacle %d: expected wall %+v, got %+v", i, w, out.Obstacles[i])
		}
	}
	for i, tree := range out.Trees {
		if out.Obstacles[4+i] != tree {
			t.Errorf("Tree %d not appended to obstacles in order", i)
		}
	}

	// Roads are never collidable.
	for _, r := range out.Roads {
		for _, o := range out.Obstacles[4:] {
			if r.Intersects(o) {
				t.Errorf("Road %+v overlaps tree %+v", r, o)
			}
		}
	}
}

func TestTreePlacementConstraint(t *testing.T) {
	cfg := DefaultConfig()
	house := NewHouse(cfg)
	exclusion := house.Bounds.Expand(cfg.Tile)
	keep := core.NewRectF(227, 227, 26, 26)

	for seed := int64(0); seed < 200; seed++ {
		out := BuildOutdoor(cfg, house, []core.RectF{keep}, rand.New(rand.NewSource(seed)))

		if len(out.Trees) != len(out.TreeTiles) {
			t.Fatalf("seed %d: %d trees but %d tiles", seed, len(out.Trees), len(out.TreeTiles))
		}
		for i, tile := range out.TreeTiles {
			if tile.Intersects(exclusion) {
				t.Errorf("seed %d: tree tile %+v inside house zone", seed, tile)
			}
			if tile.Intersects(keep) {
				t.Errorf("seed %d: tree tile %+v covers keep-clear rect", seed, tile)
			}
			for _, r := range out.Roads {
				if tile.Intersects(r) {
					t.Errorf("seed %d: tree tile %+v on road %+v", seed, tile, r)
				}
			}
			if out.Trees[i] != tile.Inset(cfg.TreeMargin) {
				t.Errorf("seed %d: hitbox %+v is not tile %+v inset by %v", seed, out.Trees[i], tile, cfg.TreeMargin)
			}
		}
	}
}

func TestBuildOutdoorDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	house := NewHouse(cfg)

	a := BuildOutdoor(cfg, house, nil, rand.New(rand.NewSource(77)))
	b := BuildOutdoor(cfg, house, nil, rand.New(rand.NewSource(77)))

	if len(a.Trees) != len(b.Trees) {
		t.Fatalf("Tree count mismatch: %d vs %d", len(a.Trees), len(b.Trees))
	}
	for i := range a.Trees {
		if a.Trees[i] != b.Trees[i] {
			t.Errorf("Tree %d mismatch: %+v vs %+v", i, a.Trees[i], b.Trees[i])
		}
	}
}

func TestBuildIndoor(t *testing.T) {
	cfg := DefaultConfig()
	in := BuildIndoor(cfg)

	if in.Door != core.NewRectF(220, 440, 40, 40) {
		t.Errorf("Unexpected indoor door: %+v", in.Door)
	}
	if len(in.Obstacles) != 5 {
		t.Fatalf("Expected 3 full walls + 2 bottom pieces, got %d", len(in.Obstacles))
	}
	for _, o := range in.Obstacles {
		if o.Intersects(in.Door) {
			t.Errorf("Wall %+v blocks the door gap", o)
		}
	}

	// Every tile on the border except the door is walled.
	for c := 0; c < cfg.Cols(); c++ {
		for r := 0; r < cfg.Rows(); r++ {
			if c != 0 && r != 0 && c != cfg.Cols()-1 && r != cfg.Rows()-1 {
				continue
			}
			tile := tileRect(cfg, c, r)
			if tile.Intersects(in.Door) {
				continue
			}
			covered := false
			for _, o := range in.Obstacles {
				if tile.Intersects(o) {
					covered = true
					break
				}
			}
			if !covered {
				t.Errorf("Border tile (%d,%d) is open", c, r)
			}
		}
	}
}

func TestBuildWorldSetsIndoorDoor(t *testing.T) {
	cfg := DefaultConfig()
	world, house, npc := BuildWorld(cfg, nil, rand.New(rand.NewSource(3)))

	if house.IndoorDoor != world.Indoor.Door {
		t.Errorf("House indoor door %+v != built door %+v", house.IndoorDoor, world.Indoor.Door)
	}
	if npc.Rect != core.NewRectF(240, 80, 28, 28) {
		t.Errorf("Unexpected NPC rect: %+v", npc.Rect)
	}
	if npc.Greeting != "NPC: Welcome to Nomekop!" {
		t.Errorf("Unexpected greeting: %q", npc.Greeting)
	}
}
