// Package config provides YAML-based configuration loading for Nomekop Town.
package config

import (
	"fmt"
	"strings"
)

// NomekopConfig contains all configuration for the Nomekop game.
type NomekopConfig struct {
	World   WorldConfig   `yaml:"world"`
	Player  PlayerConfig  `yaml:"player"`
	Trees   TreeConfig    `yaml:"trees"`
	NPC     NPCConfig     `yaml:"npc"`
	Dialog  DialogConfig  `yaml:"dialog"`
	Layout  LayoutConfig  `yaml:"layout"`
	Palette PaletteConfig `yaml:"palette"`
	Input   InputConfig   `yaml:"input"`
}

// WorldConfig defines the world size and movement speed.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Tile   float64 `yaml:"tile"`
	Speed  float64 `yaml:"speed"` // World units per tick on each axis
}

// PlayerConfig defines the avatar size.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TreeConfig defines random tree placement.
type TreeConfig struct {
	Draws  int     `yaml:"draws"`
	Margin float64 `yaml:"margin"`
}

// NPCConfig defines the villager.
type NPCConfig struct {
	Size     float64 `yaml:"size"`
	Radius   float64 `yaml:"radius"`
	Greeting string  `yaml:"greeting"`
}

// DialogConfig defines dialog auto-dismissal.
type DialogConfig struct {
	DelayMS      int    `yaml:"delay_ms"`
	StaleDismiss string `yaml:"stale_dismiss"` // "clear" or "keep"
}

// LayoutConfig places fixed town features on the tile grid.
type LayoutConfig struct {
	RoadRow    int `yaml:"road_row"`
	RoadCol    int `yaml:"road_col"`
	HouseCol   int `yaml:"house_col"`
	HouseRow   int `yaml:"house_row"`
	HouseCols  int `yaml:"house_cols"`
	HouseRows  int `yaml:"house_rows"`
	DoorOffset int `yaml:"door_offset"`
	NPCCol     int `yaml:"npc_col"`
	NPCRow     int `yaml:"npc_row"`
}

// PaletteConfig holds "#rrggbb" colors.
type PaletteConfig struct {
	Grass      string `yaml:"grass"`
	Road       string `yaml:"road"`
	House      string `yaml:"house"`
	Roof       string `yaml:"roof"`
	Door       string `yaml:"door"`
	NPC        string `yaml:"npc"`
	Tree       string `yaml:"tree"`
	Floor      string `yaml:"floor"`
	IndoorDoor string `yaml:"indoor_door"`
	Player     string `yaml:"player"`
	Accessory  string `yaml:"accessory"`
}

// InputConfig tunes keyboard handling on terminals.
type InputConfig struct {
	// HoldTicks is how long a direction stays held after its last key press.
	// Terminals report repeats but no key release.
	HoldTicks int `yaml:"hold_ticks"`
}

// Validate reports the first setting that would produce a broken world.
func (c NomekopConfig) Validate() error {
	w := c.World
	if w.Width <= 0 || w.Height <= 0 || w.Tile <= 0 {
		return fmt.Errorf("config: world width, height and tile must be positive")
	}
	if w.Speed <= 0 {
		return fmt.Errorf("config: world speed must be positive, got %v", w.Speed)
	}
	cols, rows := int(w.Width/w.Tile), int(w.Height/w.Tile)
	if float64(cols)*w.Tile != w.Width || float64(rows)*w.Tile != w.Height {
		return fmt.Errorf("config: world %vx%v is not a whole number of %v tiles", w.Width, w.Height, w.Tile)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Width > w.Width || c.Player.Height > w.Height {
		return fmt.Errorf("config: player size %vx%v does not fit the world", c.Player.Width, c.Player.Height)
	}
	if c.Trees.Draws < 0 {
		return fmt.Errorf("config: trees.draws must not be negative")
	}
	if c.Trees.Margin < 0 || 2*c.Trees.Margin >= w.Tile {
		return fmt.Errorf("config: trees.margin %v leaves no hitbox", c.Trees.Margin)
	}
	// The player must fit a tile with room for the 4-unit gap below the
	// outdoor door, so both spawn points start clear of walls.
	if c.Player.Width > w.Tile || c.Player.Height+4 > w.Tile {
		return fmt.Errorf("config: player %vx%v does not fit a %v tile", c.Player.Width, c.Player.Height, w.Tile)
	}
	// Movement resolves collisions only at the end of each step, so a step
	// as long as the thinnest body would pass through it.
	thinnest := min(w.Tile-2*c.Trees.Margin, c.Player.Width, c.Player.Height)
	if w.Speed >= thinnest {
		return fmt.Errorf("config: world speed %v must be below %v", w.Speed, thinnest)
	}
	if c.Dialog.DelayMS <= 0 {
		return fmt.Errorf("config: dialog.delay_ms must be positive")
	}
	switch strings.ToLower(c.Dialog.StaleDismiss) {
	case "clear", "keep":
	default:
		return fmt.Errorf("config: dialog.stale_dismiss must be clear or keep, got %q", c.Dialog.StaleDismiss)
	}

	l := c.Layout
	if l.RoadRow < 0 || l.RoadRow >= rows || l.RoadCol < 0 || l.RoadCol >= cols {
		return fmt.Errorf("config: road row %d / column %d outside the %dx%d grid", l.RoadRow, l.RoadCol, cols, rows)
	}
	if l.HouseCols < 3 || l.HouseRows < 3 {
		return fmt.Errorf("config: house must be at least 3x3 tiles")
	}
	if l.HouseCol < 0 || l.HouseRow < 0 || l.HouseCol+l.HouseCols > cols || l.HouseRow+l.HouseRows >= rows {
		return fmt.Errorf("config: house and its door must fit inside the grid")
	}
	if l.DoorOffset < 0 || l.DoorOffset >= l.HouseCols {
		return fmt.Errorf("config: door_offset %d outside the house", l.DoorOffset)
	}
	if l.NPCCol < 0 || l.NPCCol >= cols || l.NPCRow < 0 || l.NPCRow >= rows {
		return fmt.Errorf("config: npc cell (%d,%d) outside the grid", l.NPCCol, l.NPCRow)
	}
	if c.Input.HoldTicks < 1 {
		return fmt.Errorf("config: input.hold_ticks must be at least 1")
	}
	return nil
}
