package config

import (
	_ "embed"
)

//go:embed defaults/nomekop.yaml
var defaultNomekopYAML []byte

// DefaultNomekopConfig returns the hardcoded default configuration.
func DefaultNomekopConfig() NomekopConfig {
	return NomekopConfig{
		World: WorldConfig{
			Width:  480,
			Height: 480,
			Tile:   40,
			Speed:  2.2,
		},
		Player: PlayerConfig{
			Width:  26,
			Height: 26,
		},
		Trees: TreeConfig{
			Draws:  26,
			Margin: 6,
		},
		NPC: NPCConfig{
			Size:     28,
			Radius:   50,
			Greeting: "NPC: Welcome to Nomekop!",
		},
		Dialog: DialogConfig{
			DelayMS:      2500,
			StaleDismiss: "clear",
		},
		Layout: LayoutConfig{
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
		Palette: PaletteConfig{
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
		Input: InputConfig{
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default configuration file, comments
// included.
func DefaultYAML() []byte {
	return defaultNomekopYAML
}
