package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-nomekop/internal/core"
)

// Scene selects which world context is active.
type Scene int

const (
	SceneTown Scene = iota
	SceneHouse
)

// String returns the scene name used in frames and logs.
func (s Scene) String() string {
	switch s {
	case SceneTown:
		return "town"
	case SceneHouse:
		return "house"
	default:
		return "unknown"
	}
}

// MarshalText encodes the scene as its name.
func (s Scene) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a scene name.
func (s *Scene) UnmarshalText(b []byte) error {
	switch string(b) {
	case "town":
		*s = SceneTown
	case "house":
		*s = SceneHouse
	default:
		return fmt.Errorf("sim: unknown scene %q", b)
	}
	return nil
}

// SceneState answers geometry questions for the active scene.
// The scene selector is its only mutable field.
type SceneState struct {
	current Scene
	world   *World
	house   *House
	cfg     *Config
}

func newSceneState(cfg *Config, world *World, house *House) SceneState {
	return SceneState{current: SceneTown, world: world, house: house, cfg: cfg}
}

// Current returns the active scene.
func (s *SceneState) Current() Scene {
	return s.current
}

// ActiveObstacles returns the obstacle collection of the active scene.
func (s *SceneState) ActiveObstacles() []core.RectF {
	if s.current == SceneHouse {
		return s.world.Indoor.Obstacles
	}
	return s.world.Outdoor.Obstacles
}

// ActiveDoor returns the door the player must reach to leave the active scene.
func (s *SceneState) ActiveDoor() core.RectF {
	if s.current == SceneHouse {
		return s.house.IndoorDoor
	}
	return s.house.OutdoorDoor
}

// SpawnPoint returns where a player of size w x h appears after leaving from.
// Leaving the town lands near the bottom of the room; leaving the house lands
// just below the outdoor door, centered on it.
func (s *SceneState) SpawnPoint(from Scene, w, h float64) (float64, float64) {
	if from == SceneTown {
		return s.cfg.Width/2 - w/2, s.cfg.Height - 2*s.cfg.Tile
	}
	return exitSpawn(s.house.OutdoorDoor, w, h)
}

// exitSpawn places a w x h player just below door, centered on it.
func exitSpawn(door core.RectF, w, h float64) (float64, float64) {
	return door.X + door.W/2 - w/2, door.Y + door.H + 4
}

func (s *SceneState) set(scene Scene) {
	s.current = scene
}
