package sim

import "github.com/vovakirdan/tui-nomekop/internal/core"

// Interact handles one interact pulse. In the town, talking to a nearby NPC
// wins over the door.
func (s *Session) Interact() {
	p := s.player.Rect
	switch s.scenes.Current() {
	case SceneTown:
		if s.nearNPC() {
			s.dialog.ShowFor(s.npc.Greeting, s.tick, s.cfg.DialogDelayTicks())
			s.emit(core.EventDialogShown, s.npc.Greeting)
			return
		}
		if p.Intersects(s.house.OutdoorDoor) {
			s.enterHouse()
		}
	case SceneHouse:
		if p.Intersects(s.house.IndoorDoor) {
			s.exitHouse()
		}
	}
}

func (s *Session) nearNPC() bool {
	px, py := s.player.Rect.Center()
	nx, ny := s.npc.Rect.Center()
	return core.Distance(px, py, nx, ny) < s.cfg.NPCRadius
}

func (s *Session) enterHouse() {
	x, y := s.scenes.SpawnPoint(SceneTown, s.player.Rect.W, s.player.Rect.H)
	s.scenes.set(SceneHouse)
	s.player.Rect.X, s.player.Rect.Y = x, y
	s.dialog.Hide()
	s.emit(core.EventSceneChanged, SceneHouse.String())

	if st, ok := s.progression.Picked(); ok {
		s.dialog.Show("Welcome back! You have " + st.Name + ".")
		return
	}
	s.pickerOpen = true
}

func (s *Session) exitHouse() {
	x, y := s.scenes.SpawnPoint(SceneHouse, s.player.Rect.W, s.player.Rect.H)
	s.scenes.set(SceneTown)
	s.player.Rect.X, s.player.Rect.Y = x, y
	s.dialog.Hide()
	s.pickerOpen = false
	s.emit(core.EventSceneChanged, SceneTown.String())
}
