package nomekop

// Snapshot captures the game state for determinism testing and replay checks.
type Snapshot struct {
	Tick          uint64
	Scene         string
	Running       bool
	PlayerX       float64
	PlayerY       float64
	PlayerColor   string
	Starter       string
	TreeCount     int
	PickerOpen    bool
	DialogVisible bool
	Dialog        string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	f := g.frame
	return Snapshot{
		Tick:          f.Tick,
		Scene:         f.Scene.String(),
		Running:       f.Running,
		PlayerX:       f.Player.X,
		PlayerY:       f.Player.Y,
		PlayerColor:   f.PlayerColor,
		Starter:       string(f.Starter),
		TreeCount:     len(g.session.World().Outdoor.Trees),
		PickerOpen:    f.Overlays.PickerOpen,
		DialogVisible: f.Overlays.DialogVisible,
		Dialog:        f.Overlays.Dialog,
	}
}
