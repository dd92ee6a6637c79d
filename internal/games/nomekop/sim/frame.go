package sim

import (
	"strings"

	"github.com/vovakirdan/tui-nomekop/internal/core"
)

// PrimitiveKind is the shape of a draw primitive.
type PrimitiveKind string

const (
	KindRect   PrimitiveKind = "rect"
	KindCircle PrimitiveKind = "circle"
)

// Primitive is one filled shape in world units. Circles use X, Y as the
// center and R as the radius.
type Primitive struct {
	Kind  PrimitiveKind `json:"kind"`
	X     float64       `json:"x"`
	Y     float64       `json:"y"`
	W     float64       `json:"w,omitempty"`
	H     float64       `json:"h,omitempty"`
	R     float64       `json:"r,omitempty"`
	Color string        `json:"color"`
}

func rectPrim(r core.RectF, color string) Primitive {
	return Primitive{Kind: KindRect, X: r.X, Y: r.Y, W: r.W, H: r.H, Color: color}
}

func circlePrim(cx, cy, radius float64, color string) Primitive {
	return Primitive{Kind: KindCircle, X: cx, Y: cy, R: radius, Color: color}
}

// PickerEntry is one selectable line of the starter picker.
type PickerEntry struct {
	ID    StarterID `json:"id"`
	Label string    `json:"label"`
	Color string    `json:"color"`
}

// Overlays is the UI state a platform shows on top of the scene.
type Overlays struct {
	PickerOpen       bool          `json:"pickerOpen"`
	Picker           []PickerEntry `json:"picker,omitempty"`
	DialogVisible    bool          `json:"dialogVisible"`
	Dialog           string        `json:"dialog,omitempty"`
	InventoryVisible bool          `json:"inventoryVisible"`
	Inventory        string        `json:"inventory,omitempty"`
}

// Frame is everything a platform needs to draw one tick.
type Frame struct {
	Tick        uint64      `json:"tick"`
	Scene       Scene       `json:"scene"`
	Running     bool        `json:"running"`
	Width       float64     `json:"width"`
	Height      float64     `json:"height"`
	Player      core.RectF  `json:"player"`
	PlayerColor string      `json:"playerColor"`
	Starter     StarterID   `json:"starter,omitempty"`
	Primitives  []Primitive `json:"primitives"`
	Overlays    Overlays    `json:"overlays"`
}

// Frame builds the draw list for the current state without advancing it.
func (s *Session) Frame() Frame {
	f := Frame{
		Tick:        s.tick,
		Scene:       s.scenes.Current(),
		Running:     s.running,
		Width:       s.cfg.Width,
		Height:      s.cfg.Height,
		Player:      s.player.Rect,
		PlayerColor: s.player.Color,
	}
	if st, ok := s.progression.Picked(); ok {
		f.Starter = st.ID
	}

	if f.Scene == SceneHouse {
		f.Primitives = s.housePrimitives()
	} else {
		f.Primitives = s.townPrimitives()
	}
	f.Primitives = append(f.Primitives, s.playerPrimitives()...)
	f.Overlays = s.overlays()
	return f
}

func (s *Session) townPrimitives() []Primitive {
	pal := s.cfg.Palette
	prims := make([]Primitive, 0, 8+len(s.world.Outdoor.Roads)+2*len(s.world.Outdoor.Trees))

	prims = append(prims, rectPrim(core.NewRectF(0, 0, s.cfg.Width, s.cfg.Height), pal.Grass))
	for _, r := range s.world.Outdoor.Roads {
		prims = append(prims, rectPrim(r, pal.Road))
	}

	b := s.house.Bounds
	prims = append(prims,
		rectPrim(b, pal.House),
		rectPrim(core.NewRectF(b.X, b.Y, b.W, s.cfg.Tile), pal.Roof),
		rectPrim(s.house.OutdoorDoor, pal.Door),
		rectPrim(s.npc.Rect, pal.NPC),
	)

	for _, t := range s.world.Outdoor.Trees {
		prims = append(prims,
			rectPrim(core.NewRectF(t.X+10, t.Y+18, 8, 10), pal.Tree),
			circlePrim(t.X+t.W/2, t.Y+14, 16, pal.Tree),
		)
	}
	return prims
}

func (s *Session) housePrimitives() []Primitive {
	pal := s.cfg.Palette
	prims := []Primitive{
		rectPrim(core.NewRectF(0, 0, s.cfg.Width, s.cfg.Height), pal.Floor),
		rectPrim(s.house.IndoorDoor, pal.IndoorDoor),
	}
	if st, ok := s.progression.Picked(); ok {
		prims = append(prims, rectPrim(core.NewRectF(s.cfg.Width/2-20, s.cfg.Height/2-20, 40, 40), st.Color))
	}
	return prims
}

func (s *Session) playerPrimitives() []Primitive {
	p := s.player.Rect
	return []Primitive{
		rectPrim(p, s.player.Color),
		rectPrim(core.NewRectF(p.X+6, p.Y-2, 14, 6), s.cfg.Palette.Accessory),
	}
}

func (s *Session) overlays() Overlays {
	o := Overlays{
		PickerOpen:       s.pickerOpen,
		InventoryVisible: s.inventoryVisible,
		Inventory:        s.inventoryText,
	}
	o.Dialog, o.DialogVisible = s.dialog.Visible()
	if s.pickerOpen {
		for _, st := range catalog {
			o.Picker = append(o.Picker, PickerEntry{ID: st.ID, Label: st.Name, Color: st.Color})
		}
	}
	return o
}

// inventoryLine formats the inventory overlay text for st.
func inventoryLine(st Starter, moves []string) string {
	return st.Name + "'s moves: " + strings.Join(moves, ", ")
}
