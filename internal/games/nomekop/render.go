package nomekop

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-nomekop/internal/core"
	"github.com/vovakirdan/tui-nomekop/internal/games/nomekop/sim"
)

const (
	hudHeight  = 2
	minScreenW = 24
	minScreenH = 10
	cellAspect = 2.0 // Terminal cells are about twice as tall as wide
)

// viewport maps world units onto screen cells.
type viewport struct {
	offX, offY int     // Screen cell of the world origin
	cols, rows int     // Cells covered by the world
	sx, sy     float64 // World units per cell
}

func newViewport(screenW, screenH int, worldW, worldH float64) (viewport, bool) {
	availW := screenW
	availH := screenH - hudHeight
	if screenW < minScreenW || screenH < minScreenH || availH <= 0 {
		return viewport{}, false
	}

	sx := math.Max(worldW/float64(availW), worldH/(float64(availH)*cellAspect))
	sy := sx * cellAspect

	v := viewport{
		cols: core.Min(int(math.Ceil(worldW/sx)), availW),
		rows: core.Min(int(math.Ceil(worldH/sy)), availH),
		sx:   sx,
		sy:   sy,
	}
	v.offX = (screenW - v.cols) / 2
	v.offY = hudHeight
	return v, true
}

// cellsFor returns the screen rect covering r, at least one cell.
func (v viewport) cellsFor(r sim.Primitive) core.Rect {
	x0 := int(math.Floor(r.X / v.sx))
	y0 := int(math.Floor(r.Y / v.sy))
	x1 := int(math.Ceil((r.X + r.W) / v.sx))
	y1 := int(math.Ceil((r.Y + r.H) / v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(v.offX+x0, v.offY+y0, x1-x0, y1-y0)
}

// buildStyles assigns a glyph and a terminal color to each palette entry.
func (g *Game) buildStyles(p sim.Palette) {
	g.glyphs = map[string]rune{
		p.Grass:      '░',
		p.Road:       '▒',
		p.House:      '█',
		p.Roof:       '▓',
		p.Door:       '▯',
		p.NPC:        '☺',
		p.Tree:       '♣',
		p.Floor:      '·',
		p.IndoorDoor: '▯',
		p.Accessory:  '▀',
	}
	g.colors = make(map[string]core.Color)
	for hex := range g.glyphs {
		g.colors[hex] = core.NearestColor(hex)
	}
	// The default ink color is unreadable on dark terminals.
	g.colors[p.Player] = core.ColorBrightWhite
}

func (g *Game) glyph(hex string) rune {
	if r, ok := g.glyphs[hex]; ok {
		return r
	}
	return '█'
}

func (g *Game) color(hex string) core.Color {
	if c, ok := g.colors[hex]; ok {
		return c
	}
	c := core.NearestColor(hex)
	g.colors[hex] = c
	return c
}

// Render draws the last frame, the HUD and any overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	f := g.frame
	v, ok := newViewport(dst.Width(), dst.Height(), f.Width, f.Height)
	if !ok {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst, f)
	g.renderWorld(dst, f, v)
	g.renderPlayer(dst, f, v)
	g.renderOverlays(dst, f, v)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen, f sim.Frame) {
	title := "NOMEKOP TOWN"
	if f.Scene == sim.SceneHouse {
		title = "NOMEKOP TOWN - House"
	}
	dst.DrawTextColor(1, 0, title, core.ColorBrightYellow)

	if f.Starter != "" {
		label := "Starter: " + string(f.Starter)
		st, _ := sim.LookupStarter(f.Starter)
		dst.DrawTextColor(dst.Width()-len([]rune(label))-1, 0, label, g.color(st.Color))
	}

	var status string
	switch {
	case !f.Running:
		status = "Press Enter to start, R to rebuild the town"
	case f.Scene == sim.SceneHouse:
		status = "Walk to the bottom door and press E to leave"
	default:
		status = "Move with WASD, E to talk or use doors, B for moves"
	}
	dst.DrawTextColor(1, 1, status, core.ColorGray)
}

// renderWorld samples the primitive list at each cell center. Later
// primitives paint over earlier ones.
func (g *Game) renderWorld(dst *core.Screen, f sim.Frame, v viewport) {
	prims := f.Primitives
	// The player is drawn separately so it never vanishes between cells.
	if n := len(prims); n >= 2 {
		prims = prims[:n-2]
	}

	for cy := 0; cy < v.rows; cy++ {
		py := (float64(cy) + 0.5) * v.sy
		for cx := 0; cx < v.cols; cx++ {
			px := (float64(cx) + 0.5) * v.sx
			for i := len(prims) - 1; i >= 0; i-- {
				p := prims[i]
				if !covers(p, px, py) {
					continue
				}
				dst.SetCell(v.offX+cx, v.offY+cy, g.glyph(p.Color), g.color(p.Color))
				break
			}
		}
	}
}

func covers(p sim.Primitive, x, y float64) bool {
	switch p.Kind {
	case sim.KindCircle:
		return core.Distance(x, y, p.X, p.Y) <= p.R
	default:
		return x >= p.X && x < p.X+p.W && y >= p.Y && y < p.Y+p.H
	}
}

func (g *Game) renderPlayer(dst *core.Screen, f sim.Frame, v viewport) {
	body := sim.Primitive{X: f.Player.X, Y: f.Player.Y, W: f.Player.W, H: f.Player.H}
	dst.FillRect(v.cellsFor(body), '@', g.color(f.PlayerColor))
}

func (g *Game) renderOverlays(dst *core.Screen, f sim.Frame, v viewport) {
	o := f.Overlays

	if o.DialogVisible {
		g.drawPanel(dst, v, v.offY+v.rows-3, []string{o.Dialog}, core.ColorBrightWhite)
	}

	if o.PickerOpen {
		lines := []string{"Choose your starter:"}
		for i, e := range o.Picker {
			lines = append(lines, fmt.Sprintf("%d) %s", i+1, e.Label))
		}
		top := v.offY + (v.rows-len(lines)-2)/2
		rect := g.drawPanel(dst, v, top, lines, core.ColorBrightWhite)
		for i, e := range o.Picker {
			dst.DrawTextColor(rect.X+5, rect.Y+2+i, e.Label, g.color(e.Color))
		}
	}

	if o.InventoryVisible {
		lines := []string{o.Inventory, "(B to close)"}
		top := v.offY + (v.rows-len(lines)-2)/2
		g.drawPanel(dst, v, top, lines, core.ColorBrightCyan)
	}
}

// drawPanel draws a bordered box at row top, centered on the map, and
// returns its rect. Lines longer than the map are truncated.
func (g *Game) drawPanel(dst *core.Screen, v viewport, top int, lines []string, c core.Color) core.Rect {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	width = core.Min(width+4, core.Max(v.cols, minScreenW))
	inner := width - 4

	rect := core.NewRect(v.offX+(v.cols-width)/2, top, width, len(lines)+2)
	dst.FillRect(rect, ' ', core.ColorDefault)
	dst.DrawBox(rect, c)

	for i, l := range lines {
		runes := []rune(l)
		if len(runes) > inner {
			runes = runes[:inner]
		}
		dst.DrawTextColor(rect.X+2, rect.Y+1+i, string(runes), c)
	}
	return rect
}
