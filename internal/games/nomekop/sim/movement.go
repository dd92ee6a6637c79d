package sim

import "github.com/vovakirdan/tui-nomekop/internal/core"

// Held is the snapshot of held direction keys for one tick.
type Held struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

// Any reports whether at least one direction is held.
func (h Held) Any() bool {
	return h.Up || h.Down || h.Left || h.Right
}

// Velocity converts held keys into a per-axis delta. Opposite keys cancel and
// diagonals are not normalized.
func Velocity(h Held, speed float64) (vx, vy float64) {
	if h.Right {
		vx += speed
	}
	if h.Left {
		vx -= speed
	}
	if h.Down {
		vy += speed
	}
	if h.Up {
		vy -= speed
	}
	return vx, vy
}

// Advance moves p one tick. The horizontal axis is integrated and corrected
// first, then the vertical axis against the corrected position. Overlapping
// obstacles are handled in stored order and each correction overwrites the
// previous one.
func Advance(p core.RectF, h Held, obstacles []core.RectF, width, height, speed float64) core.RectF {
	vx, vy := Velocity(h, speed)

	p.X += vx
	for _, o := range obstacles {
		if !p.Intersects(o) {
			continue
		}
		if vx > 0 {
			p.X = o.X - p.W
		} else if vx < 0 {
			p.X = o.Right()
		}
	}
	p.X = core.ClampF(p.X, 0, width-p.W)

	p.Y += vy
	for _, o := range obstacles {
		if !p.Intersects(o) {
			continue
		}
		if vy > 0 {
			p.Y = o.Y - p.H
		} else if vy < 0 {
			p.Y = o.Bottom()
		}
	}
	p.Y = core.ClampF(p.Y, 0, height-p.H)

	return p
}
