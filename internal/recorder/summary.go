package recorder

import (
	"errors"
	"io"

	"github.com/vovakirdan/tui-nomekop/internal/games/nomekop/sim"
)

// Summary describes a recording at a glance.
type Summary struct {
	Frames       int
	FirstTick    uint64
	LastTick     uint64
	SceneChanges int
	Resets       int           // Running -> idle transitions
	Starter      sim.StarterID // Starter in the last frame
	Dialogs      []string      // Distinct dialog texts in order of appearance
}

// Summarize reads every remaining frame from r.
func Summarize(r *Reader) (Summary, error) {
	var (
		s        Summary
		prev     sim.Frame
		seenText = make(map[string]bool)
	)

	for {
		f, err := r.Next()
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		if err != nil {
			return s, err
		}

		if s.Frames == 0 {
			s.FirstTick = f.Tick
		} else {
			if f.Scene != prev.Scene {
				s.SceneChanges++
			}
			if prev.Running && !f.Running {
				s.Resets++
			}
		}
		if f.Overlays.DialogVisible && !seenText[f.Overlays.Dialog] {
			seenText[f.Overlays.Dialog] = true
			s.Dialogs = append(s.Dialogs, f.Overlays.Dialog)
		}

		s.Frames++
		s.LastTick = f.Tick
		s.Starter = f.Starter
		prev = f
	}
}
