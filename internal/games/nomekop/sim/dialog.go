package sim

// dialogBox is the single dialog banner with its pending auto-dismissals.
//
// Every Show bumps the generation. A dismissal remembers the generation it was
// scheduled for and the tick it is due on. Under DismissClear a due dismissal
// hides whatever is visible; under DismissKeep it is dropped when a newer
// dialog has been shown since.
type dialogBox struct {
	policy     DismissPolicy
	text       string
	visible    bool
	generation uint64
	pending    []dismissal
}

type dismissal struct {
	due        uint64
	generation uint64
}

func newDialogBox(policy DismissPolicy) dialogBox {
	if policy != DismissKeep {
		policy = DismissClear
	}
	return dialogBox{policy: policy}
}

// Show makes text visible and returns its generation.
func (d *dialogBox) Show(text string) uint64 {
	d.generation++
	d.text = text
	d.visible = true
	return d.generation
}

// ShowFor shows text and schedules its dismissal at tick now+delay.
func (d *dialogBox) ShowFor(text string, now, delay uint64) {
	gen := d.Show(text)
	d.pending = append(d.pending, dismissal{due: now + delay, generation: gen})
}

// Hide hides the banner immediately. Pending dismissals stay scheduled.
func (d *dialogBox) Hide() {
	d.visible = false
	d.text = ""
}

// Visible returns the banner text and whether it is shown.
func (d *dialogBox) Visible() (string, bool) {
	return d.text, d.visible
}

// Pending returns the number of scheduled dismissals.
func (d *dialogBox) Pending() int {
	return len(d.pending)
}

// Advance fires every dismissal due at or before now.
func (d *dialogBox) Advance(now uint64) {
	kept := d.pending[:0]
	for _, p := range d.pending {
		if p.due > now {
			kept = append(kept, p)
			continue
		}
		if d.policy == DismissKeep && p.generation != d.generation {
			continue
		}
		d.Hide()
	}
	d.pending = kept
}
