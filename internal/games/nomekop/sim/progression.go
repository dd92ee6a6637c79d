package sim

// Progression records the starter chosen this session.
type Progression struct {
	picked *Starter
	moves  []string
}

// Choose records st as the session's starter. It returns false and changes
// nothing when a starter was already chosen.
func (p *Progression) Choose(st Starter) bool {
	if p.picked != nil {
		return false
	}
	chosen := st
	p.picked = &chosen
	p.moves = []string{st.Moves[0], st.Moves[1]}
	return true
}

// Picked returns the chosen starter, if any.
func (p *Progression) Picked() (Starter, bool) {
	if p.picked == nil {
		return Starter{}, false
	}
	return *p.picked, true
}

// HasStarter reports whether a starter has been chosen.
func (p *Progression) HasStarter() bool {
	return p.picked != nil
}

// ListMoves returns the chosen starter's moves in catalog order, or nil.
func (p *Progression) ListMoves() []string {
	if p.picked == nil {
		return nil
	}
	out := make([]string, len(p.moves))
	copy(out, p.moves)
	return out
}

// Reset forgets the chosen starter.
func (p *Progression) Reset() {
	p.picked = nil
	p.moves = nil
}
