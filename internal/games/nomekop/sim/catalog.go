package sim

// StarterID identifies one of the catalog starters.
type StarterID string

const (
	StarterBlue  StarterID = "Blue"
	StarterRed   StarterID = "Red"
	StarterGreen StarterID = "Green"
)

// Starter is a companion creature the player can pick once per session.
type Starter struct {
	ID    StarterID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
	Moves [2]string `json:"moves"`
}

var catalog = [...]Starter{
	{ID: StarterBlue, Name: "Blue", Color: "#4da6ff", Moves: [2]string{"Tackle", "Splash"}},
	{ID: StarterRed, Name: "Red", Color: "#ff4d4d", Moves: [2]string{"Tackle", "Flame"}},
	{ID: StarterGreen, Name: "Green", Color: "#4dff4d", Moves: [2]string{"Tackle", "Vine Whip"}},
}

// Catalog returns the three starters in picker order.
func Catalog() []Starter {
	out := make([]Starter, len(catalog))
	copy(out, catalog[:])
	return out
}

// LookupStarter finds a starter by ID.
func LookupStarter(id StarterID) (Starter, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return Starter{}, false
}

// StarterAt returns the catalog entry at a zero-based picker position.
func StarterAt(i int) (Starter, bool) {
	if i < 0 || i >= len(catalog) {
		return Starter{}, false
	}
	return catalog[i], true
}
