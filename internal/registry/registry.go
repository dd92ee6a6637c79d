// Package registry lists the playable Nomekop Town variants. Each variant
// registers a factory from init(), and every platform (terminal, SSH,
// browser) creates a fresh game per player through it.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-nomekop/internal/core"
)

// Game is what a platform drives once per tick. Implementations hold no
// platform state: input arrives as semantic actions and output is a
// character canvas plus the state and events of the last tick.
type Game interface {
	// ID is the variant name used on the command line and in journal rows.
	ID() string

	// Title is the human-readable name for menus and listings.
	Title() string

	// Reset builds a fresh session. cfg carries the tick rate and the RNG
	// seed for world generation.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render paints the last tick into dst.
	Render(dst *core.Screen)

	// State returns the state after the last tick.
	State() core.GameState
}

// Describer is implemented by variants with a one-line description.
type Describer interface {
	Description() string
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry // Registration order
	byID    = make(map[string]int)
)

// Register adds a variant. It panics when id is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := byID[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}

	byID[id] = len(entries)
	entries = append(entries, entry{info: info, factory: f})
}

// List returns every variant in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, len(entries))
	for i, e := range entries {
		result[i] = e.info
	}
	return result
}

// Lookup returns the metadata of a registered variant.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return GameInfo{}, false
	}
	return entries[i].info, true
}

// Create instantiates a new game of the given variant.
func Create(id string) (Game, error) {
	mu.RLock()
	i, ok := byID[id]
	var f Factory
	if ok {
		f = entries[i].factory
	}
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}
