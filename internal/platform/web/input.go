package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/vovakirdan/tui-nomekop/internal/core"
	"github.com/vovakirdan/tui-nomekop/internal/games/nomekop/sim"
)

const inputSchemaURL = "nomekop://schemas/input.json"

const inputSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["type"],
  "additionalProperties": false,
  "properties": {
    "type": {"const": "input"},
    "held": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "up": {"type": "boolean"},
        "down": {"type": "boolean"},
        "left": {"type": "boolean"},
        "right": {"type": "boolean"}
      }
    },
    "interact": {"type": "boolean"},
    "inventory": {"type": "boolean"},
    "start": {"type": "boolean"},
    "reset": {"type": "boolean"},
    "choose": {"enum": ["Blue", "Red", "Green"]}
  }
}`

// InputMessage is one message sent by the browser client.
type InputMessage struct {
	Type      string    `json:"type"`
	Held      *sim.Held `json:"held,omitempty"`
	Interact  bool      `json:"interact,omitempty"`
	Inventory bool      `json:"inventory,omitempty"`
	Start     bool      `json:"start,omitempty"`
	Reset     bool      `json:"reset,omitempty"`
	Choose    string    `json:"choose,omitempty"`
}

// InputDecoder validates client messages against the input schema.
type InputDecoder struct {
	schema *jsonschema.Schema
}

// NewInputDecoder compiles the embedded input schema.
func NewInputDecoder() (*InputDecoder, error) {
	schema, err := jsonschema.CompileString(inputSchemaURL, inputSchema)
	if err != nil {
		return nil, fmt.Errorf("web: compile input schema: %w", err)
	}
	return &InputDecoder{schema: schema}, nil
}

// Decode parses and validates one raw message.
func (d *InputDecoder) Decode(raw []byte) (InputMessage, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return InputMessage{}, fmt.Errorf("web: malformed input: %w", err)
	}
	if err := d.schema.Validate(doc); err != nil {
		return InputMessage{}, fmt.Errorf("web: invalid input: %w", err)
	}

	var msg InputMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return InputMessage{}, fmt.Errorf("web: decode input: %w", err)
	}
	return msg, nil
}

// inputLatch hands client input from the reader goroutine to the tick loop.
// Held state persists until the client changes it; pulses accumulate until
// the next tick takes them.
type inputLatch struct {
	mu     sync.Mutex
	held   sim.Held
	pulses map[core.Action]bool
}

func newInputLatch() *inputLatch {
	return &inputLatch{pulses: make(map[core.Action]bool)}
}

// Apply merges one client message into the latch.
func (l *inputLatch) Apply(msg InputMessage) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if msg.Held != nil {
		l.held = *msg.Held
	}
	if msg.Interact {
		l.pulses[core.ActionInteract] = true
	}
	if msg.Inventory {
		l.pulses[core.ActionInventory] = true
	}
	if msg.Start {
		l.pulses[core.ActionStart] = true
	}
	if msg.Reset {
		l.pulses[core.ActionRestart] = true
	}
	if a, ok := chooseAction(sim.StarterID(msg.Choose)); ok {
		l.pulses[a] = true
	}
}

// Take returns the input for one tick and clears the pulses.
func (l *inputLatch) Take() core.InputFrame {
	l.mu.Lock()
	defer l.mu.Unlock()

	in := core.NewInputFrame()
	if l.held.Up {
		in.Set(core.ActionUp)
	}
	if l.held.Down {
		in.Set(core.ActionDown)
	}
	if l.held.Left {
		in.Set(core.ActionLeft)
	}
	if l.held.Right {
		in.Set(core.ActionRight)
	}
	for a := range l.pulses {
		in.Set(a)
		delete(l.pulses, a)
	}
	return in
}

// chooseAction maps a starter ID onto its catalog slot action.
func chooseAction(id sim.StarterID) (core.Action, bool) {
	slots := []core.Action{core.ActionChoose1, core.ActionChoose2, core.ActionChoose3}
	for i, st := range sim.Catalog() {
		if st.ID == id && i < len(slots) {
			return slots[i], true
		}
	}
	return core.ActionNone, false
}
