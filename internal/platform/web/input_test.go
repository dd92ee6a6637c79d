package web

import (
	"testing"

	"github.com/vovakirdan/tui-nomekop/internal/core"
	"github.com/vovakirdan/tui-nomekop/internal/games/nomekop/sim"
)

func TestDecodeValid(t *testing.T) {
	d, err := NewInputDecoder()
	if err != nil {
		t.Fatalf("NewInputDecoder() failed: %v", err)
	}

	msg, err := d.Decode([]byte(`{"type":"input","held":{"up":true,"left":true},"interact":true,"choose":"Red"}`))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if msg.Held == nil || !msg.Held.Up || !msg.Held.Left || msg.Held.Down {
		t.Errorf("Unexpected held state: %+v", msg.Held)
	}
	if !msg.Interact || msg.Choose != "Red" {
		t.Errorf("Unexpected message: %+v", msg)
	}
}

func TestDecodeRejects(t *testing.T) {
	d, err := NewInputDecoder()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"type":`},
		{"missing type", `{"interact":true}`},
		{"wrong type", `{"type":"hello"}`},
		{"unknown field", `{"type":"input","jump":true}`},
		{"non-boolean pulse", `{"type":"input","interact":1}`},
		{"unknown starter", `{"type":"input","choose":"Purple"}`},
		{"unknown direction", `{"type":"input","held":{"north":true}}`},
		{"array", `[1,2,3]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := d.Decode([]byte(tc.raw)); err == nil {
				t.Errorf("Expected %s to be rejected", tc.raw)
			}
		})
	}
}

func TestInputLatchHeldPersists(t *testing.T) {
	d, _ := NewInputDecoder()
	l := newInputLatch()

	msg, err := d.Decode([]byte(`{"type":"input","held":{"right":true}}`))
	if err != nil {
		t.Fatal(err)
	}
	l.Apply(msg)

	for i := 0; i < 3; i++ {
		if in := l.Take(); !in.Has(core.ActionRight) {
			t.Fatalf("Expected Right held on tick %d", i)
		}
	}

	// A message without held leaves the held state alone
	msg, _ = d.Decode([]byte(`{"type":"input","interact":true}`))
	l.Apply(msg)
	if in := l.Take(); !in.Has(core.ActionRight) || !in.Has(core.ActionInteract) {
		t.Errorf("Expected Right and Interact, got %v", in.Actions)
	}

	msg, _ = d.Decode([]byte(`{"type":"input","held":{}}`))
	l.Apply(msg)
	if in := l.Take(); in.Has(core.ActionRight) {
		t.Error("Expected Right released")
	}
}

func TestInputLatchPulsesOnce(t *testing.T) {
	l := newInputLatch()
	l.Apply(InputMessage{Type: "input", Start: true, Inventory: true, Reset: true, Choose: "Green"})

	in := l.Take()
	for _, a := range []core.Action{core.ActionStart, core.ActionInventory, core.ActionRestart, core.ActionChoose3} {
		if !in.Has(a) {
			t.Errorf("Expected %s pulse", a)
		}
	}
	if in := l.Take(); len(in.Actions) != 0 {
		t.Errorf("Pulses must be consumed, got %v", in.Actions)
	}
}

func TestChooseAction(t *testing.T) {
	tests := []struct {
		id     string
		action core.Action
		ok     bool
	}{
		{"Blue", core.ActionChoose1, true},
		{"Red", core.ActionChoose2, true},
		{"Green", core.ActionChoose3, true},
		{"", core.ActionNone, false},
		{"Purple", core.ActionNone, false},
	}
	for _, tc := range tests {
		a, ok := chooseAction(sim.StarterID(tc.id))
		if a != tc.action || ok != tc.ok {
			t.Errorf("chooseAction(%q) = (%s, %v), expected (%s, %v)", tc.id, a, ok, tc.action, tc.ok)
		}
	}
}
