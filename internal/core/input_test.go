package core

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionUp, "Up"},
		{ActionChoose3, "Choose3"},
		{ActionQuit, "Quit"},
		{Action(-1), "Unknown"},
		{ActionQuit + 1, "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(tc.a), got, tc.want)
		}
	}
}

func TestActionIsDirection(t *testing.T) {
	for a := ActionNone; a <= ActionQuit; a++ {
		want := a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
		if a.IsDirection() != want {
			t.Errorf("%s.IsDirection() = %v", a, !want)
		}
	}
}

func TestInputFrame(t *testing.T) {
	in := NewInputFrame(ActionLeft, ActionInteract)
	if !in.Has(ActionLeft) || !in.Has(ActionInteract) || in.Has(ActionRight) {
		t.Errorf("Unexpected actions: %v", in.Actions)
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("Zero frame should have no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on a zero frame should work")
	}
}
