package sim

import (
	"math/rand"
	"testing"
)

func TestDialogBoxPolicies(t *testing.T) {
	tests := []struct {
		policy      DismissPolicy
		wantVisible bool
	}{
		{DismissClear, false},
		{DismissKeep, true},
	}

	for _, tc := range tests {
		d := newDialogBox(tc.policy)
		d.ShowFor("first", 0, 10)
		d.Show("second")

		d.Advance(9)
		if _, ok := d.Visible(); !ok {
			t.Errorf("%s: dialog hidden before due tick", tc.policy)
		}

		d.Advance(10)
		text, ok := d.Visible()
		if ok != tc.wantVisible {
			t.Errorf("%s: visible = %v, expected %v", tc.policy, ok, tc.wantVisible)
		}
		if ok && text != "second" {
			t.Errorf("%s: expected newer dialog to survive, got %q", tc.policy, text)
		}
		if d.Pending() != 0 {
			t.Errorf("%s: expected fired dismissal to be removed, %d pending", tc.policy, d.Pending())
		}
	}
}

func TestDialogBoxUnknownPolicyClears(t *testing.T) {
	d := newDialogBox("bogus")
	if d.policy != DismissClear {
		t.Errorf("Expected unknown policy to fall back to clear, got %s", d.policy)
	}
}

func TestHideKeepsPendingDismissal(t *testing.T) {
	d := newDialogBox(DismissClear)
	d.ShowFor("hello", 5, 10)
	d.Hide()

	if d.Pending() != 1 {
		t.Fatalf("Expected dismissal to stay scheduled, got %d", d.Pending())
	}
	d.Show("later")
	d.Advance(15)
	if _, ok := d.Visible(); ok {
		t.Error("Stale dismissal should clear the later dialog under the clear policy")
	}
}

func TestRepeatedGreetingDismissal(t *testing.T) {
	// Two greetings 5 ticks apart: under clear the first timer hides the
	// second greeting early, under keep the second one lasts its full delay.
	for _, policy := range []DismissPolicy{DismissClear, DismissKeep} {
		cfg := DefaultConfig()
		cfg.StaleDismiss = policy
		s := NewSession(cfg, rand.New(rand.NewSource(1)))
		npc := s.NPC().Rect
		moveTo(s, npc.X, npc.Bottom()+4)

		s.Step(Input{Interact: true})
		for i := 0; i < 4; i++ {
			s.Step(Input{})
		}
		s.Step(Input{Interact: true})
		secondShown := s.Tick()
		delay := cfg.DialogDelayTicks()

		hiddenAt := uint64(0)
		for hiddenAt == 0 && s.Tick() < secondShown+delay+5 {
			f := s.Step(Input{})
			if !f.Overlays.DialogVisible {
				hiddenAt = f.Tick
			}
		}

		var expected uint64
		if policy == DismissClear {
			expected = secondShown - 5 + delay
		} else {
			expected = secondShown + delay
		}
		if hiddenAt != expected {
			t.Errorf("%s: greeting hidden at tick %d, expected %d", policy, hiddenAt, expected)
		}
	}
}
