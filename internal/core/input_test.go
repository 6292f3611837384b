package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)

	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Error("frame should report the actions that were set")
	}
	if f.Has(ActionRight) || f.Has(ActionQuit) {
		t.Error("frame should not report actions that were not set")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone is never active")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameMaskRoundTrip(t *testing.T) {
	actions := []Action{ActionLeft, ActionRight, ActionFire, ActionClick, ActionQuit}

	// Every subset of actions survives encoding
	for subset := 0; subset < 1<<len(actions); subset++ {
		var f InputFrame
		for i, a := range actions {
			if subset&(1<<i) != 0 {
				f.Set(a)
			}
		}

		back := FrameFromMask(f.Mask())
		for _, a := range actions {
			if back.Has(a) != f.Has(a) {
				t.Fatalf("subset %05b: action %v lost in mask round trip", subset, a)
			}
		}
	}
}

func TestFrameFromMaskIgnoresUnknownBits(t *testing.T) {
	f := FrameFromMask(0xFF)
	if f.Mask() != 0x1F {
		t.Errorf("Mask() = %#x, expected 0x1f", f.Mask())
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action string = %q", Action(99).String())
	}
}
