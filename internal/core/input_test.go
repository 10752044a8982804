package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame
	if f.Has(ActionSelect) {
		t.Error("zero frame should have no actions")
	}
	if !f.Empty() {
		t.Error("zero frame should be empty")
	}

	f.Set(ActionSelect)
	f.Set(ActionUp)
	if !f.Has(ActionSelect) || !f.Has(ActionUp) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionDown) {
		t.Error("unset action reported")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
}

func TestInputFramePointersKeepOrder(t *testing.T) {
	f := NewInputFrame()
	f.AddPointer(PointerEvent{X: 1, Y: 1, Kind: PointerPress})
	f.AddPointer(PointerEvent{X: 2, Y: 1, Kind: PointerDrag})
	f.AddPointer(PointerEvent{X: 3, Y: 1, Kind: PointerDrag})

	clone := f.Clone()
	f.Events[0].Pointer.X = 99

	pointers := clone.Pointers()
	if len(pointers) != 3 {
		t.Fatalf("clone has %d pointers, expected 3", len(pointers))
	}
	for i, want := range []int{1, 2, 3} {
		if pointers[i].X != want {
			t.Errorf("pointer %d X = %d, expected %d", i, pointers[i].X, want)
		}
	}
}

func TestInputFrameEventsKeepArrivalOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSelect)
	f.AddPointer(PointerEvent{X: 4, Y: 2, Kind: PointerHover})
	f.Set(ActionRight)
	f.Set(ActionRight)
	f.Set(ActionNone)

	if len(f.Events) != 4 {
		t.Fatalf("got %d events, expected 4", len(f.Events))
	}
	want := []Action{ActionSelect, ActionNone, ActionRight, ActionRight}
	for i, a := range want {
		if f.Events[i].Action != a {
			t.Errorf("event %d = %v, expected %v", i, f.Events[i].Action, a)
		}
	}
	if !f.Events[1].IsPointer() || f.Events[1].Pointer.X != 4 {
		t.Errorf("event 1 should be the hover, got %+v", f.Events[1])
	}
	if len(f.Actions) != 2 {
		t.Errorf("Actions has %d entries, expected 2", len(f.Actions))
	}

	f.Clear()
	if !f.Empty() || len(f.Pointers()) != 0 {
		t.Error("frame should be empty after Clear")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionSelect:  "Select",
		ActionHint:    "Hint",
		ActionRestart: "Restart",
		Action(999):   "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}

func TestTickDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickRate = 20
	if got := cfg.TickDuration(); got.Milliseconds() != 50 {
		t.Errorf("TickDuration() = %v, expected 50ms", got)
	}

	cfg.TickRate = 0
	if got := cfg.TickDuration(); got <= 0 {
		t.Errorf("TickDuration() with zero rate = %v, expected positive", got)
	}
}
