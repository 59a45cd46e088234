package mode

import (
	"testing"

	"github.com/dshills/strikeward/internal/input/key"
)

func TestGateToggle(t *testing.T) {
	g := NewGate(false)

	if g.Engaged() {
		t.Error("gate should start disengaged")
	}
	if !g.Toggle() {
		t.Error("toggle should return true")
	}
	if !g.Engaged() {
		t.Error("gate should be engaged after toggle")
	}
	if g.Name() != StateDraft {
		t.Errorf("expected %q, got %q", StateDraft, g.Name())
	}
	if g.Toggle() {
		t.Error("second toggle should return false")
	}
}

func TestGateCallbacks(t *testing.T) {
	g := NewGate(false)

	var calls []bool
	g.OnChange(func(engaged bool) {
		calls = append(calls, engaged)
	})

	g.Engage()
	g.Engage() // no change, no callback
	g.Disengage()
	g.Toggle()

	want := []bool{true, false, true}
	if len(calls) != len(want) {
		t.Fatalf("expected %d callbacks, got %d", len(want), len(calls))
	}
	for i, v := range want {
		if calls[i] != v {
			t.Errorf("callback %d = %v, want %v", i, calls[i], v)
		}
	}
}

func TestFilterDisengagedPassesEverything(t *testing.T) {
	f := NewFilter(NewGate(false))

	events := []key.Event{
		key.NewSpecialEvent(key.KeyBackspace, key.ModNone),
		key.NewSpecialEvent(key.KeyLeft, key.ModNone),
		key.NewRuneEvent('a', key.ModCtrl),
	}
	for _, ev := range events {
		if f.Blocked(ev) {
			t.Errorf("disengaged filter blocked %s", ev)
		}
	}
}

func TestFilterEngagedBlocksDestructiveKeys(t *testing.T) {
	f := NewFilter(NewGate(true))

	blocked := []key.Event{
		key.NewSpecialEvent(key.KeyBackspace, key.ModNone),
		key.NewSpecialEvent(key.KeyDelete, key.ModNone),
		key.NewSpecialEvent(key.KeyLeft, key.ModNone),
		key.NewSpecialEvent(key.KeyRight, key.ModNone),
		key.NewSpecialEvent(key.KeyHome, key.ModNone),
		key.NewSpecialEvent(key.KeyEnd, key.ModNone),
		key.NewRuneEvent('u', key.ModCtrl),
		key.NewRuneEvent('w', key.ModCtrl),
	}
	for _, ev := range blocked {
		if !f.Blocked(ev) {
			t.Errorf("engaged filter should block %s", ev)
		}
	}

	allowed := []key.Event{
		key.NewRuneEvent('x', key.ModNone),
		key.NewRuneEvent(' ', key.ModNone),
		key.NewSpecialEvent(key.KeyEnter, key.ModNone),
		key.NewRuneEvent('q', key.ModCtrl),
	}
	for _, ev := range allowed {
		if f.Blocked(ev) {
			t.Errorf("engaged filter should allow %s", ev)
		}
	}
}
