package mode

import "sync"

// State names used for display and events.
const (
	StateDraft  = "draft"
	StateNormal = "normal"
)

// ChangeCallback is notified when the gate flips.
type ChangeCallback func(engaged bool)

// Gate is the engaged/disengaged state for write-forward editing.
// It is safe for concurrent use.
type Gate struct {
	mu        sync.RWMutex
	engaged   bool
	callbacks []ChangeCallback
}

// NewGate creates a gate in the given initial state.
func NewGate(engaged bool) *Gate {
	return &Gate{engaged: engaged}
}

// Engaged returns true if draft mode is active.
func (g *Gate) Engaged() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.engaged
}

// Name returns the display name for the current state.
func (g *Gate) Name() string {
	if g.Engaged() {
		return StateDraft
	}
	return StateNormal
}

// Engage turns draft mode on.
func (g *Gate) Engage() {
	g.set(true)
}

// Disengage turns draft mode off.
func (g *Gate) Disengage() {
	g.set(false)
}

// Toggle flips the state and returns the new value.
func (g *Gate) Toggle() bool {
	g.mu.Lock()
	g.engaged = !g.engaged
	engaged := g.engaged
	callbacks := g.snapshotCallbacks()
	g.mu.Unlock()

	for _, cb := range callbacks {
		cb(engaged)
	}
	return engaged
}

// OnChange registers a callback invoked after every state change.
// Callbacks run outside the gate's lock, in registration order.
func (g *Gate) OnChange(cb ChangeCallback) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.callbacks = append(g.callbacks, cb)
}

func (g *Gate) set(engaged bool) {
	g.mu.Lock()
	if g.engaged == engaged {
		g.mu.Unlock()
		return
	}
	g.engaged = engaged
	callbacks := g.snapshotCallbacks()
	g.mu.Unlock()

	for _, cb := range callbacks {
		cb(engaged)
	}
}

// snapshotCallbacks must be called with the lock held.
func (g *Gate) snapshotCallbacks() []ChangeCallback {
	out := make([]ChangeCallback, len(g.callbacks))
	copy(out, g.callbacks)
	return out
}
