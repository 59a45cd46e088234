package mode

import "github.com/dshills/strikeward/internal/input/key"

// blockedCtrlRunes are readline-style chords that move the cursor or
// remove text: line start/end, kill line, kill word, clear.
var blockedCtrlRunes = map[rune]bool{
	'a': true, // line start
	'e': true, // line end
	'k': true, // kill to end
	'u': true, // kill to start
	'w': true, // kill word
	'h': true, // backspace
	'b': true, // back one char
	'f': true, // forward one char
}

// Filter decides which key events are blocked while the gate is
// engaged. Disengaged, everything passes.
type Filter struct {
	gate *Gate
}

// NewFilter creates a filter bound to a gate.
func NewFilter(gate *Gate) *Filter {
	return &Filter{gate: gate}
}

// Blocked returns true if the event must be suppressed. Navigation and
// deletion keys are blocked in draft mode; write-forward means the only
// way back is striking the word out.
func (f *Filter) Blocked(ev key.Event) bool {
	if !f.gate.Engaged() {
		return false
	}
	if ev.Key.IsNavigation() || ev.Key.IsDeletion() {
		return true
	}
	if ev.IsRune() && ev.Modifiers.HasCtrl() && blockedCtrlRunes[ev.Rune] {
		return true
	}
	return false
}
