// Package statusline composes the bottom status row: the draft-mode
// indicator, the document name, a transient message, and the cursor
// column. The host paints the returned text; composition here is
// display-width aware so wide runes truncate cleanly.
package statusline

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
)

// Indicator labels for the two gate states.
const (
	LabelDraft  = "STRIKE"
	LabelNormal = "NORMAL"
)

// StatusLine holds the display state for the status row.
// Safe for concurrent use.
type StatusLine struct {
	mu       sync.RWMutex
	engaged  bool
	filename string
	cursor   int
	message  string
}

// New creates a status line for an unnamed scratch document.
func New() *StatusLine {
	return &StatusLine{filename: "[scratch]"}
}

// SetEngaged updates the draft-mode indicator.
func (s *StatusLine) SetEngaged(engaged bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engaged = engaged
}

// Engaged returns the indicator state, for mode-specific styling.
func (s *StatusLine) Engaged() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engaged
}

// SetFilename updates the displayed document name.
func (s *StatusLine) SetFilename(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filename = name
}

// SetCursor updates the displayed cursor column (byte offset).
func (s *StatusLine) SetCursor(cursor int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = cursor
}

// SetMessage sets a transient message shown until cleared.
func (s *StatusLine) SetMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = msg
}

// ClearMessage removes the transient message.
func (s *StatusLine) ClearMessage() {
	s.SetMessage("")
}

// Mode returns the indicator label for the current state.
func (s *StatusLine) Mode() string {
	if s.Engaged() {
		return LabelDraft
	}
	return LabelNormal
}

// Render composes the status row at the given width. The left side
// carries the mode indicator, filename, and message; the right side
// the cursor column. The result's display width is exactly width.
func (s *StatusLine) Render(width int) string {
	if width <= 0 {
		return ""
	}

	s.mu.RLock()
	engaged, filename, cursor, message := s.engaged, s.filename, s.cursor, s.message
	s.mu.RUnlock()

	label := LabelNormal
	if engaged {
		label = LabelDraft
	}

	left := fmt.Sprintf(" %s  %s", label, filename)
	if message != "" {
		left += "  " + message
	}
	right := fmt.Sprintf("col %d ", cursor)

	lw := runewidth.StringWidth(left)
	rw := runewidth.StringWidth(right)
	if lw+rw+1 > width {
		// Right side wins; truncate the left to fit.
		avail := width - rw - 1
		if avail < 0 {
			return runewidth.Truncate(right, width, "")
		}
		left = runewidth.Truncate(left, avail, "…")
		lw = runewidth.StringWidth(left)
	}

	pad := width - lw - rw
	if pad < 0 {
		pad = 0
	}
	return left + strings.Repeat(" ", pad) + right
}
