package buffer

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// Buffer errors.
var (
	ErrInvalidOffset = errors.New("offset out of range")
	ErrInvalidRange  = errors.New("range out of bounds")
)

// RevisionID uniquely identifies a buffer revision.
// Each successful mutation creates a new revision.
type RevisionID uint64

// revisionCounter generates unique revision IDs.
var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}

// EditResult describes an applied edit.
type EditResult struct {
	OldRange Range      // range that was replaced
	NewRange Range      // range the new text occupies
	OldText  string     // text that was replaced
	Delta    int        // change in line length
	Revision RevisionID // revision after the edit
}

// Snapshot is an immutable view of buffer state.
type Snapshot struct {
	Line     string
	Cursor   int
	Revision RevisionID
}

// Buffer holds one line of text and a cursor position.
// All methods are safe for concurrent use; Apply performs the text
// replacement and cursor reposition as one atomic step.
type Buffer struct {
	mu       sync.RWMutex
	line     string
	cursor   int
	revision RevisionID
	changes  []Change
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{revision: NewRevisionID()}
}

// NewFromString creates a buffer with initial text and the cursor at
// the end of it.
func NewFromString(text string) *Buffer {
	return &Buffer{
		line:     text,
		cursor:   len(text),
		revision: NewRevisionID(),
	}
}

// Line returns the current line text.
func (b *Buffer) Line() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.line
}

// Len returns the line length in bytes.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.line)
}

// Cursor returns the current cursor offset.
func (b *Buffer) Cursor() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursor
}

// Revision returns the current revision ID.
func (b *Buffer) Revision() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// IsEmpty returns true if the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.line == ""
}

// Snapshot returns a consistent view of line, cursor, and revision.
func (b *Buffer) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Snapshot{Line: b.line, Cursor: b.cursor, Revision: b.revision}
}

// SetCursor moves the cursor to the given offset.
func (b *Buffer) SetCursor(offset int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if offset < 0 || offset > len(b.line) {
		return fmt.Errorf("%w: %d (line length %d)", ErrInvalidOffset, offset, len(b.line))
	}
	b.cursor = offset
	return nil
}

// Apply performs the edit and moves the cursor to the end of the
// inserted text. On a validation failure the buffer is left unchanged
// and an error wrapping ErrInvalidRange is returned.
func (b *Buffer) Apply(e Edit) (EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.applyLocked(e)
}

func (b *Buffer) applyLocked(e Edit) (EditResult, error) {
	r := e.Range
	if r.Start < 0 || r.Start > r.End || r.End > len(b.line) {
		return EditResult{}, fmt.Errorf("%w: %s (line length %d)", ErrInvalidRange, r, len(b.line))
	}

	oldText := b.line[r.Start:r.End]
	b.line = b.line[:r.Start] + e.NewText + b.line[r.End:]
	newRange := Range{Start: r.Start, End: r.Start + len(e.NewText)}
	b.cursor = newRange.End
	b.revision = NewRevisionID()
	b.changes = append(b.changes, Change{
		Type:     changeType(e, oldText),
		Range:    r,
		NewRange: newRange,
		OldText:  oldText,
		NewText:  e.NewText,
	})

	return EditResult{
		OldRange: r,
		NewRange: newRange,
		OldText:  oldText,
		Delta:    e.Delta(),
		Revision: b.revision,
	}, nil
}

// InsertRune inserts a character at the cursor and advances it.
func (b *Buffer) InsertRune(ru rune) (EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.applyLocked(NewInsert(b.cursor, string(ru)))
}

// Changes returns a copy of the recorded change log.
func (b *Buffer) Changes() []Change {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Change, len(b.changes))
	copy(out, b.changes)
	return out
}

// changeType classifies an edit after the fact.
func changeType(e Edit, oldText string) ChangeType {
	switch {
	case oldText == "":
		return ChangeInsert
	case e.NewText == "":
		return ChangeDelete
	default:
		return ChangeReplace
	}
}
