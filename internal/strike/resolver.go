package strike

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Result describes a single contiguous replacement in a line.
// The half-open byte range [Start, End) is replaced with Text, and the
// cursor moves to Cursor afterward.
type Result struct {
	Start  int    // first byte of the range to replace
	End    int    // one past the last byte of the range to replace
	Text   string // replacement text
	Cursor int    // cursor offset after applying the edit
}

// Delta returns the change in line length caused by the edit.
func (r Result) Delta() int {
	return len(r.Text) - (r.End - r.Start)
}

// String returns a human-readable representation of the result.
func (r Result) String() string {
	return fmt.Sprintf("Replace[%d,%d) with %q, cursor %d", r.Start, r.End, r.Text, r.Cursor)
}

// Resolver locates the last word before a cursor and produces the edit
// that strikes it through. The zero value is not usable; construct with
// New. A Resolver is stateless across calls and safe for concurrent use.
type Resolver struct {
	marker Marker
}

// New creates a resolver for the given marker pair.
// A zero marker falls back to DefaultMarker.
func New(m Marker) *Resolver {
	if m.IsZero() {
		m = DefaultMarker
	}
	return &Resolver{marker: m}
}

// Resolve is a convenience wrapper using DefaultMarker.
func Resolve(line string, cursor int) (Result, bool) {
	return New(DefaultMarker).Resolve(line, cursor)
}

// Marker returns the marker pair this resolver applies.
func (r *Resolver) Marker() Marker {
	return r.marker
}

// Resolve determines the word to strike through for the given line and
// cursor offset. It returns the edit to apply and true, or a zero Result
// and false when there is nothing to do (no word before the cursor, or
// the word is already marked).
//
// The cursor is a byte offset denoting an insertion point and must
// satisfy 0 <= cursor <= len(line). Violating that is a caller bug and
// panics; it is never a recoverable runtime condition.
func (r *Resolver) Resolve(line string, cursor int) (Result, bool) {
	if cursor < 0 || cursor > len(line) {
		panic(fmt.Sprintf("strike: cursor %d out of range for line of length %d", cursor, len(line)))
	}

	before := line[:cursor]

	// Proximity guard: a close delimiter within the last few bytes
	// means the cursor sits inside or just past a freshly marked span.
	if r.nearClose(before) {
		return Result{}, false
	}

	if last, ok := lastRune(before); ok && unicode.IsSpace(last) {
		return r.resolveAfterSpace(before)
	}
	return r.resolveAtWord(line, cursor)
}

// resolveAfterSpace handles the cursor sitting after trailing whitespace:
// the target is the word preceding that whitespace. No trailing space is
// injected since one already exists past the word.
func (r *Resolver) resolveAfterSpace(before string) (Result, bool) {
	trimmed := strings.TrimRightFunc(before, unicode.IsSpace)
	if trimmed == "" {
		return Result{}, false
	}
	// Re-run the guard against the trimmed text: the word itself may
	// end in a close delimiter.
	if r.nearClose(trimmed) {
		return Result{}, false
	}

	start := wordStart(trimmed, len(trimmed))
	text := r.marker.Wrap(trimmed[start:])
	return Result{
		Start:  start,
		End:    len(trimmed),
		Text:   text,
		Cursor: start + len(text),
	}, true
}

// resolveAtWord handles the cursor sitting mid- or end-of-word: the
// target is the run of non-whitespace ending exactly at the cursor. A
// single trailing space is injected because no word boundary follows.
func (r *Resolver) resolveAtWord(line string, cursor int) (Result, bool) {
	start := wordStart(line, cursor)
	if start == cursor {
		return Result{}, false
	}

	word := line[start:cursor]
	if strings.Contains(word, r.marker.Open) || strings.Contains(word, r.marker.Close) {
		return Result{}, false
	}
	if r.flanked(line, start, cursor) {
		return Result{}, false
	}

	text := r.marker.Wrap(word) + " "
	return Result{
		Start:  start,
		End:    cursor,
		Text:   text,
		Cursor: start + len(text),
	}, true
}

// nearClose reports whether the close delimiter occurs within the
// lookback window at the end of prefix. This is a deliberately cheap
// local check, not a full re-tokenization: an unrelated close sequence
// immediately before a very short word can misfire. Accepted
// approximation.
func (r *Resolver) nearClose(prefix string) bool {
	if n := r.marker.lookback(); len(prefix) > n {
		prefix = prefix[len(prefix)-n:]
	}
	return strings.Contains(prefix, r.marker.Close)
}

// flanked reports whether the range [start, end) is immediately
// preceded by an open delimiter or followed by a close delimiter.
func (r *Resolver) flanked(line string, start, end int) bool {
	if n := len(r.marker.Open); start >= n && line[start-n:start] == r.marker.Open {
		return true
	}
	if n := len(r.marker.Close); end+n <= len(line) && line[end:end+n] == r.marker.Close {
		return true
	}
	return false
}

// wordStart returns the byte offset where the whitespace-delimited run
// ending at end begins. Returns end itself when no run exists.
func wordStart(s string, end int) int {
	i := end
	for i > 0 {
		ru, size := utf8.DecodeLastRuneInString(s[:i])
		if unicode.IsSpace(ru) {
			break
		}
		i -= size
	}
	return i
}

// lastRune returns the final rune of s, or false for an empty string.
func lastRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	ru, _ := utf8.DecodeLastRuneInString(s)
	return ru, true
}
