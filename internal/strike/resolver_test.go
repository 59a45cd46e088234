package strike

import (
	"strings"
	"testing"
)

// applyResult applies an edit to a line, returning the new line text.
func applyResult(line string, res Result) string {
	return line[:res.Start] + res.Text + line[res.End:]
}

func TestResolveEndOfWord(t *testing.T) {
	line := "the quick fox"
	res, ok := Resolve(line, len(line))
	if !ok {
		t.Fatal("expected an edit, got no-op")
	}

	if res.Start != 10 || res.End != 13 {
		t.Errorf("expected range [10,13), got [%d,%d)", res.Start, res.End)
	}
	if res.Text != "~~fox~~ " {
		t.Errorf("expected %q, got %q", "~~fox~~ ", res.Text)
	}
	if res.Cursor != 18 {
		t.Errorf("expected cursor 18, got %d", res.Cursor)
	}
	if got := applyResult(line, res); got != "the quick ~~fox~~ " {
		t.Errorf("expected %q, got %q", "the quick ~~fox~~ ", got)
	}
}

func TestResolveAfterSpace(t *testing.T) {
	line := "the quick fox "
	res, ok := Resolve(line, len(line))
	if !ok {
		t.Fatal("expected an edit, got no-op")
	}

	if res.Start != 10 || res.End != 13 {
		t.Errorf("expected range [10,13), got [%d,%d)", res.Start, res.End)
	}
	if res.Text != "~~fox~~" {
		t.Errorf("expected %q, got %q", "~~fox~~", res.Text)
	}
	if res.Cursor != 17 {
		t.Errorf("expected cursor 17, got %d", res.Cursor)
	}
	if got := applyResult(line, res); got != "the quick ~~fox~~ " {
		t.Errorf("expected %q, got %q", "the quick ~~fox~~ ", got)
	}
}

func TestResolveMidWord(t *testing.T) {
	// Cursor inside "fox": only the run ending at the cursor is marked.
	res, ok := Resolve("the quick fox", 12)
	if !ok {
		t.Fatal("expected an edit, got no-op")
	}
	if res.Start != 10 || res.End != 12 {
		t.Errorf("expected range [10,12), got [%d,%d)", res.Start, res.End)
	}
	if res.Text != "~~fo~~ " {
		t.Errorf("expected %q, got %q", "~~fo~~ ", res.Text)
	}
}

func TestResolveEmptyLine(t *testing.T) {
	if _, ok := Resolve("", 0); ok {
		t.Error("expected no-op on empty line")
	}
}

func TestResolveWhitespaceOnly(t *testing.T) {
	line := "   \t "
	if _, ok := Resolve(line, len(line)); ok {
		t.Error("expected no-op on whitespace-only line")
	}
}

func TestResolveCursorAtStart(t *testing.T) {
	if _, ok := Resolve("the quick fox", 0); ok {
		t.Error("expected no-op with cursor at start of line")
	}
}

func TestResolveRetrigger(t *testing.T) {
	// Cursor immediately after "quick~~": the proximity guard fires.
	if _, ok := Resolve("the ~~quick~~ fox", 13); ok {
		t.Error("expected no-op just after a closed marker")
	}
}

func TestResolveUnrelatedMarkers(t *testing.T) {
	// Markers elsewhere on the line do not block unrelated words.
	line := "the ~~quick~~ fox"
	res, ok := Resolve(line, len(line))
	if !ok {
		t.Fatal("expected an edit, got no-op")
	}
	if got := applyResult(line, res); got != "the ~~quick~~ ~~fox~~ " {
		t.Errorf("expected %q, got %q", "the ~~quick~~ ~~fox~~ ", got)
	}
}

func TestResolveMarkerInsideWord(t *testing.T) {
	line := "a fo~~x"
	if _, ok := Resolve(line, len(line)); ok {
		t.Error("expected no-op for word containing a marker")
	}
}

func TestResolveFlankedByClose(t *testing.T) {
	// Word ending at the cursor with a close delimiter right after it.
	if _, ok := Resolve("the fox~~", 7); ok {
		t.Error("expected no-op for word followed by a close delimiter")
	}
}

func TestResolveAfterSpaceWordAlreadyClosed(t *testing.T) {
	// Case A re-runs the guard against the trimmed text.
	if _, ok := Resolve("done~~ ", 7); ok {
		t.Error("expected no-op for already-closed word before trailing space")
	}
}

func TestResolveIdempotence(t *testing.T) {
	lines := []string{
		"the quick fox",
		"the quick fox ",
		"word",
		"tabs\tthen word",
	}
	for _, line := range lines {
		res, ok := Resolve(line, len(line))
		if !ok {
			t.Fatalf("expected an edit for %q", line)
		}
		marked := applyResult(line, res)
		if _, ok := Resolve(marked, res.Cursor); ok {
			t.Errorf("re-trigger on %q at %d should be a no-op", marked, res.Cursor)
		}
	}
}

func TestResolveWordIsolation(t *testing.T) {
	line := "alpha beta gamma"
	res, ok := Resolve(line, len(line))
	if !ok {
		t.Fatal("expected an edit, got no-op")
	}
	marked := applyResult(line, res)
	if !strings.HasPrefix(marked, "alpha beta ") {
		t.Errorf("text before the word changed: %q", marked)
	}
	if !strings.HasSuffix(marked, "~~gamma~~ ") {
		t.Errorf("expected marked word at end, got %q", marked)
	}
}

func TestResolveSpacingConverges(t *testing.T) {
	// Both cases must leave exactly one space after the closing marker.
	withSpace := "go fast "
	noSpace := "go fast"

	resA, ok := Resolve(withSpace, len(withSpace))
	if !ok {
		t.Fatal("expected an edit for trailing-space line")
	}
	resB, ok := Resolve(noSpace, len(noSpace))
	if !ok {
		t.Fatal("expected an edit for end-of-word line")
	}

	a := applyResult(withSpace, resA)
	b := applyResult(noSpace, resB)
	if a != b {
		t.Errorf("cases diverged: %q vs %q", a, b)
	}
	if a != "go ~~fast~~ " {
		t.Errorf("expected %q, got %q", "go ~~fast~~ ", a)
	}
}

func TestResolveUnicodeWord(t *testing.T) {
	line := "der Fluß"
	res, ok := Resolve(line, len(line))
	if !ok {
		t.Fatal("expected an edit, got no-op")
	}
	if got := applyResult(line, res); got != "der ~~Fluß~~ " {
		t.Errorf("expected %q, got %q", "der ~~Fluß~~ ", got)
	}
	if res.Cursor != res.Start+len(res.Text) {
		t.Errorf("cursor %d not at end of replacement", res.Cursor)
	}
}

func TestResolveCustomMarker(t *testing.T) {
	r := New(Marker{Open: "--", Close: "--"})
	line := "so it goes"
	res, ok := r.Resolve(line, len(line))
	if !ok {
		t.Fatal("expected an edit, got no-op")
	}
	if got := applyResult(line, res); got != "so it --goes-- " {
		t.Errorf("expected %q, got %q", "so it --goes-- ", got)
	}

	// The guard keys off the custom close delimiter.
	marked := applyResult(line, res)
	if _, ok := r.Resolve(marked, res.Cursor); ok {
		t.Error("expected no-op re-triggering with custom marker")
	}
}

func TestResolveZeroMarkerFallsBack(t *testing.T) {
	r := New(Marker{})
	if r.Marker() != DefaultMarker {
		t.Errorf("expected DefaultMarker, got %+v", r.Marker())
	}
}

func TestResolveCursorOutOfRangePanics(t *testing.T) {
	for _, cursor := range []int{-1, 14} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for cursor %d", cursor)
				}
			}()
			Resolve("the quick fox", cursor)
		}()
	}
}

func TestResultDelta(t *testing.T) {
	res := Result{Start: 10, End: 13, Text: "~~fox~~ "}
	if res.Delta() != 5 {
		t.Errorf("expected delta 5, got %d", res.Delta())
	}
}
