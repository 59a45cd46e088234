package strike

// Marker is the open/close delimiter pair that denotes struck-through
// text. Markers are never nested: a word already flanked by or
// containing a marker must not receive a second pair.
type Marker struct {
	Open  string
	Close string
}

// DefaultMarker is the standard Markdown strikethrough delimiter.
var DefaultMarker = Marker{Open: "~~", Close: "~~"}

// IsZero returns true if neither delimiter is set.
func (m Marker) IsZero() bool {
	return m.Open == "" && m.Close == ""
}

// Wrap returns the word surrounded by the marker pair.
func (m Marker) Wrap(word string) string {
	return m.Open + word + m.Close
}

// lookback is the width of the proximity window used to detect a
// just-closed marker before the cursor. Two characters past the close
// delimiter covers the cursor sitting inside or immediately after it.
func (m Marker) lookback() int {
	return len(m.Close) + 2
}
