package event

// ModeChanged is published on TopicModeChanged when the draft-mode gate
// flips.
type ModeChanged struct {
	Engaged bool
}

// BufferEdited is published on TopicBufferEdited after a strike edit is
// applied to the buffer.
type BufferEdited struct {
	Word   string // the word that was struck through
	Line   string // line text after the edit
	Cursor int    // cursor offset after the edit
}

// ConfigReloaded is published on TopicConfigReloaded when the settings
// file changes on disk.
type ConfigReloaded struct {
	Path string
}
