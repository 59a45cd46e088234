// Package key defines the key event model shared by the input layer:
// keys, modifiers, events, and a chord parser for configuration values
// like "Ctrl+D" or "<C-d>".
package key
