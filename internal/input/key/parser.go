package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// specialNames maps key names (lowercased) to keys. Includes Vim-style
// aliases so "<CR>" and "Enter" both resolve.
var specialNames = map[string]Key{
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"cr":        KeyEnter,
	"tab":       KeyTab,
	"bs":        KeyBackspace,
	"backspace": KeyBackspace,
	"del":       KeyDelete,
	"delete":    KeyDelete,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pgup":      KeyPageUp,
	"pageup":    KeyPageUp,
	"pgdn":      KeyPageDown,
	"pagedown":  KeyPageDown,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"f1":        KeyF1,
	"f2":        KeyF2,
	"f3":        KeyF3,
	"f4":        KeyF4,
	"f5":        KeyF5,
	"f6":        KeyF6,
	"f7":        KeyF7,
	"f8":        KeyF8,
	"f9":        KeyF9,
	"f10":       KeyF10,
	"f11":       KeyF11,
	"f12":       KeyF12,
}

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "~"
//   - Special keys: "Enter", "Esc", "F2", "Space"
//   - With modifiers: "Ctrl+D", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-d>", "<A-f>", "<CR>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}
	if strings.Contains(spec, "+") && utf8.RuneCountInString(spec) > 1 {
		return parseModifierStyle(spec)
	}
	return parseKey(spec, ModNone)
}

// parseVimStyle parses notation like "C-d", "A-F4", "CR".
func parseVimStyle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			mods = mods.With(ModCtrl)
		case "a", "m":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		default:
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}
	return parseKey(parts[len(parts)-1], mods)
}

// parseModifierStyle parses "Ctrl+D" style notation.
func parseModifierStyle(spec string) (Event, error) {
	parts := strings.Split(spec, "+")
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "":
			// "Ctrl++" splits with an empty middle part.
		case "ctrl", "control":
			mods = mods.With(ModCtrl)
		case "alt", "option":
			mods = mods.With(ModAlt)
		case "shift":
			mods = mods.With(ModShift)
		default:
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	keyPart := parts[len(parts)-1]
	if keyPart == "" {
		// "Ctrl++" means the plus character itself.
		keyPart = "+"
	}
	return parseKey(keyPart, mods)
}

// parseKey resolves a key name or single character with modifiers.
func parseKey(part string, mods Modifier) (Event, error) {
	part = strings.TrimSpace(part)
	if part == "" {
		return Event{}, ErrInvalidSpec
	}

	lower := strings.ToLower(part)
	if lower == "space" {
		return Event{Key: KeyRune, Rune: ' ', Modifiers: mods}, nil
	}
	if k, ok := specialNames[lower]; ok {
		return Event{Key: k, Modifiers: mods}, nil
	}
	if utf8.RuneCountInString(part) == 1 {
		ru, _ := utf8.DecodeRuneInString(part)
		// Ctrl chords are matched case-insensitively.
		if mods.HasCtrl() {
			ru = lowerASCII(ru)
		}
		return Event{Key: KeyRune, Rune: ru, Modifiers: mods}, nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, part)
}

func lowerASCII(ru rune) rune {
	if ru >= 'A' && ru <= 'Z' {
		return ru + ('a' - 'A')
	}
	return ru
}
