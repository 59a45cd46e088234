package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/strikeward/internal/input/key"
)

// Validation errors.
var (
	ErrHalfMarker     = errors.New("marker requires both open and close delimiters")
	ErrInvalidTrigger = errors.New("invalid trigger key")
	ErrInvalidToggle  = errors.New("invalid toggle key")
)

// Settings is the full application configuration.
type Settings struct {
	Mode    ModeSettings    `toml:"mode"`
	Marker  MarkerSettings  `toml:"marker"`
	Input   InputSettings   `toml:"input"`
	Script  ScriptSettings  `toml:"script"`
	Logging LoggingSettings `toml:"logging"`
}

// ModeSettings controls the draft-mode gate.
type ModeSettings struct {
	// Enabled is the persisted gate state.
	Enabled bool `toml:"enabled"`

	// Persist writes the gate state back to disk on every toggle.
	Persist bool `toml:"persist"`
}

// MarkerSettings overrides the strikethrough delimiter pair.
// Both empty means the default ~~ pair.
type MarkerSettings struct {
	Open  string `toml:"open"`
	Close string `toml:"close"`
}

// InputSettings holds the key bindings.
type InputSettings struct {
	// Trigger is the strike-last-word chord.
	Trigger string `toml:"trigger"`

	// Toggle flips draft mode on and off.
	Toggle string `toml:"toggle"`
}

// ScriptSettings points at an optional Lua hook script.
type ScriptSettings struct {
	Path string `toml:"path"`
}

// LoggingSettings selects log level, format, and destination.
type LoggingSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// Default returns the standard settings.
func Default() Settings {
	return Settings{
		Mode:    ModeSettings{Enabled: false, Persist: true},
		Input:   InputSettings{Trigger: "Ctrl+D", Toggle: "F2"},
		Logging: LoggingSettings{Level: "info", Format: "text"},
	}
}

// DefaultPath returns the standard settings file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "strikeward", "config.toml"), nil
}

// Load reads settings from path. A missing file returns defaults with
// no error; a malformed file is an error.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	s := Default()
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return s, nil
}

// Save writes settings to path, creating parent directories as needed.
func Save(path string, s Settings) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// Validate checks key bindings and the marker pair.
func (s Settings) Validate() error {
	if (s.Marker.Open == "") != (s.Marker.Close == "") {
		return ErrHalfMarker
	}
	if _, err := key.Parse(s.Input.Trigger); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidTrigger, s.Input.Trigger, err)
	}
	if _, err := key.Parse(s.Input.Toggle); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidToggle, s.Input.Toggle, err)
	}
	return nil
}

// TriggerEvent returns the parsed trigger chord.
// Validate must have passed.
func (s Settings) TriggerEvent() key.Event {
	ev, err := key.Parse(s.Input.Trigger)
	if err != nil {
		panic(fmt.Sprintf("config: unvalidated trigger %q: %v", s.Input.Trigger, err))
	}
	return ev
}

// ToggleEvent returns the parsed mode-toggle chord.
// Validate must have passed.
func (s Settings) ToggleEvent() key.Event {
	ev, err := key.Parse(s.Input.Toggle)
	if err != nil {
		panic(fmt.Sprintf("config: unvalidated toggle %q: %v", s.Input.Toggle, err))
	}
	return ev
}
