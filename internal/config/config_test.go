package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if s != Default() {
		t.Errorf("expected defaults, got %+v", s)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := Default()
	want.Mode.Enabled = true
	want.Marker = MarkerSettings{Open: "--", Close: "--"}
	want.Input.Trigger = "<C-x>"

	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("mode = {{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[mode]\nenabled = true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !s.Mode.Enabled {
		t.Error("mode.enabled should be true")
	}
	if s.Input.Trigger != "Ctrl+D" {
		t.Errorf("unset fields should keep defaults, got trigger %q", s.Input.Trigger)
	}
}

func TestValidateHalfMarker(t *testing.T) {
	s := Default()
	s.Marker.Open = "**"
	if err := s.Validate(); !errors.Is(err, ErrHalfMarker) {
		t.Errorf("expected ErrHalfMarker, got %v", err)
	}
}

func TestValidateBadTrigger(t *testing.T) {
	s := Default()
	s.Input.Trigger = "NotAChord"
	if err := s.Validate(); !errors.Is(err, ErrInvalidTrigger) {
		t.Errorf("expected ErrInvalidTrigger, got %v", err)
	}
}

func TestTriggerEvent(t *testing.T) {
	s := Default()
	ev := s.TriggerEvent()
	if !ev.Modifiers.HasCtrl() || ev.Rune != 'd' {
		t.Errorf("expected Ctrl+d, got %s", ev)
	}
}
