package key

import (
	"errors"
	"testing"
)

func TestParseSingleChar(t *testing.T) {
	ev, err := Parse("a")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if ev.Key != KeyRune || ev.Rune != 'a' {
		t.Errorf("expected rune 'a', got %+v", ev)
	}
}

func TestParseModifierStyle(t *testing.T) {
	ev, err := Parse("Ctrl+D")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !ev.Modifiers.HasCtrl() {
		t.Error("expected Ctrl modifier")
	}
	if ev.Rune != 'd' {
		t.Errorf("expected rune 'd' (Ctrl chords fold case), got %q", ev.Rune)
	}
}

func TestParseVimStyle(t *testing.T) {
	ev, err := Parse("<C-d>")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !ev.Matches(NewRuneEvent('d', ModCtrl)) {
		t.Errorf("expected Ctrl+d, got %s", ev)
	}

	ev, err = Parse("<CR>")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if ev.Key != KeyEnter {
		t.Errorf("expected Enter, got %s", ev.Key)
	}
}

func TestParseSpecialNames(t *testing.T) {
	tests := []struct {
		spec string
		want Key
	}{
		{"Enter", KeyEnter},
		{"esc", KeyEscape},
		{"F2", KeyF2},
		{"Backspace", KeyBackspace},
		{"PgUp", KeyPageUp},
	}
	for _, tt := range tests {
		ev, err := Parse(tt.spec)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tt.spec, err)
		}
		if ev.Key != tt.want {
			t.Errorf("parse %q = %s, want %s", tt.spec, ev.Key, tt.want)
		}
	}
}

func TestParseSpace(t *testing.T) {
	ev, err := Parse("Space")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if ev.Key != KeyRune || ev.Rune != ' ' {
		t.Errorf("expected space rune, got %+v", ev)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(""); !errors.Is(err, ErrEmptySpec) {
		t.Errorf("expected ErrEmptySpec, got %v", err)
	}
	if _, err := Parse("Hyper+X"); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("expected ErrInvalidSpec, got %v", err)
	}
	if _, err := Parse("NotAKey"); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("expected ErrInvalidSpec, got %v", err)
	}
}

func TestParseRoundTrip(t *testing.T) {
	ev, err := Parse("Ctrl+d")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	again, err := Parse(ev.String())
	if err != nil {
		t.Fatalf("re-parse %q failed: %v", ev.String(), err)
	}
	if !ev.Matches(again) {
		t.Errorf("round trip mismatch: %s vs %s", ev, again)
	}
}
