package log

import "testing"

func TestNewValidConfig(t *testing.T) {
	logger, err := New(Config{Level: "debug", Format: "text"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if logger == nil {
		t.Fatal("expected a logger")
	}
	_ = logger.Sync()
}

func TestNewJSONFormat(t *testing.T) {
	if _, err := New(Config{Level: "info", Format: "json"}); err != nil {
		t.Fatalf("New failed: %v", err)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestNewInvalidFormat(t *testing.T) {
	if _, err := New(Config{Level: "info", Format: "xml"}); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestNop(t *testing.T) {
	Nop().Info("discarded")
}
