package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := Save(path, Default()); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan Settings, 1)
	w, err := NewWatcher(path, func(s Settings, err error) {
		if err != nil {
			t.Errorf("reload error: %v", err)
			return
		}
		select {
		case reloaded <- s:
		default:
		}
	})
	if err != nil {
		t.Fatalf("watcher failed: %v", err)
	}
	defer w.Close()

	updated := Default()
	updated.Mode.Enabled = true
	if err := Save(path, updated); err != nil {
		t.Fatal(err)
	}

	select {
	case s := <-reloaded:
		if !s.Mode.Enabled {
			t.Error("reloaded settings should have mode.enabled")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	reloads := make(chan struct{}, 4)
	w, err := NewWatcher(path, func(Settings, error) {
		reloads <- struct{}{}
	})
	if err != nil {
		t.Fatalf("watcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloads:
		t.Error("unrelated file should not trigger a reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	w, err := NewWatcher(path, func(Settings, error) {})
	if err != nil {
		t.Fatalf("watcher failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second close failed: %v", err)
	}
}
