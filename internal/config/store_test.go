package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestStoreSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.rc")
	writeConfig(t, path, "[notify]\nenabled = false\n")

	s := NewStore(NewLoader("test", path), zerolog.Nop())
	defer s.Close()

	if s.Snapshot().Notify.Enabled {
		t.Error("expected notifications disabled")
	}
}

func TestStoreFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.rc")
	writeConfig(t, path, "[notify]\nenabled = maybe\n")

	s := NewStore(NewLoader("test", path), zerolog.Nop())
	defer s.Close()

	cfg := s.Snapshot()
	if cfg == nil {
		t.Fatal("expected default config")
	}
	if cfg.AppID != DefaultAppID {
		t.Errorf("expected default app id, got %q", cfg.AppID)
	}
}

func TestStoreReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.rc")
	writeConfig(t, path, "[notify]\nenabled = true\n")

	s := NewStore(NewLoader("test", path), zerolog.Nop())
	defer s.Close()
	if err := s.Watch(); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	if !s.Snapshot().Notify.Enabled {
		t.Fatal("expected notifications enabled initially")
	}

	writeConfig(t, path, "[notify]\nenabled = false\n")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if !s.Snapshot().Notify.Enabled {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("store did not pick up config change")
}

func TestStoreKeepsPreviousOnBadReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.rc")
	writeConfig(t, path, "app_id = First\n")

	s := NewStore(NewLoader("test", path), zerolog.Nop())
	defer s.Close()
	if err := s.Watch(); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	writeConfig(t, path, "[notify]\nenabled = nope\n")

	// Give the watcher a moment; the snapshot must stay on the last
	// good config.
	time.Sleep(200 * time.Millisecond)
	if got := s.Snapshot().AppID; got != "First" {
		t.Errorf("expected previous config retained, got app_id %q", got)
	}
}
