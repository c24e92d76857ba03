package notify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/screenbell/internal/config"
)

func TestEnsureIconWritesOnce(t *testing.T) {
	dir := t.TempDir()

	path, err := ensureIcon(dir)
	if err != nil {
		t.Fatalf("ensureIcon failed: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("expected absolute path, got %q", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("icon not written: %v", err)
	}

	// Second call must reuse the existing file untouched.
	again, err := ensureIcon(dir)
	if err != nil {
		t.Fatalf("second ensureIcon failed: %v", err)
	}
	if again != path {
		t.Errorf("expected same path, got %q and %q", path, again)
	}
	info2, err := os.Stat(path)
	if err != nil {
		t.Fatalf("icon missing after second call: %v", err)
	}
	if !info2.ModTime().Equal(info.ModTime()) {
		t.Error("icon rewritten on second call")
	}
}

func TestEnsureIconCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "icons")
	if _, err := ensureIcon(dir); err != nil {
		t.Fatalf("ensureIcon failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, iconName)); err != nil {
		t.Errorf("icon not created in nested dir: %v", err)
	}
}

func TestIconDirOverride(t *testing.T) {
	cfg := config.New()
	cfg.IconDir = "/custom/icons"
	if got := iconDir(cfg); got != "/custom/icons" {
		t.Errorf("expected override respected, got %q", got)
	}

	cfg.IconDir = ""
	got := iconDir(cfg)
	if got != "" && filepath.Base(got) != "screenbell" {
		t.Errorf("expected per-user screenbell dir, got %q", got)
	}
}
