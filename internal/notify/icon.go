package notify

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/screenbell/assets"
	"github.com/example/screenbell/internal/config"
)

const (
	iconSize = 64
	iconName = "icon.png"
)

// iconDir resolves the directory holding the cached notification icon:
// the configured override when set, otherwise the per-user config dir.
func iconDir(cfg *config.Config) string {
	if cfg.IconDir != "" {
		return cfg.IconDir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "screenbell")
}

// ensureIcon writes the notification icon into dir unless it already
// exists, and returns its absolute path for the OS to reference.
func ensureIcon(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("no icon directory available")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create icon dir: %w", err)
	}
	path := filepath.Join(dir, iconName)
	if _, err := os.Stat(path); err == nil {
		return absOrSame(path), nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat icon: %w", err)
	}

	data, err := assets.IconPNG(iconSize)
	if err != nil {
		return "", fmt.Errorf("render icon: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write icon: %w", err)
	}
	return absOrSame(path), nil
}

func absOrSame(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
