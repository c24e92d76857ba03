package config

import (
	"fmt"
	"strings"
	"time"
)

// DefaultAppID is the identity notifications are registered under when
// the configuration does not override it.
const DefaultAppID = "ScreenBell"

// Notify holds notification settings.
type Notify struct {
	// Enabled gates every notification; it is read fresh on each call
	// so edits to the config file take effect without a restart.
	Enabled bool
	// DefaultTimeout applies when a caller supplies no timeout.
	// Zero leaves expiry to the OS.
	DefaultTimeout time.Duration
}

// Config holds the application configuration.
type Config struct {
	AppID   string
	IconDir string // overrides the per-user data dir for the cached icon
	Notify  Notify
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		AppID: DefaultAppID,
		Notify: Notify{
			Enabled: true,
		},
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.AppID != "" {
		fmt.Fprintf(&sb, "app_id = %s\n", c.AppID)
	}
	if c.IconDir != "" {
		fmt.Fprintf(&sb, "icon_dir = %s\n", c.IconDir)
	}
	sb.WriteString("\n")

	// Notify section
	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "enabled = %v\n", c.Notify.Enabled)
	if c.Notify.DefaultTimeout > 0 {
		fmt.Fprintf(&sb, "default_timeout = %s\n", c.Notify.DefaultTimeout)
	}
	sb.WriteString("\n")

	return sb.String()
}
