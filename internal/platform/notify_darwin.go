//go:build darwin

package platform

import (
	"errors"
	"fmt"
	"os/exec"
	"sync"
)

// Notifier displays notifications through macOS Notification Center
// using osascript. The transport reports nothing back, so handles carry
// no events and the permission setting cannot be queried.
type Notifier struct {
	mu    sync.Mutex
	appID string
}

// New returns a macOS notifier.
func New() (*Notifier, error) {
	return &Notifier{}, nil
}

// Supported reports whether osascript is available.
func (n *Notifier) Supported() bool {
	_, err := exec.LookPath("osascript")
	return err == nil
}

// Register records the title used for subsequent notifications.
// Notification Center attributes the toast to the scripting host, so
// there is nothing to register with the OS.
func (n *Notifier) Register(appID string) error {
	n.mu.Lock()
	n.appID = appID
	n.mu.Unlock()
	return nil
}

// Setting cannot be queried through osascript.
func (n *Notifier) Setting() (Setting, error) {
	return SettingUnknown, errors.New("notification settings not queryable on darwin")
}

// Show displays the toast. The returned handle delivers no events.
func (n *Notifier) Show(t *Toast) (Handle, error) {
	n.mu.Lock()
	appID := n.appID
	n.mu.Unlock()

	script := fmt.Sprintf("display notification %q with title %q", t.Text, appID)
	cmd := exec.Command("osascript", "-e", script)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("osascript: %w", err)
	}
	return newClosedHandle(), nil
}

// Close is a no-op; the notifier holds no OS resources between calls.
func (n *Notifier) Close() error { return nil }
