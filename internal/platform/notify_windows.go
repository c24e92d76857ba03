//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"golang.org/x/sys/windows/registry"
)

const (
	aumidKeyPath = `SOFTWARE\Classes\AppUserModelId\`
	pushKeyPath  = `Software\Microsoft\Windows\CurrentVersion\PushNotifications`
)

// Notifier displays toast notifications through the Windows
// notification center. Toasts are submitted with PowerShell, which
// cannot report activation or dismissal back, so handles carry no
// events.
type Notifier struct {
	mu    sync.Mutex
	appID string
}

// New returns a Windows toast notifier.
func New() (*Notifier, error) {
	return &Notifier{}, nil
}

// Supported reports whether the PowerShell transport is available.
func (n *Notifier) Supported() bool {
	_, err := exec.LookPath("powershell.exe")
	return err == nil
}

// Register records the AUMID under HKCU so the notification center
// attributes toasts to this application. Re-registering the same id
// overwrites the same values.
func (n *Notifier) Register(appID string) error {
	n.mu.Lock()
	n.appID = appID
	n.mu.Unlock()

	key, _, err := registry.CreateKey(registry.CURRENT_USER, aumidKeyPath+appID, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("register app id %q: %w", appID, err)
	}
	defer key.Close()
	if err := key.SetStringValue("DisplayName", appID); err != nil {
		return fmt.Errorf("register app id %q: %w", appID, err)
	}
	return nil
}

// Setting reads the per-user ToastEnabled value. The value is absent
// until the user has ever touched the notification settings, in which
// case the state is unknown rather than disabled.
func (n *Notifier) Setting() (Setting, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, pushKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return SettingUnknown, fmt.Errorf("open notification settings: %w", err)
	}
	defer key.Close()
	v, _, err := key.GetIntegerValue("ToastEnabled")
	if err != nil {
		return SettingUnknown, fmt.Errorf("read ToastEnabled: %w", err)
	}
	if v == 0 {
		return SettingDisabled, nil
	}
	return SettingEnabled, nil
}

// Show submits the toast. The returned handle delivers no events.
func (n *Notifier) Show(t *Toast) (Handle, error) {
	n.mu.Lock()
	appID := n.appID
	n.mu.Unlock()

	expire := ""
	if !t.Expiration.IsZero() {
		expire = t.Expiration.Format(time.RFC3339)
	}
	cmd := exec.Command("powershell.exe", "-NoProfile", "-NonInteractive", "-Command",
		toastScript(t.XML(), appID, expire))
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("toast submission: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return newClosedHandle(), nil
}

// Close is a no-op; the notifier holds no OS resources between calls.
func (n *Notifier) Close() error { return nil }
