//go:build !linux && !darwin && !windows

package platform

import "errors"

// Notifier is a placeholder on platforms without a notification
// surface.
type Notifier struct{}

// New returns a notifier that reports the platform as unsupported.
func New() (*Notifier, error) {
	return &Notifier{}, nil
}

func (n *Notifier) Supported() bool { return false }

func (n *Notifier) Register(appID string) error { return nil }

func (n *Notifier) Setting() (Setting, error) {
	return SettingUnknown, errors.New("notifications unsupported on this platform")
}

func (n *Notifier) Show(t *Toast) (Handle, error) {
	return nil, errors.New("notifications unsupported on this platform")
}

func (n *Notifier) Close() error { return nil }
