// Package notify renders OS toast notifications for capture events.
//
// The adapter never surfaces a failure to its caller: every failure
// mode degrades to "the toast silently did not appear", with logging as
// the only observability channel. Notifications must not be able to
// break the capture workflow that triggers them.
package notify

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/screenbell/internal/config"
	"github.com/example/screenbell/internal/platform"
)

// ErrUnsupported reports that the platform lacks the notification
// capabilities the adapter needs. Callers should treat it as
// "notifications disabled", not as a fault.
var ErrUnsupported = errors.New("notify: platform does not support toast notifications")

// Notifier is the OS notification surface the adapter drives.
type Notifier interface {
	// Supported reports whether the platform can deliver actionable
	// toasts at all.
	Supported() bool
	// Register establishes the application identity with the OS.
	// Idempotent at the OS level.
	Register(appID string) error
	// Setting probes the OS-level notification permission.
	Setting() (platform.Setting, error)
	// Show submits one toast and returns a handle for its lifecycle
	// events. Show never blocks on user interaction.
	Show(t *platform.Toast) (platform.Handle, error)
}

// Settings exposes the configuration the adapter re-reads on every
// call.
type Settings interface {
	Snapshot() *config.Config
}

// Severity records caller intent for a notification. All severities
// currently render identically; the value is surfaced as a log field
// only, so a per-severity icon or sound can be attached later without
// changing the public surface.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "info"
}

// Option configures a single notification.
type Option func(*request)

// WithTimeout expires the notification after d. Without it, expiry is
// left to the configured default, then to the OS.
func WithTimeout(d time.Duration) Option {
	return func(r *request) { r.timeout = d }
}

// WithOnClick invokes fn at most once if the user activates the
// notification. fn runs on the event delivery goroutine.
func WithOnClick(fn func()) Option {
	return func(r *request) { r.onClick = fn }
}

// WithOnClose invokes fn only if the user explicitly dismisses the
// notification; expiry and programmatic removal do not count. fn runs
// on the event delivery goroutine.
func WithOnClose(fn func()) Option {
	return func(r *request) { r.onClose = fn }
}

type request struct {
	timeout time.Duration
	onClick func()
	onClose func()
}

// Adapter shows toast notifications on behalf of the host application.
// It is safe for concurrent use; every emission builds an independent
// toast with independent one-shot handlers.
type Adapter struct {
	settings Settings
	notifier Notifier
	log      zerolog.Logger
	iconPath string
	now      func() time.Time
}

// New returns a ready adapter, or ErrUnsupported when the platform
// cannot deliver toasts. Registration and icon preparation failures are
// logged but never fail construction.
func New(settings Settings, notifier Notifier, log zerolog.Logger) (*Adapter, error) {
	if !notifier.Supported() {
		log.Warn().Msg("toast notifications unavailable on this platform")
		return nil, ErrUnsupported
	}

	a := &Adapter{
		settings: settings,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}

	cfg := settings.Snapshot()
	if err := notifier.Register(cfg.AppID); err != nil {
		log.Warn().Err(err).Str("app_id", cfg.AppID).Msg("notification identity registration failed")
	}
	path, err := ensureIcon(iconDir(cfg))
	if err != nil {
		log.Warn().Err(err).Msg("notification icon unavailable")
	} else {
		a.iconPath = path
	}
	return a, nil
}

// Info shows an informational notification.
func (a *Adapter) Info(message string, opts ...Option) {
	a.emit(SeverityInfo, message, opts)
}

// Warning shows a warning notification.
func (a *Adapter) Warning(message string, opts ...Option) {
	a.emit(SeverityWarning, message, opts)
}

// Error shows an error notification.
func (a *Adapter) Error(message string, opts ...Option) {
	a.emit(SeverityError, message, opts)
}

func (a *Adapter) emit(sev Severity, message string, opts []Option) {
	var req request
	for _, opt := range opts {
		opt(&req)
	}

	cfg := a.settings.Snapshot()
	if !cfg.Notify.Enabled {
		a.log.Debug().Str("severity", sev.String()).Msg("notifications disabled by configuration")
		return
	}

	switch setting, err := a.notifier.Setting(); {
	case err != nil:
		// No recorded setting is not a denial; proceed.
		a.log.Debug().Err(err).Msg("notification setting probe failed, proceeding")
	case setting == platform.SettingDisabled:
		a.log.Info().Msg("notifications disabled by the operating system")
		return
	}

	toast := &platform.Toast{Text: message}
	if a.iconPath != "" {
		if _, err := os.Stat(a.iconPath); err == nil {
			toast.ImagePath = a.iconPath
		}
	}
	timeout := req.timeout
	if timeout <= 0 {
		timeout = cfg.Notify.DefaultTimeout
	}
	if timeout > 0 {
		toast.Expiration = a.now().Add(timeout)
	}

	handle, err := a.notifier.Show(toast)
	if err != nil {
		a.log.Error().Err(err).Str("severity", sev.String()).Msg("toast submission failed")
		return
	}
	a.log.Debug().Str("severity", sev.String()).Msg("toast submitted")

	go a.watch(handle, toast, req)
}

// watch drains one toast's lifecycle events, invoking each callback at
// most once and releasing the handle after the first terminal event.
func (a *Adapter) watch(handle platform.Handle, toast *platform.Toast, req request) {
	defer handle.Close()

	clicked := false
	for ev := range handle.Events() {
		switch ev.Kind {
		case platform.EventActivated:
			if !clicked && req.onClick != nil {
				a.invoke("click", req.onClick)
			}
			clicked = true
		case platform.EventDismissed:
			if ev.Reason == platform.ReasonUserCanceled && req.onClose != nil {
				a.invoke("close", req.onClose)
			}
			return
		case platform.EventFailed:
			a.log.Error().
				Uint32("code", ev.Code).
				Str("payload", toast.XML()).
				Msg("toast display failed")
			return
		}
	}
}

// invoke runs a user callback, containing any panic it raises.
func (a *Adapter) invoke(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Warn().Interface("panic", r).Str("callback", name).Msg("notification callback panicked")
		}
	}()
	fn()
}
