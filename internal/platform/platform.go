package platform

import (
	"encoding/xml"
	"strings"
	"time"
)

// Setting reports the OS notifier's current permission state for the
// registered application.
type Setting int

const (
	// SettingUnknown means the OS has no recorded preference, or the
	// platform cannot be queried.
	SettingUnknown Setting = iota
	SettingEnabled
	SettingDisabled
)

func (s Setting) String() string {
	switch s {
	case SettingEnabled:
		return "enabled"
	case SettingDisabled:
		return "disabled"
	}
	return "unknown"
}

// EventKind identifies a notification lifecycle event.
type EventKind int

const (
	// EventActivated fires when the user clicks the notification.
	EventActivated EventKind = iota
	// EventDismissed fires when the notification is removed, for any reason.
	EventDismissed
	// EventFailed fires when the OS could not display the notification.
	EventFailed
)

// DismissReason explains why a notification was dismissed.
type DismissReason int

const (
	ReasonUnknown DismissReason = iota
	// ReasonUserCanceled means the user explicitly closed the notification.
	ReasonUserCanceled
	// ReasonTimedOut means the notification expired on its own.
	ReasonTimedOut
	// ReasonApplicationHidden means the application withdrew the notification.
	ReasonApplicationHidden
)

// Event is a single lifecycle event for a displayed notification.
type Event struct {
	Kind   EventKind
	Reason DismissReason // set when Kind is EventDismissed
	Code   uint32        // OS error code when Kind is EventFailed
}

// Handle delivers lifecycle events for one submitted notification.
// The channel is closed once the notification reaches a terminal state
// or the handle is released. Close is safe to call more than once.
type Handle interface {
	Events() <-chan Event
	Close() error
}

// Toast is a single notification payload. At most one toast results
// from each Show call; there is no queue behind it.
type Toast struct {
	Text       string
	ImagePath  string    // absolute path to the icon image, empty to omit
	Expiration time.Time // zero value leaves expiry to the OS default
}

// XML renders the toast in the Windows image+text template form. The
// Windows backend submits this document; other backends use it only as
// the payload dump attached to failure logs.
func (t *Toast) XML() string {
	text := xmlEscape(t.Text)
	if t.ImagePath == "" {
		return `<toast><visual><binding template="ToastText01">` +
			`<text id="1">` + text + `</text>` +
			`</binding></visual></toast>`
	}
	return `<toast><visual><binding template="ToastImageAndText01">` +
		`<image id="1" src="` + xmlEscape(t.ImagePath) + `"/>` +
		`<text id="1">` + text + `</text>` +
		`</binding></visual></toast>`
}

// xmlEscape encodes a string so it is safe for embedding in XML content.
func xmlEscape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return ""
	}
	return b.String()
}

// closedHandle serves backends that cannot observe notification
// lifecycle events: the channel is already closed, so consumers see an
// immediate end of delivery rather than a hang.
type closedHandle struct {
	ch chan Event
}

func newClosedHandle() *closedHandle {
	ch := make(chan Event)
	close(ch)
	return &closedHandle{ch: ch}
}

func (h *closedHandle) Events() <-chan Event { return h.ch }

func (h *closedHandle) Close() error { return nil }
