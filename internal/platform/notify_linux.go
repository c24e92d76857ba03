//go:build linux

package platform

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	busName                    = "org.freedesktop.Notifications"
	busPath    dbus.ObjectPath = "/org/freedesktop/Notifications"
	defaultKey                 = "default"
)

// Freedesktop close reason codes.
const (
	closedExpired   uint32 = 1
	closedByUser    uint32 = 2
	closedByRequest uint32 = 3
)

// Notifier sends desktop notifications over the session bus using the
// Freedesktop.org notification spec and translates ActionInvoked and
// NotificationClosed signals into lifecycle events.
type Notifier struct {
	conn    *dbus.Conn
	obj     dbus.BusObject
	signals chan *dbus.Signal

	mu      sync.Mutex
	appName string
	handles map[uint32]*busHandle
	closed  bool
}

// New connects to the session bus and starts listening for
// notification signals.
func New() (*Notifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	n := &Notifier{
		conn:    conn,
		obj:     conn.Object(busName, busPath),
		signals: make(chan *dbus.Signal, 16),
		handles: make(map[uint32]*busHandle),
	}
	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(busPath),
		dbus.WithMatchInterface(busName),
	); err != nil {
		conn.Close()
		return nil, fmt.Errorf("match notification signals: %w", err)
	}
	conn.Signal(n.signals)
	go n.dispatch()
	return n, nil
}

// Supported reports whether the notification server advertises the
// "actions" capability, which click delivery depends on.
func (n *Notifier) Supported() bool {
	var caps []string
	call := n.obj.Call(busName+".GetCapabilities", 0)
	if call.Err != nil || call.Store(&caps) != nil {
		return false
	}
	for _, c := range caps {
		if c == "actions" {
			return true
		}
	}
	return false
}

// Register records the application name used for subsequent
// notifications and verifies the server answers. Registering twice is
// harmless.
func (n *Notifier) Register(appID string) error {
	n.mu.Lock()
	n.appName = appID
	n.mu.Unlock()

	var name, vendor, version, spec string
	call := n.obj.Call(busName+".GetServerInformation", 0)
	if call.Err != nil {
		return fmt.Errorf("notification server unavailable: %w", call.Err)
	}
	return call.Store(&name, &vendor, &version, &spec)
}

// Setting probes the notification server. Freedesktop servers expose no
// per-application toggle, so a reachable server counts as enabled.
func (n *Notifier) Setting() (Setting, error) {
	call := n.obj.Call(busName+".GetServerInformation", 0)
	if call.Err != nil {
		return SettingUnknown, call.Err
	}
	return SettingEnabled, nil
}

// Show submits the toast with a default click action and returns a
// handle carrying its lifecycle events.
func (n *Notifier) Show(t *Toast) (Handle, error) {
	n.mu.Lock()
	appName := n.appName
	n.mu.Unlock()

	timeout := expireTimeout(t.Expiration)
	actions := []string{defaultKey, "Open"}
	hints := map[string]dbus.Variant{}
	if t.ImagePath != "" {
		hints["image-path"] = dbus.MakeVariant(t.ImagePath)
	}

	var id uint32
	call := n.obj.Call(busName+".Notify", 0,
		appName, uint32(0), t.ImagePath, t.Text, "", actions, hints, timeout)
	if call.Err != nil {
		return nil, fmt.Errorf("notify call: %w", call.Err)
	}
	if err := call.Store(&id); err != nil {
		return nil, fmt.Errorf("notify call: %w", err)
	}

	h := &busHandle{n: n, id: id, ch: make(chan Event, 2)}
	n.mu.Lock()
	n.handles[id] = h
	n.mu.Unlock()
	return h, nil
}

// Close disconnects from the session bus and releases all outstanding
// handles.
func (n *Notifier) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	for id, h := range n.handles {
		delete(n.handles, id)
		h.release()
	}
	n.mu.Unlock()
	// closing the connection also closes the registered signal channel,
	// which ends dispatch
	return n.conn.Close()
}

func (n *Notifier) dispatch() {
	for sig := range n.signals {
		switch sig.Name {
		case busName + ".ActionInvoked":
			if len(sig.Body) < 2 {
				continue
			}
			id, ok := sig.Body[0].(uint32)
			key, _ := sig.Body[1].(string)
			if !ok || key != defaultKey {
				continue
			}
			n.deliver(id, Event{Kind: EventActivated})
		case busName + ".NotificationClosed":
			if len(sig.Body) < 2 {
				continue
			}
			id, ok := sig.Body[0].(uint32)
			code, _ := sig.Body[1].(uint32)
			if !ok {
				continue
			}
			n.deliver(id, Event{Kind: EventDismissed, Reason: closeReason(code)})
		}
	}
}

func (n *Notifier) deliver(id uint32, ev Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	h, ok := n.handles[id]
	if !ok {
		return
	}
	select {
	case h.ch <- ev:
	default:
	}
	if ev.Kind == EventDismissed {
		delete(n.handles, id)
		h.release()
	}
}

// expireTimeout converts the expiration into the Notify expire_timeout
// argument: -1 for no expiration, otherwise milliseconds clamped to the
// int32 wire type.
func expireTimeout(expiration time.Time) int32 {
	if expiration.IsZero() {
		return -1
	}
	ms := time.Until(expiration).Milliseconds()
	switch {
	case ms < 0:
		ms = 0
	case ms > math.MaxInt32:
		ms = math.MaxInt32
	}
	return int32(ms)
}

// closeReason maps a NotificationClosed reason code to a DismissReason.
func closeReason(code uint32) DismissReason {
	switch code {
	case closedExpired:
		return ReasonTimedOut
	case closedByUser:
		return ReasonUserCanceled
	case closedByRequest:
		return ReasonApplicationHidden
	}
	return ReasonUnknown
}

type busHandle struct {
	n    *Notifier
	id   uint32
	ch   chan Event
	once sync.Once
}

func (h *busHandle) Events() <-chan Event { return h.ch }

func (h *busHandle) Close() error {
	h.n.mu.Lock()
	delete(h.n.handles, h.id)
	h.release()
	h.n.mu.Unlock()
	return nil
}

// release closes the event channel. Callers must hold n.mu so sends in
// deliver cannot race the close.
func (h *busHandle) release() {
	h.once.Do(func() { close(h.ch) })
}
