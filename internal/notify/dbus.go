//go:build linux

package notify

import (
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
)

// ErrNoServer means the session bus has no notification daemon.
var ErrNoServer = errors.New("no notification server on the session bus")

// dbusNotifier sends notifications via D-Bus.
type dbusNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus and checks that a notification daemon is
// running. Callers fall back to Disabled on error.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("session bus: %w", err)
	}

	var owned bool
	if err := conn.BusObject().Call("org.freedesktop.DBus.NameHasOwner", 0, dbusNotifyDest).Store(&owned); err != nil {
		return nil, fmt.Errorf("query %s: %w", dbusNotifyDest, err)
	}
	if !owned {
		return nil, ErrNoServer
	}

	return &dbusNotifier{obj: conn.Object(dbusNotifyDest, dbusNotifyPath)}, nil
}

// notifyArgs builds the arguments of
// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout).
func notifyArgs(n Notification) []any {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(appEntry),
	}
	if n.Urgency == UrgencyCritical {
		// Keep failures in the notification history.
		hints["resident"] = dbus.MakeVariant(true)
	}
	return []any{
		appName,
		n.ReplacesID,
		n.Icon,
		n.Title,
		n.Body,
		[]string{},
		hints,
		n.Timeout,
	}
}

// Notify sends a notification via D-Bus.
func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	call := n.obj.Call(dbusNotifyInterface+".Notify", 0, notifyArgs(notif)...)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Close closes a notification by ID.
func (n *dbusNotifier) Close(id uint32) error {
	return n.obj.Call(dbusNotifyInterface+".CloseNotification", 0, id).Err
}
