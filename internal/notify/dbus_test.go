//go:build linux

package notify

import (
	"errors"
	"os"
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestNotifyArgs(t *testing.T) {
	args := notifyArgs(Notification{
		Title:      "Reset failed",
		Body:       "disk full",
		Icon:       iconError,
		Timeout:    0,
		ReplacesID: 7,
		Urgency:    UrgencyCritical,
	})

	if len(args) != 8 {
		t.Fatalf("got %d args, want 8", len(args))
	}
	if args[0] != appName || args[1] != uint32(7) || args[2] != iconError ||
		args[3] != "Reset failed" || args[4] != "disk full" || args[7] != int32(0) {
		t.Errorf("unexpected args: %v", args)
	}

	hints, ok := args[6].(map[string]dbus.Variant)
	if !ok {
		t.Fatalf("hints has type %T", args[6])
	}
	if got := hints["urgency"].Value(); got != byte(UrgencyCritical) {
		t.Errorf("urgency hint = %v, want %d", got, UrgencyCritical)
	}
	if got := hints["desktop-entry"].Value(); got != appEntry {
		t.Errorf("desktop-entry hint = %v, want %q", got, appEntry)
	}
	if got := hints["resident"].Value(); got != true {
		t.Errorf("resident hint = %v, want true for critical", got)
	}
}

func TestNotifyArgs_LowUrgencyNotResident(t *testing.T) {
	hints := notifyArgs(ResetDone([]string{"Effects"}))[6].(map[string]dbus.Variant)
	if _, ok := hints["resident"]; ok {
		t.Error("only critical notifications should be resident")
	}
}

func TestNotify_LiveSession(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	notifier, err := New()
	if errors.Is(err, ErrNoServer) {
		t.Skip("no notification server running")
	}
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	id, err := notifier.Notify(Notification{
		Title:   "Reset Configuration Test",
		Body:    "Test notification from unit test",
		Timeout: 1000,
		Urgency: UrgencyLow,
	})
	if err != nil {
		t.Fatalf("Notify() error: %v", err)
	}
	if id == 0 {
		t.Error("Notify() returned id=0, expected non-zero")
	}

	// Replacing keeps the id.
	id2, err := notifier.Notify(Notification{Title: "Reset failed", Timeout: 1000, ReplacesID: id})
	if err != nil {
		t.Fatalf("second Notify() error: %v", err)
	}
	if id2 != id {
		t.Errorf("replacing notification got id=%d, want id=%d", id2, id)
	}
	if err := notifier.Close(id2); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
