// Package notify provides desktop notifications via D-Bus.
package notify

import "strings"

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

const (
	appName   = "Reset Configuration"
	appEntry  = "resetconfig"
	iconReset = "preferences-system"
	iconError = "dialog-error"
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// ResetFailed builds the critical notification for a reset that did not
// complete. It stays until dismissed.
func ResetFailed(msg string) Notification {
	return Notification{
		Title:   "Reset failed",
		Body:    msg,
		Icon:    iconError,
		Timeout: 0,
		Urgency: UrgencyCritical,
	}
}

// ResetDone builds the notification for a completed reset.
func ResetDone(categories []string) Notification {
	body := "Nothing was selected"
	if len(categories) > 0 {
		body = "Restored defaults for " + strings.Join(categories, ", ")
	}
	return Notification{
		Title:   "Configuration reset",
		Body:    body,
		Icon:    iconReset,
		Timeout: -1,
		Urgency: UrgencyLow,
	}
}

// Disabled returns a Notifier that drops everything.
func Disabled() Notifier {
	return &stubNotifier{}
}
