package notify

import (
	"strings"
	"testing"
)

func TestUrgencyValues(t *testing.T) {
	// Verify urgency constants match D-Bus spec
	if UrgencyLow != 0 {
		t.Errorf("UrgencyLow = %d, want 0", UrgencyLow)
	}
	if UrgencyNormal != 1 {
		t.Errorf("UrgencyNormal = %d, want 1", UrgencyNormal)
	}
	if UrgencyCritical != 2 {
		t.Errorf("UrgencyCritical = %d, want 2", UrgencyCritical)
	}
}

func TestResetFailed(t *testing.T) {
	n := ResetFailed("Failed to save preferences: disk full")
	if n.Urgency != UrgencyCritical {
		t.Errorf("Urgency = %d, want critical", n.Urgency)
	}
	if n.Timeout != 0 {
		t.Errorf("Timeout = %d, want 0 (never expire)", n.Timeout)
	}
	if n.Body != "Failed to save preferences: disk full" {
		t.Errorf("Body = %q", n.Body)
	}
}

func TestResetDone(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		want       string
	}{
		{"several", []string{"interface", "keyboard"}, "interface, keyboard"},
		{"none", nil, "Nothing was selected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := ResetDone(tt.categories)
			if !strings.Contains(n.Body, tt.want) {
				t.Errorf("Body = %q, want it to contain %q", n.Body, tt.want)
			}
			if n.Urgency != UrgencyLow {
				t.Errorf("Urgency = %d, want low", n.Urgency)
			}
		})
	}
}

func TestDisabled(t *testing.T) {
	n := Disabled()
	id, err := n.Notify(ResetFailed("x"))
	if err != nil || id != 0 {
		t.Errorf("Notify() = %d, %v; want 0, nil", id, err)
	}
	if err := n.Close(id); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
