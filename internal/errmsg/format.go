// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"

	"github.com/llehouerou/resetconfig/internal/keymap"
	"github.com/llehouerou/resetconfig/internal/prefs"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Store operations
	OpPrefsOpen  Op = "open preferences"
	OpPrefsFlush Op = "save preferences"
	OpPrefsRead  Op = "read preferences"

	// Reset operations
	OpReset         Op = "reset configuration"
	OpResetCategory Op = "reset"
	OpResetKeyboard Op = "reset keyboard shortcuts"

	// Host refresh
	OpRefresh Op = "refresh interface"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Failed to %s: %v", op, err)
	if h := Hint(err); h != "" {
		msg += " (" + h + ")"
	}
	return msg
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	msg := fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
	if h := Hint(err); h != "" {
		msg += " (" + h + ")"
	}
	return msg
}

// Hint suggests what the user can do about a known failure, or "".
func Hint(err error) string {
	switch {
	case errors.Is(err, prefs.ErrFlush):
		return "changes were not saved, check disk space and permissions"
	case errors.Is(err, keymap.ErrStaleBindings):
		return "the command list changed, try again"
	default:
		return ""
	}
}
