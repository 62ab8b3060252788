//go:build !linux

package notify

import "errors"

// New reports that desktop notifications are Linux-only here.
func New() (Notifier, error) {
	return nil, errors.New("desktop notifications are not supported on this platform")
}
