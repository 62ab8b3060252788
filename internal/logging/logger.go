// Package logging holds the process-wide logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. It writes to stderr until Setup or
// OpenFile redirects it.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "resetconfig"})

// Setup points L at w and sets the level.
func Setup(w io.Writer, debug bool) {
	L = clog.NewWithOptions(w, clog.Options{
		Prefix:          "resetconfig",
		ReportTimestamp: true,
	})
	if debug {
		L.SetLevel(clog.DebugLevel)
	}
}

// OpenFile opens the log file under the XDG state home and points L at it.
// The terminal dialog logs there so output doesn't tear the screen.
// The caller closes the returned file.
func OpenFile(debug bool) (*os.File, error) {
	path, err := xdg.StateFile(filepath.Join("resetconfig", "resetconfig.log"))
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Setup(f, debug)
	return f, nil
}

// SetDebug switches L between debug and info level.
func SetDebug(on bool) {
	if on {
		L.SetLevel(clog.DebugLevel)
	} else {
		L.SetLevel(clog.InfoLevel)
	}
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
