// Package testutil has helpers for testing rendered popups.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared
// without style interference.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// FindLine returns the first line of output containing substr, or "".
func FindLine(output, substr string) string {
	line, _ := findLine(output, substr)
	return line
}

// ContainsLine reports whether one line of output contains substr. Unlike
// strings.Contains it never matches across a line break.
func ContainsLine(output, substr string) bool {
	_, ok := findLine(output, substr)
	return ok
}

func findLine(output, substr string) (string, bool) {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line, true
		}
	}
	return "", false
}

// AssertContains returns a failure message if the stripped output lacks
// substr, or "".
func AssertContains(output, substr string) string {
	if !strings.Contains(StripANSI(output), substr) {
		return "expected output to contain " + substr
	}
	return ""
}

// AssertNotContains is the inverse of AssertContains.
func AssertNotContains(output, substr string) string {
	if strings.Contains(StripANSI(output), substr) {
		return "expected output to NOT contain " + substr
	}
	return ""
}
