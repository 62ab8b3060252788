// Package app is the host around the reset dialog: it runs the coordinator
// when the user proceeds and reports the outcome.
package app

import "github.com/llehouerou/resetconfig/internal/reset"

// ResetDoneMsg carries the outcome of an Apply run.
type ResetDoneMsg struct {
	Result reset.Result
}
