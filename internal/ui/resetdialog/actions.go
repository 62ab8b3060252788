package resetdialog

import (
	"github.com/llehouerou/resetconfig/internal/reset"
	"github.com/llehouerou/resetconfig/internal/ui/action"
)

// Proceed asks the host to apply the selection.
type Proceed struct {
	Selection reset.Selection
}

// ActionType implements action.Action.
func (a Proceed) ActionType() string { return "resetdialog.proceed" }

// Cancel closes the dialog without changes.
type Cancel struct{}

// ActionType implements action.Action.
func (a Cancel) ActionType() string { return "resetdialog.cancel" }

// Source identifies the dialog in action.Msg.
const Source = "resetdialog"

var (
	_ action.Action = Proceed{}
	_ action.Action = Cancel{}
)
