package confirm

import (
	"github.com/llehouerou/resetconfig/internal/ui/action"
)

// Result contains the confirmation dialog result.
type Result struct {
	Confirmed bool
	Context   any // User-provided context passed through
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "confirm.result" }

// Source identifies the confirmation popup in action.Msg.
const Source = "confirm"

var _ action.Action = Result{}
