// Package action is how popups report back to the app: a popup returns a
// command that yields a Msg, and the app routes it by Source.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a popup asks the app to do. ActionType names it in
// logs.
type Action interface {
	ActionType() string
}

// Msg carries an Action and the popup that emitted it.
type Msg struct {
	Source string // "resetdialog" or "confirm"
	Action Action
}

var _ tea.Msg = Msg{}

// Cmd returns a command that emits a from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
