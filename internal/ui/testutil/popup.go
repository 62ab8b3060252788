package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/resetconfig/internal/ui/action"
	"github.com/llehouerou/resetconfig/internal/ui/popup"
)

// PopupHarness drives a popup.Popup the way the app does and records every
// command it returns, so tests can inspect the emitted actions.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness wraps p and records its Init command, if any.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	h.record(p.Init())
	return h
}

func (h *PopupHarness) record(cmd tea.Cmd) tea.Cmd {
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Popup returns the wrapped popup, for type assertions.
func (h *PopupHarness) Popup() popup.Popup { return h.popup }

// SetSize resizes the popup.
func (h *PopupHarness) SetSize(width, height int) { h.popup.SetSize(width, height) }

// View renders the popup.
func (h *PopupHarness) View() string { return h.popup.View() }

// SendMsg passes msg to Update and returns the command it produced.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	return h.record(cmd)
}

// SendKey types the runes of key as one key press.
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendKeys types each key in turn and returns the last command.
func (h *PopupHarness) SendKeys(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = h.SendKey(k)
	}
	return cmd
}

// SendSpecialKey presses a non-rune key.
func (h *PopupHarness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

func (h *PopupHarness) SendEnter() tea.Cmd  { return h.SendSpecialKey(tea.KeyEnter) }
func (h *PopupHarness) SendEscape() tea.Cmd { return h.SendSpecialKey(tea.KeyEscape) }
func (h *PopupHarness) SendUp() tea.Cmd     { return h.SendSpecialKey(tea.KeyUp) }
func (h *PopupHarness) SendDown() tea.Cmd   { return h.SendSpecialKey(tea.KeyDown) }
func (h *PopupHarness) SendTab() tea.Cmd    { return h.SendSpecialKey(tea.KeyTab) }
func (h *PopupHarness) SendSpace() tea.Cmd  { return h.SendSpecialKey(tea.KeySpace) }

// Commands returns the recorded commands, oldest first.
func (h *PopupHarness) Commands() []tea.Cmd { return h.cmds }

// LastCommand returns the most recent command, or nil.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands forgets the recorded commands.
func (h *PopupHarness) ClearCommands() { h.cmds = nil }

// LastActionMsg runs the most recent command and reports whether it
// emitted an action.Msg.
func (h *PopupHarness) LastActionMsg() (action.Msg, bool) {
	msg, ok := ExecuteCmd(h.LastCommand()).(action.Msg)
	return msg, ok
}

// LastAction is LastActionMsg without the source; nil if no action was
// emitted.
func (h *PopupHarness) LastAction() action.Action {
	msg, ok := h.LastActionMsg()
	if !ok {
		return nil
	}
	return msg.Action
}

// ExecuteCmd runs cmd, returning nil for a nil command.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// ViewContains reports whether a line of the stripped view contains substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return ContainsLine(StripANSI(h.View()), substr)
}

// AssertViewContains returns a failure message if the view lacks substr.
func (h *PopupHarness) AssertViewContains(substr string) string {
	return AssertContains(h.View(), substr)
}

// AssertViewNotContains returns a failure message if the view has substr.
func (h *PopupHarness) AssertViewNotContains(substr string) string {
	return AssertNotContains(h.View(), substr)
}
