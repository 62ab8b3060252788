package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/resetconfig/internal/errmsg"
	"github.com/llehouerou/resetconfig/internal/logging"
	"github.com/llehouerou/resetconfig/internal/notify"
	"github.com/llehouerou/resetconfig/internal/reset"
	"github.com/llehouerou/resetconfig/internal/ui/action"
	"github.com/llehouerou/resetconfig/internal/ui/confirm"
	"github.com/llehouerou/resetconfig/internal/ui/resetdialog"
	"github.com/llehouerou/resetconfig/internal/ui/styles"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		// A running reset is never interrupted.
		if msg.String() == "ctrl+c" && m.phase != phaseApplying {
			m.phase = phaseDone
			return m, tea.Quit
		}
		return m.handleKey(msg)
	case action.Msg:
		return m.handleAction(msg)
	case ResetDoneMsg:
		return m.handleResetDone(msg.Result)
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	w := min(dialogMaxWidth, width-2) - 6 // border + padding
	m.dialog.SetSize(w, height)
	if m.confirm.Active() {
		m.confirm.SetSize(w, height)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.phase {
	case phaseSelect:
		_, cmd = m.dialog.Update(msg)
	case phaseConfirm:
		_, cmd = m.confirm.Update(msg)
	case phaseApplying, phaseDone:
	}
	return m, cmd
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case resetdialog.Proceed:
		if m.phase != phaseSelect {
			return m, nil
		}
		m.pending = a.Selection
		m.phase = phaseConfirm
		m.confirm.Show("Reset Configuration", confirmMessage(a.Selection),
			a.Selection, m.dialog.Width(), m.dialog.Height())
		return m, nil

	case resetdialog.Cancel:
		logging.Debugf("app: dialog cancelled")
		m.phase = phaseDone
		return m, tea.Quit

	case confirm.Result:
		m.confirm.Reset()
		if !a.Confirmed {
			m.phase = phaseSelect
			return m, nil
		}
		m.phase = phaseApplying
		m.dialog.SetBusy(true)
		return m, applyCmd(m.coord, m.pending)
	}
	return m, nil
}

func applyCmd(coord *reset.Coordinator, sel reset.Selection) tea.Cmd {
	return func() tea.Msg {
		return ResetDoneMsg{Result: coord.Apply(sel)}
	}
}

func (m Model) handleResetDone(res reset.Result) (tea.Model, tea.Cmd) {
	m.result = &res
	m.dialog.SetBusy(false)
	if len(res.Applied) > 0 {
		styles.Use(m.host.State().Theme)
		m.rows = snapshotRows(m.coord.Store())
	}

	if !res.OK() {
		msg := errmsg.Format(errmsg.OpReset, res.Err)
		logging.Errorf("app: %v", res.Err)
		m.dialog.SetStatus(msg, true)
		m.notify(notify.ResetFailed(msg))
		m.phase = phaseSelect
		return m, nil
	}

	m.dialog.SetStatus("Done", false)
	m.notify(notify.ResetDone(labels(res.Applied)))
	m.phase = phaseDone
	return m, tea.Quit
}

func (m Model) notify(n notify.Notification) {
	if !m.notifications {
		return
	}
	if _, err := m.notifier.Notify(n); err != nil {
		logging.Warnf("app: notify: %v", err)
	}
}

func confirmMessage(sel reset.Selection) string {
	names := labels(sel.Categories())
	if sel.KeyboardScopeEnabled() && sel.UseFullKeys {
		for i, n := range names {
			if n == reset.Keyboard.Label() {
				names[i] += " (full set)"
			}
		}
	}
	return "Reset " + strings.Join(names, ", ") + " to their defaults?\nThis cannot be undone."
}

func labels(cats []reset.Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Label()
	}
	return out
}
