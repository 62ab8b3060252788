// Package resetdialog is the "Reset Configuration" modal: one checkbox per
// category, the standard/full shortcut choice and Proceed/Cancel.
package resetdialog

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/resetconfig/internal/reset"
	"github.com/llehouerou/resetconfig/internal/ui"
	"github.com/llehouerou/resetconfig/internal/ui/action"
	"github.com/llehouerou/resetconfig/internal/ui/popup"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

type row int

// Rows in display order. The category rows follow reset.Order.
const (
	rowDirectories row = iota
	rowInterface
	rowKeyboard
	rowPlayback
	rowEffects
	rowAll
	rowStandard
	rowFull
	rowProceed
	rowCancel
	rowCount
)

func (r row) category() (reset.Category, bool) {
	if r < rowAll {
		return reset.Order[r], true
	}
	return 0, false
}

// Model holds the dialog state. The selection lives only as long as the
// dialog and is handed over once, in Proceed.
type Model struct {
	ui.Base
	sel       reset.Selection
	cursor    row
	help      help.Model
	status    string
	statusErr bool
	busy      bool
}

// New creates a dialog with an initial selection, typically empty with
// UseFullKeys taken from configuration.
func New(initial reset.Selection) Model {
	h := help.New()
	return Model{sel: initial, help: h}
}

// Selection returns the current selection.
func (m Model) Selection() reset.Selection {
	return m.sel
}

// SetStatus shows a message under the buttons. An error message is styled
// as such.
func (m *Model) SetStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// SetBusy disables input while a reset runs.
func (m *Model) SetBusy(busy bool) {
	m.busy = busy
	if busy {
		m.SetStatus("Resetting…", false)
	}
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.help.Width = width
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.busy {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Cancel):
		return m, cancel()
	case key.Matches(keyMsg, keys.Proceed):
		return m, m.proceed()
	case key.Matches(keyMsg, keys.Up):
		m.move(-1)
	case key.Matches(keyMsg, keys.Down):
		m.move(1)
	case key.Matches(keyMsg, keys.All):
		m.sel.All = !m.sel.All
		m.clearStatus()
		m.fixCursor()
	case key.Matches(keyMsg, keys.Toggle):
		cmd := m.activate(m.cursor)
		m.fixCursor()
		return m, cmd
	}
	return m, nil
}

// fixCursor moves the cursor to the All row when a toggle disabled the row
// under it.
func (m *Model) fixCursor() {
	if !m.enabled(m.cursor) {
		m.cursor = rowAll
	}
}

// enabled reports whether a row accepts the cursor.
func (m *Model) enabled(r row) bool {
	switch {
	case r == rowStandard || r == rowFull:
		return m.sel.KeyboardScopeEnabled()
	case r < rowAll:
		return !m.sel.All
	default:
		return true
	}
}

// move steps the cursor, skipping disabled rows and wrapping around.
func (m *Model) move(delta int) {
	next := m.cursor
	for range rowCount {
		next = (next + row(delta) + rowCount) % rowCount
		if m.enabled(next) {
			m.cursor = next
			return
		}
	}
}

func (m *Model) activate(r row) tea.Cmd {
	if !m.enabled(r) {
		return nil
	}
	m.clearStatus()

	if cat, ok := r.category(); ok {
		m.sel.Set(cat, !m.sel.Has(cat))
		return nil
	}
	switch r {
	case rowAll:
		m.sel.All = !m.sel.All
	case rowStandard:
		m.sel.UseFullKeys = false
	case rowFull:
		m.sel.UseFullKeys = true
	case rowProceed:
		return m.proceed()
	case rowCancel:
		return cancel()
	}
	return nil
}

func (m *Model) proceed() tea.Cmd {
	if m.sel.Empty() {
		m.SetStatus("Select at least one category to reset", true)
		return nil
	}
	return action.Cmd(Source, Proceed{Selection: m.sel})
}

func cancel() tea.Cmd {
	return action.Cmd(Source, Cancel{})
}

func (m *Model) clearStatus() {
	if !m.statusErr {
		return
	}
	m.status = ""
	m.statusErr = false
}
