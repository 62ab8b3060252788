package resetdialog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/resetconfig/internal/reset"
	"github.com/llehouerou/resetconfig/internal/ui/styles"
)

const (
	title       = "Reset Configuration"
	description = "Restore the selected settings to their defaults."
)

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.Sized() {
		return ""
	}
	t := styles.T()
	s := t.S()

	lines := make([]string, 0, int(rowCount)+8)
	lines = append(lines, t.Heading(title), s.Muted.Render(description), "")

	for r := rowDirectories; r <= rowAll; r++ {
		label := "All of the above"
		checked := m.sel.All
		if cat, ok := r.category(); ok {
			label = cat.Label()
			checked = m.sel.Has(cat)
		}
		lines = append(lines, m.renderRow(r, checkbox(checked)+" "+label))
	}

	lines = append(lines, "", m.scopeHeader())
	lines = append(lines,
		m.renderRow(rowStandard, radio(!m.sel.UseFullKeys)+" Standard set (reserved keys unbound)"),
		m.renderRow(rowFull, radio(m.sel.UseFullKeys)+" Full set"),
		"",
		m.renderButtons(),
	)

	if m.status != "" {
		style := s.Muted
		if m.statusErr {
			style = s.Error
		}
		lines = append(lines, "", style.Render(m.status))
	}

	lines = append(lines, "", m.help.View(keys))
	return strings.Join(lines, "\n")
}

func (m *Model) scopeHeader() string {
	s := styles.T().S()
	if !m.sel.KeyboardScopeEnabled() {
		return s.Subtle.Render("Keyboard shortcut defaults:")
	}
	return s.Base.Render("Keyboard shortcut defaults:")
}

func (m *Model) renderRow(r row, text string) string {
	s := styles.T().S()
	prefix := "  "
	style := s.Base
	switch {
	case !m.enabled(r):
		style = s.Subtle
	case r == m.cursor:
		prefix = "> "
		style = s.Cursor
	case isChecked(m.sel, r):
		style = s.Selected
	}
	return prefix + style.Render(text)
}

func (m *Model) renderButtons() string {
	s := styles.T().S()
	button := func(r row, label string) string {
		text := "[ " + label + " ]"
		if r == m.cursor {
			return s.Cursor.Bold(true).Render(text)
		}
		return s.Muted.Render(text)
	}
	return "  " + lipgloss.JoinHorizontal(lipgloss.Top,
		button(rowProceed, "Proceed"), "  ", button(rowCancel, "Cancel"))
}

func isChecked(sel reset.Selection, r row) bool {
	if cat, ok := r.category(); ok {
		return sel.Has(cat)
	}
	switch r {
	case rowAll:
		return sel.All
	case rowStandard:
		return !sel.UseFullKeys
	case rowFull:
		return sel.UseFullKeys
	default:
		return false
	}
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func radio(on bool) string {
	if on {
		return "(•)"
	}
	return "( )"
}
