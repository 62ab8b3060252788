package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the bordered style of the background preference table.
// The border dims while a dialog has focus.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	color := t.Border
	if focused {
		color = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}
