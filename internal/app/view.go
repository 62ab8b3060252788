package app

import (
	"strings"

	"github.com/llehouerou/resetconfig/internal/prefs"
	"github.com/llehouerou/resetconfig/internal/ui/popup"
	"github.com/llehouerou/resetconfig/internal/ui/render"
	"github.com/llehouerou/resetconfig/internal/ui/styles"
)

// pathColumnMax keeps long paths from pushing values off screen.
const pathColumnMax = 40

// snapshotRows copies the store contents for the background table. It is
// taken on the UI goroutine, never while a reset runs.
func snapshotRows(store prefs.Store) [][]string {
	entries := store.Entries()
	rows := make([][]string, len(entries))
	for i, e := range entries {
		text := e.Value.Text()
		if text == "" {
			text = `""`
		}
		rows[i] = []string{e.Path, e.Value.Kind().String(), text}
	}
	return rows
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	base := m.renderBackground()

	var content string
	switch m.phase {
	case phaseConfirm:
		content = m.confirm.View()
	case phaseSelect, phaseApplying:
		content = m.dialog.View()
	case phaseDone:
		return base
	}
	box := popup.RenderBordered(content, m.width, m.height, dialogMaxWidth)
	return popup.Compose(base, box, m.width)
}

func (m Model) renderBackground() string {
	panel := styles.PanelStyle(false)
	innerW := m.width - panel.GetHorizontalFrameSize()
	innerH := m.height - panel.GetVerticalFrameSize()
	if innerW <= 0 || innerH <= 0 {
		return ""
	}

	t := render.Table{
		Headers:   []string{"Preference", "Kind", "Value"},
		Rows:      m.rows,
		MaxColumn: pathColumnMax,
	}
	lines := t.Lines(innerW, innerH)
	if len(m.rows) == 0 && innerH > 2 {
		lines = append(lines, styles.T().S().Muted.Render(render.Cell("(no preferences stored)", innerW)))
	}
	for len(lines) < innerH {
		lines = append(lines, strings.Repeat(" ", innerW))
	}
	return panel.Width(innerW).Height(innerH).Render(strings.Join(lines, "\n"))
}
