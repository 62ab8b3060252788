package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/resetconfig/internal/ui/styles"
)

// RenderBordered wraps content in a rounded border and centers it on a
// screen of the given size. maxWidth caps the box width (0 = screen width).
func RenderBordered(content string, screenW, screenH, maxWidth int) string {
	width := maxLineWidth(content) + 6 // padding + border
	if maxWidth > 0 && width > maxWidth {
		width = maxWidth
	}
	if width > screenW-2 {
		width = screenW - 2
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Padding(1, 2).
		Width(width - 2). // border is outside Width
		Render(content)
	return Center(box, screenW, screenH)
}

// Center places pre-rendered content in the middle of the screen.
func Center(content string, screenW, screenH int) string {
	lines := strings.Split(content, "\n")
	boxWidth := maxLineWidth(content)

	padTop := max((screenH-len(lines))/2, 0)
	padLeft := max((screenW-boxWidth)/2, 0)

	var b strings.Builder
	for range padTop {
		b.WriteString("\n")
	}
	indent := strings.Repeat(" ", padLeft)
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(indent)
		b.WriteString(line)
	}
	return b.String()
}

// Compose overlays a centered popup view on top of base. Each overlay line
// replaces the base columns between its first and last visible character;
// the rest of the base line shows through. Styled text is handled.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		visible := strings.TrimLeft(plain, " ")
		if strings.TrimSpace(visible) == "" {
			continue
		}

		start := len(plain) - len(visible) // leading ASCII spaces, one column each
		end := start + ansi.StringWidth(strings.TrimRight(visible, " "))

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		prefix := padTo(ansi.Truncate(under, start, ""), start)
		result := prefix + ansi.Cut(line, start, end)
		if end < width {
			result += padTo(ansi.TruncateLeft(under, end, ""), width-end)
		}
		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}

// padTo right-pads s to n columns. A wide rune split at the cut point leaves
// s one column short.
func padTo(s string, n int) string {
	if w := ansi.StringWidth(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}
