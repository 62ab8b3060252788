package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Name string

	// Brand/accent colors
	Primary   lipgloss.Color // focused items, checked boxes
	Secondary lipgloss.Color // gradient end, secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text
	FgMuted  lipgloss.Color // Secondary text
	FgSubtle lipgloss.Color // Disabled options, hints

	// Backgrounds
	BgBase   lipgloss.Color
	BgCursor lipgloss.Color // Cursor/selection highlight

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style // Default text
	Muted    lipgloss.Style // Dimmed text
	Subtle   lipgloss.Style // Very dim text
	Title    lipgloss.Style // Bold, bright
	Selected lipgloss.Style // Checked option
	Cursor   lipgloss.Style // Cursor background highlight
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

var darkTheme = Theme{
	Name:      "dark",
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:   lipgloss.Color("#1a1a1a"),
	BgCursor: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

var lightTheme = Theme{
	Name:      "light",
	Primary:   lipgloss.Color("#6d28d9"),
	Secondary: lipgloss.Color("#b45309"),

	FgBase:   lipgloss.Color("#1f1f1f"),
	FgMuted:  lipgloss.Color("#555555"),
	FgSubtle: lipgloss.Color("#9a9a9a"),

	BgBase:   lipgloss.Color("#fafafa"),
	BgCursor: lipgloss.Color("#e4e4e7"),

	Border:      lipgloss.Color("#a1a1aa"),
	BorderFocus: lipgloss.Color("#6d28d9"),

	Success: lipgloss.Color("#15803d"),
	Error:   lipgloss.Color("#b91c1c"),
	Warning: lipgloss.Color("#b45309"),
}

var current = &lightTheme

// T returns the active theme.
func T() *Theme {
	return current
}

// Use activates the theme named by the /GUI/Theme preference. Unknown names
// fall back to light, the reset default.
func Use(name string) *Theme {
	switch strings.ToLower(name) {
	case "dark", "high-contrast":
		current = &darkTheme
	default:
		current = &lightTheme
	}
	return current
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Selected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// Heading renders a dialog title with the theme's accent gradient.
func (t *Theme) Heading(text string) string {
	return ApplyBoldGradient(text, t.Primary, t.Secondary)
}
