package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal drawn by RenderBordered over the app's view. The app
// routes key messages to the active popup only.
type Popup interface {
	Init() tea.Cmd
	// Update returns the popup itself; actions go out as commands.
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View is the bare content, before border and centering.
	View() string
	// SetSize gives the content area inside the border.
	SetSize(width, height int)
}
