// Package confirm provides a yes/no confirmation popup component.
package confirm

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/resetconfig/internal/ui"
	"github.com/llehouerou/resetconfig/internal/ui/action"
	"github.com/llehouerou/resetconfig/internal/ui/popup"
	"github.com/llehouerou/resetconfig/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

type keyMap struct {
	Yes key.Binding
	No  key.Binding
}

var keys = keyMap{
	Yes: key.NewBinding(key.WithKeys("enter", "y", "Y"), key.WithHelp("enter/y", "confirm")),
	No:  key.NewBinding(key.WithKeys("esc", "n", "N"), key.WithHelp("esc/n", "cancel")),
}

// Model is a yes/no confirmation popup.
type Model struct {
	ui.Base
	title   string
	message string
	context any
	active  bool
}

// New creates a new confirmation model.
func New() Model {
	return Model{}
}

// Show displays the confirmation popup. context is passed back in Result.
func (m *Model) Show(title, message string, context any, width, height int) {
	m.title = title
	m.message = message
	m.context = context
	m.SetSize(width, height)
	m.active = true
}

// Reset clears the confirmation state.
func (m *Model) Reset() {
	*m = Model{Base: m.Base}
}

// Active returns whether the confirmation is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Yes):
		return m, m.finish(true)
	case key.Matches(keyMsg, keys.No):
		return m, m.finish(false)
	}
	return m, nil
}

func (m *Model) finish(confirmed bool) tea.Cmd {
	m.active = false
	return action.Cmd(Source, Result{Confirmed: confirmed, Context: m.context})
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || !m.Sized() {
		return ""
	}

	s := styles.T().S()
	hint := s.Subtle.Render(keys.Yes.Help().Key + ": " + keys.Yes.Help().Desc +
		", " + keys.No.Help().Key + ": " + keys.No.Help().Desc)
	return styles.T().Heading(m.title) + "\n\n" + s.Base.Render(m.message) + "\n\n" + hint
}
