package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/resetconfig/internal/notify"
	"github.com/llehouerou/resetconfig/internal/reset"
	"github.com/llehouerou/resetconfig/internal/ui/confirm"
	"github.com/llehouerou/resetconfig/internal/ui/resetdialog"
	"github.com/llehouerou/resetconfig/internal/ui/styles"
)

type phase int

const (
	phaseSelect phase = iota
	phaseConfirm
	phaseApplying
	phaseDone
)

// dialogMaxWidth caps the dialog box on wide terminals.
const dialogMaxWidth = 64

// Options configures the host model.
type Options struct {
	Notifier      notify.Notifier
	Notifications bool
	// Initial is the selection the dialog opens with.
	Initial reset.Selection
}

// Model is the root tea.Model: the preference table in the background with
// the reset dialog, or its confirmation, on top.
type Model struct {
	coord *reset.Coordinator
	host  *Host

	dialog  resetdialog.Model
	confirm confirm.Model

	notifier      notify.Notifier
	notifications bool

	phase   phase
	pending reset.Selection
	result  *reset.Result
	rows    [][]string

	width, height int
}

// New creates the host model. A nil notifier disables notifications.
func New(coord *reset.Coordinator, host *Host, opts Options) Model {
	n := opts.Notifier
	if n == nil {
		n = notify.Disabled()
	}
	styles.Use(host.State().Theme)
	m := Model{
		coord:         coord,
		host:          host,
		dialog:        resetdialog.New(opts.Initial),
		confirm:       confirm.New(),
		notifier:      n,
		notifications: opts.Notifications,
	}
	m.rows = snapshotRows(coord.Store())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Result returns the outcome of the reset, or nil if the dialog was
// cancelled.
func (m Model) Result() *reset.Result {
	return m.result
}
