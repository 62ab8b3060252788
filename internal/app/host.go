package app

import (
	"sync"

	"golang.org/x/text/language"

	"github.com/llehouerou/resetconfig/internal/keymap"
	"github.com/llehouerou/resetconfig/internal/locale"
	"github.com/llehouerou/resetconfig/internal/logging"
	"github.com/llehouerou/resetconfig/internal/prefs"
	"github.com/llehouerou/resetconfig/internal/reset"
)

// Preference paths the host reads back after a reset.
const (
	pathTheme         = "/GUI/Theme"
	pathToolbarsReset = "/GUI/Toolbars/Reset"
	pathSnapTo        = "/SnapTo"
	pathSampleRate    = "/DefaultProjectSampleRate"
)

// HostState is what the host derived from the store on its last refresh.
type HostState struct {
	Theme         string
	Language      language.Tag
	SnapTo        int64
	SampleRate    float64
	ToolbarsReset bool
	Resolver      *keymap.Resolver
	Refreshes     int
}

// Host stands in for the application around the dialog. It re-reads the
// preferences it depends on once a reset has been applied.
//
// Refresh runs on the goroutine executing the reset command, so the state
// is guarded and handed out by value.
type Host struct {
	store    prefs.Store
	registry *keymap.Registry

	mu    sync.Mutex
	state HostState
}

var _ reset.Refresher = (*Host)(nil)

// NewHost loads the initial state from store.
func NewHost(store prefs.Store, registry *keymap.Registry) *Host {
	h := &Host{store: store, registry: registry}
	h.mu.Lock()
	h.reloadPrefs()
	h.rebuildMenus()
	h.mu.Unlock()
	return h
}

// State returns a copy of the current state.
func (h *Host) State() HostState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Refresh implements reset.Refresher: preferences are reloaded for every
// reset, the command table is rebuilt only when shortcuts changed.
func (h *Host) Refresh(applied []reset.Category) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.reloadPrefs()
	for _, c := range applied {
		if c == reset.Keyboard {
			h.rebuildMenus()
		}
	}
	h.state.Refreshes++
	logging.Debugf("host: refreshed after %v (theme=%s, language=%s)",
		applied, h.state.Theme, h.state.Language)
	return nil
}

func (h *Host) reloadPrefs() {
	h.state.Theme = prefs.ReadString(h.store, pathTheme, "light")
	h.state.Language = locale.Resolve(prefs.ReadString(h.store, locale.Path, ""), locale.Supported)
	h.state.SnapTo = prefs.ReadLong(h.store, pathSnapTo, 0)
	h.state.SampleRate = prefs.ReadDouble(h.store, pathSampleRate, 44100)
	h.state.ToolbarsReset = prefs.ReadBool(h.store, pathToolbarsReset, false)
}

func (h *Host) rebuildMenus() {
	h.state.Resolver = h.registry.Resolver()
	conflicts := h.state.Resolver.Conflicts()
	for _, key := range h.state.Resolver.ConflictKeys() {
		logging.Warnf("host: %s is bound to %v", key, conflicts[key])
	}
}
