package keymap

import (
	"strings"

	"github.com/llehouerou/resetconfig/internal/prefs"
)

// OverridePrefix is the preference namespace holding per-command shortcut
// overrides.
const OverridePrefix = "/NewKeys/"

// OverridePath returns the preference path of a command's override.
func OverridePath(name string) string {
	return OverridePrefix + name
}

// LoadOverrides applies every stored override onto the active keys.
// It returns the names of overrides whose command is not registered, so the
// caller can log them; those entries are left in the store untouched.
func (r *Registry) LoadOverrides(store prefs.Store) (unknown []string) {
	for _, e := range prefs.WithPrefix(store.Entries(), OverridePrefix) {
		name := strings.TrimPrefix(e.Path, OverridePrefix)
		key, ok := e.Value.AsString()
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if !r.SetKey(name, key) {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
