package reset

import (
	"fmt"

	"github.com/llehouerou/resetconfig/internal/keymap"
	"github.com/llehouerou/resetconfig/internal/prefs"
)

// PathFullDefaults records whether the full default shortcut set is the
// applicable default for overrides.
const PathFullDefaults = "/GUI/Shortcuts/FullDefaults"

// ComputeStandardDefaults returns a copy of full whose Standard key is the
// full default, or unbound when that key is excluded.
func ComputeStandardDefaults(full keymap.BindingSet, excl keymap.ExclusionList) keymap.BindingSet {
	out := make(keymap.BindingSet, len(full))
	for i, b := range full {
		b.Standard = b.Default
		if excl.Contains(b.Default) {
			b.Standard = ""
		}
		out[i] = b
	}
	return out
}

// ApplyKeyboardReset selects the target key of every binding.
func ApplyKeyboardReset(set keymap.BindingSet, useFull bool) []string {
	keys := make([]string, len(set))
	for i, b := range set {
		if useFull {
			keys[i] = b.Default
		} else {
			keys[i] = b.Standard
		}
	}
	return keys
}

// AssignBindings makes newKeys the registry's active keys. The set must have
// been taken from the registry in its current shape; otherwise nothing is
// assigned and the error wraps keymap.ErrStaleBindings.
func AssignBindings(r *keymap.Registry, set keymap.BindingSet, newKeys []string) error {
	if len(newKeys) != len(set) {
		return fmt.Errorf("%w: %d keys for %d bindings", keymap.ErrStaleBindings, len(newKeys), len(set))
	}
	if err := r.Verify(set); err != nil {
		return err
	}
	for i, k := range newKeys {
		if err := r.SetKeyFromIndex(i, k); err != nil {
			return err
		}
	}
	return nil
}

// CommitBindingDiffs persists exactly the overrides that differ from the
// applicable default and flushes. Afterwards an override exists for binding i
// if and only if newKeys[i] differs from its default.
func CommitBindingDiffs(store prefs.Store, set keymap.BindingSet, newKeys []string) error {
	if len(newKeys) != len(set) {
		return fmt.Errorf("%w: %d keys for %d bindings", keymap.ErrStaleBindings, len(newKeys), len(set))
	}

	useFull := prefs.ReadBool(store, PathFullDefaults, false)
	for i, b := range set {
		def := b.Standard
		if useFull {
			def = b.Default
		}
		key := newKeys[i]
		path := keymap.OverridePath(b.Name)

		if v, ok := store.Read(path); ok {
			if key == def {
				store.DeleteEntry(path)
				continue
			}
			if stored, isString := v.AsString(); !isString || stored != key {
				prefs.WriteString(store, path, key)
			}
			continue
		}
		if key != def {
			prefs.WriteString(store, path, key)
		}
	}
	return store.Flush()
}

// LoadBindings seeds the registry's active keys the way CommitBindingDiffs
// left them: the applicable default set chosen by PathFullDefaults, then the
// stored overrides on top. It returns the override names that match no
// registered command.
func LoadBindings(r *keymap.Registry, store prefs.Store) (unknown []string, err error) {
	set := ComputeStandardDefaults(r.AllCommandData(), r.ExcludedList())
	keys := ApplyKeyboardReset(set, prefs.ReadBool(store, PathFullDefaults, false))
	if err := AssignBindings(r, set, keys); err != nil {
		return nil, err
	}
	return r.LoadOverrides(store), nil
}
