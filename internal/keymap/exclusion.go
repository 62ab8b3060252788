package keymap

import "slices"

// ExclusionList is a sorted, deduplicated set of normalized keys that are
// never assigned as standard defaults. Build it with NewExclusionList so the
// ordering that Contains relies on always holds.
type ExclusionList struct {
	keys []string
}

// DefaultExcluded lists the shortcuts that only exist in the full default set.
var DefaultExcluded = []string{
	"Ctrl+I", "Ctrl+Alt+I", "Ctrl+J", "Ctrl+Alt+J",
	"Alt+X", "Alt+K",
	"Ctrl+Shift+A", "Ctrl+Shift+K",
	"Ctrl+Shift+C", "Ctrl+Shift+X", "Ctrl+Shift+F",
	"Ctrl+Shift+N",
	"Shift+J", "Shift+K",
	"Ctrl+[", "Ctrl+]",
	"1", "Q", "Z",
}

// NewExclusionList normalizes, sorts and dedupes keys. The unbound key is
// dropped.
func NewExclusionList(keys ...string) ExclusionList {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if n := Canonical(k); n != "" {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return ExclusionList{keys: slices.Compact(out)}
}

// Contains reports whether the normalized key is excluded.
func (l ExclusionList) Contains(key string) bool {
	if key == "" {
		return false
	}
	_, found := slices.BinarySearch(l.keys, key)
	return found
}

// Keys returns a copy of the sorted keys.
func (l ExclusionList) Keys() []string {
	return slices.Clone(l.keys)
}

// Len returns the number of excluded keys.
func (l ExclusionList) Len() int {
	return len(l.keys)
}

// With returns a new list holding l's keys plus extra.
func (l ExclusionList) With(extra ...string) ExclusionList {
	return NewExclusionList(append(l.Keys(), extra...)...)
}
