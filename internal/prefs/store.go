// Package prefs provides the persistent path → scalar preference store.
//
// Writes and deletes are visible to reads immediately and become durable on
// Flush. Paths are slash-separated, e.g. "/GUI/Theme" or "/NewKeys/Undo".
package prefs

import (
	"errors"
	"sort"
	"strings"
)

// ErrFlush wraps every durability commit failure.
var ErrFlush = errors.New("flush preferences")

// Entry is one stored preference.
type Entry struct {
	Path  string
	Value Value
}

// Store is the preference store contract.
type Store interface {
	Write(path string, v Value)
	Read(path string) (Value, bool)
	HasEntry(path string) bool
	// DeleteEntry removes a path and reports whether it existed.
	DeleteEntry(path string) bool
	// Entries returns every entry sorted by path.
	Entries() []Entry
	// Flush commits pending writes. Failures wrap ErrFlush.
	Flush() error
}

// WriteString writes a string preference.
func WriteString(s Store, path, v string) { s.Write(path, String(v)) }

// WriteBool writes a bool preference.
func WriteBool(s Store, path string, v bool) { s.Write(path, Bool(v)) }

// WriteInt writes an integer preference.
func WriteInt(s Store, path string, v int64) { s.Write(path, Int(v)) }

// WriteFloat writes a floating point preference.
func WriteFloat(s Store, path string, v float64) { s.Write(path, Float(v)) }

// ReadString returns the string at path, or def if absent or another kind.
func ReadString(s Store, path, def string) string {
	if v, ok := s.Read(path); ok {
		if str, ok := v.AsString(); ok {
			return str
		}
	}
	return def
}

// ReadBool returns the bool at path, or def.
func ReadBool(s Store, path string, def bool) bool {
	if v, ok := s.Read(path); ok {
		if b, ok := v.AsBool(); ok {
			return b
		}
	}
	return def
}

// ReadLong returns the integer at path, or def.
func ReadLong(s Store, path string, def int64) int64 {
	if v, ok := s.Read(path); ok {
		if i, ok := v.AsInt(); ok {
			return i
		}
	}
	return def
}

// ReadDouble returns the floating point value at path, or def.
func ReadDouble(s Store, path string, def float64) float64 {
	if v, ok := s.Read(path); ok {
		if f, ok := v.AsFloat(); ok {
			return f
		}
	}
	return def
}

// WithPrefix filters entries to those under prefix.
func WithPrefix(entries []Entry, prefix string) []Entry {
	if prefix == "" {
		return entries
	}
	var out []Entry
	for _, e := range entries {
		if strings.HasPrefix(e.Path, prefix) {
			out = append(out, e)
		}
	}
	return out
}

func sortedEntries(values map[string]Value) []Entry {
	out := make([]Entry, 0, len(values))
	for p, v := range values {
		out = append(out, Entry{Path: p, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
