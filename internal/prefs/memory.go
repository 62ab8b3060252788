package prefs

import (
	"fmt"
	"maps"
)

// Memory is an in-memory Store for tests and dry runs.
type Memory struct {
	values   map[string]Value
	flushErr error
	flushes  int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]Value)}
}

func (m *Memory) Write(path string, v Value) { m.values[path] = v }

func (m *Memory) Read(path string) (Value, bool) {
	v, ok := m.values[path]
	return v, ok
}

func (m *Memory) HasEntry(path string) bool {
	_, ok := m.values[path]
	return ok
}

func (m *Memory) DeleteEntry(path string) bool {
	_, ok := m.values[path]
	delete(m.values, path)
	return ok
}

func (m *Memory) Entries() []Entry { return sortedEntries(m.values) }

func (m *Memory) Flush() error {
	m.flushes++
	if m.flushErr != nil {
		return fmt.Errorf("%w: %w", ErrFlush, m.flushErr)
	}
	return nil
}

// Test helpers

// SetFlushError makes subsequent flushes fail with err (nil clears it).
func (m *Memory) SetFlushError(err error) { m.flushErr = err }

// Flushes returns the number of Flush calls.
func (m *Memory) Flushes() int { return m.flushes }

// Snapshot returns a copy of every stored value.
func (m *Memory) Snapshot() map[string]Value { return maps.Clone(m.values) }

// Verify Memory implements Store at compile time.
var _ Store = (*Memory)(nil)
