package keymap

import (
	"errors"
	"fmt"
	"slices"
)

// Registry errors.
var (
	ErrDuplicateCommand = errors.New("command already registered")
	ErrIndexOutOfRange  = errors.New("command index out of range")
	ErrStaleBindings    = errors.New("binding set does not match registry")
)

// Registry is the live command table. It is not safe for concurrent use;
// callers drive it from the UI goroutine.
type Registry struct {
	commands []Command
	current  []string
	excluded ExclusionList
}

// NewRegistry creates a registry seeded with commands, each bound to its
// factory default.
func NewRegistry(commands []Command, excluded ExclusionList) *Registry {
	r := &Registry{excluded: excluded}
	for _, c := range commands {
		_ = r.Register(c) // duplicates in built-in tables keep the first entry
	}
	return r
}

// Register appends a command, e.g. one contributed by a plugin. Indices of
// existing commands are unchanged; any BindingSet taken earlier is stale.
func (r *Registry) Register(c Command) error {
	if r.indexOf(c.Name) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, c.Name)
	}
	c.Key = Canonical(c.Key)
	r.commands = append(r.commands, c)
	r.current = append(r.current, c.Key)
	return nil
}

// Unregister removes a command by name and reports whether it existed.
// Indices after it shift down.
func (r *Registry) Unregister(name string) bool {
	i := r.indexOf(name)
	if i < 0 {
		return false
	}
	r.commands = slices.Delete(r.commands, i, i+1)
	r.current = slices.Delete(r.current, i, i+1)
	return true
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}

// Commands returns a copy of the command table.
func (r *Registry) Commands() []Command {
	return slices.Clone(r.commands)
}

// AllCommandData enumerates every command with its current and full default
// key. Standard is left for the caller to compute against ExcludedList.
func (r *Registry) AllCommandData() BindingSet {
	set := make(BindingSet, len(r.commands))
	for i, c := range r.commands {
		set[i] = Binding{
			Name:    c.Name,
			Current: r.current[i],
			Default: c.Key,
		}
	}
	return set
}

// ExcludedList returns the keys removed from the standard default set.
func (r *Registry) ExcludedList() ExclusionList {
	return r.excluded
}

// SetKeyFromIndex sets the active key of the i-th command.
func (r *Registry) SetKeyFromIndex(i int, key string) error {
	if i < 0 || i >= len(r.current) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, i, len(r.current))
	}
	r.current[i] = Canonical(key)
	return nil
}

// SetKey sets the active key of a command by name.
func (r *Registry) SetKey(name, key string) bool {
	i := r.indexOf(name)
	if i < 0 {
		return false
	}
	r.current[i] = Canonical(key)
	return true
}

// KeyFor returns the active key of a command.
func (r *Registry) KeyFor(name string) (string, bool) {
	i := r.indexOf(name)
	if i < 0 {
		return "", false
	}
	return r.current[i], true
}

// Verify checks that set was taken from the registry in its current shape:
// same length and the same command name at every index.
func (r *Registry) Verify(set BindingSet) error {
	if len(set) != len(r.commands) {
		return fmt.Errorf("%w: %d bindings for %d commands", ErrStaleBindings, len(set), len(r.commands))
	}
	for i, b := range set {
		if b.Name != r.commands[i].Name {
			return fmt.Errorf("%w: index %d is %q, registry has %q", ErrStaleBindings, i, b.Name, r.commands[i].Name)
		}
	}
	return nil
}

// Resolver builds a key lookup over the active bindings.
func (r *Registry) Resolver() *Resolver {
	return NewResolver(r.AllCommandData())
}

func (r *Registry) indexOf(name string) int {
	return slices.IndexFunc(r.commands, func(c Command) bool { return c.Name == name })
}
