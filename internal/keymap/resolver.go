package keymap

import "slices"

// Resolver maps active keys to command names.
type Resolver struct {
	bindings  map[string][]string // key -> commands
	byCommand map[string]string   // command -> key
}

// NewResolver creates a resolver from the Current keys of a binding set.
// Unbound commands are not indexed by key.
func NewResolver(set BindingSet) *Resolver {
	r := &Resolver{
		bindings:  make(map[string][]string),
		byCommand: make(map[string]string, len(set)),
	}
	for _, b := range set {
		r.byCommand[b.Name] = b.Current
		if b.Current == "" {
			continue
		}
		r.bindings[b.Current] = append(r.bindings[b.Current], b.Name)
	}
	return r
}

// Resolve returns the command bound to key, or empty string if not bound.
// Key may be in any accepted spelling. When several commands share a key the
// first registered wins.
func (r *Resolver) Resolve(key string) string {
	cmds := r.bindings[Canonical(key)]
	if len(cmds) == 0 {
		return ""
	}
	return cmds[0]
}

// KeyFor returns the key bound to a command.
func (r *Resolver) KeyFor(command string) string {
	return r.byCommand[command]
}

// Conflicts returns each key bound to more than one command, with those
// commands in registration order.
func (r *Resolver) Conflicts() map[string][]string {
	out := make(map[string][]string)
	for key, cmds := range r.bindings {
		if len(cmds) > 1 {
			out[key] = slices.Clone(cmds)
		}
	}
	return out
}

// ConflictKeys returns the conflicted keys in sorted order.
func (r *Resolver) ConflictKeys() []string {
	var keys []string
	for key, cmds := range r.bindings {
		if len(cmds) > 1 {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}
