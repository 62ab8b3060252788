// Package reset turns a reset selection into preference store mutations.
//
// Scalar categories are overwritten unconditionally from fixed tables.
// Keyboard shortcuts are diffed against the stored overrides so that only
// commands whose key differs from the applicable default keep an entry.
// Categories are applied in a fixed order with no rollback: when one fails,
// the ones before it stay applied.
package reset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/llehouerou/resetconfig/internal/keymap"
	"github.com/llehouerou/resetconfig/internal/logging"
	"github.com/llehouerou/resetconfig/internal/prefs"
)

// Refresher updates host state that depends on preferences (toolbars, menus,
// theme, locale) after a reset.
type Refresher interface {
	Refresh(applied []Category) error
}

// RefreshFunc adapts a function to Refresher.
type RefreshFunc func(applied []Category) error

func (f RefreshFunc) Refresh(applied []Category) error { return f(applied) }

// Refreshers runs every hook and joins their errors.
type Refreshers []Refresher

func (rs Refreshers) Refresh(applied []Category) error {
	var errs []error
	for _, r := range rs {
		if err := r.Refresh(applied); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Result reports what an Apply did.
type Result struct {
	Applied []Category
	// Failed is the category that stopped the sequence, nil when every
	// category succeeded (even if the stamp or refresh failed).
	Failed  *Category
	Stamped bool
	Err     error
}

// OK reports whether everything succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Coordinator applies resets to a store and a command registry.
type Coordinator struct {
	store          prefs.Store
	registry       *keymap.Registry
	env            Env
	version        Version
	pluginRegistry string
	refresher      Refresher
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithEnv sets the machine-dependent directory values.
func WithEnv(env Env) Option { return func(c *Coordinator) { c.env = env } }

// WithVersion sets the version stamp.
func WithVersion(v Version) Option { return func(c *Coordinator) { c.version = v } }

// WithPluginRegistry sets the plugin registry file removed by the effects
// reset. Empty disables removal.
func WithPluginRegistry(path string) Option {
	return func(c *Coordinator) { c.pluginRegistry = path }
}

// WithRefresher sets the hook called after a non-empty apply.
func WithRefresher(r Refresher) Option { return func(c *Coordinator) { c.refresher = r } }

// New creates a Coordinator.
func New(store prefs.Store, registry *keymap.Registry, opts ...Option) *Coordinator {
	c := &Coordinator{
		store:    store,
		registry: registry,
		env:      DefaultEnv(),
		version:  DefaultVersion,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store returns the preference store.
func (c *Coordinator) Store() prefs.Store { return c.store }

// Registry returns the command registry.
func (c *Coordinator) Registry() *keymap.Registry { return c.registry }

// Apply resets every selected category in Order, then writes the version
// stamp and refreshes the host. An empty selection changes nothing.
func (c *Coordinator) Apply(sel Selection) Result {
	var res Result
	cats := sel.Categories()
	if len(cats) == 0 {
		return res
	}

	for _, cat := range cats {
		logging.Debugf("reset: applying %s", cat)
		var err error
		if cat == Keyboard {
			err = c.ResetKeyboard(sel.UseFullKeys)
		} else {
			err = c.ResetCategory(cat)
		}
		if err != nil {
			logging.Errorf("reset: %s failed: %v", cat, err)
			res.Failed = &cat
			res.Err = fmt.Errorf("reset %s: %w", cat, err)
			break
		}
		res.Applied = append(res.Applied, cat)
	}

	if res.Err == nil {
		if err := c.WriteVersionStamp(); err != nil {
			res.Err = fmt.Errorf("write version stamp: %w", err)
		} else {
			res.Stamped = true
		}
	}

	if len(res.Applied) > 0 && c.refresher != nil {
		if err := c.refresher.Refresh(res.Applied); err != nil {
			logging.Warnf("reset: refresh: %v", err)
			res.Err = errors.Join(res.Err, fmt.Errorf("refresh: %w", err))
		}
	}

	logging.Infof("reset: applied %v", res.Applied)
	return res
}

// ResetCategory overwrites a scalar category's table and flushes. The
// effects category also removes the plugin registry file.
func (c *Coordinator) ResetCategory(cat Category) error {
	if cat == Keyboard {
		return fmt.Errorf("reset %s: use ResetKeyboard", cat)
	}
	table := Table(cat, c.env)
	if table == nil {
		return fmt.Errorf("no table for category %s", cat)
	}
	for _, s := range table {
		c.store.Write(s.Path, s.Value)
	}
	if err := c.store.Flush(); err != nil {
		return err
	}
	if cat == Effects {
		return c.removePluginRegistry()
	}
	return nil
}

// ResetKeyboard restores every command to its default shortcut and records
// which default set now applies.
func (c *Coordinator) ResetKeyboard(useFull bool) error {
	set := ComputeStandardDefaults(c.registry.AllCommandData(), c.registry.ExcludedList())
	return c.resetBindings(set, useFull)
}

// resetBindings records the default set only once the registry accepted the
// new keys, so a rejected set leaves no pending flag for a later Flush.
func (c *Coordinator) resetBindings(set keymap.BindingSet, useFull bool) error {
	keys := ApplyKeyboardReset(set, useFull)
	if err := AssignBindings(c.registry, set, keys); err != nil {
		return err
	}
	prefs.WriteBool(c.store, PathFullDefaults, useFull)
	return CommitBindingDiffs(c.store, set, keys)
}

// WriteVersionStamp records the preference layout version and flushes.
func (c *Coordinator) WriteVersionStamp() error {
	for _, s := range c.version.settings() {
		c.store.Write(s.Path, s.Value)
	}
	return c.store.Flush()
}

func (c *Coordinator) removePluginRegistry() error {
	if c.pluginRegistry == "" {
		return nil
	}
	err := os.Remove(c.pluginRegistry)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("remove plugin registry: %w", err)
	}
	logging.Debugf("reset: removed plugin registry %s", c.pluginRegistry)
	return nil
}
