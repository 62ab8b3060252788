package reset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/resetconfig/internal/keymap"
	"github.com/llehouerou/resetconfig/internal/prefs"
)

var testEnv = Env{TempDir: "/tmp/audio/temp", MusicDir: "/home/user/Music"}

type recordingRefresher struct {
	calls [][]Category
	err   error
}

func (r *recordingRefresher) Refresh(applied []Category) error {
	r.calls = append(r.calls, applied)
	return r.err
}

func newTestCoordinator(t *testing.T, store prefs.Store, opts ...Option) (*Coordinator, *keymap.Registry) {
	t.Helper()
	r := keymap.NewRegistry(keymap.Defaults, keymap.NewExclusionList(keymap.DefaultExcluded...))
	opts = append([]Option{WithEnv(testEnv)}, opts...)
	return New(store, r, opts...), r
}

// seededStore holds a realistic mix of customized preferences.
func seededStore() *prefs.Memory {
	s := prefs.NewMemory()
	prefs.WriteString(s, "/GUI/Theme", "dark")
	prefs.WriteString(s, "/Locale", "fr")
	prefs.WriteBool(s, "/AudioIO/Duplex", false)
	prefs.WriteFloat(s, "/DefaultProjectSampleRate", 96000)
	prefs.WriteString(s, "/Directories/TempDir", "/mnt/scratch")
	prefs.WriteString(s, "/NewKeys/Undo", "Alt+Z")
	prefs.WriteString(s, "/NewKeys/Split", "Ctrl+Alt+S")
	prefs.WriteString(s, "/LastEffect", "Echo")
	return s
}

func overrides(s *prefs.Memory) map[string]prefs.Value {
	out := make(map[string]prefs.Value)
	for p, v := range s.Snapshot() {
		if strings.HasPrefix(p, keymap.OverridePrefix) {
			out[p] = v
		}
	}
	return out
}

func TestApply_EmptySelectionLeavesStoreUnchanged(t *testing.T) {
	store := seededStore()
	before := store.Snapshot()
	refresher := &recordingRefresher{}
	c, _ := newTestCoordinator(t, store, WithRefresher(refresher))

	res := c.Apply(Selection{UseFullKeys: true})

	assert.True(t, res.OK())
	assert.Empty(t, res.Applied)
	assert.False(t, res.Stamped)
	assert.Equal(t, before, store.Snapshot())
	assert.Zero(t, store.Flushes())
	assert.Empty(t, refresher.calls)
}

func TestApply_InterfaceOnlyTouchesInterfacePaths(t *testing.T) {
	store := seededStore()
	before := store.Snapshot()
	c, _ := newTestCoordinator(t, store)

	res := c.Apply(Selection{Interface: true})
	require.NoError(t, res.Err)

	after := store.Snapshot()
	for p, v := range before {
		if strings.HasPrefix(p, "/NewKeys/") || strings.HasPrefix(p, "/AudioIO/") {
			assert.Equalf(t, v, after[p], "%s changed", p)
		}
	}
	for p := range after {
		if strings.HasPrefix(p, "/NewKeys/") || strings.HasPrefix(p, "/AudioIO/") {
			_, existed := before[p]
			assert.Truef(t, existed, "%s created", p)
		}
	}
	assert.Equal(t, "light", prefs.ReadString(store, "/GUI/Theme", ""))
	assert.Equal(t, "", prefs.ReadString(store, "/Locale", "?"))
	assert.Equal(t, []Category{Interface}, res.Applied)
}

func TestApply_KeyboardStandardIsIdempotent(t *testing.T) {
	store := seededStore()
	c, _ := newTestCoordinator(t, store)

	require.NoError(t, c.Apply(Selection{Keyboard: true}).Err)
	once := overrides(store)
	require.NoError(t, c.Apply(Selection{Keyboard: true}).Err)

	assert.Equal(t, once, overrides(store))
	assert.Empty(t, once, "every command is back at its standard default")
}

func TestApply_KeyboardAssignsRegistry(t *testing.T) {
	tests := []struct {
		name    string
		useFull bool
		want    string
	}{
		{"standard unbinds excluded", false, ""},
		{"full keeps excluded", true, "Ctrl+I"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := prefs.NewMemory()
			c, r := newTestCoordinator(t, store)
			require.True(t, r.SetKey("Split", "Alt+S"))
			require.True(t, r.SetKey("Undo", "Alt+Z"))

			res := c.Apply(Selection{Keyboard: true, UseFullKeys: tt.useFull})
			require.NoError(t, res.Err)

			key, _ := r.KeyFor("Split")
			assert.Equal(t, tt.want, key)
			key, _ = r.KeyFor("Undo")
			assert.Equal(t, "Ctrl+Z", key)
			assert.Equal(t, tt.useFull, prefs.ReadBool(store, PathFullDefaults, !tt.useFull))
			assert.Empty(t, overrides(store))
		})
	}
}

func TestApply_KeyboardKeepsOverridesOfUnknownCommands(t *testing.T) {
	store := seededStore()
	prefs.WriteString(store, "/NewKeys/SomePluginCommand", "F9")
	c, _ := newTestCoordinator(t, store)

	require.NoError(t, c.Apply(Selection{Keyboard: true}).Err)

	assert.Equal(t, map[string]prefs.Value{
		"/NewKeys/SomePluginCommand": prefs.String("F9"),
	}, overrides(store))
}

func TestApply_PicksUpRegisteredCommands(t *testing.T) {
	store := prefs.NewMemory()
	c, r := newTestCoordinator(t, store)
	require.NoError(t, r.Register(keymap.Command{Name: "PluginEcho", Key: "Ctrl+Alt+E"}))
	r.SetKey("PluginEcho", "F9")

	require.NoError(t, c.Apply(Selection{Keyboard: true}).Err)

	key, _ := r.KeyFor("PluginEcho")
	assert.Equal(t, "Ctrl+Alt+E", key)
}

func TestApply_AllAppliesEveryCategoryInOrder(t *testing.T) {
	store := seededStore()
	refresher := &recordingRefresher{}
	c, _ := newTestCoordinator(t, store, WithRefresher(refresher), WithVersion(Version{
		Prefs: "1.1.1r1", Major: 3, Minor: 4, Micro: 2,
	}))

	res := c.Apply(Selection{All: true})

	require.NoError(t, res.Err)
	assert.Equal(t, Order, res.Applied)
	assert.True(t, res.Stamped)
	require.Len(t, refresher.calls, 1)
	assert.Equal(t, Order, refresher.calls[0])

	assert.Equal(t, "/tmp/audio/temp", prefs.ReadString(store, "/Directories/TempDir", ""))
	assert.Equal(t, "/home/user/Music", prefs.ReadString(store, "/Directories/Open/Default", ""))
	assert.True(t, prefs.ReadBool(store, "/AudioIO/Duplex", false))
	assert.InDelta(t, 44100.0, prefs.ReadDouble(store, "/DefaultProjectSampleRate", 0), 0)
	assert.Equal(t, "", prefs.ReadString(store, "/LastEffect", "?"))
	assert.False(t, prefs.ReadBool(store, PathFullDefaults, true), "all uses standard keys")
	assert.Equal(t, "1.1.1r1", prefs.ReadString(store, PathPrefsVersion, ""))
	assert.Equal(t, int64(3), prefs.ReadLong(store, PathVersionMajor, 0))
	assert.Equal(t, int64(4), prefs.ReadLong(store, PathVersionMinor, 0))
	assert.Equal(t, int64(2), prefs.ReadLong(store, PathVersionMicro, 0))
	assert.Empty(t, overrides(store))
}

func TestApply_AllWithFullKeys(t *testing.T) {
	store := prefs.NewMemory()
	c, _ := newTestCoordinator(t, store)

	require.NoError(t, c.Apply(Selection{All: true, UseFullKeys: true}).Err)

	assert.True(t, prefs.ReadBool(store, PathFullDefaults, false))
}

func TestApply_FlushFailureStopsSequence(t *testing.T) {
	store := seededStore()
	store.SetFlushError(errors.New("disk full"))
	refresher := &recordingRefresher{}
	c, _ := newTestCoordinator(t, store, WithRefresher(refresher))

	res := c.Apply(Selection{Interface: true, Playback: true})

	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, prefs.ErrFlush)
	require.NotNil(t, res.Failed)
	assert.Equal(t, Interface, *res.Failed)
	assert.Empty(t, res.Applied)
	assert.False(t, res.Stamped)
	assert.Empty(t, refresher.calls, "nothing applied, nothing to refresh")
	assert.Equal(t, 1, store.Flushes(), "playback never ran")
}

func TestApply_NoRollbackOfEarlierCategories(t *testing.T) {
	// A non-empty directory cannot be removed like a file.
	registryPath := filepath.Join(t.TempDir(), "pluginregistry")
	require.NoError(t, os.MkdirAll(filepath.Join(registryPath, "child"), 0o755))

	store := seededStore()
	refresher := &recordingRefresher{}
	c, _ := newTestCoordinator(t, store, WithRefresher(refresher), WithPluginRegistry(registryPath))

	res := c.Apply(Selection{Directories: true, Effects: true})

	require.Error(t, res.Err)
	require.NotNil(t, res.Failed)
	assert.Equal(t, Effects, *res.Failed)
	assert.Equal(t, []Category{Directories}, res.Applied)
	assert.Equal(t, "/tmp/audio/temp", prefs.ReadString(store, "/Directories/TempDir", ""))
	assert.False(t, store.HasEntry(PathPrefsVersion))
	require.Len(t, refresher.calls, 1)
	assert.Equal(t, []Category{Directories}, refresher.calls[0])
}

func TestApply_RefreshErrorIsReported(t *testing.T) {
	store := prefs.NewMemory()
	hookErr := errors.New("toolbar reset failed")
	c, _ := newTestCoordinator(t, store, WithRefresher(Refreshers{
		RefreshFunc(func([]Category) error { return nil }),
		&recordingRefresher{err: hookErr},
	}))

	res := c.Apply(Selection{Playback: true})

	require.ErrorIs(t, res.Err, hookErr)
	assert.True(t, res.Stamped, "store writes are complete before refresh")
	assert.Equal(t, []Category{Playback}, res.Applied)
}

func TestResetCategory_EffectsRemovesPluginRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pluginregistry.cfg")
	require.NoError(t, os.WriteFile(path, []byte("[plugins]\n"), 0o644))
	store := prefs.NewMemory()
	c, _ := newTestCoordinator(t, store, WithPluginRegistry(path))

	require.NoError(t, c.ResetCategory(Effects))

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	// Missing file is fine on a second reset.
	require.NoError(t, c.ResetCategory(Effects))
}

func TestResetCategory_RejectsKeyboard(t *testing.T) {
	c, _ := newTestCoordinator(t, prefs.NewMemory())
	assert.Error(t, c.ResetCategory(Keyboard))
}

func TestTables_DisjointAndOutsideOverrides(t *testing.T) {
	seen := make(map[string]Category)
	for _, cat := range Order {
		for _, s := range Table(cat, testEnv) {
			assert.Falsef(t, strings.HasPrefix(s.Path, keymap.OverridePrefix), "%s writes %s", cat, s.Path)
			if prev, dup := seen[s.Path]; dup {
				t.Errorf("%s written by both %s and %s", s.Path, prev, cat)
			}
			seen[s.Path] = cat
			assert.Truef(t, s.Value.Valid(), "%s has no value", s.Path)
		}
	}
	assert.Nil(t, Table(Keyboard, testEnv))
	for _, s := range DefaultVersion.settings() {
		_, dup := seen[s.Path]
		assert.Falsef(t, dup, "version path %s is in a category table", s.Path)
	}
}

func TestSelection(t *testing.T) {
	var s Selection
	assert.True(t, s.Empty())
	assert.False(t, s.KeyboardScopeEnabled())

	s.Set(Playback, true)
	s.Set(Directories, true)
	assert.Equal(t, []Category{Directories, Playback}, s.Categories())
	assert.False(t, s.KeyboardScopeEnabled())

	s.Set(Keyboard, true)
	assert.True(t, s.KeyboardScopeEnabled())
	s.Set(Keyboard, false)

	s.All = true
	assert.Equal(t, Order, s.Categories())
	assert.True(t, s.KeyboardScopeEnabled())
}

func TestParseCategory(t *testing.T) {
	for _, c := range Order {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	got, err := ParseCategory("Playback")
	require.NoError(t, err)
	assert.Equal(t, Playback, got)

	_, err = ParseCategory("toolbars")
	assert.Error(t, err)
}

func TestApply_SuccessHasNoFailedCategory(t *testing.T) {
	c, _ := newTestCoordinator(t, prefs.NewMemory())

	res := c.Apply(Selection{Directories: true})

	require.NoError(t, res.Err)
	assert.Nil(t, res.Failed)
}

func TestApply_StampFailureHasNoFailedCategory(t *testing.T) {
	store := &failNthFlush{Memory: prefs.NewMemory(), n: 2}
	c, _ := newTestCoordinator(t, store)

	res := c.Apply(Selection{Directories: true})

	require.ErrorIs(t, res.Err, prefs.ErrFlush)
	assert.Nil(t, res.Failed, "directories succeeded, only the stamp failed")
	assert.Equal(t, []Category{Directories}, res.Applied)
	assert.False(t, res.Stamped)
}

// failNthFlush fails the n-th Flush and succeeds otherwise.
type failNthFlush struct {
	*prefs.Memory
	n, calls int
}

func (s *failNthFlush) Flush() error {
	s.calls++
	if s.calls == s.n {
		return fmt.Errorf("%w: disk full", prefs.ErrFlush)
	}
	return s.Memory.Flush()
}

func TestResetBindings_StaleSetLeavesFlagUnwritten(t *testing.T) {
	store := prefs.NewMemory()
	c, r := newTestCoordinator(t, store)
	set := ComputeStandardDefaults(r.AllCommandData(), r.ExcludedList())
	require.NoError(t, r.Register(keymap.Command{Name: "PluginEcho", Key: "F9"}))

	err := c.resetBindings(set, true)

	require.ErrorIs(t, err, keymap.ErrStaleBindings)
	assert.False(t, store.HasEntry(PathFullDefaults))

	// A later category flushes whatever is pending.
	require.NoError(t, c.ResetCategory(Interface))
	assert.False(t, store.HasEntry(PathFullDefaults))
}

func TestLoadBindings_KeyboardResetSurvivesReload(t *testing.T) {
	tests := []struct {
		name      string
		useFull   bool
		wantSplit string
	}{
		{"standard", false, ""},
		{"full", true, "Ctrl+I"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seededStore()
			c, r := newTestCoordinator(t, store)
			require.NoError(t, c.ResetKeyboard(tt.useFull))
			require.Empty(t, overrides(store))

			reloaded := keymap.NewRegistry(keymap.Defaults, keymap.NewExclusionList(keymap.DefaultExcluded...))
			unknown, err := LoadBindings(reloaded, store)

			require.NoError(t, err)
			assert.Empty(t, unknown)
			assert.Equal(t, r.AllCommandData(), reloaded.AllCommandData())
			key, _ := reloaded.KeyFor("Split")
			assert.Equal(t, tt.wantSplit, key)
		})
	}
}

func TestLoadBindings_OverridesApplyOnTopOfStandardSet(t *testing.T) {
	store := prefs.NewMemory()
	prefs.WriteString(store, keymap.OverridePath("Split"), "Ctrl+Alt+S")
	prefs.WriteString(store, keymap.OverridePath("GoneCommand"), "F4")
	r := keymap.NewRegistry(keymap.Defaults, keymap.NewExclusionList(keymap.DefaultExcluded...))

	unknown, err := LoadBindings(r, store)

	require.NoError(t, err)
	assert.Equal(t, []string{"GoneCommand"}, unknown)
	key, _ := r.KeyFor("Split")
	assert.Equal(t, "Ctrl+Alt+S", key)
	key, _ = r.KeyFor("SplitNew")
	assert.Empty(t, key, "excluded key stays unbound without an override")
	key, _ = r.KeyFor("Undo")
	assert.Equal(t, "Ctrl+Z", key)
}
