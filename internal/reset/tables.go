package reset

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/llehouerou/resetconfig/internal/prefs"
)

// Setting is one fixed (path, value) pair of a category table.
type Setting struct {
	Path  string
	Value prefs.Value
}

// Env carries the machine-dependent values of the directory table.
type Env struct {
	TempDir  string
	MusicDir string
}

// DefaultEnv resolves Env from the XDG base and user directories.
func DefaultEnv() Env {
	music := xdg.UserDirs.Music
	if music == "" {
		music = xdg.Home
	}
	return Env{
		TempDir:  filepath.Join(xdg.CacheHome, "audio", "temp"),
		MusicDir: music,
	}
}

// Version is the stamp written after every non-empty reset.
type Version struct {
	Prefs string
	Major int64
	Minor int64
	Micro int64
}

// DefaultVersion is the stamp of the preference layout this build writes.
var DefaultVersion = Version{Prefs: "1.1.1r1", Major: 3, Minor: 4, Micro: 2}

// Version stamp paths.
const (
	PathPrefsVersion = "/PrefsVersion"
	PathVersionMajor = "/Version/Major"
	PathVersionMinor = "/Version/Minor"
	PathVersionMicro = "/Version/Micro"
)

func (v Version) settings() []Setting {
	return []Setting{
		{PathPrefsVersion, prefs.String(v.Prefs)},
		{PathVersionMajor, prefs.Int(v.Major)},
		{PathVersionMinor, prefs.Int(v.Minor)},
		{PathVersionMicro, prefs.Int(v.Micro)},
	}
}

// Repeat modes of the last analyzer/tool registration.
const repeatNone = 0

// Table returns the fixed preferences of a scalar category. Keyboard has no
// table and returns nil.
func Table(c Category, env Env) []Setting {
	switch c {
	case Directories:
		return directoriesTable(env)
	case Interface:
		return interfaceTable
	case Playback:
		return playbackTable
	case Effects:
		return effectsTable
	default:
		return nil
	}
}

func directoriesTable(env Env) []Setting {
	settings := []Setting{{"/Directories/TempDir", prefs.String(env.TempDir)}}
	for _, op := range []string{"Open", "Save", "Import", "Export", "MacrosOut"} {
		settings = append(settings,
			Setting{"/Directories/" + op + "/Default", prefs.String(env.MusicDir)},
			Setting{"/Directories/" + op + "/LastUsed", prefs.String("")},
		)
	}
	return settings
}

var interfaceTable = []Setting{
	{"/Locale", prefs.String("")},
	{"/GUI/Theme", prefs.String("light")},
	{"/GUI/Help", prefs.String("Local")},
	{"/GUI/ShowSplashScreen", prefs.Bool(true)},
	{"/GUI/ShowExtraMenus", prefs.Bool(false)},
	{"/GUI/BeepOnCompletion", prefs.Bool(false)},
	{"/GUI/RetainLabels", prefs.Bool(false)},
	{"/GUI/SyncLockTracks", prefs.Bool(false)},
	{"/GUI/Toolbars/Reset", prefs.Bool(true)},
	{"/SelectionToolbarMode", prefs.Int(0)},
	{"/SnapTo", prefs.Int(0)},
}

var playbackTable = []Setting{
	{"/AudioIO/Duplex", prefs.Bool(true)},
	{"/AudioIO/SWPlaythrough", prefs.Bool(false)},
	{"/AudioIO/SoundActivatedRecord", prefs.Bool(false)},
	{"/AudioIO/PreRoll", prefs.Float(5.0)},
	{"/AudioIO/Crossfade", prefs.Float(10.0)},
	{"/AudioIO/CutPreviewBeforeLen", prefs.Float(2.0)},
	{"/AudioIO/CutPreviewAfterLen", prefs.Float(1.0)},
	{"/AudioIO/SeekShortPeriod", prefs.Float(1.0)},
	{"/AudioIO/SeekLongPeriod", prefs.Float(15.0)},
	{"/AudioIO/LatencyDuration", prefs.Float(100.0)},
	{"/AudioIO/LatencyCorrection", prefs.Float(-130.0)},
	{"/AudioIO/RecordChannels", prefs.Int(2)},
	{"/DefaultProjectSampleRate", prefs.Float(44100.0)},
}

var effectsTable = []Setting{
	{"/LastEffect", prefs.String("")},
	{"/LastGenerator", prefs.String("")},
	{"/LastAnalyzer", prefs.String("")},
	{"/LastTool", prefs.String("")},
	{"/LastAnalyzerRepeat", prefs.Int(repeatNone)},
	{"/LastToolRepeat", prefs.Int(repeatNone)},
}
