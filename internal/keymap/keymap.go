// Package keymap holds the command registry: the built-in command table,
// key normalization, the standard-set exclusion list and the live binding
// table that reset operations mutate.
package keymap

// Command describes a registered command and its factory default shortcut.
type Command struct {
	Name        string
	Key         string // factory default, normalized on registration
	Description string
	Menu        string // "file", "edit", "select", "view", "transport", "tracks", "effects"
}

// Binding is one command's shortcut in every variant the reset needs.
type Binding struct {
	Name     string
	Current  string // active key
	Default  string // full factory default
	Standard string // factory default with excluded keys removed
}

// BindingSet is an ordered snapshot of the registry. Index i always refers to
// the registry's i-th command at the time the set was taken.
type BindingSet []Binding

// Names returns the command names in order.
func (s BindingSet) Names() []string {
	names := make([]string, len(s))
	for i, b := range s {
		names[i] = b.Name
	}
	return names
}

// Defaults contains the built-in command table, in menu order.
var Defaults = []Command{
	// File
	{"New", "Ctrl+N", "New project", "file"},
	{"Open", "Ctrl+O", "Open project", "file"},
	{"Close", "Ctrl+W", "Close project", "file"},
	{"Save", "Ctrl+S", "Save project", "file"},
	{"ImportAudio", "Ctrl+Shift+I", "Import audio", "file"},
	{"Export", "Ctrl+Shift+E", "Export audio", "file"},
	{"Exit", "Ctrl+Q", "Exit", "file"},

	// Edit
	{"Undo", "Ctrl+Z", "Undo", "edit"},
	{"Redo", "Ctrl+Y", "Redo", "edit"},
	{"Cut", "Ctrl+X", "Cut", "edit"},
	{"Delete", "Delete", "Delete", "edit"},
	{"Copy", "Ctrl+C", "Copy", "edit"},
	{"Paste", "Ctrl+V", "Paste", "edit"},
	{"Duplicate", "Ctrl+D", "Duplicate", "edit"},
	{"SplitCut", "Alt+X", "Split cut", "edit"},
	{"SplitDelete", "Alt+K", "Split delete", "edit"},
	{"Silence", "Ctrl+L", "Silence audio", "edit"},
	{"Trim", "Ctrl+T", "Trim audio", "edit"},
	{"Split", "Ctrl+I", "Split", "edit"},
	{"SplitNew", "Ctrl+Alt+I", "Split new", "edit"},
	{"Join", "Ctrl+J", "Join", "edit"},
	{"Disjoin", "Ctrl+Alt+J", "Detach at silences", "edit"},
	{"Preferences", "Ctrl+P", "Preferences", "edit"},

	// Select
	{"SelectAll", "Ctrl+A", "Select all", "select"},
	{"SelectNone", "Ctrl+Shift+A", "Select none", "select"},
	{"SelAllTracks", "Ctrl+Shift+K", "Select all tracks", "select"},
	{"ZeroCross", "Z", "Snap to zero crossing", "select"},

	// View
	{"ZoomIn", "Ctrl+1", "Zoom in", "view"},
	{"ZoomNormal", "Ctrl+2", "Zoom normal", "view"},
	{"ZoomOut", "Ctrl+3", "Zoom out", "view"},
	{"ZoomSel", "Ctrl+E", "Zoom to selection", "view"},
	{"FitInWindow", "Ctrl+F", "Fit to width", "view"},
	{"FitV", "Ctrl+Shift+F", "Fit to height", "view"},
	{"CollapseAllTracks", "Ctrl+Shift+C", "Collapse all tracks", "view"},
	{"ExpandAllTracks", "Ctrl+Shift+X", "Expand all tracks", "view"},

	// Transport
	{"PlayStop", "Space", "Play/stop", "transport"},
	{"PlayStopSelect", "X", "Play/stop and set cursor", "transport"},
	{"Pause", "P", "Pause", "transport"},
	{"Record", "R", "Record", "transport"},
	{"RecordAppend", "Shift+R", "Record new track", "transport"},
	{"PlayLooped", "Shift+Space", "Play looped", "transport"},
	{"PlayOneSec", "1", "Play one second", "transport"},
	{"PlayToSelection", "B", "Play to selection", "transport"},
	{"PlayCutPreview", "C", "Play cut preview", "transport"},
	{"SeekLeftShort", "Left", "Short seek left", "transport"},
	{"SeekRightShort", "Right", "Short seek right", "transport"},
	{"SeekLeftLong", "Shift+Left", "Long seek left", "transport"},
	{"SeekRightLong", "Shift+Right", "Long seek right", "transport"},
	{"CursProjectStart", "Home", "Skip to start", "transport"},
	{"CursProjectEnd", "End", "Skip to end", "transport"},
	{"RescanDevices", "", "Rescan audio devices", "transport"},

	// Tracks
	{"NewMonoTrack", "Ctrl+Shift+N", "New mono track", "tracks"},
	{"MuteAllTracks", "Ctrl+U", "Mute all tracks", "tracks"},
	{"UnmuteAllTracks", "Ctrl+Shift+U", "Unmute all tracks", "tracks"},
	{"AddLabel", "Ctrl+B", "Add label at selection", "tracks"},
	{"AddLabelPlaying", "Ctrl+M", "Add label at playback position", "tracks"},
	{"PrevTrack", "Shift+K", "Move focus to previous track", "tracks"},
	{"NextTrack", "Shift+J", "Move focus to next track", "tracks"},
	{"ShiftUp", "Ctrl+[", "Move track up", "tracks"},
	{"ShiftDown", "Ctrl+]", "Move track down", "tracks"},

	// Effects
	{"RepeatLastEffect", "Ctrl+R", "Repeat last effect", "effects"},
	{"RepeatLastGenerator", "", "Repeat last generator", "effects"},
	{"RepeatLastAnalyzer", "", "Repeat last analyzer", "effects"},
	{"RepeatLastTool", "", "Repeat last tool", "effects"},
	{"QuickFix", "Q", "Quick fix", "effects"},
}
