package reset

import (
	"fmt"
	"strings"
)

// Category is a group of preferences reset together.
type Category int

const (
	Directories Category = iota
	Interface
	Keyboard
	Playback
	Effects
)

// Order is the sequence in which selected categories are applied.
var Order = []Category{Directories, Interface, Keyboard, Playback, Effects}

func (c Category) String() string {
	switch c {
	case Directories:
		return "directories"
	case Interface:
		return "interface"
	case Keyboard:
		return "keyboard"
	case Playback:
		return "playback"
	case Effects:
		return "effects"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Label is the name shown in the dialog.
func (c Category) Label() string {
	switch c {
	case Directories:
		return "Directories"
	case Interface:
		return "Interface and theme"
	case Keyboard:
		return "Keyboard shortcuts"
	case Playback:
		return "Playback and recording"
	case Effects:
		return "Effects"
	default:
		return c.String()
	}
}

// ParseCategory accepts the lowercase category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Order {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// Selection is the user's choice of what to reset. All implies every
// category. UseFullKeys picks the full default shortcut set instead of the
// standard one and only matters when the keyboard is reset.
type Selection struct {
	Directories bool
	Interface   bool
	Keyboard    bool
	Playback    bool
	Effects     bool
	All         bool
	UseFullKeys bool
}

// Has reports whether c is selected.
func (s Selection) Has(c Category) bool {
	if s.All {
		return true
	}
	switch c {
	case Directories:
		return s.Directories
	case Interface:
		return s.Interface
	case Keyboard:
		return s.Keyboard
	case Playback:
		return s.Playback
	case Effects:
		return s.Effects
	default:
		return false
	}
}

// Set selects or clears c.
func (s *Selection) Set(c Category, on bool) {
	switch c {
	case Directories:
		s.Directories = on
	case Interface:
		s.Interface = on
	case Keyboard:
		s.Keyboard = on
	case Playback:
		s.Playback = on
	case Effects:
		s.Effects = on
	}
}

// Categories returns the selected categories in apply order.
func (s Selection) Categories() []Category {
	var out []Category
	for _, c := range Order {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return len(s.Categories()) == 0
}

// KeyboardScopeEnabled reports whether the standard/full choice applies.
func (s Selection) KeyboardScopeEnabled() bool {
	return s.Has(Keyboard)
}
