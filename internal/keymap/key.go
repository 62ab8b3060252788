package keymap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalization errors.
var (
	ErrUnknownModifier = errors.New("unknown modifier")
	ErrUnknownKey      = errors.New("unknown key name")
)

type modifier uint8

const (
	modCtrl modifier = 1 << iota
	modAlt
	modShift
	modMeta
)

// modifierOrder is the order modifiers appear in a normalized key.
var modifierOrder = []struct {
	mod  modifier
	name string
}{
	{modCtrl, "Ctrl"},
	{modAlt, "Alt"},
	{modShift, "Shift"},
	{modMeta, "Meta"},
}

var modifierNames = map[string]modifier{
	"ctrl":    modCtrl,
	"control": modCtrl,
	"ctl":     modCtrl,
	"alt":     modAlt,
	"option":  modAlt,
	"opt":     modAlt,
	"shift":   modShift,
	"meta":    modMeta,
	"cmd":     modMeta,
	"command": modMeta,
	"super":   modMeta,
	"win":     modMeta,
}

var keyNames = map[string]string{
	"space":     "Space",
	" ":         "Space",
	"esc":       "Escape",
	"escape":    "Escape",
	"enter":     "Enter",
	"return":    "Enter",
	"tab":       "Tab",
	"backspace": "Backspace",
	"delete":    "Delete",
	"del":       "Delete",
	"insert":    "Insert",
	"ins":       "Insert",
	"home":      "Home",
	"end":       "End",
	"pgup":      "PageUp",
	"pageup":    "PageUp",
	"pgdown":    "PageDown",
	"pgdn":      "PageDown",
	"pagedown":  "PageDown",
	"left":      "Left",
	"right":     "Right",
	"up":        "Up",
	"down":      "Down",
}

// Normalize returns the canonical form of a key combination: modifiers in
// Ctrl, Alt, Shift, Meta order followed by the key, joined with "+".
// The empty string is the unbound key and normalizes to itself.
func Normalize(spec string) (string, error) {
	if spec == " " {
		return "Space", nil
	}
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return "", nil
	}

	keyPart, modPart := splitKey(spec)

	var mods modifier
	if modPart != "" {
		for name := range strings.SplitSeq(modPart, "+") {
			m, ok := modifierNames[strings.ToLower(strings.TrimSpace(name))]
			if !ok {
				return "", fmt.Errorf("%w %q in %q", ErrUnknownModifier, name, spec)
			}
			mods |= m
		}
	}

	key, err := normalizeKeyName(keyPart)
	if err != nil {
		return "", fmt.Errorf("%w in %q", err, spec)
	}

	var b strings.Builder
	for _, m := range modifierOrder {
		if mods&m.mod != 0 {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	b.WriteString(key)
	return b.String(), nil
}

// Canonical is Normalize for trusted tables. An invalid spec is returned
// trimmed so that lookups stay deterministic.
func Canonical(spec string) string {
	n, err := Normalize(spec)
	if err != nil {
		return strings.TrimSpace(spec)
	}
	return n
}

// splitKey separates the trailing key from its modifier prefix. A literal
// "+" key is written as "Ctrl++".
func splitKey(spec string) (key, mods string) {
	if spec == "+" {
		return "+", ""
	}
	if strings.HasSuffix(spec, "++") {
		return "+", strings.TrimSuffix(spec, "++")
	}
	i := strings.LastIndex(spec, "+")
	if i < 0 {
		return spec, ""
	}
	return spec[i+1:], spec[:i]
}

func normalizeKeyName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrUnknownKey
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return string(unicode.ToUpper(r)), nil
	}

	lower := strings.ToLower(name)
	if k, ok := keyNames[lower]; ok {
		return k, nil
	}
	if lower[0] == 'f' {
		if n, err := strconv.Atoi(lower[1:]); err == nil && n >= 1 && n <= 24 {
			return "F" + strconv.Itoa(n), nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKey, name)
}
