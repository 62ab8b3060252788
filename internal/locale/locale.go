// Package locale resolves the /Locale preference to a supported language.
//
// An empty preference means "follow the system", read from LC_ALL,
// LC_MESSAGES and LANG in that order.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Path is the preference holding the user's language choice.
const Path = "/Locale"

// Supported lists the interface languages, the first being the fallback.
var Supported = []language.Tag{
	language.English,
	language.French,
	language.German,
	language.Spanish,
	language.Italian,
	language.BrazilianPortuguese,
	language.Japanese,
	language.SimplifiedChinese,
}

// Resolve picks the supported language closest to pref. An empty pref uses
// the system setting; anything unparsable falls back to supported[0].
func Resolve(pref string, supported []language.Tag) language.Tag {
	if len(supported) == 0 {
		return language.Und
	}
	if pref == "" {
		pref = System()
	}
	tags, _, err := language.ParseAcceptLanguage(normalize(pref))
	if err != nil || len(tags) == 0 {
		return supported[0]
	}
	matcher := language.NewMatcher(supported)
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return supported[0]
	}
	return supported[idx]
}

// System returns the POSIX locale from the environment, or "".
func System() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" && v != "C" && v != "POSIX" {
			return v
		}
	}
	return ""
}

// normalize turns POSIX forms like "fr_FR.UTF-8@euro" into BCP 47.
func normalize(s string) string {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}
