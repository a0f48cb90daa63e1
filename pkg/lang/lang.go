// Package lang exposes the static language-tag table used to interpret
// short language annotations and locale-aware boolean spellings.
// The table is built once at init and never mutated afterwards,
// which makes it safe to share across concurrent transformations.
package lang

import (
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Locale describes one supported language annotation.
type Locale struct {
	Code  string   // short code accepted in annotations (ex: "fr", "jp")
	Tag   string   // canonical BCP-47 tag emitted in @language (ex: "fr", "ja")
	Name  string   // English display name (ex: "French")
	True  []string // spellings recognized as the boolean true
	False []string // spellings recognized as the boolean false
}

// entry is the raw form used to declare the table.
type entry struct {
	code       string
	tag        string // BCP-47 tag when different from the code
	trueForms  []string
	falseForms []string
}

var table = []entry{
	{code: "en", trueForms: []string{"true", "yes"}, falseForms: []string{"false", "no"}},
	{code: "fr", trueForms: []string{"vrai", "oui"}, falseForms: []string{"faux", "non"}},
	{code: "it", trueForms: []string{"vero", "sì"}, falseForms: []string{"falso", "no"}},
	{code: "de", trueForms: []string{"wahr", "ja"}, falseForms: []string{"falsch", "nein"}},
	{code: "es", trueForms: []string{"verdadero", "sí"}, falseForms: []string{"falso", "no"}},
	{code: "pt", trueForms: []string{"verdadeiro", "sim"}, falseForms: []string{"falso", "não"}},
	{code: "nl", trueForms: []string{"waar", "ja"}, falseForms: []string{"onwaar", "nee"}},
	{code: "ja"},
	{code: "jp", tag: "ja"}, // common shorthand, not a valid ISO 639-1 code
	{code: "zh"},
	{code: "ru"},
	{code: "ar"},
	{code: "el"},
	{code: "la"},
}

var locales map[string]*Locale

func init() {
	locales = make(map[string]*Locale, len(table))
	for _, e := range table {
		tag := e.tag
		if tag == "" {
			tag = e.code
		}
		parsed := language.MustParse(tag)
		locales[e.code] = &Locale{
			Code:  e.code,
			Tag:   parsed.String(),
			Name:  display.English.Languages().Name(parsed),
			True:  e.trueForms,
			False: e.falseForms,
		}
	}
}

// Lookup returns the locale registered for a short code (case-insensitive).
func Lookup(code string) (*Locale, bool) {
	locale, ok := locales[strings.ToLower(strings.TrimSpace(code))]
	return locale, ok
}

// BooleanValue reports whether token spells a boolean in the given language.
// Unknown languages (and languages without declared spellings) fall back to
// the English forms.
func BooleanValue(token string, code string) (value bool, ok bool) {
	locale, found := Lookup(code)
	if !found || len(locale.True) == 0 {
		locale = locales["en"]
	}
	token = strings.ToLower(strings.TrimSpace(token))
	if slices.Contains(locale.True, token) {
		return true, true
	}
	if slices.Contains(locale.False, token) {
		return false, true
	}
	return false, false
}
