// Package translator provides static dictionary based Spanish to Russian
// translation for traffic exam text. Phrases are substituted longest first so
// multi-word entries win over the single words they contain.
package translator

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Translator applies the phrase dictionary to Spanish text.
// It is stateless after construction and safe for concurrent use.
type Translator struct {
	sorted []Entry
}

// New creates a Translator with the dictionary sorted by phrase length,
// longest first. The sort is stable, so entries of equal length keep
// their dictionary order.
func New() *Translator {
	entries := make([]Entry, len(dictionary))
	copy(entries, dictionary)
	sort.SliceStable(entries, func(i, j int) bool {
		return utf8.RuneCountInString(entries[i].Spanish) > utf8.RuneCountInString(entries[j].Spanish)
	})
	return &Translator{sorted: entries}
}

// Translate substitutes every dictionary phrase occurring in text with its
// Russian rendering. Substitution is plain substring replacement with no
// word-boundary awareness, applied longest phrase first. Text with no
// dictionary hits is returned unchanged.
func (t *Translator) Translate(text string) string {
	result := text
	for _, e := range t.sorted {
		if strings.Contains(result, e.Spanish) {
			result = strings.ReplaceAll(result, e.Spanish, e.Russian)
		}
	}
	return result
}

// TranslateAll translates a slice of strings, preserving order.
func (t *Translator) TranslateAll(texts []string) []string {
	if texts == nil {
		return nil
	}
	out := make([]string, len(texts))
	for i, s := range texts {
		out[i] = t.Translate(s)
	}
	return out
}

// Entries returns a copy of the dictionary as applied, longest phrase first.
func (t *Translator) Entries() []Entry {
	out := make([]Entry, len(t.sorted))
	copy(out, t.sorted)
	return out
}

// DictionarySize returns the number of entries in the phrase dictionary.
func (t *Translator) DictionarySize() int {
	return len(t.sorted)
}

// ContainsCyrillic reports whether s contains at least one Cyrillic rune.
func ContainsCyrillic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Cyrillic, r) {
			return true
		}
	}
	return false
}
