// Package translate resolves Arabic names to curated English translations.
//
// A Store is an immutable snapshot of Arabic to English pairs. Lookups try
// the exact string, then the trimmed string, then the string with
// normalized whitespace. A miss is reported explicitly so callers can tell
// "no translation" apart from "nothing to translate".
package translate

import (
	"maps"
	"strings"

	"github.com/velocitia/prospectsdata/pkg/arabic"
)

// Store keeps curated translations. The zero value and a nil *Store are
// empty stores.
type Store struct {
	data map[string]string
}

// NewStore creates a Store from a copy of data.
func NewStore(data map[string]string) *Store {
	return &Store{data: maps.Clone(data)}
}

// Len returns the number of curated translations.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

func (s *Store) lookup(name string) (string, bool) {
	if s == nil || name == "" {
		return "", false
	}
	keys := [3]string{
		name,
		strings.TrimSpace(name),
		strings.Join(strings.Fields(name), " "),
	}
	for _, k := range keys {
		if v := s.data[k]; v != "" {
			return v, true
		}
	}
	return "", false
}

// Translate returns the curated translation of name.
//
// Empty names and names without Arabic are returned as is with true. For
// Arabic names without a curated translation it returns an empty string
// and false.
func (s *Store) Translate(name string) (string, bool) {
	if name == "" || !arabic.ContainsArabic(name) {
		return name, true
	}
	return s.lookup(name)
}

// HasTranslation reports if a curated translation exists for the name.
// Unlike Translate, it returns false for names without Arabic.
func (s *Store) HasTranslation(name string) bool {
	_, ok := s.lookup(name)
	return ok
}

// FindUntranslated returns Arabic values that have no curated translation.
// The result is deduplicated and keeps the order of first appearance.
func (s *Store) FindUntranslated(values []string) []string {
	var res []string
	seen := make(map[string]struct{})
	for _, v := range values {
		if !s.IsUntranslated(v) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}

// IsUntranslated reports if the value contains Arabic and the store has
// no translation for it.
func (s *Store) IsUntranslated(v string) bool {
	if v == "" || !arabic.ContainsArabic(v) {
		return false
	}
	_, ok := s.lookup(v)
	return !ok
}
