package dictionary

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrEmptyWord     = errors.New("dictionary entry without word")
	ErrDuplicateWord = errors.New("duplicate dictionary word")
)

// Entry is the dictionary record of one English word.
type Entry struct {
	Word          string   `json:"word" yaml:"word"`
	Pronunciation string   `json:"pronunciation" yaml:"pronunciation"`
	Chinese       string   `json:"chinese" yaml:"chinese"`
	Definitions   []string `json:"definitions" yaml:"definitions"`
	Examples      []string `json:"examples" yaml:"examples"`
}

func (e Entry) clone() Entry {
	e.Definitions = slices.Clone(e.Definitions)
	e.Examples = slices.Clone(e.Examples)
	return e
}

// Store maps normalized words to entries.
type Store struct {
	entries map[string]Entry
}

// NewStore builds a store from entries. Keys are normalized, so two entries
// whose words differ only in case or surrounding space are duplicates.
func NewStore(entries []Entry) (*Store, error) {
	s := &Store{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		key := Normalize(e.Word)
		if key == "" {
			return nil, ErrEmptyWord
		}
		if _, ok := s.entries[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWord, key)
		}
		e = e.clone()
		e.Word = key
		s.entries[key] = e
	}
	return s, nil
}

// Normalize trims surrounding whitespace and lowercases word.
func Normalize(word string) string {
	return cases.Lower(language.English).String(strings.TrimSpace(word))
}

// Lookup returns a copy of the entry for word. Only exact matches on the
// normalized word are found.
func (s *Store) Lookup(word string) (Entry, bool) {
	e, ok := s.entries[Normalize(word)]
	if !ok {
		return Entry{}, false
	}
	return e.clone(), true
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Words returns all stored words in sorted order.
func (s *Store) Words() []string {
	words := make([]string, 0, len(s.entries))
	for w := range s.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
