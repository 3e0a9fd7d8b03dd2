package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileEntry is an entry as written in a dictionary file, where the word is
// the mapping key.
type fileEntry struct {
	Pronunciation string   `json:"pronunciation" yaml:"pronunciation"`
	Chinese       string   `json:"chinese" yaml:"chinese"`
	Definitions   []string `json:"definitions" yaml:"definitions"`
	Examples      []string `json:"examples" yaml:"examples"`
}

// LoadFile reads a dictionary from a YAML (.yaml, .yml) or JSON (.json)
// file holding a mapping of word to entry.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}

	raw := make(map[string]fileEntry)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("unsupported dictionary file type: %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse dictionary file %s: %w", path, err)
	}

	words := make([]string, 0, len(raw))
	for w := range raw {
		words = append(words, w)
	}
	sort.Strings(words)

	entries := make([]Entry, 0, len(raw))
	for _, w := range words {
		fe := raw[w]
		entries = append(entries, Entry{
			Word:          w,
			Pronunciation: fe.Pronunciation,
			Chinese:       fe.Chinese,
			Definitions:   fe.Definitions,
			Examples:      fe.Examples,
		})
	}

	s, err := NewStore(entries)
	if err != nil {
		return nil, fmt.Errorf("invalid dictionary file %s: %w", path, err)
	}
	return s, nil
}
