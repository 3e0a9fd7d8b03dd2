package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/bilingo/internal/lang"
)

// Item is one text of a batch file.
type Item struct {
	Line int       // 1-based line number in the file
	Text string    // text without the language prefix
	// Source is empty when the language should be detected
	Source lang.Lang
}

// ReadBatchFile reads the items of a batch file.
func ReadBatchFile(filename string) ([]Item, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads items from r. Supported line formats:
//   - "zh: 我爱学习" Chinese text
//   - "en: I love learning" English text
//   - "我爱学习" any text, language detected later
//
// Blank lines and lines starting with '#' are skipped.
func Parse(r io.Reader) ([]Item, error) {
	var items []Item

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		item := Item{Line: lineNo, Text: line}
		if prefix, rest, ok := strings.Cut(line, ":"); ok {
			if source, err := lang.Parse(prefix); err == nil && isShortPrefix(prefix) {
				item.Source = source
				item.Text = strings.TrimSpace(rest)
			}
		}
		if item.Text == "" {
			continue
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}

	return items, nil
}

// isShortPrefix limits prefixes to the two-letter codes so that a line like
// "English: a language" is kept as text.
func isShortPrefix(p string) bool {
	p = strings.ToLower(strings.TrimSpace(p))
	return p == "zh" || p == "en"
}
