package extract

import (
	"sort"
	"strings"
)

// MinLength is the shortest word that is kept.
const MinLength = 3

// EnglishWords returns the distinct lowercase words of text: maximal runs of
// ASCII letters of at least MinLength letters. Any other rune, digits
// included, ends a run, so "co2" yields "co" (dropped) and "abc2def" yields
// "abc" and "def". The result is sorted.
func EnglishWords(text string) []string {
	seen := make(map[string]struct{})
	start := -1

	flush := func(end int) {
		if start >= 0 && end-start >= MinLength {
			seen[strings.ToLower(text[start:end])] = struct{}{}
		}
		start = -1
	}

	for i := 0; i < len(text); i++ {
		if isASCIILetter(text[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(text))

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func isASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
