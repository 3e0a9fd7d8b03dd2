package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rodaine/table"

	"codeberg.org/snonux/bilingo/internal/annotator"
	"codeberg.org/snonux/bilingo/internal/dictionary"
)

// DefaultMaxExamples is how many examples per word Annotation shows.
const DefaultMaxExamples = 2

// Entry prints a dictionary entry with numbered definitions and examples.
func Entry(w io.Writer, e dictionary.Entry) {
	fmt.Fprintf(w, "Word: %s\n", e.Word)
	fmt.Fprintf(w, "Pronunciation: %s\n", orNA(e.Pronunciation))
	fmt.Fprintf(w, "Chinese: %s\n", orNA(e.Chinese))

	fmt.Fprintln(w, "Definitions:")
	numbered(w, "Definition", e.Definitions)
	fmt.Fprintln(w, "Examples:")
	numbered(w, "Example", e.Examples)
}

// NotFound prints the message for a word missing from the dictionary.
func NotFound(w io.Writer, word string) {
	fmt.Fprintf(w, "No definition found for '%s'\n", word)
}

// Annotation prints the translation followed by up to maxExamples examples
// and the Chinese gloss of every annotated word.
func Annotation(w io.Writer, res annotator.Result, maxExamples int) {
	if res.Failure != nil {
		fmt.Fprintf(w, "Error: %s\n", res.Failure.Message)
		return
	}

	fmt.Fprintf(w, "Original: %s\n", res.OriginalText)
	fmt.Fprintf(w, "Translation: %s\n", res.Translation)

	words := res.Words()
	if len(words) == 0 {
		return
	}

	fmt.Fprintln(w, "\nExamples:")
	for _, word := range words {
		examples := res.Examples[word]
		if maxExamples >= 0 && len(examples) > maxExamples {
			examples = examples[:maxExamples]
		}
		fmt.Fprintf(w, "\n%s:\n", word)
		for _, ex := range examples {
			fmt.Fprintf(w, "  • %s\n", ex)
		}
	}

	fmt.Fprintln(w, "\nDefinitions:")
	for _, word := range words {
		entry := res.Definitions[word]
		fmt.Fprintf(w, "\n%s: %s\n", word, orNA(entry.Chinese))
		if entry.Pronunciation != "" {
			fmt.Fprintf(w, "  Pronunciation: %s\n", entry.Pronunciation)
		}
	}
}

func numbered(w io.Writer, header string, items []string) {
	if len(items) == 0 {
		fmt.Fprintln(w, "  N/A")
		return
	}
	tbl := table.New("#", header).WithWriter(w).WithPadding(2)
	for i, item := range items {
		tbl.AddRow(strconv.Itoa(i+1), item)
	}
	tbl.Print()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
