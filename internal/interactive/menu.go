package interactive

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"codeberg.org/snonux/bilingo/internal/annotator"
	"codeberg.org/snonux/bilingo/internal/dictionary"
	"codeberg.org/snonux/bilingo/internal/lang"
	"codeberg.org/snonux/bilingo/internal/render"
)

// Service is what the menu needs from the annotator.
type Service interface {
	Translate(ctx context.Context, text string, source lang.Lang) (string, error)
	Lookup(word string) (dictionary.Entry, bool)
	Annotate(ctx context.Context, text string, source lang.Lang) annotator.Result
}

// Menu is the interactive command loop.
type Menu struct {
	svc      Service
	detector lang.Detector
	in       io.Reader
	out      io.Writer
	logger   *zap.Logger

	lines <-chan string
}

// New creates a menu reading from in and writing to out.
func New(svc Service, detector lang.Detector, in io.Reader, out io.Writer, logger *zap.Logger) *Menu {
	if detector == nil {
		detector = lang.CJKDetector{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Menu{
		svc:      svc,
		detector: detector,
		in:       in,
		out:      out,
		logger:   logger.Named("menu"),
	}
}

const menuText = `
Choose an option:
1. Chinese to English
2. English to Chinese
3. English dictionary lookup
4. Translate with examples
5. Quit`

// Run shows the menu until the user quits, the input ends or ctx is
// cancelled. A failing action is reported and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	m.lines = readLines(m.in)

	fmt.Fprintln(m.out, "=== Chinese/English translator and dictionary ===")
	fmt.Fprintln(m.out, "Type 'quit' to exit")
	fmt.Fprintln(m.out, strings.Repeat("-", 40))

	for {
		fmt.Fprintln(m.out, menuText)
		choice, ok := m.prompt(ctx, "\nEnter choice (1-5): ")
		if !ok {
			return m.stop(ctx)
		}

		switch strings.ToLower(choice) {
		case "":
			continue
		case "5", "quit", "q", "exit":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		case "1", "2", "3", "4":
			if !m.safely(ctx, choice) {
				return m.stop(ctx)
			}
		default:
			fmt.Fprintln(m.out, "Invalid choice, please try again")
		}
	}
}

// safely runs one menu action and recovers from panics in it. It returns
// false when the input ended or ctx was cancelled.
func (m *Menu) safely(ctx context.Context, choice string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("menu action panicked", zap.String("choice", choice), zap.Any("panic", r))
			fmt.Fprintf(m.out, "Error: %v\n", r)
			ok = true
		}
	}()

	switch choice {
	case "1":
		return m.translate(ctx, "Enter Chinese text: ", lang.Chinese)
	case "2":
		return m.translate(ctx, "Enter English text: ", lang.English)
	case "3":
		return m.lookup(ctx)
	default:
		return m.annotate(ctx)
	}
}

func (m *Menu) translate(ctx context.Context, label string, source lang.Lang) bool {
	text, ok := m.prompt(ctx, label)
	if !ok {
		return false
	}
	if text == "" {
		return true
	}

	translation, err := m.svc.Translate(ctx, text, source)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return true
	}
	fmt.Fprintf(m.out, "Translation: %s\n", translation)
	return true
}

func (m *Menu) lookup(ctx context.Context) bool {
	word, ok := m.prompt(ctx, "Enter an English word: ")
	if !ok {
		return false
	}
	if word == "" {
		return true
	}

	entry, found := m.svc.Lookup(word)
	fmt.Fprintln(m.out)
	if !found {
		render.NotFound(m.out, word)
		return true
	}
	render.Entry(m.out, entry)
	return true
}

func (m *Menu) annotate(ctx context.Context) bool {
	text, ok := m.prompt(ctx, "Enter text to translate: ")
	if !ok {
		return false
	}
	if text == "" {
		return true
	}

	source := m.detector.Detect(text)
	if source == lang.Chinese {
		fmt.Fprintln(m.out, "Detected Chinese, translating to English...")
	} else {
		fmt.Fprintln(m.out, "Detected English, translating to Chinese...")
	}

	res := m.svc.Annotate(ctx, text, source)
	fmt.Fprintln(m.out)
	render.Annotation(m.out, res, render.DefaultMaxExamples)
	return true
}

// prompt prints label and waits for the next trimmed line. It returns false
// at end of input or when ctx is done.
func (m *Menu) prompt(ctx context.Context, label string) (string, bool) {
	fmt.Fprint(m.out, label)
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-m.lines:
		if !ok {
			return "", false
		}
		return strings.TrimSpace(line), true
	}
}

func (m *Menu) stop(ctx context.Context) error {
	if ctx.Err() != nil {
		fmt.Fprintln(m.out, "\n\nInterrupted, goodbye!")
		return nil
	}
	fmt.Fprintln(m.out, "\nGoodbye!")
	return nil
}

// readLines feeds lines of r into a channel that is closed at end of input.
// The reader goroutine may outlive Run while blocked on a terminal read.
func readLines(r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			ch <- scanner.Text()
		}
	}()
	return ch
}
