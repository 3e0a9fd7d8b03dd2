package annotator

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.uber.org/zap"

	"codeberg.org/snonux/bilingo/internal/dictionary"
	"codeberg.org/snonux/bilingo/internal/extract"
	"codeberg.org/snonux/bilingo/internal/lang"
)

var (
	// ErrNoTranslator is returned when no translation provider is configured.
	ErrNoTranslator = errors.New("translator not configured")
	// ErrInvalidSource is returned for a source language other than zh or en.
	ErrInvalidSource = errors.New("source language must be zh or en")
)

// Translator is the translation provider used by the annotator.
type Translator interface {
	Translate(ctx context.Context, text string, source lang.Lang) (string, error)
}

// Dictionary is the word store used for annotations.
type Dictionary interface {
	Lookup(word string) (dictionary.Entry, bool)
}

type FailureKind string

const (
	ProviderFailure FailureKind = "provider_failure"
	InvalidInput    FailureKind = "invalid_input"
)

// Failure describes why a Result carries no translation.
type Failure struct {
	Kind    FailureKind `json:"kind"`
	Message string      `json:"message"`
}

// Result is the outcome of one Annotate call. Examples and Definitions are
// never nil and only hold words found in the dictionary.
type Result struct {
	OriginalText string                      `json:"original_text"`
	Translation  string                      `json:"translation"`
	SourceLang   lang.Lang                   `json:"source_lang"`
	Examples     map[string][]string         `json:"examples"`
	Definitions  map[string]dictionary.Entry `json:"word_definitions"`
	Failure      *Failure                    `json:"failure,omitempty"`
}

// FailureMessage returns the failure message or "" on success.
func (r Result) FailureMessage() string {
	if r.Failure == nil {
		return ""
	}
	return r.Failure.Message
}

// Words returns the annotated words in sorted order.
func (r Result) Words() []string {
	return slices.Sorted(maps.Keys(r.Definitions))
}

type Annotator struct {
	translator Translator
	dict       Dictionary
	logger     *zap.Logger
}

// New creates an annotator. translator may be nil, in which case Ready
// reports false and every translation fails with ErrNoTranslator.
func New(translator Translator, dict Dictionary, logger *zap.Logger) *Annotator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Annotator{
		translator: translator,
		dict:       dict,
		logger:     logger.Named("annotator"),
	}
}

// Ready reports whether a translation provider is configured.
func (a *Annotator) Ready() bool {
	return a.translator != nil
}

// Lookup returns the dictionary entry of word.
func (a *Annotator) Lookup(word string) (dictionary.Entry, bool) {
	if a.dict == nil {
		return dictionary.Entry{}, false
	}
	return a.dict.Lookup(word)
}

// Translate translates text from source into the other language. Blank text
// yields "" without calling the provider. A panicking provider is reported
// as an error.
func (a *Annotator) Translate(ctx context.Context, text string, source lang.Lang) (translation string, err error) {
	if source != lang.Chinese && source != lang.English {
		return "", fmt.Errorf("%w: %q", ErrInvalidSource, source)
	}
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if a.translator == nil {
		return "", ErrNoTranslator
	}

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("translation provider panicked", zap.Any("panic", r))
			translation, err = "", fmt.Errorf("translation provider panicked: %v", r)
		}
	}()

	return a.translator.Translate(ctx, text, source)
}

// Annotate translates text and annotates the English side with dictionary
// data. It never returns an error; failures are reported in Result.Failure.
func (a *Annotator) Annotate(ctx context.Context, text string, source lang.Lang) Result {
	res := Result{
		OriginalText: text,
		SourceLang:   source,
		Examples:     make(map[string][]string),
		Definitions:  make(map[string]dictionary.Entry),
	}

	translation, err := a.Translate(ctx, text, source)
	if err != nil {
		kind := ProviderFailure
		if errors.Is(err, ErrInvalidSource) {
			kind = InvalidInput
		}
		a.logger.Warn("translation failed",
			zap.String("source_lang", string(source)),
			zap.String("kind", string(kind)),
			zap.Error(err))
		res.Failure = &Failure{Kind: kind, Message: fmt.Sprintf("translation failed: %v", err)}
		return res
	}
	res.Translation = translation

	english := text
	if source == lang.Chinese {
		english = translation
	}

	for _, word := range extract.EnglishWords(english) {
		entry, ok := a.Lookup(word)
		if !ok {
			continue
		}
		res.Examples[word] = entry.Examples
		res.Definitions[word] = entry
	}

	a.logger.Debug("annotated text",
		zap.String("source_lang", string(source)),
		zap.Int("words", len(res.Definitions)))

	return res
}
