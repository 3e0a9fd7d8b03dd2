package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"codeberg.org/snonux/bilingo/internal/annotator"
	"codeberg.org/snonux/bilingo/internal/dictionary"
	"codeberg.org/snonux/bilingo/internal/lang"
	"codeberg.org/snonux/bilingo/internal/testutil"
)

func TestEntry(t *testing.T) {
	e, _ := dictionary.Builtin().Lookup("love")

	var buf bytes.Buffer
	Entry(&buf, e)
	out := buf.String()

	for _, want := range []string{"Word: love", "Pronunciation: /lʌv/", "Chinese: 爱；喜欢", "Definitions:", "Examples:", e.Examples[2]} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEntry_MissingFields(t *testing.T) {
	var buf bytes.Buffer
	Entry(&buf, dictionary.Entry{Word: "zzz"})

	if strings.Count(buf.String(), "N/A") != 4 {
		t.Errorf("expected N/A for every missing field:\n%s", buf.String())
	}
}

func TestAnnotation(t *testing.T) {
	mock := &testutil.MockTranslator{Translations: map[string]string{"I love my home": "我爱我的家"}}
	res := annotator.New(mock, dictionary.Builtin(), nil).Annotate(t.Context(), "I love my home", lang.English)

	var buf bytes.Buffer
	Annotation(&buf, res, DefaultMaxExamples)
	out := buf.String()

	for _, want := range []string{"Original: I love my home", "Translation: 我爱我的家", "home:", "love: 爱；喜欢", "Pronunciation: /lʌv/"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	love, _ := dictionary.Builtin().Lookup("love")
	if strings.Contains(out, love.Examples[2]) {
		t.Error("only the first two examples should be shown")
	}
	if strings.Index(out, "home:") > strings.Index(out, "love:") {
		t.Error("words should be printed in sorted order")
	}
}

func TestAnnotation_Failure(t *testing.T) {
	a := annotator.New(&testutil.FailingTranslator{Err: errors.New("offline")}, dictionary.Builtin(), nil)
	res := a.Annotate(t.Context(), "hello", lang.English)

	var buf bytes.Buffer
	Annotation(&buf, res, DefaultMaxExamples)

	if !strings.HasPrefix(buf.String(), "Error: translation failed: offline") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
