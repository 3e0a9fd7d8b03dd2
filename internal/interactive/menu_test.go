package interactive

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"codeberg.org/snonux/bilingo/internal/annotator"
	"codeberg.org/snonux/bilingo/internal/dictionary"
	"codeberg.org/snonux/bilingo/internal/lang"
	"codeberg.org/snonux/bilingo/internal/testutil"
)

func runMenu(t *testing.T, input string, mock *testutil.MockTranslator) string {
	t.Helper()

	svc := annotator.New(mock, dictionary.Builtin(), nil)
	var out bytes.Buffer
	m := New(svc, lang.CJKDetector{}, strings.NewReader(input), &out, nil)

	if err := m.Run(t.Context()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	return out.String()
}

func TestMenu(t *testing.T) {
	mock := &testutil.MockTranslator{Translations: map[string]string{
		"你好":              "Hello",
		"good friend":     "好朋友",
		"我爱我的家":           "I love my home",
		"I love learning": "我爱学习",
	}}

	tests := []struct {
		name    string
		input   string
		want    []string
		notWant []string
	}{
		{
			name:  "chinese to english",
			input: "1\n你好\n5\n",
			want:  []string{"Translation: Hello", "Goodbye!"},
		},
		{
			name:  "english to chinese",
			input: "2\ngood friend\nq\n",
			want:  []string{"Translation: 好朋友", "Goodbye!"},
		},
		{
			name:  "lookup found",
			input: "3\nHello\nquit\n",
			want:  []string{"Word: hello", "Pronunciation: /həˈloʊ/", "Chinese: 你好；哈喽"},
		},
		{
			name:  "lookup missing",
			input: "3\nlearning\n5\n",
			want:  []string{"No definition found for 'learning'"},
		},
		{
			name:  "annotate chinese",
			input: "4\n我爱我的家\n5\n",
			want:  []string{"Detected Chinese, translating to English...", "Translation: I love my home", "home:", "love: 爱；喜欢"},
		},
		{
			name:    "annotate english",
			input:   "4\nI love learning\n5\n",
			want:    []string{"Detected English, translating to Chinese...", "Translation: 我爱学习", "love:"},
			notWant: []string{"learning:"},
		},
		{
			name:    "blank and invalid choices re-prompt",
			input:   "\n9\nhello\n5\n",
			want:    []string{"Invalid choice, please try again", "Goodbye!"},
			notWant: []string{"Translation:"},
		},
		{
			name:    "blank text returns to menu",
			input:   "1\n   \n5\n",
			notWant: []string{"Translation:"},
			want:    []string{"Goodbye!"},
		},
		{
			name:  "end of input",
			input: "1\n",
			want:  []string{"Enter Chinese text: ", "Goodbye!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runMenu(t, tt.input, mock)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output unexpectedly contains %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestMenu_ErrorsDoNotEndLoop(t *testing.T) {
	mock := &testutil.MockTranslator{PanicOn: "boom"}

	out := runMenu(t, "1\nboom\n2\nfine\n5\n", mock)

	if !strings.Contains(out, "Error: ") {
		t.Errorf("expected an error line:\n%s", out)
	}
	if !strings.Contains(out, "Translation: mock translation of fine") {
		t.Errorf("loop should continue after an error:\n%s", out)
	}
}

// panicService panics on lookups.
type panicService struct{ *annotator.Annotator }

func (panicService) Lookup(string) (dictionary.Entry, bool) { panic("lookup exploded") }

func TestMenu_RecoversFromPanickingAction(t *testing.T) {
	var out bytes.Buffer
	m := New(panicService{annotator.New(nil, nil, nil)}, nil, strings.NewReader("3\nhello\n5\n"), &out, nil)

	if err := m.Run(t.Context()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(out.String(), "Error: lookup exploded") || !strings.Contains(out.String(), "Goodbye!") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestMenu_Cancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(t.Context())
	var out bytes.Buffer
	m := New(annotator.New(&testutil.MockTranslator{}, dictionary.Builtin(), nil), nil, pr, &out, nil)

	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	if !strings.Contains(out.String(), "Interrupted, goodbye!") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
