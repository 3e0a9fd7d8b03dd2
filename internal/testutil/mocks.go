package testutil

import (
	"context"
	"fmt"
	"sync"

	"codeberg.org/snonux/bilingo/internal/lang"
)

// MockTranslator mocks translation service
type MockTranslator struct {
	Translations map[string]string
	Errors       map[string]error
	// PanicOn makes Translate panic for the given text.
	PanicOn string
	Label   string

	mu    sync.Mutex
	calls []string
}

// Translate mocks translating text
func (m *MockTranslator) Translate(ctx context.Context, text string, source lang.Lang) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, fmt.Sprintf("Translate: %s (%s->%s)", text, source, source.Target()))
	m.mu.Unlock()

	if m.PanicOn != "" && text == m.PanicOn {
		panic("mock translator panic")
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	// Default mock translation
	return fmt.Sprintf("mock translation of %s", text), nil
}

// Name returns the provider name
func (m *MockTranslator) Name() string {
	if m.Label == "" {
		return "mock"
	}
	return m.Label
}

// Calls returns the recorded calls.
func (m *MockTranslator) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// FailingTranslator fails every call with Err.
type FailingTranslator struct {
	Err   error
	Label string

	mu    sync.Mutex
	count int
}

// Translate always returns f.Err
func (f *FailingTranslator) Translate(ctx context.Context, text string, source lang.Lang) (string, error) {
	f.mu.Lock()
	f.count++
	f.mu.Unlock()
	return "", f.Err
}

// Name returns the provider name
func (f *FailingTranslator) Name() string {
	if f.Label == "" {
		return "failing"
	}
	return f.Label
}

// Count returns how often Translate was called.
func (f *FailingTranslator) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count
}
