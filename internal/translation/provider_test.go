package translation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"codeberg.org/snonux/bilingo/internal/lang"
	"codeberg.org/snonux/bilingo/internal/testutil"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		wantName string
		wantErr  error
	}{
		{
			name:     "mymemory",
			config:   &Config{Provider: "mymemory", BreakerMaxFailures: 3},
			wantName: "mymemory",
		},
		{
			name:     "openai with fallback",
			config:   &Config{Provider: "openai", OpenAIKey: "key", Fallback: "mymemory"},
			wantName: "openai (fallback: mymemory)",
		},
		{
			name:    "openai without key",
			config:  &Config{Provider: "openai"},
			wantErr: ErrMissingAPIKey,
		},
		{
			name:    "gemini without key",
			config:  &Config{Provider: "gemini"},
			wantErr: ErrMissingAPIKey,
		},
		{
			name:    "fallback without key",
			config:  &Config{Provider: "mymemory", Fallback: "openai"},
			wantErr: ErrMissingAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(t.Context(), tt.config, nil)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewProvider() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider() unexpected error: %v", err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}

func TestNewProvider_InvalidChoices(t *testing.T) {
	if _, err := NewProvider(t.Context(), &Config{Provider: "babelfish"}, nil); err == nil {
		t.Error("Expected error for unknown provider")
	}
	if _, err := NewProvider(t.Context(), &Config{Provider: "mymemory", Fallback: "mymemory"}, nil); err == nil {
		t.Error("Expected error for identical fallback")
	}
}

func TestPrompt(t *testing.T) {
	p := prompt(lang.English)
	if !strings.Contains(p, "English text into Simplified Chinese") {
		t.Errorf("prompt(en) = %q", p)
	}
}

func TestFallbackProvider(t *testing.T) {
	primary := &testutil.FailingTranslator{Err: errors.New("primary down"), Label: "primary"}
	fallback := &testutil.MockTranslator{Translations: map[string]string{"你好": "hello"}, Label: "backup"}

	p := NewFallbackProvider(primary, fallback, nil)
	got, err := p.Translate(t.Context(), "你好", lang.Chinese)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "hello" {
		t.Errorf("Translate() = %q, want hello", got)
	}
	if primary.Count() != 1 || len(fallback.Calls()) != 1 {
		t.Errorf("expected one call each, got %d and %d", primary.Count(), len(fallback.Calls()))
	}
	if p.Name() != "primary (fallback: backup)" {
		t.Errorf("Name() = %q", p.Name())
	}
}

func TestFallbackProvider_BothFail(t *testing.T) {
	fbErr := errors.New("fallback down")
	p := NewFallbackProvider(
		&testutil.FailingTranslator{Err: errors.New("primary down")},
		&testutil.FailingTranslator{Err: fbErr},
		nil,
	)

	_, err := p.Translate(t.Context(), "hello", lang.English)
	if !errors.Is(err, fbErr) {
		t.Fatalf("expected fallback error, got %v", err)
	}
	if !strings.Contains(err.Error(), "primary down") {
		t.Errorf("error should mention the primary failure: %v", err)
	}
}

func TestFallbackProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	fallback := &testutil.MockTranslator{}
	p := NewFallbackProvider(&testutil.FailingTranslator{Err: context.Canceled}, fallback, nil)

	if _, err := p.Translate(ctx, "hello", lang.English); err == nil {
		t.Error("expected error")
	}
	if len(fallback.Calls()) != 0 {
		t.Error("fallback must not run for a cancelled request")
	}
}

func TestBreakerProvider_Trips(t *testing.T) {
	failing := &testutil.FailingTranslator{Err: errors.New("down")}
	b := NewBreakerProvider(failing, 2, time.Minute, nil)

	for i := 0; i < 2; i++ {
		if _, err := b.Translate(t.Context(), "hello", lang.English); err == nil || errors.Is(err, ErrCircuitOpen) {
			t.Fatalf("call %d: expected provider error, got %v", i, err)
		}
	}

	_, err := b.Translate(t.Context(), "hello", lang.English)
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if failing.Count() != 2 {
		t.Errorf("open circuit must not call the provider, calls = %d", failing.Count())
	}
}

func TestBreakerProvider_RecoversAfterTimeout(t *testing.T) {
	mock := &testutil.MockTranslator{Errors: map[string]error{"bad": errors.New("down")}}
	b := NewBreakerProvider(mock, 1, 20*time.Millisecond, nil)

	if _, err := b.Translate(t.Context(), "bad", lang.English); err == nil {
		t.Fatal("expected error")
	}
	if _, err := b.Translate(t.Context(), "good", lang.English); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}

	time.Sleep(40 * time.Millisecond)

	got, err := b.Translate(t.Context(), "good", lang.English)
	if err != nil {
		t.Fatalf("half-open probe failed: %v", err)
	}
	if got != "mock translation of good" {
		t.Errorf("Translate() = %q", got)
	}
}

func TestBreakerProvider_IgnoresCancellation(t *testing.T) {
	failing := &testutil.FailingTranslator{Err: context.Canceled}
	b := NewBreakerProvider(failing, 1, time.Minute, nil)

	for i := 0; i < 3; i++ {
		_, err := b.Translate(t.Context(), "hello", lang.English)
		if errors.Is(err, ErrCircuitOpen) {
			t.Fatalf("cancellation tripped the breaker on call %d", i)
		}
	}
	if failing.Count() != 3 {
		t.Errorf("calls = %d, want 3", failing.Count())
	}
}
