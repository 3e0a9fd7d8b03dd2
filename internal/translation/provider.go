package translation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"codeberg.org/snonux/bilingo/internal/lang"
)

var (
	// ErrMissingAPIKey is returned when a provider needs a key that is not set.
	ErrMissingAPIKey = errors.New("API key not found")
	// ErrEmptyTranslation is returned when a provider answers without text.
	ErrEmptyTranslation = errors.New("no translation returned")
)

// Provider translates text from source into source.Target().
type Provider interface {
	Translate(ctx context.Context, text string, source lang.Lang) (string, error)

	// Name returns the provider name
	Name() string
}

// Config holds the settings of all providers.
type Config struct {
	Provider string // openai, gemini or mymemory
	Fallback string // optional second provider
	Timeout  time.Duration

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	GeminiKey   string
	GeminiModel string

	MyMemoryURL   string
	MyMemoryEmail string

	BreakerMaxFailures uint32 // 0 disables the circuit breaker
	BreakerOpenTimeout time.Duration
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:           "openai",
		Timeout:            30 * time.Second,
		OpenAIModel:        "gpt-4o-mini",
		GeminiModel:        "gemini-2.0-flash",
		MyMemoryURL:        DefaultMyMemoryURL,
		BreakerMaxFailures: 5,
		BreakerOpenTimeout: 30 * time.Second,
	}
}

// NewProvider creates the configured provider. Every concrete provider is
// wrapped in its own circuit breaker so that an open primary hands over to
// the fallback immediately.
func NewProvider(ctx context.Context, config *Config, logger *zap.Logger) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	primary, err := newGuarded(ctx, config.Provider, config, logger)
	if err != nil {
		return nil, err
	}
	if config.Fallback == "" {
		return primary, nil
	}
	if config.Fallback == config.Provider {
		return nil, fmt.Errorf("fallback provider must differ from %s", config.Provider)
	}

	fallback, err := newGuarded(ctx, config.Fallback, config, logger)
	if err != nil {
		return nil, fmt.Errorf("fallback: %w", err)
	}
	return NewFallbackProvider(primary, fallback, logger), nil
}

func newGuarded(ctx context.Context, name string, config *Config, logger *zap.Logger) (Provider, error) {
	p, err := newBase(ctx, name, config)
	if err != nil {
		return nil, err
	}
	if config.BreakerMaxFailures == 0 {
		return p, nil
	}
	return NewBreakerProvider(p, config.BreakerMaxFailures, config.BreakerOpenTimeout, logger), nil
}

func newBase(ctx context.Context, name string, config *Config) (Provider, error) {
	switch name {
	case "openai":
		return NewOpenAITranslator(config)
	case "gemini":
		return NewGeminiTranslator(ctx, config)
	case "mymemory":
		return NewMyMemoryTranslator(config), nil
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", name)
	}
}

// prompt is the instruction shared by the LLM providers.
func prompt(source lang.Lang) string {
	return fmt.Sprintf(
		"You are a professional translator. Translate the user's %s text into %s. "+
			"Respond with only the translation, without quotes, notes or explanations.",
		source.Name(), source.Target().Name())
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
