package translation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"codeberg.org/snonux/bilingo/internal/lang"
)

// FallbackProvider wraps a primary provider with a fallback option
type FallbackProvider struct {
	primary  Provider
	fallback Provider
	logger   *zap.Logger
}

// NewFallbackProvider creates a provider that falls back to secondary if primary fails
func NewFallbackProvider(primary, fallback Provider, logger *zap.Logger) *FallbackProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FallbackProvider{primary: primary, fallback: fallback, logger: logger}
}

// Translate tries primary provider first, falls back to secondary on error
func (p *FallbackProvider) Translate(ctx context.Context, text string, source lang.Lang) (string, error) {
	translation, err := p.primary.Translate(ctx, text, source)
	if err == nil {
		return translation, nil
	}
	if ctx.Err() != nil {
		return "", err
	}

	p.logger.Warn("primary translation provider failed, falling back",
		zap.String("primary", p.primary.Name()),
		zap.String("fallback", p.fallback.Name()),
		zap.Error(err))

	translation, fbErr := p.fallback.Translate(ctx, text, source)
	if fbErr != nil {
		return "", fmt.Errorf("both providers failed: primary=%v, fallback=%w", err, fbErr)
	}
	return translation, nil
}

// Name returns the provider name
func (p *FallbackProvider) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}
