package translation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"codeberg.org/snonux/bilingo/internal/lang"
)

// ErrCircuitOpen is returned while a provider's circuit breaker rejects calls.
var ErrCircuitOpen = errors.New("translation provider temporarily unavailable")

// BreakerProvider stops calling a provider after repeated failures and
// retries it once the open timeout has passed.
type BreakerProvider struct {
	next Provider
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerProvider trips after maxFailures consecutive failures and stays
// open for openTimeout.
func NewBreakerProvider(next Provider, maxFailures uint32, openTimeout time.Duration, logger *zap.Logger) *BreakerProvider {
	if logger == nil {
		logger = zap.NewNop()
	}

	settings := gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("provider", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
		// A caller giving up says nothing about the provider's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}

	return &BreakerProvider{next: next, cb: gobreaker.NewCircuitBreaker(settings)}
}

// Name returns the provider name
func (b *BreakerProvider) Name() string {
	return b.next.Name()
}

// Translate forwards to the wrapped provider unless the circuit is open.
func (b *BreakerProvider) Translate(ctx context.Context, text string, source lang.Lang) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Translate(ctx, text, source)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", fmt.Errorf("%s: %w", b.next.Name(), ErrCircuitOpen)
	}
	if err != nil {
		return "", err
	}
	return out.(string), nil
}
