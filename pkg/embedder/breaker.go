package embedder

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerConfig tunes the circuit breaker around an embedding client.
type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	ReadyToTripRatio float64
}

// BreakerClient wraps a Client with a circuit breaker. Once the failure
// ratio trips the breaker, calls fail immediately until the timeout
// elapses, keeping a dead provider from stalling every request.
type BreakerClient struct {
	inner   Client
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerClient wraps inner with a circuit breaker.
func NewBreakerClient(inner Client, config BreakerConfig) *BreakerClient {
	if config.MaxRequests == 0 {
		config.MaxRequests = 3
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.ReadyToTripRatio <= 0 {
		config.ReadyToTripRatio = 0.6
	}

	settings := gobreaker.Settings{
		Name:        "embedder",
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 3 {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= config.ReadyToTripRatio
		},
	}

	return &BreakerClient{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Embed generates embeddings through the breaker.
func (b *BreakerClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.inner.Embed(ctx, texts)
	})
	if err != nil {
		return nil, err
	}
	return result.([][]float32), nil
}

// EmbedSingle generates a single embedding through the breaker.
func (b *BreakerClient) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.inner.EmbedSingle(ctx, text)
	})
	if err != nil {
		return nil, err
	}
	return result.([]float32), nil
}

// Dimensions returns the wrapped client's dimensions.
func (b *BreakerClient) Dimensions() int { return b.inner.Dimensions() }

// Close closes the wrapped client.
func (b *BreakerClient) Close() error { return b.inner.Close() }
