package remedigraph

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/soundprediction/remedigraph"
	"github.com/soundprediction/remedigraph/pkg/config"
	"github.com/soundprediction/remedigraph/pkg/embedder"
	"github.com/soundprediction/remedigraph/pkg/entitystore"
	remedigraphLogger "github.com/soundprediction/remedigraph/pkg/logger"
)

// initializeEngine loads the seed data, builds the embedding client from
// the configured provider and runs Init. The caller owns the returned
// embedding client and must Close it.
func initializeEngine(ctx context.Context, cfg *config.Config) (*remedigraph.Engine, embedder.Client, error) {
	logger := remedigraphLogger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	store, err := entitystore.LoadDir(cfg.Data.Dir, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("load seed data from %s: %w", cfg.Data.Dir, err)
	}

	embedderClient, err := buildEmbedder(cfg)
	if err != nil {
		return nil, nil, err
	}

	engine := remedigraph.New(store, embedderClient, &remedigraph.Config{
		TextWeight:    cfg.Ranking.TextWeight,
		GraphWeight:   cfg.Ranking.GraphWeight,
		MaxPathLength: cfg.Ranking.MaxPathLength,
	}, logger)

	if err := engine.Init(ctx); err != nil {
		embedderClient.Close()
		return nil, nil, fmt.Errorf("initialize engine: %w", err)
	}
	return engine, embedderClient, nil
}

// buildEmbedder selects the embedding provider and optionally wraps it
// with the circuit breaker.
func buildEmbedder(cfg *config.Config) (embedder.Client, error) {
	var client embedder.Client

	switch cfg.Embedding.Provider {
	case "openai":
		if cfg.Embedding.APIKey == "" {
			return nil, fmt.Errorf("openai embedding provider requires an API key")
		}
		client = embedder.NewOpenAIEmbedder(cfg.Embedding.APIKey, embedder.Config{
			Model:   cfg.Embedding.Model,
			BaseURL: cfg.Embedding.BaseURL,
		})
	case "embedeverything", "":
		local, err := embedder.NewEmbedEverythingClient(embedder.Config{
			Model: cfg.Embedding.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("create local embedder: %w", err)
		}
		client = local
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Embedding.Provider)
	}

	if cfg.CircuitBreaker.Enabled {
		client = embedder.NewBreakerClient(client, embedder.BreakerConfig{
			MaxRequests:      cfg.CircuitBreaker.MaxRequests,
			Interval:         time.Duration(cfg.CircuitBreaker.Interval) * time.Second,
			Timeout:          time.Duration(cfg.CircuitBreaker.Timeout) * time.Second,
			ReadyToTripRatio: cfg.CircuitBreaker.ReadyToTripRatio,
		})
	}
	return client, nil
}
