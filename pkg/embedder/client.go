package embedder

import (
	"context"
	"errors"
)

// ErrNoEmbeddings is returned when a provider responds without vectors.
var ErrNoEmbeddings = errors.New("no embeddings returned")

// Client generates embeddings for text. Implementations handle batching
// internally based on provider limits.
type Client interface {
	// Embed generates embeddings for the given texts, one vector per
	// input, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedSingle generates an embedding for a single text.
	EmbedSingle(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the number of dimensions in the embeddings.
	Dimensions() int

	// Close cleans up any resources.
	Close() error
}

// Config holds embedding client configuration shared across backends.
type Config struct {
	Model      string
	BaseURL    string
	BatchSize  int
	Dimensions int
}
