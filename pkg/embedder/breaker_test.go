package embedder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/soundprediction/remedigraph/pkg/embedder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns fixed vectors or a fixed error.
type stubClient struct {
	vec   []float32
	err   error
	calls int
}

func (s *stubClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = s.vec
	}
	return out, nil
}

func (s *stubClient) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.vec, nil
}

func (s *stubClient) Dimensions() int { return len(s.vec) }
func (s *stubClient) Close() error    { return nil }

func TestBreakerPassesThrough(t *testing.T) {
	stub := &stubClient{vec: []float32{0.1, 0.2}}
	client := embedder.NewBreakerClient(stub, embedder.BreakerConfig{})

	vecs, err := client.Embed(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, vecs, 2)
	assert.Equal(t, []float32{0.1, 0.2}, vecs[0])

	vec, err := client.EmbedSingle(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2}, vec)

	assert.Equal(t, 2, client.Dimensions())
	assert.NoError(t, client.Close())
}

func TestBreakerTripsAfterFailures(t *testing.T) {
	stub := &stubClient{err: errors.New("provider down")}
	client := embedder.NewBreakerClient(stub, embedder.BreakerConfig{})

	// Enough failures to cross the default trip ratio.
	for i := 0; i < 5; i++ {
		_, err := client.EmbedSingle(context.Background(), "x")
		require.Error(t, err)
	}

	callsBeforeTrip := stub.calls
	_, err := client.EmbedSingle(context.Background(), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	// The open breaker fails fast without reaching the provider.
	assert.Equal(t, callsBeforeTrip, stub.calls)
}

func TestBreakerWrapsAnyClient(t *testing.T) {
	var _ embedder.Client = embedder.NewBreakerClient(&stubClient{}, embedder.BreakerConfig{})
	var _ embedder.Client = (*embedder.OpenAIEmbedder)(nil)
	var _ embedder.Client = (*embedder.EmbedEverythingClient)(nil)
}
