package remedigraph_test

import (
	"context"
	"errors"
	"testing"

	"github.com/soundprediction/remedigraph"
	"github.com/soundprediction/remedigraph/pkg/entitystore"
	"github.com/soundprediction/remedigraph/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmbedder returns a fixed vector per text. Unknown texts embed to
// the zero direction so similarity against them is zero.
type stubEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (s *stubEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		if v, ok := s.vectors[text]; ok {
			out[i] = v
		} else {
			out[i] = []float32{0, 0}
		}
	}
	return out, nil
}

func (s *stubEmbedder) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	vecs, err := s.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (s *stubEmbedder) Dimensions() int { return 2 }
func (s *stubEmbedder) Close() error    { return nil }

// fixtureStore builds the canonical repurposing scenario: Glipizide (D2)
// is known to treat type 2 diabetes (Dis1) and shares gene G1 with
// Metformin (D1), making D1 a structural candidate. Ibuprofen (D3) is
// unrelated.
func fixtureStore() *entitystore.MemoryStore {
	return entitystore.New(
		[]types.DrugRecord{
			{DrugID: "D1", DrugName: "Metformin", ATC: "A10BA02", IndicationsText: "lowers blood sugar in type 2 diabetes"},
			{DrugID: "D2", DrugName: "Glipizide", ATC: "A10BB07", IndicationsText: "stimulates insulin secretion"},
			{DrugID: "D3", DrugName: "Ibuprofen", ATC: "M01AE01", IndicationsText: "reduces pain and inflammation"},
		},
		[]types.DiseaseRecord{
			{DiseaseID: "Dis1", DiseaseName: "type 2 diabetes", Synonyms: "adult onset diabetes"},
			{DiseaseID: "Dis2", DiseaseName: "osteoarthritis", Synonyms: "degenerative joint disease"},
		},
		[]types.DrugDiseaseEvidence{
			{DrugID: "D2", DiseaseID: "Dis1", Evidence: "approved indication"},
			{DrugID: "D3", DiseaseID: "Dis2", Evidence: "approved indication"},
		},
		[]types.DrugGeneAssociation{
			{DrugID: "D1", GeneSymbol: "G1", Note: "ampk activation"},
			{DrugID: "D2", GeneSymbol: "G1", Note: "same pathway"},
		},
	)
}

func fixtureEmbedder() *stubEmbedder {
	return &stubEmbedder{vectors: map[string][]float32{
		"lowers blood sugar in type 2 diabetes":     {1, 0},
		"stimulates insulin secretion":              {0.8, 0.6},
		"reduces pain and inflammation":             {0, 1},
		"type 2 diabetes adult onset diabetes":      {1, 0},
		"osteoarthritis degenerative joint disease": {0, 1},
	}}
}

func newTestEngine(t *testing.T) *remedigraph.Engine {
	t.Helper()
	engine := remedigraph.New(fixtureStore(), fixtureEmbedder(), nil, nil)
	require.NoError(t, engine.Init(context.Background()))
	return engine
}

func TestInit(t *testing.T) {
	engine := remedigraph.New(fixtureStore(), fixtureEmbedder(), nil, nil)

	t.Run("queries before init fail", func(t *testing.T) {
		_, err := engine.Rank(context.Background(), "diabetes", 10)
		assert.ErrorIs(t, err, remedigraph.ErrNotInitialized)

		_, err = engine.GraphStats()
		assert.ErrorIs(t, err, remedigraph.ErrNotInitialized)
	})

	require.NoError(t, engine.Init(context.Background()))

	t.Run("idempotent", func(t *testing.T) {
		require.NoError(t, engine.Init(context.Background()))
	})

	t.Run("graph is built", func(t *testing.T) {
		stats, err := engine.GraphStats()
		require.NoError(t, err)
		assert.Equal(t, 6, stats.TotalNodes)
		assert.Equal(t, 5, stats.TotalEdges)
	})
}

func TestInitFailureIsRetryable(t *testing.T) {
	engine := remedigraph.New(fixtureStore(), &stubEmbedder{err: errors.New("provider down")}, nil, nil)

	err := engine.Init(context.Background())
	require.Error(t, err)

	_, err = engine.Rank(context.Background(), "diabetes", 10)
	assert.ErrorIs(t, err, remedigraph.ErrNotInitialized)
}

func TestWeights(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("defaults", func(t *testing.T) {
		tw, gw := engine.Weights()
		assert.InDelta(t, 0.6, tw, 1e-9)
		assert.InDelta(t, 0.4, gw, 1e-9)
	})

	t.Run("update renormalizes", func(t *testing.T) {
		require.NoError(t, engine.UpdateWeights(1, 3))
		tw, gw := engine.Weights()
		assert.InDelta(t, 0.25, tw, 1e-9)
		assert.InDelta(t, 0.75, gw, 1e-9)
	})

	t.Run("zero sum keeps current weights", func(t *testing.T) {
		err := engine.UpdateWeights(0, 0)
		assert.ErrorIs(t, err, remedigraph.ErrZeroWeights)

		tw, gw := engine.Weights()
		assert.InDelta(t, 0.25, tw, 1e-9)
		assert.InDelta(t, 0.75, gw, 1e-9)
	})
}

func TestLinkPredictionScore(t *testing.T) {
	engine := newTestEngine(t)

	scores, err := engine.LinkPredictionScore("D1", "Dis1")
	require.NoError(t, err)
	assert.Greater(t, scores.AdamicAdar, 0.0)
	assert.Equal(t, 1.0, scores.CommonNeighbors)

	scores, err = engine.LinkPredictionScore("missing", "Dis1")
	require.NoError(t, err)
	assert.Equal(t, types.LinkScores{}, scores)
}

func TestSearchDiseases(t *testing.T) {
	engine := newTestEngine(t)

	matches := engine.SearchDiseases("diabetes")
	require.Len(t, matches, 1)
	assert.Equal(t, "Dis1", matches[0].DiseaseID)

	// Synonyms are searched too.
	matches = engine.SearchDiseases("joint")
	require.Len(t, matches, 1)
	assert.Equal(t, "Dis2", matches[0].DiseaseID)

	assert.Empty(t, engine.SearchDiseases("unknown"))
	assert.Empty(t, engine.SearchDiseases("  "))
}

func TestDrugMechanism(t *testing.T) {
	engine := newTestEngine(t)

	m, err := engine.DrugMechanism("D2")
	require.NoError(t, err)
	assert.Equal(t, "Glipizide", m.DrugName)
	assert.Equal(t, 1, m.GeneCount)
	assert.Equal(t, 1, m.DiseaseCount)
	require.Len(t, m.RelatedDiseases, 1)
	assert.Equal(t, "Dis1", m.RelatedDiseases[0].DiseaseID)

	_, err = engine.DrugMechanism("missing")
	assert.ErrorIs(t, err, remedigraph.ErrDrugNotFound)
}

func TestDiseaseProfile(t *testing.T) {
	engine := newTestEngine(t)

	p, err := engine.DiseaseProfile("Dis1")
	require.NoError(t, err)
	assert.Equal(t, "type 2 diabetes", p.DiseaseName)
	require.Len(t, p.RelatedDrugs, 1)
	assert.Equal(t, "D2", p.RelatedDrugs[0].DrugID)

	_, err = engine.DiseaseProfile("missing")
	assert.ErrorIs(t, err, remedigraph.ErrDiseaseNotFound)
}

func TestHealthCheck(t *testing.T) {
	cold := remedigraph.New(fixtureStore(), fixtureEmbedder(), nil, nil)
	status := cold.HealthCheck()
	assert.False(t, status.Healthy)
	assert.Equal(t, "not_initialized", status.Status)

	engine := newTestEngine(t)
	status = engine.HealthCheck()
	assert.True(t, status.Healthy)
	assert.Equal(t, 3, status.DrugsCount)
	assert.Equal(t, 2, status.DiseasesCount)
	assert.Equal(t, 6, status.GraphNodes)
}
