package remedigraph_test

import (
	"context"
	"math"
	"testing"

	"github.com/soundprediction/remedigraph"
	"github.com/soundprediction/remedigraph/pkg/entitystore"
	"github.com/soundprediction/remedigraph/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	engine := newTestEngine(t)

	candidates, err := engine.Rank(context.Background(), "diabetes", 10)
	require.NoError(t, err)

	// D2 has known evidence for Dis1 and must not be a candidate.
	require.Len(t, candidates, 2)
	for _, c := range candidates {
		assert.NotEqual(t, "D2", c.DrugID)
	}

	t.Run("metformin ranks first", func(t *testing.T) {
		top := candidates[0]
		assert.Equal(t, "D1", top.DrugID)
		assert.Equal(t, "Metformin", top.DrugName)
		assert.Equal(t, "Dis1", top.TargetDiseaseID)
		assert.Equal(t, "type 2 diabetes", top.TargetDiseaseName)

		// Identical embedding directions give full text similarity, and
		// the shared gene contributes structural signal.
		assert.InDelta(t, 1.0, top.TextScore, 1e-9)
		assert.Greater(t, top.GraphScore, 0.0)

		// graph = 0.7 * clamp(AA/2) + 0.3 * NCN with AA = 1/ln(3), NCN = 1.
		wantGraph := 0.7*(1.0/math.Log(3)/2.0) + 0.3
		assert.InDelta(t, wantGraph, top.GraphScore, 1e-9)
		assert.InDelta(t, 0.6*top.TextScore+0.4*top.GraphScore, top.Score, 1e-9)
	})

	t.Run("unrelated drug scores zero", func(t *testing.T) {
		bottom := candidates[1]
		assert.Equal(t, "D3", bottom.DrugID)
		assert.Zero(t, bottom.TextScore)
		assert.Zero(t, bottom.GraphScore)
		assert.Zero(t, bottom.Score)
	})

	t.Run("normalized over the full candidate set", func(t *testing.T) {
		assert.Equal(t, 1.0, candidates[0].NormalizedScore)
		assert.Equal(t, 0.0, candidates[1].NormalizedScore)
	})
}

func TestRankOrderIsDescending(t *testing.T) {
	engine := newTestEngine(t)

	candidates, err := engine.Rank(context.Background(), "diabetes", 10)
	require.NoError(t, err)

	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, candidates[i-1].Score, candidates[i].Score)
	}
}

func TestRankTruncation(t *testing.T) {
	engine := newTestEngine(t)

	candidates, err := engine.Rank(context.Background(), "diabetes", 1)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "D1", candidates[0].DrugID)

	// Normalization happened before truncation, so a full spread survives
	// even when only the top entry is returned.
	assert.Equal(t, 1.0, candidates[0].NormalizedScore)
}

func TestRankUnresolvedDisease(t *testing.T) {
	engine := newTestEngine(t)

	candidates, err := engine.Rank(context.Background(), "nonexistent condition xyz", 10)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestRankTieStability(t *testing.T) {
	// Two indistinguishable drugs: same embedding, no graph signal. The
	// stable sort must keep store order between them.
	store := entitystore.New(
		[]types.DrugRecord{
			{DrugID: "A1", DrugName: "Alpha", IndicationsText: "shared text"},
			{DrugID: "A2", DrugName: "Beta", IndicationsText: "shared text"},
			{DrugID: "A3", DrugName: "Gamma", IndicationsText: "shared text"},
		},
		[]types.DiseaseRecord{
			{DiseaseID: "X1", DiseaseName: "some disease"},
		},
		nil, nil,
	)
	emb := &stubEmbedder{vectors: map[string][]float32{
		"shared text":   {1, 0},
		"some disease ": {1, 0},
	}}

	engine := remedigraph.New(store, emb, nil, nil)
	require.NoError(t, engine.Init(context.Background()))

	candidates, err := engine.Rank(context.Background(), "some disease", 10)
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	assert.Equal(t, "A1", candidates[0].DrugID)
	assert.Equal(t, "A2", candidates[1].DrugID)
	assert.Equal(t, "A3", candidates[2].DrugID)

	t.Run("degenerate spread normalizes to one", func(t *testing.T) {
		for _, c := range candidates {
			assert.Equal(t, 1.0, c.NormalizedScore)
		}
	})
}

func TestRankMissingEmbeddingScoresZero(t *testing.T) {
	// A drug with empty indications has no cached vector and must score
	// zero text similarity instead of failing the request.
	store := entitystore.New(
		[]types.DrugRecord{
			{DrugID: "A1", DrugName: "Alpha", IndicationsText: "matching text"},
			{DrugID: "A2", DrugName: "Beta", IndicationsText: ""},
		},
		[]types.DiseaseRecord{
			{DiseaseID: "X1", DiseaseName: "some disease"},
		},
		nil, nil,
	)
	emb := &stubEmbedder{vectors: map[string][]float32{
		"matching text": {1, 0},
		"some disease ": {1, 0},
	}}

	engine := remedigraph.New(store, emb, nil, nil)
	require.NoError(t, engine.Init(context.Background()))

	candidates, err := engine.Rank(context.Background(), "some disease", 10)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, "A1", candidates[0].DrugID)
	assert.Zero(t, candidates[1].TextScore)
}

func TestRankingStatsFor(t *testing.T) {
	engine := newTestEngine(t)

	stats, err := engine.RankingStatsFor("diabetes")
	require.NoError(t, err)
	assert.Equal(t, "type 2 diabetes", stats.TargetDisease)
	assert.Equal(t, 1, stats.KnownDrugsCount)
	assert.Equal(t, 2, stats.CandidateDrugsCount)
	assert.Equal(t, 3, stats.CachedEmbeddings)

	_, err = engine.RankingStatsFor("nonexistent condition xyz")
	assert.ErrorIs(t, err, remedigraph.ErrNoMatchingDisease)
}
