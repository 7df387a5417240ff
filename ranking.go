package remedigraph

import (
	"context"
	"fmt"
	"sort"

	"github.com/soundprediction/remedigraph/pkg/types"
	"github.com/soundprediction/remedigraph/pkg/utils"
)

// Graph score fusion: Adamic-Adar dominates, common-neighbor overlap
// contributes the rest. The Adamic-Adar term saturates at 2.0.
const (
	adamicAdarWeight      = 0.7
	adamicAdarScale       = 2.0
	commonNeighborsWeight = 0.3
)

// Rank scores every candidate drug for the queried disease and returns
// the top k, ordered by fused score descending.
//
// The disease query resolves through the store's fuzzy match; an
// unresolved query yields an empty result, not an error. Drugs with
// known evidence for the resolved disease are excluded. Ties keep
// candidate-set order (stable sort), and NormalizedScore is min-max
// normalized over the entire candidate set before truncation to k.
func (e *Engine) Rank(ctx context.Context, diseaseQuery string, k int) ([]types.ScoredCandidate, error) {
	if !e.ready() {
		return nil, ErrNotInitialized
	}

	disease, ok := e.store.FuzzyMatchDisease(diseaseQuery)
	if !ok {
		e.logger.Warn("no matching disease", "query", diseaseQuery)
		return nil, nil
	}
	e.logger.Info("ranking drugs for disease",
		"query", diseaseQuery,
		"disease_id", disease.DiseaseID,
		"disease_name", disease.DiseaseName)

	candidates := e.candidateDrugs(disease.DiseaseID)
	if len(candidates) == 0 {
		e.logger.Info("no candidate drugs", "disease_id", disease.DiseaseID)
		return nil, nil
	}

	diseaseVec, err := e.embedDiseaseText(ctx, disease)
	if err != nil {
		return nil, fmt.Errorf("embed disease text: %w", err)
	}

	scored := make([]types.ScoredCandidate, 0, len(candidates))
	textWeight, graphWeight := e.Weights()
	for _, drug := range candidates {
		textScore := e.textScore(drug.DrugID, diseaseVec)
		graphScore := e.graphScore(drug.DrugID, disease.DiseaseID)

		scored = append(scored, types.ScoredCandidate{
			DrugID:            drug.DrugID,
			DrugName:          drug.DrugName,
			ATC:               drug.ATC,
			IndicationsText:   drug.IndicationsText,
			Score:             textWeight*textScore + graphWeight*graphScore,
			TextScore:         textScore,
			GraphScore:        graphScore,
			TargetDiseaseID:   disease.DiseaseID,
			TargetDiseaseName: disease.DiseaseName,
		})
	}

	// Stable keeps candidate-set order on equal scores, making the
	// ranking deterministic without a secondary key.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	scores := make([]float64, len(scored))
	for i := range scored {
		scores[i] = scored[i].Score
	}
	for i, n := range utils.MinMaxNormalize(scores) {
		scored[i].NormalizedScore = n
	}

	if k > 0 && k < len(scored) {
		scored = scored[:k]
	}
	return scored, nil
}

// candidateDrugs returns all drugs without known evidence for the
// disease, in store order.
func (e *Engine) candidateDrugs(diseaseID string) []types.DrugRecord {
	known := make(map[string]struct{})
	for _, d := range e.store.KnownDrugsForDisease(diseaseID) {
		known[d.DrugID] = struct{}{}
	}

	var candidates []types.DrugRecord
	for _, d := range e.store.AllDrugs() {
		if _, isKnown := known[d.DrugID]; !isKnown {
			candidates = append(candidates, d)
		}
	}
	return candidates
}

// embedDiseaseText embeds "<disease_name> <synonyms>". The disease side
// is recomputed per request since queries vary; the drug side is served
// from the Init-time cache.
func (e *Engine) embedDiseaseText(ctx context.Context, disease types.DiseaseRecord) ([]float32, error) {
	text := disease.DiseaseName + " " + disease.Synonyms
	return e.embedder.EmbedSingle(ctx, text)
}

// textScore is the cosine similarity between the cached drug vector and
// the disease vector, floored at zero. Drugs without a cached vector
// (empty indications) score zero rather than failing the request.
func (e *Engine) textScore(drugID string, diseaseVec []float32) float64 {
	drugVec, ok := e.drugEmbeddings[drugID]
	if !ok {
		return 0
	}

	similarity := utils.CosineSimilarity(drugVec, diseaseVec)
	if similarity < 0 {
		return 0
	}
	return similarity
}

// graphScore fuses the link-prediction signals into [0, 1].
func (e *Engine) graphScore(drugID, diseaseID string) float64 {
	scores := e.graph.LinkPrediction(types.DrugID(drugID), types.DiseaseID(diseaseID))

	adamicAdar := utils.Clamp01(scores.AdamicAdar / adamicAdarScale)
	return utils.Clamp01(adamicAdarWeight*adamicAdar + commonNeighborsWeight*scores.NormalizedCommonNeighbors)
}

// RankingStats summarizes a ranking setup for a disease query.
type RankingStats struct {
	TargetDisease       string  `json:"target_disease"`
	KnownDrugsCount     int     `json:"known_drugs_count"`
	CandidateDrugsCount int     `json:"candidate_drugs_count"`
	TextWeight          float64 `json:"text_weight"`
	GraphWeight         float64 `json:"graph_weight"`
	CachedEmbeddings    int     `json:"cached_embeddings"`
}

// RankingStatsFor reports known/candidate counts and the current weights
// for a disease query.
func (e *Engine) RankingStatsFor(diseaseQuery string) (RankingStats, error) {
	if !e.ready() {
		return RankingStats{}, ErrNotInitialized
	}

	disease, ok := e.store.FuzzyMatchDisease(diseaseQuery)
	if !ok {
		return RankingStats{}, fmt.Errorf("%w: %s", ErrNoMatchingDisease, diseaseQuery)
	}

	textWeight, graphWeight := e.Weights()
	return RankingStats{
		TargetDisease:       disease.DiseaseName,
		KnownDrugsCount:     len(e.store.KnownDrugsForDisease(disease.DiseaseID)),
		CandidateDrugsCount: len(e.candidateDrugs(disease.DiseaseID)),
		TextWeight:          textWeight,
		GraphWeight:         graphWeight,
		CachedEmbeddings:    len(e.drugEmbeddings),
	}, nil
}
