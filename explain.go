package remedigraph

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/soundprediction/remedigraph/pkg/graph"
	"github.com/soundprediction/remedigraph/pkg/types"
)

// MinOverlapTokenLength filters token overlap to meaningful words.
const MinOverlapTokenLength = 3

var tokenPattern = regexp.MustCompile(`\b\w+\b`)

// Explain builds the evidence bundle for a drug-disease pair: up to
// three bounded-length graph paths rendered as hop chains, the token
// overlap between the drug's indications and the disease text, and any
// known direct evidence.
//
// The disease query resolves through the same fuzzy match as Rank; an
// unresolved query returns ErrNoMatchingDisease and an unknown drug id
// returns ErrDrugNotFound. A missing path is an empty list, not an
// error.
func (e *Engine) Explain(ctx context.Context, drugID, diseaseQuery string) (*types.Explanation, error) {
	if !e.ready() {
		return nil, ErrNotInitialized
	}

	disease, ok := e.store.FuzzyMatchDisease(diseaseQuery)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoMatchingDisease, diseaseQuery)
	}

	drug, ok := e.store.DrugByID(drugID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDrugNotFound, drugID)
	}

	e.logger.Info("generating explanation",
		"drug_id", drugID, "disease_id", disease.DiseaseID, "query", diseaseQuery)

	return &types.Explanation{
		DrugID:       drug.DrugID,
		DrugName:     drug.DrugName,
		DiseaseID:    disease.DiseaseID,
		DiseaseName:  disease.DiseaseName,
		DiseaseQuery: diseaseQuery,
		GraphPaths:   e.graphPaths(drug.DrugID, disease.DiseaseID),
		TextOverlap:  e.textOverlap(drug, disease),
		Known:        e.knownEvidence(drug.DrugID, disease.DiseaseID),
		DrugInfo: types.DrugInfo{
			ATC:             drug.ATC,
			IndicationsText: drug.IndicationsText,
		},
		DiseaseInfo: types.DiseaseInfo{
			Synonyms: disease.Synonyms,
		},
	}, nil
}

// graphPaths finds bounded paths between the drug and disease nodes and
// renders each as a chain of hop descriptions.
func (e *Engine) graphPaths(drugID, diseaseID string) []types.PathExplanation {
	paths := e.graph.Paths(types.DrugID(drugID), types.DiseaseID(diseaseID), e.maxPathLength, graph.DefaultMaxPaths)

	explanations := make([]types.PathExplanation, 0, len(paths))
	for i, path := range paths {
		explanations = append(explanations, types.PathExplanation{
			PathID:      i + 1,
			Path:        path,
			Length:      len(path) - 1,
			Explanation: e.explainPath(path),
		})
	}
	return explanations
}

// explainPath renders a node sequence as " → "-joined hop descriptions.
func (e *Engine) explainPath(path []types.NodeID) string {
	if len(path) < 2 {
		return "No path found"
	}

	hops := make([]string, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		hops = append(hops, e.explainHop(path[i], path[i+1]))
	}
	return strings.Join(hops, " → ")
}

// explainHop renders a single edge. The verb is selected by the edge
// kind; unlabeled edges fall back to "connected to".
func (e *Engine) explainHop(from, to types.NodeID) string {
	edge, ok := e.graph.Edge(from, to)
	if !ok {
		return "No connection"
	}

	fromName := e.displayName(from)
	toName := e.displayName(to)

	switch edge.Kind {
	case types.DrugDiseaseEdge:
		return fmt.Sprintf("%s treats %s (%s)", fromName, toName, edge.Evidence)
	case types.DrugGeneEdge:
		return fmt.Sprintf("%s targets %s (%s)", fromName, toName, edge.Note)
	case types.DiseaseGenePropagatedEdge:
		return fmt.Sprintf("%s associated with %s (via %s)", fromName, toName, e.displayName(edge.ViaDrug))
	default:
		return fmt.Sprintf("%s connected to %s", fromName, toName)
	}
}

// displayName resolves a node identity to its display name through the
// store; gene nodes use the raw symbol.
func (e *Engine) displayName(id types.NodeID) string {
	switch id.Kind {
	case types.DrugNodeKind:
		if d, ok := e.store.DrugByID(id.Value); ok {
			return d.DrugName
		}
	case types.DiseaseNodeKind:
		if d, ok := e.store.DiseaseByID(id.Value); ok {
			return d.DiseaseName
		}
	}
	return id.Value
}

// textOverlap intersects the lower-cased word tokens of the drug's
// indications with the disease's name plus synonyms, keeping overlapping
// tokens of at least MinOverlapTokenLength characters.
func (e *Engine) textOverlap(drug types.DrugRecord, disease types.DiseaseRecord) types.TextOverlap {
	drugTokens := tokenize(drug.IndicationsText)
	diseaseTokens := tokenize(disease.DiseaseName + " " + disease.Synonyms)

	overlap := drugTokens.Intersect(diseaseTokens)
	meaningful := mapset.NewThreadUnsafeSet[string]()
	for token := range overlap.Iter() {
		if len(token) >= MinOverlapTokenLength {
			meaningful.Add(token)
		}
	}

	diseaseCount := diseaseTokens.Cardinality()
	if diseaseCount < 1 {
		diseaseCount = 1
	}

	return types.TextOverlap{
		OverlappingTokens: sortedSlice(meaningful),
		OverlapCount:      meaningful.Cardinality(),
		DrugTokens:        sortedSlice(drugTokens),
		DiseaseTokens:     sortedSlice(diseaseTokens),
		OverlapRatio:      float64(meaningful.Cardinality()) / float64(diseaseCount),
	}
}

func tokenize(text string) mapset.Set[string] {
	tokens := mapset.NewThreadUnsafeSet[string]()
	for _, t := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		tokens.Add(t)
	}
	return tokens
}

func sortedSlice(s mapset.Set[string]) []string {
	out := s.ToSlice()
	sort.Strings(out)
	return out
}

// knownEvidence reports whether a direct evidence row exists for the
// pair.
func (e *Engine) knownEvidence(drugID, diseaseID string) types.KnownEvidence {
	evidence, ok := e.store.KnownEvidence(drugID, diseaseID)
	if !ok {
		return types.KnownEvidence{HasKnownEvidence: false}
	}
	return types.KnownEvidence{HasKnownEvidence: true, Evidence: evidence}
}
