package remedigraph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/soundprediction/remedigraph/pkg/embedder"
	"github.com/soundprediction/remedigraph/pkg/entitystore"
	"github.com/soundprediction/remedigraph/pkg/graph"
	"github.com/soundprediction/remedigraph/pkg/types"
)

var (
	// ErrDrugNotFound is returned when a drug id is unknown.
	ErrDrugNotFound = errors.New("drug not found")
	// ErrDiseaseNotFound is returned when a disease id is unknown.
	ErrDiseaseNotFound = errors.New("disease not found")
	// ErrNoMatchingDisease is returned when fuzzy disease resolution fails.
	ErrNoMatchingDisease = errors.New("no matching disease")
	// ErrNotInitialized is returned when a query arrives before Init.
	ErrNotInitialized = errors.New("engine not initialized")
	// ErrZeroWeights is returned when a weight update sums to zero.
	ErrZeroWeights = errors.New("weights sum to zero")
)

// Default score fusion weights.
const (
	DefaultTextWeight  = 0.6
	DefaultGraphWeight = 0.4
)

// Config holds configuration for the Engine.
type Config struct {
	// TextWeight and GraphWeight control score fusion. They are
	// renormalized to sum to 1.
	TextWeight  float64
	GraphWeight float64
	// MaxPathLength bounds explanation path search, in hops.
	MaxPathLength int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		TextWeight:    DefaultTextWeight,
		GraphWeight:   DefaultGraphWeight,
		MaxPathLength: graph.DefaultMaxPathLength,
	}
}

// Engine is the graph-fusion ranking and explanation engine. It owns the
// built graph and the per-drug embedding cache; both are created once in
// Init and read-only afterwards, so concurrent requests share them
// without locking. The fusion weights are the only post-init mutable
// state and are guarded separately.
type Engine struct {
	store    entitystore.Store
	embedder embedder.Client
	logger   *slog.Logger

	maxPathLength int

	initMu      sync.Mutex
	initialized bool

	graph          *graph.Graph
	drugEmbeddings map[string][]float32

	weightsMu   sync.RWMutex
	textWeight  float64
	graphWeight float64
}

// New creates an Engine over the given store and embedding client. The
// engine is not usable until Init completes.
func New(store entitystore.Store, embedderClient embedder.Client, config *Config, logger *slog.Logger) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	tw, gw := normalizeWeights(config.TextWeight, config.GraphWeight)
	maxLen := config.MaxPathLength
	if maxLen <= 0 {
		maxLen = graph.DefaultMaxPathLength
	}

	return &Engine{
		store:         store,
		embedder:      embedderClient,
		logger:        logger,
		maxPathLength: maxLen,
		textWeight:    tw,
		graphWeight:   gw,
	}
}

// Init builds the graph and bulk-embeds every drug's indications text,
// caching the vectors by drug id for the engine's lifetime. It is
// idempotent: repeated calls after a successful run return immediately,
// and no query observes a partially built graph. A failed run leaves the
// engine uninitialized so Init can be retried.
func (e *Engine) Init(ctx context.Context) error {
	e.initMu.Lock()
	defer e.initMu.Unlock()

	if e.initialized {
		e.logger.Debug("engine already initialized")
		return nil
	}

	g := graph.Build(e.store, e.logger)

	embeddings, err := e.embedAllDrugs(ctx)
	if err != nil {
		return fmt.Errorf("embed drug indications: %w", err)
	}

	e.graph = g
	e.drugEmbeddings = embeddings
	e.initialized = true

	e.logger.Info("engine initialized", "cached_embeddings", len(embeddings))
	return nil
}

// embedAllDrugs embeds the indications text of every drug with one in a
// single batched provider call.
func (e *Engine) embedAllDrugs(ctx context.Context) (map[string][]float32, error) {
	drugs := e.store.AllDrugs()

	ids := make([]string, 0, len(drugs))
	texts := make([]string, 0, len(drugs))
	for _, d := range drugs {
		if d.IndicationsText == "" {
			continue
		}
		ids = append(ids, d.DrugID)
		texts = append(texts, d.IndicationsText)
	}
	if len(texts) == 0 {
		return map[string][]float32{}, nil
	}

	vectors, err := e.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(vectors))
	}

	embeddings := make(map[string][]float32, len(ids))
	for i, id := range ids {
		embeddings[id] = vectors[i]
	}
	return embeddings, nil
}

// ready reports whether Init has completed.
func (e *Engine) ready() bool {
	e.initMu.Lock()
	defer e.initMu.Unlock()
	return e.initialized
}

// Graph returns the built graph, or nil before Init.
func (e *Engine) Graph() *graph.Graph {
	e.initMu.Lock()
	defer e.initMu.Unlock()
	return e.graph
}

// GraphStats summarizes the built graph.
func (e *Engine) GraphStats() (types.GraphStats, error) {
	g := e.Graph()
	if g == nil {
		return types.GraphStats{}, ErrNotInitialized
	}
	return g.Stats(), nil
}

// LinkPredictionScore computes the structural affinity scores between a
// drug and a disease. Absent nodes yield all-zero scores, not an error.
func (e *Engine) LinkPredictionScore(drugID, diseaseID string) (types.LinkScores, error) {
	g := e.Graph()
	if g == nil {
		return types.LinkScores{}, ErrNotInitialized
	}
	return g.LinkPrediction(types.DrugID(drugID), types.DiseaseID(diseaseID)), nil
}

// Weights returns the current fusion weights.
func (e *Engine) Weights() (textWeight, graphWeight float64) {
	e.weightsMu.RLock()
	defer e.weightsMu.RUnlock()
	return e.textWeight, e.graphWeight
}

// UpdateWeights replaces the fusion weights, renormalizing them to sum
// to 1. A zero sum keeps the existing weights and returns ErrZeroWeights
// so callers can report the rejected update; it is never fatal.
func (e *Engine) UpdateWeights(textWeight, graphWeight float64) error {
	if textWeight+graphWeight <= 0 {
		e.logger.Warn("total weight is zero, keeping current weights",
			"text_weight", textWeight, "graph_weight", graphWeight)
		return ErrZeroWeights
	}

	tw, gw := normalizeWeights(textWeight, graphWeight)

	e.weightsMu.Lock()
	e.textWeight = tw
	e.graphWeight = gw
	e.weightsMu.Unlock()

	e.logger.Info("updated fusion weights", "text_weight", tw, "graph_weight", gw)
	return nil
}

func normalizeWeights(textWeight, graphWeight float64) (float64, float64) {
	total := textWeight + graphWeight
	if total <= 0 {
		return DefaultTextWeight, DefaultGraphWeight
	}
	return textWeight / total, graphWeight / total
}

// Drugs returns every drug in the catalog.
func (e *Engine) Drugs() []types.DrugRecord {
	return e.store.AllDrugs()
}

// Diseases returns every disease in the catalog.
func (e *Engine) Diseases() []types.DiseaseRecord {
	return e.store.AllDiseases()
}

// DrugInfo returns the drug record for an id.
func (e *Engine) DrugInfo(drugID string) (types.DrugRecord, error) {
	d, ok := e.store.DrugByID(drugID)
	if !ok {
		return types.DrugRecord{}, fmt.Errorf("%w: %s", ErrDrugNotFound, drugID)
	}
	return d, nil
}

// DiseaseInfo returns the disease record for an id.
func (e *Engine) DiseaseInfo(diseaseID string) (types.DiseaseRecord, error) {
	d, ok := e.store.DiseaseByID(diseaseID)
	if !ok {
		return types.DiseaseRecord{}, fmt.Errorf("%w: %s", ErrDiseaseNotFound, diseaseID)
	}
	return d, nil
}

// SearchDiseases returns the diseases whose name or synonyms contain the
// query, case-insensitively.
func (e *Engine) SearchDiseases(query string) []types.DiseaseRecord {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []types.DiseaseRecord
	for _, d := range e.store.AllDiseases() {
		if strings.Contains(strings.ToLower(d.DiseaseName), query) ||
			strings.Contains(strings.ToLower(d.Synonyms), query) {
			matches = append(matches, d)
		}
	}
	return matches
}

// DrugMechanism returns a drug's gene targets and known diseases.
func (e *Engine) DrugMechanism(drugID string) (types.DrugMechanism, error) {
	d, ok := e.store.DrugByID(drugID)
	if !ok {
		return types.DrugMechanism{}, fmt.Errorf("%w: %s", ErrDrugNotFound, drugID)
	}

	genes := e.store.GeneAssociationsForDrug(drugID)
	diseases := e.store.DiseasesForDrug(drugID)

	return types.DrugMechanism{
		DrugID:          d.DrugID,
		DrugName:        d.DrugName,
		ATC:             d.ATC,
		Indications:     d.IndicationsText,
		RelatedGenes:    genes,
		RelatedDiseases: diseases,
		GeneCount:       len(genes),
		DiseaseCount:    len(diseases),
	}, nil
}

// DiseaseProfile returns a disease and the drugs known to treat it.
func (e *Engine) DiseaseProfile(diseaseID string) (types.DiseaseProfile, error) {
	d, ok := e.store.DiseaseByID(diseaseID)
	if !ok {
		return types.DiseaseProfile{}, fmt.Errorf("%w: %s", ErrDiseaseNotFound, diseaseID)
	}

	drugs := e.store.KnownDrugsForDisease(diseaseID)

	return types.DiseaseProfile{
		DiseaseID:    d.DiseaseID,
		DiseaseName:  d.DiseaseName,
		Synonyms:     d.Synonyms,
		RelatedDrugs: drugs,
		DrugCount:    len(drugs),
	}, nil
}

// HealthStatus reports the engine's readiness and basic counts.
type HealthStatus struct {
	Status        string `json:"status"`
	Healthy       bool   `json:"healthy"`
	Initialized   bool   `json:"initialized"`
	DrugsCount    int    `json:"drugs_count,omitempty"`
	DiseasesCount int    `json:"diseases_count,omitempty"`
	GraphNodes    int    `json:"graph_nodes,omitempty"`
	GraphEdges    int    `json:"graph_edges,omitempty"`
}

// HealthCheck reports engine health.
func (e *Engine) HealthCheck() HealthStatus {
	if !e.ready() {
		return HealthStatus{Status: "not_initialized", Healthy: false}
	}

	stats := e.Graph().Stats()
	return HealthStatus{
		Status:        "healthy",
		Healthy:       true,
		Initialized:   true,
		DrugsCount:    len(e.store.AllDrugs()),
		DiseasesCount: len(e.store.AllDiseases()),
		GraphNodes:    stats.TotalNodes,
		GraphEdges:    stats.TotalEdges,
	}
}
