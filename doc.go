// Package remedigraph ranks candidate drugs for a disease by fusing two
// signals: link-prediction scores over a typed drug-disease-gene graph
// and embedding similarity between drug indication text and the disease
// description. Top candidates are explained through graph evidence paths
// and token overlap.
//
// # Basic Usage
//
// Create an engine from an entity store and an embedding client:
//
//	store, err := entitystore.LoadDir("data", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	embConfig := embedder.Config{Model: "text-embedding-3-small"}
//	embedderClient := embedder.NewOpenAIEmbedder(apiKey, embConfig)
//
//	engine := remedigraph.New(store, embedderClient, nil, logger)
//	if err := engine.Init(ctx); err != nil {
//		log.Fatal(err)
//	}
//
// # Ranking
//
// Rank resolves the disease query fuzzily, excludes drugs with known
// evidence, and scores the rest:
//
//	candidates, err := engine.Rank(ctx, "type 2 diabetes", 10)
//
// Each candidate carries the fused score, its text and graph components,
// and a min-max normalized score over the full candidate set.
//
// # Explanation
//
//	explanation, err := engine.Explain(ctx, "D001", "type 2 diabetes")
//
// An explanation contains up to three bounded-length graph paths rendered
// as evidence chains, the token overlap between the drug's indications
// and the disease text, and any known direct evidence.
//
// The graph and the per-drug embedding cache are built once in Init and
// are read-only afterwards; concurrent requests share them without
// locking.
package remedigraph
