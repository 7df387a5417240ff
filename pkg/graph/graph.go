package graph

import (
	"log/slog"

	"github.com/soundprediction/remedigraph/pkg/types"
)

// Edge weights per relationship kind. Propagated edges carry the lowest
// weight: they are a transitive signal, not an observed association.
const (
	DrugDiseaseWeight           = 2.0
	DrugGeneWeight              = 1.0
	DiseaseGenePropagatedWeight = 0.5
)

// EntitySource supplies the records a graph is built from. It is the
// subset of the entity store the builder needs.
type EntitySource interface {
	AllDrugs() []types.DrugRecord
	AllDiseases() []types.DiseaseRecord
	AllEvidence() []types.DrugDiseaseEvidence
	AllGeneAssociations() []types.DrugGeneAssociation
}

// edgeKey is the canonical (order-independent) identity of an undirected
// edge.
type edgeKey struct {
	a, b types.NodeID
}

func keyFor(a, b types.NodeID) edgeKey {
	if b.Kind < a.Kind || (b.Kind == a.Kind && b.Value < a.Value) {
		a, b = b, a
	}
	return edgeKey{a: a, b: b}
}

// Graph is an immutable undirected multi-relational graph over drug,
// disease, and gene nodes. All accessors are safe for concurrent use
// after Build returns.
type Graph struct {
	nodes     map[types.NodeID]*types.Node
	order     []types.NodeID
	adjacency map[types.NodeID][]types.NodeID
	edges     map[edgeKey]*types.Edge

	drugNodes    []types.NodeID
	diseaseNodes []types.NodeID
	geneNodes    []types.NodeID
}

// Build constructs the graph from the entity source: one node per drug,
// disease, and distinct gene symbol, drug_disease and drug_gene edges from
// the evidence and association records, and finally the propagation step
// that adds disease_gene_propagated edges through shared drugs.
//
// Edges whose endpoints are not both present are skipped. An empty source
// produces an empty graph, not an error.
func Build(src EntitySource, logger *slog.Logger) *Graph {
	if logger == nil {
		logger = slog.Default()
	}

	g := &Graph{
		nodes:     make(map[types.NodeID]*types.Node),
		adjacency: make(map[types.NodeID][]types.NodeID),
		edges:     make(map[edgeKey]*types.Edge),
	}

	g.addDrugNodes(src.AllDrugs())
	g.addDiseaseNodes(src.AllDiseases())
	g.addGeneNodes(src.AllGeneAssociations())

	g.addDrugDiseaseEdges(src.AllEvidence())
	g.addDrugGeneEdges(src.AllGeneAssociations())
	g.propagateDiseaseGeneEdges()

	logger.Info("graph built",
		"nodes", len(g.nodes),
		"edges", len(g.edges),
		"drug_nodes", len(g.drugNodes),
		"disease_nodes", len(g.diseaseNodes),
		"gene_nodes", len(g.geneNodes))

	return g
}

func (g *Graph) addNode(n *types.Node) {
	if _, ok := g.nodes[n.ID]; ok {
		return
	}
	g.nodes[n.ID] = n
	g.order = append(g.order, n.ID)
	switch n.ID.Kind {
	case types.DrugNodeKind:
		g.drugNodes = append(g.drugNodes, n.ID)
	case types.DiseaseNodeKind:
		g.diseaseNodes = append(g.diseaseNodes, n.ID)
	case types.GeneNodeKind:
		g.geneNodes = append(g.geneNodes, n.ID)
	}
}

func (g *Graph) addDrugNodes(drugs []types.DrugRecord) {
	for _, d := range drugs {
		g.addNode(&types.Node{
			ID:          types.DrugID(d.DrugID),
			Name:        d.DrugName,
			ATC:         d.ATC,
			Indications: d.IndicationsText,
		})
	}
}

func (g *Graph) addDiseaseNodes(diseases []types.DiseaseRecord) {
	for _, d := range diseases {
		g.addNode(&types.Node{
			ID:       types.DiseaseID(d.DiseaseID),
			Name:     d.DiseaseName,
			Synonyms: d.Synonyms,
		})
	}
}

func (g *Graph) addGeneNodes(assocs []types.DrugGeneAssociation) {
	for _, a := range assocs {
		if a.GeneSymbol == "" {
			continue
		}
		g.addNode(&types.Node{ID: types.GeneID(a.GeneSymbol)})
	}
}

// addEdge inserts or replaces the edge between the endpoints. Endpoints
// must already exist; edges referencing absent nodes are skipped so the
// graph never holds a dangling edge.
func (g *Graph) addEdge(e *types.Edge) {
	if _, ok := g.nodes[e.Source]; !ok {
		return
	}
	if _, ok := g.nodes[e.Target]; !ok {
		return
	}
	key := keyFor(e.Source, e.Target)
	if _, exists := g.edges[key]; !exists {
		g.adjacency[e.Source] = append(g.adjacency[e.Source], e.Target)
		g.adjacency[e.Target] = append(g.adjacency[e.Target], e.Source)
	}
	g.edges[key] = e
}

func (g *Graph) addDrugDiseaseEdges(evidence []types.DrugDiseaseEvidence) {
	for _, ev := range evidence {
		g.addEdge(&types.Edge{
			Source:   types.DrugID(ev.DrugID),
			Target:   types.DiseaseID(ev.DiseaseID),
			Weight:   DrugDiseaseWeight,
			Kind:     types.DrugDiseaseEdge,
			Evidence: ev.Evidence,
		})
	}
}

func (g *Graph) addDrugGeneEdges(assocs []types.DrugGeneAssociation) {
	for _, a := range assocs {
		g.addEdge(&types.Edge{
			Source: types.DrugID(a.DrugID),
			Target: types.GeneID(a.GeneSymbol),
			Weight: DrugGeneWeight,
			Kind:   types.DrugGeneEdge,
			Note:   a.Note,
		})
	}
}

// propagateDiseaseGeneEdges adds a disease_gene_propagated edge for every
// (disease, gene) pair reachable through a shared drug. A pair already
// connected keeps its existing edge; the first mediating drug encountered
// wins. Drug nodes and their neighbors are walked in insertion order, so
// the result is deterministic for a given source snapshot.
func (g *Graph) propagateDiseaseGeneEdges() {
	for _, drug := range g.drugNodes {
		var diseases, genes []types.NodeID
		for _, n := range g.adjacency[drug] {
			switch n.Kind {
			case types.DiseaseNodeKind:
				diseases = append(diseases, n)
			case types.GeneNodeKind:
				genes = append(genes, n)
			}
		}
		for _, disease := range diseases {
			for _, gene := range genes {
				if _, ok := g.edges[keyFor(disease, gene)]; ok {
					continue
				}
				g.addEdge(&types.Edge{
					Source:  disease,
					Target:  gene,
					Weight:  DiseaseGenePropagatedWeight,
					Kind:    types.DiseaseGenePropagatedEdge,
					ViaDrug: drug,
				})
			}
		}
	}
}

// HasNode reports whether the node exists.
func (g *Graph) HasNode(id types.NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node and whether it exists.
func (g *Graph) Node(id types.NodeID) (*types.Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Neighbors returns the neighbors of a node in insertion order. Absent
// nodes yield nil.
func (g *Graph) Neighbors(id types.NodeID) []types.NodeID {
	return g.adjacency[id]
}

// NeighborsOfKind returns the neighbors of a node filtered to one kind.
func (g *Graph) NeighborsOfKind(id types.NodeID, kind types.NodeKind) []types.NodeID {
	var out []types.NodeID
	for _, n := range g.adjacency[id] {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// Edge returns the edge between two nodes, if any.
func (g *Graph) Edge(a, b types.NodeID) (*types.Edge, bool) {
	e, ok := g.edges[keyFor(a, b)]
	return e, ok
}

// Degree returns the number of neighbors of a node; 0 for absent nodes.
func (g *Graph) Degree(id types.NodeID) int {
	return len(g.adjacency[id])
}

// NodeCount returns the total number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// DrugNodes returns the drug node identities in insertion order.
func (g *Graph) DrugNodes() []types.NodeID { return g.drugNodes }

// DiseaseNodes returns the disease node identities in insertion order.
func (g *Graph) DiseaseNodes() []types.NodeID { return g.diseaseNodes }

// GeneNodes returns the gene node identities in insertion order.
func (g *Graph) GeneNodes() []types.NodeID { return g.geneNodes }
