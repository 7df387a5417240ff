package types

// EdgeKind discriminates the relationship types in the repurposing graph.
type EdgeKind string

const (
	// DrugDiseaseEdge marks a known treatment relationship.
	DrugDiseaseEdge EdgeKind = "drug_disease"
	// DrugGeneEdge marks a drug-gene target relationship.
	DrugGeneEdge EdgeKind = "drug_gene"
	// DiseaseGenePropagatedEdge marks a disease-gene link inferred
	// transitively through a shared drug, not directly observed.
	DiseaseGenePropagatedEdge EdgeKind = "disease_gene_propagated"
)

// Edge is an undirected graph edge. The annotation fields are selected by
// Kind: Evidence for drug_disease, Note for drug_gene, and ViaDrug for
// disease_gene_propagated. Fields not matching the kind stay zero.
type Edge struct {
	Source NodeID   `json:"source"`
	Target NodeID   `json:"target"`
	Weight float64  `json:"weight"`
	Kind   EdgeKind `json:"kind"`

	// Evidence text, set for drug_disease edges.
	Evidence string `json:"evidence,omitempty"`

	// Note text, set for drug_gene edges.
	Note string `json:"note,omitempty"`

	// ViaDrug references the mediating drug, set for
	// disease_gene_propagated edges.
	ViaDrug NodeID `json:"via_drug,omitzero"`
}

// Other reports the opposite endpoint of the edge. Edges are undirected,
// so callers reach neighbors through this regardless of insertion order.
func (e *Edge) Other(id NodeID) NodeID {
	if e.Source == id {
		return e.Target
	}
	return e.Source
}
