package types

// NodeKind discriminates the three node families in the repurposing graph.
type NodeKind string

const (
	// DrugNodeKind identifies drug nodes.
	DrugNodeKind NodeKind = "drug"
	// DiseaseNodeKind identifies disease nodes.
	DiseaseNodeKind NodeKind = "disease"
	// GeneNodeKind identifies gene nodes.
	GeneNodeKind NodeKind = "gene"
)

// NodeID is the tagged identity of a graph node. The (Kind, Value) pair is
// the identity; two nodes of different kinds never collide even when their
// raw identifiers are equal. NodeID is comparable and usable as a map key.
type NodeID struct {
	Kind  NodeKind `json:"kind"`
	Value string   `json:"value"`
}

// DrugID returns the node identity for a drug record id.
func DrugID(id string) NodeID {
	return NodeID{Kind: DrugNodeKind, Value: id}
}

// DiseaseID returns the node identity for a disease record id.
func DiseaseID(id string) NodeID {
	return NodeID{Kind: DiseaseNodeKind, Value: id}
}

// GeneID returns the node identity for a gene symbol.
func GeneID(symbol string) NodeID {
	return NodeID{Kind: GeneNodeKind, Value: symbol}
}

// IsZero reports whether the identity is unset.
func (id NodeID) IsZero() bool {
	return id.Kind == "" && id.Value == ""
}

// String renders the identity in the namespaced form used for display and
// logging: drug:<id>, dis:<id>, gene:<symbol>. The rendered form is never
// parsed back; dispatch always goes through Kind.
func (id NodeID) String() string {
	switch id.Kind {
	case DrugNodeKind:
		return "drug:" + id.Value
	case DiseaseNodeKind:
		return "dis:" + id.Value
	case GeneNodeKind:
		return "gene:" + id.Value
	default:
		return id.Value
	}
}

// Node is a graph node together with the display attributes carried for
// later rendering. Only the fields matching the node kind are populated.
type Node struct {
	ID NodeID `json:"id"`

	// Name is the display name (drug name or disease name). Gene nodes
	// use the raw symbol, kept in ID.Value.
	Name string `json:"name,omitempty"`

	// Drug-specific fields
	ATC         string `json:"atc,omitempty"`
	Indications string `json:"indications,omitempty"`

	// Disease-specific fields
	Synonyms string `json:"synonyms,omitempty"`
}
