package types

// DrugRecord is a single drug as loaded from the seed data.
// IndicationsText is case-normalized at load time.
type DrugRecord struct {
	DrugID          string `json:"drug_id" mapstructure:"drug_id"`
	DrugName        string `json:"drug_name" mapstructure:"drug_name"`
	ATC             string `json:"atc" mapstructure:"atc"`
	IndicationsText string `json:"indications_text" mapstructure:"indications_text"`
}

// DiseaseRecord is a single disease as loaded from the seed data.
// Synonyms is a free-text blob of alternative names.
type DiseaseRecord struct {
	DiseaseID   string `json:"disease_id" mapstructure:"disease_id"`
	DiseaseName string `json:"disease_name" mapstructure:"disease_name"`
	Synonyms    string `json:"synonyms" mapstructure:"synonyms"`
}

// DrugDiseaseEvidence marks a known (non-candidate) drug-disease
// relationship together with its supporting evidence text.
type DrugDiseaseEvidence struct {
	DrugID    string `json:"drug_id" mapstructure:"drug_id"`
	DiseaseID string `json:"disease_id" mapstructure:"disease_id"`
	Evidence  string `json:"evidence" mapstructure:"evidence"`
}

// DrugGeneAssociation links a drug to a gene target.
type DrugGeneAssociation struct {
	DrugID     string `json:"drug_id" mapstructure:"drug_id"`
	GeneSymbol string `json:"gene_symbol" mapstructure:"gene_symbol"`
	Note       string `json:"note" mapstructure:"note"`
}

// LinkScores holds the structural affinity scores between a drug node and
// a disease node. All fields are zero when either node is absent from the
// graph.
type LinkScores struct {
	AdamicAdar                float64 `json:"adamic_adar"`
	CommonNeighbors           float64 `json:"common_neighbors"`
	NormalizedCommonNeighbors float64 `json:"normalized_common_neighbors"`
}

// ScoredCandidate is one ranked drug for a resolved target disease.
type ScoredCandidate struct {
	DrugID          string `json:"drug_id"`
	DrugName        string `json:"drug_name"`
	ATC             string `json:"atc"`
	IndicationsText string `json:"indications_text"`

	Score           float64 `json:"score"`
	TextScore       float64 `json:"text_score"`
	GraphScore      float64 `json:"graph_score"`
	NormalizedScore float64 `json:"normalized_score"`

	TargetDiseaseID   string `json:"target_disease_id"`
	TargetDiseaseName string `json:"target_disease_name"`
}

// GraphStats summarizes a built graph.
type GraphStats struct {
	TotalNodes          int     `json:"total_nodes"`
	TotalEdges          int     `json:"total_edges"`
	DrugNodes           int     `json:"drug_nodes"`
	DiseaseNodes        int     `json:"disease_nodes"`
	GeneNodes           int     `json:"gene_nodes"`
	Density             float64 `json:"density"`
	ConnectedComponents int     `json:"connected_components"`
}

// PathExplanation is one rendered evidence chain between a drug and a
// disease. Paths are reported in discovery order; no quality ordering is
// implied among paths of equal length.
type PathExplanation struct {
	PathID      int      `json:"path_id"`
	Path        []NodeID `json:"path"`
	Length      int      `json:"length"`
	Explanation string   `json:"explanation"`
}

// TextOverlap reports token overlap between a drug's indications text and
// a disease's name plus synonyms.
type TextOverlap struct {
	OverlappingTokens []string `json:"overlapping_tokens"`
	OverlapCount      int      `json:"overlap_count"`
	DrugTokens        []string `json:"drug_tokens"`
	DiseaseTokens     []string `json:"disease_tokens"`
	OverlapRatio      float64  `json:"overlap_ratio"`
}

// KnownEvidence reports whether a direct evidence row exists for a
// drug-disease pair.
type KnownEvidence struct {
	HasKnownEvidence bool   `json:"has_known_evidence"`
	Evidence         string `json:"evidence,omitempty"`
}

// DrugInfo carries the display fields of a drug inside an Explanation.
type DrugInfo struct {
	ATC             string `json:"atc"`
	IndicationsText string `json:"indications_text"`
}

// DiseaseInfo carries the display fields of a disease inside an Explanation.
type DiseaseInfo struct {
	Synonyms string `json:"synonyms"`
}

// Explanation is the full evidence bundle for a drug-disease pair:
// graph paths, token overlap, and any known direct evidence.
type Explanation struct {
	DrugID       string            `json:"drug_id"`
	DrugName     string            `json:"drug_name"`
	DiseaseID    string            `json:"disease_id"`
	DiseaseName  string            `json:"disease_name"`
	DiseaseQuery string            `json:"disease_query"`
	GraphPaths   []PathExplanation `json:"graph_paths"`
	TextOverlap  TextOverlap       `json:"text_overlaps"`
	Known        KnownEvidence     `json:"known_evidence"`
	DrugInfo     DrugInfo          `json:"drug_info"`
	DiseaseInfo  DiseaseInfo       `json:"disease_info"`
}

// DrugMechanism describes how a drug acts: its gene targets and the
// diseases it is known to treat.
type DrugMechanism struct {
	DrugID          string                `json:"drug_id"`
	DrugName        string                `json:"drug_name"`
	ATC             string                `json:"atc_code"`
	Indications     string                `json:"indications"`
	RelatedGenes    []DrugGeneAssociation `json:"related_genes"`
	RelatedDiseases []DiseaseRecord       `json:"related_diseases"`
	GeneCount       int                   `json:"gene_count"`
	DiseaseCount    int                   `json:"disease_count"`
}

// DiseaseProfile describes a disease and the drugs known to treat it.
type DiseaseProfile struct {
	DiseaseID    string       `json:"disease_id"`
	DiseaseName  string       `json:"disease_name"`
	Synonyms     string       `json:"synonyms"`
	RelatedDrugs []DrugRecord `json:"related_drugs"`
	DrugCount    int          `json:"drug_count"`
}
