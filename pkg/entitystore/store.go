package entitystore

import (
	"strings"

	"github.com/soundprediction/remedigraph/pkg/types"
)

// FuzzyMatchThreshold is the minimum word-Jaccard similarity for the last
// fuzzy-match tier.
const FuzzyMatchThreshold = 0.3

// Store is the read interface the engine consumes. Implementations must
// be safe for concurrent reads.
type Store interface {
	AllDrugs() []types.DrugRecord
	AllDiseases() []types.DiseaseRecord
	AllEvidence() []types.DrugDiseaseEvidence
	AllGeneAssociations() []types.DrugGeneAssociation

	DrugByID(id string) (types.DrugRecord, bool)
	DrugByName(name string) (types.DrugRecord, bool)
	DiseaseByID(id string) (types.DiseaseRecord, bool)
	DiseaseByName(name string) (types.DiseaseRecord, bool)

	KnownDrugsForDisease(diseaseID string) []types.DrugRecord
	DiseasesForDrug(drugID string) []types.DiseaseRecord
	GeneAssociationsForDrug(drugID string) []types.DrugGeneAssociation
	KnownEvidence(drugID, diseaseID string) (string, bool)

	FuzzyMatchDisease(query string) (types.DiseaseRecord, bool)
}

type evidenceKey struct {
	drugID    string
	diseaseID string
}

// MemoryStore is an immutable in-memory Store over fully loaded records.
type MemoryStore struct {
	drugs    []types.DrugRecord
	diseases []types.DiseaseRecord
	evidence []types.DrugDiseaseEvidence
	assocs   []types.DrugGeneAssociation

	drugsByID      map[string]types.DrugRecord
	drugsByName    map[string]types.DrugRecord
	diseasesByID   map[string]types.DiseaseRecord
	diseasesByName map[string]types.DiseaseRecord

	drugsForDisease map[string][]string
	diseasesForDrug map[string][]string
	assocsForDrug   map[string][]types.DrugGeneAssociation
	evidenceByPair  map[evidenceKey]string

	// diseaseNameOrder preserves load order so fuzzy matching is
	// deterministic across identical snapshots.
	diseaseNameOrder []string
}

// New builds a MemoryStore from record slices. Input order is preserved
// for all enumeration methods.
func New(drugs []types.DrugRecord, diseases []types.DiseaseRecord, evidence []types.DrugDiseaseEvidence, assocs []types.DrugGeneAssociation) *MemoryStore {
	s := &MemoryStore{
		drugs:    drugs,
		diseases: diseases,
		evidence: evidence,
		assocs:   assocs,

		drugsByID:      make(map[string]types.DrugRecord, len(drugs)),
		drugsByName:    make(map[string]types.DrugRecord, len(drugs)),
		diseasesByID:   make(map[string]types.DiseaseRecord, len(diseases)),
		diseasesByName: make(map[string]types.DiseaseRecord, len(diseases)),

		drugsForDisease: make(map[string][]string),
		diseasesForDrug: make(map[string][]string),
		assocsForDrug:   make(map[string][]types.DrugGeneAssociation),
		evidenceByPair:  make(map[evidenceKey]string, len(evidence)),
	}

	for _, d := range drugs {
		s.drugsByID[d.DrugID] = d
		s.drugsByName[strings.ToLower(d.DrugName)] = d
	}
	for _, d := range diseases {
		s.diseasesByID[d.DiseaseID] = d
		name := strings.ToLower(d.DiseaseName)
		if _, exists := s.diseasesByName[name]; !exists {
			s.diseaseNameOrder = append(s.diseaseNameOrder, name)
		}
		s.diseasesByName[name] = d
	}
	for _, ev := range evidence {
		s.drugsForDisease[ev.DiseaseID] = append(s.drugsForDisease[ev.DiseaseID], ev.DrugID)
		s.diseasesForDrug[ev.DrugID] = append(s.diseasesForDrug[ev.DrugID], ev.DiseaseID)
		s.evidenceByPair[evidenceKey{ev.DrugID, ev.DiseaseID}] = ev.Evidence
	}
	for _, a := range assocs {
		s.assocsForDrug[a.DrugID] = append(s.assocsForDrug[a.DrugID], a)
	}

	return s
}

// AllDrugs returns all drug records in load order.
func (s *MemoryStore) AllDrugs() []types.DrugRecord { return s.drugs }

// AllDiseases returns all disease records in load order.
func (s *MemoryStore) AllDiseases() []types.DiseaseRecord { return s.diseases }

// AllEvidence returns all drug-disease evidence rows in load order.
func (s *MemoryStore) AllEvidence() []types.DrugDiseaseEvidence { return s.evidence }

// AllGeneAssociations returns all drug-gene associations in load order.
func (s *MemoryStore) AllGeneAssociations() []types.DrugGeneAssociation { return s.assocs }

// DrugByID looks up a drug by record id.
func (s *MemoryStore) DrugByID(id string) (types.DrugRecord, bool) {
	d, ok := s.drugsByID[id]
	return d, ok
}

// DrugByName looks up a drug by name, case-insensitively.
func (s *MemoryStore) DrugByName(name string) (types.DrugRecord, bool) {
	d, ok := s.drugsByName[strings.ToLower(name)]
	return d, ok
}

// DiseaseByID looks up a disease by record id.
func (s *MemoryStore) DiseaseByID(id string) (types.DiseaseRecord, bool) {
	d, ok := s.diseasesByID[id]
	return d, ok
}

// DiseaseByName looks up a disease by name, case-insensitively.
func (s *MemoryStore) DiseaseByName(name string) (types.DiseaseRecord, bool) {
	d, ok := s.diseasesByName[strings.ToLower(name)]
	return d, ok
}

// KnownDrugsForDisease returns the drugs with known evidence for a
// disease, in evidence load order.
func (s *MemoryStore) KnownDrugsForDisease(diseaseID string) []types.DrugRecord {
	var out []types.DrugRecord
	for _, drugID := range s.drugsForDisease[diseaseID] {
		if d, ok := s.drugsByID[drugID]; ok {
			out = append(out, d)
		}
	}
	return out
}

// DiseasesForDrug returns the diseases a drug has known evidence for.
func (s *MemoryStore) DiseasesForDrug(drugID string) []types.DiseaseRecord {
	var out []types.DiseaseRecord
	for _, diseaseID := range s.diseasesForDrug[drugID] {
		if d, ok := s.diseasesByID[diseaseID]; ok {
			out = append(out, d)
		}
	}
	return out
}

// GeneAssociationsForDrug returns the gene associations of a drug.
func (s *MemoryStore) GeneAssociationsForDrug(drugID string) []types.DrugGeneAssociation {
	return s.assocsForDrug[drugID]
}

// KnownEvidence returns the evidence text for a direct drug-disease pair,
// if one exists.
func (s *MemoryStore) KnownEvidence(drugID, diseaseID string) (string, bool) {
	ev, ok := s.evidenceByPair[evidenceKey{drugID, diseaseID}]
	return ev, ok
}

// FuzzyMatchDisease resolves a free-text disease query. Strategies apply
// in order, first satisfying rule wins: exact name match, substring
// containment in either direction, then best word-Jaccard similarity at
// or above FuzzyMatchThreshold.
func (s *MemoryStore) FuzzyMatchDisease(query string) (types.DiseaseRecord, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return types.DiseaseRecord{}, false
	}

	if d, ok := s.diseasesByName[query]; ok {
		return d, true
	}

	for _, name := range s.diseaseNameOrder {
		if strings.Contains(name, query) || strings.Contains(query, name) {
			return s.diseasesByName[name], true
		}
	}

	queryWords := wordSet(query)
	var (
		best      types.DiseaseRecord
		bestScore float64
		found     bool
	)
	for _, name := range s.diseaseNameOrder {
		score := jaccard(queryWords, wordSet(name))
		if score > bestScore && score >= FuzzyMatchThreshold {
			bestScore = score
			best = s.diseasesByName[name]
			found = true
		}
	}
	return best, found
}

func wordSet(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(text) {
		words[w] = struct{}{}
	}
	return words
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
