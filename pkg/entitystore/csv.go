package entitystore

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/soundprediction/remedigraph/pkg/types"
)

// Seed file names expected under the data directory.
const (
	DrugsFile       = "seed_drugs.csv"
	DiseasesFile    = "seed_diseases.csv"
	DrugDiseaseFile = "seed_drug_disease.csv"
	DrugGeneFile    = "seed_drug_gene.csv"
)

// LoadDir reads the four seed CSV files from dir, applies the cleaning
// rules, and returns a populated MemoryStore. All four files must exist.
//
// Cleaning: missing values become empty strings, and free-text columns
// are lowercased. Identifier columns (anything ending in _id) and ATC
// codes keep their original case.
func LoadDir(dir string, logger *slog.Logger) (*MemoryStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	drugRows, err := readCSV(filepath.Join(dir, DrugsFile))
	if err != nil {
		return nil, err
	}
	diseaseRows, err := readCSV(filepath.Join(dir, DiseasesFile))
	if err != nil {
		return nil, err
	}
	evidenceRows, err := readCSV(filepath.Join(dir, DrugDiseaseFile))
	if err != nil {
		return nil, err
	}
	assocRows, err := readCSV(filepath.Join(dir, DrugGeneFile))
	if err != nil {
		return nil, err
	}

	drugs := make([]types.DrugRecord, 0, len(drugRows))
	for _, row := range drugRows {
		drugs = append(drugs, types.DrugRecord{
			DrugID:          row["drug_id"],
			DrugName:        cleanText(row["drug_name"]),
			ATC:             row["atc"],
			IndicationsText: cleanText(row["indications_text"]),
		})
	}

	diseases := make([]types.DiseaseRecord, 0, len(diseaseRows))
	for _, row := range diseaseRows {
		diseases = append(diseases, types.DiseaseRecord{
			DiseaseID:   row["disease_id"],
			DiseaseName: cleanText(row["disease_name"]),
			Synonyms:    cleanText(row["synonyms"]),
		})
	}

	evidence := make([]types.DrugDiseaseEvidence, 0, len(evidenceRows))
	for _, row := range evidenceRows {
		evidence = append(evidence, types.DrugDiseaseEvidence{
			DrugID:    row["drug_id"],
			DiseaseID: row["disease_id"],
			Evidence:  cleanText(row["evidence"]),
		})
	}

	assocs := make([]types.DrugGeneAssociation, 0, len(assocRows))
	for _, row := range assocRows {
		assocs = append(assocs, types.DrugGeneAssociation{
			DrugID:     row["drug_id"],
			GeneSymbol: cleanText(row["gene_symbol"]),
			Note:       cleanText(row["note"]),
		})
	}

	logger.Info("seed data loaded",
		"dir", dir,
		"drugs", len(drugs),
		"diseases", len(diseases),
		"evidence", len(evidence),
		"gene_associations", len(assocs))

	return New(drugs, diseases, evidence, assocs), nil
}

// readCSV reads a headered CSV file into one map per row, keyed by
// column name. Short rows are padded with empty strings.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[strings.TrimSpace(col)] = record[i]
			} else {
				row[strings.TrimSpace(col)] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func cleanText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
