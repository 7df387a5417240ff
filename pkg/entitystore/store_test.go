package entitystore_test

import (
	"testing"

	"github.com/soundprediction/remedigraph/pkg/entitystore"
	"github.com/soundprediction/remedigraph/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureStore() *entitystore.MemoryStore {
	return entitystore.New(
		[]types.DrugRecord{
			{DrugID: "D1", DrugName: "Metformin", ATC: "A10BA02", IndicationsText: "lowers blood sugar in type 2 diabetes"},
			{DrugID: "D2", DrugName: "Glipizide", ATC: "A10BB07", IndicationsText: "stimulates insulin secretion"},
		},
		[]types.DiseaseRecord{
			{DiseaseID: "Dis1", DiseaseName: "type 2 diabetes", Synonyms: "adult onset diabetes"},
			{DiseaseID: "Dis2", DiseaseName: "chronic kidney disease", Synonyms: "renal failure"},
		},
		[]types.DrugDiseaseEvidence{
			{DrugID: "D2", DiseaseID: "Dis1", Evidence: "approved indication"},
		},
		[]types.DrugGeneAssociation{
			{DrugID: "D1", GeneSymbol: "G1", Note: "ampk activation"},
		},
	)
}

func TestLookups(t *testing.T) {
	s := fixtureStore()

	t.Run("drug by id", func(t *testing.T) {
		d, ok := s.DrugByID("D1")
		require.True(t, ok)
		assert.Equal(t, "Metformin", d.DrugName)

		_, ok = s.DrugByID("missing")
		assert.False(t, ok)
	})

	t.Run("drug by name is case insensitive", func(t *testing.T) {
		d, ok := s.DrugByName("metformin")
		require.True(t, ok)
		assert.Equal(t, "D1", d.DrugID)
	})

	t.Run("disease by id", func(t *testing.T) {
		d, ok := s.DiseaseByID("Dis2")
		require.True(t, ok)
		assert.Equal(t, "chronic kidney disease", d.DiseaseName)
	})

	t.Run("disease by name is case insensitive", func(t *testing.T) {
		d, ok := s.DiseaseByName("Type 2 Diabetes")
		require.True(t, ok)
		assert.Equal(t, "Dis1", d.DiseaseID)
	})
}

func TestRelationLookups(t *testing.T) {
	s := fixtureStore()

	drugs := s.KnownDrugsForDisease("Dis1")
	require.Len(t, drugs, 1)
	assert.Equal(t, "D2", drugs[0].DrugID)

	diseases := s.DiseasesForDrug("D2")
	require.Len(t, diseases, 1)
	assert.Equal(t, "Dis1", diseases[0].DiseaseID)

	assocs := s.GeneAssociationsForDrug("D1")
	require.Len(t, assocs, 1)
	assert.Equal(t, "G1", assocs[0].GeneSymbol)

	assert.Empty(t, s.KnownDrugsForDisease("Dis2"))
	assert.Empty(t, s.GeneAssociationsForDrug("D2"))
}

func TestKnownEvidence(t *testing.T) {
	s := fixtureStore()

	ev, ok := s.KnownEvidence("D2", "Dis1")
	require.True(t, ok)
	assert.Equal(t, "approved indication", ev)

	_, ok = s.KnownEvidence("D1", "Dis1")
	assert.False(t, ok)
}

func TestFuzzyMatchDisease(t *testing.T) {
	s := fixtureStore()

	t.Run("exact match", func(t *testing.T) {
		d, ok := s.FuzzyMatchDisease("type 2 diabetes")
		require.True(t, ok)
		assert.Equal(t, "Dis1", d.DiseaseID)
	})

	t.Run("exact match ignores case and whitespace", func(t *testing.T) {
		d, ok := s.FuzzyMatchDisease("  Type 2 Diabetes ")
		require.True(t, ok)
		assert.Equal(t, "Dis1", d.DiseaseID)
	})

	t.Run("query contained in name", func(t *testing.T) {
		d, ok := s.FuzzyMatchDisease("diabetes")
		require.True(t, ok)
		assert.Equal(t, "Dis1", d.DiseaseID)
	})

	t.Run("name contained in query", func(t *testing.T) {
		d, ok := s.FuzzyMatchDisease("my type 2 diabetes diagnosis")
		require.True(t, ok)
		assert.Equal(t, "Dis1", d.DiseaseID)
	})

	t.Run("word overlap", func(t *testing.T) {
		// Shares "kidney" and "disease" with "chronic kidney disease":
		// Jaccard 2/4 = 0.5, above the threshold.
		d, ok := s.FuzzyMatchDisease("kidney disease condition")
		require.True(t, ok)
		assert.Equal(t, "Dis2", d.DiseaseID)
	})

	t.Run("below threshold", func(t *testing.T) {
		_, ok := s.FuzzyMatchDisease("acute lymphoblastic leukemia")
		assert.False(t, ok)
	})

	t.Run("empty query", func(t *testing.T) {
		_, ok := s.FuzzyMatchDisease("   ")
		assert.False(t, ok)
	})
}
