package graph_test

import (
	"testing"

	"github.com/soundprediction/remedigraph/pkg/graph"
	"github.com/soundprediction/remedigraph/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureSource is an in-test EntitySource over record slices.
type fixtureSource struct {
	drugs    []types.DrugRecord
	diseases []types.DiseaseRecord
	evidence []types.DrugDiseaseEvidence
	assocs   []types.DrugGeneAssociation
}

func (f *fixtureSource) AllDrugs() []types.DrugRecord                 { return f.drugs }
func (f *fixtureSource) AllDiseases() []types.DiseaseRecord           { return f.diseases }
func (f *fixtureSource) AllEvidence() []types.DrugDiseaseEvidence     { return f.evidence }
func (f *fixtureSource) AllGeneAssociations() []types.DrugGeneAssociation {
	return f.assocs
}

// diabetesFixture mirrors the canonical repurposing scenario: D1 shares
// gene G1 with D2, and D2 is known to treat Dis1, so D1 becomes a
// structural candidate for Dis1.
func diabetesFixture() *fixtureSource {
	return &fixtureSource{
		drugs: []types.DrugRecord{
			{DrugID: "D1", DrugName: "Metformin", ATC: "A10BA02", IndicationsText: "lowers blood sugar in type 2 diabetes"},
			{DrugID: "D2", DrugName: "Glipizide", ATC: "A10BB07", IndicationsText: "stimulates insulin secretion"},
			{DrugID: "D3", DrugName: "Ibuprofen", ATC: "M01AE01", IndicationsText: "reduces pain and inflammation"},
		},
		diseases: []types.DiseaseRecord{
			{DiseaseID: "Dis1", DiseaseName: "type 2 diabetes", Synonyms: "adult onset diabetes"},
			{DiseaseID: "Dis2", DiseaseName: "osteoarthritis", Synonyms: "degenerative joint disease"},
		},
		evidence: []types.DrugDiseaseEvidence{
			{DrugID: "D2", DiseaseID: "Dis1", Evidence: "approved indication"},
			{DrugID: "D3", DiseaseID: "Dis2", Evidence: "approved indication"},
		},
		assocs: []types.DrugGeneAssociation{
			{DrugID: "D1", GeneSymbol: "G1", Note: "AMPK activation"},
			{DrugID: "D2", GeneSymbol: "G1", Note: "same pathway"},
		},
	}
}

func TestBuild(t *testing.T) {
	g := graph.Build(diabetesFixture(), nil)

	assert.Equal(t, 6, g.NodeCount())
	assert.Len(t, g.DrugNodes(), 3)
	assert.Len(t, g.DiseaseNodes(), 2)
	assert.Len(t, g.GeneNodes(), 1)

	// D2-Dis1, D3-Dis2, D1-G1, D2-G1, plus the propagated Dis1-G1.
	assert.Equal(t, 5, g.EdgeCount())

	t.Run("drug disease edge", func(t *testing.T) {
		e, ok := g.Edge(types.DrugID("D2"), types.DiseaseID("Dis1"))
		require.True(t, ok)
		assert.Equal(t, types.DrugDiseaseEdge, e.Kind)
		assert.Equal(t, graph.DrugDiseaseWeight, e.Weight)
		assert.Equal(t, "approved indication", e.Evidence)
	})

	t.Run("drug gene edge", func(t *testing.T) {
		e, ok := g.Edge(types.DrugID("D1"), types.GeneID("G1"))
		require.True(t, ok)
		assert.Equal(t, types.DrugGeneEdge, e.Kind)
		assert.Equal(t, graph.DrugGeneWeight, e.Weight)
		assert.Equal(t, "AMPK activation", e.Note)
	})

	t.Run("propagated disease gene edge", func(t *testing.T) {
		e, ok := g.Edge(types.DiseaseID("Dis1"), types.GeneID("G1"))
		require.True(t, ok)
		assert.Equal(t, types.DiseaseGenePropagatedEdge, e.Kind)
		assert.Equal(t, graph.DiseaseGenePropagatedWeight, e.Weight)
		assert.Equal(t, types.DrugID("D2"), e.ViaDrug)
	})

	t.Run("edge lookup is order independent", func(t *testing.T) {
		_, ok := g.Edge(types.GeneID("G1"), types.DiseaseID("Dis1"))
		assert.True(t, ok)
	})
}

func TestBuildSkipsDanglingEdges(t *testing.T) {
	src := diabetesFixture()
	src.evidence = append(src.evidence, types.DrugDiseaseEvidence{DrugID: "D99", DiseaseID: "Dis1"})
	src.assocs = append(src.assocs, types.DrugGeneAssociation{DrugID: "D1", GeneSymbol: ""})

	g := graph.Build(src, nil)

	assert.False(t, g.HasNode(types.DrugID("D99")))
	_, ok := g.Edge(types.DrugID("D99"), types.DiseaseID("Dis1"))
	assert.False(t, ok)
	assert.Equal(t, 5, g.EdgeCount())
}

func TestBuildDeduplicatesEdges(t *testing.T) {
	src := diabetesFixture()
	src.evidence = append(src.evidence, types.DrugDiseaseEvidence{DrugID: "D2", DiseaseID: "Dis1", Evidence: "second row"})

	g := graph.Build(src, nil)

	// Later rows overwrite the edge payload without duplicating adjacency.
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, 2, g.Degree(types.DrugID("D2")))

	e, ok := g.Edge(types.DrugID("D2"), types.DiseaseID("Dis1"))
	require.True(t, ok)
	assert.Equal(t, "second row", e.Evidence)
}

func TestPropagationFirstDrugWins(t *testing.T) {
	src := diabetesFixture()
	// A second mediator for the same (Dis1, G1) pair: D3 treats Dis1 and
	// targets G1. D2 comes first in insertion order and must win.
	src.evidence = append(src.evidence, types.DrugDiseaseEvidence{DrugID: "D3", DiseaseID: "Dis1", Evidence: "off-label"})
	src.assocs = append(src.assocs, types.DrugGeneAssociation{DrugID: "D3", GeneSymbol: "G1"})

	g := graph.Build(src, nil)

	e, ok := g.Edge(types.DiseaseID("Dis1"), types.GeneID("G1"))
	require.True(t, ok)
	assert.Equal(t, types.DrugID("D2"), e.ViaDrug)
}

func TestRebuildIsDeterministic(t *testing.T) {
	a := graph.Build(diabetesFixture(), nil)
	b := graph.Build(diabetesFixture(), nil)

	assert.Equal(t, a.NodeCount(), b.NodeCount())
	assert.Equal(t, a.EdgeCount(), b.EdgeCount())

	ea, ok := a.Edge(types.DiseaseID("Dis1"), types.GeneID("G1"))
	require.True(t, ok)
	eb, ok := b.Edge(types.DiseaseID("Dis1"), types.GeneID("G1"))
	require.True(t, ok)
	assert.Equal(t, ea.ViaDrug, eb.ViaDrug)
}

func TestNeighbors(t *testing.T) {
	g := graph.Build(diabetesFixture(), nil)

	assert.ElementsMatch(t,
		[]types.NodeID{types.DiseaseID("Dis1"), types.GeneID("G1")},
		g.Neighbors(types.DrugID("D2")))

	assert.Equal(t,
		[]types.NodeID{types.GeneID("G1")},
		g.NeighborsOfKind(types.DrugID("D2"), types.GeneNodeKind))

	assert.Nil(t, g.Neighbors(types.DrugID("missing")))
	assert.Equal(t, 0, g.Degree(types.DrugID("missing")))
}

func TestBuildEmptySource(t *testing.T) {
	g := graph.Build(&fixtureSource{}, nil)

	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}
