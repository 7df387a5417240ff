package graph

import (
	"math"

	"github.com/soundprediction/remedigraph/pkg/types"
)

// LinkPrediction computes structural affinity scores between two nodes,
// typically a drug and a disease. When either node is absent the scores
// are all zero; missing-node queries degrade, they do not fail.
//
// Adamic-Adar sums 1/log(degree(n)) over shared neighbors n. Shared
// neighbors with degree <= 1 would divide by log(1)=0 (or a negative
// log), so they contribute zero.
func (g *Graph) LinkPrediction(a, b types.NodeID) types.LinkScores {
	if !g.HasNode(a) || !g.HasNode(b) {
		return types.LinkScores{}
	}

	shared := g.commonNeighbors(a, b)

	var adamicAdar float64
	for _, n := range shared {
		if deg := g.Degree(n); deg > 1 {
			adamicAdar += 1.0 / math.Log(float64(deg))
		}
	}

	minDegree := g.Degree(a)
	if d := g.Degree(b); d < minDegree {
		minDegree = d
	}
	if minDegree < 1 {
		minDegree = 1
	}

	return types.LinkScores{
		AdamicAdar:                adamicAdar,
		CommonNeighbors:           float64(len(shared)),
		NormalizedCommonNeighbors: float64(len(shared)) / float64(minDegree),
	}
}

// commonNeighbors returns the shared neighbors of a and b, in a's
// adjacency order.
func (g *Graph) commonNeighbors(a, b types.NodeID) []types.NodeID {
	bNeighbors := make(map[types.NodeID]struct{}, g.Degree(b))
	for _, n := range g.adjacency[b] {
		bNeighbors[n] = struct{}{}
	}

	var shared []types.NodeID
	for _, n := range g.adjacency[a] {
		if _, ok := bNeighbors[n]; ok {
			shared = append(shared, n)
		}
	}
	return shared
}
