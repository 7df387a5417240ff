package graph

import "github.com/soundprediction/remedigraph/pkg/types"

// Stats summarizes the graph: node and edge counts per kind, density,
// and the number of connected components.
func (g *Graph) Stats() types.GraphStats {
	return types.GraphStats{
		TotalNodes:          len(g.nodes),
		TotalEdges:          len(g.edges),
		DrugNodes:           len(g.drugNodes),
		DiseaseNodes:        len(g.diseaseNodes),
		GeneNodes:           len(g.geneNodes),
		Density:             g.density(),
		ConnectedComponents: g.connectedComponents(),
	}
}

// density is 2E / (N * (N-1)) for an undirected graph; 0 for fewer than
// two nodes.
func (g *Graph) density() float64 {
	n := len(g.nodes)
	if n < 2 {
		return 0
	}
	return 2 * float64(len(g.edges)) / (float64(n) * float64(n-1))
}

func (g *Graph) connectedComponents() int {
	visited := make(map[types.NodeID]bool, len(g.nodes))
	components := 0

	for _, start := range g.order {
		if visited[start] {
			continue
		}
		components++
		queue := []types.NodeID{start}
		visited[start] = true
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, n := range g.adjacency[current] {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
	}
	return components
}
