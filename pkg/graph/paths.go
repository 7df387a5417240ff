package graph

import "github.com/soundprediction/remedigraph/pkg/types"

// DefaultMaxPathLength bounds path search to three hops.
const DefaultMaxPathLength = 3

// DefaultMaxPaths caps how many fallback paths are returned.
const DefaultMaxPaths = 3

// Paths returns evidence paths between two nodes, each path a node
// sequence of at most maxHops edges.
//
// The direct shortest path is returned as the sole path when it fits the
// bound. Otherwise up to maxPaths simple paths within the bound are
// enumerated; they come back in depth-bounded discovery order, which is
// best-effort and carries no quality ranking. Disconnected or absent
// nodes yield an empty result, not an error.
func (g *Graph) Paths(from, to types.NodeID, maxHops, maxPaths int) [][]types.NodeID {
	if maxHops <= 0 {
		maxHops = DefaultMaxPathLength
	}
	if maxPaths <= 0 {
		maxPaths = DefaultMaxPaths
	}
	if !g.HasNode(from) || !g.HasNode(to) {
		return nil
	}

	if shortest := g.shortestPath(from, to); shortest != nil && len(shortest)-1 <= maxHops {
		return [][]types.NodeID{shortest}
	}

	return g.simplePaths(from, to, maxHops, maxPaths)
}

// shortestPath runs a breadth-first search and returns the node sequence
// from `from` to `to`, or nil when disconnected.
func (g *Graph) shortestPath(from, to types.NodeID) []types.NodeID {
	if from == to {
		return []types.NodeID{from}
	}

	parent := map[types.NodeID]types.NodeID{from: from}
	queue := []types.NodeID{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range g.adjacency[current] {
			if _, seen := parent[n]; seen {
				continue
			}
			parent[n] = current
			if n == to {
				return rebuildPath(parent, from, to)
			}
			queue = append(queue, n)
		}
	}
	return nil
}

func rebuildPath(parent map[types.NodeID]types.NodeID, from, to types.NodeID) []types.NodeID {
	var reversed []types.NodeID
	for at := to; ; at = parent[at] {
		reversed = append(reversed, at)
		if at == from {
			break
		}
	}
	path := make([]types.NodeID, len(reversed))
	for i, n := range reversed {
		path[len(reversed)-1-i] = n
	}
	return path
}

// simplePaths enumerates simple paths of at most maxHops edges with a
// depth-bounded search over insertion-ordered adjacency, stopping after
// maxPaths results.
func (g *Graph) simplePaths(from, to types.NodeID, maxHops, maxPaths int) [][]types.NodeID {
	var (
		found   [][]types.NodeID
		visited = map[types.NodeID]bool{from: true}
		stack   = []types.NodeID{from}
	)

	var walk func(current types.NodeID)
	walk = func(current types.NodeID) {
		if len(found) >= maxPaths {
			return
		}
		if current == to {
			path := make([]types.NodeID, len(stack))
			copy(path, stack)
			found = append(found, path)
			return
		}
		if len(stack)-1 >= maxHops {
			return
		}
		for _, n := range g.adjacency[current] {
			if visited[n] {
				continue
			}
			visited[n] = true
			stack = append(stack, n)
			walk(n)
			stack = stack[:len(stack)-1]
			visited[n] = false
			if len(found) >= maxPaths {
				return
			}
		}
	}
	walk(from)

	return found
}
