// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.

package core

// CloneEmpty returns a new Graph with the same configuration and vertices,
// but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	clone := &Graph{
		allowLoops: g.allowLoops,
		adjacency:  make(map[string][]Neighbor, len(g.adjacency)),
	}
	for id := range g.adjacency {
		clone.adjacency[id] = nil
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and
// adjacency order. Mutating the clone never affects g and vice versa.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		allowLoops:  g.allowLoops,
		adjacency:   g.AdjacencyList(),
		edges:       g.Edges(),
		totalWeight: g.totalWeight,
	}
	// Keep isolated vertices nil-bucketed like AddVertex does.
	for id, nbs := range clone.adjacency {
		if len(nbs) == 0 {
			clone.adjacency[id] = nil
		}
	}

	return clone
}
