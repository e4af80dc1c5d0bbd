// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
//
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Adjacency buckets keep insertion order.
//
// Policy:
//   - AddEdge validates everything before touching any bucket, so a failed
//     call never leaves a half-inserted (asymmetric) edge behind.

package core

import (
	"fmt"
	"math"
)

// AddEdge inserts the undirected edge {a, b} with the given weight.
//
// Steps:
//  1. Validate IDs (ErrEmptyVertexID) and weight (ErrBadWeight, ErrNegativeWeight).
//  2. Require both endpoints to exist (ErrVertexNotFound, wrapped with the ID).
//  3. Reject a == b unless WithLoops() (ErrLoopNotAllowed).
//  4. Append (b,w) to a's bucket and (a,w) to b's bucket; a loop is recorded once.
//  5. Record the edge in the catalog.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, weight float64) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if err := validateWeight(weight); err != nil {
		return fmt.Errorf("AddEdge(%s, %s): %w", a, b, err)
	}
	if _, ok := g.adjacency[a]; !ok {
		return fmt.Errorf("AddEdge(%s, %s): %w: %q", a, b, ErrVertexNotFound, a)
	}
	if _, ok := g.adjacency[b]; !ok {
		return fmt.Errorf("AddEdge(%s, %s): %w: %q", a, b, ErrVertexNotFound, b)
	}
	if a == b && !g.allowLoops {
		return fmt.Errorf("AddEdge(%s, %s): %w", a, b, ErrLoopNotAllowed)
	}

	g.adjacency[a] = append(g.adjacency[a], Neighbor{ID: b, Weight: weight})
	if a != b {
		g.adjacency[b] = append(g.adjacency[b], Neighbor{ID: a, Weight: weight})
	}
	g.edges = append(g.edges, Edge{From: a, To: b, Weight: weight})
	g.totalWeight += weight

	return nil
}

// validateWeight accepts finite, non-negative weights only.
func validateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v", ErrBadWeight, w)
	}
	if w < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeWeight, w)
	}

	return nil
}

// HasEdge reports whether at least one edge connects a and b (in either
// argument order). Complexity: O(deg(a)).
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.Weight(a, b)

	return ok
}

// Weight returns the weight of the lightest edge between a and b.
// The boolean is false if the vertices are not adjacent or do not exist.
// Complexity: O(deg(a)).
func (g *Graph) Weight(a, b string) (float64, bool) {
	best, found := math.Inf(1), false
	for _, nb := range g.adjacency[a] {
		if nb.ID == b && nb.Weight < best {
			best, found = nb.Weight, true
		}
	}
	if !found {
		return 0, false
	}

	return best, true
}

// Edges returns a copy of the edge catalog in insertion order. Each
// undirected edge appears exactly once.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E|, counting parallel edges separately. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }
