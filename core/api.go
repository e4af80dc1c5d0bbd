// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and path utilities on top of the core types.
// Policy:
//   - No mutation here.
//   - Every exported function documents complexity.

package core

import "fmt"

// Looped reports whether self-loops are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool { return g.allowLoops }

// Stats produces a read-only snapshot of configuration and catalog sizes.
//
// Implementation:
//   - Stage 1: Copy counters and the loop policy.
//   - Stage 2: Scan adjacency buckets once to count isolated vertices.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		VertexCount: len(g.adjacency),
		EdgeCount:   len(g.edges),
		TotalWeight: g.totalWeight,
		AllowsLoops: g.allowLoops,
	}
	for _, nbs := range g.adjacency {
		if len(nbs) == 0 {
			stats.IsolatedCount++
		}
	}

	return stats
}

// PathWeight validates path against g and returns its total weight.
//
// Every vertex must exist and every consecutive pair must be adjacent; when
// parallel edges exist the lightest one is used. A single-vertex path weighs
// 0 and an empty path is rejected.
//
// Errors:
//   - ErrEmptyVertexID for an empty path.
//   - ErrVertexNotFound for an unknown vertex.
//   - ErrEdgeNotFound for a non-adjacent consecutive pair.
//
// Complexity: O(Σ deg(path[i])).
func PathWeight(g *Graph, path []string) (float64, error) {
	if len(path) == 0 {
		return 0, fmt.Errorf("PathWeight: empty path: %w", ErrEmptyVertexID)
	}
	for _, id := range path {
		if !g.HasVertex(id) {
			return 0, fmt.Errorf("PathWeight: %w: %q", ErrVertexNotFound, id)
		}
	}

	var total float64
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("PathWeight: %s-%s: %w", path[i-1], path[i], ErrEdgeNotFound)
		}
		total += w
	}

	return total, nil
}
