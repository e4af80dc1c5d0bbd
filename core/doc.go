// SPDX-License-Identifier: MIT

// Package core provides the undirected, non-negatively weighted Graph that
// the shortest-path engine runs on.
//
// The Graph G = (V,E) is stored as an adjacency list:
//
//	adjacency[vertexID] = []Neighbor{{ID, Weight}, ...}   // insertion order
//
// Every edge is symmetric. AddEdge(a, b, w) appends (b,w) to a's list and
// (a,w) to b's list; there is no directed variant. Repeated AddEdge calls
// between the same endpoints append again (parallel edges); algorithms relax
// each of them and therefore effectively use the lightest one.
//
// Construction contract:
//
//   - AddVertex(id) is idempotent; the empty ID is rejected (ErrEmptyVertexID).
//   - AddEdge(a, b, w) requires both endpoints to exist. A missing endpoint is
//     reported (ErrVertexNotFound) instead of silently dropping the edge.
//   - Weights must be finite and ≥ 0 (ErrNegativeWeight, ErrBadWeight).
//   - Self-loops are rejected unless the graph was built WithLoops().
//   - A failed call leaves the graph unchanged.
//
// Query surface:
//
//	HasVertex(id) bool                     // O(1)
//	HasEdge(a, b) bool                     // O(deg(a))
//	Weight(a, b) (float64, bool)           // O(deg(a)), lightest parallel edge
//	Neighbors(id) ([]Neighbor, error)      // O(deg), returns a copy
//	NeighborIDs(id) ([]string, error)      // O(deg·log deg), unique, sorted
//	Vertices() []string                    // O(V·log V), sorted
//	Edges() []Edge                         // O(E), insertion order, each edge once
//	AdjacencyList() map[string][]Neighbor  // O(V+E), deep copy
//	Degree(id) (int, error)                // O(1)
//	Stats() GraphStats                     // O(E)
//	Clone() *Graph                         // O(V+E)
//	PathWeight(g, path) (float64, error)   // O(Σ deg), validates adjacency
//
// Determinism:
//
//	Vertices() is sorted lexicographically ascending and Neighbors() keeps
//	insertion order, so algorithms that enumerate through them produce
//	reproducible output for the same construction sequence.
//
// Concurrency:
//
//	Graph has no internal locks. It assumes a single writer, and no writes
//	while any query runs. Concurrent read-only use (e.g. many shortest-path
//	queries on a fully built graph) is safe because no accessor mutates state.
package core
