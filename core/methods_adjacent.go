// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
//
// Every accessor hands out copies: callers, including the shortest-path
// engine, never alias the graph's own buckets.

package core

import (
	"fmt"
	"slices"
	"sort"
)

// Neighbors returns the adjacency bucket of id in insertion order.
//
// Behavior highlights:
//   - The returned slice is a copy; mutating it does not affect the graph.
//   - Parallel edges appear once per edge; a self-loop appears once.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if id is unknown.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	nbs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return slices.Clone(nbs), nil
}

// RangeNeighbors calls fn for every adjacency entry of id, in insertion
// order, until fn returns false. It is the allocation-free read-only view
// used by traversal algorithms; fn receives entries by value and must not
// mutate the graph.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound (fn is not called).
//
// Complexity: O(deg(id)).
func (g *Graph) RangeNeighbors(id string, fn func(nb Neighbor) bool) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	nbs, ok := g.adjacency[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	for _, nb := range nbs {
		if !fn(nb) {
			return nil
		}
	}

	return nil
}

// NeighborIDs returns the unique IDs adjacent to id, sorted ascending.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(nbs))
	ids := make([]string, 0, len(nbs))
	for _, nb := range nbs {
		if _, dup := seen[nb.ID]; dup {
			continue
		}
		seen[nb.ID] = struct{}{}
		ids = append(ids, nb.ID)
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a deep copy of the whole adjacency list.
// Isolated vertices map to an empty, non-nil slice.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string][]Neighbor {
	out := make(map[string][]Neighbor, len(g.adjacency))
	for id, nbs := range g.adjacency {
		cp := make([]Neighbor, len(nbs))
		copy(cp, nbs)
		out[id] = cp
	}

	return out
}
