// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Neighbor, Edge, GraphOption, sentinel errors and NewGraph.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	// AddEdge wraps it with the offending endpoint.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates two vertices expected to be adjacent are not.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be a finite number")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Neighbor is one adjacency-list entry: the vertex on the other side of an
// edge and the edge's weight.
type Neighbor struct {
	ID     string
	Weight float64
}

// Edge is an undirected weighted edge as it was inserted. From and To only
// record the argument order of AddEdge; traversal works both ways.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected, non-negatively weighted graph stored as an
// adjacency list. Create it with NewGraph; the zero value is not usable.
type Graph struct {
	allowLoops bool

	// adjacency[id] lists (neighbor, weight) pairs in insertion order.
	// A key exists for every vertex, even an isolated one.
	adjacency map[string][]Neighbor

	// edges is the catalog of inserted edges, each undirected edge once.
	edges []Edge

	totalWeight float64
}

// NewGraph creates an empty Graph. By default self-loops are rejected.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adjacency: make(map[string][]Neighbor)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of catalog sizes and configuration.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	IsolatedCount int     // vertices with no incident edge
	TotalWeight   float64 // sum of all edge weights, each edge once
	AllowsLoops   bool
}
