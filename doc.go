// SPDX-License-Identifier: MIT

// Package lvroute is an in-memory shortest-path engine for undirected,
// non-negatively weighted graphs.
//
// It is organized as:
//
//	pqueue/          — binary min-heap priority queue, generic over the payload
//	core/            — Graph with string vertex IDs and float64 edge weights
//	dijkstra/        — ShortestPath (point to point) and Dijkstra (single source)
//	builder/         — deterministic fixture graphs: path, cycle, star, grid, complete, random
//	graphfile/       — TOML graph files with stored queries
//	render/          — DOT export with path highlighting, SVG via Graphviz
//	internal/server/ — read-only JSON query API
//	cmd/lvroute/     — command-line tool
//
// Quick example:
//
//	g := core.NewGraph()
//	// AddVertex for every ID, then AddEdge("A", "C", 2) ...
//	p, ok := dijkstra.ShortestPath(g, "A", "E")
//	// p.Vertices == [A C D F E], p.Distance == 6
//
// Unreachable targets and unknown endpoints are a normal "no path" result
// (ok == false), never an error.
//
//	go install github.com/katalvlaran/lvroute/cmd/lvroute@latest
package lvroute
