// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// undirected, non-negatively weighted core.Graph.
//
// Overview:
//
//   - ShortestPath(g, start, end) returns the minimum-weight vertex sequence
//     from start to end, or false when end is unreachable or either endpoint
//     is unknown. "No path" is a normal outcome, not an error.
//   - Dijkstra(g, Source(s), ...) computes distances from s to every vertex,
//     optionally with the predecessor map for path reconstruction.
//
// Algorithm:
//
//  1. dist[v] = +∞ for every vertex, dist[start] = 0, prev[v] = "" (none).
//     Every vertex is enqueued into a fresh pqueue.Queue with dist[v] as
//     priority, in Vertices() order.
//  2. Repeatedly dequeue the minimum entry u:
//     - an already settled u is a stale entry and is skipped;
//     - a +∞ priority means everything left is unreachable, so the loop stops;
//     - otherwise u is settled. If u is the target, the path is rebuilt from
//     prev and returned. Else each neighbour (v, w) is relaxed:
//     dist[u]+w < dist[v] updates dist[v], prev[v] and enqueues (v, dist[v]).
//  3. An exhausted queue without settling the target means "no path".
//
// Vertex status therefore moves unvisited → frontier → settled, and each
// vertex is settled at most once.
//
// Lazy decrease-key:
//
//	Improving a tentative distance pushes a new entry instead of updating the
//	old one. The outdated entry stays in the heap and is skipped when popped.
//	This keeps the queue a plain binary heap at the price of O(E) extra
//	entries, with the same O((V + E) log V) bound.
//
// Determinism:
//
//	For the same graph, endpoints and options the returned path and cost are
//	always identical. When several shortest paths exist only the total cost is
//	part of the contract; which path is returned depends on heap tie-breaking.
//
// Options:
//
//   - Source(id): origin for Dijkstra (ShortestPath takes start directly).
//   - WithReturnPath(): Dijkstra also returns the predecessor map.
//   - WithMaxDistance(d): vertices farther than d are never settled.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable.
//   - WithLogger(l): debug traces of settle/relax steps to a charmbracelet logger.
//
// Errors (Dijkstra only):
//
//   - ErrEmptySource, ErrNilGraph, ErrVertexNotFound.
//   - ErrBadMaxDistance, ErrBadInfThreshold are raised as panics by the option
//     constructors, since they signal programmer error.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (distance/predecessor maps plus stale heap entries)
//
// Thread safety:
//
//	Queries only read the graph and keep all state in per-call maps, so many
//	queries may run concurrently on a graph that is no longer being mutated.
//	Mutating the graph during a query is undefined behaviour.
package dijkstra
