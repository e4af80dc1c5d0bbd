// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/pqueue"
)

// ShortestPath returns a minimum-weight path between start and end.
//
// The boolean is false when g is nil, when start or end is not a vertex of
// g, or when end is unreachable from start. A query with start == end
// returns the single-vertex path with distance 0.
//
// Options that apply: WithMaxDistance, WithInfEdgeThreshold, WithLogger.
// Source and WithReturnPath are ignored.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (Path, bool) {
	if g == nil || !g.HasVertex(start) || !g.HasVertex(end) {
		return Path{}, false
	}

	cfg := DefaultOptions(start)
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Source = start

	r := newRunner(g, cfg)
	r.init()
	found, err := r.process(end)
	if err != nil || !found {
		r.debug("no path", "from", start, "to", end)
		return Path{}, false
	}

	vertices, ok := Reconstruct(r.prev, start, end)
	if !ok {
		return Path{}, false
	}
	r.debug("path found", "from", start, "to", end, "distance", r.dist[end], "hops", len(vertices)-1)

	return Path{Vertices: vertices, Distance: r.dist[end]}, true
}

// Dijkstra computes shortest distances from Options.Source to every vertex.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (math.Inf(1) if unreachable or
//     beyond MaxDistance).
//   - prev: vertex ID → predecessor on one shortest path ("" for the source
//     and unreachable vertices); nil unless WithReturnPath() is given.
//   - err:  ErrEmptySource, ErrNilGraph or ErrVertexNotFound.
//
// Validation order: Source non-empty, graph non-nil, Source present.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	r := newRunner(g, cfg)
	r.init()
	// An empty target never matches a vertex ID, so the whole reachable
	// component is settled.
	if _, err := r.process(""); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// Reconstruct walks prev from target back to source and returns the path in
// source→target order. The boolean is false if target is not connected to
// source through prev.
//
// Complexity: O(path length).
func Reconstruct(prev map[string]string, source, target string) ([]string, bool) {
	if source == "" || target == "" {
		return nil, false
	}

	path := []string{target}
	// A well-formed predecessor chain is at most len(prev) long; the bound
	// stops a malformed cyclic map from looping forever.
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok || p == "" || len(path) > len(prev) {
			return nil, false
		}
		path = append(path, p)
		cur = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// runner holds the mutable state for a single query.
type runner struct {
	g       *core.Graph           // read-only within a query
	options Options               // resolved configuration
	dist    map[string]float64    // vertex → best known distance from Source
	prev    map[string]string     // vertex → predecessor on the best known path
	settled map[string]bool       // vertex → distance finalized
	pq      *pqueue.Queue[string] // frontier, with lazy decrease-key
	logger  *log.Logger
}

func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.VertexCount()

	return &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, n),
		prev:    make(map[string]string, n),
		settled: make(map[string]bool, n),
		pq:      pqueue.New[string](n),
		logger:  cfg.Logger,
	}
}

// init seeds every vertex: dist = +Inf (0 for the source), no predecessor,
// and one queue entry per vertex in sorted vertex order.
func (r *runner) init() {
	inf := math.Inf(1)
	for _, v := range r.g.Vertices() {
		d := inf
		if v == r.options.Source {
			d = 0
		}
		r.dist[v] = d
		r.prev[v] = ""
		r.pq.Enqueue(v, d)
	}
}

// process runs the main loop until target is settled (true) or no
// reachable vertex is left (false).
func (r *runner) process(target string) (bool, error) {
	for {
		item, ok := r.pq.Dequeue()
		if !ok {
			return false, nil
		}
		u, d := item.Value, item.Priority

		// Stale entry left behind by an earlier improvement.
		if r.settled[u] {
			continue
		}

		// Every remaining entry is at least as far; nothing reachable is left.
		if math.IsInf(d, 1) || d > r.options.MaxDistance {
			return false, nil
		}

		r.settled[u] = true
		r.debug("settle", "vertex", u, "dist", d)

		if u == target {
			return true, nil
		}
		if err := r.relax(u); err != nil {
			return false, err
		}
	}
}

// relax tries to improve every neighbour of the settled vertex u.
func (r *runner) relax(u string) error {
	du := r.dist[u]

	err := r.g.RangeNeighbors(u, func(nb core.Neighbor) bool {
		if r.settled[nb.ID] {
			return true
		}
		if nb.Weight >= r.options.InfEdgeThreshold {
			return true
		}

		cand := du + nb.Weight
		if cand > r.options.MaxDistance || cand >= r.dist[nb.ID] {
			return true
		}

		r.dist[nb.ID] = cand
		r.prev[nb.ID] = u
		r.pq.Enqueue(nb.ID, cand)
		r.debug("relax", "from", u, "to", nb.ID, "dist", cand)

		return true
	})
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	return nil
}

func (r *runner) debug(msg string, keyvals ...interface{}) {
	if r.logger == nil {
		return
	}
	r.logger.Debug(msg, keyvals...)
}
