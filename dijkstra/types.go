// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
	"strings"

	"github.com/charmbracelet/log"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero, a negative
	// value or NaN, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Path is the result of a successful ShortestPath query.
type Path struct {
	// Vertices lists the path from start to end inclusive.
	Vertices []string

	// Distance is the sum of the edge weights along Vertices.
	Distance float64
}

// Hops returns the number of edges on the path.
func (p Path) Hops() int {
	if len(p.Vertices) == 0 {
		return 0
	}

	return len(p.Vertices) - 1
}

// String renders the path as "A -> C -> D".
func (p Path) String() string { return strings.Join(p.Vertices, " -> ") }

// Options configures the behavior of the algorithm.
//
// Source           – starting vertex ID for Dijkstra.
// ReturnPath       – if true, Dijkstra returns the predecessor map; otherwise nil.
// MaxDistance      – vertices whose distance would exceed this value are not settled.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
//
// Logger           – receives debug traces; nil disables tracing.
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	Logger           *log.Logger
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// Source sets the origin vertex for Dijkstra.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables the predecessor map in Dijkstra's result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold makes every edge with weight ≥ threshold impassable.
// Zero, negative or NaN values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger routes debug traces of the settle/relax loop to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options initialized with defaults for source:
// no predecessor map, no distance cap, no impassable edges, no logging.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
