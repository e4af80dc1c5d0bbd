// SPDX-License-Identifier: MIT

package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvroute/core"
)

// DefaultWeight is used for an edge whose weight key is omitted.
const DefaultWeight = 1.0

var (
	// ErrNoVertices indicates a file that declares neither vertices nor edges.
	ErrNoVertices = errors.New("graphfile: no vertices")

	// ErrBadEdge indicates an edge the graph rejected: an empty endpoint,
	// a negative or non-finite weight, or a loop.
	ErrBadEdge = errors.New("graphfile: bad edge")

	// ErrUnknownKey indicates keys in the document that no field decodes.
	ErrUnknownKey = errors.New("graphfile: unknown key")
)

// File is the decoded form of a graph document.
type File struct {
	Name     string   `toml:"name,omitempty"`
	Loops    bool     `toml:"loops,omitempty"`
	Vertices []string `toml:"vertices"`
	Edges    []Edge   `toml:"edge,omitempty"`
	Queries  []Query  `toml:"query,omitempty"`
}

// Edge is one [[edge]] table. A nil Weight means DefaultWeight.
type Edge struct {
	From   string   `toml:"from"`
	To     string   `toml:"to"`
	Weight *float64 `toml:"weight,omitempty"`
}

// Query is one [[query]] table: a shortest-path request stored with the graph.
type Query struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// weight resolves the optional weight.
func (e Edge) weight() float64 {
	if e.Weight == nil {
		return DefaultWeight
	}

	return *e.Weight
}

// Parse decodes a TOML document.
func Parse(data []byte) (*File, error) {
	var f File
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	return &f, nil
}

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Graph builds a core.Graph from f. Listed vertices are added first, then
// every edge endpoint in edge order, then the edges themselves.
func (f *File) Graph() (*core.Graph, error) {
	var opts []core.GraphOption
	if f.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for _, v := range f.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("graphfile: vertex %q: %w", v, err)
		}
	}
	for i, e := range f.Edges {
		for _, v := range []string{e.From, e.To} {
			if err := g.AddVertex(v); err != nil {
				return nil, fmt.Errorf("graphfile: edge #%d: %w: %w", i, ErrBadEdge, err)
			}
		}
	}
	if g.VertexCount() == 0 {
		return nil, ErrNoVertices
	}

	for i, e := range f.Edges {
		if err := g.AddEdge(e.From, e.To, e.weight()); err != nil {
			return nil, fmt.Errorf("graphfile: edge #%d %s-%s: %w: %w", i, e.From, e.To, ErrBadEdge, err)
		}
	}

	return g, nil
}

// FromGraph snapshots g as a File: sorted vertices and edges in insertion order.
func FromGraph(name string, g *core.Graph) *File {
	f := &File{
		Name:     name,
		Loops:    g.Looped(),
		Vertices: g.Vertices(),
	}
	for _, e := range g.Edges() {
		w := e.Weight
		f.Edges = append(f.Edges, Edge{From: e.From, To: e.To, Weight: &w})
	}

	return f
}

// Encode writes f as TOML.
func (f *File) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(f)
}

// Save writes f to path, replacing any existing file.
func Save(path string, f *File) error {
	var buf bytes.Buffer
	if err := f.Encode(&buf); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}
