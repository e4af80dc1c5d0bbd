// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/lvroute/core"
)

const (
	highlightColor = "#d9480f"
	highlightFill  = "#ffe8cc"
)

// Options configures DOT output.
type Options struct {
	// Title is shown above the drawing when non-empty.
	Title string

	// Path lists vertices to highlight, in path order. Edges between
	// consecutive entries are highlighted too.
	Path []string
}

type pair struct{ a, b string }

func unordered(a, b string) pair {
	if b < a {
		a, b = b, a
	}
	return pair{a, b}
}

// ToDOT converts g to Graphviz DOT. Vertices are emitted in sorted order and
// edges in insertion order, so equal graphs produce equal output.
func ToDOT(g *core.Graph, opts Options) string {
	onPath := make(map[string]bool, len(opts.Path))
	pathEdges := make(map[pair]bool, len(opts.Path))
	for i, v := range opts.Path {
		onPath[v] = true
		if i > 0 {
			pathEdges[unordered(opts.Path[i-1], v)] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=11];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		if onPath[v] {
			fmt.Fprintf(&buf, "  %q [color=%q, fillcolor=%q, penwidth=2];\n", v, highlightColor, highlightFill)
			continue
		}
		fmt.Fprintf(&buf, "  %q;\n", v)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		label := strconv.FormatFloat(e.Weight, 'g', -1, 64)
		if pathEdges[unordered(e.From, e.To)] {
			fmt.Fprintf(&buf, "  %q -- %q [label=%q, color=%q, fontcolor=%q, penwidth=3];\n",
				e.From, e.To, label, highlightColor, highlightColor)
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q [label=%q];\n", e.From, e.To, label)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT document to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
