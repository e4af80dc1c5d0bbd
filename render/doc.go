// SPDX-License-Identifier: MIT

// Package render draws a core.Graph as Graphviz DOT and, through
// [github.com/goccy/go-graphviz], as SVG.
//
// The graph is emitted as an undirected "graph" with edge weights as labels.
// When Options.Path is set, its vertices and the edges between consecutive
// path vertices are highlighted, which is how the CLI shows a ShortestPath
// result.
//
// go-graphviz runs Graphviz compiled to WebAssembly, so RenderSVG needs no
// system libraries.
package render
