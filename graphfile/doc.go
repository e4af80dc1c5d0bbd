// SPDX-License-Identifier: MIT

// Package graphfile reads and writes weighted undirected graphs as TOML.
//
// A file lists vertices, edges and optional shortest-path queries:
//
//	name = "demo"
//	vertices = ["A", "B", "C"]
//
//	[[edge]]
//	from = "A"
//	to = "B"
//	weight = 4.0
//
//	[[query]]
//	from = "A"
//	to = "C"
//
// Every edge endpoint is added as a vertex, so the vertices list only needs
// isolated vertices. An edge without weight gets DefaultWeight. Unknown keys
// are rejected so that typos such as "wieght" do not silently become 1.
package graphfile
