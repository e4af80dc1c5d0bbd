// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// ExampleGraph builds a small undirected network and inspects it.
func ExampleGraph() {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		_ = g.AddVertex(id)
	}
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("A", "C", 2)

	fmt.Println(g.Vertices())
	nbs, _ := g.Neighbors("B")
	fmt.Println(nbs)

	// Edges to unknown vertices are reported rather than dropped.
	err := g.AddEdge("A", "Z", 1)
	fmt.Println(errors.Is(err, core.ErrVertexNotFound))
	// Output:
	// [A B C]
	// [{A 4}]
	// true
}

// ExamplePathWeight validates a vertex sequence and sums its edge weights.
func ExamplePathWeight() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id)
	}
	_ = g.AddEdge("A", "B", 1.5)
	_ = g.AddEdge("B", "C", 2)

	w, err := core.PathWeight(g, []string{"A", "B", "C"})
	fmt.Println(w, err)
	// Output: 3.5 <nil>
}
