// SPDX-License-Identifier: MIT

package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/lvroute/core"
)

// BenchmarkAddEdge_Chain measures building a chain of N vertices.
func BenchmarkAddEdge_Chain(b *testing.B) {
	const N = 10000
	ids := make([]string, N)
	for i := range ids {
		ids[i] = "v" + strconv.Itoa(i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := core.NewGraph()
		for _, id := range ids {
			_ = g.AddVertex(id)
		}
		for j := 1; j < N; j++ {
			_ = g.AddEdge(ids[j-1], ids[j], 1)
		}
	}
}

// BenchmarkRangeNeighbors measures the read-only adjacency view on a hub.
func BenchmarkRangeNeighbors(b *testing.B) {
	const N = 1000
	g := core.NewGraph()
	_ = g.AddVertex("hub")
	for i := 0; i < N; i++ {
		id := "leaf" + strconv.Itoa(i)
		_ = g.AddVertex(id)
		_ = g.AddEdge("hub", id, float64(i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum float64
		_ = g.RangeNeighbors("hub", func(nb core.Neighbor) bool {
			sum += nb.Weight
			return true
		})
	}
}
