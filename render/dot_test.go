// SPDX-License-Identifier: MIT

package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/render"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2.5))
	require.NoError(t, g.AddEdge("A", "C", 5))

	return g
}

func TestToDOT_Plain(t *testing.T) {
	dot := render.ToDOT(triangle(t), render.Options{})

	assert.True(t, strings.HasPrefix(dot, "graph G {\n"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `"D";`, "isolated vertices are drawn")
	assert.Contains(t, dot, `"A" -- "B" [label="1"];`)
	assert.Contains(t, dot, `"B" -- "C" [label="2.5"];`)
	assert.NotContains(t, dot, "->")
	assert.NotContains(t, dot, "penwidth")
	assert.NotContains(t, dot, "labelloc")
}

func TestToDOT_HighlightsPath(t *testing.T) {
	dot := render.ToDOT(triangle(t), render.Options{Title: "A to C", Path: []string{"C", "B", "A"}})

	assert.Contains(t, dot, `label="A to C";`)
	assert.Contains(t, dot, `"A" [color="#d9480f"`)
	assert.Contains(t, dot, `"C" [color="#d9480f"`)
	assert.Contains(t, dot, `"A" -- "B" [label="1", color="#d9480f"`, "edge direction does not matter")
	assert.Contains(t, dot, `"B" -- "C" [label="2.5", color="#d9480f"`)
	assert.Contains(t, dot, `"A" -- "C" [label="5"];`, "non-path edge stays plain")
	assert.Contains(t, dot, `"D";`)
}

func TestToDOT_Deterministic(t *testing.T) {
	g := triangle(t)
	assert.Equal(t, render.ToDOT(g, render.Options{}), render.ToDOT(g, render.Options{}))
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz wasm runtime start-up is slow")
	}

	svg, err := render.RenderSVG(context.Background(), render.ToDOT(triangle(t), render.Options{Path: []string{"A", "B"}}))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}
