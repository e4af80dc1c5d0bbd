// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvroute/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
}

// addVertices registers ids and fails the test on any error.
func (s *GraphSuite) addVertices(ids ...string) {
	for _, id := range ids {
		s.Require().NoError(s.g.AddVertex(id), "AddVertex(%s)", id)
	}
}

func (s *GraphSuite) TestAddVertexIdempotent() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"), "empty graph should not have A")

	require.NoError(s.g.AddVertex("A"))
	require.True(s.g.HasVertex("A"))

	require.NoError(s.g.AddVertex("B"))
	require.NoError(s.g.AddEdge("A", "B", 2))

	// Re-adding must neither duplicate the vertex nor drop its edges.
	require.NoError(s.g.AddVertex("A"))
	require.Equal(2, s.g.VertexCount())
	deg, err := s.g.Degree("A")
	require.NoError(err)
	require.Equal(1, deg)
}

func (s *GraphSuite) TestAddVertexEmptyID() {
	s.Require().ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
	s.Require().False(s.g.HasVertex(""))
}

func (s *GraphSuite) TestVerticesSorted() {
	s.addVertices("D", "B", "A", "C")
	s.Require().Equal([]string{"A", "B", "C", "D"}, s.g.Vertices())
}

func (s *GraphSuite) TestAddEdgeSymmetric() {
	require := require.New(s.T())
	s.addVertices("A", "B")
	require.NoError(s.g.AddEdge("A", "B", 4.5))

	ab, err := s.g.Neighbors("A")
	require.NoError(err)
	require.Equal([]core.Neighbor{{ID: "B", Weight: 4.5}}, ab)

	ba, err := s.g.Neighbors("B")
	require.NoError(err)
	require.Equal([]core.Neighbor{{ID: "A", Weight: 4.5}}, ba)

	require.True(s.g.HasEdge("A", "B"))
	require.True(s.g.HasEdge("B", "A"))
	require.Equal([]core.Edge{{From: "A", To: "B", Weight: 4.5}}, s.g.Edges())
}

func (s *GraphSuite) TestAddEdgeMissingEndpointIsReported() {
	require := require.New(s.T())
	s.addVertices("A")

	err := s.g.AddEdge("A", "Z", 1)
	require.ErrorIs(err, core.ErrVertexNotFound)
	require.Contains(err.Error(), `"Z"`)

	err = s.g.AddEdge("Y", "A", 1)
	require.ErrorIs(err, core.ErrVertexNotFound)

	// Nothing half-inserted.
	require.Equal(0, s.g.EdgeCount())
	deg, _ := s.g.Degree("A")
	require.Zero(deg)
	require.False(s.g.HasVertex("Z"), "AddEdge must not auto-create vertices")
}

func (s *GraphSuite) TestAddEdgeRejectsBadWeights() {
	require := require.New(s.T())
	s.addVertices("A", "B")

	require.ErrorIs(s.g.AddEdge("A", "B", -1), core.ErrNegativeWeight)
	require.ErrorIs(s.g.AddEdge("A", "B", math.NaN()), core.ErrBadWeight)
	require.ErrorIs(s.g.AddEdge("A", "B", math.Inf(1)), core.ErrBadWeight)
	require.ErrorIs(s.g.AddEdge("", "B", 1), core.ErrEmptyVertexID)
	require.Equal(0, s.g.EdgeCount())

	// Zero is a legal weight.
	require.NoError(s.g.AddEdge("A", "B", 0))
}

func (s *GraphSuite) TestLoops() {
	require := require.New(s.T())
	s.addVertices("A")
	require.ErrorIs(s.g.AddEdge("A", "A", 1), core.ErrLoopNotAllowed)

	lg := core.NewGraph(core.WithLoops())
	require.True(lg.Looped())
	require.NoError(lg.AddVertex("A"))
	require.NoError(lg.AddEdge("A", "A", 3))

	nbs, err := lg.Neighbors("A")
	require.NoError(err)
	require.Len(nbs, 1, "a loop is recorded once")
}

func (s *GraphSuite) TestParallelEdgesAndWeight() {
	require := require.New(s.T())
	s.addVertices("A", "B", "C")
	require.NoError(s.g.AddEdge("A", "B", 7))
	require.NoError(s.g.AddEdge("B", "A", 3))

	w, ok := s.g.Weight("A", "B")
	require.True(ok)
	require.Equal(3.0, w, "lightest parallel edge wins")
	require.Equal(2, s.g.EdgeCount())

	_, ok = s.g.Weight("A", "C")
	require.False(ok)

	ids, err := s.g.NeighborIDs("A")
	require.NoError(err)
	require.Equal([]string{"B"}, ids)
}

func (s *GraphSuite) TestNeighborsReturnsCopy() {
	require := require.New(s.T())
	s.addVertices("A", "B")
	require.NoError(s.g.AddEdge("A", "B", 1))

	nbs, err := s.g.Neighbors("A")
	require.NoError(err)
	nbs[0].Weight = 999

	again, _ := s.g.Neighbors("A")
	require.Equal(1.0, again[0].Weight)

	adj := s.g.AdjacencyList()
	adj["A"][0].ID = "X"
	w, ok := s.g.Weight("A", "B")
	require.True(ok)
	require.Equal(1.0, w)
}

func (s *GraphSuite) TestNeighborsUnknownVertex() {
	_, err := s.g.Neighbors("nope")
	s.Require().ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Neighbors("")
	s.Require().ErrorIs(err, core.ErrEmptyVertexID)
	_, err = s.g.Degree("nope")
	s.Require().ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestRangeNeighborsStopsEarly() {
	require := require.New(s.T())
	s.addVertices("A", "B", "C", "D")
	require.NoError(s.g.AddEdge("A", "B", 1))
	require.NoError(s.g.AddEdge("A", "C", 2))
	require.NoError(s.g.AddEdge("A", "D", 3))

	var seen []string
	err := s.g.RangeNeighbors("A", func(nb core.Neighbor) bool {
		seen = append(seen, nb.ID)
		return nb.ID != "C"
	})
	require.NoError(err)
	require.Equal([]string{"B", "C"}, seen)

	called := false
	err = s.g.RangeNeighbors("Q", func(core.Neighbor) bool { called = true; return true })
	require.ErrorIs(err, core.ErrVertexNotFound)
	require.False(called)
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	s.addVertices("A", "B", "C")
	require.NoError(s.g.AddEdge("A", "B", 1))

	c := s.g.Clone()
	require.NoError(c.AddEdge("B", "C", 2))
	require.NoError(c.AddVertex("D"))

	require.Equal(1, s.g.EdgeCount())
	require.False(s.g.HasVertex("D"))
	require.Equal(2, c.EdgeCount())
	require.Equal(s.g.Vertices(), []string{"A", "B", "C"})

	empty := s.g.CloneEmpty()
	require.Equal(3, empty.VertexCount())
	require.Equal(0, empty.EdgeCount())
}

func (s *GraphSuite) TestStats() {
	require := require.New(s.T())
	s.addVertices("A", "B", "C")
	require.NoError(s.g.AddEdge("A", "B", 1.5))
	require.NoError(s.g.AddEdge("A", "B", 2.5))

	st := s.g.Stats()
	require.Equal(core.GraphStats{
		VertexCount:   3,
		EdgeCount:     2,
		IsolatedCount: 1,
		TotalWeight:   4,
		AllowsLoops:   false,
	}, st)
}

func (s *GraphSuite) TestPathWeight() {
	require := require.New(s.T())
	s.addVertices("A", "B", "C", "D")
	require.NoError(s.g.AddEdge("A", "B", 1))
	require.NoError(s.g.AddEdge("B", "C", 2))
	require.NoError(s.g.AddEdge("B", "C", 0.5))

	w, err := core.PathWeight(s.g, []string{"A", "B", "C"})
	require.NoError(err)
	require.Equal(1.5, w)

	w, err = core.PathWeight(s.g, []string{"D"})
	require.NoError(err)
	require.Zero(w)

	_, err = core.PathWeight(s.g, []string{"A", "C"})
	require.ErrorIs(err, core.ErrEdgeNotFound)
	_, err = core.PathWeight(s.g, []string{"A", "X"})
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = core.PathWeight(s.g, nil)
	require.ErrorIs(err, core.ErrEmptyVertexID)
}
