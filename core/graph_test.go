package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/stepflow/core"
	"github.com/katalvlaran/stepflow/weight"
)

// GraphSuite groups behavior tests for the graph ADT.
type GraphSuite struct {
	suite.Suite
}

// TestNewGraphDefaults: a bare NewGraph is undirected, unweighted, int-kinded, empty.
func (s *GraphSuite) TestNewGraphDefaults() {
	g := core.NewGraph()
	require.False(s.T(), g.Directed())
	require.False(s.T(), g.Weighted())
	require.Equal(s.T(), weight.Int32, g.WeightKind())
	require.Zero(s.T(), g.VertexCount())
	require.Zero(s.T(), g.EdgeCount())
}

// TestVertexTokenRules: IDs and labels must be non-empty single tokens.
func (s *GraphSuite) TestVertexTokenRules() {
	g := core.NewGraph()

	require.ErrorIs(s.T(), g.AddVertex(""), core.ErrEmptyVertexID)
	require.ErrorIs(s.T(), g.AddVertex("a b"), core.ErrBadVertexID)
	require.ErrorIs(s.T(), g.AddVertex("a\tb"), core.ErrBadVertexID)
	require.ErrorIs(s.T(), g.AddVertex("a\n"), core.ErrBadVertexID)

	require.ErrorIs(s.T(), g.AddLabeledVertex("a", ""), core.ErrBadLabel)
	require.ErrorIs(s.T(), g.AddLabeledVertex("a", "two words"), core.ErrBadLabel)

	require.Zero(s.T(), g.VertexCount(), "rejected tokens must not be stored")

	require.ErrorIs(s.T(), core.ValidateVertexID(""), core.ErrEmptyVertexID)
	require.ErrorIs(s.T(), core.ValidateVertexID("x y"), core.ErrBadVertexID)
	require.NoError(s.T(), core.ValidateVertexID("x"))
}

// TestAddVertexDuplicate: re-inserting an ID fails and leaves the original intact.
func (s *GraphSuite) TestAddVertexDuplicate() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddLabeledVertex("a", "first"))

	require.ErrorIs(s.T(), g.AddVertex("a"), core.ErrVertexExists)
	require.ErrorIs(s.T(), g.AddLabeledVertex("a", "second"), core.ErrVertexExists)

	v, err := g.GetVertex("a")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "first", v.Label)
	require.Equal(s.T(), 1, g.VertexCount())
}

// TestGetVertex: present vs absent lookups.
func (s *GraphSuite) TestGetVertex() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddVertex("a"))

	v, err := g.GetVertex("a")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "a", v.ID)
	require.Empty(s.T(), v.Label)

	_, err = g.GetVertex("missing")
	require.ErrorIs(s.T(), err, core.ErrVertexNotFound)
	require.True(s.T(), g.HasVertex("a"))
	require.False(s.T(), g.HasVertex("missing"))
}

// TestRemoveVertexMissing: removal of an absent ID is reported, not ignored.
func (s *GraphSuite) TestRemoveVertexMissing() {
	g := core.NewGraph()
	require.ErrorIs(s.T(), g.RemoveVertex("a"), core.ErrVertexNotFound)
}

// TestCascadeDelete: removing a vertex strips every incident arc and
// subsequent GetEdge calls in both orientations report the missing
// vertex, never a missing edge.
func (s *GraphSuite) TestCascadeDelete() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(weight.Int32))
	for _, id := range []string{"v", "x", "z"} {
		require.NoError(s.T(), g.AddVertex(id))
	}
	require.NoError(s.T(), g.AddWeightedEdge("v", "x", weight.NewInt32(1)))
	require.NoError(s.T(), g.AddWeightedEdge("x", "v", weight.NewInt32(2)))
	require.NoError(s.T(), g.AddWeightedEdge("z", "v", weight.NewInt32(3)))
	require.NoError(s.T(), g.AddWeightedEdge("z", "x", weight.NewInt32(4)))

	require.NoError(s.T(), g.RemoveVertex("v"))

	_, err := g.GetEdge("v", "x")
	require.ErrorIs(s.T(), err, core.ErrVertexNotFound)
	_, err = g.GetEdge("x", "v")
	require.ErrorIs(s.T(), err, core.ErrVertexNotFound)

	// Unrelated arcs survive.
	e, err := g.GetEdge("z", "x")
	require.NoError(s.T(), err)
	require.Equal(s.T(), weight.NewInt32(4), e.Weight)

	nbrs, err := g.Neighbors("z")
	require.NoError(s.T(), err)
	require.Len(s.T(), nbrs, 1)
	require.Equal(s.T(), "x", nbrs[0].To)
}

// TestWeightFlagRules: weight presence must match the graph's weighted flag.
func (s *GraphSuite) TestWeightFlagRules() {
	unweighted := core.NewGraph(core.WithDirected(true))
	require.NoError(s.T(), unweighted.AddVertex("a"))
	require.NoError(s.T(), unweighted.AddVertex("b"))
	err := unweighted.AddWeightedEdge("a", "b", weight.NewInt32(1))
	require.ErrorIs(s.T(), err, core.ErrWeightedEdge)

	weighted := core.NewGraph(core.WithDirected(true), core.WithWeighted(weight.Int32))
	require.NoError(s.T(), weighted.AddVertex("a"))
	require.NoError(s.T(), weighted.AddVertex("b"))
	require.ErrorIs(s.T(), weighted.AddEdge("a", "b"), core.ErrUnweightedEdge)

	require.Zero(s.T(), unweighted.EdgeCount())
	require.Zero(s.T(), weighted.EdgeCount())
}

// TestWeightKindRules: the kind fixed at construction is enforced on
// every weighted mutation, and float weights must be finite.
func (s *GraphSuite) TestWeightKindRules() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(weight.Float32))
	require.NoError(s.T(), g.AddVertex("a"))
	require.NoError(s.T(), g.AddVertex("b"))

	err := g.AddWeightedEdge("a", "b", weight.NewInt32(1))
	require.ErrorIs(s.T(), err, core.ErrWeightKind)

	err = g.AddWeightedEdge("a", "b", weight.Inf(weight.Float32))
	require.ErrorIs(s.T(), err, core.ErrBadWeight)

	require.NoError(s.T(), g.AddWeightedEdge("a", "b", weight.MustFloat32(2.5)))

	// The int ceiling is an ordinary storable integer.
	gi := core.NewGraph(core.WithDirected(true), core.WithWeighted(weight.Int32))
	require.NoError(s.T(), gi.AddVertex("a"))
	require.NoError(s.T(), gi.AddVertex("b"))
	require.NoError(s.T(), gi.AddWeightedEdge("a", "b", weight.Inf(weight.Int32)))
}

// TestAddEdgeEndpoints: both endpoints must exist beforehand.
func (s *GraphSuite) TestAddEdgeEndpoints() {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(s.T(), g.AddVertex("a"))

	require.ErrorIs(s.T(), g.AddEdge("a", "missing"), core.ErrVerticesNotFound)
	require.ErrorIs(s.T(), g.AddEdge("missing", "a"), core.ErrVerticesNotFound)
	require.ErrorIs(s.T(), g.AddEdge("ghost", "phantom"), core.ErrVerticesNotFound)
}

// TestDirectedDuplicates: one arc per ordered pair; the reverse arc is
// its own edge.
func (s *GraphSuite) TestDirectedDuplicates() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(weight.Int32))
	require.NoError(s.T(), g.AddVertex("a"))
	require.NoError(s.T(), g.AddVertex("b"))

	require.NoError(s.T(), g.AddWeightedEdge("a", "b", weight.NewInt32(1)))
	err := g.AddWeightedEdge("a", "b", weight.NewInt32(9))
	require.ErrorIs(s.T(), err, core.ErrEdgeExists)

	e, err := g.GetEdge("a", "b")
	require.NoError(s.T(), err)
	require.Equal(s.T(), weight.NewInt32(1), e.Weight, "failed insert must not alter the stored arc")

	require.NoError(s.T(), g.AddWeightedEdge("b", "a", weight.NewInt32(2)))
	require.Equal(s.T(), 2, g.EdgeCount())
}

// TestUndirectedSymmetry: adding an undirected edge stores two mirrored
// records; either orientation blocks duplicates; removal drops both.
func (s *GraphSuite) TestUndirectedSymmetry() {
	g := core.NewGraph(core.WithWeighted(weight.Int32))
	require.NoError(s.T(), g.AddVertex("a"))
	require.NoError(s.T(), g.AddVertex("b"))

	w := weight.NewInt32(7)
	require.NoError(s.T(), g.AddWeightedEdge("a", "b", w))

	ab, err := g.GetEdge("a", "b")
	require.NoError(s.T(), err)
	ba, err := g.GetEdge("b", "a")
	require.NoError(s.T(), err)
	require.Equal(s.T(), w, ab.Weight)
	require.Equal(s.T(), w, ba.Weight)
	require.NotSame(s.T(), ab, ba, "mirror is an independently owned record")

	require.ErrorIs(s.T(), g.AddWeightedEdge("a", "b", w), core.ErrEdgeExists)
	require.ErrorIs(s.T(), g.AddWeightedEdge("b", "a", w), core.ErrEdgeExists)
	require.Equal(s.T(), 1, g.EdgeCount())

	require.NoError(s.T(), g.RemoveEdge("b", "a"))
	require.False(s.T(), g.HasEdge("a", "b"))
	require.False(s.T(), g.HasEdge("b", "a"))
}

// TestSelfLoops: permitted in both modes, stored as a single record.
func (s *GraphSuite) TestSelfLoops() {
	directed := core.NewGraph(core.WithDirected(true))
	require.NoError(s.T(), directed.AddVertex("s"))
	require.NoError(s.T(), directed.AddEdge("s", "s"))
	require.ErrorIs(s.T(), directed.AddEdge("s", "s"), core.ErrEdgeExists)
	require.Equal(s.T(), 1, directed.EdgeCount())

	undirected := core.NewGraph()
	require.NoError(s.T(), undirected.AddVertex("s"))
	require.NoError(s.T(), undirected.AddEdge("s", "s"))
	require.Equal(s.T(), 1, undirected.EdgeCount())

	nbrs, err := undirected.Neighbors("s")
	require.NoError(s.T(), err)
	require.Len(s.T(), nbrs, 1)

	require.NoError(s.T(), undirected.RemoveEdge("s", "s"))
	require.Zero(s.T(), undirected.EdgeCount())
}

// TestRemoveEdgeErrors: a missing endpoint vertex reads as missing
// vertices, a missing arc between known vertices as a missing edge.
func (s *GraphSuite) TestRemoveEdgeErrors() {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(s.T(), g.AddVertex("a"))
	require.NoError(s.T(), g.AddVertex("b"))

	require.ErrorIs(s.T(), g.RemoveEdge("ghost", "a"), core.ErrVerticesNotFound)
	require.ErrorIs(s.T(), g.RemoveEdge("a", "ghost"), core.ErrVerticesNotFound)
	require.ErrorIs(s.T(), g.RemoveEdge("a", "b"), core.ErrEdgeNotFound)

	require.NoError(s.T(), g.AddEdge("a", "b"))
	require.NoError(s.T(), g.RemoveEdge("a", "b"))
	require.ErrorIs(s.T(), g.RemoveEdge("a", "b"), core.ErrEdgeNotFound)
}

// TestDirectedRemoveKeepsReverse: removing a→b leaves b→a in place.
func (s *GraphSuite) TestDirectedRemoveKeepsReverse() {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(s.T(), g.AddVertex("a"))
	require.NoError(s.T(), g.AddVertex("b"))
	require.NoError(s.T(), g.AddEdge("a", "b"))
	require.NoError(s.T(), g.AddEdge("b", "a"))

	require.NoError(s.T(), g.RemoveEdge("a", "b"))
	require.False(s.T(), g.HasEdge("a", "b"))
	require.True(s.T(), g.HasEdge("b", "a"))
}

// TestNeighborsOrdered: adjacency iterates in ascending target order
// regardless of insertion order.
func (s *GraphSuite) TestNeighborsOrdered() {
	g := core.NewGraph(core.WithDirected(true))
	for _, id := range []string{"m", "z", "a", "k"} {
		require.NoError(s.T(), g.AddVertex(id))
	}
	require.NoError(s.T(), g.AddEdge("m", "z"))
	require.NoError(s.T(), g.AddEdge("m", "a"))
	require.NoError(s.T(), g.AddEdge("m", "k"))

	nbrs, err := g.Neighbors("m")
	require.NoError(s.T(), err)
	targets := make([]string, 0, len(nbrs))
	for _, e := range nbrs {
		targets = append(targets, e.To)
	}
	require.Equal(s.T(), []string{"a", "k", "z"}, targets)

	_, err = g.Neighbors("missing")
	require.ErrorIs(s.T(), err, core.ErrVertexNotFound)
}

// TestVerticesOrdered: vertex enumeration is ascending by ID.
func (s *GraphSuite) TestVerticesOrdered() {
	g := core.NewGraph()
	for _, id := range []string{"3", "1", "10", "2"} {
		require.NoError(s.T(), g.AddVertex(id))
	}

	ids := make([]string, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		ids = append(ids, v.ID)
	}
	// Lexicographic, not numeric: "10" sorts before "2".
	require.Equal(s.T(), []string{"1", "10", "2", "3"}, ids)
}

// TestCloneIndependence: Clone is deep; mutating the copy leaves the
// source untouched and vice versa.
func (s *GraphSuite) TestCloneIndependence() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(weight.Int32))
	require.NoError(s.T(), g.AddLabeledVertex("a", "origin"))
	require.NoError(s.T(), g.AddVertex("b"))
	require.NoError(s.T(), g.AddWeightedEdge("a", "b", weight.NewInt32(5)))

	c := g.Clone()
	require.True(s.T(), c.Directed())
	require.True(s.T(), c.Weighted())
	require.Equal(s.T(), weight.Int32, c.WeightKind())

	require.NoError(s.T(), c.SetEdgeWeight("a", "b", weight.NewInt32(9)))
	require.NoError(s.T(), c.AddVertex("c"))
	require.NoError(s.T(), c.RemoveVertex("b"))

	e, err := g.GetEdge("a", "b")
	require.NoError(s.T(), err, "source must keep its arc")
	require.Equal(s.T(), weight.NewInt32(5), e.Weight)
	require.False(s.T(), g.HasVertex("c"))
	require.Equal(s.T(), 2, g.VertexCount())

	v, err := c.GetVertex("a")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "origin", v.Label, "labels survive cloning")
}

// TestCloneEmpty: flags and vertices come along, edges do not.
func (s *GraphSuite) TestCloneEmpty() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(weight.Float32))
	require.NoError(s.T(), g.AddVertex("a"))
	require.NoError(s.T(), g.AddVertex("b"))
	require.NoError(s.T(), g.AddWeightedEdge("a", "b", weight.MustFloat32(1.5)))

	c := g.CloneEmpty()
	require.True(s.T(), c.Directed())
	require.True(s.T(), c.Weighted())
	require.Equal(s.T(), weight.Float32, c.WeightKind())
	require.Equal(s.T(), 2, c.VertexCount())
	require.Zero(s.T(), c.EdgeCount())
	require.False(s.T(), c.HasEdge("a", "b"))
}

// TestSetEdgeWeight: validated in-place update, mirrored on undirected graphs.
func (s *GraphSuite) TestSetEdgeWeight() {
	g := core.NewGraph(core.WithWeighted(weight.Int32))
	require.NoError(s.T(), g.AddVertex("a"))
	require.NoError(s.T(), g.AddVertex("b"))
	require.NoError(s.T(), g.AddWeightedEdge("a", "b", weight.NewInt32(1)))

	require.NoError(s.T(), g.SetEdgeWeight("a", "b", weight.NewInt32(8)))
	ab, _ := g.GetEdge("a", "b")
	ba, _ := g.GetEdge("b", "a")
	require.Equal(s.T(), weight.NewInt32(8), ab.Weight)
	require.Equal(s.T(), weight.NewInt32(8), ba.Weight, "mirror keeps the same weight")

	require.ErrorIs(s.T(), g.SetEdgeWeight("a", "b", weight.MustFloat32(1)), core.ErrWeightKind)
	require.ErrorIs(s.T(), g.SetEdgeWeight("a", "missing", weight.NewInt32(1)), core.ErrVertexNotFound)
	require.ErrorIs(s.T(), g.SetEdgeWeight("b", "b", weight.NewInt32(1)), core.ErrEdgeNotFound)

	unweighted := core.NewGraph()
	require.ErrorIs(s.T(), unweighted.SetEdgeWeight("a", "b", weight.NewInt32(1)), core.ErrWeightedEdge)
}

// TestString: compact adjacency rendering with labels and weights.
func (s *GraphSuite) TestString() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(weight.Int32))
	require.NoError(s.T(), g.AddLabeledVertex("s", "source"))
	require.NoError(s.T(), g.AddVertex("a"))
	require.NoError(s.T(), g.AddVertex("x"))
	require.NoError(s.T(), g.AddWeightedEdge("s", "a", weight.NewInt32(3)))
	require.NoError(s.T(), g.AddWeightedEdge("a", "s", weight.NewInt32(1)))

	want := "a: s(1)\n" +
		"s [source]: a(3)\n" +
		"x:\n"
	require.Equal(s.T(), want, g.String())

	plain := core.NewGraph()
	require.NoError(s.T(), plain.AddVertex("a"))
	require.NoError(s.T(), plain.AddVertex("b"))
	require.NoError(s.T(), plain.AddEdge("a", "b"))
	require.Equal(s.T(), "a: b\nb: a\n", plain.String())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
