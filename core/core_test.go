package core_test

import (
	"testing"

	"github.com/katalvlaran/graphcore/core"
	"github.com/stretchr/testify/require"
)

// TestArrayBackendDirectedBasics exercises scenario A: a small directed,
// simple graph, checking outEdges/inEdges/getEdge.
func TestArrayBackendDirectedBasics(t *testing.T) {
	g := core.NewArrayGraph(core.Capabilities{Directed: true})
	for i := 0; i < 4; i++ {
		_, err := g.AddVertex()
		require.NoError(t, err)
	}

	e0, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	e1, err := g.AddEdge(0, 2)
	require.NoError(t, err)
	e2, err := g.AddEdge(2, 3)
	require.NoError(t, err)
	e3, err := g.AddEdge(1, 3)
	require.NoError(t, err)

	out0, err := g.OutEdges(0)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{e0, e1}, out0)

	in3, err := g.InEdges(3)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{e2, e3}, in3)

	got, ok, err := g.GetEdge(0, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, e0, got)

	_, ok, err = g.GetEdge(1, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestArrayBackendUndirectedSelfEdge exercises scenario B: an undirected
// graph with a self-edge, checking incidentEdges counts the self-edge
// once.
func TestArrayBackendUndirectedSelfEdge(t *testing.T) {
	g := core.NewArrayGraph(core.Capabilities{AllowSelfEdges: true})
	for i := 0; i < 3; i++ {
		_, err := g.AddVertex()
		require.NoError(t, err)
	}

	e0, err := g.AddEdge(0, 0)
	require.NoError(t, err)
	e1, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	e2, err := g.AddEdge(1, 2)
	require.NoError(t, err)

	inc0, err := g.IncidentEdges(0)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{e0, e1}, inc0)

	inc1, err := g.IncidentEdges(1)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{e1, e2}, inc1)

	inc2, err := g.IncidentEdges(2)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{e2}, inc2)

	require.Equal(t, 3, g.NumEdges())
}

// TestArrayBackendVertexRemovalSwap exercises scenario D: removing a
// vertex swaps the last vertex into its slot and rewrites incident
// edges.
func TestArrayBackendVertexRemovalSwap(t *testing.T) {
	g := core.NewArrayGraph(core.Capabilities{})
	for i := 0; i < 4; i++ {
		_, err := g.AddVertex()
		require.NoError(t, err)
	}
	_, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2)
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex(1))

	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 1, g.NumEdges())

	remaining, err := g.OutEdges(2)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	other, err := g.Endpoint(remaining[0], 2)
	require.NoError(t, err)
	require.Equal(t, 1, other) // surviving edge (2,3) now reads (2,1): old vertex 3 swapped into slot 1
}

// TestLinkedBackendUndirectedSelfEdge exercises scenario B against the
// linked backend: an undirected graph with a self-edge, checking
// incidentEdges counts the self-edge once and that a vertex's incidence
// list is read correctly when some of its members are linked in via the
// edge's source role and others via its target role.
func TestLinkedBackendUndirectedSelfEdge(t *testing.T) {
	g := core.NewLinkedGraph(core.Capabilities{AllowSelfEdges: true})
	for i := 0; i < 3; i++ {
		_, err := g.AddVertex()
		require.NoError(t, err)
	}

	e0, err := g.AddEdge(0, 0)
	require.NoError(t, err)
	e1, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	e2, err := g.AddEdge(1, 2)
	require.NoError(t, err)

	inc0, err := g.IncidentEdges(0)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{e0, e1}, inc0)

	inc1, err := g.IncidentEdges(1)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{e1, e2}, inc1)

	inc2, err := g.IncidentEdges(2)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{e2}, inc2)

	require.Equal(t, 3, g.NumEdges())
}

// TestLinkedBackendIncidenceMixesSourceAndTargetRoles reproduces a
// regression where a vertex's headOut list held edges linked in through
// both srcNext/srcPrev (this vertex was that edge's source) and
// tgtNext/tgtPrev (this vertex was that edge's target). Walking the list
// through a single fixed pointer array silently dropped whichever edges
// were anchored through the other array.
func TestLinkedBackendIncidenceMixesSourceAndTargetRoles(t *testing.T) {
	g := core.NewLinkedGraph(core.Capabilities{})
	for i := 0; i < 3; i++ {
		_, err := g.AddVertex()
		require.NoError(t, err)
	}

	e0, err := g.AddEdge(1, 0) // vertex 1 in the source role
	require.NoError(t, err)
	e1, err := g.AddEdge(2, 1) // vertex 1 in the target role
	require.NoError(t, err)

	out1, err := g.OutEdges(1)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{e0, e1}, out1)

	inc1, err := g.IncidentEdges(1)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{e0, e1}, inc1)

	got, ok, err := g.GetEdge(1, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, e0, got)

	all, err := g.GetEdges(1, 2)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{e1}, all)
}

// TestHashBackendParallelEdges exercises scenario F: a directed hashmap
// backend allowing parallel edges.
func TestHashBackendParallelEdges(t *testing.T) {
	g := core.NewHashGraph(core.Capabilities{Directed: true, AllowParallelEdges: true})
	for i := 0; i < 2; i++ {
		_, err := g.AddVertex()
		require.NoError(t, err)
	}

	e0, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	e1, err := g.AddEdge(0, 1)
	require.NoError(t, err)

	all, err := g.GetEdges(0, 1)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{e0, e1}, all)

	one, ok, err := g.GetEdge(0, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, []int{e0, e1}, one)

	require.NoError(t, g.RemoveEdge(e0))
	all, err = g.GetEdges(0, 1)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

// TestSelfEdgeAndParallelEdgeViolations exercises boundary behaviours 10
// and 11: the graph is left unchanged after a rejected mutation.
func TestSelfEdgeAndParallelEdgeViolations(t *testing.T) {
	g := core.NewArrayGraph(core.Capabilities{})
	_, err := g.AddVertex()
	require.NoError(t, err)
	_, err = g.AddVertex()
	require.NoError(t, err)

	_, err = g.AddEdge(0, 0)
	require.ErrorIs(t, err, core.ErrSelfEdgeViolation)
	require.Equal(t, 0, g.NumEdges())

	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.ErrorIs(t, err, core.ErrParallelEdgeViolation)
	require.Equal(t, 1, g.NumEdges())
}

// TestEmptyGraphBoundary exercises boundary behaviour 13.
func TestEmptyGraphBoundary(t *testing.T) {
	g := core.NewArrayGraph(core.Capabilities{Directed: true})
	_, err := g.AddVertex()
	require.NoError(t, err)

	out, err := g.OutEdges(0)
	require.NoError(t, err)
	require.Empty(t, out)

	_, ok, err := g.GetEdge(0, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestReverseEdgeRoundTrip exercises round-trip law 6.
func TestReverseEdgeRoundTrip(t *testing.T) {
	g := core.NewArrayGraph(core.Capabilities{Directed: true})
	_, _ = g.AddVertex()
	_, _ = g.AddVertex()
	e, err := g.AddEdge(0, 1)
	require.NoError(t, err)

	require.NoError(t, g.ReverseEdge(e))
	require.NoError(t, g.ReverseEdge(e))

	s, err := g.Source(e)
	require.NoError(t, err)
	tgt, err := g.Target(e)
	require.NoError(t, err)
	require.Equal(t, 0, s)
	require.Equal(t, 1, tgt)
}

// TestWeightsTrackIndexSetSize exercises invariant 4.
func TestWeightsTrackIndexSetSize(t *testing.T) {
	g := core.NewArrayGraph(core.Capabilities{Directed: true})
	w, err := core.AddWeights[float64](g.VertexWeights(), "dist", 0)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := g.AddVertex()
		require.NoError(t, err)
	}
	require.Equal(t, g.NumVertices(), w.Len())

	require.NoError(t, g.RemoveVertex(0))
	require.Equal(t, g.NumVertices(), w.Len())
}
