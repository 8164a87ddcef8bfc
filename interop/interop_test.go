package interop_test

import (
	"testing"

	"github.com/katalvlaran/graphcore/core"
	"github.com/katalvlaran/graphcore/interop"
	"github.com/stretchr/testify/require"
)

// TestAdapterExposesNodesAndEdges exercises that Adapter surfaces the
// wrapped store's vertices and directed edges through gonum's graph.Graph
// contract.
func TestAdapterExposesNodesAndEdges(t *testing.T) {
	g := core.NewArrayGraph(core.Capabilities{Directed: true})
	for i := 0; i < 3; i++ {
		_, err := g.AddVertex()
		require.NoError(t, err)
	}
	_, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2)
	require.NoError(t, err)

	a := interop.New(g)

	require.Equal(t, 3, a.Nodes().Len())
	require.True(t, a.HasEdgeFromTo(0, 1))
	require.False(t, a.HasEdgeFromTo(1, 0))
	require.True(t, a.HasEdgeBetween(1, 0))

	from := a.From(0)
	require.Equal(t, 1, from.Len())

	require.Nil(t, a.Node(99))
	require.NotNil(t, a.Node(1))
}

// TestWeightedAdapterReadsEdgeWeights exercises that WeightedAdapter
// reads through the registered float64 weight container, and reports
// absence for non-adjacent pairs.
func TestWeightedAdapterReadsEdgeWeights(t *testing.T) {
	g := core.NewArrayGraph(core.Capabilities{Directed: true})
	for i := 0; i < 2; i++ {
		_, err := g.AddVertex()
		require.NoError(t, err)
	}
	e, err := g.AddEdge(0, 1)
	require.NoError(t, err)

	w, err := core.AddWeights[float64](g.EdgeWeights(), "weight", 0)
	require.NoError(t, err)
	w.Set(e, 3.25)

	wa, err := interop.NewWeighted(g, g.EdgeWeights(), "weight")
	require.NoError(t, err)

	got, ok := wa.Weight(0, 1)
	require.True(t, ok)
	require.Equal(t, 3.25, got)

	_, ok = wa.Weight(1, 0)
	require.False(t, ok)
}
