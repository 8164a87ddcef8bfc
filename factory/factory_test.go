package factory_test

import (
	"testing"

	"github.com/katalvlaran/graphcore/core"
	"github.com/katalvlaran/graphcore/factory"
	"github.com/stretchr/testify/require"
)

// TestFactoryChainingConfiguresCapabilities exercises the fluent chaining
// API and its resulting Capabilities.
func TestFactoryChainingConfiguresCapabilities(t *testing.T) {
	f := factory.New().Directed().AllowSelfEdges(true).AllowParallelEdges(true)

	require.Equal(t, core.Capabilities{
		Directed:           true,
		AllowSelfEdges:     true,
		AllowParallelEdges: true,
	}, f.Capabilities())
}

// TestFactoryHintSelectsBackend exercises that AddHint steers
// NewTopologyStore's backend choice through NewGraph.
func TestFactoryHintSelectsBackend(t *testing.T) {
	f := factory.New().AddHint(core.HintFastEdgeLookup)
	g := f.NewGraph()
	_, isHash := g.(*core.HashGraph)
	require.True(t, isHash)

	_, err := g.AddVertex()
	require.NoError(t, err)
	_, err = g.AddVertex()
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)

	_, ok, err := g.GetEdge(0, 1)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestNewCopyOfReplicatesTopologyAndWeights exercises that NewCopyOf
// reproduces a source graph's vertices, edges and requested weights in a
// fresh backend under the factory's configuration.
func TestNewCopyOfReplicatesTopologyAndWeights(t *testing.T) {
	src := core.NewArrayGraph(core.Capabilities{Directed: true})
	for i := 0; i < 3; i++ {
		_, err := src.AddVertex()
		require.NoError(t, err)
	}
	_, err := src.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = src.AddEdge(1, 2)
	require.NoError(t, err)

	w, err := core.AddWeights[float64](src.EdgeWeights(), "cost", 0)
	require.NoError(t, err)
	w.Set(0, 1.5)
	w.Set(1, 2.5)

	f := factory.New().Directed()
	dst, err := f.NewCopyOf(src, false, true)
	require.NoError(t, err)

	require.Equal(t, src.NumVertices(), dst.NumVertices())
	require.Equal(t, src.NumEdges(), dst.NumEdges())

	dstWeighted, ok := dst.(core.WeightedStore)
	require.True(t, ok)
	dw, err := core.GetWeights[float64](dstWeighted.EdgeWeights(), "cost")
	require.NoError(t, err)
	require.Equal(t, 1.5, dw.Get(0))
	require.Equal(t, 2.5, dw.Get(1))
}

// TestNewBuilderCopyOfStagesTopology exercises that NewBuilderCopyOf
// stages src's topology into a fresh Builder that can then be frozen.
func TestNewBuilderCopyOfStagesTopology(t *testing.T) {
	src := core.NewArrayGraph(core.Capabilities{Directed: true})
	for i := 0; i < 2; i++ {
		_, err := src.AddVertex()
		require.NoError(t, err)
	}
	_, err := src.AddEdge(0, 1)
	require.NoError(t, err)

	f := factory.New().Directed()
	b, err := f.NewBuilderCopyOf(src, false, false)
	require.NoError(t, err)

	g, err := b.BuildMutable()
	require.NoError(t, err)
	require.Equal(t, 2, g.NumVertices())
	require.Equal(t, 1, g.NumEdges())
}
