package csr_test

import (
	"testing"

	"github.com/katalvlaran/graphcore/core"
	"github.com/katalvlaran/graphcore/csr"
	"github.com/stretchr/testify/require"
)

// buildCsrFixture stages the same directed graph used in scenario A.
func buildCsrFixture(t *testing.T) core.TopologyStore {
	t.Helper()
	g := core.NewArrayGraph(core.Capabilities{Directed: true})
	for i := 0; i < 4; i++ {
		_, err := g.AddVertex()
		require.NoError(t, err)
	}
	_, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 2)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 3)
	require.NoError(t, err)

	return g
}

// TestBuildWithoutReindexPreservesEdgeIdentity exercises that freezing
// without re-indexing keeps each edge at its original index.
func TestBuildWithoutReindexPreservesEdgeIdentity(t *testing.T) {
	g := buildCsrFixture(t)
	frozen, err := csr.Build(g, false, true)
	require.NoError(t, err)
	require.Nil(t, frozen.EdgePermutation())

	for e := 0; e < g.NumEdges(); e++ {
		wantS, _ := g.Source(e)
		wantT, _ := g.Target(e)
		gotS, err := frozen.Source(e)
		require.NoError(t, err)
		gotT, err := frozen.Target(e)
		require.NoError(t, err)
		require.Equal(t, wantS, gotS)
		require.Equal(t, wantT, gotT)
	}
}

// TestBuildIsImmutable exercises that every structural mutation on a
// frozen Graph fails with ErrImmutableGraph.
func TestBuildIsImmutable(t *testing.T) {
	g := buildCsrFixture(t)
	frozen, err := csr.Build(g, false, false)
	require.NoError(t, err)

	_, err = frozen.AddVertex()
	require.ErrorIs(t, err, core.ErrImmutableGraph)

	err = frozen.RemoveEdge(0)
	require.ErrorIs(t, err, core.ErrImmutableGraph)

	err = frozen.ReverseEdge(0)
	require.ErrorIs(t, err, core.ErrImmutableGraph)
}

// TestBuildRejectsReindexOnUndirected exercises the documented error when
// edge re-indexing is requested on an undirected source.
func TestBuildRejectsReindexOnUndirected(t *testing.T) {
	g := core.NewArrayGraph(core.Capabilities{})
	_, _ = g.AddVertex()
	_, _ = g.AddVertex()
	_, _ = g.AddEdge(0, 1)

	_, err := csr.Build(g, true, false)
	require.ErrorIs(t, err, csr.ErrReindexUndirected)
}

// TestBuildInEdgesFallsBackToScanWithoutReverseIndex exercises that
// InEdges still works when buildReverseIndex is false.
func TestBuildInEdgesFallsBackToScanWithoutReverseIndex(t *testing.T) {
	g := buildCsrFixture(t)
	frozen, err := csr.Build(g, false, false)
	require.NoError(t, err)

	in3, err := frozen.InEdges(3)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{2, 3}, in3)
}

// TestBuildWeightsCopiedSeparately exercises that csr.Build does not carry
// the source's weights itself, and that copying the source's edge weights
// registry into the frozen Graph's registry afterwards exposes them there.
func TestBuildWeightsCopiedSeparately(t *testing.T) {
	g := buildCsrFixture(t)
	w, err := core.AddWeights[int](g.EdgeWeights(), "capacity", 0)
	require.NoError(t, err)
	w.Set(0, 5)

	frozen, err := csr.Build(g, false, false)
	require.NoError(t, err)

	require.NoError(t, g.EdgeWeights().CopyInto(frozen.EdgeWeights()))

	fw, err := core.GetWeights[int](frozen.EdgeWeights(), "capacity")
	require.NoError(t, err)
	require.Equal(t, 5, fw.Get(0))
}
