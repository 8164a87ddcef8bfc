package builder_test

import (
	"testing"

	"github.com/katalvlaran/graphcore/builder"
	"github.com/katalvlaran/graphcore/core"
	"github.com/stretchr/testify/require"
)

// TestBuildMutableRoundTrip stages the same topology as scenario A and
// checks it survives BuildMutable unchanged.
func TestBuildMutableRoundTrip(t *testing.T) {
	b := builder.New(core.Capabilities{Directed: true})
	b.AddVertices(4)
	b.AddEdge(0, 1)
	b.AddEdge(0, 2)
	b.AddEdge(2, 3)
	b.AddEdge(1, 3)

	g, err := b.BuildMutable()
	require.NoError(t, err)
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, 4, g.NumEdges())

	out0, err := g.OutEdges(0)
	require.NoError(t, err)
	require.Len(t, out0, 2)
}

// TestBuildRejectsOutOfRange exercises that an out-of-range staged edge
// is rejected at Build time and that the error wraps core.ErrOutOfRange.
func TestBuildRejectsOutOfRange(t *testing.T) {
	b := builder.New(core.Capabilities{Directed: true})
	b.AddVertex()
	b.AddEdge(0, 7)

	_, err := b.Build()
	require.Error(t, err)
	require.ErrorIs(t, err, core.ErrOutOfRange)
}

// TestReIndexAndBuildScenarioC reproduces the spec's worked example of
// directed edge re-indexing: three vertices, edges
// e0=(1,2), e1=(0,2), e2=(0,1), re-indexed so that edges are grouped by
// source and ordered by target within a source.
func TestReIndexAndBuildScenarioC(t *testing.T) {
	b := builder.New(core.Capabilities{Directed: true})
	b.AddVertices(3)
	b.AddEdge(1, 2) // e0
	b.AddEdge(0, 2) // e1
	b.AddEdge(0, 1) // e2

	g, report, err := b.ReIndexAndBuild(false, true)
	require.NoError(t, err)
	require.NotNil(t, report.EdgePermutation)

	require.Equal(t, 0, report.EdgePermutation.Map(2)) // e2 -> 0
	require.Equal(t, 1, report.EdgePermutation.Map(1)) // e1 -> 1
	require.Equal(t, 2, report.EdgePermutation.Map(0)) // e0 -> 2

	out0, err := g.OutEdges(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, out0)

	out1, err := g.OutEdges(1)
	require.NoError(t, err)
	require.Equal(t, []int{2}, out1)

	out2, err := g.OutEdges(2)
	require.NoError(t, err)
	require.Empty(t, out2)
}

// TestReIndexAndBuildRejectsUndirected exercises that edge re-indexing on
// an undirected staged graph is rejected.
func TestReIndexAndBuildRejectsUndirected(t *testing.T) {
	b := builder.New(core.Capabilities{})
	b.AddVertices(2)
	b.AddEdge(0, 1)

	_, _, err := b.ReIndexAndBuild(false, true)
	require.Error(t, err)
}

// TestBuilderWeightsMigrateIntoCSR exercises that staged weights survive
// Build and are permuted consistently with the edge permutation applied.
func TestBuilderWeightsMigrateIntoCSR(t *testing.T) {
	b := builder.New(core.Capabilities{Directed: true})
	b.AddVertices(3)
	b.AddEdge(0, 1) // e0
	b.AddEdge(1, 2) // e1
	b.AddEdge(0, 2) // e2

	w, err := builder.AddEdgesWeights[float64](b, "weight", 0)
	require.NoError(t, err)
	w.Set(0, 10)
	w.Set(1, 20)
	w.Set(2, 30)

	g, report, err := b.ReIndexAndBuild(false, true)
	require.NoError(t, err)

	gw, err := core.GetWeights[float64](g.EdgeWeights(), "weight")
	require.NoError(t, err)

	require.Equal(t, float64(10), gw.Get(report.EdgePermutation.Map(0)))
	require.Equal(t, float64(20), gw.Get(report.EdgePermutation.Map(1)))
	require.Equal(t, float64(30), gw.Get(report.EdgePermutation.Map(2)))
}
