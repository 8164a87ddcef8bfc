package factory

import (
	"github.com/katalvlaran/graphcore/builder"
	"github.com/katalvlaran/graphcore/core"
)

// replayTopology appends every vertex and edge of src onto dst, in
// index order. dst is assumed empty.
func replayTopology(src core.TopologyStore, dst interface {
	AddVertex() (int, error)
	AddEdge(u, v int) (int, error)
}) error {
	for i := 0; i < src.NumVertices(); i++ {
		if _, err := dst.AddVertex(); err != nil {
			return err
		}
	}
	for e := 0; e < src.NumEdges(); e++ {
		s, err := src.Source(e)
		if err != nil {
			return err
		}
		t, err := src.Target(e)
		if err != nil {
			return err
		}
		if _, err := dst.AddEdge(s, t); err != nil {
			return err
		}
	}

	return nil
}

// NewCopyOf returns a fresh mutable backend, built under the factory's
// current configuration, containing a copy of src's vertices and edges.
// Vertex and edge weights are copied across only when the corresponding
// flag is true and src implements core.WeightedStore.
func (f *Factory) NewCopyOf(src core.TopologyStore, copyVertexWeights, copyEdgeWeights bool) (core.TopologyStore, error) {
	dst := f.NewGraph()
	if err := replayTopology(src, dst); err != nil {
		return nil, err
	}

	srcWeighted, ok := src.(core.WeightedStore)
	if !ok {
		return dst, nil
	}
	dstWeighted, ok := dst.(core.WeightedStore)
	if !ok {
		return dst, nil
	}
	if copyVertexWeights {
		if err := srcWeighted.VertexWeights().CopyInto(dstWeighted.VertexWeights()); err != nil {
			return nil, err
		}
	}
	if copyEdgeWeights {
		if err := srcWeighted.EdgeWeights().CopyInto(dstWeighted.EdgeWeights()); err != nil {
			return nil, err
		}
	}

	return dst, nil
}

// NewBuilderCopyOf returns a fresh Builder, configured under the
// factory's current configuration, staged with a copy of src's vertices
// and edges. Vertex and edge weights are copied across only when the
// corresponding flag is true and src implements core.WeightedStore.
func (f *Factory) NewBuilderCopyOf(src core.TopologyStore, copyVertexWeights, copyEdgeWeights bool) (*builder.Builder, error) {
	b := f.NewBuilder()
	for i := 0; i < src.NumVertices(); i++ {
		b.AddVertex()
	}
	for e := 0; e < src.NumEdges(); e++ {
		s, err := src.Source(e)
		if err != nil {
			return nil, err
		}
		t, err := src.Target(e)
		if err != nil {
			return nil, err
		}
		b.AddEdge(s, t)
	}

	srcWeighted, ok := src.(core.WeightedStore)
	if !ok {
		return b, nil
	}
	if copyVertexWeights {
		if err := srcWeighted.VertexWeights().CopyInto(b.VertexWeights()); err != nil {
			return nil, err
		}
	}
	if copyEdgeWeights {
		if err := srcWeighted.EdgeWeights().CopyInto(b.EdgeWeights()); err != nil {
			return nil, err
		}
	}

	return b, nil
}
