package mask

import "github.com/katalvlaran/graphcore/core"

// WeightAdapter exposes a read-only, api-indexed view over an underlying
// Weights[T] container, translating through an IndexGraph's renumbering.
// It has no Set: weight mutation through a masked, renumbered view would
// silently reach back into the underlying graph, which contradicts the
// view's read-only contract.
type WeightAdapter[T any] struct {
	underlying *core.Weights[T]
	toOrig     []int
}

// Len returns the number of api-indexed entries.
func (a *WeightAdapter[T]) Len() int {
	return len(a.toOrig)
}

// Get returns the value at api index i.
func (a *WeightAdapter[T]) Get(i int) T {
	return a.underlying.Get(a.toOrig[i])
}

// VertexWeights returns a read-only, renumbered adapter over the vertex
// weight container registered under key on the view's underlying store.
func VertexWeights[T any](ig *IndexGraph, reg *core.WeightsRegistry, key string) (*WeightAdapter[T], error) {
	w, err := core.GetWeights[T](reg, key)
	if err != nil {
		return nil, err
	}

	return &WeightAdapter[T]{underlying: w, toOrig: ig.verts.toOrig}, nil
}

// EdgeWeights returns a read-only, renumbered adapter over the edge
// weight container registered under key on the view's underlying store.
func EdgeWeights[T any](ig *IndexGraph, reg *core.WeightsRegistry, key string) (*WeightAdapter[T], error) {
	w, err := core.GetWeights[T](reg, key)
	if err != nil {
		return nil, err
	}

	return &WeightAdapter[T]{underlying: w, toOrig: ig.edges.toOrig}, nil
}
