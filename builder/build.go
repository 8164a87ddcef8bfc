package builder

import (
	"github.com/katalvlaran/graphcore/core"
	"github.com/katalvlaran/graphcore/csr"
)

// ReindexReport describes which permutations ReIndexAndBuild or
// ReIndexAndBuildMutable actually applied. A nil field means that axis's
// re-indexing was not requested (or, for vertices, is always the identity
// — see VertexPermutation's doc).
type ReindexReport struct {
	// VertexPermutation is always nil: the backend gives no defined
	// algorithm for reordering vertices, only edges (see csr package),
	// so a requested vertex re-index always resolves to the identity and
	// is not reported as an applied permutation.
	VertexPermutation *csr.Permutation

	// EdgePermutation is the permutation applied to edge indices, or nil
	// if edge re-indexing was not requested.
	EdgePermutation *csr.Permutation
}

// replayInto materializes every staged vertex and edge into dst, in
// staged order, and migrates staged weights across. Callers must validate
// before calling replayInto.
func (b *Builder) replayInto(dst core.TopologyStore) error {
	for i := 0; i < b.vIdx.Size(); i++ {
		if _, err := dst.AddVertex(); err != nil {
			return err
		}
	}
	for e := range b.srcStage {
		if _, err := dst.AddEdge(b.srcStage[e], b.tgtStage[e]); err != nil {
			return err
		}
	}
	if ws, ok := dst.(core.WeightedStore); ok {
		if err := b.vWeights.CopyInto(ws.VertexWeights()); err != nil {
			return err
		}
		if err := b.eWeights.CopyInto(ws.EdgeWeights()); err != nil {
			return err
		}
	}

	return nil
}

// BuildMutable validates the staged graph and materializes it into a
// fresh mutable backend, chosen from the Builder's core.Hint the same way
// a factory would.
func (b *Builder) BuildMutable() (core.TopologyStore, error) {
	if err := b.validate(); err != nil {
		return nil, buildErrorf("BuildMutable", err)
	}
	store := core.NewTopologyStore(b.caps, b.hint)
	if err := b.replayInto(store); err != nil {
		return nil, buildErrorf("BuildMutable", err)
	}

	return store, nil
}

// Build validates the staged graph and freezes it directly into an
// immutable csr.Graph, without edge re-indexing. Equivalent to
// ReIndexAndBuild(false, false) but without the report.
func (b *Builder) Build() (*csr.Graph, error) {
	g, _, err := b.ReIndexAndBuild(false, false)

	return g, err
}

// ReIndexAndBuild validates the staged graph and freezes it into an
// immutable csr.Graph. reIndexEdges requests the directed edge
// re-indexing described in package csr; it is an error to request it on
// an undirected graph. reIndexVertices is accepted for interface
// symmetry with the original design but currently always resolves to the
// identity (see ReindexReport.VertexPermutation).
func (b *Builder) ReIndexAndBuild(reIndexVertices, reIndexEdges bool) (*csr.Graph, *ReindexReport, error) {
	_ = reIndexVertices
	if err := b.validate(); err != nil {
		return nil, nil, buildErrorf("ReIndexAndBuild", err)
	}
	if reIndexEdges && !b.caps.Directed {
		return nil, nil, buildErrorf("ReIndexAndBuild", ErrEmptyReindexTarget)
	}

	g, err := csr.Build(b, reIndexEdges, b.caps.Directed)
	if err != nil {
		return nil, nil, buildErrorf("ReIndexAndBuild", err)
	}

	perm := g.EdgePermutation()
	if err := b.vWeights.CopyInto(g.VertexWeights()); err != nil {
		return nil, nil, buildErrorf("ReIndexAndBuild", err)
	}
	if perm != nil {
		if err := b.eWeights.CopyIntoPermuted(g.EdgeWeights(), perm.Map); err != nil {
			return nil, nil, buildErrorf("ReIndexAndBuild", err)
		}
	} else {
		if err := b.eWeights.CopyInto(g.EdgeWeights()); err != nil {
			return nil, nil, buildErrorf("ReIndexAndBuild", err)
		}
	}

	return g, &ReindexReport{EdgePermutation: perm}, nil
}

// ReIndexAndBuildMutable validates the staged graph, computes the same
// layout ReIndexAndBuild would, and replays it into a fresh mutable
// backend in the resulting (possibly re-indexed) edge order, so that the
// mutable backend's insertion-order iteration benefits from the same
// source-grouped layout a csr.Graph would have used.
func (b *Builder) ReIndexAndBuildMutable(reIndexVertices, reIndexEdges bool) (core.TopologyStore, *ReindexReport, error) {
	frozen, report, err := b.ReIndexAndBuild(reIndexVertices, reIndexEdges)
	if err != nil {
		return nil, nil, err
	}

	store := core.NewTopologyStore(b.caps, b.hint)
	for i := 0; i < frozen.NumVertices(); i++ {
		if _, err := store.AddVertex(); err != nil {
			return nil, nil, buildErrorf("ReIndexAndBuildMutable", err)
		}
	}
	for e := 0; e < frozen.NumEdges(); e++ {
		s, err := frozen.Source(e)
		if err != nil {
			return nil, nil, buildErrorf("ReIndexAndBuildMutable", err)
		}
		t, err := frozen.Target(e)
		if err != nil {
			return nil, nil, buildErrorf("ReIndexAndBuildMutable", err)
		}
		if _, err := store.AddEdge(s, t); err != nil {
			return nil, nil, buildErrorf("ReIndexAndBuildMutable", err)
		}
	}
	if ws, ok := store.(core.WeightedStore); ok {
		if err := frozen.VertexWeights().CopyInto(ws.VertexWeights()); err != nil {
			return nil, nil, buildErrorf("ReIndexAndBuildMutable", err)
		}
		if err := frozen.EdgeWeights().CopyInto(ws.EdgeWeights()); err != nil {
			return nil, nil, buildErrorf("ReIndexAndBuildMutable", err)
		}
	}

	return store, report, nil
}

var _ csr.Source = (*Builder)(nil)
