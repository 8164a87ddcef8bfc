package builder

import "github.com/katalvlaran/graphcore/core"

// pairKey canonicalizes an edge's endpoints into a map key, collapsing
// (u, v) and (v, u) to the same key for undirected capability checks.
func pairKey(directed bool, u, v int) [2]int {
	if !directed && u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

// validate checks every staged edge against the builder's capabilities,
// in edge order, and returns the first violation found: out-of-range
// endpoints first, then self-edges, then parallel edges. A clean pass
// returns nil.
func (b *Builder) validate() error {
	n := b.vIdx.Size()
	seen := make(map[[2]int]struct{}, len(b.srcStage))
	for e := range b.srcStage {
		s, t := b.srcStage[e], b.tgtStage[e]
		if s < 0 || s >= n || t < 0 || t >= n {
			return core.ErrOutOfRange
		}
		if s == t && !b.caps.AllowSelfEdges {
			return core.ErrSelfEdgeViolation
		}
		key := pairKey(b.caps.Directed, s, t)
		if _, dup := seen[key]; dup && !b.caps.AllowParallelEdges {
			return core.ErrParallelEdgeViolation
		}
		seen[key] = struct{}{}
	}

	return nil
}
