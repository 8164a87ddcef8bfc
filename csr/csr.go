package csr

import "github.com/katalvlaran/graphcore/core"

// Graph is the immutable compressed-sparse-row topology backend. It is
// built once, by Build, and never mutated afterward; every TopologyStore
// method that would change structure returns core.ErrImmutableGraph.
type Graph struct {
	caps core.Capabilities

	n, m int

	outBegin []int
	outAdj   []int

	// inBegin/inAdj are the optional reverse index for directed graphs.
	// When nil, InEdges falls back to a linear scan over ends.
	inBegin []int
	inAdj   []int

	ends *core.Endpoints

	// edgePerm is non-nil when Build was asked to re-index edges. Source,
	// Target and ends are already expressed in the new numbering; edgePerm
	// is kept only so callers can translate indices they recorded before
	// freezing the graph.
	edgePerm *Permutation

	vIdx *core.IndexSet
	eIdx *core.IndexSet

	vWeights *core.WeightsRegistry
	eWeights *core.WeightsRegistry
}

// VertexWeights exposes the vertex-keyed weights registry for use with the
// generic AddWeights/GetWeights helpers in package core.
func (g *Graph) VertexWeights() *core.WeightsRegistry { return g.vWeights }

// EdgeWeights exposes the edge-keyed weights registry.
func (g *Graph) EdgeWeights() *core.WeightsRegistry { return g.eWeights }

var _ core.WeightedStore = (*Graph)(nil)

// EdgePermutation returns the forward edge re-indexing applied at build
// time, or nil if Build was not asked to re-index edges.
func (g *Graph) EdgePermutation() *Permutation {
	return g.edgePerm
}

// Build freezes src into an immutable Graph. When reIndexEdges is true and
// src is directed, edges are renumbered by the stable two-phase bucket
// sort described in the package doc, so that outAdj becomes the identity
// permutation; it is an error to request re-indexing on an undirected
// source. When buildReverseIndex is true and src is directed, a second
// (inBegin, inAdj) pair is built eagerly; otherwise InEdges falls back to
// a linear scan.
func Build(src Source, reIndexEdges, buildReverseIndex bool) (*Graph, error) {
	caps := src.Capabilities()
	if reIndexEdges && !caps.Directed {
		return nil, ErrReindexUndirected
	}

	n := src.NumVertices()
	m := src.NumEdges()

	srcArr := make([]int, m)
	tgtArr := make([]int, m)
	for e := 0; e < m; e++ {
		s, err := src.Source(e)
		if err != nil {
			return nil, err
		}
		t, err := src.Target(e)
		if err != nil {
			return nil, err
		}
		srcArr[e] = s
		tgtArr[e] = t
	}

	var (
		outBegin []int
		outAdj   []int
		inBegin  []int
		inAdj    []int
		perm     *Permutation
	)

	if caps.Directed {
		if reIndexEdges {
			forward, newOutBegin := buildEdgeReindex(n, srcArr, tgtArr)
			permutedSrc := make([]int, m)
			permutedTgt := make([]int, m)
			for e := 0; e < m; e++ {
				permutedSrc[forward[e]] = srcArr[e]
				permutedTgt[forward[e]] = tgtArr[e]
			}
			srcArr, tgtArr = permutedSrc, permutedTgt
			outBegin = newOutBegin
			outAdj = identitySlice(m)
			perm = newPermutation(forward)
		} else {
			outBegin, outAdj = bucketBySource(n, srcArr, tgtArr)
		}

		if buildReverseIndex {
			inBegin, inAdj = bucketByTarget(n, srcArr, tgtArr)
		}
	} else {
		outBegin, outAdj = bucketIncident(n, srcArr, tgtArr)
	}

	ends := core.NewEndpoints()
	for e := 0; e < m; e++ {
		ends.Append(srcArr[e], tgtArr[e])
	}

	vIdx := core.NewIndexSet()
	for i := 0; i < n; i++ {
		vIdx.Append()
	}
	eIdx := core.NewIndexSet()
	for i := 0; i < m; i++ {
		eIdx.Append()
	}

	return &Graph{
		caps:     caps,
		n:        n,
		m:        m,
		outBegin: outBegin,
		outAdj:   outAdj,
		inBegin:  inBegin,
		inAdj:    inAdj,
		ends:     ends,
		edgePerm: perm,
		vIdx:     vIdx,
		eIdx:     eIdx,
		vWeights: core.NewWeightsRegistry(vIdx),
		eWeights: core.NewWeightsRegistry(eIdx),
	}, nil
}

// identitySlice returns [0, 1, ..., k-1].
func identitySlice(k int) []int {
	s := make([]int, k)
	for i := range s {
		s[i] = i
	}

	return s
}

// bucketBySource lays out edges [0,m) into per-source buckets, preserving
// original edge-index order within a bucket.
func bucketBySource(n int, src, tgt []int) (begin, adj []int) {
	counts := make([]int, n)
	for _, s := range src {
		counts[s]++
	}
	begin = prefixSumCounts(counts)
	cursor := append([]int(nil), begin[:n]...)
	adj = make([]int, len(src))
	for e, s := range src {
		adj[cursor[s]] = e
		cursor[s]++
	}

	return begin, adj
}

// bucketByTarget lays out edges [0,m) into per-target buckets, preserving
// original edge-index order within a bucket.
func bucketByTarget(n int, src, tgt []int) (begin, adj []int) {
	counts := make([]int, n)
	for _, t := range tgt {
		counts[t]++
	}
	begin = prefixSumCounts(counts)
	cursor := append([]int(nil), begin[:n]...)
	adj = make([]int, len(tgt))
	for e, t := range tgt {
		adj[cursor[t]] = e
		cursor[t]++
	}

	return begin, adj
}

// bucketIncident lays out edges [0,m) into per-vertex incident buckets for
// an undirected source: an edge appears in both its source's and target's
// bucket, except a self-edge, which appears once.
func bucketIncident(n int, src, tgt []int) (begin, adj []int) {
	counts := make([]int, n)
	for e := range src {
		s, t := src[e], tgt[e]
		counts[s]++
		if s != t {
			counts[t]++
		}
	}
	begin = prefixSumCounts(counts)
	cursor := append([]int(nil), begin[:n]...)
	adj = make([]int, begin[n])
	for e := range src {
		s, t := src[e], tgt[e]
		adj[cursor[s]] = e
		cursor[s]++
		if s != t {
			adj[cursor[t]] = e
			cursor[t]++
		}
	}

	return begin, adj
}

var _ core.TopologyStore = (*Graph)(nil)

// Capabilities returns the fixed capability triple inherited from the
// source this graph was built from.
func (g *Graph) Capabilities() core.Capabilities {
	return g.caps
}

// NumVertices returns the vertex count fixed at build time.
func (g *Graph) NumVertices() int {
	return g.n
}

// NumEdges returns the edge count fixed at build time.
func (g *Graph) NumEdges() int {
	return g.m
}

func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return core.ErrNoSuchVertex
	}

	return nil
}

func (g *Graph) checkEdge(e int) error {
	if e < 0 || e >= g.m {
		return core.ErrNoSuchEdge
	}

	return nil
}

// Source returns edge e's source endpoint.
func (g *Graph) Source(e int) (int, error) {
	if err := g.checkEdge(e); err != nil {
		return 0, err
	}

	return g.ends.Source(e), nil
}

// Target returns edge e's target endpoint.
func (g *Graph) Target(e int) (int, error) {
	if err := g.checkEdge(e); err != nil {
		return 0, err
	}

	return g.ends.Target(e), nil
}

// Endpoint returns the endpoint of e opposite to v.
func (g *Graph) Endpoint(e, v int) (int, error) {
	if err := g.checkEdge(e); err != nil {
		return 0, err
	}
	other, ok := g.ends.Endpoint(e, v)
	if !ok {
		return 0, core.ErrNoSuchVertex
	}

	return other, nil
}

// OutEdges returns the edges leaving v (directed) or incident to v
// (undirected).
func (g *Graph) OutEdges(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	return append([]int(nil), g.outAdj[g.outBegin[v]:g.outBegin[v+1]]...), nil
}

// InEdges returns the edges entering v. On an undirected store it is
// equivalent to OutEdges; on a directed store it uses the eager reverse
// index when present, and falls back to a linear scan of ends otherwise.
func (g *Graph) InEdges(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	if !g.caps.Directed {
		return g.OutEdges(v)
	}
	if g.inBegin != nil {
		return append([]int(nil), g.inAdj[g.inBegin[v]:g.inBegin[v+1]]...), nil
	}

	var result []int
	for e := 0; e < g.m; e++ {
		if g.ends.Target(e) == v {
			result = append(result, e)
		}
	}

	return result, nil
}

// IncidentEdges returns every edge touching v, regardless of direction.
func (g *Graph) IncidentEdges(v int) ([]int, error) {
	if !g.caps.Directed {
		return g.OutEdges(v)
	}
	out, err := g.OutEdges(v)
	if err != nil {
		return nil, err
	}
	in, err := g.InEdges(v)
	if err != nil {
		return nil, err
	}
	seen := make(map[int]struct{}, len(out)+len(in))
	result := make([]int, 0, len(out)+len(in))
	for _, e := range out {
		if _, ok := seen[e]; !ok {
			seen[e] = struct{}{}
			result = append(result, e)
		}
	}
	for _, e := range in {
		if _, ok := seen[e]; !ok {
			seen[e] = struct{}{}
			result = append(result, e)
		}
	}

	return result, nil
}

// GetEdge returns one edge between u and v, or ok=false if none exists.
func (g *Graph) GetEdge(u, v int) (int, bool, error) {
	if err := g.checkVertex(u); err != nil {
		return 0, false, err
	}
	if err := g.checkVertex(v); err != nil {
		return 0, false, err
	}
	edges, err := g.OutEdges(u)
	if err != nil {
		return 0, false, err
	}
	for _, e := range edges {
		if other, _ := g.ends.Endpoint(e, u); other == v {
			return e, true, nil
		}
	}

	return 0, false, nil
}

// GetEdges returns every edge between u and v.
func (g *Graph) GetEdges(u, v int) ([]int, error) {
	if err := g.checkVertex(u); err != nil {
		return nil, err
	}
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	edges, err := g.OutEdges(u)
	if err != nil {
		return nil, err
	}
	var result []int
	for _, e := range edges {
		if other, _ := g.ends.Endpoint(e, u); other == v {
			result = append(result, e)
		}
	}

	return result, nil
}

// AddVertex always fails: Graph is immutable.
func (g *Graph) AddVertex() (int, error) {
	return 0, core.ErrImmutableGraph
}

// RemoveVertex always fails: Graph is immutable.
func (g *Graph) RemoveVertex(v int) error {
	return core.ErrImmutableGraph
}

// AddEdge always fails: Graph is immutable.
func (g *Graph) AddEdge(u, v int) (int, error) {
	return 0, core.ErrImmutableGraph
}

// RemoveEdge always fails: Graph is immutable.
func (g *Graph) RemoveEdge(e int) error {
	return core.ErrImmutableGraph
}

// RemoveEdgesOf always fails: Graph is immutable.
func (g *Graph) RemoveEdgesOf(v int) error {
	return core.ErrImmutableGraph
}

// RemoveOutEdgesOf always fails: Graph is immutable.
func (g *Graph) RemoveOutEdgesOf(v int) error {
	return core.ErrImmutableGraph
}

// RemoveInEdgesOf always fails: Graph is immutable.
func (g *Graph) RemoveInEdgesOf(v int) error {
	return core.ErrImmutableGraph
}

// MoveEdge always fails: Graph is immutable.
func (g *Graph) MoveEdge(e, u, v int) error {
	return core.ErrImmutableGraph
}

// ReverseEdge always fails: Graph is immutable.
func (g *Graph) ReverseEdge(e int) error {
	return core.ErrImmutableGraph
}

// Clear has no effect: Graph is immutable and carries no error channel on
// this method per the TopologyStore contract.
func (g *Graph) Clear() {}

// ClearEdges has no effect: Graph is immutable and carries no error
// channel on this method per the TopologyStore contract.
func (g *Graph) ClearEdges() {}
