package csr

// Permutation is a bijection [0,m) -> [0,m) applied to edge indices when
// building a re-indexed csr.Graph. The forward map is computed eagerly at
// build time; the inverse is computed once on demand and cached.
type Permutation struct {
	forward []int
	inverse []int
}

// newPermutation wraps a precomputed forward mapping.
func newPermutation(forward []int) *Permutation {
	return &Permutation{forward: forward}
}

// Map returns the new index assigned to orig.
func (p *Permutation) Map(orig int) int {
	return p.forward[orig]
}

// Inverse returns the inverse mapping new -> orig, computing and caching it
// on first use.
func (p *Permutation) Inverse() []int {
	if p.inverse == nil {
		inv := make([]int, len(p.forward))
		for orig, n := range p.forward {
			inv[n] = orig
		}
		p.inverse = inv
	}

	return p.inverse
}

// prefixSumCounts turns a per-bucket count array (length n) into an
// exclusive-prefix-sum begin array (length n+1): begin[v] is the first
// slot of bucket v, begin[v+1] is one past its last. The input counts
// slice is not mutated.
func prefixSumCounts(counts []int) []int {
	begin := make([]int, len(counts)+1)
	running := 0
	for v, c := range counts {
		begin[v] = running
		running += c
	}
	begin[len(counts)] = running

	return begin
}

// buildEdgeReindex computes the directed edge re-indexing permutation
// described in the spec: a stable two-phase bucket sort that groups edges
// by source and, within a source, orders them by target. Phase one buckets
// edges by target (stable in original edge-index order); phase two buckets
// that intermediate sequence by source (stable, so ties preserve the
// target order from phase one). The returned begin slice is the resulting
// per-source offset table (identical to the unordered outBegin, since
// reordering within a bucket doesn't change bucket sizes).
func buildEdgeReindex(n int, src, tgt []int) (forward []int, outBegin []int) {
	m := len(src)

	targetCounts := make([]int, n)
	sourceCounts := make([]int, n)
	for e := 0; e < m; e++ {
		targetCounts[tgt[e]]++
		sourceCounts[src[e]]++
	}

	targetBegin := prefixSumCounts(targetCounts)
	targetCursor := append([]int(nil), targetBegin[:n]...)
	order1 := make([]int, m)
	for e := 0; e < m; e++ {
		t := tgt[e]
		order1[targetCursor[t]] = e
		targetCursor[t]++
	}

	sourceBegin := prefixSumCounts(sourceCounts)
	sourceCursor := append([]int(nil), sourceBegin[:n]...)
	forward = make([]int, m)
	for _, e := range order1 {
		s := src[e]
		forward[e] = sourceCursor[s]
		sourceCursor[s]++
	}

	return forward, sourceBegin
}
