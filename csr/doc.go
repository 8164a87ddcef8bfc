// Package csr provides the immutable, compressed-sparse-row topology
// backend built by freezing a builder or any core.TopologyStore. Adjacency
// is flattened into one contiguous array of incident edge indices plus a
// per-vertex prefix-sum offset table, trading mutation for iteration
// locality.
//
// Construction is a two-pass bucket layout in O(n+m): the first pass
// counts per-vertex bucket sizes and turns them into an exclusive
// prefix-sum offset table, the second pass fills buckets through a
// separate, incrementing cursor copy of those offsets, so the offset table
// itself stays in canonical prefix-sum form and is never shifted.
//
// Directed graphs may additionally request edge re-indexing: a
// permutation that groups edges by source and orders them by target
// within a source, built by a stable two-phase bucket sort (first by
// target, then by source). Under that permutation outEdges becomes the
// identity [0,1,...,m-1] with implicit per-vertex ranges, removing one
// level of indirection from the hottest iteration path.
//
// A Graph's topology is immutable: every mutating TopologyStore method
// returns core.ErrImmutableGraph. Its weights registries are ordinary
// core.WeightsRegistry values: after Build, containers can still be added
// to them and their values changed with Set.
package csr
