// Package core defines the storage primitives shared by every topology
// backend in graphcore: dense vertex/edge index sets, per-index weight
// containers, the endpoints table, and the TopologyStore contract that the
// array, linked and hashmap backends all implement identically.
//
// Vertices and edges are addressed by dense, contiguous integer indices
// (vertices occupy [0, NumVertices()), edges occupy [0, NumEdges())).
// Removing an element swaps the last live index into the removed slot
// rather than leaving a hole, so indices stay contiguous between public
// calls. Anything that needs to track an index across such a swap
// (weight containers, the id/index bridge in package idmap) subscribes
// to the owning IndexSet as an IndexListener.
//
// Three backends are provided, differing only in adjacency representation
// and therefore in their per-operation cost profile:
//
//   - ArrayGraph:  per-vertex dynamic arrays of incident edge indices.
//     Best all-round default; O(1) amortized mutation.
//   - LinkedGraph: intrusive doubly linked lists keyed by edge index
//     (parallel next/prev arrays, -1 terminators). Best under heavy
//     interleaved removal.
//   - HashGraph:   per-vertex neighbor -> edge hash maps, with parallel
//     edges chained through a per-edge "next" array. Gives expected O(1)
//     GetEdge and enforces the no-parallel-edge invariant at insertion.
//
// None of the three backends is safe for concurrent mutation; callers
// synchronize externally if multiple goroutines touch the same graph.
// Package csr builds an immutable, cache-friendly form from any backend;
// package mask layers a non-copying subgraph view on top of any backend;
// package idmap layers an opaque identifier surface on top of any backend.
package core
