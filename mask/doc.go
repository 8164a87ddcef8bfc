// Package mask provides a non-copying subgraph view over any
// core.TopologyStore. Given vertex and edge mask sets, View presents the
// complement: every vertex not in the vertex mask, and every edge not in
// the edge mask and not incident to a masked vertex. Every query delegates
// to the underlying store and filters the result through the masks; no
// data is duplicated.
//
// View itself keeps the underlying store's original index identities —
// masking vertex 2 of a 5-vertex graph still calls it vertex 2, just
// absent from enumeration and erroring as core.ErrNoSuchVertex if
// addressed directly. IndexGraph, obtained via View.IndexGraph, is the
// second surface: it renumbers the live vertices and edges into dense
// ranges [0, n') and [0, m'), for callers that need contiguous indices
// (e.g. to feed the result back into a Builder). The renumbering is
// computed once, lazily, on first use, and cached.
//
// Both surfaces are read-only: every mutating TopologyStore method
// returns core.ErrImmutableGraph, with one exception on View —
// MoveEdge succeeds when both the edge and its requested new endpoints
// are live, delegating straight through to the underlying store.
package mask
