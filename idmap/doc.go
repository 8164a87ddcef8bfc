// Package idmap provides an opaque-identifier layer over a
// core.TopologyStore's dense integer index space. Two forms are
// available:
//
//   - IdentityMap treats the index itself as the public identifier — the
//     zero-cost fast path for callers who are happy working in ints.
//   - Map[ID] maintains a bijection between the dense index space and an
//     arbitrary comparable ID type, backed by a dense index→id array and
//     a hash map for the reverse direction.
//
// Map[ID] subscribes to the owning core.IndexSet as a core.IndexListener:
// on append it mints a fresh id via its MintFn, on swap-remove it moves
// the relocated element's id mapping in O(1), mirroring how
// core.Weights[T] stays in sync with structural changes.
//
// Minting only covers the "no caller-supplied id" path. A caller that
// wants to assign a specific id to a freshly appended index calls
// Reassign immediately after the append; see Map.Reassign.
package idmap
