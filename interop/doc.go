// Package interop adapts a core.TopologyStore to gonum.org/v1/gonum/graph,
// so algorithms written against gonum's graph.Graph/graph.Directed
// interfaces (shortest paths, traversals, community detection, ...) can
// run directly over any backend in this module without a conversion
// step. The adapter is read-only and int64-node-ID based, matching
// gonum's convention; node IDs are simply the store's own vertex
// indices widened to int64.
package interop
