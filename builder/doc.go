// Package builder provides a staging area for assembling a graph without
// paying for a live adjacency structure while vertices and edges are still
// being discovered. It centralizes the validation every backend would
// otherwise repeat — endpoint range, self-edge and parallel-edge checks —
// so that build-time failures are reported once, uniformly, and leave
// nothing behind.
//
// The key type is Builder. Stage vertices and edges with AddVertex,
// AddVertices, AddEdge and AddEdgesReassignIds; attach staged weight
// containers with AddVerticesWeights/AddEdgesWeights. Call BuildMutable to
// validate and materialize a mutable core.TopologyStore (array, linked or
// hashmap, chosen by whatever core.Hint the Builder was configured with),
// or Build/ReIndexAndBuild to freeze an immutable csr.Graph.
// ReIndexAndBuild and ReIndexAndBuildMutable take vertex and edge
// re-indexing flags; ReIndexAndBuildMutable replays the resulting layout
// into a mutable backend chosen the same way BuildMutable chooses one.
//
// A Builder is single-use: once a Build* method succeeds, the staged state
// is considered consumed. Calling a Build* method again re-validates and
// re-materializes from the same staged data, since nothing is mutated by
// building itself — but callers should treat the result of the first call
// as canonical.
package builder
