package core

import "errors"

// Sentinel errors returned by every TopologyStore implementation and by the
// builder, csr, idmap and mask packages built on top of it. Callers branch
// on these with errors.Is; messages are not part of the contract.
var (
	// ErrNoSuchVertex indicates a vertex index/identifier that is not live.
	ErrNoSuchVertex = errors.New("core: no such vertex")

	// ErrNoSuchEdge indicates an edge index/identifier that is not live.
	ErrNoSuchEdge = errors.New("core: no such edge")

	// ErrOutOfRange indicates a staged edge endpoint that is not below the
	// builder's vertex count at build time. The mutable backends report a
	// non-live endpoint passed to AddEdge or MoveEdge as ErrNoSuchVertex,
	// not as ErrOutOfRange.
	ErrOutOfRange = errors.New("core: endpoint out of range")

	// ErrSelfEdgeViolation indicates a mutation or build would create a
	// self-edge on a graph where self-edges are disallowed.
	ErrSelfEdgeViolation = errors.New("core: self-edges not allowed")

	// ErrParallelEdgeViolation indicates a mutation or build would create
	// a second edge between endpoints already connected, on a graph where
	// parallel edges are disallowed.
	ErrParallelEdgeViolation = errors.New("core: parallel edges not allowed")

	// ErrImmutableGraph indicates a mutation was attempted on an immutable
	// backend (a csr.Graph or a mask.View). The mutable backends also
	// return it from ReverseEdge on an undirected store.
	ErrImmutableGraph = errors.New("core: graph is immutable")

	// ErrDuplicateWeightsKey indicates a weights container was added under
	// a key that already has one attached.
	ErrDuplicateWeightsKey = errors.New("core: weights key already in use")

	// ErrUnknownWeightsKey indicates a weights accessor was called with a
	// key that has no container attached.
	ErrUnknownWeightsKey = errors.New("core: no weights registered under key")

	// ErrUnsupportedBuilderOperation indicates an operation the builder
	// cannot perform in its current mode, e.g. assigning a non-canonical
	// explicit index to a staged vertex.
	ErrUnsupportedBuilderOperation = errors.New("core: unsupported builder operation")
)
