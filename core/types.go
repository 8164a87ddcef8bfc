package core

// Hint is an optional, non-binding performance hint passed from a factory to
// the backend it selects. Backends may use hints to choose an adjacency
// representation; they never change observable behavior.
type Hint uint8

// Recognized hints. Combine with bitwise OR.
const (
	// HintFastEdgeRemoval favors a backend optimized for heavy interleaved
	// edge removal (the linked backend).
	HintFastEdgeRemoval Hint = 1 << iota

	// HintFastEdgeLookup favors a backend optimized for GetEdge/GetEdges
	// (the hashmap backend).
	HintFastEdgeLookup

	// HintDenseGraph favors a backend optimized for dense enumeration
	// (the array backend).
	HintDenseGraph
)

// Capabilities is the fixed triple that governs which mutations a topology
// store accepts. It is set at construction and never mutated afterward.
type Capabilities struct {
	// Directed selects directed semantics (two adjacency views per vertex)
	// versus undirected (one incident view per vertex).
	Directed bool

	// AllowSelfEdges permits an edge whose source equals its target.
	AllowSelfEdges bool

	// AllowParallelEdges permits more than one edge between the same
	// ordered (directed) or unordered (undirected) pair of vertices.
	AllowParallelEdges bool
}

// TopologyStore is the uniform query and mutation contract implemented by
// every mutable backend (ArrayGraph, LinkedGraph, HashGraph) and, in a
// read-only capacity, by immutable forms (csr.Graph, mask.View). Mutating
// methods on an immutable store return ErrImmutableGraph.
type TopologyStore interface {
	// Capabilities returns the fixed capability triple for this store.
	Capabilities() Capabilities

	// NumVertices returns the current size of the vertex index set.
	NumVertices() int

	// NumEdges returns the current size of the edge index set.
	NumEdges() int

	// Source returns the source endpoint of edge e.
	Source(e int) (int, error)

	// Target returns the target endpoint of edge e.
	Target(e int) (int, error)

	// Endpoint returns the endpoint of e opposite to v. Returns an error
	// if v is not one of e's endpoints.
	Endpoint(e, v int) (int, error)

	// OutEdges returns the edges leaving v (directed) or incident to v
	// (undirected).
	OutEdges(v int) ([]int, error)

	// InEdges returns the edges entering v (directed); on an undirected
	// store it is equivalent to OutEdges.
	InEdges(v int) ([]int, error)

	// IncidentEdges returns every edge touching v, regardless of
	// direction.
	IncidentEdges(v int) ([]int, error)

	// GetEdge returns one edge between u and v, or ok=false if none
	// exists. The tie-break among parallel edges is unspecified.
	GetEdge(u, v int) (e int, ok bool, err error)

	// GetEdges returns every edge between u and v.
	GetEdges(u, v int) ([]int, error)

	// AddVertex appends a new vertex and returns its index.
	AddVertex() (int, error)

	// RemoveVertex removes v and all edges incident to it.
	RemoveVertex(v int) error

	// AddEdge appends a new edge u->v (or {u,v} if undirected) and
	// returns its index.
	AddEdge(u, v int) (int, error)

	// RemoveEdge removes edge e.
	RemoveEdge(e int) error

	// RemoveEdgesOf removes every edge incident to v.
	RemoveEdgesOf(v int) error

	// RemoveOutEdgesOf removes every edge leaving v.
	RemoveOutEdgesOf(v int) error

	// RemoveInEdgesOf removes every edge entering v.
	RemoveInEdgesOf(v int) error

	// MoveEdge re-pegs edge e's endpoints to (u, v), re-validating
	// capability invariants.
	MoveEdge(e, u, v int) error

	// ReverseEdge swaps e's endpoints. Directed stores only; a self-edge
	// reversal is a no-op.
	ReverseEdge(e int) error

	// Clear removes every vertex and edge.
	Clear()

	// ClearEdges removes every edge but keeps the vertex set.
	ClearEdges()
}

// WeightedStore is implemented by every backend (mutable or immutable)
// that attaches weight containers to its vertex and edge index sets. It
// lets generic callers like the builder migrate staged weights into
// whichever concrete backend a factory selected, without depending on
// that backend's concrete type.
type WeightedStore interface {
	VertexWeights() *WeightsRegistry
	EdgeWeights() *WeightsRegistry
}
