package builder

import "github.com/katalvlaran/graphcore/core"

// Builder is a staging area for vertices, edges and their weights. It
// performs no adjacency bookkeeping while staging; validation and backend
// construction happen together, once, in a Build* call.
type Builder struct {
	caps core.Capabilities
	hint core.Hint

	vIdx *core.IndexSet
	eIdx *core.IndexSet

	srcStage []int
	tgtStage []int

	vWeights *core.WeightsRegistry
	eWeights *core.WeightsRegistry
}

// New returns an empty Builder for a graph with the given capabilities.
func New(caps core.Capabilities, opts ...Option) *Builder {
	vIdx := core.NewIndexSet()
	eIdx := core.NewIndexSet()
	b := &Builder{
		caps:     caps,
		vIdx:     vIdx,
		eIdx:     eIdx,
		vWeights: core.NewWeightsRegistry(vIdx),
		eWeights: core.NewWeightsRegistry(eIdx),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddVertex stages one new vertex and returns its index. Staged vertex
// indices are strictly the next contiguous integer; there is no way to
// request any other value.
func (b *Builder) AddVertex() int {
	return b.vIdx.Append()
}

// AddVertices stages n new vertices and returns the inclusive range of
// indices assigned to them, [first, last]. Panics if n <= 0.
func (b *Builder) AddVertices(n int) (first, last int) {
	if n <= 0 {
		panic("builder: AddVertices requires n > 0")
	}
	first = b.vIdx.Size()
	for i := 0; i < n; i++ {
		b.vIdx.Append()
	}

	return first, b.vIdx.Size() - 1
}

// AddEdge stages one new edge between source and target and returns its
// index. No validity checks (range, self-edge, parallel-edge) are
// performed until a Build* call.
func (b *Builder) AddEdge(source, target int) int {
	e := b.eIdx.Append()
	b.srcStage = append(b.srcStage, source)
	b.tgtStage = append(b.tgtStage, target)

	return e
}

// EdgeEndpoints is one (source, target) pair passed to
// AddEdgesReassignIds. Any identifier a caller associates with a pair
// elsewhere is not part of this type and is never consulted: only the
// endpoints matter.
type EdgeEndpoints struct {
	Source int
	Target int
}

// AddEdgesReassignIds stages every pair in edges, in order, ignoring
// whatever identifiers the caller may have used to track them elsewhere,
// and returns the contiguous id range assigned, [first, last]. Panics if
// edges is empty.
func (b *Builder) AddEdgesReassignIds(edges []EdgeEndpoints) (first, last int) {
	if len(edges) == 0 {
		panic("builder: AddEdgesReassignIds requires a non-empty edge set")
	}
	first = b.eIdx.Size()
	for _, pair := range edges {
		b.AddEdge(pair.Source, pair.Target)
	}

	return first, b.eIdx.Size() - 1
}

// AddVerticesWeights attaches a staged, vertex-keyed weight container
// under key with the given default. It returns core.ErrDuplicateWeightsKey
// if key is already in use.
func AddVerticesWeights[T any](b *Builder, key string, def T) (*core.Weights[T], error) {
	return core.AddWeights[T](b.vWeights, key, def)
}

// AddEdgesWeights attaches a staged, edge-keyed weight container under key
// with the given default. It returns core.ErrDuplicateWeightsKey if key is
// already in use.
func AddEdgesWeights[T any](b *Builder, key string, def T) (*core.Weights[T], error) {
	return core.AddWeights[T](b.eWeights, key, def)
}

// NumStagedVertices returns the number of vertices staged so far.
func (b *Builder) NumStagedVertices() int {
	return b.vIdx.Size()
}

// NumStagedEdges returns the number of edges staged so far.
func (b *Builder) NumStagedEdges() int {
	return b.eIdx.Size()
}

// Capabilities returns the capability triple this builder validates
// against at build time.
func (b *Builder) Capabilities() core.Capabilities {
	return b.caps
}

// VertexWeights exposes the staged vertex-keyed weights registry, so
// callers outside this package (e.g. a factory copying an existing
// graph's weights into a new builder) can migrate weights without the
// builder needing to know their concrete element types.
func (b *Builder) VertexWeights() *core.WeightsRegistry { return b.vWeights }

// EdgeWeights exposes the staged edge-keyed weights registry.
func (b *Builder) EdgeWeights() *core.WeightsRegistry { return b.eWeights }

var _ core.WeightedStore = (*Builder)(nil)

// NumVertices and NumEdges below, plus Source/Target, let a Builder
// itself satisfy csr.Source, so ReIndexAndBuild can freeze a Graph
// directly from staged state without first materializing a mutable
// backend.

// NumVertices returns the number of vertices staged so far.
func (b *Builder) NumVertices() int {
	return b.vIdx.Size()
}

// NumEdges returns the number of edges staged so far.
func (b *Builder) NumEdges() int {
	return b.eIdx.Size()
}

// Source returns staged edge e's source endpoint.
func (b *Builder) Source(e int) (int, error) {
	if e < 0 || e >= len(b.srcStage) {
		return 0, core.ErrNoSuchEdge
	}

	return b.srcStage[e], nil
}

// Target returns staged edge e's target endpoint.
func (b *Builder) Target(e int) (int, error) {
	if e < 0 || e >= len(b.tgtStage) {
		return 0, core.ErrNoSuchEdge
	}

	return b.tgtStage[e], nil
}
