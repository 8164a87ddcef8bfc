package core

// HashGraph is the hashmap-backed TopologyStore: adjacency is a per-vertex
// map from neighbor index to the head of a singly linked chain of edges
// sharing that neighbor (chainNext, keyed by edge index, -1 terminated).
// A simple (non-parallel) pair always has a chain of length one, so the
// same structure serves both capability settings without a format switch.
// This backend gives expected O(1) GetEdge/GetEdges and enforces the
// no-parallel-edge invariant at insertion for free (map lookup instead of
// a linear adjacency scan). Enumeration order — of OutEdges/InEdges, which
// must walk every bucket — is hash-bucket order and is not specified to be
// stable across equivalent graphs.
type HashGraph struct {
	caps Capabilities
	vIdx *IndexSet
	eIdx *IndexSet
	ends *Endpoints

	out []map[int]int // out[v][neighbor] = head edge index of chain (directed: out-edges; undirected: incident)
	in  []map[int]int // in[v][neighbor] = head edge index of chain; unused when undirected

	chainNext []int // per-edge: next edge sharing the same (from,to) bucket, -1 terminated

	vWeights *WeightsRegistry
	eWeights *WeightsRegistry
}

// NewHashGraph returns an empty HashGraph with the given capabilities.
func NewHashGraph(caps Capabilities) *HashGraph {
	vIdx := NewIndexSet()
	eIdx := NewIndexSet()

	return &HashGraph{
		caps:     caps,
		vIdx:     vIdx,
		eIdx:     eIdx,
		ends:     NewEndpoints(),
		vWeights: NewWeightsRegistry(vIdx),
		eWeights: NewWeightsRegistry(eIdx),
	}
}

func (g *HashGraph) Capabilities() Capabilities      { return g.caps }
func (g *HashGraph) NumVertices() int                { return g.vIdx.Size() }
func (g *HashGraph) NumEdges() int                   { return g.eIdx.Size() }
func (g *HashGraph) VertexWeights() *WeightsRegistry { return g.vWeights }
func (g *HashGraph) EdgeWeights() *WeightsRegistry   { return g.eWeights }

func (g *HashGraph) Source(e int) (int, error) {
	if !g.eIdx.Contains(e) {
		return 0, ErrNoSuchEdge
	}

	return g.ends.Source(e), nil
}

func (g *HashGraph) Target(e int) (int, error) {
	if !g.eIdx.Contains(e) {
		return 0, ErrNoSuchEdge
	}

	return g.ends.Target(e), nil
}

func (g *HashGraph) Endpoint(e, v int) (int, error) {
	if !g.eIdx.Contains(e) {
		return 0, ErrNoSuchEdge
	}
	other, ok := g.ends.Endpoint(e, v)
	if !ok {
		return 0, ErrNoSuchVertex
	}

	return other, nil
}

// bucketsToSlice flattens a neighbor->chain-head map into a flat edge-index
// slice; enumeration order is hash-bucket order, by spec left unspecified.
func (g *HashGraph) bucketsToSlice(m map[int]int) []int {
	var out []int
	for _, head := range m {
		for cur := head; cur != -1; cur = g.chainNext[cur] {
			out = append(out, cur)
		}
	}

	return out
}

func (g *HashGraph) OutEdges(v int) ([]int, error) {
	if !g.vIdx.Contains(v) {
		return nil, ErrNoSuchVertex
	}

	return g.bucketsToSlice(g.out[v]), nil
}

func (g *HashGraph) InEdges(v int) ([]int, error) {
	if !g.vIdx.Contains(v) {
		return nil, ErrNoSuchVertex
	}
	if !g.caps.Directed {
		return g.OutEdges(v)
	}

	return g.bucketsToSlice(g.in[v]), nil
}

func (g *HashGraph) IncidentEdges(v int) ([]int, error) {
	if !g.vIdx.Contains(v) {
		return nil, ErrNoSuchVertex
	}
	if !g.caps.Directed {
		return g.OutEdges(v)
	}
	out, _ := g.OutEdges(v)
	in, _ := g.InEdges(v)

	return append(out, in...), nil
}

// GetEdge returns the head of the (u,v) chain, an expected O(1) map
// lookup. Tie-break among parallel edges is unspecified (head of chain).
func (g *HashGraph) GetEdge(u, v int) (int, bool, error) {
	if !g.vIdx.Contains(u) || !g.vIdx.Contains(v) {
		return 0, false, ErrNoSuchVertex
	}
	head, ok := g.out[u][v]

	return head, ok, nil
}

func (g *HashGraph) GetEdges(u, v int) ([]int, error) {
	if !g.vIdx.Contains(u) || !g.vIdx.Contains(v) {
		return nil, ErrNoSuchVertex
	}
	head, ok := g.out[u][v]
	if !ok {
		return nil, nil
	}
	var out []int
	for cur := head; cur != -1; cur = g.chainNext[cur] {
		out = append(out, cur)
	}

	return out, nil
}

func (g *HashGraph) AddVertex() (int, error) {
	v := g.vIdx.Append()
	g.out = append(g.out, nil)
	if g.caps.Directed {
		g.in = append(g.in, nil)
	}

	return v, nil
}

func (g *HashGraph) RemoveVertex(v int) error {
	if !g.vIdx.Contains(v) {
		return ErrNoSuchVertex
	}
	for len(g.out[v]) > 0 {
		any := g.bucketsToSlice(g.out[v])[0]
		if err := g.RemoveEdge(any); err != nil {
			return err
		}
	}
	if g.caps.Directed {
		for len(g.in[v]) > 0 {
			any := g.bucketsToSlice(g.in[v])[0]
			if err := g.RemoveEdge(any); err != nil {
				return err
			}
		}
	}

	last := g.vIdx.Size() - 1
	if v != last {
		g.renameVertexInEdges(last, v)
		g.out[v] = g.out[last]
		if g.caps.Directed {
			g.in[v] = g.in[last]
		}
	}
	g.out = g.out[:last]
	if g.caps.Directed {
		g.in = g.in[:last]
	}
	g.vIdx.SwapRemove(v)

	return nil
}

func (g *HashGraph) renameVertexInEdges(old, new int) {
	for _, e := range g.bucketsToSlice(g.out[old]) {
		g.ends.ReplaceEndpoint(e, old, new)
	}
	if g.caps.Directed {
		for _, e := range g.bucketsToSlice(g.in[old]) {
			g.ends.ReplaceEndpoint(e, old, new)
		}
	}
}

func insertIntoChain(m *map[int]int, chainNext []int, neighbor, e int) {
	if *m == nil {
		*m = make(map[int]int)
	}
	if head, ok := (*m)[neighbor]; ok {
		chainNext[e] = head
	} else {
		chainNext[e] = -1
	}
	(*m)[neighbor] = e
}

// unlinkFromChain removes e from the chain bucketed at neighbor, updating
// the map entry or relinking the predecessor. Cost is O(p) in the number
// of parallel edges sharing (vertex, neighbor), which is 1 unless parallel
// edges are allowed.
func unlinkFromChain(m map[int]int, chainNext []int, neighbor, e int) {
	head, ok := m[neighbor]
	if !ok {
		return
	}
	if head == e {
		if chainNext[e] == -1 {
			delete(m, neighbor)
		} else {
			m[neighbor] = chainNext[e]
		}

		return
	}
	for cur := head; cur != -1; cur = chainNext[cur] {
		if chainNext[cur] == e {
			chainNext[cur] = chainNext[e]

			return
		}
	}
}

func renameInChain(m map[int]int, chainNext []int, neighbor, old, new int) {
	head, ok := m[neighbor]
	if !ok {
		return
	}
	if head == old {
		m[neighbor] = new

		return
	}
	for cur := head; cur != -1; cur = chainNext[cur] {
		if chainNext[cur] == old {
			chainNext[cur] = new

			return
		}
	}
}

func (g *HashGraph) AddEdge(u, v int) (int, error) {
	if !g.vIdx.Contains(u) || !g.vIdx.Contains(v) {
		return 0, ErrNoSuchVertex
	}
	if u == v && !g.caps.AllowSelfEdges {
		return 0, ErrSelfEdgeViolation
	}
	if !g.caps.AllowParallelEdges {
		if _, ok, _ := g.GetEdge(u, v); ok {
			return 0, ErrParallelEdgeViolation
		}
	}

	e := g.eIdx.Append()
	g.ends.Append(u, v)
	g.chainNext = append(g.chainNext, -1)

	insertIntoChain(&g.out[u], g.chainNext, v, e)
	if g.caps.Directed {
		insertIntoChain(&g.in[v], g.chainNext, u, e)
	} else if u != v {
		insertIntoChain(&g.out[v], g.chainNext, u, e)
	}

	return e, nil
}

func (g *HashGraph) unlinkEdge(e, u, v int) {
	unlinkFromChain(g.out[u], g.chainNext, v, e)
	if g.caps.Directed {
		unlinkFromChain(g.in[v], g.chainNext, u, e)
	} else if u != v {
		unlinkFromChain(g.out[v], g.chainNext, u, e)
	}
}

func (g *HashGraph) RemoveEdge(e int) error {
	if !g.eIdx.Contains(e) {
		return ErrNoSuchEdge
	}
	u, v := g.ends.Source(e), g.ends.Target(e)
	g.unlinkEdge(e, u, v)

	last := g.eIdx.Size() - 1
	if e != last {
		lu, lv := g.ends.Source(last), g.ends.Target(last)
		renameInChain(g.out[lu], g.chainNext, lv, last, e)
		if g.caps.Directed {
			renameInChain(g.in[lv], g.chainNext, lu, last, e)
		} else if lu != lv {
			renameInChain(g.out[lv], g.chainNext, lu, last, e)
		}
		g.ends.SetEndpoints(e, lu, lv)
		g.chainNext[e] = g.chainNext[last]
	}
	g.ends.SwapRemove(e, last)
	g.chainNext = g.chainNext[:last]
	g.eIdx.SwapRemove(e)

	return nil
}

func (g *HashGraph) RemoveEdgesOf(v int) error {
	if !g.vIdx.Contains(v) {
		return ErrNoSuchVertex
	}
	for len(g.out[v]) > 0 {
		if err := g.RemoveEdge(g.bucketsToSlice(g.out[v])[0]); err != nil {
			return err
		}
	}
	if g.caps.Directed {
		for len(g.in[v]) > 0 {
			if err := g.RemoveEdge(g.bucketsToSlice(g.in[v])[0]); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *HashGraph) RemoveOutEdgesOf(v int) error {
	if !g.vIdx.Contains(v) {
		return ErrNoSuchVertex
	}
	for len(g.out[v]) > 0 {
		if err := g.RemoveEdge(g.bucketsToSlice(g.out[v])[0]); err != nil {
			return err
		}
	}

	return nil
}

func (g *HashGraph) RemoveInEdgesOf(v int) error {
	if !g.vIdx.Contains(v) {
		return ErrNoSuchVertex
	}
	if !g.caps.Directed {
		return g.RemoveEdgesOf(v)
	}
	for len(g.in[v]) > 0 {
		if err := g.RemoveEdge(g.bucketsToSlice(g.in[v])[0]); err != nil {
			return err
		}
	}

	return nil
}

func (g *HashGraph) MoveEdge(e, u, v int) error {
	if !g.eIdx.Contains(e) {
		return ErrNoSuchEdge
	}
	if !g.vIdx.Contains(u) || !g.vIdx.Contains(v) {
		return ErrNoSuchVertex
	}
	if u == v && !g.caps.AllowSelfEdges {
		return ErrSelfEdgeViolation
	}
	if !g.caps.AllowParallelEdges {
		if existing, ok, _ := g.GetEdge(u, v); ok && existing != e {
			return ErrParallelEdgeViolation
		}
	}

	ou, ov := g.ends.Source(e), g.ends.Target(e)
	g.unlinkEdge(e, ou, ov)
	g.ends.SetEndpoints(e, u, v)
	insertIntoChain(&g.out[u], g.chainNext, v, e)
	if g.caps.Directed {
		insertIntoChain(&g.in[v], g.chainNext, u, e)
	} else if u != v {
		insertIntoChain(&g.out[v], g.chainNext, u, e)
	}

	return nil
}

func (g *HashGraph) ReverseEdge(e int) error {
	if !g.caps.Directed {
		return ErrImmutableGraph
	}
	if !g.eIdx.Contains(e) {
		return ErrNoSuchEdge
	}
	u, v := g.ends.Source(e), g.ends.Target(e)
	if u == v {
		return nil
	}
	g.unlinkEdge(e, u, v)
	g.ends.Reverse(e)
	insertIntoChain(&g.out[v], g.chainNext, u, e)
	insertIntoChain(&g.in[u], g.chainNext, v, e)

	return nil
}

func (g *HashGraph) Clear() {
	caps := g.caps
	*g = *NewHashGraph(caps)
}

func (g *HashGraph) ClearEdges() {
	for g.eIdx.Size() > 0 {
		_ = g.RemoveEdge(g.eIdx.Size() - 1)
	}
}

var _ TopologyStore = (*HashGraph)(nil)
