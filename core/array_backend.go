package core

// ArrayGraph is the array-backed TopologyStore: adjacency is a per-vertex
// dynamic slice of incident edge indices (two slices per vertex when
// directed — out and in — one when undirected). It is the best all-round
// default for dense enumeration; AddEdge/RemoveEdge are O(1) amortized via
// swap-to-tail within the affected per-vertex slice, and RemoveVertex is
// O(deg(v) + deg(swapped-in vertex)).
type ArrayGraph struct {
	caps Capabilities
	vIdx *IndexSet
	eIdx *IndexSet
	ends *Endpoints

	out [][]int // out[v]: out-edges (directed) or incident edges (undirected)
	in  [][]int // in[v]: in-edges; unused (nil) when undirected

	vWeights *WeightsRegistry
	eWeights *WeightsRegistry
}

// NewArrayGraph returns an empty ArrayGraph with the given capabilities.
func NewArrayGraph(caps Capabilities) *ArrayGraph {
	vIdx := NewIndexSet()
	eIdx := NewIndexSet()

	return &ArrayGraph{
		caps:     caps,
		vIdx:     vIdx,
		eIdx:     eIdx,
		ends:     NewEndpoints(),
		vWeights: NewWeightsRegistry(vIdx),
		eWeights: NewWeightsRegistry(eIdx),
	}
}

// Capabilities implements TopologyStore.
func (g *ArrayGraph) Capabilities() Capabilities { return g.caps }

// NumVertices implements TopologyStore.
func (g *ArrayGraph) NumVertices() int { return g.vIdx.Size() }

// NumEdges implements TopologyStore.
func (g *ArrayGraph) NumEdges() int { return g.eIdx.Size() }

// VertexWeights exposes the vertex-keyed weights registry for use with the
// generic AddWeights/GetWeights helpers in package core.
func (g *ArrayGraph) VertexWeights() *WeightsRegistry { return g.vWeights }

// EdgeWeights exposes the edge-keyed weights registry.
func (g *ArrayGraph) EdgeWeights() *WeightsRegistry { return g.eWeights }

// Source implements TopologyStore.
func (g *ArrayGraph) Source(e int) (int, error) {
	if !g.eIdx.Contains(e) {
		return 0, ErrNoSuchEdge
	}

	return g.ends.Source(e), nil
}

// Target implements TopologyStore.
func (g *ArrayGraph) Target(e int) (int, error) {
	if !g.eIdx.Contains(e) {
		return 0, ErrNoSuchEdge
	}

	return g.ends.Target(e), nil
}

// Endpoint implements TopologyStore.
func (g *ArrayGraph) Endpoint(e, v int) (int, error) {
	if !g.eIdx.Contains(e) {
		return 0, ErrNoSuchEdge
	}
	other, ok := g.ends.Endpoint(e, v)
	if !ok {
		return 0, ErrNoSuchVertex
	}

	return other, nil
}

// OutEdges implements TopologyStore. On an undirected store it is
// equivalent to IncidentEdges.
func (g *ArrayGraph) OutEdges(v int) ([]int, error) {
	if !g.vIdx.Contains(v) {
		return nil, ErrNoSuchVertex
	}
	out := make([]int, len(g.out[v]))
	copy(out, g.out[v])

	return out, nil
}

// InEdges implements TopologyStore. On an undirected store it is
// equivalent to IncidentEdges.
func (g *ArrayGraph) InEdges(v int) ([]int, error) {
	if !g.vIdx.Contains(v) {
		return nil, ErrNoSuchVertex
	}
	if !g.caps.Directed {
		return g.OutEdges(v)
	}
	in := make([]int, len(g.in[v]))
	copy(in, g.in[v])

	return in, nil
}

// IncidentEdges implements TopologyStore.
func (g *ArrayGraph) IncidentEdges(v int) ([]int, error) {
	if !g.vIdx.Contains(v) {
		return nil, ErrNoSuchVertex
	}
	if !g.caps.Directed {
		return g.OutEdges(v)
	}
	out := make([]int, 0, len(g.out[v])+len(g.in[v]))
	out = append(out, g.out[v]...)
	out = append(out, g.in[v]...)

	return out, nil
}

// GetEdge implements TopologyStore. Tie-break among parallel edges is
// unspecified.
func (g *ArrayGraph) GetEdge(u, v int) (int, bool, error) {
	if !g.vIdx.Contains(u) || !g.vIdx.Contains(v) {
		return 0, false, ErrNoSuchVertex
	}
	for _, e := range g.out[u] {
		if other, _ := g.ends.Endpoint(e, u); other == v {
			return e, true, nil
		}
	}

	return 0, false, nil
}

// GetEdges implements TopologyStore.
func (g *ArrayGraph) GetEdges(u, v int) ([]int, error) {
	if !g.vIdx.Contains(u) || !g.vIdx.Contains(v) {
		return nil, ErrNoSuchVertex
	}
	var out []int
	for _, e := range g.out[u] {
		if other, _ := g.ends.Endpoint(e, u); other == v {
			out = append(out, e)
		}
	}

	return out, nil
}

// AddVertex implements TopologyStore.
func (g *ArrayGraph) AddVertex() (int, error) {
	v := g.vIdx.Append()
	g.out = append(g.out, nil)
	if g.caps.Directed {
		g.in = append(g.in, nil)
	}

	return v, nil
}

// RemoveVertex implements TopologyStore. It removes every edge incident to
// v (which themselves fire edge listeners), then swap-removes v itself.
func (g *ArrayGraph) RemoveVertex(v int) error {
	if !g.vIdx.Contains(v) {
		return ErrNoSuchVertex
	}
	for len(g.out[v]) > 0 {
		if err := g.RemoveEdge(g.out[v][0]); err != nil {
			return err
		}
	}
	if g.caps.Directed {
		for len(g.in[v]) > 0 {
			if err := g.RemoveEdge(g.in[v][0]); err != nil {
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

// renameVertexInEdges rewrites every edge incident to old so its endpoint
// reads new, used when old (the swapped-in last vertex) is relabeled to v.
func (g *ArrayGraph) renameVertexInEdges(old, new int) {
	for _, e := range g.out[old] {
		g.ends.ReplaceEndpoint(e, old, new)
	}
	if g.caps.Directed {
		for _, e := range g.in[old] {
			g.ends.ReplaceEndpoint(e, old, new)
		}
	}
}

// AddEdge implements TopologyStore.
func (g *ArrayGraph) AddEdge(u, v int) (int, error) {
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
	g.out[u] = append(g.out[u], e)
	if g.caps.Directed {
		g.in[v] = append(g.in[v], e)
	} else if u != v {
		g.out[v] = append(g.out[v], e)
	}

	return e, nil
}

// removeFromSlice removes the first occurrence of val from s via
// swap-to-tail, preserving no particular order among the rest.
func removeFromSlice(s []int, val int) []int {
	for i, x := range s {
		if x == val {
			last := len(s) - 1
			s[i] = s[last]

			return s[:last]
		}
	}

	return s
}

// renameInSlice replaces the first occurrence of old in s with new.
func renameInSlice(s []int, old, new int) {
	for i, x := range s {
		if x == old {
			s[i] = new

			return
		}
	}
}

func (g *ArrayGraph) unlinkEdge(e, u, v int) {
	g.out[u] = removeFromSlice(g.out[u], e)
	if g.caps.Directed {
		g.in[v] = removeFromSlice(g.in[v], e)
	} else if u != v {
		g.out[v] = removeFromSlice(g.out[v], e)
	}
}

// RemoveEdge implements TopologyStore.
func (g *ArrayGraph) RemoveEdge(e int) error {
	if !g.eIdx.Contains(e) {
		return ErrNoSuchEdge
	}
	u, v := g.ends.Source(e), g.ends.Target(e)
	g.unlinkEdge(e, u, v)

	last := g.eIdx.Size() - 1
	if e != last {
		lu, lv := g.ends.Source(last), g.ends.Target(last)
		renameInSlice(g.out[lu], last, e)
		if g.caps.Directed {
			renameInSlice(g.in[lv], last, e)
		} else if lu != lv {
			renameInSlice(g.out[lv], last, e)
		}
		g.ends.SetEndpoints(e, lu, lv)
	}
	g.ends.SwapRemove(e, last)
	g.eIdx.SwapRemove(e)

	return nil
}

// RemoveEdgesOf implements TopologyStore.
func (g *ArrayGraph) RemoveEdgesOf(v int) error {
	if !g.vIdx.Contains(v) {
		return ErrNoSuchVertex
	}
	for len(g.out[v]) > 0 {
		if err := g.RemoveEdge(g.out[v][0]); err != nil {
			return err
		}
	}
	if g.caps.Directed {
		for len(g.in[v]) > 0 {
			if err := g.RemoveEdge(g.in[v][0]); err != nil {
				return err
			}
		}
	}

	return nil
}

// RemoveOutEdgesOf implements TopologyStore. On an undirected store it
// behaves like RemoveEdgesOf, since there is no separate out view.
func (g *ArrayGraph) RemoveOutEdgesOf(v int) error {
	if !g.vIdx.Contains(v) {
		return ErrNoSuchVertex
	}
	for len(g.out[v]) > 0 {
		if err := g.RemoveEdge(g.out[v][0]); err != nil {
			return err
		}
	}

	return nil
}

// RemoveInEdgesOf implements TopologyStore. On an undirected store it
// behaves like RemoveEdgesOf, since there is no separate in view.
func (g *ArrayGraph) RemoveInEdgesOf(v int) error {
	if !g.vIdx.Contains(v) {
		return ErrNoSuchVertex
	}
	if !g.caps.Directed {
		return g.RemoveEdgesOf(v)
	}
	for len(g.in[v]) > 0 {
		if err := g.RemoveEdge(g.in[v][0]); err != nil {
			return err
		}
	}

	return nil
}

// MoveEdge implements TopologyStore.
func (g *ArrayGraph) MoveEdge(e, u, v int) error {
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
	g.out[u] = append(g.out[u], e)
	if g.caps.Directed {
		g.in[v] = append(g.in[v], e)
	} else if u != v {
		g.out[v] = append(g.out[v], e)
	}

	return nil
}

// ReverseEdge implements TopologyStore. Directed stores only; a self-edge
// reversal is a no-op.
func (g *ArrayGraph) ReverseEdge(e int) error {
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
	g.out[v] = append(g.out[v], e)
	g.in[u] = append(g.in[u], e)

	return nil
}

// Clear implements TopologyStore: removes every vertex and edge, including
// detaching all registered weight containers.
func (g *ArrayGraph) Clear() {
	caps := g.caps
	*g = *NewArrayGraph(caps)
}

// ClearEdges implements TopologyStore: removes every edge but keeps the
// vertex set (and vertex weight containers) intact.
func (g *ArrayGraph) ClearEdges() {
	for g.eIdx.Size() > 0 {
		_ = g.RemoveEdge(g.eIdx.Size() - 1)
	}
}

var _ TopologyStore = (*ArrayGraph)(nil)
