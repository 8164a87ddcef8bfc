package mask

import "github.com/katalvlaran/graphcore/core"

// View is a non-copying subgraph projection over an underlying
// core.TopologyStore, masking out a set of vertices and edges. See the
// package doc for the exact vertex/edge complement rule.
type View struct {
	g       core.TopologyStore
	vMasked map[int]struct{}
	eMasked map[int]struct{}

	indexGraph *IndexGraph // cached, built lazily by IndexGraph()
}

// New returns a View over g masking every vertex in vMask and every edge
// in eMask (edges incident to a masked vertex are masked automatically,
// with no need to list them in eMask).
func New(g core.TopologyStore, vMask, eMask []int) *View {
	v := &View{
		g:       g,
		vMasked: make(map[int]struct{}, len(vMask)),
		eMasked: make(map[int]struct{}, len(eMask)),
	}
	for _, x := range vMask {
		v.vMasked[x] = struct{}{}
	}
	for _, x := range eMask {
		v.eMasked[x] = struct{}{}
	}

	return v
}

func (v *View) vertexLive(x int) bool {
	if x < 0 || x >= v.g.NumVertices() {
		return false
	}
	_, masked := v.vMasked[x]

	return !masked
}

// edgeLive reports whether e is live in the view: not itself masked, and
// neither endpoint masked. It assumes e is a valid edge index in g.
func (v *View) edgeLive(e int) bool {
	if _, masked := v.eMasked[e]; masked {
		return false
	}
	s, err := v.g.Source(e)
	if err != nil {
		return false
	}
	t, err := v.g.Target(e)
	if err != nil {
		return false
	}

	return v.vertexLive(s) && v.vertexLive(t)
}

func (v *View) checkVertex(x int) error {
	if !v.vertexLive(x) {
		return core.ErrNoSuchVertex
	}

	return nil
}

func (v *View) checkEdge(e int) error {
	if e < 0 || e >= v.g.NumEdges() || !v.edgeLive(e) {
		return core.ErrNoSuchEdge
	}

	return nil
}

func (v *View) filterLiveEdges(edges []int) []int {
	out := edges[:0:0]
	for _, e := range edges {
		if v.edgeLive(e) {
			out = append(out, e)
		}
	}

	return out
}

var _ core.TopologyStore = (*View)(nil)

// Capabilities delegates to the underlying store.
func (v *View) Capabilities() core.Capabilities {
	return v.g.Capabilities()
}

// NumVertices returns the number of live (unmasked) vertices.
func (v *View) NumVertices() int {
	return v.g.NumVertices() - len(v.vMasked)
}

// NumEdges returns the number of live (unmasked, non-incident-to-masked)
// edges.
func (v *View) NumEdges() int {
	count := 0
	for e := 0; e < v.g.NumEdges(); e++ {
		if v.edgeLive(e) {
			count++
		}
	}

	return count
}

// Source returns e's source endpoint if e is live.
func (v *View) Source(e int) (int, error) {
	if err := v.checkEdge(e); err != nil {
		return 0, err
	}

	return v.g.Source(e)
}

// Target returns e's target endpoint if e is live.
func (v *View) Target(e int) (int, error) {
	if err := v.checkEdge(e); err != nil {
		return 0, err
	}

	return v.g.Target(e)
}

// Endpoint returns the endpoint of e opposite to v, if e is live.
func (v *View) Endpoint(e, vertex int) (int, error) {
	if err := v.checkEdge(e); err != nil {
		return 0, err
	}

	return v.g.Endpoint(e, vertex)
}

// OutEdges returns the live edges leaving vertex (directed) or incident to
// it (undirected).
func (v *View) OutEdges(vertex int) ([]int, error) {
	if err := v.checkVertex(vertex); err != nil {
		return nil, err
	}
	edges, err := v.g.OutEdges(vertex)
	if err != nil {
		return nil, err
	}

	return v.filterLiveEdges(edges), nil
}

// InEdges returns the live edges entering vertex.
func (v *View) InEdges(vertex int) ([]int, error) {
	if err := v.checkVertex(vertex); err != nil {
		return nil, err
	}
	edges, err := v.g.InEdges(vertex)
	if err != nil {
		return nil, err
	}

	return v.filterLiveEdges(edges), nil
}

// IncidentEdges returns every live edge touching vertex.
func (v *View) IncidentEdges(vertex int) ([]int, error) {
	if err := v.checkVertex(vertex); err != nil {
		return nil, err
	}
	edges, err := v.g.IncidentEdges(vertex)
	if err != nil {
		return nil, err
	}

	return v.filterLiveEdges(edges), nil
}

// GetEdge returns one live edge between u and v, or ok=false if none.
func (v *View) GetEdge(u, w int) (int, bool, error) {
	if err := v.checkVertex(u); err != nil {
		return 0, false, err
	}
	if err := v.checkVertex(w); err != nil {
		return 0, false, err
	}
	edges, err := v.OutEdges(u)
	if err != nil {
		return 0, false, err
	}
	for _, e := range edges {
		if other, _ := v.g.Endpoint(e, u); other == w {
			return e, true, nil
		}
	}

	return 0, false, nil
}

// GetEdges returns every live edge between u and v.
func (v *View) GetEdges(u, w int) ([]int, error) {
	if err := v.checkVertex(u); err != nil {
		return nil, err
	}
	if err := v.checkVertex(w); err != nil {
		return nil, err
	}
	edges, err := v.OutEdges(u)
	if err != nil {
		return nil, err
	}
	var result []int
	for _, e := range edges {
		if other, _ := v.g.Endpoint(e, u); other == w {
			result = append(result, e)
		}
	}

	return result, nil
}

// AddVertex always fails: the view is read-only.
func (v *View) AddVertex() (int, error) {
	return 0, core.ErrImmutableGraph
}

// RemoveVertex always fails: the view is read-only.
func (v *View) RemoveVertex(vertex int) error {
	return core.ErrImmutableGraph
}

// AddEdge always fails: the view is read-only.
func (v *View) AddEdge(u, w int) (int, error) {
	return 0, core.ErrImmutableGraph
}

// RemoveEdge always fails: the view is read-only.
func (v *View) RemoveEdge(e int) error {
	return core.ErrImmutableGraph
}

// RemoveEdgesOf always fails: the view is read-only.
func (v *View) RemoveEdgesOf(vertex int) error {
	return core.ErrImmutableGraph
}

// RemoveOutEdgesOf always fails: the view is read-only.
func (v *View) RemoveOutEdgesOf(vertex int) error {
	return core.ErrImmutableGraph
}

// RemoveInEdgesOf always fails: the view is read-only.
func (v *View) RemoveInEdgesOf(vertex int) error {
	return core.ErrImmutableGraph
}

// MoveEdge delegates to the underlying store when e, u and w are all
// live, the one mutation the view permits. Otherwise it fails with
// ErrNoSuchEdge/ErrNoSuchVertex for a masked argument.
func (v *View) MoveEdge(e, u, w int) error {
	if err := v.checkEdge(e); err != nil {
		return err
	}
	if err := v.checkVertex(u); err != nil {
		return err
	}
	if err := v.checkVertex(w); err != nil {
		return err
	}

	return v.g.MoveEdge(e, u, w)
}

// ReverseEdge always fails: the view is read-only.
func (v *View) ReverseEdge(e int) error {
	return core.ErrImmutableGraph
}

// Clear has no effect: the view is read-only and carries no error channel
// on this method per the TopologyStore contract.
func (v *View) Clear() {}

// ClearEdges has no effect, for the same reason as Clear.
func (v *View) ClearEdges() {}
