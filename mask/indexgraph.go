package mask

import "github.com/katalvlaran/graphcore/core"

// IndexGraph is the dense-renumbered read surface over a View: its
// vertex and edge indices are the compacted [0, n')/[0, m') ranges
// described in the package doc, rather than the underlying store's
// original indices. It is fully read-only, including MoveEdge, the one
// mutation View allows on original indices.
type IndexGraph struct {
	v     *View
	verts renumbering
	edges renumbering
}

// IndexGraph returns the dense-renumbered surface over v, computing and
// caching the renumbering on first call.
func (v *View) IndexGraph() *IndexGraph {
	if v.indexGraph != nil {
		return v.indexGraph
	}

	maskedEdges := make(map[int]struct{})
	for e := 0; e < v.g.NumEdges(); e++ {
		if !v.edgeLive(e) {
			maskedEdges[e] = struct{}{}
		}
	}

	v.indexGraph = &IndexGraph{
		v:     v,
		verts: buildRenumbering(v.g.NumVertices(), v.vMasked),
		edges: buildRenumbering(v.g.NumEdges(), maskedEdges),
	}

	return v.indexGraph
}

func (ig *IndexGraph) checkVertex(api int) error {
	if api < 0 || api >= ig.verts.size() {
		return core.ErrNoSuchVertex
	}

	return nil
}

func (ig *IndexGraph) checkEdge(api int) error {
	if api < 0 || api >= ig.edges.size() {
		return core.ErrNoSuchEdge
	}

	return nil
}

func (ig *IndexGraph) toAPIEdges(origEdges []int) []int {
	out := make([]int, 0, len(origEdges))
	for _, e := range origEdges {
		out = append(out, ig.edges.toAPI[e])
	}

	return out
}

var _ core.TopologyStore = (*IndexGraph)(nil)

// Capabilities delegates to the underlying view.
func (ig *IndexGraph) Capabilities() core.Capabilities {
	return ig.v.Capabilities()
}

// NumVertices returns the size of the renumbered vertex range.
func (ig *IndexGraph) NumVertices() int {
	return ig.verts.size()
}

// NumEdges returns the size of the renumbered edge range.
func (ig *IndexGraph) NumEdges() int {
	return ig.edges.size()
}

// Source returns api edge e's source endpoint, renumbered.
func (ig *IndexGraph) Source(e int) (int, error) {
	if err := ig.checkEdge(e); err != nil {
		return 0, err
	}
	orig, err := ig.v.Source(ig.edges.toOrig[e])
	if err != nil {
		return 0, err
	}

	return ig.verts.toAPI[orig], nil
}

// Target returns api edge e's target endpoint, renumbered.
func (ig *IndexGraph) Target(e int) (int, error) {
	if err := ig.checkEdge(e); err != nil {
		return 0, err
	}
	orig, err := ig.v.Target(ig.edges.toOrig[e])
	if err != nil {
		return 0, err
	}

	return ig.verts.toAPI[orig], nil
}

// Endpoint returns the endpoint of api edge e opposite to api vertex v,
// renumbered.
func (ig *IndexGraph) Endpoint(e, v int) (int, error) {
	if err := ig.checkEdge(e); err != nil {
		return 0, err
	}
	if err := ig.checkVertex(v); err != nil {
		return 0, err
	}
	origOther, err := ig.v.Endpoint(ig.edges.toOrig[e], ig.verts.toOrig[v])
	if err != nil {
		return 0, err
	}

	return ig.verts.toAPI[origOther], nil
}

// OutEdges returns the api edges leaving api vertex v.
func (ig *IndexGraph) OutEdges(v int) ([]int, error) {
	if err := ig.checkVertex(v); err != nil {
		return nil, err
	}
	orig, err := ig.v.OutEdges(ig.verts.toOrig[v])
	if err != nil {
		return nil, err
	}

	return ig.toAPIEdges(orig), nil
}

// InEdges returns the api edges entering api vertex v.
func (ig *IndexGraph) InEdges(v int) ([]int, error) {
	if err := ig.checkVertex(v); err != nil {
		return nil, err
	}
	orig, err := ig.v.InEdges(ig.verts.toOrig[v])
	if err != nil {
		return nil, err
	}

	return ig.toAPIEdges(orig), nil
}

// IncidentEdges returns every api edge touching api vertex v.
func (ig *IndexGraph) IncidentEdges(v int) ([]int, error) {
	if err := ig.checkVertex(v); err != nil {
		return nil, err
	}
	orig, err := ig.v.IncidentEdges(ig.verts.toOrig[v])
	if err != nil {
		return nil, err
	}

	return ig.toAPIEdges(orig), nil
}

// GetEdge returns one api edge between api vertices u and v, if any.
func (ig *IndexGraph) GetEdge(u, v int) (int, bool, error) {
	if err := ig.checkVertex(u); err != nil {
		return 0, false, err
	}
	if err := ig.checkVertex(v); err != nil {
		return 0, false, err
	}
	e, ok, err := ig.v.GetEdge(ig.verts.toOrig[u], ig.verts.toOrig[v])
	if err != nil || !ok {
		return 0, false, err
	}

	return ig.edges.toAPI[e], true, nil
}

// GetEdges returns every api edge between api vertices u and v.
func (ig *IndexGraph) GetEdges(u, v int) ([]int, error) {
	if err := ig.checkVertex(u); err != nil {
		return nil, err
	}
	if err := ig.checkVertex(v); err != nil {
		return nil, err
	}
	orig, err := ig.v.GetEdges(ig.verts.toOrig[u], ig.verts.toOrig[v])
	if err != nil {
		return nil, err
	}

	return ig.toAPIEdges(orig), nil
}

// AddVertex always fails: IndexGraph is read-only.
func (ig *IndexGraph) AddVertex() (int, error) {
	return 0, core.ErrImmutableGraph
}

// RemoveVertex always fails: IndexGraph is read-only.
func (ig *IndexGraph) RemoveVertex(v int) error {
	return core.ErrImmutableGraph
}

// AddEdge always fails: IndexGraph is read-only.
func (ig *IndexGraph) AddEdge(u, v int) (int, error) {
	return 0, core.ErrImmutableGraph
}

// RemoveEdge always fails: IndexGraph is read-only.
func (ig *IndexGraph) RemoveEdge(e int) error {
	return core.ErrImmutableGraph
}

// RemoveEdgesOf always fails: IndexGraph is read-only.
func (ig *IndexGraph) RemoveEdgesOf(v int) error {
	return core.ErrImmutableGraph
}

// RemoveOutEdgesOf always fails: IndexGraph is read-only.
func (ig *IndexGraph) RemoveOutEdgesOf(v int) error {
	return core.ErrImmutableGraph
}

// RemoveInEdgesOf always fails: IndexGraph is read-only.
func (ig *IndexGraph) RemoveInEdgesOf(v int) error {
	return core.ErrImmutableGraph
}

// MoveEdge always fails: IndexGraph is read-only. View.MoveEdge accepts
// only a live edge and live new endpoints, so it leaves the live set, and
// with it the cached renumbering, unchanged.
func (ig *IndexGraph) MoveEdge(e, u, v int) error {
	return core.ErrImmutableGraph
}

// ReverseEdge always fails: IndexGraph is read-only.
func (ig *IndexGraph) ReverseEdge(e int) error {
	return core.ErrImmutableGraph
}

// Clear has no effect: IndexGraph is read-only and carries no error
// channel on this method per the TopologyStore contract.
func (ig *IndexGraph) Clear() {}

// ClearEdges has no effect, for the same reason as Clear.
func (ig *IndexGraph) ClearEdges() {}
