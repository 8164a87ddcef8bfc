package core

// LinkedGraph is the intrusive-doubly-linked-list TopologyStore: instead
// of object pointers it keeps parallel next[]/prev[] integer arrays keyed
// by edge index, with -1 as the list terminator, per the sentinel-array
// re-architecture of pointer-based linkage. Each vertex has a head index
// and a count; new edges prepend to the head, so enumeration order is
// reverse-insertion order. This backend is strongest under many
// interleaved removals: unlinking an edge touches only its own two
// immediate neighbors in each list it belongs to, independent of graph
// size.
//
// An edge participates in up to two lists: one anchored at its source
// (srcNext/srcPrev, list head in headOut — the "out" list when directed,
// the single incidence list when undirected) and, for directed stores
// only, one anchored at its target (tgtNext/tgtPrev, list head in
// headIn). For undirected stores, a non-self edge also links into its
// target's incidence list, reusing headOut but through the tgtNext/tgtPrev
// pointers so the two memberships don't collide; a self-edge links into
// its single vertex's list once, matching the "appears exactly once"
// invariant.
type LinkedGraph struct {
	caps Capabilities
	vIdx *IndexSet
	eIdx *IndexSet
	ends *Endpoints

	headOut  []int // per-vertex: out-list head (directed) / incidence-list head (undirected)
	headIn   []int // per-vertex: in-list head (directed only)
	countOut []int
	countIn  []int

	srcNext, srcPrev []int // per-edge: links within the source's list
	tgtNext, tgtPrev []int // per-edge: links within the target's list

	vWeights *WeightsRegistry
	eWeights *WeightsRegistry
}

// NewLinkedGraph returns an empty LinkedGraph with the given capabilities.
func NewLinkedGraph(caps Capabilities) *LinkedGraph {
	vIdx := NewIndexSet()
	eIdx := NewIndexSet()

	return &LinkedGraph{
		caps:     caps,
		vIdx:     vIdx,
		eIdx:     eIdx,
		ends:     NewEndpoints(),
		vWeights: NewWeightsRegistry(vIdx),
		eWeights: NewWeightsRegistry(eIdx),
	}
}

func (g *LinkedGraph) Capabilities() Capabilities      { return g.caps }
func (g *LinkedGraph) NumVertices() int                { return g.vIdx.Size() }
func (g *LinkedGraph) NumEdges() int                   { return g.eIdx.Size() }
func (g *LinkedGraph) VertexWeights() *WeightsRegistry { return g.vWeights }
func (g *LinkedGraph) EdgeWeights() *WeightsRegistry   { return g.eWeights }

func (g *LinkedGraph) Source(e int) (int, error) {
	if !g.eIdx.Contains(e) {
		return 0, ErrNoSuchEdge
	}

	return g.ends.Source(e), nil
}

func (g *LinkedGraph) Target(e int) (int, error) {
	if !g.eIdx.Contains(e) {
		return 0, ErrNoSuchEdge
	}

	return g.ends.Target(e), nil
}

func (g *LinkedGraph) Endpoint(e, v int) (int, error) {
	if !g.eIdx.Contains(e) {
		return 0, ErrNoSuchEdge
	}
	other, ok := g.ends.Endpoint(e, v)
	if !ok {
		return 0, ErrNoSuchVertex
	}

	return other, nil
}

// walkList collects every edge index reachable from head by following
// next, in reverse-insertion (most-recently-prepended-first) order. Valid
// only for a list whose every member is linked in through the same next
// array — true of a directed headIn/headOut list, but not of an
// undirected headOut list, which mixes source-role and target-role
// members; use outListNext/walkOutList for those.
func walkList(head int, next []int) []int {
	var out []int
	for cur := head; cur != -1; cur = next[cur] {
		out = append(out, cur)
	}

	return out
}

// outListNext returns cur's next pointer within vertex's headOut list.
// On a directed graph that list only ever holds source-role members, so
// srcNext always applies. On an undirected graph the same list also holds
// target-role members (a non-self edge links into both its source's and
// target's incidence list via different pointer pairs, wired in by
// AddEdge's "else if u != v" branch) — cur's role at vertex must be
// checked per node rather than assumed.
func (g *LinkedGraph) outListNext(cur, vertex int) int {
	if g.caps.Directed || g.ends.Source(cur) == vertex {
		return g.srcNext[cur]
	}

	return g.tgtNext[cur]
}

// walkOutList collects every edge index in vertex's headOut list,
// resolving each node's role (source or target) as it goes so it never
// misses members linked in through the other pointer pair.
func (g *LinkedGraph) walkOutList(vertex int) []int {
	var out []int
	for cur := g.headOut[vertex]; cur != -1; cur = g.outListNext(cur, vertex) {
		out = append(out, cur)
	}

	return out
}

func (g *LinkedGraph) OutEdges(v int) ([]int, error) {
	if !g.vIdx.Contains(v) {
		return nil, ErrNoSuchVertex
	}

	return g.walkOutList(v), nil
}

func (g *LinkedGraph) InEdges(v int) ([]int, error) {
	if !g.vIdx.Contains(v) {
		return nil, ErrNoSuchVertex
	}
	if !g.caps.Directed {
		return g.OutEdges(v)
	}

	return walkList(g.headIn[v], g.tgtNext), nil
}

func (g *LinkedGraph) IncidentEdges(v int) ([]int, error) {
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

func (g *LinkedGraph) GetEdge(u, v int) (int, bool, error) {
	if !g.vIdx.Contains(u) || !g.vIdx.Contains(v) {
		return 0, false, ErrNoSuchVertex
	}
	for cur := g.headOut[u]; cur != -1; cur = g.outListNext(cur, u) {
		if other, _ := g.ends.Endpoint(cur, u); other == v {
			return cur, true, nil
		}
	}

	return 0, false, nil
}

func (g *LinkedGraph) GetEdges(u, v int) ([]int, error) {
	if !g.vIdx.Contains(u) || !g.vIdx.Contains(v) {
		return nil, ErrNoSuchVertex
	}
	var out []int
	for cur := g.headOut[u]; cur != -1; cur = g.outListNext(cur, u) {
		if other, _ := g.ends.Endpoint(cur, u); other == v {
			out = append(out, cur)
		}
	}

	return out, nil
}

func (g *LinkedGraph) AddVertex() (int, error) {
	v := g.vIdx.Append()
	g.headOut = append(g.headOut, -1)
	g.countOut = append(g.countOut, 0)
	if g.caps.Directed {
		g.headIn = append(g.headIn, -1)
		g.countIn = append(g.countIn, 0)
	}

	return v, nil
}

func (g *LinkedGraph) RemoveVertex(v int) error {
	if !g.vIdx.Contains(v) {
		return ErrNoSuchVertex
	}
	for g.headOut[v] != -1 {
		if err := g.RemoveEdge(g.headOut[v]); err != nil {
			return err
		}
	}
	if g.caps.Directed {
		for g.headIn[v] != -1 {
			if err := g.RemoveEdge(g.headIn[v]); err != nil {
				return err
			}
		}
	}

	last := g.vIdx.Size() - 1
	if v != last {
		g.renameVertexInEdges(last, v)
		g.headOut[v], g.countOut[v] = g.headOut[last], g.countOut[last]
		if g.caps.Directed {
			g.headIn[v], g.countIn[v] = g.headIn[last], g.countIn[last]
		}
	}
	g.headOut = g.headOut[:last]
	g.countOut = g.countOut[:last]
	if g.caps.Directed {
		g.headIn = g.headIn[:last]
		g.countIn = g.countIn[:last]
	}
	g.vIdx.SwapRemove(v)

	return nil
}

func (g *LinkedGraph) renameVertexInEdges(old, new int) {
	for _, e := range g.walkOutList(old) {
		g.ends.ReplaceEndpoint(e, old, new)
	}
	if g.caps.Directed {
		for _, e := range walkList(g.headIn[old], g.tgtNext) {
			g.ends.ReplaceEndpoint(e, old, new)
		}
	}
}

func prependList(head, count []int, next, prev []int, vertex, e int) {
	next[e] = head[vertex]
	prev[e] = -1
	if head[vertex] != -1 {
		prev[head[vertex]] = e
	}
	head[vertex] = e
	count[vertex]++
}

func unlinkFromList(head, count []int, next, prev []int, vertex, e int) {
	p, n := prev[e], next[e]
	if p != -1 {
		next[p] = n
	} else {
		head[vertex] = n
	}
	if n != -1 {
		prev[n] = p
	}
	count[vertex]--
}

// relocateInList fixes up the neighbors of oldIdx (and the vertex head, if
// oldIdx was the head) so they reference newIdx instead, then copies
// oldIdx's own link values into newIdx. Used when the last edge slides
// into a freed slot during RemoveEdge.
func relocateInList(head []int, next, prev []int, vertex, oldIdx, newIdx int) {
	p, n := prev[oldIdx], next[oldIdx]
	if p != -1 {
		next[p] = newIdx
	} else {
		head[vertex] = newIdx
	}
	if n != -1 {
		prev[n] = newIdx
	}
	next[newIdx], prev[newIdx] = n, p
}

func (g *LinkedGraph) AddEdge(u, v int) (int, error) {
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
	g.srcNext = append(g.srcNext, -1)
	g.srcPrev = append(g.srcPrev, -1)
	g.tgtNext = append(g.tgtNext, -1)
	g.tgtPrev = append(g.tgtPrev, -1)

	prependList(g.headOut, g.countOut, g.srcNext, g.srcPrev, u, e)
	if g.caps.Directed {
		prependList(g.headIn, g.countIn, g.tgtNext, g.tgtPrev, v, e)
	} else if u != v {
		prependList(g.headOut, g.countOut, g.tgtNext, g.tgtPrev, v, e)
	}

	return e, nil
}

func (g *LinkedGraph) unlinkEdge(e, u, v int) {
	unlinkFromList(g.headOut, g.countOut, g.srcNext, g.srcPrev, u, e)
	if g.caps.Directed {
		unlinkFromList(g.headIn, g.countIn, g.tgtNext, g.tgtPrev, v, e)
	} else if u != v {
		unlinkFromList(g.headOut, g.countOut, g.tgtNext, g.tgtPrev, v, e)
	}
}

func (g *LinkedGraph) RemoveEdge(e int) error {
	if !g.eIdx.Contains(e) {
		return ErrNoSuchEdge
	}
	u, v := g.ends.Source(e), g.ends.Target(e)
	g.unlinkEdge(e, u, v)

	last := g.eIdx.Size() - 1
	if e != last {
		lu, lv := g.ends.Source(last), g.ends.Target(last)
		relocateInList(g.headOut, g.srcNext, g.srcPrev, lu, last, e)
		if g.caps.Directed {
			relocateInList(g.headIn, g.tgtNext, g.tgtPrev, lv, last, e)
		} else if lu != lv {
			relocateInList(g.headOut, g.tgtNext, g.tgtPrev, lv, last, e)
		}
		g.ends.SetEndpoints(e, lu, lv)
	}
	g.ends.SwapRemove(e, last)
	g.srcNext, g.srcPrev = g.srcNext[:last], g.srcPrev[:last]
	g.tgtNext, g.tgtPrev = g.tgtNext[:last], g.tgtPrev[:last]
	g.eIdx.SwapRemove(e)

	return nil
}

func (g *LinkedGraph) RemoveEdgesOf(v int) error {
	if !g.vIdx.Contains(v) {
		return ErrNoSuchVertex
	}
	for g.headOut[v] != -1 {
		if err := g.RemoveEdge(g.headOut[v]); err != nil {
			return err
		}
	}
	if g.caps.Directed {
		for g.headIn[v] != -1 {
			if err := g.RemoveEdge(g.headIn[v]); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *LinkedGraph) RemoveOutEdgesOf(v int) error {
	if !g.vIdx.Contains(v) {
		return ErrNoSuchVertex
	}
	for g.headOut[v] != -1 {
		if err := g.RemoveEdge(g.headOut[v]); err != nil {
			return err
		}
	}

	return nil
}

func (g *LinkedGraph) RemoveInEdgesOf(v int) error {
	if !g.vIdx.Contains(v) {
		return ErrNoSuchVertex
	}
	if !g.caps.Directed {
		return g.RemoveEdgesOf(v)
	}
	for g.headIn[v] != -1 {
		if err := g.RemoveEdge(g.headIn[v]); err != nil {
			return err
		}
	}

	return nil
}

func (g *LinkedGraph) MoveEdge(e, u, v int) error {
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
	prependList(g.headOut, g.countOut, g.srcNext, g.srcPrev, u, e)
	if g.caps.Directed {
		prependList(g.headIn, g.countIn, g.tgtNext, g.tgtPrev, v, e)
	} else if u != v {
		prependList(g.headOut, g.countOut, g.tgtNext, g.tgtPrev, v, e)
	}

	return nil
}

func (g *LinkedGraph) ReverseEdge(e int) error {
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
	prependList(g.headOut, g.countOut, g.srcNext, g.srcPrev, v, e)
	prependList(g.headIn, g.countIn, g.tgtNext, g.tgtPrev, u, e)

	return nil
}

func (g *LinkedGraph) Clear() {
	caps := g.caps
	*g = *NewLinkedGraph(caps)
}

func (g *LinkedGraph) ClearEdges() {
	for g.eIdx.Size() > 0 {
		_ = g.RemoveEdge(g.eIdx.Size() - 1)
	}
}

var _ TopologyStore = (*LinkedGraph)(nil)
