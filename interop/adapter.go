package interop

import (
	"github.com/katalvlaran/graphcore/core"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
)

// node is a vertex index widened to gonum's int64 node ID.
type node int64

// ID returns the node's vertex index as an int64.
func (n node) ID() int64 { return int64(n) }

// edge is a minimal graph.Edge backed by two nodes, with no payload.
type edge struct {
	from, to graph.Node
}

// From returns the edge's tail node.
func (e edge) From() graph.Node { return e.from }

// To returns the edge's head node.
func (e edge) To() graph.Node { return e.to }

// ReversedEdge returns the edge with its endpoints swapped.
func (e edge) ReversedEdge() graph.Edge { return edge{from: e.to, to: e.from} }

// Adapter presents a core.TopologyStore as a gonum graph.Graph (and, for
// directed stores, graph.Directed). It holds no state of its own beyond
// the wrapped store; every method is a direct translation of a
// TopologyStore query.
type Adapter struct {
	g core.TopologyStore
}

// New wraps g for consumption by gonum graph algorithms.
func New(g core.TopologyStore) *Adapter {
	return &Adapter{g: g}
}

var (
	_ graph.Graph    = (*Adapter)(nil)
	_ graph.Directed = (*Adapter)(nil)
)

// Node returns the node with the given ID, or nil if it isn't live.
func (a *Adapter) Node(id int64) graph.Node {
	v := int(id)
	if v < 0 || v >= a.g.NumVertices() {
		return nil
	}

	return node(id)
}

// Nodes returns every live vertex as a gonum node iterator.
func (a *Adapter) Nodes() graph.Nodes {
	n := a.g.NumVertices()
	nodes := make([]graph.Node, n)
	for i := 0; i < n; i++ {
		nodes[i] = node(i)
	}

	return iterator.NewOrderedNodes(nodes)
}

func (a *Adapter) neighbors(id int64, edges []int, err error) graph.Nodes {
	if err != nil {
		return iterator.NewOrderedNodes(nil)
	}
	seen := make(map[int64]struct{}, len(edges))
	nodes := make([]graph.Node, 0, len(edges))
	for _, e := range edges {
		other, err := a.g.Endpoint(e, int(id))
		if err != nil {
			continue
		}
		oid := int64(other)
		if _, dup := seen[oid]; dup {
			continue
		}
		seen[oid] = struct{}{}
		nodes = append(nodes, node(oid))
	}

	return iterator.NewOrderedNodes(nodes)
}

// From returns the nodes reachable from id by one outgoing edge.
func (a *Adapter) From(id int64) graph.Nodes {
	edges, err := a.g.OutEdges(int(id))

	return a.neighbors(id, edges, err)
}

// To returns the nodes with an edge into id.
func (a *Adapter) To(id int64) graph.Nodes {
	edges, err := a.g.InEdges(int(id))

	return a.neighbors(id, edges, err)
}

// HasEdgeBetween reports whether an edge connects xid and yid in either
// direction.
func (a *Adapter) HasEdgeBetween(xid, yid int64) bool {
	if _, ok, _ := a.g.GetEdge(int(xid), int(yid)); ok {
		return true
	}
	_, ok, _ := a.g.GetEdge(int(yid), int(xid))

	return ok
}

// HasEdgeFromTo reports whether an edge runs from uid to vid.
func (a *Adapter) HasEdgeFromTo(uid, vid int64) bool {
	_, ok, _ := a.g.GetEdge(int(uid), int(vid))

	return ok
}

// Edge returns one edge from uid to vid, or nil if none exists.
func (a *Adapter) Edge(uid, vid int64) graph.Edge {
	if _, ok, _ := a.g.GetEdge(int(uid), int(vid)); ok {
		return edge{from: node(uid), to: node(vid)}
	}

	return nil
}
