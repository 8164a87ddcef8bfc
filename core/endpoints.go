package core

// Endpoints is the edge-keyed table of (source, target) pairs. For
// undirected graphs the pair is stored in original insertion orientation;
// Reverse swaps it explicitly (directed stores only invoke Reverse from
// ReverseEdge, but the table itself is direction-agnostic).
//
// Endpoints is not an IndexListener: unlike a Weights container, it has no
// default value to backfill on append (every edge is created with
// concrete endpoints), so the owning backend calls Append/SwapRemove
// directly at the right point in its own AddEdge/RemoveEdge algorithm.
type Endpoints struct {
	src []int
	tgt []int
}

// NewEndpoints returns an empty Endpoints table.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Len returns the number of stored rows.
func (e *Endpoints) Len() int {
	return len(e.src)
}

// Append adds a new row (s, t) at the next index.
func (e *Endpoints) Append(s, t int) {
	e.src = append(e.src, s)
	e.tgt = append(e.tgt, t)
}

// SwapRemove mirrors the row at swapped into removed, then truncates.
// Callers pass the same (removed, swapped) pair used for the parallel
// edge IndexSet's SwapRemove.
func (e *Endpoints) SwapRemove(removed, swapped int) {
	e.src[removed] = e.src[swapped]
	e.tgt[removed] = e.tgt[swapped]
	e.src = e.src[:swapped]
	e.tgt = e.tgt[:swapped]
}

// Source returns the source endpoint of row i.
func (e *Endpoints) Source(i int) int {
	return e.src[i]
}

// Target returns the target endpoint of row i.
func (e *Endpoints) Target(i int) int {
	return e.tgt[i]
}

// SetEndpoints overwrites row i with (s, t).
func (e *Endpoints) SetEndpoints(i, s, t int) {
	e.src[i] = s
	e.tgt[i] = t
}

// ReplaceSource overwrites row i's source.
func (e *Endpoints) ReplaceSource(i, s int) {
	e.src[i] = s
}

// ReplaceTarget overwrites row i's target.
func (e *Endpoints) ReplaceTarget(i, t int) {
	e.tgt[i] = t
}

// ReplaceEndpoint overwrites whichever of row i's endpoints equals old
// with new. It is used when a swap-removed vertex's index is reassigned
// and every edge incident to the vertex that moved into the hole must be
// rewritten to reference the new index. If neither endpoint equals old,
// it is a no-op.
func (e *Endpoints) ReplaceEndpoint(i, old, new int) {
	if e.src[i] == old {
		e.src[i] = new
	}
	if e.tgt[i] == old {
		e.tgt[i] = new
	}
}

// Reverse swaps row i's source and target.
func (e *Endpoints) Reverse(i int) {
	e.src[i], e.tgt[i] = e.tgt[i], e.src[i]
}

// Endpoint returns the endpoint of row i opposite to v, and whether v is
// in fact one of row i's endpoints.
func (e *Endpoints) Endpoint(i, v int) (int, bool) {
	switch v {
	case e.src[i]:
		return e.tgt[i], true
	case e.tgt[i]:
		return e.src[i], true
	default:
		return 0, false
	}
}
